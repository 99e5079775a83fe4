package components

import (
	"github.com/automoto/archery/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Path       string
	Range      *leveldata.RangeData
	Background *ebiten.Image
}

var Level = donburi.NewComponentType[LevelData]()
