package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

type SpriteData struct {
	Image    *ebiten.Image
	Rotation float64 // radians, screen space (clockwise)
	PivotX   float64 // pixels from the image's left edge
	PivotY   float64
	Hidden   bool
}

var Sprite = donburi.NewComponentType[SpriteData]()
