package components

import (
	"github.com/automoto/archery/shared/archery"
	"github.com/yohamta/donburi"
)

type ArcherData struct {
	Controller *archery.Controller
	Last       archery.TickResult // result of the most recent tick

	PivotHeight float64 // shoulder height above the feet, units
	WasCharging bool    // charge state on the previous tick, for draw sounds
}

var Archer = donburi.NewComponentType[ArcherData]()
