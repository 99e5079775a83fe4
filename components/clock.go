package components

import "github.com/yohamta/donburi"

// ClockData is the game clock. It only advances while gameplay runs, so a pause does not count
// toward a held charge.
type ClockData struct {
	Now   float64 // seconds since the scene started
	Delta float64 // seconds added on the last tick
	Ticks uint64
}

var Clock = donburi.NewComponentType[ClockData]()
