package systems

import (
	"github.com/automoto/archery/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock advances the game clock by one tick. Wrap it with WithGameplayChecks so a pause
// freezes it.
func UpdateClock(ecs *ecs.ECS) {
	AdvanceClock(GetOrCreateClock(ecs), 1/float64(ebiten.TPS()))
}

// AdvanceClock moves the clock forward by dt seconds.
func AdvanceClock(clock *components.ClockData, dt float64) {
	if dt < 0 {
		dt = 0
	}
	clock.Delta = dt
	clock.Now += dt
	clock.Ticks++
}

// GetOrCreateClock returns the singleton Clock component, creating if needed.
func GetOrCreateClock(ecs *ecs.ECS) *components.ClockData {
	entry, ok := components.Clock.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Clock))
	}
	return components.Clock.Get(entry)
}
