package components

import (
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ArrowData is a projectile released by an archer. Its Object is the tip hitbox.
type ArrowData struct {
	ShotID      uuid.UUID
	ChargeRatio float64
	SpawnedAt   float64 // game clock seconds
	Heading     float64 // radians, world space (counterclockwise from +x)
	Stuck       bool    // embedded in a wall or target, no longer moving
	Scored      bool    // already awarded points

	// Target the arrow is embedded in; stuck arrows ride along with swaying targets
	StuckTo     *donburi.Entry
	StuckOffset math.Vec2
}

var Arrow = donburi.NewComponentType[ArrowData]()
