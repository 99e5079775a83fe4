package factory

import (
	"math"

	"github.com/automoto/archery/archetypes"
	"github.com/automoto/archery/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace creates the collision space covering width by height world units.
func CreateSpace(ecs *ecs.ECS, width, height float64, cellSize int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(int(math.Ceil(width)), int(math.Ceil(height)), cellSize, cellSize)
	components.Space.Set(space, spaceData)
	return space
}

// addToSpace adds obj to the scene's collision space if there is one.
func addToSpace(ecs *ecs.ECS, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}
