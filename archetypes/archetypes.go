package archetypes

import (
	"github.com/automoto/archery/components"
	cfg "github.com/automoto/archery/config"
	"github.com/automoto/archery/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Archer = newArchetype(
		tags.Archer,
		components.Archer,
		components.Object,
		components.Sprite,
	)
	Arrow = newArchetype(
		tags.Arrow,
		components.Arrow,
		components.Object,
		components.Physics,
		components.AutoDestroy,
	)
	Target = newArchetype(
		tags.Target,
		components.Target,
		components.Object,
		components.Flash,
	)
	SwayingTarget = newArchetype(
		tags.Target,
		components.Target,
		components.Object,
		components.Flash,
		components.Tween,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Clock = newArchetype(
		components.Clock,
	)
	Score = newArchetype(
		components.Score,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(all, cs...)...,
	))
	return e
}
