package factory

import (
	"fmt"
	"math"

	"github.com/automoto/archery/archetypes"
	"github.com/automoto/archery/components"
	cfg "github.com/automoto/archery/config"
	"github.com/automoto/archery/mathutil"
	"github.com/automoto/archery/shared/archery"
	"github.com/automoto/archery/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateArrow turns a spawn request into a flying arrow. The collision box is centered on the
// tip. It fails with archery.ErrNoPhysicsBody when the scene has no collision space.
func CreateArrow(ecs *ecs.ECS, req archery.SpawnRequest, now float64) (*donburi.Entry, error) {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return nil, fmt.Errorf("arrow %s: %w", req.ShotID, archery.ErrNoPhysicsBody)
	}

	arrow := archetypes.Arrow.Spawn(ecs)

	size := cfg.Arrow.HitboxSize
	obj := resolv.NewObject(req.Position.X-size/2, req.Position.Y-size/2, size, size, tags.ResolvArrow)
	obj.Data = arrow
	components.Object.SetValue(arrow, components.ObjectData{Object: obj})
	components.Space.Get(spaceEntry).Add(obj)

	components.Arrow.SetValue(arrow, components.ArrowData{
		ShotID:      req.ShotID,
		ChargeRatio: req.ChargeRatio,
		SpawnedAt:   now,
		Heading:     mathutil.DegToRad(req.Rotation),
	})
	components.Physics.SetValue(arrow, components.PhysicsData{
		Velocity: req.Velocity,
		Gravity:  math.Abs(cfg.Physics.Gravity),
	})
	components.AutoDestroy.SetValue(arrow, components.AutoDestroyData{
		Remaining: cfg.Arrow.Lifetime,
	})

	return arrow, nil
}
