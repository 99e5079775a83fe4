package factory

import (
	"github.com/automoto/archery/archetypes"
	"github.com/automoto/archery/components"
	cfg "github.com/automoto/archery/config"
	"github.com/automoto/archery/shared/leveldata"
	"github.com/automoto/archery/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

var easings = map[string]ease.TweenFunc{
	"Linear":     ease.Linear,
	"InOutSine":  ease.InOutSine,
	"InOutQuad":  ease.InOutQuad,
	"InOutCubic": ease.InOutCubic,
}

// SwayEasing returns the named easing, or linear for unknown names.
func SwayEasing(name string) ease.TweenFunc {
	if fn, ok := easings[name]; ok {
		return fn
	}
	return ease.Linear
}

func CreateTarget(ecs *ecs.ECS, spawn leveldata.TargetSpawn) *donburi.Entry {
	arch := archetypes.Target
	if spawn.Sways() {
		arch = archetypes.SwayingTarget
	}
	target := arch.Spawn(ecs)

	obj := resolv.NewObject(spawn.X, spawn.Y, spawn.W, spawn.H, tags.ResolvTarget)
	obj.Data = target
	components.Object.SetValue(target, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	points := spawn.Points
	if points <= 0 {
		points = cfg.Target.DefaultPoints
	}
	components.Target.SetValue(target, components.TargetData{
		Name:   spawn.Name,
		Points: points,
		Home:   math.NewVec2(spawn.X, spawn.Y),
		Sway:   math.NewVec2(spawn.SwayX, spawn.SwayY),
	})

	if spawn.Sways() {
		// Progress runs out to the far end and back, then the sequence is reset.
		fn := SwayEasing(cfg.Target.SwayEase)
		leg := float32(spawn.SwaySeconds)
		tw := gween.NewSequence()
		tw.Add(
			gween.New(0, 1, leg, fn),
			gween.New(1, 0, leg, fn),
		)
		components.Tween.Set(target, tw)
	}

	return target
}
