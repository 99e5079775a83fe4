package systems

import (
	"github.com/automoto/archery/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdateTargets moves swaying targets along their tween. Run it before UpdateArrows so stuck
// arrows follow in the same tick.
func UpdateTargets(ecs *ecs.ECS) {
	dt := float32(GetOrCreateClock(ecs).Delta)

	components.Tween.Each(ecs.World, func(e *donburi.Entry) {
		seq := components.Tween.Get(e)
		progress, _, done := seq.Update(dt)
		if done {
			seq.Reset()
		}

		target := components.Target.Get(e)
		pos := SwayPosition(target, float64(progress))
		obj := components.Object.Get(e)
		obj.X, obj.Y = pos.X, pos.Y
		obj.Update()
	})
}

// SwayPosition returns the bottom-left corner of a target at sway progress p in [0, 1].
func SwayPosition(t *components.TargetData, p float64) dmath.Vec2 {
	return t.Home.Add(t.Sway.MulScalar(p))
}
