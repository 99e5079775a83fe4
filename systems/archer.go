package systems

import (
	"github.com/automoto/archery/components"
	cfg "github.com/automoto/archery/config"
	"github.com/automoto/archery/mathutil"
	"github.com/automoto/archery/shared/archery"
	"github.com/automoto/archery/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdateArchers runs one controller tick per archer and applies the result: bow rotation,
// release sounds and shot counting. Run it after UpdateInput and UpdateClock.
func UpdateArchers(e *ecs.ECS) {
	input := getOrCreateInput(e)
	clock := GetOrCreateClock(e)
	trigger := ShootTrigger(input)

	tags.Archer.Each(e.World, func(entry *donburi.Entry) {
		archer := components.Archer.Get(entry)
		if archer.Controller == nil {
			return
		}

		origin := archerPivot(entry)
		res := archer.Controller.Tick(archery.TickInput{
			Pointer: aimPointer(e, input, origin),
			Origin:  origin,
			Trigger: trigger,
			Now:     clock.Now,
			Delta:   clock.Delta,
		})
		archer.Last = res

		// Screen space rotates clockwise, world space counterclockwise
		if entry.HasComponent(components.Sprite) {
			components.Sprite.Get(entry).Rotation = -mathutil.DegToRad(res.Angle)
		}

		charging := archer.Controller.Charging()
		if charging && !archer.WasCharging {
			PlaySFX(e, cfg.SoundBowDraw)
		}
		archer.WasCharging = charging

		if res.Shot != nil && res.Err == nil {
			PlaySFX(e, cfg.SoundArrowRelease)
			if score, ok := getScore(e); ok {
				score.Shots++
			}
		}
	})
}

// archerPivot is the shoulder point the bow rotates around, in world units.
func archerPivot(entry *donburi.Entry) dmath.Vec2 {
	obj := components.Object.Get(entry)
	height := obj.H * 0.75
	if entry.HasComponent(components.Archer) {
		height = components.Archer.Get(entry).PivotHeight
	}
	return dmath.NewVec2(obj.X+obj.W/2, obj.Y+height)
}

// aimPointer is the world point the archer aims at: the right stick direction while it is in
// use, otherwise the mouse cursor.
func aimPointer(e *ecs.ECS, input *components.InputData, origin dmath.Vec2) dmath.Vec2 {
	if input.StickActive {
		return StickPointer(origin, input.StickX, input.StickY, cfg.Archer.StickAimReach)
	}
	return ScreenToWorld(e, input.CursorX, input.CursorY)
}

// StickPointer places a virtual pointer reach units from origin along a stick direction. The
// stick's y axis points down.
func StickPointer(origin dmath.Vec2, stickX, stickY, reach float64) dmath.Vec2 {
	return dmath.NewVec2(origin.X+stickX*reach, origin.Y-stickY*reach)
}
