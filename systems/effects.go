package systems

import (
	"github.com/automoto/archery/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects processes timed components (flash, auto-destroy)
func UpdateEffects(ecs *ecs.ECS) {
	dt := GetOrCreateClock(ecs).Delta
	updateFlashEffects(ecs, dt)
	UpdateAutoDestroy(ecs, dt)
}

// updateFlashEffects counts down flash timers
func updateFlashEffects(ecs *ecs.ECS, dt float64) {
	components.Flash.Each(ecs.World, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		if flash.Remaining > 0 {
			flash.Remaining -= dt
		}
	})
}

// UpdateAutoDestroy removes entities whose lifetime ran out during the last dt seconds.
func UpdateAutoDestroy(ecs *ecs.ECS, dt float64) {
	var toDestroy []*donburi.Entry

	components.AutoDestroy.Each(ecs.World, func(e *donburi.Entry) {
		ad := components.AutoDestroy.Get(e)
		ad.Remaining -= dt
		if ad.Remaining <= 0 {
			toDestroy = append(toDestroy, e)
		}
	})

	for _, e := range toDestroy {
		destroyEntry(e)
	}
}

// destroyEntry removes an entity and its collision object.
func destroyEntry(e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	if e.HasComponent(components.Object) {
		obj := components.Object.Get(e)
		if obj.Object != nil && obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
	}
	e.Remove()
}
