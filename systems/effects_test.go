package systems

import (
	"testing"

	"github.com/automoto/archery/components"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestAutoDestroyRemovesExpiredArrows(t *testing.T) {
	e := newRangeECS(t)
	arrow := launchArrow(t, e, dmath.NewVec2(5, 5), dmath.Vec2{})
	components.AutoDestroy.Get(arrow).Remaining = 1
	space := components.Object.Get(arrow).Space

	UpdateAutoDestroy(e, 0.5)
	if !arrow.Valid() {
		t.Fatal("arrow removed before its lifetime ran out")
	}

	UpdateAutoDestroy(e, 0.5)
	if arrow.Valid() {
		t.Fatal("arrow should be removed once its lifetime ran out")
	}
	if n := len(space.Objects()); n != 0 {
		t.Errorf("%d objects left in the space, want 0", n)
	}
}

func TestDestroyEntryTwice(t *testing.T) {
	e := newRangeECS(t)
	arrow := launchArrow(t, e, dmath.NewVec2(5, 5), dmath.Vec2{})

	destroyEntry(arrow)
	destroyEntry(arrow)

	if arrow.Valid() {
		t.Error("arrow still valid")
	}
}

func TestUpdateEffectsCountsDownFlash(t *testing.T) {
	e := newRangeECS(t)
	entry := e.World.Entry(e.World.Create(components.Flash))
	components.Flash.SetValue(entry, components.FlashData{Remaining: 0.25})
	AdvanceClock(GetOrCreateClock(e), 0.1)

	UpdateEffects(e)

	if got := components.Flash.Get(entry).Remaining; got < 0.149 || got > 0.151 {
		t.Errorf("flash remaining = %v, want 0.15", got)
	}
}
