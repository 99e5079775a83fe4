package systems

import (
	"errors"
	"math"
	"testing"

	"github.com/automoto/archery/components"
	"github.com/automoto/archery/mathutil"
	"github.com/automoto/archery/shared/archery"
	"github.com/automoto/archery/tags"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestSpawnerWithoutSpace(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	spawner := NewSpawner(e)

	handle, err := spawner.SpawnProjectile(archery.SpawnRequest{ShotID: uuid.New()})
	if !errors.Is(err, archery.ErrNoPhysicsBody) {
		t.Fatalf("err = %v, want ErrNoPhysicsBody", err)
	}
	if handle != nil {
		t.Errorf("handle = %v, want nil", handle)
	}
	if n := countArrows(e); n != 0 {
		t.Errorf("%d arrows created without a space", n)
	}
}

func TestSpawnerCreatesArrow(t *testing.T) {
	e := newRangeECS(t)
	AdvanceClock(GetOrCreateClock(e), 1.5)

	req := archery.SpawnRequest{
		ShotID:      uuid.New(),
		Position:    dmath.NewVec2(4, 3),
		Rotation:    30,
		Velocity:    dmath.NewVec2(10, 5),
		Speed:       11.18,
		ChargeRatio: 0.5,
	}
	handle, err := NewSpawner(e).SpawnProjectile(req)
	if err != nil {
		t.Fatalf("SpawnProjectile: %v", err)
	}
	if handle.ShotID() != req.ShotID {
		t.Errorf("handle shot = %v, want %v", handle.ShotID(), req.ShotID)
	}

	entry, ok := tags.Arrow.First(e.World)
	if !ok {
		t.Fatal("no arrow entity created")
	}
	arrow := components.Arrow.Get(entry)
	if arrow.ShotID != req.ShotID || arrow.SpawnedAt != 1.5 || arrow.ChargeRatio != 0.5 {
		t.Errorf("arrow = %+v", arrow)
	}
	if want := mathutil.DegToRad(30); math.Abs(arrow.Heading-want) > 1e-12 {
		t.Errorf("heading = %v rad, want %v", arrow.Heading, want)
	}
	if got := components.Physics.Get(entry).Velocity; got != req.Velocity {
		t.Errorf("velocity = %v, want %v", got, req.Velocity)
	}
	if got := components.Object.Get(entry).Center(); got != req.Position {
		t.Errorf("tip = %v, want %v", got, req.Position)
	}
}

func TestEnforceArrowLimit(t *testing.T) {
	e := newRangeECS(t)
	clock := GetOrCreateClock(e)
	for i := 0; i < 5; i++ {
		launchArrow(t, e, dmath.NewVec2(float64(i), 10), dmath.Vec2{})
		AdvanceClock(clock, 1)
	}

	enforceArrowLimit(e, 3)

	if n := countArrows(e); n != 3 {
		t.Fatalf("%d arrows left, want 3", n)
	}
	oldest := 100.0
	tags.Arrow.Each(e.World, func(entry *donburi.Entry) {
		oldest = min(oldest, components.Arrow.Get(entry).SpawnedAt)
	})
	if oldest != 2 {
		t.Errorf("oldest remaining arrow spawned at %v, want 2", oldest)
	}
}

func TestEnforceArrowLimitDisabled(t *testing.T) {
	e := newRangeECS(t)
	for i := 0; i < 4; i++ {
		launchArrow(t, e, dmath.NewVec2(float64(i), 10), dmath.Vec2{})
	}

	enforceArrowLimit(e, 0)

	if n := countArrows(e); n != 4 {
		t.Errorf("%d arrows left, want 4", n)
	}
}

func TestWorldGravity(t *testing.T) {
	if got := WorldGravity().GravityMagnitude(); got == 0 {
		t.Error("world gravity should not be zero")
	}
}
