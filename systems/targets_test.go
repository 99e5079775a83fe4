package systems

import (
	"math"
	"testing"

	"github.com/automoto/archery/components"
	"github.com/automoto/archery/shared/leveldata"
	"github.com/automoto/archery/systems/factory"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestSwayPosition(t *testing.T) {
	target := &components.TargetData{
		Home: dmath.NewVec2(1, 2),
		Sway: dmath.NewVec2(3, -4),
	}
	tests := []struct {
		p    float64
		want dmath.Vec2
	}{
		{0, dmath.NewVec2(1, 2)},
		{0.5, dmath.NewVec2(2.5, 0)},
		{1, dmath.NewVec2(4, -2)},
	}
	for _, tt := range tests {
		if got := SwayPosition(target, tt.p); got != tt.want {
			t.Errorf("SwayPosition(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestUpdateTargetsMovesSwayingTarget(t *testing.T) {
	e := newRangeECS(t)
	target := factory.CreateTarget(e, leveldata.TargetSpawn{
		Rect:        leveldata.Rect{X: 10, Y: 5, W: 1, H: 3},
		SwayX:       2,
		SwaySeconds: 1,
	})
	AdvanceClock(GetOrCreateClock(e), 0.5)

	UpdateTargets(e)

	obj := components.Object.Get(target)
	if math.Abs(obj.X-11) > 1e-3 || obj.Y != 5 {
		t.Errorf("target at (%v, %v), want (11, 5) halfway out", obj.X, obj.Y)
	}
}

func TestStillTargetHasNoTween(t *testing.T) {
	e := newRangeECS(t)
	target := factory.CreateTarget(e, leveldata.TargetSpawn{
		Rect: leveldata.Rect{X: 10, Y: 5, W: 1, H: 3},
	})

	if target.HasComponent(components.Tween) {
		t.Error("target without sway should not get a tween")
	}
	if got := components.Target.Get(target).Points; got <= 0 {
		t.Errorf("default points = %d, want positive", got)
	}
}

func TestSwayEasingFallback(t *testing.T) {
	if factory.SwayEasing("NoSuchEase") == nil {
		t.Fatal("unknown ease should fall back to linear")
	}
	lin := factory.SwayEasing("NoSuchEase")
	if got := lin(0.5, 0, 1, 1); got != 0.5 {
		t.Errorf("fallback at half time = %v, want 0.5", got)
	}
}
