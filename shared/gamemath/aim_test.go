package gamemath

import (
	"math"
	"testing"

	"github.com/automoto/archery/mathutil"
	dmath "github.com/yohamta/donburi/features/math"
)

const eps = 1e-9

func TestDesiredAimAngle(t *testing.T) {
	origin := dmath.Vec2{X: 10, Y: 10}
	tests := []struct {
		name   string
		target dmath.Vec2
		want   float64
	}{
		{"right", dmath.Vec2{X: 20, Y: 10}, 0},
		{"up", dmath.Vec2{X: 10, Y: 30}, 90},
		{"down", dmath.Vec2{X: 10, Y: 0}, -90},
		{"diagonal", dmath.Vec2{X: 20, Y: 20}, 45},
		{"same point", origin, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DesiredAimAngle(origin, tt.target); math.Abs(got-tt.want) > eps {
				t.Errorf("DesiredAimAngle = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUpdateAimRateLimited(t *testing.T) {
	origin := dmath.Vec2{}
	target := dmath.Vec2{X: 1, Y: 1} // 45 degrees

	got := UpdateAim(0, target, origin, 100, 0.1, -60, 60)
	if math.Abs(got-10) > eps {
		t.Fatalf("expected one 10 degree step, got %v", got)
	}

	angle := 0.0
	for i := 0; i < 100; i++ {
		angle = UpdateAim(angle, target, origin, 100, 0.1, -60, 60)
	}
	if math.Abs(angle-45) > eps {
		t.Errorf("expected to settle on 45, got %v", angle)
	}
}

func TestUpdateAimSaturatesAtBounds(t *testing.T) {
	origin := dmath.Vec2{}
	tests := []struct {
		name   string
		target dmath.Vec2
		start  float64
		want   float64
	}{
		{"behind and above", dmath.Vec2{X: -10, Y: 1}, 50, 60},
		{"behind and below", dmath.Vec2{X: -10, Y: -1}, -50, -60},
		{"straight up", dmath.Vec2{X: 0, Y: 10}, 0, 60},
		{"straight down", dmath.Vec2{X: 0, Y: -10}, 0, -60},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			angle := tt.start
			for i := 0; i < 200; i++ {
				angle = UpdateAim(angle, tt.target, origin, 100, 1.0/60, -60, 60)
				if angle < -60 || angle > 60 {
					t.Fatalf("angle %v left [-60, 60] on tick %d", angle, i)
				}
			}
			if math.Abs(angle-tt.want) > eps {
				t.Errorf("expected to saturate at %v, got %v", tt.want, angle)
			}
		})
	}
}

func TestUpdateAimAlwaysInRange(t *testing.T) {
	origin := dmath.Vec2{X: 3, Y: -2}
	for deg := -180; deg < 180; deg += 7 {
		rad := mathutil.DegToRad(float64(deg))
		target := dmath.Vec2{X: origin.X + 50*math.Cos(rad), Y: origin.Y + 50*math.Sin(rad)}
		for _, start := range []float64{-90, -60, 0, 60, 90} {
			got := UpdateAim(start, target, origin, 720, 0.5, -60, 60)
			if got < -60 || got > 60 {
				t.Errorf("UpdateAim(start=%v, target=%v deg) = %v, outside range", start, deg, got)
			}
		}
	}
}

func TestForwardVector(t *testing.T) {
	v := ForwardVector(90)
	if math.Abs(v.X) > eps || math.Abs(v.Y-1) > eps {
		t.Errorf("ForwardVector(90) = %v, want (0, 1)", v)
	}
}

func TestRotateVector(t *testing.T) {
	v := RotateVector(dmath.Vec2{X: 2, Y: 0}, 90)
	if math.Abs(v.X) > eps || math.Abs(v.Y-2) > eps {
		t.Errorf("RotateVector((2,0), 90) = %v, want (0, 2)", v)
	}
}
