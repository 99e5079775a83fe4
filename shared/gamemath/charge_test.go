package gamemath

import (
	"math"
	"testing"
)

func TestChargeRatio(t *testing.T) {
	tests := []struct {
		name           string
		elapsed, limit float64
		want           float64
	}{
		{"empty", 0, 2, 0},
		{"half", 1, 2, 0.5},
		{"full", 2, 2, 1},
		{"jitter past limit", 2.016, 2, 1},
		{"negative elapsed", -0.1, 2, 0},
		{"zero window", 0.5, 0, 1},
		{"negative window", 0.5, -3, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ChargeRatio(tt.elapsed, tt.limit); got != tt.want {
				t.Errorf("ChargeRatio(%v, %v) = %v, want %v", tt.elapsed, tt.limit, got, tt.want)
			}
		})
	}
}

func TestElapsedCharge(t *testing.T) {
	if got := ElapsedCharge(3.5, 1, 2); got != 2 {
		t.Errorf("expected clamp to 2, got %v", got)
	}
	if got := ElapsedCharge(0.5, 1, 2); got != 0 {
		t.Errorf("expected clamp to 0, got %v", got)
	}
	if got := ElapsedCharge(5, 1, 0); got != 0 {
		t.Errorf("expected zero window to stay at 0, got %v", got)
	}
}

func TestLaunchSpeedScenario(t *testing.T) {
	const maxCharge, minSpeed, maxSpeed = 2.0, 10.0, 30.0

	half := LaunchSpeed(minSpeed, maxSpeed, ChargeRatio(1, maxCharge))
	if half != 20 {
		t.Errorf("1s of charge: speed = %v, want 20", half)
	}
	full := LaunchSpeed(minSpeed, maxSpeed, ChargeRatio(ElapsedCharge(2, 0, maxCharge), maxCharge))
	if full != 30 {
		t.Errorf("2s of charge: speed = %v, want 30", full)
	}
}

func TestLaunchSpeedMonotonicAndBounded(t *testing.T) {
	const maxCharge, minSpeed, maxSpeed = 2.0, 10.0, 30.0
	prev := math.Inf(-1)
	for i := 0; i <= 200; i++ {
		elapsed := maxCharge * float64(i) / 200
		speed := LaunchSpeed(minSpeed, maxSpeed, ChargeRatio(elapsed, maxCharge))
		if speed < minSpeed || speed > maxSpeed {
			t.Fatalf("speed %v outside [%v, %v] at elapsed %v", speed, minSpeed, maxSpeed, elapsed)
		}
		if speed < prev {
			t.Fatalf("speed decreased from %v to %v at elapsed %v", prev, speed, elapsed)
		}
		prev = speed
	}
}

func TestLaunchVelocity(t *testing.T) {
	v := LaunchVelocity(0, 20)
	if math.Abs(v.X-20) > eps || math.Abs(v.Y) > eps {
		t.Errorf("LaunchVelocity(0, 20) = %v, want (20, 0)", v)
	}
	v = LaunchVelocity(45, math.Sqrt2)
	if math.Abs(v.X-1) > eps || math.Abs(v.Y-1) > eps {
		t.Errorf("LaunchVelocity(45, sqrt2) = %v, want (1, 1)", v)
	}
}
