package archery

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Settings are the tuning values of one archer.
type Settings struct {
	MaxChargeTime  float64 // seconds until a shot is fully charged
	MinSpeed       float64 // launch speed at zero charge
	MaxSpeed       float64 // launch speed at full charge
	RotationRate   float64 // degrees per second the bow can turn
	MinAngle       float64 // degrees, lower aim bound
	MaxAngle       float64 // degrees, upper aim bound
	PreviewPoints  int     // number of trajectory samples shown while charging
	SampleInterval float64 // seconds between trajectory samples

	// MuzzleOffset is where arrows leave the bow, relative to the archer origin at angle 0.
	// It rotates with the aim.
	MuzzleOffset dmath.Vec2

	// ReleaseOnLostTrigger fires the shot when the trigger stops being held without an
	// explicit release event. When false the charge is kept until the next release.
	ReleaseOnLostTrigger bool
}

// DefaultSettings mirrors the tuning of the stock archer.
func DefaultSettings() Settings {
	return Settings{
		MaxChargeTime:        2,
		MinSpeed:             10,
		MaxSpeed:             30,
		RotationRate:         100,
		MinAngle:             -60,
		MaxAngle:             60,
		PreviewPoints:        5,
		SampleInterval:       0.1,
		ReleaseOnLostTrigger: true,
	}
}

// Normalize returns a copy with degenerate values corrected. A non-positive MaxChargeTime is
// kept as is; the charge ratio treats it as an instant full charge.
func (s Settings) Normalize() Settings {
	if s.MinSpeed > s.MaxSpeed {
		s.MinSpeed, s.MaxSpeed = s.MaxSpeed, s.MinSpeed
	}
	if s.MinAngle > s.MaxAngle {
		s.MinAngle, s.MaxAngle = s.MaxAngle, s.MinAngle
	}
	if s.PreviewPoints < 0 {
		s.PreviewPoints = 0
	}
	s.SampleInterval = math.Abs(s.SampleInterval)
	s.RotationRate = math.Abs(s.RotationRate)
	return s
}

// Problems lists the corrections Normalize would apply, for reporting at load time.
func (s Settings) Problems() []string {
	var out []string
	if s.MaxChargeTime <= 0 {
		out = append(out, "max charge time is not positive; every shot is fully charged")
	}
	if s.MinSpeed > s.MaxSpeed {
		out = append(out, "min speed exceeds max speed; values swapped")
	}
	if s.MinAngle > s.MaxAngle {
		out = append(out, "min angle exceeds max angle; values swapped")
	}
	if s.PreviewPoints < 0 {
		out = append(out, "negative preview point count; preview disabled")
	}
	if s.SampleInterval < 0 {
		out = append(out, "negative sample interval; using its magnitude")
	}
	if s.RotationRate < 0 {
		out = append(out, "negative rotation rate; using its magnitude")
	}
	return out
}
