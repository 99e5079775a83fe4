package gamemath

import (
	"github.com/automoto/archery/mathutil"
	dmath "github.com/yohamta/donburi/features/math"
)

// ElapsedCharge returns now-start clamped to [0, maxChargeTime].
// A non-positive maxChargeTime collapses the window to zero.
func ElapsedCharge(now, start, maxChargeTime float64) float64 {
	if maxChargeTime <= 0 {
		return 0
	}
	return mathutil.ClampFloat(now-start, 0, maxChargeTime)
}

// ChargeRatio returns elapsed/maxChargeTime clamped to [0, 1].
// A non-positive maxChargeTime counts as a full charge.
func ChargeRatio(elapsed, maxChargeTime float64) float64 {
	if maxChargeTime <= 0 {
		return 1
	}
	return mathutil.Clamp01(elapsed / maxChargeTime)
}

// LaunchSpeed interpolates linearly between minSpeed and maxSpeed by chargeRatio.
func LaunchSpeed(minSpeed, maxSpeed, chargeRatio float64) float64 {
	return mathutil.Lerp(minSpeed, maxSpeed, chargeRatio)
}

// LaunchVelocity returns the velocity of a shot fired along angleDeg at speed.
func LaunchVelocity(angleDeg, speed float64) dmath.Vec2 {
	return ForwardVector(angleDeg).MulScalar(speed)
}
