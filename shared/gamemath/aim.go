package gamemath

import (
	"math"

	"github.com/automoto/archery/mathutil"
	dmath "github.com/yohamta/donburi/features/math"
)

// DesiredAimAngle returns the angle in degrees of the vector from origin to target,
// measured counterclockwise from +X in a y-up frame.
func DesiredAimAngle(origin, target dmath.Vec2) float64 {
	return mathutil.RadToDeg(math.Atan2(target.Y-origin.Y, target.X-origin.X))
}

// UpdateAim advances current toward the pointer at no more than maxRateDegPerSec*dt degrees.
// The desired angle saturates at the [minAngle, maxAngle] bounds instead of wrapping, and the
// returned angle never leaves that range.
func UpdateAim(current float64, target, origin dmath.Vec2, maxRateDegPerSec, dt, minAngle, maxAngle float64) float64 {
	desired := mathutil.ClampFloat(DesiredAimAngle(origin, target), minAngle, maxAngle)
	next := mathutil.MoveTowards(current, desired, math.Abs(maxRateDegPerSec)*dt)
	return mathutil.ClampFloat(next, minAngle, maxAngle)
}

// ForwardVector returns the unit vector pointing along angleDeg.
func ForwardVector(angleDeg float64) dmath.Vec2 {
	rad := mathutil.DegToRad(angleDeg)
	return dmath.Vec2{X: math.Cos(rad), Y: math.Sin(rad)}
}

// RotateVector rotates v counterclockwise by angleDeg.
func RotateVector(v dmath.Vec2, angleDeg float64) dmath.Vec2 {
	rad := mathutil.DegToRad(angleDeg)
	sin, cos := math.Sincos(rad)
	return dmath.Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}
