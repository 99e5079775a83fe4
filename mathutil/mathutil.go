// Package mathutil holds small scalar helpers shared by gameplay code.
package mathutil

import "math"

// ClampFloat clamps v to [lo, hi].
func ClampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 clamps v to [0, 1].
func Clamp01(v float64) float64 {
	return ClampFloat(v, 0, 1)
}

// Lerp interpolates between a and b. t is clamped to [0, 1].
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*Clamp01(t)
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// MoveTowards moves current toward target by at most maxDelta.
func MoveTowards(current, target, maxDelta float64) float64 {
	if maxDelta <= 0 {
		return current
	}
	if math.Abs(target-current) <= maxDelta {
		return target
	}
	return current + math.Copysign(maxDelta, target-current)
}
