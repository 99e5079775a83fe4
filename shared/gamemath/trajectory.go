package gamemath

import (
	"math"

	"github.com/automoto/archery/mathutil"
	dmath "github.com/yohamta/donburi/features/math"
)

// TrajectoryPoint returns the position at time t of a body launched from start with velocity,
// under constant gravity pulling toward -Y. Only the magnitude of gravity is used, so hosts that
// report gravity as a negative number get the same result.
func TrajectoryPoint(start, velocity dmath.Vec2, gravity, t float64) dmath.Vec2 {
	g := math.Abs(gravity)
	return dmath.Vec2{
		X: start.X + velocity.X*t,
		Y: start.Y + velocity.Y*t - 0.5*g*t*t,
	}
}

// PredictTrajectory writes len(dst) samples into dst, sample i taken at i*sampleInterval.
// dst is written in place and returned.
func PredictTrajectory(dst []dmath.Vec2, start, velocity dmath.Vec2, gravity, sampleInterval float64) []dmath.Vec2 {
	for i := range dst {
		dst[i] = TrajectoryPoint(start, velocity, gravity, float64(i)*sampleInterval)
	}
	return dst
}

// HeadingAngle returns the direction of travel in degrees for a velocity vector.
func HeadingAngle(velocity dmath.Vec2) float64 {
	return mathutil.RadToDeg(math.Atan2(velocity.Y, velocity.X))
}
