// Package leveldata provides TMX range-map parsing.
// It has no dependencies on ebitengine, donburi, or resolv — pure data only.
package leveldata

// Rect is an axis-aligned box in world units with Y pointing up; (X, Y) is the bottom-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Center returns the middle of the rectangle.
func (r Rect) Center() (x, y float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// TargetSpawn is a scoring target. A target with a non-zero sway oscillates between its
// position and the position offset by (SwayX, SwayY) over SwaySeconds.
type TargetSpawn struct {
	Rect
	Name        string
	Points      int
	SwayX       float64
	SwayY       float64
	SwaySeconds float64
}

// Sways reports whether the target moves.
func (t TargetSpawn) Sways() bool {
	return (t.SwayX != 0 || t.SwayY != 0) && t.SwaySeconds > 0
}

// RangeData holds everything parsed from a range map, in world units.
type RangeData struct {
	Width   float64
	Height  float64
	ArcherX float64 // feet position of the archer
	ArcherY float64
	Walls   []Rect
	Targets []TargetSpawn
}
