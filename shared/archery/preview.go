package archery

import (
	"github.com/automoto/archery/shared/gamemath"
	dmath "github.com/yohamta/donburi/features/math"
)

// PreviewPoint is one predicted position.
type PreviewPoint struct {
	Position dmath.Vec2
	Visible  bool
}

// Preview is the fixed set of trajectory samples shown while charging.
// Its length never changes after construction.
type Preview struct {
	Points    []PreviewPoint
	positions []dmath.Vec2
}

func newPreview(n int) Preview {
	return Preview{
		Points:    make([]PreviewPoint, n),
		positions: make([]dmath.Vec2, n),
	}
}

func (p *Preview) fill(start, velocity dmath.Vec2, gravity, interval float64) {
	gamemath.PredictTrajectory(p.positions, start, velocity, gravity, interval)
	for i, pos := range p.positions {
		p.Points[i] = PreviewPoint{Position: pos, Visible: true}
	}
}

func (p *Preview) hide() {
	for i := range p.Points {
		p.Points[i].Visible = false
	}
}

// Visible reports whether any point is shown.
func (p *Preview) Visible() bool {
	for _, pt := range p.Points {
		if pt.Visible {
			return true
		}
	}
	return false
}
