package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ObjectData links an entity to its collision object. Positions are world units with (X, Y)
// at the bottom-left corner.
type ObjectData struct {
	*resolv.Object
}

// Center returns the middle of the collision box.
func (o *ObjectData) Center() math.Vec2 {
	return math.NewVec2(o.X+o.W/2, o.Y+o.H/2)
}

// SetCenter moves the box so that its middle is at p. Call Update afterwards to refresh cells.
func (o *ObjectData) SetCenter(p math.Vec2) {
	o.X = p.X - o.W/2
	o.Y = p.Y - o.H/2
}

var Object = donburi.NewComponentType[ObjectData]()

var Space = donburi.NewComponentType[resolv.Space]()
