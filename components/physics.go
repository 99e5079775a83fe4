package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type PhysicsData struct {
	Velocity math.Vec2 // units per second, y up
	Gravity  float64   // units per second squared, pulls toward -y
}

var Physics = donburi.NewComponentType[PhysicsData]()
