package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position  math.Vec2 // world units at the screen center
	LookAhead math.Vec2 // smoothed offset toward the pointer
	Offset    math.Vec2 // screen shake, pixels
}

var Camera = donburi.NewComponentType[CameraData]()
