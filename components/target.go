package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type TargetData struct {
	Name   string
	Points int
	Hits   int
	Home   math.Vec2 // bottom-left corner at rest
	Sway   math.Vec2 // offset at the far end of the sway
}

var Target = donburi.NewComponentType[TargetData]()

// Tween drives a 0..1 progress value; swaying targets interpolate Home toward Home+Sway with it.
var Tween = donburi.NewComponentType[gween.Sequence]()
