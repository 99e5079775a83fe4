package tags

import "github.com/yohamta/donburi"

var (
	Archer = donburi.NewTag().SetName("Archer")
	Arrow  = donburi.NewTag().SetName("Arrow")
	Target = donburi.NewTag().SetName("Target")
	Wall   = donburi.NewTag().SetName("Wall")
)

// Resolv tags for collision
const (
	ResolvSolid  = "solid"
	ResolvTarget = "target"
	ResolvArrow  = "arrow"
	ResolvArcher = "archer"
)
