package components

import "github.com/yohamta/donburi"

// ScreenShakeData tracks active screen shake effect on the camera
type ScreenShakeData struct {
	Intensity float64 // max offset in pixels
	Duration  int     // frames total
	Elapsed   int     // frames elapsed (for oscillation)
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()

// FlashData tracks a color flash on a target after a hit
type FlashData struct {
	Remaining float64 // seconds
	R, G, B   float32 // color multipliers
}

var Flash = donburi.NewComponentType[FlashData]()

// AutoDestroyData removes the entity once its lifetime runs out.
type AutoDestroyData struct {
	Remaining float64 // seconds of game time
}

var AutoDestroy = donburi.NewComponentType[AutoDestroyData]()
