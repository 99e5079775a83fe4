package systems

import (
	"math"

	"github.com/automoto/archery/components"
	"github.com/automoto/archery/config"
	"github.com/automoto/archery/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// View maps between world units (y up) and screen pixels (y down).
type View struct {
	Center dmath.Vec2 // world position at the middle of the screen
	Width  float64    // screen pixels
	Height float64
	Scale  float64    // pixels per world unit
	Shake  dmath.Vec2 // pixel offset
}

// WorldToScreen converts a world position to screen pixels.
func (v View) WorldToScreen(p dmath.Vec2) (x, y float64) {
	x = (p.X-v.Center.X)*v.Scale + v.Width/2 + v.Shake.X
	y = v.Height/2 - (p.Y-v.Center.Y)*v.Scale + v.Shake.Y
	return x, y
}

// ScreenToWorld converts screen pixels to a world position.
func (v View) ScreenToWorld(x, y float64) dmath.Vec2 {
	return dmath.NewVec2(
		(x-v.Width/2-v.Shake.X)/v.Scale+v.Center.X,
		(v.Height/2+v.Shake.Y-y)/v.Scale+v.Center.Y,
	)
}

// Visible reports whether a world-space box intersects the screen, with padding in pixels.
func (v View) Visible(x, y, w, h, padding float64) bool {
	halfW := (v.Width/2 + padding) / v.Scale
	halfH := (v.Height/2 + padding) / v.Scale
	return x+w >= v.Center.X-halfW && x <= v.Center.X+halfW &&
		y+h >= v.Center.Y-halfH && y <= v.Center.Y+halfH
}

// CurrentView returns the view for the scene's camera on a screen of the configured size.
func CurrentView(e *ecs.ECS) (View, bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return View{}, false
	}
	camera := components.Camera.Get(cameraEntry)
	return View{
		Center: camera.Position,
		Width:  float64(config.C.Width),
		Height: float64(config.C.Height),
		Scale:  config.C.PixelsPerUnit,
		Shake:  camera.Offset,
	}, true
}

// ScreenToWorld converts a screen position using the scene's camera. Without a camera the
// screen is treated as the bottom-left of the world.
func ScreenToWorld(e *ecs.ECS, x, y float64) dmath.Vec2 {
	view, ok := CurrentView(e)
	if !ok {
		view = View{
			Width:  float64(config.C.Width),
			Height: float64(config.C.Height),
			Scale:  config.C.PixelsPerUnit,
		}
		view.Center = dmath.NewVec2(view.Width/2/view.Scale, view.Height/2/view.Scale)
	}
	return view.ScreenToWorld(x, y)
}

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	updateScreenShake(cameraEntry, camera)

	archerEntry, ok := tags.Archer.First(e.World)
	if !ok {
		return
	}
	pivot := archerPivot(archerEntry)

	// Lean toward where the archer is aiming
	input := getOrCreateInput(e)
	pointer := aimPointer(e, input, pivot)
	lean := pointer.Sub(pivot).MulScalar(config.Camera.LookAhead)
	if l := math.Hypot(lean.X, lean.Y); l > config.Camera.MaxLookAhead && l > 0 {
		lean = lean.MulScalar(config.Camera.MaxLookAhead / l)
	}
	camera.LookAhead = camera.LookAhead.Add(lean.Sub(camera.LookAhead).MulScalar(config.Camera.FollowSmoothing))

	target := pivot.Add(camera.LookAhead)

	if levelEntry, ok := components.Level.First(e.World); ok {
		if level := components.Level.Get(levelEntry); level.Range != nil {
			halfW := float64(config.C.Width) / 2 / config.C.PixelsPerUnit
			halfH := float64(config.C.Height) / 2 / config.C.PixelsPerUnit
			target.X = clampCamera(target.X, halfW, level.Range.Width)
			target.Y = clampCamera(target.Y, halfH, level.Range.Height)
		}
	}

	camera.Position = camera.Position.Add(target.Sub(camera.Position).MulScalar(config.Camera.FollowSmoothing))
}

// clampCamera keeps a view of half-extent half inside [0, size], centering when it cannot fit.
func clampCamera(v, half, size float64) float64 {
	if size <= half*2 {
		return size / 2
	}
	return math.Max(half, math.Min(size-half, v))
}

// updateScreenShake sets the shake offset on the camera and decrements duration
func updateScreenShake(cameraEntry *donburi.Entry, camera *components.CameraData) {
	camera.Offset = dmath.Vec2{}
	if !cameraEntry.HasComponent(components.ScreenShake) {
		return
	}

	shake := components.ScreenShake.Get(cameraEntry)
	shake.Elapsed++

	// Calculate decaying intensity
	progress := float64(shake.Duration-shake.Elapsed) / float64(shake.Duration)
	if progress < 0 {
		progress = 0
	}
	currentIntensity := shake.Intensity * progress

	camera.Offset = dmath.NewVec2(
		math.Sin(float64(shake.Elapsed)*1.1)*currentIntensity,
		math.Cos(float64(shake.Elapsed)*1.3)*currentIntensity,
	)

	if shake.Elapsed >= shake.Duration {
		cameraEntry.RemoveComponent(components.ScreenShake)
	}
}

// TriggerScreenShake starts a screen shake effect
func TriggerScreenShake(ecs *ecs.ECS, intensity float64, duration int) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok || duration <= 0 {
		return
	}

	if cameraEntry.HasComponent(components.ScreenShake) {
		shake := components.ScreenShake.Get(cameraEntry)
		// Only override if new shake is stronger
		if intensity > shake.Intensity {
			shake.Intensity = intensity
			shake.Duration = duration
			shake.Elapsed = 0
		}
	} else {
		cameraEntry.AddComponent(components.ScreenShake)
		components.ScreenShake.Set(cameraEntry, &components.ScreenShakeData{
			Intensity: intensity,
			Duration:  duration,
		})
	}
}
