package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/archery/components"
	"github.com/automoto/archery/fonts"
	"github.com/automoto/archery/shared/archery"
	"github.com/automoto/archery/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

var (
	debugSolidColor  = color.RGBA{100, 100, 100, 255}
	debugTargetColor = color.RGBA{255, 0, 0, 255}
	debugArrowColor  = color.RGBA{0, 255, 0, 255}
	debugArcherColor = color.RGBA{0, 0, 255, 255}
	debugOtherColor  = color.RGBA{0, 255, 255, 255}
)

// DrawDebug outlines every collision object and prints the archer's controller state.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	view, ok := CurrentView(ecs)
	if !ok {
		return
	}

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			if !view.Visible(obj.X, obj.Y, obj.W, obj.H, 0) {
				continue
			}
			drawOutline(screen, view, obj, debugColor(obj))
		}
	}

	drawControllerState(ecs, screen)
}

func debugColor(obj *resolv.Object) color.RGBA {
	switch {
	case obj.HasTags(tags.ResolvSolid):
		return debugSolidColor
	case obj.HasTags(tags.ResolvTarget):
		return debugTargetColor
	case obj.HasTags(tags.ResolvArrow):
		return debugArrowColor
	case obj.HasTags(tags.ResolvArcher):
		return debugArcherColor
	}
	return debugOtherColor
}

func drawOutline(screen *ebiten.Image, view View, obj *resolv.Object, c color.RGBA) {
	// Top-left on screen is the object's top-left in world space.
	x, y := view.WorldToScreen(dmath.NewVec2(obj.X, obj.Y+obj.H))
	w := float32(obj.W * view.Scale)
	h := float32(obj.H * view.Scale)
	fx, fy := float32(x), float32(y)

	vector.FillRect(screen, fx, fy, w, 1, c, false)
	vector.FillRect(screen, fx, fy+h-1, w, 1, c, false)
	vector.FillRect(screen, fx, fy, 1, h, c, false)
	vector.FillRect(screen, fx+w-1, fy, 1, h, c, false)
}

func drawControllerState(ecs *ecs.ECS, screen *ebiten.Image) {
	archerEntry, ok := components.Archer.First(ecs.World)
	if !ok {
		return
	}
	ctrl := components.Archer.Get(archerEntry).Controller
	if ctrl == nil {
		return
	}

	lines := append(controllerLines(ctrl),
		fmt.Sprintf("arrows in flight %d  TPS %.0f", countArrows(ecs), ebiten.ActualTPS()))

	face := fonts.Small.Get()
	w := screen.Bounds().Dx()
	for i, line := range lines {
		text.Draw(screen, line, face, w-260, 16+i*12, debugOtherColor)
	}
}

// controllerLines describes the controller's aim, charge and last shot.
func controllerLines(ctrl *archery.Controller) []string {
	charge := ctrl.Charge()
	stats := ctrl.Stats()
	return []string{
		fmt.Sprintf("angle %.1f  phase %s  elapsed %.2fs", ctrl.Angle(), charge.Phase, charge.Elapsed),
		fmt.Sprintf("ratio %.2f  speed %.1f", ctrl.ChargeRatio(), ctrl.Speed()),
		fmt.Sprintf("shots %d  failed %d  last %.1f @ %.2f", stats.Shots, stats.FailedSpawns, stats.LastSpeed, stats.LastRatio),
	}
}

func countArrows(e *ecs.ECS) int {
	n := 0
	tags.Arrow.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}
