package systems

import (
	"image/color"

	"github.com/automoto/archery/assets"
	"github.com/automoto/archery/components"
	cfg "github.com/automoto/archery/config"
	"github.com/automoto/archery/mathutil"
	"github.com/automoto/archery/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// Off-screen entities are skipped. A small padding keeps sprites from popping at the edges.
const cullPadding = 32.0

// DrawTargets renders target boards, flashing after a hit.
func DrawTargets(ecs *ecs.ECS, screen *ebiten.Image) {
	view, ok := CurrentView(ecs)
	if !ok {
		return
	}
	ppu := view.Scale
	img := assets.TargetImage(int(cfg.Target.Width*ppu), int(cfg.Target.Height*ppu),
		cfg.UI.TargetColor, cfg.UI.TargetRingColor)
	iw, ih := float64(img.Bounds().Dx()), float64(img.Bounds().Dy())

	tags.Target.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		if !view.Visible(o.X, o.Y, o.W, o.H, cullPadding) {
			return
		}

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Scale(o.W*ppu/iw, o.H*ppu/ih)
		x, y := view.WorldToScreen(dmath.NewVec2(o.X, o.Y+o.H))
		drawOp.GeoM.Translate(x, y)

		if e.HasComponent(components.Flash) {
			if flash := components.Flash.Get(e); flash.Remaining > 0 {
				drawOp.ColorScale.Scale(flash.R, flash.G, flash.B, 1)
			}
		}
		screen.DrawImage(img, drawOp)
	})
}

// DrawArchers renders the archer body, the bow rotated to the aim angle and a nocked arrow
// while charging.
func DrawArchers(ecs *ecs.ECS, screen *ebiten.Image) {
	view, ok := CurrentView(ecs)
	if !ok {
		return
	}
	ppu := view.Scale

	tags.Archer.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		if !view.Visible(o.X, o.Y, o.W, o.H, cullPadding) {
			return
		}

		// Body: bottom-center of the image on the feet
		body := assets.ArcherImage(int(o.W*ppu), int(o.H*ppu), cfg.UI.ArcherColor)
		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Translate(-float64(body.Bounds().Dx())/2, -float64(body.Bounds().Dy()))
		fx, fy := view.WorldToScreen(dmath.NewVec2(o.X+o.W/2, o.Y))
		drawOp.GeoM.Translate(fx, fy)
		screen.DrawImage(body, drawOp)

		if !e.HasComponent(components.Sprite) {
			return
		}
		sprite := components.Sprite.Get(e)
		if sprite.Hidden || sprite.Image == nil {
			return
		}
		pivot := archerPivot(e)
		px, py := view.WorldToScreen(pivot)

		archer := components.Archer.Get(e)
		if archer.Controller != nil && archer.Controller.Charging() {
			drawNockedArrow(screen, view, archer, pivot, sprite.Rotation)
		}

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Translate(-sprite.PivotX, -sprite.PivotY)
		drawOp.GeoM.Rotate(sprite.Rotation)
		drawOp.GeoM.Translate(px, py)
		screen.DrawImage(sprite.Image, drawOp)
	})
}

// drawNockedArrow draws the arrow on the string, pulled back with the charge.
func drawNockedArrow(screen *ebiten.Image, view View, archer *components.ArcherData, pivot dmath.Vec2, rotation float64) {
	img := arrowImage(view.Scale)
	tip := archer.Controller.SpawnPoint(pivot)
	tx, ty := view.WorldToScreen(tip)
	pull := archer.Controller.ChargeRatio() * cfg.Arrow.Length * 0.3 * view.Scale

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(-float64(img.Bounds().Dx())-pull, -float64(img.Bounds().Dy())/2)
	drawOp.GeoM.Rotate(rotation)
	drawOp.GeoM.Translate(tx, ty)
	screen.DrawImage(img, drawOp)
}

// DrawArrows renders arrows with the tip on the collision box center.
func DrawArrows(ecs *ecs.ECS, screen *ebiten.Image) {
	view, ok := CurrentView(ecs)
	if !ok {
		return
	}
	img := arrowImage(view.Scale)
	iw, ih := float64(img.Bounds().Dx()), float64(img.Bounds().Dy())

	tags.Arrow.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		if !view.Visible(o.X-cfg.Arrow.Length, o.Y-cfg.Arrow.Length, o.W+2*cfg.Arrow.Length, o.H+2*cfg.Arrow.Length, cullPadding) {
			return
		}
		arrow := components.Arrow.Get(e)
		tx, ty := view.WorldToScreen(o.Center())

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Translate(-iw, -ih/2)
		drawOp.GeoM.Rotate(-arrow.Heading)
		drawOp.GeoM.Translate(tx, ty)
		screen.DrawImage(img, drawOp)
	})
}

func arrowImage(ppu float64) *ebiten.Image {
	return assets.ArrowImage(cfg.Arrow.Length*ppu, cfg.Arrow.Thickness*ppu, cfg.UI.ArrowColor)
}

// DrawTrajectory renders the preview dots of charging archers. Later points fade out.
func DrawTrajectory(ecs *ecs.ECS, screen *ebiten.Image) {
	if !GetOrCreateSettings(ecs).ShowTrajectory {
		return
	}
	view, ok := CurrentView(ecs)
	if !ok {
		return
	}

	components.Archer.Each(ecs.World, func(e *donburi.Entry) {
		archer := components.Archer.Get(e)
		if archer.Controller == nil {
			return
		}
		points := archer.Controller.Preview().Points
		for i, p := range points {
			if !p.Visible {
				continue
			}
			x, y := view.WorldToScreen(p.Position)
			c := fadeColor(cfg.UI.PreviewDotColor, 1-0.6*float64(i)/float64(len(points)))
			vector.FillCircle(screen, float32(x), float32(y), cfg.UI.PreviewDotRadius, c, true)
		}
	})
}

// fadeColor scales a premultiplied color by f in [0, 1].
func fadeColor(c color.RGBA, f float64) color.RGBA {
	f = mathutil.Clamp01(f)
	scale := func(v uint8) uint8 { return uint8(float64(v)*f + 0.5) }
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: scale(c.A)}
}
