package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/archery/components"
	cfg "github.com/automoto/archery/config"
	"github.com/automoto/archery/fonts"
	"github.com/automoto/archery/mathutil"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudMargin     = 10
	hudLineHeight = 16
)

// DrawHUD renders the score board in the top-left corner and the charge meter in the
// bottom-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	face := fonts.Regular.Get()

	if score, ok := getScore(ecs); ok {
		lines := []string{
			fmt.Sprintf("Score %d   Best %d", score.Score, score.Best),
			fmt.Sprintf("Arrows %d   Hits %d (%.0f%%)", score.Shots, score.Hits, score.Accuracy()*100),
		}
		for i, line := range lines {
			text.Draw(screen, line, face, hudMargin, hudMargin+hudLineHeight*(i+1), cfg.UI.HUDTextColor)
		}
	}

	archerEntry, ok := components.Archer.First(ecs.World)
	if !ok {
		return
	}
	archer := components.Archer.Get(archerEntry)
	if archer.Controller == nil {
		return
	}
	drawChargeMeter(screen, archer)

	if failed := archer.Controller.Stats().FailedSpawns; failed > 0 {
		msg := fmt.Sprintf("lost shots: %d", failed)
		text.Draw(screen, msg, fonts.Small.Get(), hudMargin, hudMargin+hudLineHeight*3+4, cfg.Orange)
	}
}

func drawChargeMeter(screen *ebiten.Image, archer *components.ArcherData) {
	ctrl := archer.Controller
	h := float32(screen.Bounds().Dy())
	x := cfg.UI.ChargeBarMargin
	y := h - cfg.UI.ChargeBarMargin - cfg.UI.ChargeBarHeight

	vector.FillRect(screen, x, y, cfg.UI.ChargeBarWidth, cfg.UI.ChargeBarHeight, cfg.UI.ChargeBarBgColor, false)
	if !ctrl.Charging() {
		return
	}

	ratio := ctrl.ChargeRatio()
	fill := ChargeColor(cfg.UI.ChargeBarLowColor, cfg.UI.ChargeBarMaxColor, ratio)
	vector.FillRect(screen, x, y, cfg.UI.ChargeBarWidth*float32(ratio), cfg.UI.ChargeBarHeight, fill, false)

	label := fmt.Sprintf("%.1f m/s", ctrl.Speed())
	if ratio >= 1 {
		label += "  MAX"
	}
	text.Draw(screen, label, fonts.Small.Get(), int(x), int(y)-4, cfg.UI.HUDTextColor)
}

// ChargeColor blends from low to full as the charge ratio goes from 0 to 1.
func ChargeColor(low, full color.RGBA, ratio float64) color.RGBA {
	t := mathutil.Clamp01(ratio)
	mix := func(a, b uint8) uint8 {
		return uint8(mathutil.Lerp(float64(a), float64(b), t) + 0.5)
	}
	return color.RGBA{
		R: mix(low.R, full.R),
		G: mix(low.G, full.G),
		B: mix(low.B, full.B),
		A: mix(low.A, full.A),
	}
}
