package systems

import (
	"github.com/automoto/archery/assets"
	"github.com/automoto/archery/components"
	cfg "github.com/automoto/archery/config"
	"github.com/automoto/archery/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

var skyOp = &ebiten.DrawRectShaderOptions{}

// DrawLevel renders the sky and the range walls.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if assets.SkyShader != nil {
		skyOp.Uniforms = assets.SkyUniforms(cfg.UI.SkyColor, cfg.UI.SkyHorizonColor, h)
		screen.DrawRectShader(w, h, assets.SkyShader, skyOp)
	} else {
		screen.Fill(cfg.UI.SkyColor)
	}

	view, ok := CurrentView(ecs)
	if !ok {
		return
	}

	tags.Wall.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		if !view.Visible(o.X, o.Y, o.W, o.H, 8) {
			return
		}
		// Top-left in screen space is the world top-left corner
		x, y := view.WorldToScreen(dmath.NewVec2(o.X, o.Y+o.H))
		vector.FillRect(screen, float32(x), float32(y),
			float32(o.W*view.Scale), float32(o.H*view.Scale), cfg.UI.WallColor, false)
	})
}
