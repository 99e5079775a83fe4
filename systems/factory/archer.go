package factory

import (
	"github.com/automoto/archery/archetypes"
	"github.com/automoto/archery/assets"
	"github.com/automoto/archery/components"
	cfg "github.com/automoto/archery/config"
	"github.com/automoto/archery/shared/archery"
	"github.com/automoto/archery/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// CreateArcher places an archer with its feet at (x, y). Shots go through spawner.
func CreateArcher(ecs *ecs.ECS, x, y float64, spawner archery.Spawner, gravity archery.GravitySource, log *zap.Logger) *donburi.Entry {
	archer := archetypes.Archer.Spawn(ecs)

	w, h := cfg.Archer.Width, cfg.Archer.Height
	obj := resolv.NewObject(x-w/2, y, w, h, tags.ResolvArcher)
	obj.Data = archer
	components.Object.SetValue(archer, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	ctrl := archery.NewController(cfg.ArcherSettings(), spawner, gravity, archery.WithLogger(log))
	components.Archer.SetValue(archer, components.ArcherData{
		Controller:  ctrl,
		PivotHeight: h * 0.75,
	})

	ppu := cfg.C.PixelsPerUnit
	bow := assets.BowImage(h*0.6*ppu, 2, cfg.UI.BowColor)
	components.Sprite.SetValue(archer, components.SpriteData{
		Image:  bow,
		PivotX: 0,
		PivotY: float64(bow.Bounds().Dy()) / 2,
	})

	return archer
}
