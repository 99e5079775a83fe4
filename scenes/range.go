package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/archery/assets"
	"github.com/automoto/archery/components"
	cfg "github.com/automoto/archery/config"
	"github.com/automoto/archery/logging"
	"github.com/automoto/archery/systems"
	"github.com/automoto/archery/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
	"go.uber.org/zap"
)

// RangeScene is the shooting range: one archer, walls and scoring targets.
type RangeScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

// NewRangeScene creates a new range scene
func NewRangeScene(sc SceneChanger) *RangeScene {
	return &RangeScene{sceneChanger: sc}
}

func (rs *RangeScene) Update() {
	rs.once.Do(rs.configure)
	rs.ecs.Update()

	input, ok := components.Input.First(rs.ecs.World)
	if !ok {
		return
	}
	if systems.GetAction(components.Input.Get(input), cfg.ActionRestart).JustPressed {
		rs.end()
		rs.sceneChanger.ChangeScene(NewRangeScene(rs.sceneChanger))
	}
}

// end folds the session into the saved statistics.
func (rs *RangeScene) end() {
	score, ok := components.Score.First(rs.ecs.World)
	if !ok {
		return
	}
	systems.SaveSessionStats(components.Score.Get(score))
}

func (rs *RangeScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if rs.ecs == nil {
		return
	}
	rs.ecs.Draw(screen)
}

func (rs *RangeScene) configure() {
	// Preload assets to avoid lag on the first shot
	systems.PreloadAllSFX()
	if err := assets.LoadShaders(); err != nil {
		logging.L().Warn("failed to load shaders", zap.Error(err))
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	// Audio system (runs first, even when paused for menu sounds)
	ecs.AddSystem(systems.UpdateAudio)

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePause)
	ecs.AddSystem(systems.UpdateSettings)

	// Game systems wrapped with pause checks
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateClock))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateTargets))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateArchers))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateArrows))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateEffects))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCamera))

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawTargets)
	ecs.AddRenderer(cfg.Default, systems.DrawArrows)
	ecs.AddRenderer(cfg.Default, systems.DrawArchers)
	ecs.AddRenderer(cfg.Default, systems.DrawTrajectory)
	ecs.AddRenderer(cfg.Overlay, systems.DrawHUD)
	ecs.AddRenderer(cfg.Overlay, systems.DrawDebug)
	ecs.AddRenderer(cfg.Overlay, systems.DrawPause)

	rs.ecs = ecs

	// Create the level entity and load level data FIRST.
	level, err := factory.CreateLevel(rs.ecs, assets.LevelFS(), assets.RangeMap)
	if err != nil {
		logging.L().Fatal("failed to load range", zap.String("map", assets.RangeMap), zap.Error(err))
	}
	data := components.Level.Get(level).Range

	// Now create the space for collision detection using the level's dimensions.
	factory.CreateSpace(rs.ecs, data.Width, data.Height, cfg.C.CellSize)

	for _, wall := range data.Walls {
		factory.CreateWall(rs.ecs, wall)
	}
	for _, target := range data.Targets {
		factory.CreateTarget(rs.ecs, target)
	}

	factory.CreateClock(rs.ecs)
	factory.CreateScore(rs.ecs, systems.BestScore())

	factory.CreateArcher(rs.ecs, data.ArcherX, data.ArcherY,
		systems.NewSpawner(rs.ecs), systems.WorldGravity(), logging.L().Named("archer"))
	factory.CreateCamera(rs.ecs, dmath.NewVec2(data.ArcherX, data.ArcherY))

	logging.L().Info("range ready",
		zap.String("map", assets.RangeMap),
		zap.Int("walls", len(data.Walls)),
		zap.Int("targets", len(data.Targets)),
	)
}
