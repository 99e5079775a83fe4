package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/archery/components"
	cfg "github.com/automoto/archery/config"
	"github.com/automoto/archery/systems"
	"github.com/automoto/archery/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// TitleScene shows the title screen and lifetime statistics.
type TitleScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	titleUI      *ui.TitleUI
	once         sync.Once
	start        bool
}

// NewTitleScene creates a new title scene
func NewTitleScene(sc SceneChanger) *TitleScene {
	return &TitleScene{sceneChanger: sc}
}

func (ts *TitleScene) Update() {
	ts.once.Do(ts.configure)

	// Sounds queued by a click last frame play before the scene changes.
	ts.ecs.Update()
	if ts.start {
		ts.sceneChanger.ChangeScene(NewRangeScene(ts.sceneChanger))
		return
	}
	ts.titleUI.Update()
}

func (ts *TitleScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ts.titleUI == nil {
		return
	}
	ts.titleUI.UI.Draw(screen)
}

// updateKeys starts the range from the keyboard or gamepad.
func (ts *TitleScene) updateKeys(e *ecs.ECS) {
	input, ok := components.Input.First(e.World)
	if !ok {
		return
	}
	if systems.GetAction(components.Input.Get(input), cfg.ActionMenuSelect).JustPressed {
		systems.PlaySFX(e, cfg.SoundMenuSelect)
		ts.start = true
	}
}

func (ts *TitleScene) configure() {
	ts.ecs = ecs.NewECS(donburi.NewWorld())
	ts.ecs.AddSystem(systems.UpdateInput)
	ts.ecs.AddSystem(ts.updateKeys)
	ts.ecs.AddSystem(systems.UpdateAudio)

	settings := systems.GetOrCreateSettings(ts.ecs)

	ts.titleUI = ui.NewTitleUI(
		cfg.C.Title,
		func() {
			systems.PlaySFX(ts.ecs, cfg.SoundMenuSelect)
			ts.start = true
		},
		func() bool {
			settings.ShowTrajectory = !settings.ShowTrajectory
			systems.PlaySFX(ts.ecs, cfg.SoundMenuSelect)
			systems.SaveCurrentSettings(settings)
			return settings.ShowTrajectory
		},
		ts.sceneChanger.Quit,
	)
	ts.titleUI.SetTrajectory(settings.ShowTrajectory)

	if stats, err := systems.LoadStats(); err == nil && stats != nil {
		ts.titleUI.SetStats(stats.BestScore, stats.TotalShots, stats.TotalHits)
	} else {
		ts.titleUI.SetStats(0, 0, 0)
	}
}
