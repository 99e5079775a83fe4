package main

import (
	"flag"
	"image"

	"github.com/automoto/archery/assets"
	"github.com/automoto/archery/config"
	"github.com/automoto/archery/fonts"
	"github.com/automoto/archery/logging"
	"github.com/automoto/archery/scenes"
	"github.com/automoto/archery/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
	quit   bool
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

// Quit ends the game after the current frame.
func (g *Game) Quit() {
	g.quit = true
}

func NewGame() *Game {
	if err := fonts.LoadDefaults(); err != nil {
		logging.L().Fatal("failed to load fonts", zap.Error(err))
	}

	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewRangeScene(g)
	} else {
		g.scene = scenes.NewTitleScene(g)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	if g.quit {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "", "YAML file overriding archer, arrow, physics and log settings")
	debug := flag.Bool("debug", false, "start with the debug overlay on")
	skipMenu := flag.Bool("skip-menu", false, "start on the range instead of the title screen")
	flag.Parse()

	config.Debug.ShowHitboxes = *debug
	config.Debug.SkipMenu = *skipMenu

	var problems []string
	if *configPath != "" {
		fc, err := config.LoadFile(*configPath)
		if err != nil {
			// The logger isn't configured yet; report on the default one.
			fallback, _ := logging.New(logging.DefaultConfig())
			if fallback != nil {
				fallback.Fatal("failed to load config", zap.Error(err))
			}
			panic(err)
		}
		config.Apply(fc)
		problems = fc.Validate()
	}

	logger, err := logging.New(config.Log)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()
	logging.Set(logger)

	for _, p := range problems {
		logger.Warn("config", zap.String("problem", p))
	}

	if err := assets.LoadShaders(); err != nil {
		logger.Warn("shaders unavailable, using flat sky", zap.Error(err))
	}

	// Initialize persistence; the game runs without saves if this fails
	_ = systems.InitPersistence("archery-range")

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(NewGame()); err != nil {
		logger.Fatal("game exited", zap.Error(err))
	}
}
