package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/automoto/archery/logging"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"go.uber.org/zap"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	buttonIdle    = color.RGBA{60, 60, 80, 255}
	buttonHover   = color.RGBA{80, 80, 100, 255}
	buttonPressed = color.RGBA{40, 40, 60, 255}
	labelColor    = color.RGBA{200, 200, 200, 255}
	white         = color.RGBA{255, 255, 255, 255}
)

// TitleUI is the title screen: best score, the trajectory preview toggle, start and quit.
type TitleUI struct {
	UI *ebitenui.UI

	OnStart            func()
	OnToggleTrajectory func() bool
	OnQuit             func()

	statsLabel      *widget.Label
	trajectoryLabel *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func NewTitleUI(title string, onStart func(), onToggleTrajectory func() bool, onQuit func()) *TitleUI {
	ui := &TitleUI{
		OnStart:            onStart,
		OnToggleTrajectory: onToggleTrajectory,
		OnQuit:             onQuit,
	}
	ui.loadFonts()
	ui.buildUI(title)
	return ui
}

func (ui *TitleUI) loadFonts() {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		logging.L().Fatal("failed to load UI font", zap.Error(err))
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		logging.L().Fatal("failed to load UI font", zap.Error(err))
	}

	ui.titleFace = &text.GoTextFace{Source: bold, Size: 28}
	ui.normalFace = &text.GoTextFace{Source: regular, Size: 12}
	ui.smallFace = &text.GoTextFace{Source: regular, Size: 10}
}

func (ui *TitleUI) buildUI(title string) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 30, 40, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(title, &ui.titleFace, &widget.LabelColor{Idle: white}),
	))

	ui.statsLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &ui.normalFace, &widget.LabelColor{Idle: labelColor}),
	)
	contentContainer.AddChild(ui.statsLabel)

	contentContainer.AddChild(ui.newButton("Start", 160, func() {
		if ui.OnStart != nil {
			ui.OnStart()
		}
	}))
	contentContainer.AddChild(ui.newButton("Trajectory Preview", 160, func() {
		if ui.OnToggleTrajectory != nil {
			ui.SetTrajectory(ui.OnToggleTrajectory())
		}
	}))

	ui.trajectoryLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &ui.smallFace, &widget.LabelColor{Idle: color.RGBA{255, 200, 100, 255}}),
	)
	contentContainer.AddChild(ui.trajectoryLabel)

	contentContainer.AddChild(ui.newButton("Quit", 160, func() {
		if ui.OnQuit != nil {
			ui.OnQuit()
		}
	}))

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Hold to draw, release to shoot", &ui.smallFace, &widget.LabelColor{Idle: labelColor}),
	))

	rootContainer.AddChild(contentContainer)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *TitleUI) newButton(label string, width int, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(width, 28)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(buttonIdle),
			Hover:   image.NewNineSliceColor(buttonHover),
			Pressed: image.NewNineSliceColor(buttonPressed),
		}),
		widget.ButtonOpts.Text(label, &ui.normalFace, &widget.ButtonTextColor{
			Idle:    white,
			Hover:   color.RGBA{200, 255, 200, 255},
			Pressed: color.RGBA{150, 200, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

// SetStats shows the lifetime statistics.
func (ui *TitleUI) SetStats(best, shots, hits int) {
	if ui.statsLabel == nil {
		return
	}
	ui.statsLabel.Label = fmt.Sprintf("Best %d   Arrows %d   Hits %d", best, shots, hits)
}

func (ui *TitleUI) SetTrajectory(on bool) {
	if ui.trajectoryLabel == nil {
		return
	}
	state := "off"
	if on {
		state = "on"
	}
	ui.trajectoryLabel.Label = "Trajectory preview: " + state
}

func (ui *TitleUI) Update() {
	ui.UI.Update()
}
