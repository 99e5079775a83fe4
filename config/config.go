package config

import (
	"image/color"

	"github.com/automoto/archery/logging"
)

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string

	// PixelsPerUnit scales world units (meters) to screen pixels.
	PixelsPerUnit float64
	// CellSize is the collision grid cell in world units.
	CellSize int
}

// ArcherConfig contains the archer's aim and charge tuning
type ArcherConfig struct {
	MaxChargeTime    float64 `yaml:"max_charge_time"`   // seconds to full draw
	MinArrowSpeed    float64 `yaml:"min_arrow_speed"`   // units/s at zero charge
	MaxArrowSpeed    float64 `yaml:"max_arrow_speed"`   // units/s at full charge
	RotationSpeed    float64 `yaml:"rotation_speed"`    // degrees per second
	MinAngle         float64 `yaml:"min_angle"`         // degrees
	MaxAngle         float64 `yaml:"max_angle"`         // degrees
	TrajectoryPoints int     `yaml:"trajectory_points"` // preview samples
	PointInterval    float64 `yaml:"point_interval"`    // seconds between preview samples

	// Muzzle position relative to the archer pivot at 0 degrees
	MuzzleOffsetX float64 `yaml:"muzzle_offset_x"`
	MuzzleOffsetY float64 `yaml:"muzzle_offset_y"`

	// Fire the shot if the trigger disappears without a release event
	ReleaseOnLostTrigger bool `yaml:"release_on_lost_trigger"`

	// Body dimensions in units
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// Right stick aiming: distance of the virtual pointer from the pivot
	StickAimReach float64 `yaml:"stick_aim_reach"`
}

// ArrowConfig contains arrow projectile configuration
type ArrowConfig struct {
	Lifetime    float64 `yaml:"lifetime"`      // seconds before the arrow is removed
	Length      float64 `yaml:"length"`        // units, visual
	Thickness   float64 `yaml:"thickness"`     // units, visual
	HitboxSize  float64 `yaml:"hitbox_size"`   // units, square collision box at the tip
	MaxInFlight int     `yaml:"max_in_flight"` // oldest arrows are removed past this
}

// PhysicsConfig contains world physics values
type PhysicsConfig struct {
	Gravity float64 `yaml:"gravity"` // units/s^2, sign is ignored by the archer
}

// TargetConfig contains target configuration
type TargetConfig struct {
	Width           float64
	Height          float64
	DefaultPoints   int
	BullseyeBonus   int // extra points for hitting the middle third
	HitFlashSeconds float64
	SwayEase        string // gween ease name for swaying targets
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing float64 // How fast camera follows the archer (0.0-1.0)
	LookAhead       float64 // fraction of pointer offset the camera leans toward
	MaxLookAhead    float64 // units
}

// ScreenShakeConfig contains screen shake effect configuration
type ScreenShakeConfig struct {
	HitIntensity float64 // pixels
	HitDuration  int     // frames
}

// UIConfig contains HUD and preview rendering values
type UIConfig struct {
	PreviewDotRadius  float32
	PreviewDotColor   color.RGBA
	ChargeBarWidth    float32
	ChargeBarHeight   float32
	ChargeBarMargin   float32
	ChargeBarBgColor  color.RGBA
	ChargeBarLowColor color.RGBA
	ChargeBarMaxColor color.RGBA
	HUDTextColor      color.RGBA
	SkyColor          color.RGBA
	SkyHorizonColor   color.RGBA
	WallColor         color.RGBA
	ArcherColor       color.RGBA
	BowColor          color.RGBA
	ArrowColor        color.RGBA
	TargetColor       color.RGBA
	TargetRingColor   color.RGBA
}

// PauseConfig contains pause overlay configuration values
type PauseConfig struct {
	OverlayColor color.RGBA
	TextColor    color.RGBA
	Title        string
	Hint         string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu     bool // Skip the title screen
	ShowHitboxes bool // Start with the debug overlay on
}

// Global configuration instances
var C *Config
var Archer ArcherConfig
var Arrow ArrowConfig
var Physics PhysicsConfig
var Target TargetConfig
var Camera CameraConfig
var ScreenShake ScreenShakeConfig
var UI UIConfig
var Pause PauseConfig
var Debug DebugConfig
var Log logging.Config

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
)

func init() {
	C = &Config{
		Width:         640,
		Height:        360,
		Title:         "Archery Range",
		PixelsPerUnit: 20,
		CellSize:      2,
	}

	Archer = ArcherConfig{
		MaxChargeTime:        2.0,
		MinArrowSpeed:        10.0,
		MaxArrowSpeed:        30.0,
		RotationSpeed:        100.0,
		MinAngle:             -60.0,
		MaxAngle:             60.0,
		TrajectoryPoints:     5,
		PointInterval:        0.1,
		MuzzleOffsetX:        0.9,
		MuzzleOffsetY:        0,
		ReleaseOnLostTrigger: true,
		Width:                0.8,
		Height:               1.8,
		StickAimReach:        10.0,
	}

	Arrow = ArrowConfig{
		Lifetime:    5.0,
		Length:      1.2,
		Thickness:   0.1,
		HitboxSize:  0.25,
		MaxInFlight: 24,
	}

	Physics = PhysicsConfig{
		Gravity: 9.8,
	}

	Target = TargetConfig{
		Width:           0.6,
		Height:          2.4,
		DefaultPoints:   10,
		BullseyeBonus:   15,
		HitFlashSeconds: 0.25,
		SwayEase:        "InOutSine",
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.1,
		LookAhead:       0.35,
		MaxLookAhead:    10,
	}

	ScreenShake = ScreenShakeConfig{
		HitIntensity: 3.0,
		HitDuration:  10,
	}

	UI = UIConfig{
		PreviewDotRadius:  2.5,
		PreviewDotColor:   color.RGBA{R: 200, G: 200, B: 200, A: 200}, // premultiplied white
		ChargeBarWidth:    120,
		ChargeBarHeight:   10,
		ChargeBarMargin:   10,
		ChargeBarBgColor:  color.RGBA{R: 40, G: 40, B: 40, A: 255},
		ChargeBarLowColor: color.RGBA{R: 240, G: 200, B: 40, A: 255},
		ChargeBarMaxColor: color.RGBA{R: 240, G: 60, B: 40, A: 255},
		HUDTextColor:      White,
		SkyColor:          color.RGBA{R: 120, G: 170, B: 220, A: 255},
		SkyHorizonColor:   color.RGBA{R: 220, G: 225, B: 200, A: 255},
		WallColor:         color.RGBA{R: 90, G: 70, B: 50, A: 255},
		ArcherColor:       color.RGBA{R: 40, G: 90, B: 60, A: 255},
		BowColor:          color.RGBA{R: 140, G: 90, B: 40, A: 255},
		ArrowColor:        color.RGBA{R: 230, G: 230, B: 220, A: 255},
		TargetColor:       color.RGBA{R: 230, G: 230, B: 230, A: 255},
		TargetRingColor:   color.RGBA{R: 210, G: 40, B: 40, A: 255},
	}

	Pause = PauseConfig{
		OverlayColor: BlackOverlay,
		TextColor:    White,
		Title:        "PAUSED",
		Hint:         "Esc: Resume   R: Restart   T: Trajectory   M: Mute   F3: Debug",
	}

	Log = logging.DefaultConfig()
}
