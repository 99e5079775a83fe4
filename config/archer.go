package config

import (
	"github.com/automoto/archery/shared/archery"
	dmath "github.com/yohamta/donburi/features/math"
)

// ArcherSettings returns controller settings for the live archer configuration.
func ArcherSettings() archery.Settings {
	return Archer.Settings()
}

// Settings converts the archer configuration into controller settings.
func (a ArcherConfig) Settings() archery.Settings {
	return archery.Settings{
		MaxChargeTime:        a.MaxChargeTime,
		MinSpeed:             a.MinArrowSpeed,
		MaxSpeed:             a.MaxArrowSpeed,
		RotationRate:         a.RotationSpeed,
		MinAngle:             a.MinAngle,
		MaxAngle:             a.MaxAngle,
		PreviewPoints:        a.TrajectoryPoints,
		SampleInterval:       a.PointInterval,
		MuzzleOffset:         dmath.Vec2{X: a.MuzzleOffsetX, Y: a.MuzzleOffsetY},
		ReleaseOnLostTrigger: a.ReleaseOnLostTrigger,
	}
}
