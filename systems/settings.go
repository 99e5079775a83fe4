package systems

import (
	"github.com/automoto/archery/components"
	cfg "github.com/automoto/archery/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings handles the toggle keys that work in and out of pause. Changes are saved.
func UpdateSettings(ecs *ecs.ECS) {
	settings := GetOrCreateSettings(ecs)
	input := getOrCreateInput(ecs)

	changed := false
	if GetAction(input, cfg.ActionDebug).JustPressed {
		settings.Debug = !settings.Debug
		changed = true
	}
	if GetAction(input, cfg.ActionTrajectory).JustPressed {
		settings.ShowTrajectory = !settings.ShowTrajectory
		changed = true
	}
	if GetAction(input, cfg.ActionMute).JustPressed {
		settings.Muted = !settings.Muted
		applyMute(ecs, settings.Muted)
		changed = true
	}

	if changed {
		PlaySFX(ecs, cfg.SoundMenuSelect)
		SaveCurrentSettings(settings)
	}
}

func applyMute(e *ecs.ECS, muted bool) {
	if muted {
		SetSFXVolume(e, 0)
		return
	}
	SetSFXVolume(e, cfg.Audio.DefaultSFXVol)
}

// GetOrCreateSettings returns the singleton Settings component. A new one starts from the
// saved settings, or the defaults when nothing was saved.
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Settings))
		initial := initialSettings()
		components.Settings.SetValue(entry, initial)
		applyMute(ecs, initial.Muted)
	}
	return components.Settings.Get(entry)
}

func initialSettings() components.SettingsData {
	s := components.SettingsData{
		Debug:          cfg.Debug.ShowHitboxes,
		ShowTrajectory: true,
	}
	if saved, err := LoadSettings(); err == nil && saved != nil {
		s.Debug = s.Debug || saved.Debug
		s.ShowTrajectory = saved.ShowTrajectory
		s.Muted = saved.Muted
	}
	return s
}
