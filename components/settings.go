package components

import "github.com/yohamta/donburi"

// SettingsData holds player toggles that are persisted between sessions
type SettingsData struct {
	Debug          bool
	ShowTrajectory bool
	Muted          bool
}

var Settings = donburi.NewComponentType[SettingsData]()
