package components

import "github.com/yohamta/donburi"

// SettingsData stores the viewer's runtime toggles
type SettingsData struct {
	HUD   bool
	Debug bool
}

var Settings = donburi.NewComponentType[SettingsData]()
