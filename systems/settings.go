package systems

import (
	"github.com/automoto/zoomview/archetypes"
	"github.com/automoto/zoomview/components"
	cfg "github.com/automoto/zoomview/config"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateSettings returns the viewer toggles, seeding them from config.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = archetypes.Settings.Spawn(e)
		components.Settings.SetValue(entry, components.SettingsData{
			HUD:   cfg.HUD.Visible,
			Debug: cfg.Debug.Enabled,
		})
	}
	return components.Settings.Get(entry)
}

// UpdateSettings applies the HUD and debug toggle keys.
func UpdateSettings(e *ecs.ECS) {
	input := GetInput(e)
	if input == nil {
		return
	}
	settings := GetOrCreateSettings(e)
	if input.JustPressedAction(cfg.ActionToggleHUD) {
		settings.HUD = !settings.HUD
	}
	if input.JustPressedAction(cfg.ActionToggleDebug) {
		settings.Debug = !settings.Debug
	}
}
