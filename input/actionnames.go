package input

import (
	"maps"
	"slices"

	"github.com/lixenwraith/snakeflow/game"
)

// actionRegistry maps canonical action names to KeyEntry structs
// Used by keymap config loader to resolve TOML action strings to bindings
var actionRegistry = map[string]KeyEntry{
	// Unbind sentinel
	"none": {},

	// System
	"quit": action(IntentQuit),

	// Movement
	"up":    move(game.DirUp),
	"down":  move(game.DirDown),
	"left":  move(game.DirLeft),
	"right": move(game.DirRight),

	// Round control
	"pause":   action(IntentPause),
	"restart": action(IntentRestart),
	"save":    action(IntentSave),

	// View & feedback
	"zoom_in":      action(IntentZoomIn),
	"zoom_out":     action(IntentZoomOut),
	"toggle_debug": action(IntentToggleDebug),
	"toggle_sound": action(IntentToggleSound),
	"cycle_theme":  action(IntentCycleTheme),
}

// ActionNames lists every name accepted in a keymap file, sorted
func ActionNames() []string {
	return slices.Sorted(maps.Keys(actionRegistry))
}
