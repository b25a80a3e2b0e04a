package input

import "github.com/lixenwraith/snakeflow/game"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit   // q, Ctrl+C
	IntentResize // Terminal resize event

	// Round control
	IntentDirection // arrows, wasd, hjkl, swipe
	IntentTap       // click, resolved against the head by TapDirection
	IntentPause     // space, esc, p; starts an idle round
	IntentRestart   // r
	IntentSave      // S, Ctrl+S

	// View & feedback
	IntentZoomIn      // +, =
	IntentZoomOut     // -, _
	IntentToggleDebug // F1, ?
	IntentToggleSound // m
	IntentCycleTheme  // t
)

var intentNames = map[IntentType]string{
	IntentNone:        "none",
	IntentQuit:        "quit",
	IntentResize:      "resize",
	IntentDirection:   "direction",
	IntentTap:         "tap",
	IntentPause:       "pause",
	IntentRestart:     "restart",
	IntentSave:        "save",
	IntentZoomIn:      "zoom_in",
	IntentZoomOut:     "zoom_out",
	IntentToggleDebug: "toggle_debug",
	IntentToggleSound: "toggle_sound",
	IntentCycleTheme:  "cycle_theme",
}

func (t IntentType) String() string {
	if name, ok := intentNames[t]; ok {
		return name
	}
	return "unknown"
}

// Intent is the parsed form of one terminal event
type Intent struct {
	Type      IntentType
	Direction game.Direction // IntentDirection
	X, Y      int            // IntentTap, screen cell of the click
}
