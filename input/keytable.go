package input

import (
	"maps"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snakeflow/game"
)

// KeyEntry describes what a key does without function pointers
type KeyEntry struct {
	Intent    IntentType
	Direction game.Direction
}

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, function keys)
	SpecialKeys map[tcell.Key]KeyEntry

	// Printable rune bindings
	Runes map[rune]KeyEntry
}

func move(d game.Direction) KeyEntry {
	return KeyEntry{Intent: IntentDirection, Direction: d}
}

func action(t IntentType) KeyEntry {
	return KeyEntry{Intent: t}
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlC:  action(IntentQuit),
			tcell.KeyCtrlQ:  action(IntentQuit),
			tcell.KeyCtrlS:  action(IntentSave),
			tcell.KeyEscape: action(IntentPause),
			tcell.KeyUp:     move(game.DirUp),
			tcell.KeyDown:   move(game.DirDown),
			tcell.KeyLeft:   move(game.DirLeft),
			tcell.KeyRight:  move(game.DirRight),
			tcell.KeyF1:     action(IntentToggleDebug),
			tcell.KeyEnter:  action(IntentPause),
		},

		Runes: map[rune]KeyEntry{
			// Directions: wasd and vi keys
			'w': move(game.DirUp),
			'a': move(game.DirLeft),
			's': move(game.DirDown),
			'd': move(game.DirRight),
			'k': move(game.DirUp),
			'j': move(game.DirDown),
			'h': move(game.DirLeft),
			'l': move(game.DirRight),

			' ': action(IntentPause),
			'p': action(IntentPause),
			'r': action(IntentRestart),
			'S': action(IntentSave),
			'q': action(IntentQuit),
			'+': action(IntentZoomIn),
			'=': action(IntentZoomIn),
			'-': action(IntentZoomOut),
			'_': action(IntentZoomOut),
			'?': action(IntentToggleDebug),
			'm': action(IntentToggleSound),
			't': action(IntentCycleTheme),
		},
	}
}

// Merge returns a copy of kt with every binding of override applied on top
// Entries with IntentNone unbind the key
func (kt *KeyTable) Merge(override *KeyTable) *KeyTable {
	merged := &KeyTable{
		SpecialKeys: maps.Clone(kt.SpecialKeys),
		Runes:       maps.Clone(kt.Runes),
	}
	if override == nil {
		return merged
	}
	for k, e := range override.SpecialKeys {
		if e.Intent == IntentNone {
			delete(merged.SpecialKeys, k)
			continue
		}
		merged.SpecialKeys[k] = e
	}
	for r, e := range override.Runes {
		if e.Intent == IntentNone {
			delete(merged.Runes, r)
			continue
		}
		merged.Runes[r] = e
	}
	return merged
}
