package input

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/pelletier/go-toml/v2"
)

// KeymapFile is the optional keymap inside the config directory
const KeymapFile = "keys.toml"

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
	"equals":    '=',
	"plus":      '+',
	"minus":     '-',
}

// specialKeyNames maps TOML key names to terminal keys
var specialKeyNames = func() map[string]tcell.Key {
	names := map[string]tcell.Key{
		"up":        tcell.KeyUp,
		"down":      tcell.KeyDown,
		"left":      tcell.KeyLeft,
		"right":     tcell.KeyRight,
		"esc":       tcell.KeyEscape,
		"escape":    tcell.KeyEscape,
		"enter":     tcell.KeyEnter,
		"tab":       tcell.KeyTab,
		"backspace": tcell.KeyBackspace2,
		"home":      tcell.KeyHome,
		"end":       tcell.KeyEnd,
		"pgup":      tcell.KeyPgUp,
		"pgdn":      tcell.KeyPgDn,
		"insert":    tcell.KeyInsert,
		"delete":    tcell.KeyDelete,
		"ctrl_c":    tcell.KeyCtrlC,
		"ctrl_q":    tcell.KeyCtrlQ,
		"ctrl_s":    tcell.KeyCtrlS,
		"ctrl_r":    tcell.KeyCtrlR,
		"ctrl_p":    tcell.KeyCtrlP,
	}
	for i := range 12 {
		names[fmt.Sprintf("f%d", i+1)] = tcell.KeyF1 + tcell.Key(i)
	}
	return names
}()

// keymapFile is the TOML layout: [keys] binds runes, [special] binds named keys
type keymapFile struct {
	Keys    map[string]string `toml:"keys"`
	Special map[string]string `toml:"special"`
}

// LoadKeyConfig parses TOML keymap data into a sparse override KeyTable
// Only keys present in TOML are populated
// Returns error on unknown action names, invalid key names, or parse failure
func LoadKeyConfig(data []byte) (*KeyTable, error) {
	var raw keymapFile
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("keymap parse: %w", err)
	}

	kt := &KeyTable{
		SpecialKeys: make(map[tcell.Key]KeyEntry, len(raw.Special)),
		Runes:       make(map[rune]KeyEntry, len(raw.Keys)),
	}
	for name, act := range raw.Keys {
		r, err := parseRuneKey(name)
		if err != nil {
			return nil, fmt.Errorf("[keys] %w", err)
		}
		entry, err := resolveAction(act)
		if err != nil {
			return nil, fmt.Errorf("[keys] %q: %w", name, err)
		}
		kt.Runes[r] = entry
	}
	for name, act := range raw.Special {
		k, ok := specialKeyNames[strings.ToLower(name)]
		if !ok {
			return nil, fmt.Errorf("[special] unknown key %q", name)
		}
		entry, err := resolveAction(act)
		if err != nil {
			return nil, fmt.Errorf("[special] %q: %w", name, err)
		}
		kt.SpecialKeys[k] = entry
	}
	return kt, nil
}

// LoadKeyTable returns the default bindings with the keymap file at path applied, a missing file is not an error
func LoadKeyTable(path string) (*KeyTable, error) {
	base := DefaultKeyTable()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return base, nil
	}
	if err != nil {
		return base, fmt.Errorf("read keymap: %w", err)
	}
	override, err := LoadKeyConfig(data)
	if err != nil {
		return base, fmt.Errorf("%s: %w", path, err)
	}
	return base.Merge(override), nil
}

func parseRuneKey(name string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(name)]; ok {
		return r, nil
	}
	if utf8.RuneCountInString(name) != 1 {
		return 0, fmt.Errorf("key %q is not a single character or alias", name)
	}
	r, _ := utf8.DecodeRuneInString(name)
	return r, nil
}

func resolveAction(name string) (KeyEntry, error) {
	entry, ok := actionRegistry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return KeyEntry{}, fmt.Errorf("unknown action %q", name)
	}
	return entry, nil
}
