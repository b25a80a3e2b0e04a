// Package config loads player settings from defaults, a TOML file, environment and command line
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/lixenwraith/snakeflow/board"
	"github.com/lixenwraith/snakeflow/game"
	"github.com/lixenwraith/snakeflow/parameter"
	"github.com/lixenwraith/snakeflow/theme"
)

const (
	// FileName is the settings file inside the config directory
	FileName = "settings.toml"

	// EnvPrefix namespaces environment overrides, SNAKEFLOW_ZOOM etc.
	EnvPrefix = "SNAKEFLOW_"
)

// Setting keys shared by the TOML file, environment variables and flags
const (
	KeyDifficulty = "difficulty"
	KeyTraining   = "training"
	KeyZoom       = "zoom"
	KeySound      = "sound"
	KeyVolume     = "volume"
	KeyVibration  = "vibration"
	KeyTheme      = "theme"
	KeyDataDir    = "data_dir"
)

// Keys lists every setting key in file order
var Keys = []string{KeyDifficulty, KeyTraining, KeyZoom, KeySound, KeyVolume, KeyVibration, KeyTheme, KeyDataDir}

// Settings holds the user-adjustable options
type Settings struct {
	Difficulty         game.Difficulty `toml:"difficulty"`
	TrainingMode       bool            `toml:"training"`
	GameZoom           float64         `toml:"zoom"`
	SoundEffectsOn     bool            `toml:"sound"`
	SoundEffectsVolume float64         `toml:"volume"`
	VibrationOn        bool            `toml:"vibration"`
	Theme              string          `toml:"theme"`             // theme id or "auto" for phase rotation
	DataDir            string          `toml:"data_dir,omitempty"` // empty selects the per-user default
}

// Defaults returns the settings used when nothing is configured
func Defaults() Settings {
	return Settings{
		Difficulty:         game.DifficultyMedium,
		GameZoom:           parameter.DefaultZoom,
		SoundEffectsOn:     true,
		SoundEffectsVolume: parameter.DefaultSoundEffectsVolume,
		VibrationOn:        true,
		Theme:              theme.Auto,
	}
}

// Rules returns the simulation rules selected by the settings
func (s Settings) Rules() game.Rules {
	return game.Rules{Difficulty: s.Difficulty, Training: s.TrainingMode}
}

// Clamped returns s with every value pulled into its valid range
func (s Settings) Clamped() Settings {
	if !s.Difficulty.Valid() {
		s.Difficulty = game.DifficultyMedium
	}
	s.GameZoom = board.ClampZoom(s.GameZoom)
	if math.IsNaN(s.SoundEffectsVolume) {
		s.SoundEffectsVolume = parameter.DefaultSoundEffectsVolume
	}
	s.SoundEffectsVolume = math.Max(0, math.Min(1, s.SoundEffectsVolume))
	s.Theme = strings.ToLower(strings.TrimSpace(s.Theme))
	if _, ok := theme.ByID(s.Theme); !ok {
		s.Theme = theme.Auto
	}
	return s
}

// Set parses value into the setting named key, s is unchanged on error
func (s *Settings) Set(key, value string) error {
	value = strings.TrimSpace(value)
	next := *s
	var err error
	switch key {
	case KeyDifficulty:
		next.Difficulty, err = game.ParseDifficulty(value)
	case KeyTraining:
		next.TrainingMode, err = strconv.ParseBool(value)
	case KeyZoom:
		next.GameZoom, err = strconv.ParseFloat(value, 64)
	case KeySound:
		next.SoundEffectsOn, err = strconv.ParseBool(value)
	case KeyVolume:
		next.SoundEffectsVolume, err = strconv.ParseFloat(value, 64)
	case KeyVibration:
		next.VibrationOn, err = strconv.ParseBool(value)
	case KeyTheme:
		next.Theme = value
	case KeyDataDir:
		next.DataDir = value
	default:
		return fmt.Errorf("unknown setting %q", key)
	}
	if err != nil {
		return fmt.Errorf("setting %s: %w", key, err)
	}
	*s = next
	return nil
}

// LoadFile overlays the TOML file at path onto s, a missing file leaves s unchanged
func LoadFile(path string, s Settings) (Settings, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("read settings: %w", err)
	}
	next := s
	if err := toml.Unmarshal(data, &next); err != nil {
		return s, fmt.Errorf("parse settings %s: %w", path, err)
	}
	return next.Clamped(), nil
}

// Save writes s as TOML to path, creating parent directories
func Save(path string, s Settings) error {
	data, err := toml.Marshal(s.Clamped())
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}
