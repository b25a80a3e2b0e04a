package game

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/snakeflow/board"
	"github.com/lixenwraith/snakeflow/parameter"
)

// Position is a grid cell coordinate
type Position = board.Point

// Direction is the snake heading
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
	directionCount
)

var directionNames = [directionCount]string{"UP", "DOWN", "LEFT", "RIGHT"}

// Valid reports whether d is one of the four headings
func (d Direction) Valid() bool {
	return d < directionCount
}

// Opposite returns the reverse heading
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	}
	return d
}

// Delta returns the unit vector for d, y grows downward
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	}
	return 0, 0
}

func (d Direction) String() string {
	if !d.Valid() {
		return "UNKNOWN"
	}
	return directionNames[d]
}

// MarshalText implements encoding.TextMarshaler
func (d Direction) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("invalid direction %d", d)
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ParseDirection accepts the upper or lower case heading name
func ParseDirection(s string) (Direction, error) {
	up := strings.ToUpper(strings.TrimSpace(s))
	for i, name := range directionNames {
		if name == up {
			return Direction(i), nil
		}
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

// FruitType is the cosmetic fruit kind
type FruitType uint8

const (
	FruitApple FruitType = iota
	FruitCherry
	FruitGrape
	FruitOrange
	FruitWatermelon
	FruitLemon
	FruitTypeCount
)

var fruitNames = [FruitTypeCount]string{"apple", "cherry", "grape", "orange", "watermelon", "lemon"}

var fruitEmojis = [FruitTypeCount]string{"🍎", "🍒", "🍇", "🍊", "🍉", "🍋"}

// Valid reports whether f is a known fruit
func (f FruitType) Valid() bool {
	return f < FruitTypeCount
}

func (f FruitType) String() string {
	if !f.Valid() {
		return "unknown"
	}
	return fruitNames[f]
}

// Emoji returns the glyph used by fruit particles
func (f FruitType) Emoji() string {
	if !f.Valid() {
		return fruitEmojis[FruitApple]
	}
	return fruitEmojis[f]
}

// MarshalText implements encoding.TextMarshaler
func (f FruitType) MarshalText() ([]byte, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("invalid fruit type %d", f)
	}
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (f *FruitType) UnmarshalText(text []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	for i, name := range fruitNames {
		if name == s {
			*f = FruitType(i)
			return nil
		}
	}
	return fmt.Errorf("unknown fruit type %q", text)
}

// Difficulty selects the speed curve and collision leniency
type Difficulty uint8

const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
	difficultyCount
)

var difficultyNames = [difficultyCount]string{"easy", "medium", "hard"}

// DifficultyConfig is the static tuning for one difficulty
type DifficultyConfig struct {
	BaseSpeed          int // ms per tick, lower is faster
	SpeedIncrement     int // ms removed per phase
	CollisionTolerance int // trailing tail segments exempt from self-collision
}

var difficultyTable = [difficultyCount]DifficultyConfig{
	DifficultyEasy: {
		BaseSpeed:          parameter.EasyBaseSpeedMs,
		SpeedIncrement:     parameter.EasySpeedIncrementMs,
		CollisionTolerance: parameter.EasyCollisionTolerance,
	},
	DifficultyMedium: {
		BaseSpeed:          parameter.MediumBaseSpeedMs,
		SpeedIncrement:     parameter.MediumSpeedIncrementMs,
		CollisionTolerance: parameter.MediumCollisionTolerance,
	},
	DifficultyHard: {
		BaseSpeed:          parameter.HardBaseSpeedMs,
		SpeedIncrement:     parameter.HardSpeedIncrementMs,
		CollisionTolerance: parameter.HardCollisionTolerance,
	},
}

// Valid reports whether d is a known difficulty
func (d Difficulty) Valid() bool {
	return d < difficultyCount
}

// Config returns the tuning for d, unknown values fall back to medium
func (d Difficulty) Config() DifficultyConfig {
	if !d.Valid() {
		return difficultyTable[DifficultyMedium]
	}
	return difficultyTable[d]
}

func (d Difficulty) String() string {
	if !d.Valid() {
		return "unknown"
	}
	return difficultyNames[d]
}

// MarshalText implements encoding.TextMarshaler
func (d Difficulty) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("invalid difficulty %d", d)
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Difficulty) UnmarshalText(text []byte) error {
	parsed, err := ParseDifficulty(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ParseDifficulty accepts easy, medium or hard in any case
func ParseDifficulty(s string) (Difficulty, error) {
	low := strings.ToLower(strings.TrimSpace(s))
	for i, name := range difficultyNames {
		if name == low {
			return Difficulty(i), nil
		}
	}
	return DifficultyMedium, fmt.Errorf("unknown difficulty %q", s)
}

// Rules bundles the read-only round inputs supplied by settings
type Rules struct {
	Difficulty Difficulty
	// Training holds the tick speed at the difficulty base speed
	Training bool
}

// Config returns the active difficulty tuning
func (r Rules) Config() DifficultyConfig {
	return r.Difficulty.Config()
}

// SpeedForPhase returns the tick interval in ms for phase
func (r Rules) SpeedForPhase(phase int) int {
	cfg := r.Config()
	if r.Training || phase <= 1 {
		return cfg.BaseSpeed
	}
	return max(parameter.MinTickSpeedMs, cfg.BaseSpeed-(phase-1)*cfg.SpeedIncrement)
}

// PhaseForScore derives the phase from score
func PhaseForScore(score int) int {
	if score < 0 {
		return 1
	}
	return score/parameter.PointsPerPhase + 1
}

// themeChangesAt reports whether entering phase rotates the palette
func themeChangesAt(phase int) bool {
	return phase > 1 && (phase-1)%parameter.ThemeChangeEvery == 0
}

// Rand is the random source used for fruit placement, satisfied by *rand.Rand from math/rand/v2
type Rand interface {
	IntN(n int) int
}
