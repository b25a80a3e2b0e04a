package game

import (
	"slices"
	"time"

	"github.com/lixenwraith/snakeflow/board"
	"github.com/lixenwraith/snakeflow/parameter"
)

// Status is the round lifecycle position derived from the state flags
type Status uint8

const (
	StatusIdle Status = iota
	StatusRunning
	StatusPaused
	StatusOver
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	case StatusOver:
		return "over"
	}
	return "unknown"
}

// State is the simulation aggregate, replaced wholesale on every change
// Snake slices are never modified after publication, so copies of State may share them
type State struct {
	Snake      []Position `json:"snake"`
	Fruit      Position   `json:"fruit"`
	FruitType  FruitType  `json:"fruitType"`
	Direction  Direction  `json:"direction"`
	Score      int        `json:"score"`
	Phase      int        `json:"phase"`
	Speed      int        `json:"speed"`
	IsRunning  bool       `json:"isRunning"`
	IsPaused   bool       `json:"isPaused"`
	IsGameOver bool       `json:"isGameOver"`
	IsWon      bool       `json:"isWon,omitempty"`
	ThemeIndex int        `json:"themeIndex"`
}

// NewState builds an idle round: a three segment snake centred on the board heading right
func NewState(b board.Size, rules Rules, rng Rand) State {
	snake := initialSnake(b)
	s := State{
		Snake:      snake,
		FruitType:  randomFruitType(rng),
		Direction:  DirRight,
		Phase:      1,
		Speed:      rules.Config().BaseSpeed,
		ThemeIndex: parameter.InitialThemeIndex,
	}
	if fruit, ok := PlaceFruit(snake, b, rng); ok {
		s.Fruit = fruit
	}
	return s
}

func initialSnake(b board.Size) []Position {
	cx, cy := b.Cols/2, b.Rows/2
	snake := make([]Position, parameter.InitialSnakeLength)
	for i := range snake {
		snake[i] = b.Wrap(Position{X: cx - i, Y: cy})
	}
	return snake
}

// Head returns the first segment
func (s State) Head() Position {
	if len(s.Snake) == 0 {
		return Position{}
	}
	return s.Snake[0]
}

// Active reports whether ticks should advance the state
func (s State) Active() bool {
	return s.IsRunning && !s.IsPaused && !s.IsGameOver
}

// Interval returns the tick period
func (s State) Interval() time.Duration {
	return time.Duration(s.Speed) * time.Millisecond
}

// Status maps the flag combination onto the lifecycle
func (s State) Status() Status {
	switch {
	case s.IsGameOver:
		return StatusOver
	case !s.IsRunning:
		return StatusIdle
	case s.IsPaused:
		return StatusPaused
	default:
		return StatusRunning
	}
}

// Occupies reports whether any snake segment sits on p
func (s State) Occupies(p Position) bool {
	return slices.Contains(s.Snake, p)
}

// Clone returns a copy that owns its snake slice
func (s State) Clone() State {
	s.Snake = slices.Clone(s.Snake)
	return s
}

// Equal compares two states field by field
func (s State) Equal(o State) bool {
	return slices.Equal(s.Snake, o.Snake) &&
		s.Fruit == o.Fruit &&
		s.FruitType == o.FruitType &&
		s.Direction == o.Direction &&
		s.Score == o.Score &&
		s.Phase == o.Phase &&
		s.Speed == o.Speed &&
		s.IsRunning == o.IsRunning &&
		s.IsPaused == o.IsPaused &&
		s.IsGameOver == o.IsGameOver &&
		s.IsWon == o.IsWon &&
		s.ThemeIndex == o.ThemeIndex
}
