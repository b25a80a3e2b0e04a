package game

import (
	"github.com/lixenwraith/snakeflow/board"
	"github.com/lixenwraith/snakeflow/parameter"
)

// Outcome reports the events detected by one Step
type Outcome struct {
	Advanced     bool // a move was attempted; false for no-op ticks
	Ate          bool
	GameOver     bool
	Won          bool // board filled, no cell left for fruit
	PhaseChanged bool
}

// Step applies one tick to s and returns the replacement state
// s is never modified; a no-op tick returns s itself
func Step(s State, pending Direction, b board.Size, rules Rules, rng Rand) (State, Outcome) {
	if !s.IsRunning || s.IsPaused || s.IsGameOver || len(s.Snake) == 0 {
		return s, Outcome{}
	}

	dir := pending
	if !dir.Valid() || (dir == s.Direction.Opposite() && len(s.Snake) > 1) {
		dir = s.Direction
	}

	dx, dy := dir.Delta()
	head := b.Wrap(Position{X: s.Snake[0].X + dx, Y: s.Snake[0].Y + dy})

	// The last CollisionTolerance segments are skipped, they are about to move away
	checked := len(s.Snake) - rules.Config().CollisionTolerance
	if checked < 0 {
		checked = 0
	}
	for _, seg := range s.Snake[:checked] {
		if seg == head {
			next := s
			next.IsRunning = false
			next.IsGameOver = true
			return next, Outcome{Advanced: true, GameOver: true}
		}
	}

	ate := head == s.Fruit
	keep := len(s.Snake)
	if !ate {
		keep--
	}
	snake := make([]Position, 0, keep+1)
	snake = append(snake, head)
	snake = append(snake, s.Snake[:keep]...)

	next := s
	next.Snake = snake
	next.Direction = dir
	out := Outcome{Advanced: true}
	if !ate {
		return next, out
	}

	out.Ate = true
	next.Score += parameter.FruitScore
	if phase := PhaseForScore(next.Score); phase > s.Phase {
		out.PhaseChanged = true
		next.Phase = phase
		if themeChangesAt(phase) {
			next.ThemeIndex = (s.ThemeIndex + 1) % parameter.ThemeCount
		}
		next.Speed = rules.SpeedForPhase(phase)
	}

	fruit, ok := PlaceFruit(snake, b, rng)
	if !ok {
		next.IsRunning = false
		next.IsGameOver = true
		next.IsWon = true
		out.GameOver = true
		out.Won = true
		return next, out
	}
	next.Fruit = fruit
	next.FruitType = randomFruitType(rng)
	return next, out
}
