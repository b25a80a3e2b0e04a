package game

import (
	"math"

	"github.com/lixenwraith/snakeflow/board"
	"github.com/lixenwraith/snakeflow/parameter"
)

// Rescale maps entity positions from one board size to another
// Coordinates are scaled per axis, rounded and clamped; the fruit is re-rolled if it lands on the snake
func Rescale(s State, from, to board.Size, rng Rand) State {
	if from == to || !from.Valid() || !to.Valid() {
		return s
	}

	scale := func(p Position) Position {
		x := int(math.Round(float64(p.X) * float64(to.Cols) / float64(from.Cols)))
		y := int(math.Round(float64(p.Y) * float64(to.Rows) / float64(from.Rows)))
		return to.Clamp(Position{X: x, Y: y})
	}

	next := s
	next.Snake = make([]Position, len(s.Snake))
	for i, seg := range s.Snake {
		next.Snake[i] = scale(seg)
	}
	next.Fruit = scale(s.Fruit)
	return rerollFruit(next, to, rng)
}

// Normalize repairs a resumed state for board b
// Out-of-range coordinates wrap, derived fields are recomputed from score and rules
func Normalize(s State, b board.Size, rules Rules, rng Rand) State {
	next := s
	if len(s.Snake) == 0 {
		next.Snake = initialSnake(b)
		next.Direction = DirRight
	} else {
		next.Snake = make([]Position, len(s.Snake))
		for i, seg := range s.Snake {
			next.Snake[i] = b.Wrap(seg)
		}
	}
	next.Fruit = b.Wrap(s.Fruit)

	if !next.Direction.Valid() {
		next.Direction = DirRight
	}
	if !next.FruitType.Valid() {
		next.FruitType = randomFruitType(rng)
	}
	if next.Score < 0 {
		next.Score = 0
	}
	next.Phase = PhaseForScore(next.Score)
	next.Speed = rules.SpeedForPhase(next.Phase)
	next.ThemeIndex = ((next.ThemeIndex % parameter.ThemeCount) + parameter.ThemeCount) % parameter.ThemeCount
	return rerollFruit(next, b, rng)
}

// Resume rebuilds a running state from save data for the current board
func Resume(save SaveData, b board.Size, training bool, rng Rand) State {
	rules := Rules{Difficulty: save.Difficulty, Training: training}
	s := save.GameState
	if save.Board != nil {
		s = Rescale(s, *save.Board, b, rng)
	}
	s = Normalize(s, b, rules, rng)
	s.IsRunning = true
	s.IsPaused = false
	return s
}

func rerollFruit(s State, b board.Size, rng Rand) State {
	if !s.Occupies(s.Fruit) {
		return s
	}
	if fruit, ok := PlaceFruit(s.Snake, b, rng); ok {
		s.Fruit = fruit
	}
	return s
}
