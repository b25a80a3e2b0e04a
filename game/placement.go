package game

import (
	"github.com/lixenwraith/snakeflow/board"
	"github.com/lixenwraith/snakeflow/parameter"
)

// PlaceFruit picks a uniformly random cell not covered by snake
// Returns false when every cell is occupied
func PlaceFruit(snake []Position, b board.Size, rng Rand) (Position, bool) {
	cells := b.Cells()
	if cells <= 0 {
		return Position{}, false
	}

	occupied := make([]bool, cells)
	taken := 0
	for _, seg := range snake {
		if !b.Contains(seg) {
			continue
		}
		i := b.Index(seg)
		if !occupied[i] {
			occupied[i] = true
			taken++
		}
	}

	free := cells - taken
	if free == 0 {
		return Position{}, false
	}

	// Rejection sampling is uniform and cheap while the board is sparse
	for range parameter.FruitPlacementAttempts {
		i := rng.IntN(cells)
		if !occupied[i] {
			return b.At(i), true
		}
	}

	// Dense board: pick the k-th free cell
	k := rng.IntN(free)
	for i, occ := range occupied {
		if occ {
			continue
		}
		if k == 0 {
			return b.At(i), true
		}
		k--
	}
	return Position{}, false
}

func randomFruitType(rng Rand) FruitType {
	return FruitType(rng.IntN(int(FruitTypeCount)))
}
