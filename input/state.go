package input

import (
	"github.com/lixenwraith/snakeflow/game"
	"github.com/lixenwraith/snakeflow/parameter"
)

// pointerState tracks a held primary button between mouse events
type pointerState struct {
	pressed        bool
	startX, startY int
}

// Swipe classifies a drag of (dx, dy) terminal cells
// The dominant axis is chosen in canvas pixels so a row counts twice a column
func Swipe(dx, dy int) (game.Direction, bool) {
	px := abs(dx * parameter.PixelRatioX)
	py := abs(dy * parameter.PixelRatioY)
	if px >= py {
		if abs(dx) < parameter.SwipeMinCells {
			return 0, false
		}
		if dx > 0 {
			return game.DirRight, true
		}
		return game.DirLeft, true
	}
	if abs(dy) < parameter.SwipeMinCells {
		return 0, false
	}
	if dy > 0 {
		return game.DirDown, true
	}
	return game.DirUp, true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
