package input

import (
	"math"

	"github.com/lixenwraith/snakeflow/board"
	"github.com/lixenwraith/snakeflow/game"
	"github.com/lixenwraith/snakeflow/parameter"
)

// Viewport locates the board on screen for tap resolution
type Viewport struct {
	Width, Height int // terminal cells, HUD rows included
	Board         board.Size
}

// TapDirection turns perpendicular to heading, toward the side of the head the click at screen cell (x, y) lies on
// Clicks on the HUD, outside the board, or level with the head resolve to nothing
func TapDirection(vp Viewport, head game.Position, heading game.Direction, x, y int) (game.Direction, bool) {
	canvasW := float64(vp.Width * parameter.PixelRatioX)
	canvasH := float64((vp.Height - parameter.TopMargin) * parameter.PixelRatioY)
	if !vp.Board.Valid() || canvasW <= 0 || canvasH <= 0 {
		return 0, false
	}
	if y < parameter.TopMargin || y >= vp.Height || x < 0 || x >= vp.Width {
		return 0, false
	}

	cellW := canvasW / float64(vp.Board.Cols)
	cellH := canvasH / float64(vp.Board.Rows)
	headX := (float64(head.X) + 0.5) * cellW
	headY := (float64(head.Y) + 0.5) * cellH
	px := (float64(x) + 0.5) * parameter.PixelRatioX
	py := (float64(y-parameter.TopMargin) + 0.5) * parameter.PixelRatioY

	switch heading {
	case game.DirLeft, game.DirRight:
		dy := py - headY
		if math.Abs(dy) < cellH/2 {
			return 0, false
		}
		if dy > 0 {
			return game.DirDown, true
		}
		return game.DirUp, true
	case game.DirUp, game.DirDown:
		dx := px - headX
		if math.Abs(dx) < cellW/2 {
			return 0, false
		}
		if dx > 0 {
			return game.DirRight, true
		}
		return game.DirLeft, true
	}
	return 0, false
}
