package render

import (
	"math"

	"github.com/lixenwraith/snakeflow/board"
	"github.com/lixenwraith/snakeflow/game"
)

// geometry maps board cells onto canvas pixels for one frame
// Cell sizes come from the current board, so a resize never draws with stale extents
type geometry struct {
	cellW, cellH float64
	cols, rows   int
}

func newGeometry(c *Canvas, b board.Size) geometry {
	w, h := c.Size()
	g := geometry{cols: b.Cols, rows: b.Rows}
	if b.Valid() {
		g.cellW = float64(w) / float64(b.Cols)
		g.cellH = float64(h) / float64(b.Rows)
	}
	return g
}

// center returns the pixel centre of cell p
func (g geometry) center(p game.Position) (x, y float64) {
	return (float64(p.X) + 0.5) * g.cellW, (float64(p.Y) + 0.5) * g.cellH
}

// minCell is the smaller cell edge in pixels
func (g geometry) minCell() float64 {
	return math.Min(g.cellW, g.cellH)
}
