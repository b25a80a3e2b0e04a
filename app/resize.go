package app

import (
	"sync"

	"github.com/lixenwraith/snakeflow/board"
	"github.com/lixenwraith/snakeflow/parameter"
)

// Boarder is the part of the game the adapter resizes
type Boarder interface {
	Board() board.Size
	SetBoard(b board.Size) bool
}

// ResizeAdapter derives the board from the terminal size and zoom
// A board computed while a round is ticking stays pending until SetBoard accepts it
type ResizeAdapter struct {
	mu            sync.Mutex
	target        Boarder
	width, height int // terminal cells, HUD included
	zoom          float64
	desired       board.Size
}

// NewResizeAdapter creates an adapter applying boards to target
func NewResizeAdapter(target Boarder, zoom float64) *ResizeAdapter {
	return &ResizeAdapter{target: target, zoom: board.ClampZoom(zoom)}
}

// BoardFor returns the board that fits a width x height terminal at zoom
func BoardFor(width, height int, zoom float64) board.Size {
	return board.FromViewport(
		float64(width*parameter.PixelRatioX),
		float64((height-parameter.TopMargin)*parameter.PixelRatioY),
		zoom,
	)
}

// Viewport records a terminal size and tries to apply the resulting board
func (ra *ResizeAdapter) Viewport(width, height int) bool {
	ra.mu.Lock()
	ra.width, ra.height = width, height
	ra.desired = BoardFor(width, height, ra.zoom)
	ra.mu.Unlock()
	return ra.Apply()
}

// SetZoom changes the zoom, returns the clamped value in effect
func (ra *ResizeAdapter) SetZoom(zoom float64) float64 {
	ra.mu.Lock()
	ra.zoom = board.ClampZoom(zoom)
	z := ra.zoom
	if ra.width > 0 || ra.height > 0 {
		ra.desired = BoardFor(ra.width, ra.height, ra.zoom)
	}
	ra.mu.Unlock()
	ra.Apply()
	return z
}

// Zoom returns the zoom in effect
func (ra *ResizeAdapter) Zoom() float64 {
	ra.mu.Lock()
	defer ra.mu.Unlock()
	return ra.zoom
}

// Size returns the last terminal size
func (ra *ResizeAdapter) Size() (width, height int) {
	ra.mu.Lock()
	defer ra.mu.Unlock()
	return ra.width, ra.height
}

// Pending reports whether the desired board differs from the game's board
func (ra *ResizeAdapter) Pending() bool {
	ra.mu.Lock()
	desired := ra.desired
	ra.mu.Unlock()
	return desired.Valid() && desired != ra.target.Board()
}

// Apply hands the desired board to the game, reports whether the game now uses it
// mu is released before SetBoard because the game notifies listeners that may call back in
func (ra *ResizeAdapter) Apply() bool {
	ra.mu.Lock()
	desired := ra.desired
	ra.mu.Unlock()

	if !desired.Valid() {
		return false
	}
	if desired == ra.target.Board() {
		return true
	}
	return ra.target.SetBoard(desired)
}
