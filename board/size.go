// Package board defines the playfield grid and its toroidal coordinate arithmetic
package board

import (
	"fmt"
	"math"

	"github.com/lixenwraith/snakeflow/parameter"
)

// Size is the board dimension in cells
type Size struct {
	Cols int `json:"cols" toml:"cols"`
	Rows int `json:"rows" toml:"rows"`
}

// Point is a grid coordinate, kept free of game types so board stays a leaf package
type Point struct {
	X int `json:"x" toml:"x"`
	Y int `json:"y" toml:"y"`
}

// FromViewport computes board dimensions for a viewport measured in canvas pixels
// Higher zoom raises the minimum cell size, yielding fewer and larger cells
func FromViewport(width, height, zoom float64) Size {
	minCell := parameter.MinCellSize * ClampZoom(zoom)
	return Size{
		Cols: dimension(width, minCell),
		Rows: dimension(height, minCell),
	}
}

func dimension(extent, minCell float64) int {
	if extent <= 0 || math.IsNaN(extent) {
		return parameter.BoardMinDim
	}
	n := int(math.Floor(math.Min(extent/minCell, parameter.BoardMaxDim)))
	if n < parameter.BoardMinDim {
		n = parameter.BoardMinDim
	}
	return n
}

// ClampZoom bounds zoom to the supported range, NaN maps to the default
func ClampZoom(zoom float64) float64 {
	if math.IsNaN(zoom) {
		return parameter.DefaultZoom
	}
	return math.Max(parameter.ZoomMin, math.Min(parameter.ZoomMax, zoom))
}

// Valid reports whether both dimensions are positive
func (s Size) Valid() bool {
	return s.Cols > 0 && s.Rows > 0
}

// Cells returns the total cell count
func (s Size) Cells() int {
	return s.Cols * s.Rows
}

// Contains reports whether p lies inside the board
func (s Size) Contains(p Point) bool {
	return p.X >= 0 && p.X < s.Cols && p.Y >= 0 && p.Y < s.Rows
}

// Wrap maps any coordinate onto the torus, including values several boards away
func (s Size) Wrap(p Point) Point {
	return Point{X: wrap(p.X, s.Cols), Y: wrap(p.Y, s.Rows)}
}

// Clamp pins p to the nearest in-bounds cell
func (s Size) Clamp(p Point) Point {
	return Point{X: clamp(p.X, s.Cols-1), Y: clamp(p.Y, s.Rows-1)}
}

// Index returns the row-major cell index of an in-bounds point
func (s Size) Index(p Point) int {
	return p.Y*s.Cols + p.X
}

// At returns the point for a row-major cell index
func (s Size) At(i int) Point {
	return Point{X: i % s.Cols, Y: i / s.Cols}
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Cols, s.Rows)
}

func wrap(c, d int) int {
	if d <= 0 {
		return 0
	}
	return ((c % d) + d) % d
}

func clamp(c, hi int) int {
	if c < 0 {
		return 0
	}
	if c > hi {
		return hi
	}
	return c
}
