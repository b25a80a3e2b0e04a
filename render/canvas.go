package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/snakeflow/parameter"
)

// textCell is a glyph drawn over the pixel layer at terminal cell resolution
type textCell struct {
	text  string
	fg    colorful.Color
	bg    colorful.Color
	hasBg bool
}

// Canvas is a pixel backing store flushed to a terminal with half-block glyphs
// Each terminal cell holds PixelRatioX x PixelRatioY pixels; the upper pixel is the
// foreground of '▀' and the lower pixel its background
type Canvas struct {
	cols, rows int // terminal cells covered
	w, h       int // backing pixels
	pix        []colorful.Color
	text       []textCell // per terminal cell, empty text means none
}

// NewCanvas creates a canvas covering cols x rows terminal cells
func NewCanvas(cols, rows int) *Canvas {
	c := &Canvas{}
	c.Resize(cols, rows)
	return c
}

// Resize sets the covered cell area and recomputes the backing store, reports whether it changed
func (c *Canvas) Resize(cols, rows int) bool {
	cols, rows = max(cols, 0), max(rows, 0)
	if cols == c.cols && rows == c.rows && c.pix != nil {
		return false
	}
	c.cols, c.rows = cols, rows
	c.w, c.h = cols*parameter.PixelRatioX, rows*parameter.PixelRatioY
	c.pix = make([]colorful.Color, c.w*c.h)
	c.text = make([]textCell, cols*rows)
	return true
}

// Size returns the backing store in pixels
func (c *Canvas) Size() (w, h int) {
	return c.w, c.h
}

// Cells returns the covered terminal area
func (c *Canvas) Cells() (cols, rows int) {
	return c.cols, c.rows
}

// Clear fills every pixel with bg and drops text cells
func (c *Canvas) Clear(bg colorful.Color) {
	for i := range c.pix {
		c.pix[i] = bg
	}
	clear(c.text)
}

// At returns the pixel at (x, y), out of range reads as black
func (c *Canvas) At(x, y int) colorful.Color {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return colorful.Color{}
	}
	return c.pix[y*c.w+x]
}

// Set writes a pixel, out of range writes are dropped
func (c *Canvas) Set(x, y int, col colorful.Color) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.pix[y*c.w+x] = col
}

// Blend mixes col into the pixel with weight alpha
func (c *Canvas) Blend(x, y int, col colorful.Color, alpha float64) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h || alpha <= 0 {
		return
	}
	i := y*c.w + x
	if alpha >= 1 {
		c.pix[i] = col
		return
	}
	c.pix[i] = c.pix[i].BlendRgb(col, alpha)
}

// FillRect blends a rectangle given in pixels
func (c *Canvas) FillRect(x0, y0, x1, y1 int, col colorful.Color, alpha float64) {
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, c.w), min(y1, c.h)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c.Blend(x, y, col, alpha)
		}
	}
}

// HLine blends a one pixel row
func (c *Canvas) HLine(y int, col colorful.Color, alpha float64) {
	c.FillRect(0, y, c.w, y+1, col, alpha)
}

// VLine blends a one pixel column
func (c *Canvas) VLine(x int, col colorful.Color, alpha float64) {
	c.FillRect(x, 0, x+1, c.h, col, alpha)
}

// FillCircle blends a disc centred on (cx, cy); pixels whose centre lies inside r are painted
// Discs smaller than a pixel still paint the pixel under the centre
func (c *Canvas) FillCircle(cx, cy, r float64, col colorful.Color, alpha float64) {
	if r <= 0 {
		return
	}
	painted := false
	r2 := r * r
	for y := int(math.Floor(cy - r)); y <= int(math.Ceil(cy+r)); y++ {
		for x := int(math.Floor(cx - r)); x <= int(math.Ceil(cx+r)); x++ {
			dx, dy := float64(x)+0.5-cx, float64(y)+0.5-cy
			if dx*dx+dy*dy <= r2 {
				c.Blend(x, y, col, alpha)
				painted = true
			}
		}
	}
	if !painted {
		c.Blend(int(math.Floor(cx)), int(math.Floor(cy)), col, alpha)
	}
}

// Ring blends the annulus between r-thickness and r
func (c *Canvas) Ring(cx, cy, r, thickness float64, col colorful.Color, alpha float64) {
	if r <= 0 || thickness <= 0 {
		return
	}
	inner := max(r-thickness, 0)
	r2, in2 := r*r, inner*inner
	for y := int(math.Floor(cy - r)); y <= int(math.Ceil(cy+r)); y++ {
		for x := int(math.Floor(cx - r)); x <= int(math.Ceil(cx+r)); x++ {
			dx, dy := float64(x)+0.5-cx, float64(y)+0.5-cy
			if d2 := dx*dx + dy*dy; d2 <= r2 && d2 > in2 {
				c.Blend(x, y, col, alpha)
			}
		}
	}
}

// Dim darkens every pixel by factor in [0,1]
func (c *Canvas) Dim(factor float64) {
	black := colorful.Color{}
	for i := range c.pix {
		c.pix[i] = c.pix[i].BlendRgb(black, factor)
	}
}

// Text places s on terminal row at column col, wide glyphs take two cells
// A transparent background keeps the pixels underneath as the cell background
func (c *Canvas) Text(col, row int, s string, fg colorful.Color) int {
	return c.putText(col, row, s, fg, colorful.Color{}, false)
}

// TextBg places s with a solid background
func (c *Canvas) TextBg(col, row int, s string, fg, bg colorful.Color) int {
	return c.putText(col, row, s, fg, bg, true)
}

// TextCentered places s centred on row, returns the start column
func (c *Canvas) TextCentered(row int, s string, fg colorful.Color) int {
	col := (c.cols - runewidth.StringWidth(s)) / 2
	c.Text(col, row, s, fg)
	return col
}

func (c *Canvas) putText(col, row int, s string, fg, bg colorful.Color, hasBg bool) int {
	if row < 0 || row >= c.rows {
		return col
	}
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col >= 0 && col+w <= c.cols {
			c.text[row*c.cols+col] = textCell{text: string(r), fg: fg, bg: bg, hasBg: hasBg}
			if w == 2 {
				c.text[row*c.cols+col+1] = textCell{}
			}
		}
		col += w
	}
	return col
}

// Glyph places a multi-rune cluster (emoji) in a single cell slot
func (c *Canvas) Glyph(col, row int, cluster string, fg colorful.Color) {
	if row < 0 || row >= c.rows || col < 0 || col >= c.cols || cluster == "" {
		return
	}
	if runewidth.StringWidth(cluster) > 1 && col+1 >= c.cols {
		return
	}
	c.text[row*c.cols+col] = textCell{text: cluster, fg: fg}
}

// Flush writes the canvas to screen with its top-left cell at (originX, originY)
func (c *Canvas) Flush(screen tcell.Screen, originX, originY int) {
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			top := c.At(col*parameter.PixelRatioX, row*parameter.PixelRatioY)
			bottom := c.At(col*parameter.PixelRatioX, row*parameter.PixelRatioY+1)

			cell := c.text[row*c.cols+col]
			if cell.text == "" {
				screen.SetContent(originX+col, originY+row, '▀', nil, tcell.StyleDefault.Foreground(toTcell(top)).Background(toTcell(bottom)))
				continue
			}

			bg := top.BlendRgb(bottom, 0.5)
			if cell.hasBg {
				bg = cell.bg
			}
			style := tcell.StyleDefault.Foreground(toTcell(cell.fg)).Background(toTcell(bg))
			runes := []rune(cell.text)
			screen.SetContent(originX+col, originY+row, runes[0], runes[1:], style)
			if runewidth.StringWidth(cell.text) == 2 {
				col++
			}
		}
	}
}

// toTcell converts a colour to a true colour terminal value
func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
