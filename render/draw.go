package render

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/snakeflow/game"
	"github.com/lixenwraith/snakeflow/parameter"
	"github.com/lixenwraith/snakeflow/theme"
)

// Tail segments fade toward the background by up to this share
const tailFade = 0.35

// Emoji particles stop drawing below this life, glyphs cannot fade
const emojiMinLife = 0.25

// drawGrid paints a line at every column and row boundary
func (r *Renderer) drawGrid(geo geometry, th theme.Theme) {
	if geo.cellW <= 0 || geo.cellH <= 0 {
		return
	}
	for i := 0; i <= geo.cols; i++ {
		r.canvas.VLine(int(math.Round(float64(i)*geo.cellW)), th.Grid, 1)
	}
	for j := 0; j <= geo.rows; j++ {
		r.canvas.HLine(int(math.Round(float64(j)*geo.cellH)), th.Grid, 1)
	}
}

// drawFruit paints the fruit disc with a contrast outline and a highlight
func (r *Renderer) drawFruit(s game.State, geo geometry, th theme.Theme) {
	cx, cy := geo.center(s.Fruit)
	radius := geo.minCell() / parameter.FruitRadiusDivisor

	r.canvas.FillCircle(cx, cy, radius+1, theme.OutlineFor(th.Bg), 1)
	r.canvas.FillCircle(cx, cy, radius, th.Fruit, 1)
	if radius >= 2 {
		white := colorful.Color{R: 1, G: 1, B: 1}
		r.canvas.FillCircle(cx-radius*0.35, cy-radius*0.35, radius*0.3, white, 0.5)
	}
}

// drawSnake paints segments tail first so the head lands on top
func (r *Renderer) drawSnake(s game.State, geo geometry, th theme.Theme) {
	n := len(s.Snake)
	if n == 0 {
		return
	}
	m := geo.minCell()
	segR := m / parameter.SegmentRadiusDivisor

	for i := n - 1; i > 0; i-- {
		cx, cy := geo.center(s.Snake[i])
		col := th.Snake.BlendRgb(th.Bg, tailFade*float64(i)/float64(n))
		r.canvas.FillCircle(cx, cy, segR, col, 1)
	}

	hx, hy := geo.center(s.Head())
	headR := m / parameter.HeadRadiusDivisor
	glow := th.Bg.BlendRgb(th.SnakeHead, parameter.GlowBlend)
	r.canvas.Ring(hx, hy, headR+1, 1, glow, 1)
	r.canvas.FillCircle(hx, hy, headR, th.SnakeHead, 1)

	if m >= parameter.EyeMinCellSize {
		r.drawEyes(hx, hy, headR, s.Direction, th)
	}
}

// drawEyes places two pupils ahead of the head centre, facing the heading
func (r *Renderer) drawEyes(hx, hy, headR float64, d game.Direction, th theme.Theme) {
	dx, dy := d.Delta()
	fx, fy := float64(dx), float64(dy)
	px, py := -fy, fx // perpendicular
	eyeR := max(headR*0.22, 0.5)
	for _, side := range []float64{-1, 1} {
		ex := hx + fx*headR*0.4 + px*headR*0.45*side
		ey := hy + fy*headR*0.4 + py*headR*0.45*side
		r.canvas.FillCircle(ex, ey, eyeR, th.Bg, 1)
	}
}

// drawParticles paints discs with alpha = life and emoji particles as glyph cells
func (r *Renderer) drawParticles() {
	for i := range r.particles.P {
		p := &r.particles.P[i]
		if p.Emoji != "" {
			if p.Life >= emojiMinLife {
				col := int(p.X) / parameter.PixelRatioX
				row := int(p.Y) / parameter.PixelRatioY
				r.canvas.Glyph(col, row, p.Emoji, p.Color)
			}
			continue
		}
		r.canvas.FillCircle(p.X, p.Y, p.Size, p.Color, p.Life)
	}
}
