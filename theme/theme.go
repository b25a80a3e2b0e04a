package theme

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/snakeflow/parameter"
)

// Theme is one board palette
type Theme struct {
	ID        string
	Name      string
	Bg        colorful.Color
	Snake     colorful.Color
	SnakeHead colorful.Color
	Fruit     colorful.Color
	Grid      colorful.Color
	HudBg     colorful.Color
	HudText   colorful.Color
}

// Auto selects the palette from the round's theme index
const Auto = "auto"

type hexPalette struct {
	id, name                                      string
	bg, snake, head, fruit, grid, hudBg, hudText string
}

// Order matters: the round theme index walks this table
var hexPalettes = [parameter.ThemeCount]hexPalette{
	{"classic", "Classic", "#0a1628", "#22c55e", "#4ade80", "#ef4444", "#1a2744", "#111d33", "#22c55e"},
	{"ocean", "Ocean", "#0f1419", "#06b6d4", "#22d3ee", "#f59e0b", "#1a252f", "#0f1f35", "#06b6d4"},
	{"lava", "Lava", "#2d1813", "#f97316", "#fb923c", "#a855f7", "#3d241e", "#1f0e0e", "#f97316"},
	{"forest", "Forest", "#1a2e1a", "#84cc16", "#a3e635", "#ec4899", "#2a3d2a", "#0e1f0e", "#84cc16"},
	{"cyber", "Cyber", "#1a1a2e", "#a855f7", "#c084fc", "#14b8a6", "#2a2a3e", "#130e22", "#a855f7"},
	{"desert", "Desert", "#3d2b1f", "#eab308", "#facc15", "#3b82f6", "#4d3a2f", "#1f1a0c", "#eab308"},
	{"modern", "Modern", "#f0f9f0", "#4caf50", "#66bb6a", "#ffd54f", "#e0f0e0", "#f1f8e9", "#2e7d32"},
	{"neon", "Neon", "#0f0f23", "#22c55e", "#86efac", "#f43f5e", "#1f1f33", "#0d0d14", "#22c55e"},
	{"ice", "Ice", "#0f1926", "#38bdf8", "#7dd3fc", "#a78bfa", "#1f2936", "#0b2231", "#38bdf8"},
	{"sunset", "Sunset", "#2d1b2d", "#f472b6", "#f9a8d4", "#f59e0b", "#3d2b3d", "#1f0d23", "#f472b6"},
	{"midnight", "Midnight", "#0a0a14", "#22d3ee", "#67e8f9", "#eab308", "#1a1a24", "#0b0d16", "#67e8f9"},
}

var themes = func() [parameter.ThemeCount]Theme {
	var out [parameter.ThemeCount]Theme
	for i, s := range hexPalettes {
		out[i] = Theme{
			ID:        s.id,
			Name:      s.name,
			Bg:        mustHex(s.bg),
			Snake:     mustHex(s.snake),
			SnakeHead: mustHex(s.head),
			Fruit:     mustHex(s.fruit),
			Grid:      mustHex(s.grid),
			HudBg:     mustHex(s.hudBg),
			HudText:   mustHex(s.hudText),
		}
	}
	return out
}()

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(fmt.Sprintf("theme: bad colour %q: %v", s, err))
	}
	return c
}

// Count returns the number of palettes
func Count() int {
	return len(themes)
}

// At returns the palette for a round theme index, any integer is accepted
func At(index int) Theme {
	n := len(themes)
	return themes[((index%n)+n)%n]
}

// ByID finds a palette by id
func ByID(id string) (Theme, bool) {
	for _, t := range themes {
		if t.ID == id {
			return t, true
		}
	}
	return Theme{}, false
}

// IDs lists palette ids in index order
func IDs() []string {
	ids := make([]string, len(themes))
	for i, t := range themes {
		ids[i] = t.ID
	}
	return ids
}

// Select resolves the palette for a frame: a fixed id wins over the round index
func Select(fixed string, index int) Theme {
	if fixed != "" && fixed != Auto {
		if t, ok := ByID(fixed); ok {
			return t
		}
	}
	return At(index)
}

// Luminance returns the WCAG relative luminance of c in [0,1]
func Luminance(c colorful.Color) float64 {
	r, g, b := c.Clamped().LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// IsDark reports whether c counts as a dark background
func IsDark(c colorful.Color) bool {
	return Luminance(c) < parameter.LuminanceDarkThreshold
}

// OutlineFor returns a contrast colour for shapes drawn on bg:
// lighter than bg on dark backgrounds, darker on light ones
func OutlineFor(bg colorful.Color) colorful.Color {
	target := colorful.Color{R: 0, G: 0, B: 0}
	if IsDark(bg) {
		target = colorful.Color{R: 1, G: 1, B: 1}
	}
	return bg.BlendRgb(target, parameter.OutlineBlend).Clamped()
}

// TextOn returns black or white, whichever reads better on bg
func TextOn(bg colorful.Color) colorful.Color {
	if IsDark(bg) {
		return colorful.Color{R: 1, G: 1, B: 1}
	}
	return colorful.Color{R: 0, G: 0, B: 0}
}
