package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/snakeflow/game"
	"github.com/lixenwraith/snakeflow/parameter"
	"github.com/lixenwraith/snakeflow/theme"
)

const blinkMs = 500

// drawHUD fills the top row with score, phase, difficulty and timers
func (r *Renderer) drawHUD(s game.State, rules game.Rules, ov overlays, th theme.Theme, width int) {
	style := tcell.StyleDefault.Background(toTcell(th.HudBg)).Foreground(toTcell(th.HudText))
	for x := 0; x < width; x++ {
		r.screen.SetContent(x, 0, ' ', nil, style)
	}

	left := fmt.Sprintf(" SCORE %d  PHASE %d  %s", s.Score, s.Phase, strings.ToUpper(rules.Difficulty.String()))
	if rules.Training {
		left += "  " + parameter.TextTrainingFlag
	}
	x := drawString(r.screen, 0, 0, left, style.Bold(true))

	right := fmt.Sprintf("BEST %d  %s ", max(ov.best, s.Score), th.Name)
	if r.elapsed != nil {
		right = formatClock(r.elapsed()) + "  " + right
	}
	if rx := width - runewidth.StringWidth(right); rx > x+1 {
		drawString(r.screen, rx, 0, right, style)
	}
}

// drawOverlays writes status banners into the canvas text layer
func (r *Renderer) drawOverlays(s game.State, ov overlays, th theme.Theme, now time.Time) {
	_, rows := r.canvas.Cells()
	mid := rows / 2
	fg := theme.TextOn(th.Bg)
	if s.IsPaused || s.IsGameOver {
		// Dimmed boards are dark whatever the palette
		fg = colorful.Color{R: 1, G: 1, B: 1}
	}

	switch s.Status() {
	case game.StatusIdle:
		r.canvas.TextCentered(mid, parameter.TextIdle, fg)
	case game.StatusPaused:
		r.canvas.TextCentered(mid, parameter.TextPaused, fg)
		if (now.UnixMilli()/blinkMs)%2 == 0 {
			r.canvas.TextCentered(mid+1, parameter.TextResumeHint, fg)
		}
	case game.StatusOver:
		title := parameter.TextGameOver
		if s.IsWon {
			title = parameter.TextWon
		}
		r.canvas.TextCentered(mid-1, title, th.Fruit)
		r.canvas.TextCentered(mid, fmt.Sprintf("score %d  phase %d", s.Score, s.Phase), fg)
		r.canvas.TextCentered(mid+1, parameter.TextRestartHint, fg)
	}

	if ov.announcing {
		text := " " + fmt.Sprintf(parameter.TextPhaseFormat, ov.announcePhase) + " "
		cols, _ := r.canvas.Cells()
		col := (cols - runewidth.StringWidth(text)) / 2
		r.canvas.TextBg(col, rows/3, text, th.HudText, th.HudBg)
	}
	if ov.toast {
		text := " " + parameter.TextSaved + " "
		cols, _ := r.canvas.Cells()
		r.canvas.TextBg(cols-runewidth.StringWidth(text), rows-1, text, th.HudText, th.HudBg)
	}
	if ov.debug {
		for i, line := range r.statusReg.Lines() {
			if i >= rows {
				break
			}
			r.canvas.TextBg(0, i, line, th.HudText, th.HudBg)
		}
	}
}

// drawString writes s at (x, y) honoring wide runes, returns the next column
func drawString(screen tcell.Screen, x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		screen.SetContent(x, y, ch, nil, style)
		x += w
	}
	return x
}

func formatClock(d time.Duration) string {
	secs := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
