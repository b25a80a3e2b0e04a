package render

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snakeflow/game"
	"github.com/lixenwraith/snakeflow/parameter"
	"github.com/lixenwraith/snakeflow/particle"
	"github.com/lixenwraith/snakeflow/status"
	"github.com/lixenwraith/snakeflow/theme"
)

// Source is the read side of the simulation
// View returns a state and its board from one committed aggregate
type Source interface {
	View() game.View
	Rules() game.Rules
}

// Options configures a Renderer
type Options struct {
	// ThemeID pins a palette, empty or theme.Auto follows the round
	ThemeID string
	// Elapsed reports round play time for the HUD, nil hides it
	Elapsed func() time.Duration
	// Rand drives particle jitter
	Rand particle.Rand
}

// Renderer draws frames of the latest snapshot onto a terminal screen
// Frame runs on the frame loop goroutine; overlay setters may be called from any goroutine
type Renderer struct {
	screen    tcell.Screen
	src       Source
	canvas    *Canvas
	particles *particle.System
	rng       particle.Rand
	elapsed   func() time.Duration

	// Frame-local state, touched only by Frame
	lastScore int
	lastFrame time.Time

	// ===== OVERLAY STATE (mu protected) =====
	mu            sync.Mutex
	themeID       string
	debug         bool
	best          int
	announcePhase int
	announceUntil time.Time
	toastUntil    time.Time

	statParticles *atomic.Int64
	statBoard     *status.AtomicString
	statusReg     *status.Registry
}

// NewRenderer creates a renderer for screen
func NewRenderer(screen tcell.Screen, src Source, opts Options, reg *status.Registry) *Renderer {
	return &Renderer{
		screen:        screen,
		src:           src,
		canvas:        NewCanvas(0, 0),
		particles:     particle.NewSystem(parameter.ParticleMax),
		rng:           opts.Rand,
		elapsed:       opts.Elapsed,
		themeID:       opts.ThemeID,
		lastScore:     src.View().State.Score,
		statParticles: reg.Ints.Get(status.KeyParticles),
		statBoard:     reg.Strings.Get(status.KeyBoard),
		statusReg:     reg,
	}
}

// ===== OVERLAY CONTROL =====

// AnnouncePhase shows the phase banner until now + PhaseAnnounceDuration
func (r *Renderer) AnnouncePhase(phase int, now time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.announcePhase = phase
	r.announceUntil = now.Add(parameter.PhaseAnnounceDuration)
}

// ShowSaved shows the save confirmation toast
func (r *Renderer) ShowSaved(now time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.toastUntil = now.Add(parameter.SavedToastDuration)
}

// ToggleDebug flips the metrics overlay
func (r *Renderer) ToggleDebug() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.debug = !r.debug
	return r.debug
}

// SetTheme pins a palette id, theme.Auto follows the round
func (r *Renderer) SetTheme(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.themeID = id
}

// SetBest sets the high score shown in the HUD
func (r *Renderer) SetBest(score int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.best = score
}

// ParticleCount returns live particles
func (r *Renderer) ParticleCount() int {
	return r.particles.Len()
}

// overlays is a consistent copy of the overlay state for one frame
type overlays struct {
	themeID       string
	debug         bool
	best          int
	announcePhase int
	announcing    bool
	toast         bool
}

func (r *Renderer) overlays(now time.Time) overlays {
	r.mu.Lock()
	defer r.mu.Unlock()
	return overlays{
		themeID:       r.themeID,
		debug:         r.debug,
		best:          r.best,
		announcePhase: r.announcePhase,
		announcing:    now.Before(r.announceUntil),
		toast:         now.Before(r.toastUntil),
	}
}

// ===== FRAME =====

// Frame draws one frame and reports whether animation should continue
func (r *Renderer) Frame(now time.Time) bool {
	v := r.src.View()
	s, b := v.State, v.Board
	rules := r.src.Rules()
	ov := r.overlays(now)
	th := theme.Select(ov.themeID, s.ThemeIndex)

	width, height := r.screen.Size()
	r.canvas.Resize(width, height-parameter.TopMargin)
	geo := newGeometry(r.canvas, b)

	var dt float64
	if !r.lastFrame.IsZero() {
		dt = particle.FrameDelta(now.Sub(r.lastFrame))
	}
	r.lastFrame = now
	r.particles.Update(dt)
	r.trackScore(s, geo, th)

	r.canvas.Clear(th.Bg)
	r.drawGrid(geo, th)
	if !s.IsWon {
		r.drawFruit(s, geo, th)
	}
	r.drawSnake(s, geo, th)
	r.drawParticles()
	if s.IsPaused || s.IsGameOver {
		r.canvas.Dim(parameter.PauseDimFactor)
	}
	r.drawOverlays(s, ov, th, now)
	r.canvas.Flush(r.screen, 0, parameter.TopMargin)
	r.drawHUD(s, rules, ov, th, width)
	r.screen.Show()

	r.statParticles.Store(int64(r.particles.Len()))
	r.statBoard.Store(b.String())

	return r.particles.Len() > 0 || ov.announcing || ov.toast || s.IsPaused
}

// trackScore spawns a burst at the head when the score rose since the last frame
// The fruit has already respawned, so the burst uses the current fruit type
func (r *Renderer) trackScore(s game.State, geo geometry, th theme.Theme) {
	switch {
	case s.Score > r.lastScore && len(s.Snake) > 0 && r.rng != nil:
		cx, cy := geo.center(s.Head())
		r.particles.Spawn(cx, cy, th.Fruit, s.FruitType.Emoji(), r.rng)
	case s.Score < r.lastScore:
		// New round
		r.particles.Clear()
	}
	r.lastScore = s.Score
}
