// Package app wires the simulation, clocks, renderer and collaborators to a terminal
package app

import (
	"fmt"
	"log"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snakeflow/audio"
	"github.com/lixenwraith/snakeflow/config"
	"github.com/lixenwraith/snakeflow/core"
	"github.com/lixenwraith/snakeflow/engine"
	"github.com/lixenwraith/snakeflow/game"
	"github.com/lixenwraith/snakeflow/input"
	"github.com/lixenwraith/snakeflow/parameter"
	"github.com/lixenwraith/snakeflow/render"
	"github.com/lixenwraith/snakeflow/service"
	"github.com/lixenwraith/snakeflow/status"
	"github.com/lixenwraith/snakeflow/store"
	"github.com/lixenwraith/snakeflow/theme"
)

// Options configures an App
type Options struct {
	Screen       tcell.Screen // initialized by the caller
	Settings     config.Settings
	SettingsPath string // empty disables writing settings back
	Store        *store.Store
	Keys         *input.KeyTable // nil selects the default bindings
	Clock        engine.Clock    // nil selects the wall clock
	Rand         *rand.Rand      // nil seeds from the clock
	Fresh        bool            // ignore a saved round
	NoAudio      bool            // skip opening the audio device
}

// App owns one terminal session of the game
type App struct {
	screen       tcell.Screen
	settings     config.Settings
	settingsPath string
	store        *store.Store
	clock        engine.Clock
	fresh        bool

	hub        *service.Hub
	registry   *status.Registry
	game       *game.Game
	ticker     *engine.TickScheduler
	frames     *engine.FrameLoop
	renderer   *render.Renderer
	sound      *audio.SoundManager
	resize     *ResizeAdapter
	feedback   *Feedback
	roundClock *engine.RoundClock
	machine    *input.Machine

	events chan tcell.Event
}

// New builds the object graph; nothing runs until Run
func New(opts Options) (*App, error) {
	if opts.Screen == nil {
		return nil, fmt.Errorf("app: screen is required")
	}
	clock := opts.Clock
	if clock == nil {
		clock = engine.NewTimeProvider()
	}
	rng := opts.Rand
	if rng == nil {
		seed := uint64(clock.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>17|1))
	}
	// Game and renderer run on different goroutines and each get their own source
	gameRand := rand.New(rand.NewPCG(rng.Uint64(), rng.Uint64()))
	renderRand := rand.New(rand.NewPCG(rng.Uint64(), rng.Uint64()))

	settings := opts.Settings.Clamped()
	a := &App{
		screen:       opts.Screen,
		settings:     settings,
		settingsPath: opts.SettingsPath,
		store:        opts.Store,
		clock:        clock,
		fresh:        opts.Fresh,
		hub:          service.NewHub(),
		machine:      input.NewMachine(opts.Keys),
		events:       make(chan tcell.Event, parameter.EventChannelSize),
	}

	statusSvc := status.NewService()
	a.registry = statusSvc.Registry()
	a.roundClock = engine.NewRoundClock(clock)
	a.sound = audio.NewSoundManager(a.registry)
	a.sound.SetEnabled(settings.SoundEffectsOn)
	a.sound.SetVolume(settings.SoundEffectsVolume)

	a.feedback = &Feedback{
		player: a.sound,
		bell:   opts.Screen,
		timer:  a.roundClock,
		now:    clock.Now,
	}
	a.feedback.SetVibration(settings.VibrationOn)
	if opts.Store != nil {
		a.feedback.records = opts.Store
	}

	width, height := opts.Screen.Size()
	a.game = game.New(BoardFor(width, height, settings.GameZoom), settings.Rules(), gameRand, a.feedback)
	a.resize = NewResizeAdapter(a.game, settings.GameZoom)
	a.ticker = engine.NewTickScheduler(a.game.Tick, a.registry)
	a.renderer = render.NewRenderer(opts.Screen, a.game, render.Options{
		ThemeID: settings.Theme,
		Elapsed: a.roundClock.Elapsed,
		Rand:    renderRand,
	}, a.registry)
	a.frames = engine.NewFrameLoop(a.renderer.Frame, clock, parameter.FrameUpdateInterval, a.registry)

	a.feedback.game = a.game
	a.feedback.hud = a.renderer
	a.feedback.ticker = a.ticker
	a.feedback.frames = a.frames
	a.feedback.resize = a.resize

	services := []service.Service{statusSvc, a.ticker, a.frames}
	if !opts.NoAudio {
		services = append(services, a.sound)
	}
	for _, svc := range services {
		if err := a.hub.Register(svc); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// Game exposes the simulation, for tests and embedding
func (a *App) Game() *game.Game {
	return a.game
}

// Run starts services, restores state and processes terminal events until quit
func (a *App) Run() error {
	if err := a.Start(); err != nil {
		return err
	}
	defer a.Shutdown()

	core.Go(a.poll)
	for ev := range a.events {
		if !a.HandleEvent(ev) {
			return nil
		}
	}
	return nil
}

// Start initializes services and restores the record and any saved round
func (a *App) Start() error {
	if err := a.hub.InitAll(); err != nil {
		return fmt.Errorf("init services: %w", err)
	}
	if err := a.hub.StartAll(); err != nil {
		return fmt.Errorf("start services: %w", err)
	}

	a.resize.Viewport(a.screen.Size())
	a.restore()
	a.frames.Request()
	return nil
}

// Shutdown saves a round in progress and stops services
func (a *App) Shutdown() {
	if a.game.Snapshot().IsRunning {
		a.save(false)
	}
	a.hub.StopAll()
}

// poll forwards terminal events until the screen is finalized
func (a *App) poll() {
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			close(a.events)
			return
		}
		a.events <- ev
	}
}

// restore loads the record and resumes a saved round paused
func (a *App) restore() {
	if a.store == nil {
		return
	}
	rec, err := a.store.LoadRecord()
	if err != nil {
		log.Printf("load record: %v", err)
	}
	a.feedback.SetRecord(rec)

	if a.fresh {
		return
	}
	save, err := a.store.LoadSave()
	if err != nil {
		log.Printf("load save: %v", err)
		return
	}
	if save == nil || !save.Resumable() {
		return
	}
	a.game.Resume(*save)
	a.game.Pause()
	if err := a.store.ClearSave(); err != nil {
		log.Printf("clear save: %v", err)
	}
}

// HandleEvent applies one terminal event, returns false when the session should end
func (a *App) HandleEvent(ev tcell.Event) bool {
	intent := a.machine.Process(ev)
	if intent == nil {
		return true
	}

	switch intent.Type {
	case input.IntentQuit:
		return false
	case input.IntentResize:
		a.screen.Sync()
		a.resize.Viewport(a.screen.Size())
	case input.IntentDirection:
		a.game.ChangeDirection(intent.Direction)
	case input.IntentTap:
		a.tap(intent.X, intent.Y)
	case input.IntentPause:
		a.pauseOrStart()
	case input.IntentRestart:
		if st := a.game.Status(); st == game.StatusOver || st == game.StatusIdle {
			a.game.Restart()
		}
	case input.IntentSave:
		a.save(true)
	case input.IntentZoomIn:
		a.zoom(parameter.ZoomStep)
	case input.IntentZoomOut:
		a.zoom(-parameter.ZoomStep)
	case input.IntentToggleDebug:
		a.renderer.ToggleDebug()
	case input.IntentToggleSound:
		on := !a.sound.Enabled()
		a.sound.SetEnabled(on)
		a.settings.SoundEffectsOn = on
		a.persistSettings()
	case input.IntentCycleTheme:
		a.settings.Theme = nextTheme(a.settings.Theme)
		a.renderer.SetTheme(a.settings.Theme)
		a.persistSettings()
	}
	a.frames.Request()
	return true
}

func (a *App) pauseOrStart() {
	switch a.game.Status() {
	case game.StatusIdle, game.StatusOver:
		a.game.Start()
	default:
		a.game.TogglePause()
	}
}

// tap turns relative to the head while running; elsewhere it acts like pause
func (a *App) tap(x, y int) {
	v := a.game.View()
	s := v.State
	if s.Status() != game.StatusRunning {
		if s.Status() != game.StatusOver {
			a.pauseOrStart()
		}
		return
	}
	width, height := a.screen.Size()
	vp := input.Viewport{Width: width, Height: height, Board: v.Board}
	if dir, ok := input.TapDirection(vp, s.Head(), s.Direction, x, y); ok {
		a.game.ChangeDirection(dir)
	}
}

// save writes a checkpoint of a round in progress; toast shows the confirmation
func (a *App) save(toast bool) {
	if a.store == nil {
		return
	}
	data := a.game.SaveData(a.clock.Now())
	if !data.Resumable() {
		return
	}
	if err := a.store.WriteSave(data); err != nil {
		log.Printf("write save: %v", err)
		return
	}
	log.Printf("saved round %s: score=%d", data.ID, data.GameState.Score)
	if toast {
		a.renderer.ShowSaved(a.clock.Now())
	}
}

func (a *App) zoom(delta float64) {
	z := a.resize.SetZoom(a.resize.Zoom() + delta)
	if z == a.settings.GameZoom {
		return
	}
	a.settings.GameZoom = z
	a.persistSettings()
}

func (a *App) persistSettings() {
	if a.settingsPath == "" {
		return
	}
	if err := config.Save(a.settingsPath, a.settings); err != nil {
		log.Printf("save settings: %v", err)
	}
}

// Settings returns the settings as changed during the session
func (a *App) Settings() config.Settings {
	return a.settings
}

// nextTheme cycles auto, then every palette in order, then back to auto
func nextTheme(current string) string {
	ids := theme.IDs()
	i := slices.Index(ids, current)
	if i+1 >= len(ids) {
		return theme.Auto
	}
	return ids[i+1]
}

// Elapsed returns the play time of the current round
func (a *App) Elapsed() time.Duration {
	return a.roundClock.Elapsed()
}
