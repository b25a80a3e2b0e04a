package app

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/snakeflow/game"
)

// Player plays the round sound effects
type Player interface {
	PlayEat()
	PlayGameOver()
	PlayPhase()
}

// Bell is the haptic substitute, tcell.Screen rings the terminal bell
type Bell interface {
	Beep() error
}

// RecordWriter persists the best record
type RecordWriter interface {
	WriteRecord(r game.Record) error
}

// HUD receives round feedback shown by the renderer
type HUD interface {
	AnnouncePhase(phase int, now time.Time)
	SetBest(score int)
}

// Ticker follows the round's activity and speed
type Ticker interface {
	Sync(active bool, interval time.Duration)
}

// Requester wakes the frame loop
type Requester interface {
	Request()
}

// RoundTimer measures play time excluding pauses
type RoundTimer interface {
	Reset()
	Pause()
	Resume()
	Stop()
}

// Snapshotter reads the committed game state
type Snapshotter interface {
	Snapshot() game.State
	Rules() game.Rules
}

// Feedback turns simulation events into sound, haptics, records and scheduling
// Callbacks arrive one at a time in commit order, after the game lock is released
type Feedback struct {
	game    Snapshotter
	player  Player
	bell    Bell
	records RecordWriter
	hud     HUD
	ticker  Ticker
	frames  Requester
	timer   RoundTimer
	resize  *ResizeAdapter
	now     func() time.Time

	vibration atomic.Bool

	mu         sync.Mutex
	record     game.Record
	lastStatus game.Status
}

// OnEatFruit implements game.Listener
func (f *Feedback) OnEatFruit() {
	if f.player != nil {
		f.player.PlayEat()
	}
}

// OnPhaseChange implements game.Listener
func (f *Feedback) OnPhaseChange(phase int) {
	if f.player != nil {
		f.player.PlayPhase()
	}
	if f.hud != nil {
		f.hud.AnnouncePhase(phase, f.now())
	}
}

// OnGameOver implements game.Listener
func (f *Feedback) OnGameOver() {
	if f.player != nil {
		f.player.PlayGameOver()
	}
	if f.vibration.Load() && f.bell != nil {
		if err := f.bell.Beep(); err != nil {
			log.Printf("bell: %v", err)
		}
	}

	s := f.game.Snapshot()
	f.mu.Lock()
	next, improved := f.record.Update(s.Score, s.Phase, f.game.Rules().Difficulty)
	f.record = next
	f.mu.Unlock()
	if !improved {
		return
	}
	log.Printf("new record: score=%d phase=%d difficulty=%v", next.HighScore, next.MaxPhase, next.Difficulty)
	if f.hud != nil {
		f.hud.SetBest(next.HighScore)
	}
	if f.records != nil {
		if err := f.records.WriteRecord(next); err != nil {
			log.Printf("write record: %v", err)
		}
	}
}

// OnStateChange implements game.Listener
func (f *Feedback) OnStateChange(s game.State) {
	if f.ticker != nil {
		f.ticker.Sync(s.Active(), s.Interval())
	}

	status := s.Status()
	f.mu.Lock()
	prev := f.lastStatus
	f.lastStatus = status
	f.mu.Unlock()
	f.trackTime(prev, status)

	if !s.Active() && f.resize != nil {
		f.resize.Apply()
	}
	if f.frames != nil {
		f.frames.Request()
	}
}

// trackTime drives the round timer from status transitions
func (f *Feedback) trackTime(prev, next game.Status) {
	if f.timer == nil || prev == next {
		return
	}
	switch next {
	case game.StatusRunning:
		if prev == game.StatusPaused {
			f.timer.Resume()
		} else {
			f.timer.Reset()
		}
	case game.StatusPaused:
		f.timer.Pause()
	case game.StatusOver:
		f.timer.Stop()
	case game.StatusIdle:
		f.timer.Reset()
		f.timer.Stop()
	}
}

// SetRecord seeds the best record loaded at startup
func (f *Feedback) SetRecord(r game.Record) {
	f.mu.Lock()
	f.record = r
	f.mu.Unlock()
	if f.hud != nil {
		f.hud.SetBest(r.HighScore)
	}
}

// Record returns the best record so far
func (f *Feedback) Record() game.Record {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.record
}

// SetVibration toggles the game over bell
func (f *Feedback) SetVibration(on bool) {
	f.vibration.Store(on)
}
