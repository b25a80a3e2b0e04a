package engine

import (
	"sync"
	"time"
)

// RoundClock measures play time of a round, excluding pauses
// Stopped clocks keep reporting the elapsed time at the stop point
type RoundClock struct {
	mu    sync.Mutex
	clock Clock

	startTime   time.Time     // zero until the first Reset
	pauseStart  time.Time     // zero while running
	totalPaused time.Duration
	stopped     bool
	stoppedAt   time.Duration
}

// NewRoundClock creates an unstarted clock reading from clock
func NewRoundClock(clock Clock) *RoundClock {
	return &RoundClock{clock: clock}
}

// Reset starts measuring a new round from now
func (rc *RoundClock) Reset() {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.startTime = rc.clock.Now()
	rc.pauseStart = time.Time{}
	rc.totalPaused = 0
	rc.stopped = false
	rc.stoppedAt = 0
}

// Pause freezes play time
func (rc *RoundClock) Pause() {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	if rc.startTime.IsZero() || rc.stopped || !rc.pauseStart.IsZero() {
		return
	}
	rc.pauseStart = rc.clock.Now()
}

// Resume continues play time after Pause
func (rc *RoundClock) Resume() {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	if rc.pauseStart.IsZero() {
		return
	}
	rc.totalPaused += rc.clock.Now().Sub(rc.pauseStart)
	rc.pauseStart = time.Time{}
}

// Stop freezes the clock permanently until the next Reset
func (rc *RoundClock) Stop() {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	if rc.startTime.IsZero() || rc.stopped {
		return
	}
	rc.stoppedAt = rc.elapsedLocked()
	rc.stopped = true
}

// Paused reports whether the clock is frozen by Pause
func (rc *RoundClock) Paused() bool {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return !rc.pauseStart.IsZero()
}

// Elapsed returns play time since Reset
func (rc *RoundClock) Elapsed() time.Duration {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	if rc.stopped {
		return rc.stoppedAt
	}
	return rc.elapsedLocked()
}

func (rc *RoundClock) elapsedLocked() time.Duration {
	if rc.startTime.IsZero() {
		return 0
	}
	now := rc.clock.Now()
	if !rc.pauseStart.IsZero() {
		now = rc.pauseStart
	}
	return now.Sub(rc.startTime) - rc.totalPaused
}
