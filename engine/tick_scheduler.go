package engine

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/snakeflow/core"
	"github.com/lixenwraith/snakeflow/status"
)

// TickScheduler drives the simulation on a fixed interval
// At most one loop is live; Sync replaces it whenever activity or interval changes
type TickScheduler struct {
	step func()

	mu       sync.Mutex
	gen      uint64 // bumped on every loop replacement
	active   bool
	interval time.Duration
	stopChan chan struct{} // stop signal of the live loop, nil when none
	closed   bool

	// runMu serializes step calls across generations
	runMu sync.Mutex
	wg    sync.WaitGroup

	// Cached metric pointers
	statTicks *atomic.Int64
	statLoops *atomic.Int64
}

// NewTickScheduler creates an idle scheduler calling step once per tick
func NewTickScheduler(step func(), reg *status.Registry) *TickScheduler {
	return &TickScheduler{
		step:      step,
		statTicks: reg.Ints.Get(status.KeyTicks),
		statLoops: reg.Ints.Get(status.KeyTickLoops),
	}
}

// Sync aligns the loop with the desired activity and interval
// Safe to call from within step; the replaced loop exits after its current step
func (ts *TickScheduler) Sync(active bool, interval time.Duration) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if ts.closed {
		return
	}
	if interval <= 0 {
		active = false
	}
	if active == ts.active && (!active || interval == ts.interval) {
		return
	}

	ts.stopLocked()
	ts.active = active
	ts.interval = interval
	if !active {
		return
	}

	stop := make(chan struct{})
	ts.stopChan = stop
	ts.statLoops.Add(1)
	ts.wg.Add(1)
	gen := ts.gen
	core.Go(func() { ts.loop(gen, interval, stop) })
}

// Active reports whether a loop is live
func (ts *TickScheduler) Active() bool {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return ts.active
}

// Interval returns the period of the live loop
func (ts *TickScheduler) Interval() time.Duration {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return ts.interval
}

// Stop tears down the live loop and waits for it to exit
// Idempotent; must not be called from within step
func (ts *TickScheduler) Stop() error {
	ts.mu.Lock()
	wasClosed := ts.closed
	ts.closed = true
	ts.stopLocked()
	ts.active = false
	ts.mu.Unlock()

	ts.wg.Wait()
	if !wasClosed {
		log.Printf("ticker stopped after %d ticks", ts.statTicks.Load())
	}
	return nil
}

// stopLocked invalidates the live loop, caller holds mu
func (ts *TickScheduler) stopLocked() {
	ts.gen++
	if ts.stopChan != nil {
		close(ts.stopChan)
		ts.stopChan = nil
		ts.statLoops.Add(-1)
	}
}

// current reports whether gen still owns the schedule
func (ts *TickScheduler) current(gen uint64) bool {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return ts.gen == gen
}

func (ts *TickScheduler) loop(gen uint64, interval time.Duration, stop <-chan struct{}) {
	defer ts.wg.Done()

	deadline := time.Now().Add(interval)
	timer := time.NewTimer(interval)
	defer timer.Stop()

	for {
		select {
		case <-stop:
			return
		case <-timer.C:
		}

		if !ts.tick(gen) {
			return
		}

		// Drift correction: skip ahead instead of bursting when far behind
		now := time.Now()
		deadline = deadline.Add(interval)
		if now.Sub(deadline) > interval*2 {
			deadline = now.Add(interval)
		}
		timer.Reset(max(deadline.Sub(now), 0))
	}
}

// tick runs one step if gen is still current
func (ts *TickScheduler) tick(gen uint64) bool {
	ts.runMu.Lock()
	defer ts.runMu.Unlock()

	if !ts.current(gen) {
		return false
	}
	ts.step()
	ts.statTicks.Add(1)
	return true
}

// ===== SERVICE =====

func (ts *TickScheduler) Name() string           { return "ticker" }
func (ts *TickScheduler) Dependencies() []string { return []string{"status"} }
func (ts *TickScheduler) Init(...any) error      { return nil }

// Start is a no-op, loops are created by Sync
func (ts *TickScheduler) Start() error { return nil }
