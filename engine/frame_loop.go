package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/snakeflow/core"
	"github.com/lixenwraith/snakeflow/status"
)

// FrameFunc draws one frame and reports whether another frame is wanted
type FrameFunc func(now time.Time) (more bool)

// FrameLoop is the render clock
// It runs frames at a fixed interval while the frame function asks for more,
// then parks until Request wakes it
type FrameLoop struct {
	frame    FrameFunc
	clock    Clock
	interval time.Duration

	wake     chan struct{}
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
	parked   atomic.Bool

	statFrames *atomic.Int64
	statFPS    *status.AtomicFloat
}

// NewFrameLoop creates a stopped loop
func NewFrameLoop(frame FrameFunc, clock Clock, interval time.Duration, reg *status.Registry) *FrameLoop {
	fl := &FrameLoop{
		frame:      frame,
		clock:      clock,
		interval:   interval,
		wake:       make(chan struct{}, 1),
		stopChan:   make(chan struct{}),
		statFrames: reg.Ints.Get(status.KeyFrames),
		statFPS:    reg.Floats.Get(status.KeyFPS),
	}
	fl.parked.Store(true)
	return fl
}

// Request schedules a frame, waking a parked loop
// Never blocks; requests made while a frame is pending coalesce
func (fl *FrameLoop) Request() {
	select {
	case fl.wake <- struct{}{}:
	default:
	}
}

// Parked reports whether the loop is waiting for a Request
func (fl *FrameLoop) Parked() bool {
	return fl.parked.Load()
}

// Name implements service.Service
func (fl *FrameLoop) Name() string { return "frames" }

// Dependencies implements service.Service
func (fl *FrameLoop) Dependencies() []string { return []string{"status"} }

// Init implements service.Service
func (fl *FrameLoop) Init(...any) error { return nil }

// Start launches the loop goroutine
func (fl *FrameLoop) Start() error {
	if fl.running.CompareAndSwap(false, true) {
		fl.wg.Add(1)
		core.Go(fl.run)
	}
	return nil
}

// Stop halts the loop and waits for the current frame to finish
func (fl *FrameLoop) Stop() error {
	fl.stopOnce.Do(func() {
		close(fl.stopChan)
		if fl.running.CompareAndSwap(true, false) {
			fl.wg.Wait()
		}
	})
	return nil
}

func (fl *FrameLoop) run() {
	defer fl.wg.Done()

	for {
		fl.parked.Store(true)
		select {
		case <-fl.stopChan:
			return
		case <-fl.wake:
		}
		fl.parked.Store(false)

		if !fl.animate() {
			return
		}
	}
}

// animate runs frames until the frame function declines, returns false on stop
func (fl *FrameLoop) animate() bool {
	ticker := time.NewTicker(fl.interval)
	defer ticker.Stop()

	last := fl.clock.Now()
	for {
		now := fl.clock.Now()
		more := fl.frame(now)
		fl.statFrames.Add(1)
		if elapsed := now.Sub(last); elapsed > 0 {
			fl.statFPS.Smooth(float64(time.Second)/float64(elapsed), 0.1)
		}
		last = now

		if !more {
			// A request raised during the frame is served by the next wake
			return true
		}

		select {
		case <-fl.stopChan:
			return false
		case <-ticker.C:
		case <-fl.wake:
			// Already animating, the next tick covers the request
			select {
			case <-fl.stopChan:
				return false
			case <-ticker.C:
			}
		}
	}
}
