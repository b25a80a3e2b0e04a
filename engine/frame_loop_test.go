package engine

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/lixenwraith/snakeflow/status"
)

func TestFrameLoopParksWhenIdle(t *testing.T) {
	reg := status.NewRegistry()
	var frames atomic.Int32
	fl := NewFrameLoop(func(time.Time) bool {
		frames.Add(1)
		return false
	}, NewTimeProvider(), time.Millisecond, reg)
	fl.Start()
	defer fl.Stop()

	time.Sleep(10 * time.Millisecond)
	if frames.Load() != 0 {
		t.Fatalf("frames ran without a request: %d", frames.Load())
	}

	fl.Request()
	waitFor(t, func() bool { return frames.Load() == 1 && fl.Parked() }, time.Second)

	time.Sleep(10 * time.Millisecond)
	if frames.Load() != 1 {
		t.Errorf("frames = %d after self-stop, want 1", frames.Load())
	}
}

func TestFrameLoopAnimatesUntilDone(t *testing.T) {
	reg := status.NewRegistry()
	var remaining atomic.Int32
	remaining.Store(5)
	var frames atomic.Int32
	fl := NewFrameLoop(func(time.Time) bool {
		frames.Add(1)
		return remaining.Add(-1) > 0
	}, NewTimeProvider(), time.Millisecond, reg)
	fl.Start()
	defer fl.Stop()

	fl.Request()
	waitFor(t, func() bool { return frames.Load() == 5 && fl.Parked() }, time.Second)

	// Restart after parking
	remaining.Store(2)
	fl.Request()
	waitFor(t, func() bool { return frames.Load() == 7 && fl.Parked() }, time.Second)

	if got := reg.Ints.Get(status.KeyFrames).Load(); got != 7 {
		t.Errorf("frame metric = %d, want 7", got)
	}
}

func TestFrameLoopCoalescesRequests(t *testing.T) {
	reg := status.NewRegistry()
	release := make(chan struct{})
	var frames atomic.Int32
	fl := NewFrameLoop(func(time.Time) bool {
		if frames.Add(1) == 1 {
			<-release
		}
		return false
	}, NewTimeProvider(), time.Millisecond, reg)
	fl.Start()
	defer fl.Stop()

	fl.Request()
	waitFor(t, func() bool { return frames.Load() == 1 }, time.Second)
	for range 10 {
		fl.Request()
	}
	close(release)

	waitFor(t, func() bool { return frames.Load() == 2 && fl.Parked() }, time.Second)
	time.Sleep(10 * time.Millisecond)
	if frames.Load() != 2 {
		t.Errorf("frames = %d, want 2 (requests during a frame coalesce)", frames.Load())
	}
}

func TestFrameLoopStopIdempotent(t *testing.T) {
	fl := NewFrameLoop(func(time.Time) bool { return true }, NewTimeProvider(), time.Millisecond, status.NewRegistry())
	if err := fl.Stop(); err != nil {
		t.Fatalf("Stop before Start: %v", err)
	}

	fl = NewFrameLoop(func(time.Time) bool { return true }, NewTimeProvider(), time.Millisecond, status.NewRegistry())
	fl.Start()
	fl.Request()
	time.Sleep(5 * time.Millisecond)
	fl.Stop()
	fl.Stop()
}
