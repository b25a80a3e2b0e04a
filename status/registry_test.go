package status

import (
	"sync"
	"testing"
)

func TestMetricMapCachesPointer(t *testing.T) {
	r := NewRegistry()
	a := r.Ints.Get(KeyTicks)
	b := r.Ints.Get(KeyTicks)
	if a != b {
		t.Fatal("Get returned different pointers for the same key")
	}
	a.Add(3)
	if got := r.Ints.Get(KeyTicks).Load(); got != 3 {
		t.Errorf("ticks = %d, want 3", got)
	}
	if !r.Ints.Has(KeyTicks) || r.Ints.Has(KeyFrames) {
		t.Error("Has reported wrong membership")
	}
}

func TestMetricMapConcurrentGet(t *testing.T) {
	m := NewMetricMap[AtomicFloat]()
	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.Get(KeyFPS).Set(60)
		}()
	}
	wg.Wait()
	if m.Count() != 1 {
		t.Errorf("Count() = %d, want 1", m.Count())
	}
}

func TestAtomicFloatSmooth(t *testing.T) {
	var f AtomicFloat
	if got := f.Smooth(60, 0.1); got != 60 {
		t.Errorf("first sample = %v, want 60", got)
	}
	if got := f.Smooth(30, 0.5); got != 45 {
		t.Errorf("smoothed = %v, want 45", got)
	}
}

func TestAtomicStringTruncates(t *testing.T) {
	var s AtomicString
	if s.Load() != "" {
		t.Error("zero value not empty")
	}
	s.Store("0123456789012345678901234567890")
	if len(s.Load()) != MaxStringLen {
		t.Errorf("len = %d, want %d", len(s.Load()), MaxStringLen)
	}
}

func TestRegistryLines(t *testing.T) {
	r := NewRegistry()
	r.Strings.Get(KeyStatus).Store("running")
	r.Ints.Get(KeyTicks).Store(12)
	r.Floats.Get(KeyFPS).Set(59.94)
	r.Bools.Get(KeyAudioEnabled).Store(true)

	want := []string{
		"game.status: running",
		"engine.ticks: 12",
		"render.fps: 59.9",
		"audio.enabled: true",
	}
	got := r.Lines()
	if len(got) != len(want) {
		t.Fatalf("Lines() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}
