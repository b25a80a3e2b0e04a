package audio

import (
	"fmt"
	"log"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/snakeflow/parameter"
	"github.com/lixenwraith/snakeflow/status"
)

// speakerLock guards the mixer against the speaker callback goroutine
type speakerLock struct{}

func (speakerLock) Lock()   { speaker.Lock() }
func (speakerLock) Unlock() { speaker.Unlock() }

// SoundManager plays synthesized effects through a shared mixer
// Playback failures never surface to the game; without a device every Play is a no-op
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rate        beep.SampleRate
	out         sync.Locker // held while touching the mixer
	initialized bool

	enabled atomic.Bool
	volume  atomic.Uint64 // volume * 1000

	statEnabled *atomic.Bool
}

// NewSoundManager creates a manager with effects enabled at the default volume
func NewSoundManager(reg *status.Registry) *SoundManager {
	sm := &SoundManager{
		mixer:       &beep.Mixer{},
		rate:        beep.SampleRate(parameter.AudioSampleRate),
		out:         speakerLock{},
		statEnabled: reg.Bools.Get(status.KeyAudioEnabled),
	}
	sm.enabled.Store(true)
	sm.SetVolume(parameter.DefaultSoundEffectsVolume)
	return sm
}

// Initialize opens the audio device and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sm.rate, sm.rate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	sm.statEnabled.Store(sm.enabled.Load())
	return nil
}

// Cleanup silences the mixer and detaches the manager from the device
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	sm.out.Lock()
	sm.mixer.Clear()
	sm.out.Unlock()
	// beep has no speaker close that tolerates re-init; clearing the mixer is enough
	sm.initialized = false
	sm.statEnabled.Store(false)
}

// SetEnabled toggles all effects
func (sm *SoundManager) SetEnabled(on bool) {
	sm.enabled.Store(on)
	sm.mu.Lock()
	sm.statEnabled.Store(on && sm.initialized)
	sm.mu.Unlock()
}

// Enabled reports whether effects are switched on
func (sm *SoundManager) Enabled() bool {
	return sm.enabled.Load()
}

// SetVolume sets the effects volume, clamped to [0,1]
func (sm *SoundManager) SetVolume(v float64) {
	v = min(max(v, 0), 1)
	sm.volume.Store(uint64(v * 1000))
}

// Volume returns the effects volume
func (sm *SoundManager) Volume() float64 {
	return float64(sm.volume.Load()) / 1000
}

// Play queues soundType on the mixer, reports whether anything was queued
func (sm *SoundManager) Play(soundType SoundType) bool {
	if !sm.enabled.Load() {
		return false
	}
	vol := sm.Volume()
	if vol <= 0 {
		return false
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized {
		return false
	}
	s := GetSoundEffect(soundType, sm.rate, vol)
	if s == nil {
		return false
	}
	sm.out.Lock()
	sm.mixer.Add(s)
	sm.out.Unlock()
	return true
}

// PlayEat plays the fruit blip
func (sm *SoundManager) PlayEat() { sm.Play(SoundEat) }

// PlayGameOver plays the falling tone
func (sm *SoundManager) PlayGameOver() { sm.Play(SoundGameOver) }

// PlayPhase plays the phase arpeggio
func (sm *SoundManager) PlayPhase() { sm.Play(SoundPhase) }

// ===== SERVICE =====

func (sm *SoundManager) Name() string           { return "audio" }
func (sm *SoundManager) Dependencies() []string { return []string{"status"} }
func (sm *SoundManager) Init(...any) error      { return nil }

// Start opens the device; a missing device disables audio instead of failing startup
func (sm *SoundManager) Start() error {
	if err := sm.Initialize(); err != nil {
		log.Printf("audio disabled: %v", err)
	}
	return nil
}

// Stop implements service.Service
func (sm *SoundManager) Stop() error {
	sm.Cleanup()
	return nil
}
