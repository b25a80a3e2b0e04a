package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 50 * time.Millisecond
)

// Effect Levels (relative to the sound effects volume setting)
const (
	EatVolumeScale      = 0.7
	GameOverVolumeScale = 0.8
	PhaseVolumeScale    = 0.6

	// DefaultSoundEffectsVolume is the volume used when no setting is present
	DefaultSoundEffectsVolume = 0.6
)

// Eat Blip
const (
	EatFreqStart = 660.0
	EatFreqEnd   = 1320.0
	EatDuration  = 70 * time.Millisecond
)

// Game Over Fall
const (
	GameOverFreqStart = 440.0
	GameOverFreqEnd   = 110.0
	GameOverDuration  = 600 * time.Millisecond
)

// Phase Arpeggio (major triad)
const (
	PhaseNoteDuration = 90 * time.Millisecond
	PhaseRootFreq     = 523.25
)

// EffectAttack and EffectRelease shape every synthesized effect to avoid clicks
const (
	EffectAttack  = 4 * time.Millisecond
	EffectRelease = 20 * time.Millisecond
)
