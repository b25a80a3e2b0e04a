package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/snakeflow/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
)

// oscillator generates a wave whose frequency glides exponentially from start to end
type oscillator struct {
	start, end float64
	phase      float64
	duration   int
	position   int
	wave       WaveType
	rate       beep.SampleRate
}

// NewOscillator creates a fixed pitch oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewGlide(freq, freq, duration, wave, rate)
}

// NewGlide creates an oscillator sweeping from start to end Hz over duration
func NewGlide(start, end float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		start:    start,
		end:      end,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case WaveTriangle:
			val = 4*math.Abs(o.phase-0.5) - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freqAt() / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

// freqAt interpolates geometrically so pitch moves evenly across octaves
func (o *oscillator) freqAt() float64 {
	if o.start == o.end || o.duration <= 1 || o.start <= 0 || o.end <= 0 {
		return o.start
	}
	t := float64(o.position) / float64(o.duration-1)
	return o.start * math.Pow(o.end/o.start, t)
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack and release ramps to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope wraps s with linear attack and release, cutting it at duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := min(rate.N(attack), total)
	rel := min(rate.N(release), total-att)
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.totalSamples {
		return 0, false
	}
	if remaining := e.totalSamples - e.position; len(samples) > remaining {
		samples = samples[:remaining]
	}
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.attackSamples > 0 && e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.releaseSamples > 0 && e.position >= releaseStart {
			vol = math.Min(vol, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s by a linear gain, zero gain is silent
// math.Log2(0) is -Inf, hence the Silent flag
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func shaped(s beep.Streamer, d time.Duration, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(s, d, parameter.EffectAttack, parameter.EffectRelease, rate)
}

// CreateEatSound is a short rising blip
func CreateEatSound(rate beep.SampleRate, vol float64) beep.Streamer {
	d := parameter.EatDuration
	osc := NewGlide(parameter.EatFreqStart, parameter.EatFreqEnd, d, WaveSquare, rate)
	return newVolume(shaped(osc, d, rate), vol*parameter.EatVolumeScale*0.5)
}

// CreateGameOverSound is a falling tone with a soft octave below
func CreateGameOverSound(rate beep.SampleRate, vol float64) beep.Streamer {
	d := parameter.GameOverDuration
	lead := NewGlide(parameter.GameOverFreqStart, parameter.GameOverFreqEnd, d, WaveTriangle, rate)
	sub := NewGlide(parameter.GameOverFreqStart/2, parameter.GameOverFreqEnd/2, d, WaveSine, rate)
	mixed := beep.Mix(
		newVolume(shaped(lead, d, rate), 0.7),
		newVolume(shaped(sub, d, rate), 0.3),
	)
	return newVolume(mixed, vol*parameter.GameOverVolumeScale)
}

// CreatePhaseSound is a major triad arpeggio
func CreatePhaseSound(rate beep.SampleRate, vol float64) beep.Streamer {
	d := parameter.PhaseNoteDuration
	root := parameter.PhaseRootFreq
	notes := []float64{root, root * math.Pow(2, 4.0/12), root * math.Pow(2, 7.0/12), root * 2}
	seq := make([]beep.Streamer, len(notes))
	for i, f := range notes {
		seq[i] = shaped(NewOscillator(f, d, WaveSine, rate), d, rate)
	}
	return newVolume(beep.Seq(seq...), vol*parameter.PhaseVolumeScale)
}

// GetSoundEffect builds the streamer for soundType at linear volume vol
func GetSoundEffect(soundType SoundType, rate beep.SampleRate, vol float64) beep.Streamer {
	switch soundType {
	case SoundEat:
		return CreateEatSound(rate, vol)
	case SoundGameOver:
		return CreateGameOverSound(rate, vol)
	case SoundPhase:
		return CreatePhaseSound(rate, vol)
	default:
		return nil
	}
}

// EffectDuration returns the playback length of soundType
func EffectDuration(soundType SoundType) time.Duration {
	switch soundType {
	case SoundEat:
		return parameter.EatDuration
	case SoundGameOver:
		return parameter.GameOverDuration
	case SoundPhase:
		return 4 * parameter.PhaseNoteDuration
	default:
		return 0
	}
}
