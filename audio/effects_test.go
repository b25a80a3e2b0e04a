package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

const testRate = beep.SampleRate(8000)

// drain streams s to exhaustion and returns every left channel sample
func drain(t *testing.T, s beep.Streamer) []float64 {
	t.Helper()
	var out []float64
	buf := make([][2]float64, 256)
	for i := 0; i < 10_000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			out = append(out, smp[0])
		}
		if !ok {
			return out
		}
	}
	t.Fatal("streamer never drained")
	return nil
}

func peak(samples []float64) float64 {
	p := 0.0
	for _, v := range samples {
		p = math.Max(p, math.Abs(v))
	}
	return p
}

func TestOscillatorLength(t *testing.T) {
	s := NewOscillator(440, 100*time.Millisecond, WaveSine, testRate)
	if got, want := len(drain(t, s)), testRate.N(100*time.Millisecond); got != want {
		t.Errorf("samples = %d, want %d", got, want)
	}
}

func TestWaveShapesBounded(t *testing.T) {
	for _, w := range []WaveType{WaveSine, WaveSquare, WaveTriangle} {
		samples := drain(t, NewOscillator(300, 50*time.Millisecond, w, testRate))
		if p := peak(samples); p > 1+1e-9 || p < 0.5 {
			t.Errorf("wave %d peak = %v, want within (0.5, 1]", w, p)
		}
	}
}

func TestGlideEndpoints(t *testing.T) {
	o := NewGlide(100, 400, 10*time.Millisecond, WaveSine, testRate).(*oscillator)
	if f := o.freqAt(); f != 100 {
		t.Errorf("start freq = %v, want 100", f)
	}
	o.position = o.duration - 1
	if f := o.freqAt(); math.Abs(f-400) > 1e-9 {
		t.Errorf("end freq = %v, want 400", f)
	}
	o.position = (o.duration - 1) / 2
	if f := o.freqAt(); f <= 100 || f >= 400 {
		t.Errorf("mid freq = %v, want between endpoints", f)
	}
}

func TestEnvelopeRamps(t *testing.T) {
	src := NewOscillator(0, time.Second, WaveSquare, testRate) // constant +1
	env := NewEnvelope(src, 100*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, testRate)
	samples := drain(t, env)

	if len(samples) != testRate.N(100*time.Millisecond) {
		t.Fatalf("samples = %d, want cut at envelope duration", len(samples))
	}
	if samples[0] != 0 {
		t.Errorf("first sample = %v, want 0 (attack start)", samples[0])
	}
	mid := samples[len(samples)/2]
	if mid != 1 {
		t.Errorf("sustain sample = %v, want 1", mid)
	}
	if last := samples[len(samples)-1]; last >= 0.2 {
		t.Errorf("last sample = %v, want near 0 (release end)", last)
	}
}

func TestSoundEffects(t *testing.T) {
	for _, st := range []SoundType{SoundEat, SoundGameOver, SoundPhase} {
		t.Run(st.String(), func(t *testing.T) {
			samples := drain(t, GetSoundEffect(st, testRate, 1))
			want := testRate.N(EffectDuration(st))
			if diff := len(samples) - want; diff < -4 || diff > 4 {
				t.Errorf("samples = %d, want about %d", len(samples), want)
			}
			if p := peak(samples); p == 0 || p > 1 {
				t.Errorf("peak = %v, want in (0,1]", p)
			}

			silent := drain(t, GetSoundEffect(st, testRate, 0))
			if peak(silent) != 0 {
				t.Error("zero volume produced sound")
			}
		})
	}
	if GetSoundEffect(soundTypeCount, testRate, 1) != nil {
		t.Error("unknown sound type produced a streamer")
	}
}
