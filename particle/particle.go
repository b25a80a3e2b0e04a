package particle

import (
	"math"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/snakeflow/parameter"
)

// Particle is a render-only fruit burst fragment, positions in canvas pixels
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   float64 // 1 at spawn, culled at 0; doubles as alpha
	Size   float64 // radius
	Color  colorful.Color
	Emoji  string // drawn as a text cell instead of a disc when set
}

// Rand is the random source for burst jitter, satisfied by *rand.Rand from math/rand/v2
type Rand interface {
	Float64() float64
}

// System holds live particles with a fixed capacity
// When full, new particles overwrite existing ones in circular order
type System struct {
	Max    int
	P      []Particle
	ovrIdx int
}

// NewSystem creates an empty system, non-positive max uses parameter.ParticleMax
func NewSystem(max int) *System {
	if max <= 0 {
		max = parameter.ParticleMax
	}
	return &System{
		Max: max,
		P:   make([]Particle, 0, max),
	}
}

// Len returns the live particle count
func (s *System) Len() int {
	return len(s.P)
}

// Clear removes every particle
func (s *System) Clear() {
	s.P = s.P[:0]
	s.ovrIdx = 0
}

// Spawn emits one burst of parameter.ParticleBurst particles centred on (cx, cy)
// Angles are evenly spaced with jitter; a share of the particles carries emoji
func (s *System) Spawn(cx, cy float64, col colorful.Color, emoji string, rng Rand) {
	n := parameter.ParticleBurst
	for i := range n {
		angle := 2*math.Pi*float64(i)/float64(n) + (rng.Float64()-0.5)*parameter.ParticleAngleJitter
		speed := parameter.ParticleSpeedMin + rng.Float64()*parameter.ParticleSpeedRange
		p := Particle{
			X:     cx,
			Y:     cy,
			VX:    math.Cos(angle) * speed,
			VY:    math.Sin(angle) * speed,
			Life:  1,
			Size:  parameter.ParticleSizeMin + rng.Float64()*parameter.ParticleSizeRange,
			Color: col,
		}
		if emoji != "" && rng.Float64() < parameter.ParticleEmojiChance {
			p.Emoji = emoji
		}
		s.add(p)
	}
}

func (s *System) add(p Particle) {
	if len(s.P) < s.Max {
		s.P = append(s.P, p)
		return
	}
	s.P[s.ovrIdx] = p
	s.ovrIdx = (s.ovrIdx + 1) % s.Max
}

// Update integrates particles by dt baseline frames and culls expired ones
func (s *System) Update(dt float64) {
	if dt <= 0 {
		return
	}
	for i := 0; i < len(s.P); {
		p := &s.P[i]
		p.X += p.VX * dt
		p.Y += p.VY * dt
		p.VY += parameter.ParticleGravity * dt
		p.Life -= parameter.ParticleLifeDecay * dt
		if p.Life <= 0 {
			s.P[i] = s.P[len(s.P)-1]
			s.P = s.P[:len(s.P)-1]
			continue
		}
		i++
	}
	if s.ovrIdx >= len(s.P) {
		s.ovrIdx = 0
	}
}

// FrameDelta converts wall time between frames into baseline frames, capped
func FrameDelta(elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	return min(float64(elapsed)/float64(parameter.FrameBaseline), parameter.FrameMaxDelta)
}
