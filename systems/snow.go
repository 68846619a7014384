package systems

import (
	"math"
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// SnowState is the lifecycle state of a single snow particle.
type SnowState uint8

const (
	SnowFalling SnowState = iota
	SnowLanded
)

// SnowParticle is one record in the fixed particle buffer. Particles are
// recycled in place; the buffer never grows or shrinks after construction.
type SnowParticle struct {
	Pos       Vec3
	FallSpeed float32 // units per tick at the 60 Hz baseline
	Phase     float32 // fixed wobble phase, re-rolled on recycle
	Ground    float32 // randomized local ground, just above the plane
	State     SnowState
}

// SnowParams tunes the snowfall simulation.
type SnowParams struct {
	Count            int
	AreaRadius       float32 // horizontal half-extent of the spawn volume
	SpawnHeight      float32 // lowest respawn altitude
	SpawnHeightSpan  float32 // random extra altitude above SpawnHeight
	GroundY          float32 // the fixed ground plane
	GroundJitter     float32 // local ground sits in [GroundY, GroundY+jitter]
	FallSpeedMin     float32 // per-tick fall speed range at 60 Hz
	FallSpeedMax     float32
	WobbleAmp        float32 // lateral sinusoidal drift per tick
	WobbleFreq       float32
	AccumulateRadius float32 // footprint within which particles may land
	RecycleChance    float32 // per-tick chance a landed particle lifts off
	ScatterSpeed     float32 // radial speed in exploded mode (units/s)
	TurbulenceAmp    float32 // noise-driven jostle in exploded mode
	TurbulenceScale  float32 // spatial frequency of the turbulence field
}

// SnowSystem simulates falling snow with ground accumulation inside a
// bounded footprint, probabilistic recycling, and an explosive scatter in
// the alternate scene mode. All state lives in one flat buffer of Count
// records allocated at construction.
type SnowSystem struct {
	params    SnowParams
	particles []SnowParticle
	noise     opensimplex.Noise
	rng       *rand.Rand
}

// NewSnowSystem allocates the particle buffer and spawns every particle at a
// randomized altitude.
func NewSnowSystem(params SnowParams, rng *rand.Rand) *SnowSystem {
	s := &SnowSystem{
		params:    params,
		particles: make([]SnowParticle, params.Count),
		noise:     opensimplex.New(rng.Int63()),
		rng:       rng,
	}
	s.ResetFalling()
	return s
}

// Particles exposes the live buffer for rendering. Callers must not resize it.
func (s *SnowSystem) Particles() []SnowParticle {
	return s.particles
}

// Count returns the fixed particle count.
func (s *SnowSystem) Count() int {
	return len(s.particles)
}

// LandedCount returns how many particles are currently accumulated.
func (s *SnowSystem) LandedCount() int {
	n := 0
	for i := range s.particles {
		if s.particles[i].State == SnowLanded {
			n++
		}
	}
	return n
}

// Update advances every particle by one frame. dt is the frame time in
// seconds; elapsed is the global scene clock driving the wobble.
func (s *SnowSystem) Update(dt, elapsed float32, mode Mode) {
	if mode == ModeExploded {
		s.scatter(dt, elapsed)
		return
	}

	// Per-tick quantities are tuned against a 60 Hz baseline.
	dtScale := dt * 60

	for i := range s.particles {
		p := &s.particles[i]

		switch p.State {
		case SnowFalling:
			p.Pos.Y -= p.FallSpeed * dtScale
			p.Pos.X += sinf(elapsed*s.params.WobbleFreq+p.Phase) * s.params.WobbleAmp * dtScale
			p.Pos.Z += cosf(elapsed*s.params.WobbleFreq*0.8+p.Phase) * s.params.WobbleAmp * 0.6 * dtScale

			if p.Pos.Y <= p.Ground {
				if p.Pos.HorizontalDist() <= s.params.AccumulateRadius {
					// Inside the footprint: settle on the local ground.
					p.Pos.Y = p.Ground
					p.State = SnowLanded
				} else {
					// Outside: recycle immediately so snowfall never thins out.
					s.respawn(p)
				}
			}

		case SnowLanded:
			// A small trickle back into the sky prevents falling-particle
			// starvation while keeping the snow line stable frame to frame.
			if s.rng.Float32() < s.params.RecycleChance*dtScale {
				s.respawn(p)
			}
		}
	}
}

// scatter pushes every particle radially outward with noise turbulence.
// State is forced back to falling so a return to tree mode resumes normal
// fall-and-land behavior.
func (s *SnowSystem) scatter(dt, elapsed float32) {
	amp := s.params.TurbulenceAmp * dt
	scale := float64(s.params.TurbulenceScale)
	t := float64(elapsed)

	for i := range s.particles {
		p := &s.particles[i]
		dir := p.Pos.Normalized()
		p.Pos = p.Pos.Add(dir.Scale(s.params.ScatterSpeed * dt))

		x, y, z := float64(p.Pos.X)*scale, float64(p.Pos.Y)*scale, float64(p.Pos.Z)*scale
		p.Pos.X += float32(s.noise.Eval3(x, y, t)) * amp
		p.Pos.Y += float32(s.noise.Eval3(y, z, t+31.7)) * amp
		p.Pos.Z += float32(s.noise.Eval3(z, x, t+67.3)) * amp

		p.State = SnowFalling
	}
}

// ResetFalling respawns every particle at a randomized high altitude.
// Called on the exploded-to-tree transition: accumulated snow is cleared
// rather than persisted.
func (s *SnowSystem) ResetFalling() {
	for i := range s.particles {
		s.respawn(&s.particles[i])
	}
}

// respawn recycles a particle in place: fresh horizontal position, altitude,
// fall speed, phase, and local ground. Identity (its slot) is preserved.
func (s *SnowSystem) respawn(p *SnowParticle) {
	p.Pos = Vec3{
		X: jitter(s.params.AreaRadius, s.rng),
		Y: s.params.SpawnHeight + s.rng.Float32()*s.params.SpawnHeightSpan,
		Z: jitter(s.params.AreaRadius, s.rng),
	}
	p.FallSpeed = s.params.FallSpeedMin + s.rng.Float32()*(s.params.FallSpeedMax-s.params.FallSpeedMin)
	p.Phase = s.rng.Float32() * 2 * math.Pi
	p.Ground = s.params.GroundY + s.rng.Float32()*s.params.GroundJitter
	p.State = SnowFalling
}
