package systems

import (
	"math/rand"
	"testing"
)

func testSnowParams() SnowParams {
	return SnowParams{
		Count:            200,
		AreaRadius:       6,
		SpawnHeight:      8,
		SpawnHeightSpan:  4,
		GroundY:          -5,
		GroundJitter:     0.3,
		FallSpeedMin:     0.01,
		FallSpeedMax:     0.04,
		WobbleAmp:        0.01,
		WobbleFreq:       1.5,
		AccumulateRadius: 7,
		RecycleChance:    0.001,
		ScatterSpeed:     6,
		TurbulenceAmp:    0.5,
		TurbulenceScale:  0.25,
	}
}

func TestSnowCountConserved(t *testing.T) {
	rng := rand.New(rand.NewSource(10))
	s := NewSnowSystem(testSnowParams(), rng)
	dt := float32(1.0 / 60.0)

	elapsed := float32(0)
	step := func(frames int, mode Mode) {
		for i := 0; i < frames; i++ {
			elapsed += dt
			s.Update(dt, elapsed, mode)
		}
	}

	step(2000, ModeTree)
	step(200, ModeExploded)
	s.ResetFalling()
	step(2000, ModeTree)

	if s.Count() != 200 || len(s.Particles()) != 200 {
		t.Errorf("particle count must be conserved, got %d", len(s.Particles()))
	}
}

func TestSnowAccumulatesInsideFootprint(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	p := testSnowParams()
	p.AccumulateRadius = 100 // everything lands
	s := NewSnowSystem(p, rng)
	dt := float32(1.0 / 60.0)

	for i := 0; i < 3000; i++ {
		s.Update(dt, float32(i)*dt, ModeTree)
	}

	landed := 0
	for _, part := range s.Particles() {
		if part.State != SnowLanded {
			continue
		}
		landed++
		if part.Pos.Y != part.Ground {
			t.Errorf("landed particle at y=%f, expected clamped to local ground %f", part.Pos.Y, part.Ground)
		}
		if part.Ground < p.GroundY || part.Ground > p.GroundY+p.GroundJitter {
			t.Errorf("local ground %f outside [%f, %f]", part.Ground, p.GroundY, p.GroundY+p.GroundJitter)
		}
	}
	if landed == 0 {
		t.Error("expected accumulated particles after 3000 frames with an unbounded footprint")
	}
}

func TestSnowRecyclesOutsideFootprint(t *testing.T) {
	rng := rand.New(rand.NewSource(12))
	p := testSnowParams()
	p.AccumulateRadius = 0 // nothing may land
	p.WobbleAmp = 0
	s := NewSnowSystem(p, rng)
	dt := float32(1.0 / 60.0)

	for i := 0; i < 5000; i++ {
		s.Update(dt, float32(i)*dt, ModeTree)
	}

	if n := s.LandedCount(); n != 0 {
		t.Errorf("no particle should land with a zero footprint, got %d landed", n)
	}
	for i, part := range s.Particles() {
		if part.Pos.Y < p.GroundY-p.FallSpeedMax*2 {
			t.Errorf("particle %d fell through the ground to y=%f without recycling", i, part.Pos.Y)
		}
	}
}

func TestSnowExplodedForcesFalling(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	p := testSnowParams()
	p.AccumulateRadius = 100
	s := NewSnowSystem(p, rng)
	dt := float32(1.0 / 60.0)

	for i := 0; i < 3000; i++ {
		s.Update(dt, float32(i)*dt, ModeTree)
	}
	if s.LandedCount() == 0 {
		t.Fatal("setup: expected landed particles before the explosion")
	}

	s.Update(dt, 50, ModeExploded)
	if n := s.LandedCount(); n != 0 {
		t.Errorf("exploded mode must force every particle to falling, %d still landed", n)
	}
}

func TestSnowResetFallingClearsAccumulation(t *testing.T) {
	rng := rand.New(rand.NewSource(14))
	p := testSnowParams()
	p.AccumulateRadius = 100
	s := NewSnowSystem(p, rng)
	dt := float32(1.0 / 60.0)

	for i := 0; i < 3000; i++ {
		s.Update(dt, float32(i)*dt, ModeTree)
	}

	s.ResetFalling()
	for i, part := range s.Particles() {
		if part.State != SnowFalling {
			t.Fatalf("particle %d not falling after reset", i)
		}
		if part.Pos.Y < p.SpawnHeight {
			t.Errorf("particle %d respawned at y=%f, below spawn height %f", i, part.Pos.Y, p.SpawnHeight)
		}
	}
}

func TestSnowFallDuration(t *testing.T) {
	// A particle at y=10 with fall speed 0.02 per tick reaches the ground at
	// y=-5 after about (10 - (-5)) / 0.02 = 750 ticks at the 60 Hz baseline.
	rng := rand.New(rand.NewSource(15))
	p := testSnowParams()
	p.Count = 1
	p.AreaRadius = 0
	p.SpawnHeight = 10
	p.SpawnHeightSpan = 0
	p.GroundJitter = 0
	p.FallSpeedMin = 0.02
	p.FallSpeedMax = 0.02
	p.WobbleAmp = 0
	p.AccumulateRadius = 100
	s := NewSnowSystem(p, rng)

	dt := float32(1.0 / 60.0)
	ticks := 0
	for s.Particles()[0].State == SnowFalling {
		ticks++
		s.Update(dt, float32(ticks)*dt, ModeTree)
		if ticks > 2000 {
			t.Fatal("particle never landed")
		}
	}
	if ticks < 740 || ticks > 760 {
		t.Errorf("expected landing after ~750 ticks, got %d", ticks)
	}
}

func TestSnowScatterPushesOutward(t *testing.T) {
	rng := rand.New(rand.NewSource(16))
	p := testSnowParams()
	p.TurbulenceAmp = 0
	s := NewSnowSystem(p, rng)
	dt := float32(1.0 / 60.0)

	before := make([]float32, s.Count())
	for i, part := range s.Particles() {
		before[i] = part.Pos.Length()
	}

	for i := 0; i < 60; i++ {
		s.Update(dt, float32(i)*dt, ModeExploded)
	}

	for i, part := range s.Particles() {
		if part.Pos.Length() <= before[i] {
			t.Errorf("particle %d did not move outward: %f -> %f", i, before[i], part.Pos.Length())
		}
	}
}
