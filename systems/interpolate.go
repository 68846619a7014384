package systems

import "math"

// Damp moves current toward target with exponential convergence at rate
// lambda (1/s). The min(1, lambda*dt) clamp keeps large frames from
// overshooting; at any frame rate the same wall-clock transition time is
// observed.
func Damp(current, target, lambda, dt float32) float32 {
	k := lambda * dt
	if k > 1 {
		k = 1
	}
	return current + (target-current)*k
}

// DampVec applies Damp per component.
func DampVec(current, target Vec3, lambda, dt float32) Vec3 {
	return Vec3{
		X: Damp(current.X, target.X, lambda, dt),
		Y: Damp(current.Y, target.Y, lambda, dt),
		Z: Damp(current.Z, target.Z, lambda, dt),
	}
}

// Population holds the current transforms for a fixed set of instances and
// chases whichever target buffer is active. Buffers are sized once at
// construction; no allocation happens during stepping.
type Population struct {
	Pos    []Vec3  // current positions, updated every Step
	Colors []Color // base colors, fixed at creation

	target []Vec3 // active target buffer, owned by the caller
	lambda float32
}

// NewPopulation creates a population of len(start) instances. The current
// positions begin as a copy of start so the caller may reuse the slice.
func NewPopulation(start []Vec3, colors []Color, lambda float32) *Population {
	pos := make([]Vec3, len(start))
	copy(pos, start)
	return &Population{
		Pos:    pos,
		Colors: colors,
		target: start,
		lambda: lambda,
	}
}

// Count returns the fixed number of instances.
func (p *Population) Count() int {
	return len(p.Pos)
}

// Retarget switches the active target buffer. The buffer must hold exactly
// one position per instance; a mismatch is a programming error.
func (p *Population) Retarget(targets []Vec3) {
	if len(targets) != len(p.Pos) {
		panic("systems: target buffer length does not match population")
	}
	p.target = targets
}

// Step advances every instance toward its active target.
func (p *Population) Step(dt float32) {
	k := p.lambda * dt
	if k > 1 {
		k = 1
	}
	for i := range p.Pos {
		t := p.target[i]
		c := &p.Pos[i]
		c.X += (t.X - c.X) * k
		c.Y += (t.Y - c.Y) * k
		c.Z += (t.Z - c.Z) * k
	}
}

// InstanceRotation returns the euler rotation of an instance at the given
// elapsed time. Each instance spins at a constant angular velocity with a
// phase offset derived from its index; the value is a pure function of time,
// never integrated.
func InstanceRotation(index int, elapsed, speed float32) Vec3 {
	phase := float32(index) * float32(GoldenAngle)
	return Vec3{
		X: elapsed*speed*0.35 + phase,
		Y: elapsed*speed + phase*1.7,
		Z: 0,
	}
}

// InstanceScale returns the pulsing scale of an instance at the given
// elapsed time: a sine term around the base scale, desynchronized per index.
func InstanceScale(index int, elapsed, base, pulse float32) float32 {
	phase := float32(index) * 0.73
	return base + pulse*float32(math.Sin(float64(elapsed*2.1+phase)))
}
