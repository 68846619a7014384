// Package systems contains the per-frame simulation core for the scene:
// procedural placement, damped interpolation, snow, ribbons, and the
// interaction state controller.
package systems

import (
	"math"
	"math/rand"
)

// GoldenAngle is the golden-angle increment in radians. Stepping the azimuth
// by this amount per instance spreads points evenly along a spiral with no
// two instances colinear.
const GoldenAngle = 2.39996322972865332

// TreeParams describes the cone formation.
type TreeParams struct {
	Height     float32 // total cone height
	BaseRadius float32 // radius at the bottom of the cone
	TipRadius  float32 // radius at the top (near zero)
	Jitter     float32 // max uniform jitter per axis
}

// ShellParams describes the exploded spherical shell formation.
type ShellParams struct {
	BaseRadius float32 // inner radius of the shell
	Extent     float32 // random outward thickness added per instance
}

// TreeLayout places n instances on a jittered cone spiral: height advances
// linearly with index, radius tapers from base to tip, azimuth steps by the
// golden angle. The shape is deterministic; only the jitter draws from rng.
func TreeLayout(n int, p TreeParams, rng *rand.Rand) []Vec3 {
	out := make([]Vec3, n)
	if n == 0 {
		return out
	}
	for i := 0; i < n; i++ {
		frac := float32(i) / float32(n)
		y := frac*p.Height - p.Height/2
		radius := p.BaseRadius + (p.TipRadius-p.BaseRadius)*frac
		angle := float32(GoldenAngle) * float32(i)

		out[i] = Vec3{
			X: cosf(angle)*radius + jitter(p.Jitter, rng),
			Y: y + jitter(p.Jitter, rng),
			Z: sinf(angle)*radius + jitter(p.Jitter, rng),
		}
	}
	return out
}

// ShellLayout distributes n instances over a thick spherical shell using the
// golden spiral on a sphere, then pushes each point outward by a randomized
// radius so the shell has depth rather than a perfect surface.
func ShellLayout(n int, p ShellParams, rng *rand.Rand) []Vec3 {
	out := make([]Vec3, n)
	if n == 0 {
		return out
	}
	sqrtNPi := math.Sqrt(float64(n) * math.Pi)
	for i := 0; i < n; i++ {
		phi := math.Acos(-1 + 2*float64(i)/float64(n))
		theta := sqrtNPi * phi
		radius := p.BaseRadius + rng.Float32()*p.Extent

		sinPhi := float32(math.Sin(phi))
		out[i] = Vec3{
			X: sinPhi * float32(math.Cos(theta)) * radius,
			Y: float32(math.Cos(phi)) * radius,
			Z: sinPhi * float32(math.Sin(theta)) * radius,
		}
	}
	return out
}

// AssignColors draws one base color per instance from the palette, with a
// small chance of a lightness perturbation for variety. Colors are fixed at
// creation and never animated.
func AssignColors(n int, palette []Color, rng *rand.Rand) []Color {
	out := make([]Color, n)
	if n == 0 || len(palette) == 0 {
		return out
	}
	for i := 0; i < n; i++ {
		c := palette[rng.Intn(len(palette))]
		if rng.Float32() < 0.2 {
			f := 1.15 + rng.Float32()*0.25
			c = Color{lighten(c.R, f), lighten(c.G, f), lighten(c.B, f)}
		}
		out[i] = c
	}
	return out
}

// jitter returns a uniform value in [-max, max].
func jitter(max float32, rng *rand.Rand) float32 {
	return (rng.Float32()*2 - 1) * max
}

// lighten scales a channel, saturating at 255.
func lighten(c uint8, f float32) uint8 {
	v := float32(c) * f
	if v > 255 {
		return 255
	}
	return uint8(v)
}
