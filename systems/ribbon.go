package systems

import "math"

// RibbonSample is one centerline sample of a ribbon strip: a position plus
// the constant perpendicular half-width used to extrude the surface.
// Samples are ephemeral; the full sequence is recomputed every frame.
type RibbonSample struct {
	Pos       Vec3
	HalfWidth float32
}

// RibbonParams tunes both ribbon curve families.
type RibbonParams struct {
	Segments int // sample count per curve

	// Loop family: a closed petal anchored at the knot.
	LoopLength  float32 // outward reach of the petal
	LoopWidth   float32 // lateral extent
	PuffDepth   float32 // perpendicular bulge at the midpoint
	BreathAmp   float32 // few-percent breathing oscillation
	BreathSpeed float32

	// Tail family: an open draped strand.
	TailLength   float32
	TailDrop     float32 // quadratic vertical falloff over the run
	FlutterAmp   float32
	FlutterSpeed float32

	HalfWidth float32
}

// LoopCurve writes a closed petal curve into out and returns it. The petal
// extends along +Y from the knot at the origin, loops laterally in X, and
// puffs in Z following sin(t*pi) so it bulges at its midpoint and pinches to
// the knot at both ends. A slow breathing oscillation, decorrelated per
// instance by offset, modulates the overall scale.
func LoopCurve(out []RibbonSample, elapsed, offset float32, p RibbonParams) []RibbonSample {
	out = ensureSamples(out, p.Segments)
	breath := 1 + p.BreathAmp*sinf(elapsed*p.BreathSpeed+offset)

	for i := 0; i < p.Segments; i++ {
		t := float32(i) / float32(p.Segments-1)
		pinch := sinf(t * math.Pi) // zero at both ends, one at the midpoint

		out[i] = RibbonSample{
			Pos: Vec3{
				X: sinf(t*2*math.Pi) * p.LoopWidth * pinch * breath,
				Y: pinch * p.LoopLength * breath,
				Z: pinch * p.PuffDepth * breath,
			},
			HalfWidth: p.HalfWidth,
		}
	}
	return out
}

// TailCurve writes an open draped curve into out and returns it. The strand
// runs outward linearly in X from the anchor and drops quadratically in Y,
// approximating a gravity-draped ribbon, with a time-driven flutter whose
// amplitude grows toward the free end.
func TailCurve(out []RibbonSample, elapsed, offset float32, p RibbonParams) []RibbonSample {
	out = ensureSamples(out, p.Segments)

	for i := 0; i < p.Segments; i++ {
		t := float32(i) / float32(p.Segments-1)
		flutter := sinf(elapsed*p.FlutterSpeed+t*4*math.Pi+offset) * p.FlutterAmp * t

		out[i] = RibbonSample{
			Pos: Vec3{
				X: t * p.TailLength,
				Y: -t * t * p.TailDrop,
				Z: flutter,
			},
			HalfWidth: p.HalfWidth,
		}
	}
	return out
}

// ensureSamples reuses the caller's buffer when it is already the right
// size so per-frame recomputation stays allocation-free.
func ensureSamples(out []RibbonSample, n int) []RibbonSample {
	if cap(out) >= n {
		return out[:n]
	}
	return make([]RibbonSample, n)
}
