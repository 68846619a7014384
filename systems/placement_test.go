package systems

import (
	"math"
	"math/rand"
	"testing"
)

func testTreeParams() TreeParams {
	return TreeParams{Height: 10, BaseRadius: 4, TipRadius: 0.2, Jitter: 0.3}
}

func TestTreeLayoutCount(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for _, n := range []int{0, 1, 7, 500} {
		out := TreeLayout(n, testTreeParams(), rng)
		if len(out) != n {
			t.Errorf("n=%d: expected %d positions, got %d", n, n, len(out))
		}
	}
}

func TestTreeLayoutJitterBounded(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	p := testTreeParams()
	n := 200
	out := TreeLayout(n, p, rng)

	for i, pos := range out {
		frac := float32(i) / float32(n)
		y := frac*p.Height - p.Height/2
		radius := p.BaseRadius + (p.TipRadius-p.BaseRadius)*frac
		angle := float32(GoldenAngle) * float32(i)
		ideal := Vec3{cosf(angle) * radius, y, sinf(angle) * radius}

		if absf(pos.X-ideal.X) > p.Jitter || absf(pos.Y-ideal.Y) > p.Jitter || absf(pos.Z-ideal.Z) > p.Jitter {
			t.Errorf("instance %d: jitter exceeds %f: got %v, ideal %v", i, p.Jitter, pos, ideal)
		}
	}
}

func TestTreeLayoutRadiusTapers(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	p := testTreeParams()
	p.Jitter = 0
	out := TreeLayout(300, p, rng)

	prev := out[0].HorizontalDist()
	for i := 1; i < len(out); i++ {
		r := out[i].HorizontalDist()
		if r > prev+1e-4 {
			t.Fatalf("instance %d: radius %f exceeds previous %f; cone should taper", i, r, prev)
		}
		prev = r
	}
}

func TestShellLayoutRadiusRange(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	p := ShellParams{BaseRadius: 8, Extent: 4}
	out := ShellLayout(400, p, rng)

	if len(out) != 400 {
		t.Fatalf("expected 400 positions, got %d", len(out))
	}
	for i, pos := range out {
		r := pos.Length()
		if r < p.BaseRadius-1e-3 || r > p.BaseRadius+p.Extent+1e-3 {
			t.Errorf("instance %d: radius %f outside shell [%f, %f]", i, r, p.BaseRadius, p.BaseRadius+p.Extent)
		}
	}
}

func TestShellLayoutEmpty(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	if out := ShellLayout(0, ShellParams{BaseRadius: 8, Extent: 4}, rng); len(out) != 0 {
		t.Errorf("expected empty layout for n=0, got %d", len(out))
	}
}

func TestShellLayoutSpread(t *testing.T) {
	// The golden spiral should cover both hemispheres roughly evenly.
	rng := rand.New(rand.NewSource(6))
	out := ShellLayout(1000, ShellParams{BaseRadius: 10, Extent: 0}, rng)

	upper := 0
	for _, pos := range out {
		if pos.Y > 0 {
			upper++
		}
	}
	if upper < 400 || upper > 600 {
		t.Errorf("expected roughly half the points in the upper hemisphere, got %d of 1000", upper)
	}
}

func TestAssignColorsFromPalette(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	palette := []Color{{200, 40, 40}}
	out := AssignColors(500, palette, rng)

	if len(out) != 500 {
		t.Fatalf("expected 500 colors, got %d", len(out))
	}
	perturbed := 0
	for i, c := range out {
		if c.R < 200 {
			t.Errorf("color %d: red channel %d below palette value", i, c.R)
		}
		if c.R > 200 {
			perturbed++
		}
		// Zero channels stay zero under a lightness scale.
		if c.G != 0 || c.B != 0 {
			t.Errorf("color %d: expected zero green/blue, got %v", i, c)
		}
	}
	// ~20% perturbation chance over 500 draws.
	if perturbed < 50 || perturbed > 180 {
		t.Errorf("expected roughly 100 perturbed colors, got %d", perturbed)
	}
}

func TestAssignColorsEmpty(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	if out := AssignColors(0, []Color{{1, 2, 3}}, rng); len(out) != 0 {
		t.Errorf("expected no colors for n=0, got %d", len(out))
	}
}

func TestVec3NormalizedDegenerate(t *testing.T) {
	v := Vec3{}.Normalized()
	l := v.Length()
	if math.Abs(float64(l)-1) > 1e-4 {
		t.Errorf("normalizing the zero vector should still yield unit length, got %f", l)
	}
}
