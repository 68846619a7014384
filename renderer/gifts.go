package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/spruce/components"
	"github.com/pthm-cable/spruce/systems"
)

// petalTilt tips each bow loop from vertical toward horizontal so the
// loops fan out around the knot instead of stacking.
const petalTilt = float32(1.1)

// GiftRenderer draws wrapped boxes with animated ribbon bows. Curve sample
// buffers are reused across gifts and frames.
type GiftRenderer struct {
	loopBuf []systems.RibbonSample
	tailBuf []systems.RibbonSample
	params  systems.RibbonParams
}

func NewGiftRenderer(params systems.RibbonParams) *GiftRenderer {
	return &GiftRenderer{params: params}
}

// Draw renders one gift: the box, the flat ribbon bands wrapped around it,
// and the bow on top.
func (r *GiftRenderer) Draw(tr *components.Transform, wrap *components.Wrap, bow *components.Bow, elapsed float32) {
	s := tr.Scale
	w, h, d := wrap.W*s, wrap.H*s, wrap.D*s

	center := rl.NewVector3(tr.X, tr.Y+h/2, tr.Z)
	boxColor := rl.NewColor(wrap.R, wrap.G, wrap.B, 255)
	ribbonColor := rl.NewColor(wrap.RibbonR, wrap.RibbonG, wrap.RibbonB, 255)

	rl.DrawCubeV(center, rl.NewVector3(w, h, d), boxColor)
	rl.DrawCubeWiresV(center, rl.NewVector3(w, h, d), rl.Fade(rl.Black, 0.25))

	// Two perpendicular bands, slightly proud of the box faces.
	band := w * 0.16
	rl.DrawCubeV(center, rl.NewVector3(band, h*1.02, d*1.02), ribbonColor)
	rl.DrawCubeV(center, rl.NewVector3(w*1.02, h*1.02, band), ribbonColor)

	r.drawBow(tr, bow, h, ribbonColor, elapsed)
}

func (r *GiftRenderer) drawBow(tr *components.Transform, bow *components.Bow, boxH float32, color rl.Color, elapsed float32) {
	knot := systems.Vec3{X: tr.X, Y: tr.Y + boxH + bow.KnotHeight*tr.Scale, Z: tr.Z}
	rl.DrawSphere(rl.NewVector3(knot.X, knot.Y, knot.Z), r.params.HalfWidth*1.6, color)

	step := 2 * math.Pi / float64(bow.LoopCount)
	for li := 0; li < bow.LoopCount; li++ {
		yaw := tr.Heading + float32(float64(li)*step)
		r.loopBuf = systems.LoopCurve(r.loopBuf, elapsed, bow.PhaseOffset+float32(li)*0.9, r.params)
		drawStrip(r.loopBuf, knot, yaw, petalTilt, color)
	}
	for ti := 0; ti < 2; ti++ {
		yaw := tr.Heading + float32(ti)*math.Pi + math.Pi/2
		r.tailBuf = systems.TailCurve(r.tailBuf, elapsed, bow.PhaseOffset+float32(ti)*2.4, r.params)
		drawStrip(r.tailBuf, knot, yaw, 0, color)
	}
}

// drawStrip renders a curve as a triangle strip anchored at origin. Each
// triangle is emitted with both windings so the ribbon is visible from
// either side without touching the cull state.
func drawStrip(samples []systems.RibbonSample, origin systems.Vec3, yaw, tilt float32, color rl.Color) {
	if len(samples) < 2 {
		return
	}
	var prevL, prevR rl.Vector3
	for i, sm := range samples {
		left := placeSample(systems.Vec3{X: sm.Pos.X, Y: sm.Pos.Y, Z: sm.Pos.Z - sm.HalfWidth}, origin, yaw, tilt)
		right := placeSample(systems.Vec3{X: sm.Pos.X, Y: sm.Pos.Y, Z: sm.Pos.Z + sm.HalfWidth}, origin, yaw, tilt)
		if i > 0 {
			rl.DrawTriangle3D(prevL, prevR, left, color)
			rl.DrawTriangle3D(left, prevR, prevL, color)
			rl.DrawTriangle3D(left, prevR, right, color)
			rl.DrawTriangle3D(right, prevR, left, color)
		}
		prevL, prevR = left, right
	}
}

// placeSample transforms a curve-local point into world space: tilt around
// the local X axis, then yaw around Y, then translate to the knot.
func placeSample(p systems.Vec3, origin systems.Vec3, yaw, tilt float32) rl.Vector3 {
	st, ct := float32(math.Sin(float64(tilt))), float32(math.Cos(float64(tilt)))
	y := p.Y*ct - p.Z*st
	z := p.Y*st + p.Z*ct

	sy, cy := float32(math.Sin(float64(yaw))), float32(math.Cos(float64(yaw)))
	x := p.X*cy + z*sy
	z = -p.X*sy + z*cy

	return rl.NewVector3(origin.X+x, origin.Y+y, origin.Z+z)
}
