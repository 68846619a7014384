package scene

import (
	"math"

	"github.com/pthm-cable/spruce/components"
)

// giftWraps pairs a paper color with a contrasting ribbon. Picked
// round-robin so neighboring gifts never match.
var giftWraps = []components.Wrap{
	{R: 178, G: 34, B: 52, RibbonR: 255, RibbonG: 215, RibbonB: 90},
	{R: 34, G: 108, B: 64, RibbonR: 240, RibbonG: 240, RibbonB: 240},
	{R: 52, G: 70, B: 160, RibbonR: 230, RibbonG: 180, RibbonB: 60},
	{R: 210, G: 180, B: 140, RibbonR: 170, RibbonG: 40, RibbonB: 50},
	{R: 240, G: 240, B: 245, RibbonR: 60, RibbonG: 120, RibbonB: 70},
}

// spawnGifts places the gift boxes on a ring around the tree, facing
// outward, with per-gift bow phase so the bows do not breathe in unison.
func (s *Scene) spawnGifts() {
	gc := s.cfg.Gifts
	groundY := float32(s.cfg.Snow.GroundY)
	step := 2 * math.Pi / float64(gc.Count)

	for i := 0; i < gc.Count; i++ {
		angle := float64(i)*step + s.rng.Float64()*0.3
		ring := float32(gc.RingRadius) * (0.92 + s.rng.Float32()*0.16)
		size := float32(gc.MinSize) + s.rng.Float32()*float32(gc.MaxSize-gc.MinSize)

		wrap := giftWraps[i%len(giftWraps)]
		wrap.W = 1.0
		wrap.H = 0.7 + s.rng.Float32()*0.5
		wrap.D = 0.8 + s.rng.Float32()*0.4

		tr := components.Transform{
			X:       ring * float32(math.Cos(angle)),
			Y:       groundY,
			Z:       ring * float32(math.Sin(angle)),
			Heading: float32(angle) + math.Pi,
			Scale:   size,
		}
		bow := components.Bow{
			PhaseOffset: s.rng.Float32() * 2 * math.Pi,
			KnotHeight:  0.06,
			LoopCount:   4,
			RestY:       groundY,
		}
		s.giftMapper.NewEntity(&tr, &wrap, &bow)
		s.giftCount++
	}
}

// animateGifts applies the idle bob and a slow heading drift.
func (s *Scene) animateGifts(dt float32) {
	gc := s.cfg.Gifts
	amp := float32(gc.BobAmp)
	speed := float32(gc.BobSpeed)

	query := s.giftFilter.Query()
	for query.Next() {
		tr, _, bow := query.Get()
		tr.Y = bow.RestY + amp*float32(math.Sin(float64(s.elapsed*speed+bow.PhaseOffset)))
		tr.Heading += 0.15 * dt
	}
}
