package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/spruce/systems"
)

var (
	flakeColor  = rl.NewColor(240, 245, 255, 235)
	landedColor = rl.NewColor(225, 232, 245, 255)
)

// DrawSnow renders the flakes as small cubes. Landed flakes are drawn
// slightly larger and flatter so the accumulation reads as a blanket.
func DrawSnow(particles []systems.SnowParticle) {
	fallingSize := rl.NewVector3(0.08, 0.08, 0.08)
	landedSize := rl.NewVector3(0.13, 0.05, 0.13)
	for i := range particles {
		p := &particles[i]
		pos := rl.NewVector3(p.Pos.X, p.Pos.Y, p.Pos.Z)
		if p.State == systems.SnowLanded {
			rl.DrawCubeV(pos, landedSize, landedColor)
		} else {
			rl.DrawCubeV(pos, fallingSize, flakeColor)
		}
	}
}
