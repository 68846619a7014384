// Package renderer draws the scene with raylib. It only reads simulation
// state; all mutation happens in the systems and scene packages.
package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/spruce/systems"
)

// OrnamentRenderer draws the instanced ornament population from the
// per-frame transform snapshot.
type OrnamentRenderer struct {
	model rl.Model

	spinSpeed  float32
	scaleBase  float32
	scalePulse float32
}

// NewOrnamentRenderer creates the shared ornament mesh. Must be called after
// the raylib window exists.
func NewOrnamentRenderer(spinSpeed, scaleBase, scalePulse float32) *OrnamentRenderer {
	mesh := rl.GenMeshSphere(0.16, 8, 12)
	return &OrnamentRenderer{
		model:      rl.LoadModelFromMesh(mesh),
		spinSpeed:  spinSpeed,
		scaleBase:  scaleBase,
		scalePulse: scalePulse,
	}
}

// Draw renders every instance with its current position and its
// time-derived rotation and scale.
func (r *OrnamentRenderer) Draw(pop *systems.Population, elapsed float32) {
	for i := range pop.Pos {
		rot := systems.InstanceRotation(i, elapsed, r.spinSpeed)
		scale := systems.InstanceScale(i, elapsed, r.scaleBase, r.scalePulse)

		// Spin around a per-instance tilted axis.
		axis := rl.NewVector3(float32(math.Sin(float64(rot.X))), 1, float32(math.Cos(float64(rot.X))))
		angle := rot.Y * 180 / math.Pi

		c := pop.Colors[i]
		rl.DrawModelEx(r.model,
			rl.NewVector3(pop.Pos[i].X, pop.Pos[i].Y, pop.Pos[i].Z),
			axis, angle,
			rl.NewVector3(scale, scale, scale),
			rl.NewColor(c.R, c.G, c.B, 255),
		)
	}
}

// Unload releases the shared mesh.
func (r *OrnamentRenderer) Unload() {
	rl.UnloadModel(r.model)
}
