package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	skyTop    = rl.NewColor(8, 12, 34, 255)
	skyBottom = rl.NewColor(26, 36, 74, 255)
	snowField = rl.NewColor(222, 230, 244, 255)
	trunk     = rl.NewColor(92, 62, 40, 255)
)

// DrawSky paints the night gradient behind the 3D pass. Call before
// BeginMode3D.
func DrawSky(screenW, screenH int32) {
	rl.DrawRectangleGradientV(0, 0, screenW, screenH, skyTop, skyBottom)
}

// DrawGround renders the snowfield disc the tree stands on, plus a stub of
// trunk so the ornament cone does not float.
func DrawGround(groundY, radius float32) {
	rl.DrawCylinder(rl.NewVector3(0, groundY-0.25, 0), radius, radius*1.05, 0.25, 48, snowField)
	rl.DrawCylinder(rl.NewVector3(0, groundY, 0), 0.22, 0.3, 1.1, 10, trunk)
}
