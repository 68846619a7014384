package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/spruce/gesture"
	"github.com/pthm-cable/spruce/ui"
)

// handleInput processes keyboard and mouse each frame. Clicks on the HUD
// panel are left to the HUD's own controls.
func (s *Scene) handleInput(dt float32) {
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) &&
		!(s.showHUD && rl.CheckCollisionPointRec(rl.GetMousePosition(), ui.PanelBounds())) {
		s.ToggleMode()
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		s.paused = !s.paused
	}
	if rl.IsKeyPressed(rl.KeyH) {
		s.showHUD = !s.showHUD
	}
	if rl.IsKeyPressed(rl.KeyR) {
		s.orbit.Reset()
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		s.orbit.Zoom(1 - wheel*0.1)
	}
	if rl.IsKeyDown(rl.KeyUp) {
		s.orbit.SetPitch(s.orbit.Pitch + 0.8*dt)
	}
	if rl.IsKeyDown(rl.KeyDown) {
		s.orbit.SetPitch(s.orbit.Pitch - 0.8*dt)
	}

	// Arrow keys act as a manual spin command through the same controller
	// path as the wrist gesture.
	manual := float32(0)
	if rl.IsKeyDown(rl.KeyRight) {
		manual = 1.5
	}
	if rl.IsKeyDown(rl.KeyLeft) {
		manual = -1.5
	}
	if manual != 0 {
		s.SetManualRotation(manual)
	} else if !s.cfg.Gesture.Enabled {
		s.SetManualRotation(0)
	}

	s.publishMouseGesture()
}

// publishMouseGesture lets the mouse stand in for a hand tracker: holding
// the right button publishes the cursor as a wrist position, and holding
// shift as well reads as an open hand. The signals flow through the same
// source, mapper, and hysteresis as a real tracker.
func (s *Scene) publishMouseGesture() {
	if !s.cfg.Gesture.Enabled || !rl.IsMouseButtonDown(rl.MouseButtonRight) {
		return
	}
	ratio := float32(1.0)
	if rl.IsKeyDown(rl.KeyLeftShift) {
		ratio = 1.6
	}
	w := float32(rl.GetScreenWidth())
	if w <= 0 {
		return
	}
	s.source.Publish(gesture.Signal{
		OpenRatio: ratio,
		WristX:    rl.GetMousePosition().X / w,
	})
}
