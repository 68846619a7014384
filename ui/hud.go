// Package ui draws the debug HUD overlay with raygui controls.
package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// State is the read-only snapshot the HUD renders.
type State struct {
	Mode   string
	Paused bool
	FPS    int32

	Ornaments   int
	SnowFalling int
	SnowLanded  int
	Gifts       int

	GestureEnabled bool
	HandOpen       bool
	RotationSpeed  float32
}

// Actions reports which HUD controls were clicked this frame.
type Actions struct {
	ToggleMode  bool
	ResetCamera bool
	TogglePause bool
}

// PanelBounds is the HUD footprint, used by input handling to keep scene
// clicks and HUD clicks apart.
func PanelBounds() rl.Rectangle {
	return rl.Rectangle{X: 10, Y: 10, Width: 225, Height: 232}
}

// Draw renders the HUD and returns any triggered actions.
func Draw(st State) Actions {
	panel := PanelBounds()
	rl.DrawRectangleRec(panel, rl.Fade(rl.Black, 0.55))
	rl.DrawRectangleLinesEx(panel, 1, rl.Fade(rl.White, 0.3))

	x := int32(panel.X) + 10
	y := int32(panel.Y) + 8
	line := func(text string) {
		rl.DrawText(text, x, y, 10, rl.RayWhite)
		y += 14
	}

	mode := st.Mode
	if st.Paused {
		mode += " (paused)"
	}
	line(fmt.Sprintf("mode: %s", mode))
	line(fmt.Sprintf("fps: %d", st.FPS))
	line(fmt.Sprintf("ornaments: %d", st.Ornaments))
	line(fmt.Sprintf("snow: %d falling / %d landed", st.SnowFalling, st.SnowLanded))
	line(fmt.Sprintf("gifts: %d", st.Gifts))
	line(fmt.Sprintf("spin: %+.2f rad/s", st.RotationSpeed))
	if st.GestureEnabled {
		hand := "closed"
		if st.HandOpen {
			hand = "open"
		}
		line(fmt.Sprintf("hand: %s", hand))
	} else {
		line("hand: tracking off")
	}

	var acts Actions
	by := float32(y) + 6
	bw := panel.Width - 20
	if gui.Button(rl.Rectangle{X: panel.X + 10, Y: by, Width: bw, Height: 24}, "Toggle formation") {
		acts.ToggleMode = true
	}
	if gui.Button(rl.Rectangle{X: panel.X + 10, Y: by + 30, Width: bw, Height: 24}, "Reset camera") {
		acts.ResetCamera = true
	}
	label := "Pause"
	if st.Paused {
		label = "Resume"
	}
	if gui.Button(rl.Rectangle{X: panel.X + 10, Y: by + 60, Width: bw, Height: 24}, label) {
		acts.TogglePause = true
	}
	return acts
}
