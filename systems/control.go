package systems

// Mode is the discrete scene state. Every per-frame system branches on this
// value directly; the visual transition between modes is emergent from the
// interpolation and snow systems chasing the new configuration.
type Mode uint8

const (
	ModeTree Mode = iota
	ModeExploded
)

// String returns the mode name for logs and the HUD.
func (m Mode) String() string {
	if m == ModeExploded {
		return "exploded"
	}
	return "tree"
}

// RotationParams tunes the camera auto-rotation controller. The gains are a
// UX tuning choice, not a correctness requirement, so they live in config.
type RotationParams struct {
	ManualThreshold float32 // manual command magnitudes below this are ignored
	ManualGain      float32 // scale applied to the manual command
	IdleTree        float32 // idle orbit speed in tree mode (rad/s)
	IdleExploded    float32 // idle orbit speed in exploded mode (rad/s)
	Lambda          float32 // damping rate toward the target speed (1/s)
}

// RotationControl owns the continuous camera auto-rotation speed, blending
// manual (gesture-driven) and idle (mode-driven) targets with exponential
// damping.
type RotationControl struct {
	params RotationParams
	speed  float32
	manual float32
}

// NewRotationControl creates a controller at rest.
func NewRotationControl(p RotationParams) *RotationControl {
	return &RotationControl{params: p}
}

// SetManual stores the latest signed manual rotation command. Zero releases
// manual control back to the idle speed.
func (r *RotationControl) SetManual(cmd float32) {
	r.manual = cmd
}

// Step damps the current speed toward this frame's target and returns it.
// Manual input wins whenever its magnitude clears the threshold; otherwise
// the idle speed for the current mode applies.
func (r *RotationControl) Step(mode Mode, dt float32) float32 {
	target := r.params.IdleTree
	if mode == ModeExploded {
		target = r.params.IdleExploded
	}
	if absf(r.manual) > r.params.ManualThreshold {
		target = r.manual * r.params.ManualGain
	}
	r.speed = Damp(r.speed, target, r.params.Lambda, dt)
	return r.speed
}

// Speed returns the current auto-rotation speed.
func (r *RotationControl) Speed() float32 {
	return r.speed
}
