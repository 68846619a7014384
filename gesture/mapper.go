package gesture

// Edge reports a hand open/close transition. Steady states emit EdgeNone;
// only transitions reach the scene controller.
type Edge uint8

const (
	EdgeNone Edge = iota
	EdgeOpened
	EdgeClosed
)

// Params tunes the mapper. The thresholds and gains are empirical UX values,
// configurable rather than hard-coded.
type Params struct {
	RatioAlpha     float32 // EMA factor for the open-ratio filter
	WristAlpha     float32 // EMA factor for the wrist-position filter
	OpenThreshold  float32 // smoothed ratio above this flips closed -> open
	CloseThreshold float32 // smoothed ratio below this flips open -> closed
	DeadZone       float32 // half-width of the no-rotation zone around center
	Sensitivity    float32 // linear gain outside the dead zone
}

// DefaultParams returns the tuned mapper constants.
func DefaultParams() Params {
	return Params{
		RatioAlpha:     0.25,
		WristAlpha:     0.2,
		OpenThreshold:  1.35,
		CloseThreshold: 1.25,
		DeadZone:       0.05,
		Sensitivity:    6.0,
	}
}

// Mapper smooths raw tracking signals and maps them to scene controls.
// Frames with no visible hand leave all state untouched: prior smoothed
// values and the open/closed state persist with no decay toward neutral.
type Mapper struct {
	params Params

	ratio  float32
	wrist  float32
	open   bool
	seeded bool

	rotation float32
}

// NewMapper creates a mapper in the closed, centered state.
func NewMapper(p Params) *Mapper {
	return &Mapper{params: p}
}

// Observe processes one tracker signal and returns the open/close edge it
// produced, if any. The first observation seeds both filters directly so the
// mapper does not crawl up from zero.
func (m *Mapper) Observe(sig Signal) Edge {
	if !m.seeded {
		m.ratio = sig.OpenRatio
		m.wrist = sig.WristX
		m.seeded = true
	} else {
		m.ratio += (sig.OpenRatio - m.ratio) * m.params.RatioAlpha
		m.wrist += (sig.WristX - m.wrist) * m.params.WristAlpha
	}

	m.rotation = m.wristCommand()

	// Hysteresis: the dead band between the two thresholds prevents
	// chattering when the ratio hovers near a single cutoff.
	switch {
	case !m.open && m.ratio > m.params.OpenThreshold:
		m.open = true
		return EdgeOpened
	case m.open && m.ratio < m.params.CloseThreshold:
		m.open = false
		return EdgeClosed
	}
	return EdgeNone
}

// wristCommand maps the smoothed wrist position through the dead zone and
// linear gain to a signed rotation-speed command.
func (m *Mapper) wristCommand() float32 {
	const center = 0.5
	lo := center - m.params.DeadZone
	hi := center + m.params.DeadZone

	switch {
	case m.wrist > hi:
		return (m.wrist - hi) * m.params.Sensitivity
	case m.wrist < lo:
		return -(lo - m.wrist) * m.params.Sensitivity
	}
	return 0
}

// Rotation returns the current signed rotation-speed command.
func (m *Mapper) Rotation() float32 {
	return m.rotation
}

// Open reports the hysteresis-filtered hand state.
func (m *Mapper) Open() bool {
	return m.open
}
