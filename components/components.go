// Package components defines ECS components for the decorative scene
// entities. The fixed ornament and snow populations live in flat buffers in
// the systems package; only the handful of gift boxes go through the ECS.
package components

// Transform is a gift box's world pose.
type Transform struct {
	X, Y, Z float32
	Heading float32 // rotation around the vertical axis, radians
	Scale   float32
}

// Wrap describes the box itself: dimensions and wrapping colors.
type Wrap struct {
	W, H, D float32 // box dimensions

	// Paper color
	R, G, B uint8

	// Ribbon/bow color
	RibbonR, RibbonG, RibbonB uint8
}

// Bow carries the per-gift animation parameters for the ribbon bow: phase
// offsets decorrelate the breathing and flutter across gifts, RestY anchors
// the idle bob, and LoopCount sets how many petals ring the knot.
type Bow struct {
	PhaseOffset float32 // decorrelates loop breathing and tail flutter
	KnotHeight  float32 // bow anchor height above the box top
	LoopCount   int     // petals around the knot
	RestY       float32 // idle vertical rest position for bobbing
}
