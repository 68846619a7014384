// Package camera provides an orbit camera for viewing the scene.
package camera

import "math"

// Orbit circles a fixed target point at a given radius and pitch. The yaw
// advances continuously under the rotation controller; pitch and radius are
// user-adjustable within clamped ranges.
type Orbit struct {
	// Yaw is the horizontal orbit angle in radians.
	Yaw float32

	// Pitch is the elevation angle in radians (0 = level with the target).
	Pitch float32

	// Radius is the distance from the target.
	Radius float32

	// Target is the orbit center in world coordinates.
	TargetX, TargetY, TargetZ float32

	// Constraints
	MinPitch, MaxPitch   float32
	MinRadius, MaxRadius float32

	home *Orbit
}

// New creates an orbit camera looking at the given target.
func New(targetX, targetY, targetZ, radius, pitch float32) *Orbit {
	o := &Orbit{
		Pitch:     pitch,
		Radius:    radius,
		TargetX:   targetX,
		TargetY:   targetY,
		TargetZ:   targetZ,
		MinPitch:  -1.2,
		MaxPitch:  1.4,
		MinRadius: radius * 0.4,
		MaxRadius: radius * 3,
	}
	home := *o
	o.home = &home
	return o
}

// Advance rotates the orbit by yawSpeed (rad/s) over dt seconds, wrapping
// the yaw to [0, 2*Pi).
func (o *Orbit) Advance(yawSpeed, dt float32) {
	const twoPi = 2 * math.Pi
	o.Yaw += yawSpeed * dt
	for o.Yaw >= twoPi {
		o.Yaw -= twoPi
	}
	for o.Yaw < 0 {
		o.Yaw += twoPi
	}
}

// Position returns the camera eye position in world coordinates.
func (o *Orbit) Position() (x, y, z float32) {
	cosP := float32(math.Cos(float64(o.Pitch)))
	x = o.TargetX + o.Radius*cosP*float32(math.Cos(float64(o.Yaw)))
	y = o.TargetY + o.Radius*float32(math.Sin(float64(o.Pitch)))
	z = o.TargetZ + o.Radius*cosP*float32(math.Sin(float64(o.Yaw)))
	return x, y, z
}

// SetPitch sets the elevation angle, clamped to the allowed range.
func (o *Orbit) SetPitch(pitch float32) {
	o.Pitch = clamp(pitch, o.MinPitch, o.MaxPitch)
}

// Zoom scales the orbit radius by the given factor, clamped to range.
func (o *Orbit) Zoom(factor float32) {
	o.Radius = clamp(o.Radius*factor, o.MinRadius, o.MaxRadius)
}

// Reset returns the camera to its construction pose.
func (o *Orbit) Reset() {
	home := o.home
	*o = *home
	o.home = home
}

// clamp restricts a value to a range.
func clamp(x, min, max float32) float32 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
