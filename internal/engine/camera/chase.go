package camera

import (
	gomath "math"

	"github.com/Faultbox/ridgeline/internal/engine/input"
	"github.com/Faultbox/ridgeline/pkg/math"
)

// Chase follows the target from behind and above, easing toward its desired
// position each frame. Raw mouse motion orbits it without pointer capture.
type Chase struct {
	Yaw   float32 // Orbit angle around the target, 0 puts the camera on +Z
	Pitch float32 // Elevation angle above the target

	Distance   float32
	LookHeight float32 // Aim point above the target

	MinPitch    float32
	MaxPitch    float32
	Sensitivity float32
	Lerp        float32 // Blend toward the desired position per 1/60 s

	eye         math.Vec3
	target      math.Vec3
	initialized bool
}

// DefaultChaseOffset is the resting offset from the target.
var DefaultChaseOffset = math.Vec3{X: 0, Y: 4, Z: 10}

// NewChase creates a chase rig at DefaultChaseOffset.
func NewChase() *Chase {
	c := &Chase{
		MinPitch:    0.05,
		MaxPitch:    1.4,
		Sensitivity: 0.005,
		Lerp:        0.08,
	}
	c.SetOffset(DefaultChaseOffset)
	return c
}

// SetOffset derives yaw, pitch and distance from a target-relative offset.
func (c *Chase) SetOffset(offset math.Vec3) {
	horiz := offset.HorizontalLength()
	c.Distance = offset.Length()
	c.Yaw = float32(gomath.Atan2(float64(offset.X), float64(offset.Z)))
	c.Pitch = float32(gomath.Atan2(float64(offset.Y), float64(horiz)))
}

// Offset returns the desired target-relative camera position.
func (c *Chase) Offset() math.Vec3 {
	horiz := c.Distance * math.Cos(c.Pitch)
	return math.Vec3{
		X: horiz * math.Sin(c.Yaw),
		Y: c.Distance * math.Sin(c.Pitch),
		Z: horiz * math.Cos(c.Yaw),
	}
}

// HandleMouse orbits the camera with raw mouse motion.
func (c *Chase) HandleMouse(in input.Snapshot) {
	c.Yaw -= in.MouseDX * c.Sensitivity
	c.Pitch += in.MouseDY * c.Sensitivity
	c.Pitch = math.Clamp(c.Pitch, c.MinPitch, c.MaxPitch)
}

// Update eases the eye toward target + Offset(). The first update snaps.
func (c *Chase) Update(target math.Vec3, dt float32) {
	c.target = target
	desired := target.Add(c.Offset())
	if !c.initialized {
		c.eye = desired
		c.initialized = true
		return
	}
	c.eye = c.eye.Lerp(desired, lerpFactor(c.Lerp, dt))
}

// Clip pulls the eye toward the look-at point so it is at most maxDist away.
func (c *Chase) Clip(maxDist float32) {
	look := c.LookAt()
	d := c.eye.Sub(look)
	if l := d.Length(); l > maxDist {
		c.eye = look.Add(d.Scale(max(maxDist, 0) / l))
	}
}

// Reset makes the next Update snap to the desired position.
func (c *Chase) Reset() {
	c.initialized = false
}

func (c *Chase) Eye() math.Vec3 { return c.eye }

func (c *Chase) LookAt() math.Vec3 {
	return c.target.Add(math.Vec3{Y: c.LookHeight})
}

// ForwardDirection points from the eye to the target on the XZ plane. When the
// eye is directly overhead the orbit yaw decides.
func (c *Chase) ForwardDirection() (x, z float32) {
	d := c.target.Sub(c.eye).XZ()
	if d.Length() < 1e-4 {
		fx, fz, _, _ := yawBasis(c.Yaw)
		return -fx, -fz
	}
	d = d.Normalize()
	return d.X, d.Y
}

func (c *Chase) RightDirection() (x, z float32) {
	fx, fz := c.ForwardDirection()
	return -fz, fx
}
