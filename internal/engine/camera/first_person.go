package camera

import (
	"github.com/Faultbox/ridgeline/internal/engine/input"
	"github.com/Faultbox/ridgeline/pkg/math"
)

// FirstPerson puts the eye just above the player and looks along yaw/pitch.
// Mouse look only applies while the pointer is captured.
type FirstPerson struct {
	Yaw   float32 // Radians, 0 faces +Z
	Pitch float32 // Radians, clamped to ±π/2

	EyeHeight   float32
	Sensitivity float32 // Radians per pixel

	eye math.Vec3
}

// NewFirstPerson creates a first-person rig with default settings.
func NewFirstPerson() *FirstPerson {
	return &FirstPerson{
		EyeHeight:   1.0,
		Sensitivity: 0.002,
	}
}

// HandleMouse turns the view by the captured mouse motion.
func (c *FirstPerson) HandleMouse(in input.Snapshot) {
	if !in.Captured {
		return
	}
	c.Yaw -= in.MouseDX * c.Sensitivity
	c.Pitch -= in.MouseDY * c.Sensitivity
	c.Pitch = math.Clamp(c.Pitch, -halfPi, halfPi)
}

// Update places the eye above the target.
func (c *FirstPerson) Update(target math.Vec3, _ float32) {
	c.eye = target.Add(math.Vec3{Y: c.EyeHeight})
}

func (c *FirstPerson) Eye() math.Vec3 { return c.eye }

// LookAt returns a point one unit along the view direction.
func (c *FirstPerson) LookAt() math.Vec3 {
	return c.eye.Add(c.Direction())
}

// Direction returns the unit view vector.
func (c *FirstPerson) Direction() math.Vec3 {
	cp := math.Cos(c.Pitch)
	return math.Vec3{
		X: math.Sin(c.Yaw) * cp,
		Y: math.Sin(c.Pitch),
		Z: math.Cos(c.Yaw) * cp,
	}
}

func (c *FirstPerson) ForwardDirection() (x, z float32) {
	fx, fz, _, _ := yawBasis(c.Yaw)
	return fx, fz
}

func (c *FirstPerson) RightDirection() (x, z float32) {
	_, _, rx, rz := yawBasis(c.Yaw)
	return rx, rz
}
