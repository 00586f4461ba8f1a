package camera

import (
	"github.com/Faultbox/ridgeline/internal/engine/input"
	"github.com/Faultbox/ridgeline/pkg/math"
)

// Orbit circles a fixed centre, for surveying the whole terrain. Dragging
// with the pointer captured rotates it and the wheel zooms.
type Orbit struct {
	Center math.Vec3

	Distance float32
	Yaw      float32
	Pitch    float32

	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	DragSensitivity float32
	ZoomSensitivity float32
}

// NewOrbit creates an orbit rig with default settings.
func NewOrbit() *Orbit {
	return &Orbit{
		Distance:        200.0,
		Pitch:           0.5,
		MinDistance:     10.0,
		MaxDistance:     1000.0,
		MinPitch:        0.1,
		MaxPitch:        1.5,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
	}
}

// HandleMouse rotates on captured motion and zooms on the wheel.
func (c *Orbit) HandleMouse(in input.Snapshot) {
	if in.Captured {
		c.Yaw -= in.MouseDX * c.DragSensitivity
		c.Pitch += in.MouseDY * c.DragSensitivity
		c.Pitch = math.Clamp(c.Pitch, c.MinPitch, c.MaxPitch)
	}
	if in.Wheel != 0 {
		c.Distance -= in.Wheel * c.Distance * c.ZoomSensitivity
		c.Distance = math.Clamp(c.Distance, c.MinDistance, c.MaxDistance)
	}
}

// Update ignores the target; the orbit stays on its centre.
func (c *Orbit) Update(math.Vec3, float32) {}

func (c *Orbit) Eye() math.Vec3 {
	horiz := c.Distance * math.Cos(c.Pitch)
	return c.Center.Add(math.Vec3{
		X: horiz * math.Sin(c.Yaw),
		Y: c.Distance * math.Sin(c.Pitch),
		Z: horiz * math.Cos(c.Yaw),
	})
}

func (c *Orbit) LookAt() math.Vec3 { return c.Center }

// ForwardDirection faces away from the eye, toward the centre.
func (c *Orbit) ForwardDirection() (x, z float32) {
	fx, fz, _, _ := yawBasis(c.Yaw)
	return -fx, -fz
}

func (c *Orbit) RightDirection() (x, z float32) {
	_, _, rx, rz := yawBasis(c.Yaw)
	return -rx, -rz
}

// FitToBounds centres the orbit on a box and backs off far enough to see it.
func (c *Orbit) FitToBounds(min, max math.Vec3) {
	c.Center = min.Add(max).Scale(0.5)

	size := max.X - min.X
	if d := max.Z - min.Z; d > size {
		size = d
	}
	c.Distance = math.Clamp(size*1.1, c.MinDistance, c.MaxDistance)
	c.Pitch = 0.6
	c.Yaw = 0
}
