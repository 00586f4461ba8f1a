package math

import "math"

// Vec2 is a direction or offset on the horizontal plane: X is world X, Y is world Z.
type Vec2 struct {
	X, Y float32
}

// IsZero reports whether v carries no direction.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

func (v Vec2) Length() float32 {
	return float32(math.Hypot(float64(v.X), float64(v.Y)))
}

// Normalize returns a unit vector, or the zero vector when v has no length.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Heading is the yaw that faces along v, measured from +Z toward +X.
func (v Vec2) Heading() float32 {
	return float32(math.Atan2(float64(v.X), float64(v.Y)))
}
