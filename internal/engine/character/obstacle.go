package character

import "github.com/Faultbox/ridgeline/pkg/math"

// Obstacle pushes positions out of a solid volume.
type Obstacle interface {
	Resolve(p math.Vec3) math.Vec3
}

// SphereObstacle is a solid ball. Points inside are moved radially to its surface.
type SphereObstacle struct {
	Center math.Vec3
	Radius float32
}

// Resolve returns p unchanged when outside, otherwise the nearest surface point.
// A point exactly at the centre is pushed straight up.
func (s SphereObstacle) Resolve(p math.Vec3) math.Vec3 {
	offset := p.Sub(s.Center)
	if offset.Length() >= s.Radius {
		return p
	}
	dir := offset.Normalize()
	if dir == (math.Vec3{}) {
		dir = math.Up
	}
	return s.Center.Add(dir.Scale(s.Radius))
}
