// Package picking provides ray casting against the terrain.
package picking

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/ridgeline/internal/engine/terrain"
	"github.com/Faultbox/ridgeline/pkg/math"
)

// Ray represents a ray in 3D space with origin and direction.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3 // Normalized direction
}

// NewRay returns the ray from one point toward another and the distance between them.
func NewRay(from, to math.Vec3) (Ray, float32) {
	d := to.Sub(from)
	return Ray{Origin: from, Direction: d.Normalize()}, d.Length()
}

// At returns the point t units along the ray.
func (r Ray) At(t float32) math.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// ScreenToRay converts normalized device coordinates (-1..1, +Y up) to a
// world-space ray. invViewProj is the inverse of the view-projection matrix.
func ScreenToRay(ndcX, ndcY float32, invViewProj mgl32.Mat4) Ray {
	unproject := func(depth float32) math.Vec3 {
		p := invViewProj.Mul4x1(mgl32.Vec4{ndcX, ndcY, depth, 1})
		if p[3] != 0 {
			p = p.Mul(1 / p[3])
		}
		return math.Vec3{X: p[0], Y: p[1], Z: p[2]}
	}
	r, _ := NewRay(unproject(-1), unproject(1))
	return r
}

// Refinement steps once a march step crosses the surface.
const bisectSteps = 12

// IntersectHeightField marches the ray over a height field in increments of
// step and returns the distance to the first point at or below the surface.
// A ray starting below the surface hits at 0.
func (r Ray) IntersectHeightField(f terrain.HeightField, maxDist, step float32) (t float32, hit bool) {
	below := func(t float32) bool {
		p := r.At(t)
		return p.Y <= f.Elevation(p.X, p.Z)
	}
	if below(0) {
		return 0, true
	}
	if !(step > 0) {
		return 0, false
	}

	prev := float32(0)
	for t = step; prev < maxDist; t += step {
		t = min(t, maxDist)
		if below(t) {
			lo, hi := prev, t
			for i := 0; i < bisectSteps; i++ {
				mid := (lo + hi) / 2
				if below(mid) {
					hi = mid
				} else {
					lo = mid
				}
			}
			return hi, true
		}
		prev = t
	}
	return 0, false
}
