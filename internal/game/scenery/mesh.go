package scenery

import (
	gomath "math"

	"github.com/Faultbox/ridgeline/internal/engine/terrain"
	"github.com/Faultbox/ridgeline/pkg/math"
)

// boxFaces lists each face as (normal axis, sign, u axis, v axis) with u × v = normal.
var boxFaces = [6]struct {
	axis int
	sign float32
	u, v int
}{
	{0, +1, 1, 2},
	{0, -1, 2, 1},
	{1, +1, 2, 0},
	{1, -1, 0, 2},
	{2, +1, 0, 1},
	{2, -1, 1, 0},
}

// Box returns a flat-shaded box spanning from..to, wound counter-clockwise
// seen from outside.
func Box(from, to math.Vec3, color terrain.RGB) *terrain.Mesh {
	lo, hi := from.Array(), to.Array()
	var c, h [3]float32
	for i := range c {
		c[i] = (lo[i] + hi[i]) / 2
		h[i] = (hi[i] - lo[i]) / 2
	}

	mesh := &terrain.Mesh{
		Vertices: make([]terrain.Vertex, 0, 24),
		Indices:  make([]uint32, 0, 36),
		Bounds:   terrain.Bounds{Min: lo, Max: hi},
	}
	for _, f := range boxFaces {
		var normal [3]float32
		normal[f.axis] = f.sign

		base := uint32(len(mesh.Vertices))
		for _, s := range [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}} {
			p := c
			p[f.axis] += f.sign * h[f.axis]
			p[f.u] += s[0] * h[f.u]
			p[f.v] += s[1] * h[f.v]
			mesh.Vertices = append(mesh.Vertices, terrain.Vertex{
				Position: p,
				Normal:   normal,
				Color:    color.Array(),
			})
		}
		mesh.Indices = append(mesh.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	return mesh
}

// Merge concatenates meshes into one.
func Merge(meshes ...*terrain.Mesh) *terrain.Mesh {
	out := &terrain.Mesh{}
	for i, m := range meshes {
		base := uint32(len(out.Vertices))
		out.Vertices = append(out.Vertices, m.Vertices...)
		for _, idx := range m.Indices {
			out.Indices = append(out.Indices, base+idx)
		}
		if i == 0 {
			out.Bounds = m.Bounds
			continue
		}
		for k := 0; k < 3; k++ {
			out.Bounds.Min[k] = min(out.Bounds.Min[k], m.Bounds.Min[k])
			out.Bounds.Max[k] = max(out.Bounds.Max[k], m.Bounds.Max[k])
		}
	}
	return out
}

// Sphere returns a unit-radius UV sphere centred on the origin with
// outward normals.
func Sphere(rings, sectors int, color terrain.RGB) *terrain.Mesh {
	rings = max(rings, 2)
	sectors = max(sectors, 3)

	mesh := &terrain.Mesh{
		Vertices: make([]terrain.Vertex, 0, (rings+1)*(sectors+1)),
		Indices:  make([]uint32, 0, rings*sectors*6),
		Bounds:   terrain.Bounds{Min: [3]float32{-1, -1, -1}, Max: [3]float32{1, 1, 1}},
	}
	for i := 0; i <= rings; i++ {
		theta := gomath.Pi * float64(i) / float64(rings)
		for j := 0; j <= sectors; j++ {
			phi := 2 * gomath.Pi * float64(j) / float64(sectors)
			p := [3]float32{
				float32(gomath.Sin(theta) * gomath.Cos(phi)),
				float32(gomath.Cos(theta)),
				float32(gomath.Sin(theta) * gomath.Sin(phi)),
			}
			mesh.Vertices = append(mesh.Vertices, terrain.Vertex{Position: p, Normal: p, Color: color.Array()})
		}
	}

	stride := uint32(sectors + 1)
	for i := uint32(0); i < uint32(rings); i++ {
		for j := uint32(0); j < uint32(sectors); j++ {
			a := i*stride + j
			b := a + stride
			mesh.Indices = append(mesh.Indices, a, b+1, b, a, a+1, b+1)
		}
	}
	return mesh
}
