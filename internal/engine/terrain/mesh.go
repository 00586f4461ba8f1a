package terrain

import "math"

// BuildMesh triangulates a heightmap and colours each vertex by altitude band.
// Each grid cell becomes two triangles split along its (i, j)-(i+1, j+1) diagonal,
// wound counter-clockwise seen from above.
func BuildMesh(hm *Heightmap, bands Bands) *Mesh {
	if len(bands) == 0 {
		bands = DefaultBands
	}
	n := hm.Segments + 1
	vertices := make([]Vertex, 0, n*n)
	indices := make([]uint32, 0, hm.Segments*hm.Segments*6)

	bounds := Bounds{
		Min: [3]float32{1e10, 1e10, 1e10},
		Max: [3]float32{-1e10, -1e10, -1e10},
	}

	for j := range n {
		for i := range n {
			p := hm.Vertex(i, j)
			updateBounds(&bounds, p)
			vertices = append(vertices, Vertex{
				Position: p,
				Color:    bands.ColorAt(p[1]).Array(),
			})
		}
	}

	for j := range hm.Segments {
		for i := range hm.Segments {
			a := uint32(j*n + i)
			b := a + 1
			c := a + uint32(n)
			d := c + 1
			indices = append(indices,
				a, d, b,
				a, c, d,
			)
		}
	}

	SmoothNormals(vertices, indices)

	return &Mesh{
		Vertices: vertices,
		Indices:  indices,
		Bounds:   bounds,
	}
}

// SmoothNormals sets each vertex normal to the area-weighted average of the
// faces sharing it.
func SmoothNormals(vertices []Vertex, indices []uint32) {
	sums := make([][3]float32, len(vertices))
	for t := 0; t+2 < len(indices); t += 3 {
		i0, i1, i2 := indices[t], indices[t+1], indices[t+2]
		p0 := vertices[i0].Position
		p1 := vertices[i1].Position
		p2 := vertices[i2].Position

		edge1 := [3]float32{p1[0] - p0[0], p1[1] - p0[1], p1[2] - p0[2]}
		edge2 := [3]float32{p2[0] - p0[0], p2[1] - p0[1], p2[2] - p0[2]}
		face := cross(edge1, edge2)

		for _, idx := range [3]uint32{i0, i1, i2} {
			sums[idx][0] += face[0]
			sums[idx][1] += face[1]
			sums[idx][2] += face[2]
		}
	}

	for i := range vertices {
		n := normalize(sums[i])
		if n == ([3]float32{}) {
			n = [3]float32{0, 1, 0}
		}
		vertices[i].Normal = n
	}
}

// Helper functions

func updateBounds(b *Bounds, p [3]float32) {
	for k := range 3 {
		if p[k] < b.Min[k] {
			b.Min[k] = p[k]
		}
		if p[k] > b.Max[k] {
			b.Max[k] = p[k]
		}
	}
}

func cross(a, b [3]float32) [3]float32 {
	return [3]float32{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func normalize(v [3]float32) [3]float32 {
	l := float32(math.Sqrt(float64(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])))
	if l < 0.0001 {
		return [3]float32{}
	}
	return [3]float32{v[0] / l, v[1] / l, v[2] / l}
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
