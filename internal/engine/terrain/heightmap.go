package terrain

import (
	"math"
	"math/rand/v2"
)

// BuildHeightmap samples f on a (segments+1)² vertex grid covering its domain.
// For NoiseUnseeded fields r supplies per-vertex jitter; a nil r leaves the grid
// equal to the analytic field.
func BuildHeightmap(f *Field, segments int, r *rand.Rand) *Heightmap {
	if segments < 1 {
		segments = 1
	}
	half := float32(f.HalfSize)
	hm := &Heightmap{
		Heights:  make([][]float32, segments+1),
		Segments: segments,
		HalfSize: half,
		Step:     2 * half / float32(segments),
	}

	for j := range segments + 1 {
		hm.Heights[j] = make([]float32, segments+1)
		z := hm.coord(j)
		for i := range segments + 1 {
			h := f.Elevation(hm.coord(i), z)
			if f.Noise.Mode == NoiseUnseeded {
				h += float32(f.Noise.Jitter(r))
			}
			hm.Heights[j][i] = h
		}
	}
	return hm
}

// Contains reports whether (x, z) lies on the grid.
func (hm *Heightmap) Contains(x, z float32) bool {
	return absf(x) <= hm.HalfSize && absf(z) <= hm.HalfSize
}

// Vertex returns the world position of grid vertex (i, j).
func (hm *Heightmap) Vertex(i, j int) [3]float32 {
	return [3]float32{hm.coord(i), hm.Heights[j][i], hm.coord(j)}
}

// coord is the world coordinate of grid line k. The product is rounded before
// the add so every caller gets bit-identical positions.
func (hm *Heightmap) coord(k int) float32 {
	return -hm.HalfSize + float32(float32(k)*hm.Step)
}

// Elevation returns the height of the rendered triangle under (x, z), so it
// agrees with the mesh built from this heightmap. Outside the grid it is 0.
func (hm *Heightmap) Elevation(x, z float32) float32 {
	if !hm.Contains(x, z) || isNaN(x) || isNaN(z) {
		return 0
	}

	fx := (x + hm.HalfSize) / hm.Step
	fz := (z + hm.HalfSize) / hm.Step
	i := clampi(int(fx), 0, hm.Segments-1)
	j := clampi(int(fz), 0, hm.Segments-1)
	u := clampf(fx-float32(i), 0, 1)
	v := clampf(fz-float32(j), 0, 1)

	a := hm.Heights[j][i]
	b := hm.Heights[j][i+1]
	c := hm.Heights[j+1][i]
	d := hm.Heights[j+1][i+1]

	// Cells are split along the a-d diagonal, matching BuildMesh.
	if u >= v {
		return a + u*(b-a) + v*(d-b)
	}
	return a + v*(c-a) + u*(d-c)
}

func clampf(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func clampi(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func isNaN(v float32) bool {
	return math.IsNaN(float64(v))
}
