// Package terrain provides procedural height fields, colour banding and terrain mesh building.
package terrain

// HeightField is the elevation query shared by mesh generation, scenery placement
// and collision. Implementations must be deterministic and total.
type HeightField interface {
	Elevation(x, z float32) float32
}

// RGB is a linear colour with components in [0, 1].
type RGB struct {
	R, G, B float32
}

// Array returns the colour as a vertex attribute.
func (c RGB) Array() [3]float32 {
	return [3]float32{c.R, c.G, c.B}
}

// Vertex represents a terrain mesh vertex with all attributes.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	Color    [3]float32
}

// Mesh holds the complete mesh data ready for GPU upload.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
	Bounds   Bounds
}

// Bounds holds the axis-aligned bounding box of a mesh.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// Heightmap is a baked grid of the heights a mesh was built from.
// Heights is indexed [z][x]; vertex (i, j) sits at (-HalfSize + i*Step, -HalfSize + j*Step).
type Heightmap struct {
	Heights  [][]float32
	Segments int
	HalfSize float32
	Step     float32
}
