package scenery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/ridgeline/internal/engine/scene"
	"github.com/Faultbox/ridgeline/internal/engine/terrain"
	"github.com/Faultbox/ridgeline/pkg/math"
)

type flat float32

func (f flat) Elevation(x, z float32) float32 { return float32(f) }

// slope rises along X so high ground exists past x = 20.
type slope struct{}

func (slope) Elevation(x, z float32) float32 { return x * 1.5 }

func vec(a [3]float32) math.Vec3 { return math.Vec3{X: a[0], Y: a[1], Z: a[2]} }

func cross(u, v math.Vec3) math.Vec3 {
	return math.Vec3{X: u.Y*v.Z - u.Z*v.Y, Y: u.Z*v.X - u.X*v.Z, Z: u.X*v.Y - u.Y*v.X}
}

func TestBoxWindsOutward(t *testing.T) {
	box := Box(math.Vec3{X: -1, Y: 0, Z: -2}, math.Vec3{X: 3, Y: 2, Z: 2}, terrain.RGB{R: 1})
	require.Len(t, box.Vertices, 24)
	require.Len(t, box.Indices, 36)
	assert.Equal(t, [3]float32{-1, 0, -2}, box.Bounds.Min)
	assert.Equal(t, [3]float32{3, 2, 2}, box.Bounds.Max)

	center := math.Vec3{X: 1, Y: 1, Z: 0}
	for i := 0; i < len(box.Indices); i += 3 {
		a := vec(box.Vertices[box.Indices[i]].Position)
		b := vec(box.Vertices[box.Indices[i+1]].Position)
		c := vec(box.Vertices[box.Indices[i+2]].Position)
		n := cross(b.Sub(a), c.Sub(a))
		centroid := a.Add(b).Add(c).Scale(1.0 / 3)
		assert.Greater(t, n.Dot(centroid.Sub(center)), float32(0), "triangle %d faces inward", i/3)
		assert.Greater(t, n.Dot(vec(box.Vertices[box.Indices[i]].Normal)), float32(0))
	}
	for _, v := range box.Vertices {
		assert.Equal(t, [3]float32{1, 0, 0}, v.Color)
	}
}

func TestMergeOffsetsIndices(t *testing.T) {
	a := Box(math.Vec3{}, math.Vec3{X: 1, Y: 1, Z: 1}, terrain.RGB{})
	b := Box(math.Vec3{X: 2, Y: -1, Z: 0}, math.Vec3{X: 3, Y: 0, Z: 5}, terrain.RGB{})
	m := Merge(a, b)

	require.Len(t, m.Vertices, 48)
	require.Len(t, m.Indices, 72)
	assert.Equal(t, uint32(24), m.Indices[36])
	assert.Equal(t, [3]float32{0, -1, 0}, m.Bounds.Min)
	assert.Equal(t, [3]float32{3, 1, 5}, m.Bounds.Max)
}

func TestMeshesUpload(t *testing.T) {
	r := scene.NewNullRenderer()
	require.NoError(t, Upload(r))
	for _, id := range []string{MeshRock, MeshTree, MeshCloud, MeshObstacle, MeshAvatarBody, MeshAvatarHead, MeshAvatarArm, MeshAvatarLeg} {
		assert.Contains(t, r.Meshes, id)
	}
}

func TestLimbsHangFromPivot(t *testing.T) {
	meshes := Meshes()
	for _, id := range []string{MeshAvatarArm, MeshAvatarLeg} {
		assert.Equal(t, float32(0), meshes[id].Bounds.Max[1], id)
		assert.Less(t, meshes[id].Bounds.Min[1], float32(0), id)
	}
}

func TestPlaceDeterministic(t *testing.T) {
	cfg := Config{Rocks: 10, Trees: 10, Clouds: 5, Spread: 90}
	a := Place(flat(2), cfg, 7)
	b := Place(flat(2), cfg, 7)
	c := Place(flat(2), cfg, 8)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 25)
}

func TestPlaceRanges(t *testing.T) {
	cfg := Config{Rocks: 50, Trees: 50, Clouds: 50, Spread: 40}
	for _, p := range Place(flat(3), cfg, 1) {
		assert.LessOrEqual(t, p.Position.X, cfg.Spread)
		assert.GreaterOrEqual(t, p.Position.X, -cfg.Spread)
		assert.LessOrEqual(t, p.Position.Z, cfg.Spread)
		assert.GreaterOrEqual(t, p.Position.Z, -cfg.Spread)

		switch p.Mesh {
		case MeshRock:
			assert.Equal(t, float32(3+RockLift), p.Position.Y)
			for _, s := range p.Scale.Array() {
				assert.GreaterOrEqual(t, s, float32(0.5))
				assert.LessOrEqual(t, s, float32(1))
			}
		case MeshTree:
			assert.Equal(t, float32(3), p.Position.Y)
		case MeshCloud:
			assert.GreaterOrEqual(t, p.Position.Y, float32(CloudMin))
			assert.LessOrEqual(t, p.Position.Y, float32(CloudMax))
		default:
			t.Fatalf("unexpected mesh %q", p.Mesh)
		}
	}
}

func TestTreesStayBelowTreeLine(t *testing.T) {
	props := Place(slope{}, Config{Trees: 100, Spread: 90}, 3)
	require.NotEmpty(t, props)
	for _, p := range props {
		assert.LessOrEqual(t, p.Position.Y, float32(TreeLine))
	}
}

func TestPropInstance(t *testing.T) {
	p := Prop{Mesh: MeshRock, Position: math.Vec3{X: 1}, Scale: scene.Uniform(2), Yaw: 0.5}
	inst := p.Instance()
	assert.Equal(t, MeshRock, inst.Mesh)
	assert.Equal(t, p.Position, inst.Position)
	assert.Equal(t, float32(0.5), inst.Yaw)
}

func TestSphereWindsOutward(t *testing.T) {
	s := Sphere(8, 12, terrain.RGB{})
	require.Len(t, s.Vertices, 9*13)
	require.Len(t, s.Indices, 8*12*6)

	for i := 0; i < len(s.Indices); i += 3 {
		a := vec(s.Vertices[s.Indices[i]].Position)
		b := vec(s.Vertices[s.Indices[i+1]].Position)
		c := vec(s.Vertices[s.Indices[i+2]].Position)
		n := cross(b.Sub(a), c.Sub(a))
		if n.Length() < 1e-6 {
			continue // pole
		}
		centroid := a.Add(b).Add(c).Scale(1.0 / 3)
		assert.Greater(t, n.Dot(centroid), float32(0), "triangle %d faces inward", i/3)
	}
	for _, v := range s.Vertices {
		assert.InDelta(t, 1, vec(v.Position).Length(), 1e-5)
	}
}
