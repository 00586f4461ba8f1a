package picking

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/ridgeline/pkg/math"
)

type level float32

func (l level) Elevation(x, z float32) float32 { return float32(l) }

// wall is 10 high for x > 5.
type wall struct{}

func (wall) Elevation(x, z float32) float32 {
	if x > 5 {
		return 10
	}
	return 0
}

func TestNewRay(t *testing.T) {
	r, d := NewRay(math.Vec3{X: 1}, math.Vec3{X: 1, Y: 3, Z: 4})
	assert.InDelta(t, 5, d, 1e-6)
	assert.InDelta(t, 0.6, r.Direction.Y, 1e-6)
	assert.InDelta(t, 0.8, r.Direction.Z, 1e-6)
	assert.Equal(t, math.Vec3{X: 1, Y: 3, Z: 4}, r.At(5))
}

func TestIntersectFlatGround(t *testing.T) {
	r, _ := NewRay(math.Vec3{Y: 10}, math.Vec3{X: 10, Y: 0})
	dist, hit := r.IntersectHeightField(level(2), 100, 1)
	require.True(t, hit)

	p := r.At(dist)
	assert.InDelta(t, 2, p.Y, 1e-2)
	assert.InDelta(t, 8, p.X, 1e-2)
}

func TestIntersectMisses(t *testing.T) {
	up, _ := NewRay(math.Vec3{Y: 1}, math.Vec3{X: 1, Y: 2})
	_, hit := up.IntersectHeightField(level(0), 100, 0.5)
	assert.False(t, hit)

	short, _ := NewRay(math.Vec3{Y: 10}, math.Vec3{X: 10, Y: 0})
	_, hit = short.IntersectHeightField(level(0), 5, 1)
	assert.False(t, hit, "surface beyond max distance")
}

func TestIntersectStartsBelow(t *testing.T) {
	r, _ := NewRay(math.Vec3{Y: -1}, math.Vec3{X: 1, Y: -1})
	dist, hit := r.IntersectHeightField(level(0), 10, 1)
	assert.True(t, hit)
	assert.Zero(t, dist)
}

func TestIntersectWall(t *testing.T) {
	r, _ := NewRay(math.Vec3{Y: 2}, math.Vec3{X: 1, Y: 2})
	dist, hit := r.IntersectHeightField(wall{}, 20, 0.75)
	require.True(t, hit)
	assert.InDelta(t, 5, dist, 1e-3)
}

func TestScreenToRayCentre(t *testing.T) {
	eye := mgl32.Vec3{0, 10, 10}
	view := mgl32.LookAtV(eye, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})
	proj := mgl32.Perspective(mgl32.DegToRad(60), 1, 0.1, 100)
	inv := proj.Mul4(view).Inv()

	r := ScreenToRay(0, 0, inv)
	assert.InDelta(t, 0, r.Direction.X, 1e-4)
	assert.InDelta(t, -0.7071, r.Direction.Y, 1e-3)
	assert.InDelta(t, -0.7071, r.Direction.Z, 1e-3)

	dist, hit := r.IntersectHeightField(level(0), 100, 0.5)
	require.True(t, hit)
	p := r.At(dist)
	assert.InDelta(t, 0, p.X, 1e-2)
	assert.InDelta(t, 0, p.Z, 1e-2)
}
