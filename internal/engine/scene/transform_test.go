package scene

import (
	gomath "math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/ridgeline/pkg/math"
)

func TestModelMatrix(t *testing.T) {
	m := ModelMatrix(Instance{
		Position: math.Vec3{X: 10, Y: 2, Z: -3},
		Scale:    Uniform(2),
		Yaw:      gomath.Pi / 2,
	})

	// Local +Z scaled by 2, turned a quarter around Y, lands on +X.
	p := m.Mul4x1(mgl32.Vec4{0, 0, 1, 1})
	assert.InDelta(t, 12, p.X(), 1e-5)
	assert.InDelta(t, 2, p.Y(), 1e-5)
	assert.InDelta(t, -3, p.Z(), 1e-5)
}

func TestModelMatrixZeroScaleIsIdentityScale(t *testing.T) {
	m := ModelMatrix(Instance{Position: math.Vec3{Y: 5}})
	p := m.Mul4x1(mgl32.Vec4{1, 1, 1, 1})
	assert.InDelta(t, 1, p.X(), 1e-6)
	assert.InDelta(t, 6, p.Y(), 1e-6)
	assert.InDelta(t, 1, p.Z(), 1e-6)
}

func TestModelMatrixPitchSwingsLimb(t *testing.T) {
	// A limb hanging along -Y swings toward +Z for negative pitch.
	m := ModelMatrix(Instance{Pitch: -gomath.Pi / 2})
	p := m.Mul4x1(mgl32.Vec4{0, -1, 0, 1})
	assert.InDelta(t, 0, p.Y(), 1e-6)
	assert.InDelta(t, 1, p.Z(), 1e-6)
}

func TestViewProjectionCentresLookAt(t *testing.T) {
	f := &Frame{
		Eye:    math.Vec3{X: 0, Y: 10, Z: 20},
		LookAt: math.Vec3{X: 0, Y: 0, Z: 0},
	}
	vp := ViewProjection(f, 16.0/9.0)

	clip := vp.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	ndc := clip.Vec3().Mul(1 / clip.W())
	assert.InDelta(t, 0, ndc.X(), 1e-5)
	assert.InDelta(t, 0, ndc.Y(), 1e-5)
	assert.Greater(t, ndc.Z(), float32(-1))
	assert.Less(t, ndc.Z(), float32(1))
}
