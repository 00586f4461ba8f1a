package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/ridgeline/pkg/math"
)

// Defaults applied when a Frame leaves the projection unset.
const (
	DefaultFOV  = 75
	DefaultNear = 0.1
	DefaultFar  = 1000
)

// ModelMatrix returns translate · rotateY(Yaw) · rotateX(Pitch) · scale.
// A zero Scale is treated as 1.
func ModelMatrix(inst Instance) mgl32.Mat4 {
	s := inst.Scale
	if s == (math.Vec3{}) {
		s = Uniform(1)
	}
	return mgl32.Translate3D(inst.Position.X, inst.Position.Y, inst.Position.Z).
		Mul4(mgl32.HomogRotate3DY(inst.Yaw)).
		Mul4(mgl32.HomogRotate3DX(inst.Pitch)).
		Mul4(mgl32.Scale3D(s.X, s.Y, s.Z))
}

// ViewProjection returns the combined camera matrix for a frame.
func ViewProjection(f *Frame, aspect float32) mgl32.Mat4 {
	fov, near, far := f.FOV, f.Near, f.Far
	if fov <= 0 {
		fov = DefaultFOV
	}
	if near <= 0 {
		near = DefaultNear
	}
	if far <= near {
		far = DefaultFar
	}
	if aspect <= 0 {
		aspect = 1
	}

	up := f.Up
	if up == (math.Vec3{}) {
		up = math.Up
	}
	proj := mgl32.Perspective(mgl32.DegToRad(fov), aspect, near, far)
	view := mgl32.LookAtV(vec(f.Eye), vec(f.LookAt), vec(up))
	return proj.Mul4(view)
}

func vec(v math.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}
