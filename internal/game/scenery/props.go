// Package scenery places decorative props on the terrain and builds their meshes.
package scenery

import (
	"github.com/Faultbox/ridgeline/internal/engine/scene"
	"github.com/Faultbox/ridgeline/internal/engine/terrain"
	"github.com/Faultbox/ridgeline/pkg/math"
)

// Mesh ids shared with the renderer.
const (
	MeshRock  = "rock"
	MeshTree  = "tree"
	MeshCloud = "cloud"

	// MeshObstacle is a unit sphere scaled by obstacle radius.
	MeshObstacle = "obstacle"

	MeshAvatarBody = "avatar.body"
	MeshAvatarHead = "avatar.head"
	MeshAvatarArm  = "avatar.arm"
	MeshAvatarLeg  = "avatar.leg"
)

var (
	rockGrey   = terrain.RGB{R: 0x66 / 255.0, G: 0x66 / 255.0, B: 0x66 / 255.0}
	trunkBrown = terrain.RGB{R: 0x8b / 255.0, G: 0x45 / 255.0, B: 0x13 / 255.0}
	leafGreen  = terrain.RGB{R: 0x22 / 255.0, G: 0x8b / 255.0, B: 0x22 / 255.0}
	cloudWhite = terrain.RGB{R: 1, G: 1, B: 1}
	bodyBlue   = terrain.RGB{R: 0x41 / 255.0, G: 0x69 / 255.0, B: 0xe1 / 255.0}
	skinTone   = terrain.RGB{R: 0xff / 255.0, G: 0xe4 / 255.0, B: 0xc4 / 255.0}
	legNavy    = terrain.RGB{R: 0, G: 0, B: 0x80 / 255.0}
)

// Meshes returns every prop and avatar mesh keyed by id.
func Meshes() map[string]*terrain.Mesh {
	return map[string]*terrain.Mesh{
		// Unit rock centred on its origin; instances scale it.
		MeshRock: Box(math.Vec3{X: -0.5, Y: -0.5, Z: -0.5}, math.Vec3{X: 0.5, Y: 0.5, Z: 0.5}, rockGrey),

		// Trunk from the ground to 4 with the crown around 5.
		MeshTree: Merge(
			Box(math.Vec3{X: -0.4, Y: 0, Z: -0.4}, math.Vec3{X: 0.4, Y: 4, Z: 0.4}, trunkBrown),
			Box(math.Vec3{X: -2, Y: 3.5, Z: -2}, math.Vec3{X: 2, Y: 6.5, Z: 2}, leafGreen),
		),

		MeshObstacle: Sphere(12, 24, rockGrey),

		MeshCloud: Merge(
			Box(math.Vec3{X: -3, Y: -1, Z: -2}, math.Vec3{X: 3, Y: 1.5, Z: 2}, cloudWhite),
			Box(math.Vec3{X: -5, Y: -1, Z: -1}, math.Vec3{X: -1.5, Y: 0.8, Z: 1.5}, cloudWhite),
			Box(math.Vec3{X: 1.5, Y: -0.8, Z: -1.5}, math.Vec3{X: 4.5, Y: 1, Z: 1}, cloudWhite),
		),

		// The avatar origin is the controller position; the body spans the
		// clearance above the ground. Limbs hang from their pivot at the origin.
		MeshAvatarBody: Box(math.Vec3{X: -0.5, Y: -0.3, Z: -0.3}, math.Vec3{X: 0.5, Y: 0.9, Z: 0.3}, bodyBlue),
		MeshAvatarHead: Box(math.Vec3{X: -0.35, Y: -0.35, Z: -0.35}, math.Vec3{X: 0.35, Y: 0.35, Z: 0.35}, skinTone),
		MeshAvatarArm:  Box(math.Vec3{X: -0.15, Y: -0.9, Z: -0.15}, math.Vec3{X: 0.15, Y: 0, Z: 0.15}, skinTone),
		MeshAvatarLeg:  Box(math.Vec3{X: -0.2, Y: -0.7, Z: -0.2}, math.Vec3{X: 0.2, Y: 0, Z: 0.2}, legNavy),
	}
}

// Upload sends every prop and avatar mesh to r.
func Upload(r scene.Renderer) error {
	for id, m := range Meshes() {
		if err := r.Upload(id, m); err != nil {
			return err
		}
	}
	return nil
}
