// Package scene defines what the simulation hands to a renderer each frame.
//
// The core never branches on the renderer: it uploads meshes once by id and
// then submits a Frame per tick.
package scene

import (
	"github.com/Faultbox/ridgeline/internal/engine/terrain"
	"github.com/Faultbox/ridgeline/pkg/math"
)

// Renderer draws uploaded meshes.
type Renderer interface {
	// Upload stores mesh under id, replacing any previous mesh with that id.
	Upload(id string, mesh *terrain.Mesh) error
	// Render draws one frame.
	Render(frame *Frame) error
	// Resize sets the drawable size in pixels.
	Resize(width, height int)
	// Close releases all resources.
	Close()
}

// Instance places an uploaded mesh in the world.
// The model transform is translate · rotateY(Yaw) · rotateX(Pitch) · scale.
type Instance struct {
	Mesh     string
	Position math.Vec3
	Scale    math.Vec3
	Yaw      float32
	Pitch    float32
}

// Fog is linear distance fog.
type Fog struct {
	Color terrain.RGB
	Near  float32
	Far   float32
}

// Light is a single directional light plus ambient.
type Light struct {
	Direction math.Vec3 // Toward the light, unit length
	Ambient   float32   // Fraction of colour lit regardless of facing
}

// Frame is everything needed to draw one image.
type Frame struct {
	Eye    math.Vec3
	LookAt math.Vec3
	Up     math.Vec3

	FOV  float32 // Vertical, degrees
	Near float32
	Far  float32

	Sky   terrain.RGB
	Fog   Fog
	Light Light

	Instances []Instance
}

// Uniform returns a uniform scale vector.
func Uniform(s float32) math.Vec3 {
	return math.Vec3{X: s, Y: s, Z: s}
}
