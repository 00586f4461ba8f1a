package scene

import (
	"errors"
	"fmt"

	"github.com/Faultbox/ridgeline/internal/engine/terrain"
)

// NullRenderer validates and records frames without drawing. Headless
// sessions and tests use it in place of the GL renderer.
type NullRenderer struct {
	Meshes map[string]*terrain.Mesh
	Frames int
	Last   Frame
	Width  int
	Height int
	Closed bool
}

// NewNullRenderer creates an empty NullRenderer.
func NewNullRenderer() *NullRenderer {
	return &NullRenderer{Meshes: make(map[string]*terrain.Mesh)}
}

func (r *NullRenderer) Upload(id string, mesh *terrain.Mesh) error {
	if id == "" {
		return errors.New("upload: empty mesh id")
	}
	if mesh == nil || len(mesh.Indices) == 0 {
		return fmt.Errorf("upload %s: empty mesh", id)
	}
	if len(mesh.Indices)%3 != 0 {
		return fmt.Errorf("upload %s: %d indices is not a triangle list", id, len(mesh.Indices))
	}
	for _, idx := range mesh.Indices {
		if int(idx) >= len(mesh.Vertices) {
			return fmt.Errorf("upload %s: index %d out of range (%d vertices)", id, idx, len(mesh.Vertices))
		}
	}
	r.Meshes[id] = mesh
	return nil
}

func (r *NullRenderer) Render(frame *Frame) error {
	if r.Closed {
		return errors.New("render: renderer closed")
	}
	for _, inst := range frame.Instances {
		if _, ok := r.Meshes[inst.Mesh]; !ok {
			return fmt.Errorf("render: mesh %q not uploaded", inst.Mesh)
		}
	}
	r.Frames++
	r.Last = *frame
	r.Last.Instances = append([]Instance(nil), frame.Instances...)
	return nil
}

func (r *NullRenderer) Resize(width, height int) {
	r.Width, r.Height = width, height
}

func (r *NullRenderer) Close() {
	r.Closed = true
}
