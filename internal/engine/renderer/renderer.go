// Package renderer draws scene frames with OpenGL 4.1 core.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/ridgeline/internal/engine/scene"
	"github.com/Faultbox/ridgeline/internal/engine/shader"
	"github.com/Faultbox/ridgeline/internal/engine/terrain"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// Renderer handles all OpenGL rendering. It implements scene.Renderer.
type Renderer struct {
	config  Config
	log     *zap.Logger
	program *shader.Program
	meshes  map[string]*gpuMesh
}

// gpuMesh is an uploaded vertex/index buffer pair.
type gpuMesh struct {
	vao, vbo, ebo uint32
	count         int32
}

var _ scene.Renderer = (*Renderer)(nil)

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config, log *zap.Logger) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		log:    log,
		meshes: make(map[string]*gpuMesh),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	var err error
	r.program, err = shader.NewProgram(shader.SceneVertex, shader.SceneFragment)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}
	log.Debug("shader program created", zap.Uint32("program", r.program.ID))

	return r, nil
}

// Upload stores a mesh on the GPU under id.
func (r *Renderer) Upload(id string, mesh *terrain.Mesh) error {
	if mesh == nil || len(mesh.Vertices) == 0 || len(mesh.Indices) == 0 {
		return fmt.Errorf("upload %s: empty mesh", id)
	}
	if old, ok := r.meshes[id]; ok {
		old.delete()
	}

	m := &gpuMesh{count: int32(len(mesh.Indices))}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	vertexSize := int(unsafe.Sizeof(terrain.Vertex{}))
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh.Vertices)*vertexSize, unsafe.Pointer(&mesh.Vertices[0]), gl.STATIC_DRAW)

	// Position (location 0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, int32(vertexSize), 0)
	gl.EnableVertexAttribArray(0)

	// Normal (location 1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, int32(vertexSize), 3*4)
	gl.EnableVertexAttribArray(1)

	// Color (location 2)
	gl.VertexAttribPointerWithOffset(2, 3, gl.FLOAT, false, int32(vertexSize), 6*4)
	gl.EnableVertexAttribArray(2)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4, unsafe.Pointer(&mesh.Indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)

	r.meshes[id] = m
	r.log.Debug("mesh uploaded",
		zap.String("id", id),
		zap.Int("vertices", len(mesh.Vertices)),
		zap.Int("triangles", len(mesh.Indices)/3),
	)
	return nil
}

// Render clears to the sky colour and draws every instance.
func (r *Renderer) Render(frame *scene.Frame) error {
	gl.ClearColor(frame.Sky.R, frame.Sky.G, frame.Sky.B, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	aspect := float32(r.config.Width) / float32(max(r.config.Height, 1))
	viewProj := scene.ViewProjection(frame, aspect)

	p := r.program
	p.Use()
	gl.UniformMatrix4fv(p.Uniform("uViewProj"), 1, false, &viewProj[0])
	gl.Uniform3f(p.Uniform("uEye"), frame.Eye.X, frame.Eye.Y, frame.Eye.Z)
	light := frame.Light.Direction
	gl.Uniform3f(p.Uniform("uLightDir"), light.X, light.Y, light.Z)
	gl.Uniform1f(p.Uniform("uAmbient"), frame.Light.Ambient)
	gl.Uniform3f(p.Uniform("uFogColor"), frame.Fog.Color.R, frame.Fog.Color.G, frame.Fog.Color.B)
	gl.Uniform1f(p.Uniform("uFogNear"), frame.Fog.Near)
	gl.Uniform1f(p.Uniform("uFogFar"), frame.Fog.Far)

	locModel := p.Uniform("uModel")
	for _, inst := range frame.Instances {
		m, ok := r.meshes[inst.Mesh]
		if !ok {
			return fmt.Errorf("render: mesh %q not uploaded", inst.Mesh)
		}
		model := scene.ModelMatrix(inst)
		gl.UniformMatrix4fv(locModel, 1, false, &model[0])
		gl.BindVertexArray(m.vao)
		gl.DrawElements(gl.TRIANGLES, m.count, gl.UNSIGNED_INT, nil)
	}
	gl.BindVertexArray(0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("render: GL error 0x%x", code)
	}
	return nil
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// ReadPixels returns the current framebuffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, w, h
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	for id, m := range r.meshes {
		m.delete()
		delete(r.meshes, id)
	}
	if r.program != nil {
		r.program.Delete()
	}
}

func (m *gpuMesh) delete() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
	}
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
	}
}
