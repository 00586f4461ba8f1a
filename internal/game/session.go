// Package game assembles the terrain, player and camera into a playable session
// and advances it frame by frame.
package game

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/ridgeline/internal/config"
	"github.com/Faultbox/ridgeline/internal/engine/camera"
	"github.com/Faultbox/ridgeline/internal/engine/character"
	"github.com/Faultbox/ridgeline/internal/engine/input"
	"github.com/Faultbox/ridgeline/internal/engine/lighting"
	"github.com/Faultbox/ridgeline/internal/engine/picking"
	"github.com/Faultbox/ridgeline/internal/engine/scene"
	"github.com/Faultbox/ridgeline/internal/engine/terrain"
	"github.com/Faultbox/ridgeline/internal/game/scenery"
	"github.com/Faultbox/ridgeline/pkg/math"
)

// MeshTerrain is the id of the terrain mesh.
const MeshTerrain = "terrain"

// Session is one running world: terrain, player, camera and scenery.
type Session struct {
	cfg *config.Config
	log *zap.Logger

	Field     *terrain.Field
	Heightmap *terrain.Heightmap
	Mesh      *terrain.Mesh
	Collision terrain.HeightField

	Player *character.Controller
	Rig    camera.Rig
	Mode   camera.Mode
	Props  []scenery.Prop
	Stats  Stats

	renderer scene.Renderer
	spawn    math.Vec3
	sky      terrain.RGB
	sun      lighting.Sun
	accum    float32
}

// NewSession builds the world described by cfg and uploads its meshes to r.
func NewSession(cfg *config.Config, r scene.Renderer, log *zap.Logger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if log == nil {
		log = zap.NewNop()
	}
	for _, w := range cfg.Warnings() {
		log.Warn(w)
	}

	s := &Session{cfg: cfg, log: log, renderer: r, sun: lighting.DefaultSun()}

	var err error
	s.sky, err = terrain.ParseHex(cfg.Graphics.Sky)
	if err != nil {
		return nil, fmt.Errorf("sky colour: %w", err)
	}

	s.Field, err = BuildField(cfg.Terrain)
	if err != nil {
		return nil, fmt.Errorf("building terrain: %w", err)
	}
	s.Heightmap = BuildHeightmap(s.Field, cfg.Terrain)
	s.Mesh = terrain.BuildMesh(s.Heightmap, terrain.DefaultBands)
	s.Collision = CollisionSource(cfg.Terrain, s.Field, s.Heightmap)

	log.Info("terrain built",
		zap.String("preset", cfg.Terrain.Preset),
		zap.Uint64("seed", cfg.Terrain.Seed),
		zap.String("noise", cfg.Terrain.Noise),
		zap.Int("vertices", len(s.Mesh.Vertices)),
		zap.Int("triangles", len(s.Mesh.Indices)/3),
		zap.String("collision", cfg.Terrain.Collision),
	)

	params, err := PlayerParams(cfg.Player)
	if err != nil {
		return nil, fmt.Errorf("player: %w", err)
	}
	s.Player = character.NewController(s.Collision, params, math.Vec3{})
	s.spawn = vec3(cfg.Player.Spawn)
	s.Respawn()

	s.Mode, err = camera.ParseMode(cfg.Camera.Mode)
	if err != nil {
		return nil, err
	}
	s.Rig, err = NewRig(cfg.Camera, s.Mode, startHeading, s.Mesh.Bounds)
	if err != nil {
		return nil, err
	}
	s.Rig.Update(s.Player.Position, 0)

	s.Props = scenery.Place(s.Collision, scenery.Config{
		Rocks:  cfg.Scenery.Rocks,
		Trees:  cfg.Scenery.Trees,
		Clouds: cfg.Scenery.Clouds,
		Spread: cfg.Scenery.Spread,
	}, cfg.Terrain.Seed)

	if r != nil {
		if err := r.Upload(MeshTerrain, s.Mesh); err != nil {
			return nil, fmt.Errorf("uploading terrain: %w", err)
		}
		if err := scenery.Upload(r); err != nil {
			return nil, fmt.Errorf("uploading scenery: %w", err)
		}
	}

	log.Info("session ready",
		zap.Float32("x", s.Player.Position.X),
		zap.Float32("y", s.Player.Position.Y),
		zap.Float32("z", s.Player.Position.Z),
		zap.String("camera", string(s.Mode)),
		zap.Int("props", len(s.Props)),
	)
	return s, nil
}

// Respawn returns the player to the spawn point, lifted clear of the ground,
// and restores full health.
func (s *Session) Respawn() {
	p := s.spawn
	p.Y = max(p.Y, s.Player.Ground(p.X, p.Z))
	s.Player.Respawn(p)
	s.Stats.Revive()
	s.accum = 0
	if c, ok := s.Rig.(*camera.Chase); ok {
		c.Reset()
	}
}

// CycleCamera switches to the next rig, keeping the current heading.
func (s *Session) CycleCamera() error {
	mode := nextMode(s.Mode)
	rig, err := NewRig(s.cfg.Camera, mode, heading(s.Rig), s.Mesh.Bounds)
	if err != nil {
		return err
	}
	rig.Update(s.Player.Position, 0)
	s.Rig, s.Mode = rig, mode
	s.log.Debug("camera switched", zap.String("mode", string(mode)))
	return nil
}

// HandleKey reacts to a fresh key press. It reports whether the key was used.
func (s *Session) HandleKey(k input.Key) (bool, error) {
	switch k {
	case input.KeyC:
		return true, s.CycleCamera()
	case input.KeyR:
		s.Respawn()
		s.log.Info("respawned")
		return true, nil
	}
	return false, nil
}

// orientation is the movement basis for this frame.
func (s *Session) orientation() character.Orientation {
	if s.cfg.Player.Basis == config.BasisFixed {
		return character.FixedYaw(s.cfg.Player.FixedYaw)
	}
	return s.Rig
}

// Step advances the session by dt seconds of wall time. Mouse motion is
// applied once; the controller then runs either once with dt or, with a
// fixed step configured, as many fixed ticks as have accumulated.
// It returns the number of controller updates run, zero once the game is over.
func (s *Session) Step(dt float32, in input.Snapshot) int {
	if s.Stats.GameOver() {
		return 0
	}
	s.Rig.HandleMouse(in)

	fixed := s.cfg.Loop.FixedStep
	if fixed <= 0 {
		s.tick(dt, in)
		return 1
	}

	if dt > 0 {
		s.accum += dt
	}
	n := 0
	for s.accum >= fixed && n < s.cfg.Loop.MaxSubsteps && !s.Stats.GameOver() {
		s.tick(fixed, in)
		s.accum -= fixed
		n++
	}
	if s.Stats.GameOver() {
		s.accum = 0
	} else if n == s.cfg.Loop.MaxSubsteps && s.accum >= fixed {
		s.log.Debug("dropping simulation time", zap.Float32("behind", s.accum))
		s.accum = 0
	}
	return n
}

func (s *Session) tick(dt float32, in input.Snapshot) {
	step := s.Player.Update(dt, in, s.orientation())
	s.Rig.Update(s.Player.Position, step.Dt)
	s.clipCamera()
	s.Stats.Record(step, s.Player.Position, s.Player.Params.Clearance)

	if step.Jumped {
		s.log.Debug("jump", zap.Float32("launch", step.LaunchSpeed), zap.Float32("y", s.Player.Position.Y))
	}
	if step.Landed {
		s.log.Debug("landed", zap.Float32("y", s.Player.Position.Y))
	}
	if s.Stats.GameOver() {
		s.log.Info("game over",
			zap.Int("score", s.Stats.Score),
			zap.Int("best", s.Stats.Best),
			zap.Float64("elapsed", s.Stats.Elapsed),
		)
	}
}

// Camera clipping keeps the chase eye this far in front of the terrain.
const (
	cameraMargin = 0.5
	cameraProbe  = 0.5
)

// clipCamera pulls a chase eye in front of any terrain between it and the player.
func (s *Session) clipCamera() {
	c, ok := s.Rig.(*camera.Chase)
	if !ok {
		return
	}
	ray, dist := picking.NewRay(c.LookAt(), c.Eye())
	if t, hit := ray.IntersectHeightField(s.Collision, dist, cameraProbe); hit {
		c.Clip(max(t-cameraMargin, 0))
	}
}

// PickGround casts a ray through a normalised screen position and returns
// the terrain point under it.
func (s *Session) PickGround(ndcX, ndcY, aspect float32) (math.Vec3, bool) {
	vp := scene.ViewProjection(s.cameraFrame(), aspect)
	ray := picking.ScreenToRay(ndcX, ndcY, vp.Inv())
	t, hit := ray.IntersectHeightField(s.Collision, scene.DefaultFar, 1)
	if !hit {
		return math.Vec3{}, false
	}
	return ray.At(t), true
}

// Teleport drops the player onto the ground at (x, z).
func (s *Session) Teleport(x, z float32) {
	s.Player.Respawn(math.Vec3{X: x, Y: s.Player.Ground(x, z), Z: z})
	s.log.Info("teleported", zap.Float32("x", x), zap.Float32("z", z))
}

// HUD returns the current overlay readouts.
func (s *Session) HUD() HUD {
	return HUD{
		Position: PositionText(s.Player.Position),
		Speed:    Speed(s.Player.Velocity),
		Score:    s.Stats.Score,
		Best:     s.Stats.Best,
		Health:   s.Stats.Health(),
		GameOver: s.Stats.GameOver(),
		Camera:   string(s.Mode),
	}
}

func (s *Session) cameraFrame() *scene.Frame {
	g := s.cfg.Graphics
	return &scene.Frame{
		Eye:    s.Rig.Eye(),
		LookAt: s.Rig.LookAt(),
		Up:     math.Up,
		FOV:    g.FOV,
		Near:   scene.DefaultNear,
		Far:    scene.DefaultFar,
		Sky:    s.sky,
		Fog:    scene.Fog{Color: s.sky, Near: g.FogNear, Far: g.FogFar},
		Light:  scene.Light{Direction: s.sun.Direction(), Ambient: s.sun.Ambient},
	}
}

// Frame assembles the scene for the current camera pose.
func (s *Session) Frame() *scene.Frame {
	f := s.cameraFrame()

	f.Instances = make([]scene.Instance, 0, 1+len(s.Props)+len(s.Player.Params.Obstacles)+6)
	f.Instances = append(f.Instances, scene.Instance{Mesh: MeshTerrain})
	for _, p := range s.Props {
		f.Instances = append(f.Instances, p.Instance())
	}
	for _, o := range s.Player.Params.Obstacles {
		if sphere, ok := o.(character.SphereObstacle); ok {
			f.Instances = append(f.Instances, scene.Instance{
				Mesh:     scenery.MeshObstacle,
				Position: sphere.Center,
				Scale:    scene.Uniform(sphere.Radius),
			})
		}
	}
	if s.cfg.Scenery.Avatar && s.Mode != camera.ModeFirstPerson {
		f.Instances = append(f.Instances, AvatarInstances(s.Player)...)
	}
	return f
}

// Render submits the current frame to the renderer.
func (s *Session) Render() error {
	if s.renderer == nil {
		return nil
	}
	return s.renderer.Render(s.Frame())
}
