package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/Faultbox/ridgeline/internal/engine/camera"
	"github.com/Faultbox/ridgeline/internal/engine/character"
	"github.com/Faultbox/ridgeline/internal/engine/terrain"
)

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}
	wrap := func(field string, err error) {
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", field, err))
		}
	}

	g := c.Graphics
	check(g.Width > 0 && g.Height > 0, "graphics: window size %dx%d must be positive", g.Width, g.Height)
	check(g.FOV > 0 && g.FOV < 180, "graphics.fov %v out of range (0, 180)", g.FOV)
	check(g.FogNear >= 0 && g.FogFar > g.FogNear, "graphics: fog range [%v, %v] is empty", g.FogNear, g.FogFar)
	_, err := terrain.ParseHex(g.Sky)
	wrap("graphics.sky", err)

	tc := c.Terrain
	check(slices.Contains(terrain.PresetNames(), tc.Preset), "terrain.preset %q unknown, want one of %v", tc.Preset, terrain.PresetNames())
	_, err = terrain.ParseNoiseMode(tc.Noise)
	wrap("terrain.noise", err)
	check(tc.Segments >= 1 && tc.Segments <= MaxSegments, "terrain.segments %d out of range [1, %d]", tc.Segments, MaxSegments)
	check(tc.Collision == CollisionAnalytic || tc.Collision == CollisionMesh, "terrain.collision %q: want %q or %q", tc.Collision, CollisionAnalytic, CollisionMesh)

	p := c.Player
	check(p.Speed >= 0, "player.speed %v is negative", p.Speed)
	check(p.JumpSpeed >= 0, "player.jump_speed %v is negative", p.JumpSpeed)
	check(p.Gravity <= 0, "player.gravity %v points up", p.Gravity)
	check(p.Clearance >= 0, "player.clearance %v is negative", p.Clearance)
	_, err = character.ParseHorizontalMode(p.Horizontal)
	wrap("player.horizontal", err)
	check(p.DecayFactor > 0 && p.DecayFactor <= 1, "player.decay_factor %v out of range (0, 1]", p.DecayFactor)
	check(p.MaxStep >= 0, "player.max_step %v is negative", p.MaxStep)
	check(p.Basis == BasisCamera || p.Basis == BasisFixed, "player.basis %q: want %q or %q", p.Basis, BasisCamera, BasisFixed)
	for i, o := range p.Obstacles {
		check(o.Radius > 0, "player.obstacles[%d].radius %v must be positive", i, o.Radius)
	}

	cc := c.Camera
	_, err = camera.ParseMode(cc.Mode)
	wrap("camera.mode", err)
	check(cc.Sensitivity > 0, "camera.sensitivity %v must be positive", cc.Sensitivity)
	check(cc.ChaseLerp > 0 && cc.ChaseLerp <= 1, "camera.chase_lerp %v out of range (0, 1]", cc.ChaseLerp)

	s := c.Scenery
	check(s.Rocks >= 0 && s.Trees >= 0 && s.Clouds >= 0, "scenery: counts must not be negative")
	check(s.Spread > 0, "scenery.spread %v must be positive", s.Spread)

	check(c.Loop.FixedStep >= 0, "loop.fixed_step %v is negative", c.Loop.FixedStep)
	check(c.Loop.MaxSubsteps >= 1, "loop.max_substeps %d must be at least 1", c.Loop.MaxSubsteps)

	check(slices.Contains([]string{"debug", "info", "warn", "warning", "error"}, strings.ToLower(c.Logging.Level)), "logging.level %q unknown", c.Logging.Level)

	return errors.Join(errs...)
}

// Warnings lists settings that are valid but probably unintended.
func (c *Config) Warnings() []string {
	var w []string
	if c.Terrain.Noise == string(terrain.NoiseUnseeded) {
		msg := "terrain.noise unseeded: the mesh differs on every run"
		if c.Terrain.Collision != CollisionMesh {
			msg += " and collision will not match the rendered surface; set terrain.collision to mesh"
		}
		w = append(w, msg)
	}
	return w
}

const (
	CollisionAnalytic = "analytic"
	CollisionMesh     = "mesh"

	BasisCamera = "camera"
	BasisFixed  = "fixed"

	MaxSegments = 1024
)
