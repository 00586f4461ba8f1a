package game

import (
	"fmt"
	gomath "math"
	"math/rand/v2"

	"github.com/Faultbox/ridgeline/internal/config"
	"github.com/Faultbox/ridgeline/internal/engine/camera"
	"github.com/Faultbox/ridgeline/internal/engine/character"
	"github.com/Faultbox/ridgeline/internal/engine/terrain"
	"github.com/Faultbox/ridgeline/pkg/math"
)

// startHeading faces the first rig toward -Z, away from the default chase offset.
const startHeading = gomath.Pi

// BuildField creates the configured height field.
func BuildField(tc config.TerrainConfig) (*terrain.Field, error) {
	noise, err := terrain.ParseNoiseMode(tc.Noise)
	if err != nil {
		return nil, err
	}
	field, err := terrain.NewPreset(tc.Preset, noise, tc.Seed)
	if err != nil {
		return nil, err
	}
	if err := field.Validate(); err != nil {
		return nil, fmt.Errorf("preset %s: %w", tc.Preset, err)
	}
	return field, nil
}

// BuildHeightmap bakes the field at the configured resolution. Unseeded
// noise draws from a fresh generator each call.
func BuildHeightmap(field *terrain.Field, tc config.TerrainConfig) *terrain.Heightmap {
	var rng *rand.Rand
	if field.Noise.Mode == terrain.NoiseUnseeded {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return terrain.BuildHeightmap(field, tc.Segments, rng)
}

// CollisionSource picks the surface the controller clamps to.
func CollisionSource(tc config.TerrainConfig, field *terrain.Field, hm *terrain.Heightmap) terrain.HeightField {
	if tc.Collision == config.CollisionMesh {
		return hm
	}
	return field
}

// PlayerParams converts player settings into controller tuning.
func PlayerParams(pc config.PlayerConfig) (character.Params, error) {
	mode, err := character.ParseHorizontalMode(pc.Horizontal)
	if err != nil {
		return character.Params{}, err
	}
	p := character.Params{
		Speed:       pc.Speed,
		JumpSpeed:   pc.JumpSpeed,
		Gravity:     pc.Gravity,
		Clearance:   pc.Clearance,
		Horizontal:  mode,
		DecayFactor: pc.DecayFactor,
		MaxStep:     pc.MaxStep,
	}
	for _, o := range pc.Obstacles {
		p.Obstacles = append(p.Obstacles, character.SphereObstacle{
			Center: vec3(o.Center),
			Radius: o.Radius,
		})
	}
	return p, nil
}

// NewRig creates and tunes a camera rig facing heading (radians, 0 is +Z).
func NewRig(cc config.CameraConfig, mode camera.Mode, heading float32, bounds terrain.Bounds) (camera.Rig, error) {
	rig, err := camera.New(mode)
	if err != nil {
		return nil, err
	}
	switch r := rig.(type) {
	case *camera.FirstPerson:
		r.Sensitivity = cc.Sensitivity
		r.EyeHeight = cc.EyeHeight
		r.Yaw = heading
	case *camera.Chase:
		r.SetOffset(vec3(cc.ChaseOffset))
		r.Yaw += heading - startHeading
		r.Lerp = cc.ChaseLerp
		r.Sensitivity = cc.ChaseSensitivity
		r.LookHeight = cc.LookHeight
	case *camera.Orbit:
		r.FitToBounds(vec3(bounds.Min), vec3(bounds.Max))
		r.Yaw = heading + gomath.Pi
	}
	return rig, nil
}

// heading returns the yaw of a rig's forward direction.
func heading(r camera.Rig) float32 {
	fx, fz := r.ForwardDirection()
	return float32(gomath.Atan2(float64(fx), float64(fz)))
}

// nextMode cycles first person, chase, orbit.
func nextMode(m camera.Mode) camera.Mode {
	switch m {
	case camera.ModeFirstPerson:
		return camera.ModeChase
	case camera.ModeChase:
		return camera.ModeOrbit
	}
	return camera.ModeFirstPerson
}

func vec3(a [3]float32) math.Vec3 {
	return math.Vec3{X: a[0], Y: a[1], Z: a[2]}
}
