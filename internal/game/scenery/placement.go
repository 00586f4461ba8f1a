package scenery

import (
	"math/rand/v2"

	"github.com/Faultbox/ridgeline/internal/engine/scene"
	"github.com/Faultbox/ridgeline/internal/engine/terrain"
	"github.com/Faultbox/ridgeline/pkg/math"
)

// Config sets prop counts and the placement area.
type Config struct {
	Rocks  int
	Trees  int
	Clouds int
	Spread float32 // Props land within ±Spread on X and Z
}

// Prop is one placed piece of scenery.
type Prop struct {
	Mesh     string
	Position math.Vec3
	Scale    math.Vec3
	Yaw      float32
}

// Instance converts the prop for a scene frame.
func (p Prop) Instance() scene.Instance {
	return scene.Instance{Mesh: p.Mesh, Position: p.Position, Scale: p.Scale, Yaw: p.Yaw}
}

const (
	// RockLift raises rock centres above the surface.
	RockLift = 0.5
	// TreeLine is the highest ground a tree will grow on.
	TreeLine = 30
	// CloudMin and CloudMax bound cloud altitude.
	CloudMin = 30
	CloudMax = 80

	treeAttempts = 8
)

// Place scatters props over the height field. The same seed and config
// always give the same props.
func Place(field terrain.HeightField, cfg Config, seed uint64) []Prop {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	props := make([]Prop, 0, cfg.Rocks+cfg.Trees+cfg.Clouds)

	coord := func() float32 {
		return (rng.Float32()*2 - 1) * cfg.Spread
	}
	between := func(lo, hi float32) float32 {
		return lo + rng.Float32()*(hi-lo)
	}
	yaw := func() float32 {
		return rng.Float32() * 2 * 3.1415927
	}

	for i := 0; i < cfg.Rocks; i++ {
		x, z := coord(), coord()
		props = append(props, Prop{
			Mesh:     MeshRock,
			Position: math.Vec3{X: x, Y: field.Elevation(x, z) + RockLift, Z: z},
			Scale:    math.Vec3{X: between(0.5, 1), Y: between(0.5, 1), Z: between(0.5, 1)},
			Yaw:      yaw(),
		})
	}

	for i := 0; i < cfg.Trees; i++ {
		x, z := coord(), coord()
		for try := 1; try < treeAttempts && field.Elevation(x, z) > TreeLine; try++ {
			x, z = coord(), coord()
		}
		y := field.Elevation(x, z)
		if y > TreeLine {
			continue
		}
		props = append(props, Prop{
			Mesh:     MeshTree,
			Position: math.Vec3{X: x, Y: y, Z: z},
			Scale:    scene.Uniform(between(0.8, 1.2)),
			Yaw:      yaw(),
		})
	}

	for i := 0; i < cfg.Clouds; i++ {
		x, z := coord(), coord()
		props = append(props, Prop{
			Mesh:     MeshCloud,
			Position: math.Vec3{X: x, Y: between(CloudMin, CloudMax), Z: z},
			Scale:    scene.Uniform(between(1, 2)),
			Yaw:      yaw(),
		})
	}

	return props
}
