// Package lighting provides the scene's directional light.
package lighting

import (
	gomath "math"

	"github.com/Faultbox/ridgeline/pkg/math"
)

// Sun is a directional light placed by compass angles.
type Sun struct {
	Azimuth   float32 // Degrees around Y, 0 toward +Z
	Elevation float32 // Degrees above the horizon
	Ambient   float32 // Share of light that ignores facing, 0..1
}

// DefaultSun sits high to the north-east with soft fill light.
func DefaultSun() Sun {
	return Sun{Azimuth: 45, Elevation: 55, Ambient: 0.45}
}

// Direction returns the unit vector pointing toward the sun.
func (s Sun) Direction() math.Vec3 {
	return SunDirection(s.Azimuth, s.Elevation)
}

// SunDirection converts azimuth/elevation degrees to a unit direction toward the light.
func SunDirection(azimuth, elevation float32) math.Vec3 {
	az := float64(azimuth) * gomath.Pi / 180.0
	el := float64(elevation) * gomath.Pi / 180.0

	return math.Vec3{
		X: float32(gomath.Cos(el) * gomath.Sin(az)),
		Y: float32(gomath.Sin(el)),
		Z: float32(gomath.Cos(el) * gomath.Cos(az)),
	}
}

// Shade is the Lambert factor used by the terrain shader: ambient plus the
// remaining share scaled by the facing term.
func (s Sun) Shade(normal math.Vec3) float32 {
	d := normal.Normalize().Dot(s.Direction())
	if d < 0 {
		d = 0
	}
	return s.Ambient + (1-s.Ambient)*d
}
