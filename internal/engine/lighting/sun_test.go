package lighting

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/ridgeline/pkg/math"
)

func TestSunDirection(t *testing.T) {
	up := SunDirection(0, 90)
	assert.InDelta(t, 1, up.Y, 1e-6)

	north := SunDirection(0, 0)
	assert.InDelta(t, 1, north.Z, 1e-6)

	east := SunDirection(90, 0)
	assert.InDelta(t, 1, east.X, 1e-6)

	assert.InDelta(t, 1, DefaultSun().Direction().Length(), 1e-6)
}

func TestShade(t *testing.T) {
	s := Sun{Azimuth: 0, Elevation: 90, Ambient: 0.4}
	assert.InDelta(t, 1, s.Shade(math.Up), 1e-6)
	assert.InDelta(t, 0.4, s.Shade(math.Vec3{Y: -1}), 1e-6)
	assert.InDelta(t, 0.4, s.Shade(math.Vec3{X: 1}), 1e-6)
}
