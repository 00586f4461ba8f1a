package debug

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/ridgeline/internal/engine/lighting"
	"github.com/Faultbox/ridgeline/internal/engine/terrain"
	"github.com/Faultbox/ridgeline/pkg/math"
)

type level float32

func (l level) Elevation(x, z float32) float32 { return float32(l) }

// ramp rises toward +X.
type ramp struct{}

func (ramp) Elevation(x, z float32) float32 { return x }

func TestPreviewFlatShading(t *testing.T) {
	sun := lighting.DefaultSun()
	img := Preview(level(50), 10, terrain.DefaultBands, sun, 4)
	assert.Equal(t, 4, img.Bounds().Dx())

	shade := sun.Shade(math.Up)
	want := channel(terrain.Snow.B * shade)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			px := img.RGBAAt(x, y)
			assert.Equal(t, want, px.B)
			assert.Equal(t, uint8(0xff), px.A)
		}
	}
}

func TestPreviewBands(t *testing.T) {
	sun := lighting.Sun{Ambient: 1}
	assert.Equal(t, channel(terrain.LightGrass.G), Preview(level(0), 10, terrain.DefaultBands, sun, 1).RGBAAt(0, 0).G)
	assert.Equal(t, channel(terrain.Rock.R), Preview(level(31), 10, terrain.DefaultBands, sun, 1).RGBAAt(0, 0).R)
}

func TestPreviewSlopeFacingSunIsBrighter(t *testing.T) {
	bands := terrain.Bands{{Name: "white", Color: terrain.RGB{R: 1, G: 1, B: 1}}}
	facing := Preview(ramp{}, 5, bands, lighting.Sun{Azimuth: 270, Elevation: 45, Ambient: 0.2}, 2)
	away := Preview(ramp{}, 5, bands, lighting.Sun{Azimuth: 90, Elevation: 45, Ambient: 0.2}, 2)

	// The ramp faces -X, toward a sun at azimuth 270.
	assert.Greater(t, facing.RGBAAt(0, 0).R, away.RGBAAt(0, 0).R)
}

func TestPreviewEmpty(t *testing.T) {
	img := Preview(level(0), 10, terrain.DefaultBands, lighting.DefaultSun(), 0)
	assert.Zero(t, img.Bounds().Dx())
}
