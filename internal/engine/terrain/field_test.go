package terrain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPreset(t *testing.T, name string, mode NoiseMode, seed uint64) *Field {
	t.Helper()
	f, err := NewPreset(name, mode, seed)
	require.NoError(t, err)
	require.NoError(t, f.Validate())
	return f
}

func TestElevationDeterministic(t *testing.T) {
	for _, mode := range []NoiseMode{NoiseHash, NoiseSinHash, NoiseNone} {
		t.Run(string(mode), func(t *testing.T) {
			a := mustPreset(t, PresetSummit, mode, 42)
			b := mustPreset(t, PresetSummit, mode, 42)

			for _, p := range [][2]float32{{0, 0}, {12.5, -33.25}, {-99, 99}, {0, 40}, {71.3, 2.2}} {
				first := a.Elevation(p[0], p[1])
				assert.Equal(t, first, a.Elevation(p[0], p[1]), "repeat call at %v", p)
				assert.Equal(t, first, b.Elevation(p[0], p[1]), "fresh field at %v", p)
			}
		})
	}
}

func TestElevationSeedChangesJitter(t *testing.T) {
	a := mustPreset(t, PresetSummit, NoiseHash, 1)
	b := mustPreset(t, PresetSummit, NoiseHash, 2)

	differ := false
	for x := float32(-50); x <= 50; x += 7.3 {
		if a.Elevation(x, 11) != b.Elevation(x, 11) {
			differ = true
			break
		}
	}
	assert.True(t, differ, "different seeds should produce different terrain")
}

func TestElevationOutsideDomainIsZero(t *testing.T) {
	f := mustPreset(t, PresetHighlands, NoiseHash, 7)

	for _, p := range [][2]float32{{150.01, 0}, {-151, 20}, {0, 200}, {-1e6, 1e6}, {160, -160}} {
		assert.Equal(t, float32(0), f.Elevation(p[0], p[1]), "at %v", p)
	}
	assert.NotEqual(t, float32(0), f.Elevation(149, 37), "inside the domain the field is not flat")
}

func TestElevationNonFiniteInputIsZero(t *testing.T) {
	f := mustPreset(t, PresetSummit, NoiseHash, 3)
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))

	assert.Equal(t, float32(0), f.Elevation(nan, 0))
	assert.Equal(t, float32(0), f.Elevation(0, nan))
	assert.Equal(t, float32(0), f.Elevation(inf, 0))
}

func TestRollingMatchesClosedForm(t *testing.T) {
	f := mustPreset(t, PresetRolling, NoiseNone, 0)

	x, z := 10.0, 20.0
	want := math.Sin(x*0.05)*math.Cos(z*0.05)*10 +
		math.Sin(x*0.1)*math.Cos(z*0.1)*5 +
		math.Sin(x*0.02)*math.Cos(z*0.02)*15

	assert.InDelta(t, want, float64(f.Elevation(float32(x), float32(z))), 1e-4)
}

func TestSummitPeakWithoutNoise(t *testing.T) {
	f := mustPreset(t, PresetSummit, NoiseNone, 0)

	x, z := 0.0, 40.0
	want := 60 + math.Sin(x*0.08)*2 + math.Cos(z*0.09)*2 + math.Sin(x*0.2+z*0.15)*1.5
	assert.InDelta(t, want, float64(f.Elevation(0, 40)), 1e-4)
}

func TestFloorRadiusKeepsPlainsAboveZero(t *testing.T) {
	f := mustPreset(t, PresetSummit, NoiseHash, 9)

	for x := float32(-100); x <= 100; x += 5 {
		// z = -100 is over 140 units from the peak at (0, 40).
		assert.GreaterOrEqual(t, f.Elevation(x, -100), float32(0), "x=%v", x)
	}
}

func TestFlatPresetIsZero(t *testing.T) {
	f := mustPreset(t, PresetFlat, NoiseHash, 1)
	assert.Equal(t, float32(0), f.Elevation(0, 0))
	assert.Equal(t, float32(0), f.Elevation(55, -12))
}

func TestFieldValidate(t *testing.T) {
	f := &Field{HalfSize: 0}
	assert.Error(t, f.Validate())

	f = &Field{HalfSize: 10, Waves: []Wave{{Form: "tan"}}}
	assert.ErrorContains(t, f.Validate(), "wave 0")

	f = &Field{HalfSize: 10, Noise: Noise{Mode: "perlin"}}
	assert.Error(t, f.Validate())
}

func TestNewPresetUnknown(t *testing.T) {
	_, err := NewPreset("volcano", NoiseHash, 0)
	assert.ErrorContains(t, err, "volcano")
	assert.Equal(t, []string{PresetFlat, PresetHighlands, PresetRolling, PresetSummit}, PresetNames())
}

func TestParseNoiseMode(t *testing.T) {
	m, err := ParseNoiseMode("")
	require.NoError(t, err)
	assert.Equal(t, NoiseNone, m)

	m, err = ParseNoiseMode("unseeded")
	require.NoError(t, err)
	assert.False(t, m.Reproducible())
	assert.True(t, NoiseHash.Reproducible())

	_, err = ParseNoiseMode("simplex")
	assert.Error(t, err)
}

func TestValueNoiseRange(t *testing.T) {
	for x := -20.0; x < 20; x += 0.37 {
		for z := -20.0; z < 20; z += 0.53 {
			v := valueNoise(x, z, 99)
			require.GreaterOrEqual(t, v, 0.0)
			require.Less(t, v, 1.0)
		}
	}
}

func TestSinHashRange(t *testing.T) {
	for x := -5.0; x < 5; x += 0.11 {
		v := sinHash(x, x*0.5, 0)
		require.GreaterOrEqual(t, v, 0.0)
		require.Less(t, v, 1.0)
	}
}
