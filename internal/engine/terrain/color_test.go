package terrain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorAtBands(t *testing.T) {
	tests := []struct {
		y    float32
		want RGB
	}{
		{50, Snow},
		{45.01, Snow},
		{45, Rock},
		{31, Rock},
		{30, DarkGrass},
		{20, DarkGrass},
		{10, LightGrass},
		{5, LightGrass},
		{-12, LightGrass},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ColorAt(tt.y), "ColorAt(%v)", tt.y)
	}
}

func TestBandAtNames(t *testing.T) {
	assert.Equal(t, "snow", DefaultBands.BandAt(50).Name)
	assert.Equal(t, "rock", DefaultBands.BandAt(31).Name)
	assert.Equal(t, "light grass", DefaultBands.BandAt(5).Name)
}

func TestEmptyBands(t *testing.T) {
	assert.Equal(t, RGB{}, Bands(nil).ColorAt(100))
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#7ec850")
	require.NoError(t, err)
	assert.Equal(t, LightGrass, c)

	c, err = ParseHex("ffffff")
	require.NoError(t, err)
	assert.Equal(t, RGB{1, 1, 1}, c)

	_, err = ParseHex("#fff")
	assert.Error(t, err)
	_, err = ParseHex("#gg0000")
	assert.Error(t, err)
}
