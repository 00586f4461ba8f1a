package terrain

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/cespare/xxhash/v2"
)

// NoiseMode selects how fine jitter is added on top of the large-scale shape.
type NoiseMode string

const (
	// NoiseNone adds no jitter.
	NoiseNone NoiseMode = "none"
	// NoiseHash is smooth value noise over an xxhash-seeded lattice.
	NoiseHash NoiseMode = "hash"
	// NoiseSinHash is the classic fract(sin(dot)) shader hash, sampled directly.
	NoiseSinHash NoiseMode = "sinhash"
	// NoiseUnseeded draws fresh random jitter per mesh vertex. It is not a function
	// of (x, z): a rebuilt mesh differs and Field.Elevation cannot see it.
	NoiseUnseeded NoiseMode = "unseeded"
)

// ParseNoiseMode validates a mode name from configuration.
func ParseNoiseMode(s string) (NoiseMode, error) {
	switch m := NoiseMode(s); m {
	case NoiseNone, NoiseHash, NoiseSinHash, NoiseUnseeded:
		return m, nil
	case "":
		return NoiseNone, nil
	}
	return "", fmt.Errorf("unknown noise mode %q", s)
}

// Reproducible reports whether the same (x, z, seed) always yields the same jitter.
func (m NoiseMode) Reproducible() bool {
	return m != NoiseUnseeded
}

// Octave is one noise layer. Samples are taken at (x*Frequency, z*Frequency)
// and centred so each layer contributes within ±Amplitude/2.
type Octave struct {
	Frequency float64 `yaml:"frequency"`
	Amplitude float64 `yaml:"amplitude"`
}

// Noise is the jitter term of a Field.
type Noise struct {
	Mode    NoiseMode
	Seed    uint64
	Octaves []Octave
}

// Sample returns the deterministic jitter at (x, z).
// It is zero for NoiseNone and NoiseUnseeded.
func (n Noise) Sample(x, z float64) float64 {
	var sum float64
	switch n.Mode {
	case NoiseHash:
		for i, o := range n.Octaves {
			sum += (valueNoise(x*o.Frequency, z*o.Frequency, n.Seed+uint64(i)) - 0.5) * o.Amplitude
		}
	case NoiseSinHash:
		for _, o := range n.Octaves {
			sum += (sinHash(x*o.Frequency, z*o.Frequency, n.Seed) - 0.5) * o.Amplitude
		}
	}
	return sum
}

// Jitter draws one non-reproducible jitter value. Only meaningful for NoiseUnseeded.
func (n Noise) Jitter(r *rand.Rand) float64 {
	if n.Mode != NoiseUnseeded || r == nil {
		return 0
	}
	var sum float64
	for _, o := range n.Octaves {
		sum += (r.Float64() - 0.5) * o.Amplitude
	}
	return sum
}

// sinHash is fract(sin(x*12.9898 + z*78.233) * 43758.5453), shifted by seed.
func sinHash(x, z float64, seed uint64) float64 {
	x += float64(seed % 4096)
	n := math.Sin(x*12.9898+z*78.233) * 43758.5453
	return n - math.Floor(n)
}

// latticeValue maps an integer lattice point to [0, 1).
func latticeValue(ix, iz int64, seed uint64) float64 {
	var buf [24]byte
	binary.LittleEndian.PutUint64(buf[0:], seed)
	binary.LittleEndian.PutUint64(buf[8:], uint64(ix))
	binary.LittleEndian.PutUint64(buf[16:], uint64(iz))
	h := xxhash.Sum64(buf[:])
	return float64(h>>11) / (1 << 53)
}

// fade is the quintic 6t^5 - 15t^4 + 10t^3 smoothing curve.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// valueNoise interpolates the four surrounding lattice values. Result in [0, 1).
func valueNoise(x, z float64, seed uint64) float64 {
	x0 := math.Floor(x)
	z0 := math.Floor(z)
	fx := fade(x - x0)
	fz := fade(z - z0)

	ix, iz := int64(x0), int64(z0)
	v00 := latticeValue(ix, iz, seed)
	v10 := latticeValue(ix+1, iz, seed)
	v01 := latticeValue(ix, iz+1, seed)
	v11 := latticeValue(ix+1, iz+1, seed)

	return lerp(lerp(v00, v10, fx), lerp(v01, v11, fx), fz)
}
