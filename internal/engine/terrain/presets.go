package terrain

import (
	"fmt"
	"sort"
)

// Preset names.
const (
	PresetSummit    = "summit"
	PresetRolling   = "rolling"
	PresetHighlands = "highlands"
	PresetFlat      = "flat"
)

var presets = map[string]func(noise NoiseMode, seed uint64) *Field{
	// Central peak with ridges and two jitter octaves.
	PresetSummit: func(noise NoiseMode, seed uint64) *Field {
		return &Field{
			HalfSize: 100,
			Peak:     Peak{X: 0, Z: 40, Height: 60, Slope: 1.2},
			Waves: []Wave{
				{Form: FormSinSum, Amplitude: 2, FreqX: 0.08},
				{Form: FormCosSum, Amplitude: 2, FreqZ: 0.09},
				{Form: FormSinSum, Amplitude: 1.5, FreqX: 0.2, FreqZ: 0.15},
			},
			Noise: Noise{Mode: noise, Seed: seed, Octaves: []Octave{
				{Frequency: 0.15, Amplitude: 6},
				{Frequency: 0.5, Amplitude: 2},
			}},
			FloorRadius: 80,
		}
	},
	// Sum of sin·cos products, no jitter.
	PresetRolling: func(_ NoiseMode, _ uint64) *Field {
		return &Field{
			HalfSize: 100,
			Waves:    rollingWaves(),
			Noise:    Noise{Mode: NoiseNone},
		}
	},
	// Rolling hills over a 300 unit square with light jitter.
	PresetHighlands: func(noise NoiseMode, seed uint64) *Field {
		return &Field{
			HalfSize: 150,
			Waves:    rollingWaves(),
			Noise: Noise{Mode: noise, Seed: seed, Octaves: []Octave{
				{Frequency: 0.1, Amplitude: 3},
			}},
		}
	},
	// Zero everywhere; pair with a sphere obstacle for the cone-mountain layout.
	PresetFlat: func(_ NoiseMode, _ uint64) *Field {
		return &Field{HalfSize: 100, Noise: Noise{Mode: NoiseNone}}
	},
}

func rollingWaves() []Wave {
	return []Wave{
		{Form: FormSinCos, Amplitude: 10, FreqX: 0.05, FreqZ: 0.05},
		{Form: FormSinCos, Amplitude: 5, FreqX: 0.1, FreqZ: 0.1},
		{Form: FormSinCos, Amplitude: 15, FreqX: 0.02, FreqZ: 0.02},
	}
}

// NewPreset builds a named field. noise only applies to presets that carry jitter.
func NewPreset(name string, noise NoiseMode, seed uint64) (*Field, error) {
	build, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("unknown terrain preset %q (have %v)", name, PresetNames())
	}
	return build(noise, seed), nil
}

// PresetNames lists the available presets in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
