package terrain

import (
	"fmt"
	"math"
)

// WaveForm selects the trigonometric shape of a Wave.
type WaveForm string

const (
	// FormSinCos is A·sin(fx·x)·cos(fz·z).
	FormSinCos WaveForm = "sin_cos"
	// FormSinSum is A·sin(fx·x + fz·z).
	FormSinSum WaveForm = "sin_sum"
	// FormCosSum is A·cos(fx·x + fz·z).
	FormCosSum WaveForm = "cos_sum"
)

// Wave is one weighted sinusoid of the height sum.
type Wave struct {
	Form      WaveForm `yaml:"form"`
	Amplitude float64  `yaml:"amplitude"`
	FreqX     float64  `yaml:"freq_x"`
	FreqZ     float64  `yaml:"freq_z"`
}

// At evaluates the wave.
func (w Wave) At(x, z float64) float64 {
	switch w.Form {
	case FormSinCos:
		return w.Amplitude * math.Sin(w.FreqX*x) * math.Cos(w.FreqZ*z)
	case FormSinSum:
		return w.Amplitude * math.Sin(w.FreqX*x+w.FreqZ*z)
	case FormCosSum:
		return w.Amplitude * math.Cos(w.FreqX*x+w.FreqZ*z)
	}
	return 0
}

func (w Wave) validate() error {
	switch w.Form {
	case FormSinCos, FormSinSum, FormCosSum:
		return nil
	}
	return fmt.Errorf("unknown wave form %q", w.Form)
}

// Peak is a linear cone: Height at (X, Z), falling by Slope per unit of distance.
type Peak struct {
	X      float64 `yaml:"x"`
	Z      float64 `yaml:"z"`
	Height float64 `yaml:"height"`
	Slope  float64 `yaml:"slope"`
}

// At evaluates the cone, never below zero.
func (p Peak) At(x, z float64) float64 {
	return math.Max(0, p.Height-p.distance(x, z)*p.Slope)
}

func (p Peak) distance(x, z float64) float64 {
	return math.Hypot(x-p.X, z-p.Z)
}

// Field is a closed-form height field over the square [-HalfSize, HalfSize]².
//
// Elevation = peak + Σ waves + noise, forced to at least zero beyond
// FloorRadius from the peak, and exactly zero outside the domain.
type Field struct {
	HalfSize    float64
	Peak        Peak
	Waves       []Wave
	Noise       Noise
	FloorRadius float64
}

// Validate checks the field parameters.
func (f *Field) Validate() error {
	if !(f.HalfSize > 0) {
		return fmt.Errorf("half size must be positive, got %v", f.HalfSize)
	}
	for i, w := range f.Waves {
		if err := w.validate(); err != nil {
			return fmt.Errorf("wave %d: %w", i, err)
		}
	}
	if _, err := ParseNoiseMode(string(f.Noise.Mode)); err != nil {
		return err
	}
	return nil
}

// Contains reports whether (x, z) lies inside the domain. The boundary is inside.
func (f *Field) Contains(x, z float32) bool {
	h := f.HalfSize
	return math.Abs(float64(x)) <= h && math.Abs(float64(z)) <= h
}

// Elevation returns the terrain height at (x, z). It returns 0 outside the
// domain and for non-finite input, so the ground clamp always has a target.
func (f *Field) Elevation(x, z float32) float32 {
	if !f.Contains(x, z) {
		return 0
	}
	y := f.shape(float64(x), float64(z)) + f.Noise.Sample(float64(x), float64(z))
	y = f.floor(float64(x), float64(z), y)
	if math.IsNaN(y) || math.IsInf(y, 0) {
		return 0
	}
	return float32(y)
}

// shape is the smooth part of the field: peak plus waves.
func (f *Field) shape(x, z float64) float64 {
	y := f.Peak.At(x, z)
	for _, w := range f.Waves {
		y += w.At(x, z)
	}
	return y
}

func (f *Field) floor(x, z, y float64) float64 {
	if f.FloorRadius > 0 && f.Peak.distance(x, z) > f.FloorRadius {
		return math.Max(y, 0)
	}
	return y
}
