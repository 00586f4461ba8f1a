package math

import "math"

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp interpolates between a and b.
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// RoundHalfUp rounds to the nearest integer with ties going toward +Inf,
// so -2.5 becomes -2 rather than -3. HUD readouts use it.
func RoundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

// Sin is a float32 wrapper around math.Sin.
func Sin(a float32) float32 {
	return float32(math.Sin(float64(a)))
}

// Cos is a float32 wrapper around math.Cos.
func Cos(a float32) float32 {
	return float32(math.Cos(float64(a)))
}

// Sqrt is a float32 wrapper around math.Sqrt.
func Sqrt(v float32) float32 {
	return float32(math.Sqrt(float64(v)))
}
