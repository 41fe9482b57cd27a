package testutil

import "math"

// PolynomialRow evaluates a polynomial at channel indices 0..n-1.
// coeffs are ordered from the constant term upward.
func PolynomialRow(n int, coeffs ...float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		x := float64(i)
		v := 0.0
		for k := len(coeffs) - 1; k >= 0; k-- {
			v = v*x + coeffs[k]
		}
		out[i] = v
	}
	return out
}

// GaussianBand returns an absorption-band shaped row: a Gaussian bump of the
// given amplitude centered on a channel index.
func GaussianBand(n int, center, width, amplitude float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		d := (float64(i) - center) / width
		out[i] = amplitude * math.Exp(-0.5*d*d)
	}
	return out
}

// Constant returns a row with every channel set to value.
func Constant(value float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = value
	}
	return out
}

// Impulse returns a row that is zero except for a unit sample at pos.
func Impulse(n, pos int) []float64 {
	out := make([]float64, n)
	if pos >= 0 && pos < n {
		out[pos] = 1
	}
	return out
}
