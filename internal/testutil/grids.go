package testutil

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-fftlog/dsp/loggrid"
)

// LogGrid returns n log-spaced points from min to max and fails t on error.
func LogGrid(t testing.TB, min, max float64, n int) []float64 {
	t.Helper()
	x, err := loggrid.LogSpace(min, max, n)
	if err != nil {
		t.Fatalf("LogSpace(%g, %g, %d): %v", min, max, n, err)
	}
	return x
}

// PowerLaw returns amp·x^p sampled on x.
func PowerLaw(x []float64, amp, p float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = amp * math.Pow(v, p)
	}
	return out
}

// Gaussian returns exp(−x²/(2σ²)) sampled on x.
func Gaussian(x []float64, sigma float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = math.Exp(-v * v / (2 * sigma * sigma))
	}
	return out
}

// Interior returns the indices [lo, hi) that remain after dropping frac of
// the points at both ends. FFTLog outputs ring near the grid edges.
func Interior(n int, frac float64) (lo, hi int) {
	cut := int(float64(n) * frac)
	return cut, n - cut
}
