// Package loggrid builds and checks the logarithmically spaced sample grids
// used by FFTLog transforms.
//
// A grid x[0..N-1] is log spaced when x[i+1]/x[i] = exp(dlnx) for every i.
// The package also provides the log-linear extrapolation used to pad a grid
// (and the values sampled on it) before transforming, and the reciprocal
// output grid y[i] = (ℓ+1)/x[N-1-i].
package loggrid

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-fftlog/dsp/core"
)

// Errors returned by grid helpers.
var (
	ErrTooShort      = errors.New("loggrid: at least two points required")
	ErrNonPositive   = errors.New("loggrid: grid values must be positive")
	ErrInvalidRange  = errors.New("loggrid: invalid range")
	ErrNegativeCount = errors.New("loggrid: extrapolation count must be >= 0")
	ErrSignChange    = errors.New("loggrid: cannot extrapolate across a sign change or zero")
)

// LogSpace returns n points spaced evenly in ln x from min to max inclusive.
func LogSpace(min, max float64, n int) ([]float64, error) {
	if n < 2 {
		return nil, ErrTooShort
	}
	if !(min > 0) || !(max > min) || math.IsInf(max, 0) {
		return nil, fmt.Errorf("%w: [%g, %g]", ErrInvalidRange, min, max)
	}

	lnMin := math.Log(min)
	dlnx := (math.Log(max) - lnMin) / float64(n-1)

	x := make([]float64, n)
	for i := range x {
		x[i] = math.Exp(lnMin + float64(i)*dlnx)
	}
	return x, nil
}

// DLnX returns the log step ln(x[1]/x[0]) of a grid.
func DLnX(x []float64) (float64, error) {
	if len(x) < 2 {
		return 0, ErrTooShort
	}
	if !(x[0] > 0) || !(x[1] > 0) {
		return 0, ErrNonPositive
	}
	return math.Log(x[1] / x[0]), nil
}

// IsLogSpaced reports whether x is strictly increasing with a constant log
// step, comparing each step to the first with relative tolerance tol.
func IsLogSpaced(x []float64, tol float64) bool {
	dlnx, err := DLnX(x)
	if err != nil || !(dlnx > 0) {
		return false
	}

	for i := 1; i < len(x); i++ {
		if !(x[i-1] > 0) || !(x[i] > 0) {
			return false
		}
		if !core.NearlyEqual(math.Log(x[i]/x[i-1]), dlnx, tol) {
			return false
		}
	}
	return true
}

// Extrapolate returns v extended by low points below v[0] and high points
// above v[len(v)-1], continuing the end ratios geometrically:
//
//	v[0]·(v[1]/v[0])^k,             k = -low..-1
//	v[N-1]·(v[N-1]/v[N-2])^k,       k = 1..high
//
// For a log-spaced grid this extends the grid with the same step; for values
// that behave like a power law near the ends it continues that power law.
func Extrapolate(v []float64, low, high int) ([]float64, error) {
	if low < 0 || high < 0 {
		return nil, ErrNegativeCount
	}

	n := len(v)
	if low == 0 && high == 0 {
		return append([]float64(nil), v...), nil
	}
	if n < 2 {
		return nil, ErrTooShort
	}

	out := make([]float64, low+n+high)
	copy(out[low:], v)

	if low > 0 {
		ratio := v[1] / v[0]
		if !(ratio > 0) {
			return nil, fmt.Errorf("%w: v[0]=%g, v[1]=%g", ErrSignChange, v[0], v[1])
		}
		dln := math.Log(ratio)
		for k := 1; k <= low; k++ {
			out[low-k] = v[0] * math.Exp(-float64(k)*dln)
		}
	}

	if high > 0 {
		ratio := v[n-1] / v[n-2]
		if !(ratio > 0) {
			return nil, fmt.Errorf("%w: v[N-2]=%g, v[N-1]=%g", ErrSignChange, v[n-2], v[n-1])
		}
		dln := math.Log(ratio)
		for k := 1; k <= high; k++ {
			out[low+n-1+k] = v[n-1] * math.Exp(float64(k)*dln)
		}
	}

	return out, nil
}

// Reciprocal writes the output grid dst[i] = (ell+1)/x[N-1-i] of an
// order-ell transform. It panics if dst and x differ in length.
func Reciprocal(dst, x []float64, ell float64) {
	if len(dst) != len(x) {
		panic("loggrid: Reciprocal length mismatch")
	}

	n := len(x)
	scale := ell + 1
	for i := range dst {
		dst[i] = scale / x[n-1-i]
	}
}
