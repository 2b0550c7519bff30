package interp

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// Errors returned by NewTable and Resample.
var (
	ErrTooShort       = errors.New("interp: table needs at least two points")
	ErrLengthMismatch = errors.New("interp: length mismatch")
	ErrNotIncreasing  = errors.New("interp: abscissae must be positive and strictly increasing")
)

// Mode selects the interpolation kernel of a Table.
type Mode int

const (
	// ModeLinear interpolates linearly in ln x.
	ModeLinear Mode = iota

	// ModeHermite uses 4-point cubic Hermite interpolation in ln x.
	ModeHermite
)

// Linear2 interpolates from x0 (t=0) to x1 (t=1).
func Linear2(t, x0, x1 float64) float64 {
	return x0 + t*(x1-x0)
}

// Hermite4 computes cubic 4-point interpolation.
// It interpolates from x0 to x1 using neighbor points xm1 and x2.
func Hermite4(t, xm1, x0, x1, x2 float64) float64 {
	c0 := x0
	c1 := 0.5 * (x1 - xm1)
	c2 := xm1 - 2.5*x0 + 2*x1 - 0.5*x2
	c3 := 0.5*(x2-xm1) + 1.5*(x0-x1)
	return ((c3*t+c2)*t+c1)*t + c0
}

// Table is a function tabulated at positive, strictly increasing x.
// Hermite interpolation treats the ln x spacing as locally uniform.
type Table struct {
	u    []float64
	y    []float64
	mode Mode
}

// NewTable copies x and y into a Table.
func NewTable(x, y []float64, mode Mode) (*Table, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: x %d, y %d", ErrLengthMismatch, len(x), len(y))
	}
	if len(x) < 2 {
		return nil, ErrTooShort
	}

	u := make([]float64, len(x))
	for i, v := range x {
		if !(v > 0) {
			return nil, fmt.Errorf("%w: x[%d]=%g", ErrNotIncreasing, i, v)
		}
		u[i] = math.Log(v)
		if i > 0 && !(u[i] > u[i-1]) {
			return nil, fmt.Errorf("%w: x[%d]=%g after %g", ErrNotIncreasing, i, v, x[i-1])
		}
	}

	return &Table{u: u, y: append([]float64(nil), y...), mode: mode}, nil
}

// At returns the interpolated value at x, or NaN outside [x[0], x[N-1]].
func (t *Table) At(x float64) float64 {
	n := len(t.u)
	u := math.Log(x)
	if !(u >= t.u[0]) || !(u <= t.u[n-1]) {
		return math.NaN()
	}

	// k is the left node of the interval holding u.
	k := sort.SearchFloat64s(t.u, u) - 1
	k = max(0, min(k, n-2))

	frac := (u - t.u[k]) / (t.u[k+1] - t.u[k])
	if t.mode != ModeHermite {
		return Linear2(frac, t.y[k], t.y[k+1])
	}

	// Missing neighbours at the ends are extrapolated linearly.
	var ym1, y2 float64
	if k > 0 {
		ym1 = t.y[k-1]
	} else {
		ym1 = 2*t.y[0] - t.y[1]
	}
	if k+2 < n {
		y2 = t.y[k+2]
	} else {
		y2 = 2*t.y[n-1] - t.y[n-2]
	}
	return Hermite4(frac, ym1, t.y[k], t.y[k+1], y2)
}

// Resample writes t.At(x[i]) to dst[i].
func (t *Table) Resample(dst, x []float64) error {
	if len(dst) != len(x) {
		return fmt.Errorf("%w: dst %d, x %d", ErrLengthMismatch, len(dst), len(x))
	}
	for i, v := range x {
		dst[i] = t.At(v)
	}
	return nil
}
