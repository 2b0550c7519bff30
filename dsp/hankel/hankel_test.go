package hankel

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-fftlog/dsp/fftlog"
	"github.com/cwbudde/algo-fftlog/internal/testutil"
)

// powerLawHankel is ∫ x^(p−1) J_n(xy) dx = 2^(p−1) Γ((n+p)/2)/Γ((n−p)/2+1) y^−p.
func powerLawHankel(y []float64, n, p float64) []float64 {
	c := math.Pow(2, p-1) * math.Gamma((n+p)/2) / math.Gamma((n-p)/2+1)
	out := make([]float64, len(y))
	for i, v := range y {
		out[i] = c * math.Pow(v, -p)
	}
	return out
}

func TestTransform_PowerLawExact(t *testing.T) {
	tests := []struct {
		name string
		n, p float64
	}{
		{name: "J0", n: 0, p: 0.5},
		{name: "J1", n: 1, p: 0.8},
		{name: "J2", n: 2, p: 1.2},
		{name: "J0.5", n: 0.5, p: 0.3},
	}

	x := testutil.LogGrid(t, 1e-3, 1e3, 128)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			y, fy, err := Transform(x, testutil.PowerLaw(x, 1, tt.p), tt.n, fftlog.WithNu(tt.p+0.5))
			if err != nil {
				t.Fatalf("Transform() error = %v", err)
			}

			testutil.RequireRelNearlyEqual(t, fy, powerLawHankel(y, tt.n, tt.p), 1e-9)
		})
	}
}

func TestTransform_OutputGrid(t *testing.T) {
	x := testutil.LogGrid(t, 1e-2, 1e2, 32)

	y, _, err := Transform(x, testutil.Gaussian(x, 1), 1, fftlog.WithNu(1))
	if err != nil {
		t.Fatalf("Transform() error = %v", err)
	}

	last := len(x) - 1
	for i := range y {
		if want := 1.5 / x[last-i]; math.Abs(y[i]-want) > 1e-14*want {
			t.Fatalf("y[%d] = %v, want %v", i, y[i], want)
		}
	}
}

func TestTransformOrders_MatchesSingle(t *testing.T) {
	x := testutil.LogGrid(t, 1e-4, 1e3, 256)
	fx := testutil.Gaussian(x, 1)
	for i := range fx {
		fx[i] *= x[i] * x[i]
	}
	ns := []float64{0, 1, 2}

	tr, err := New(fftlog.WithNu(1), fftlog.WithParallel(2))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ys, fys, err := tr.TransformOrders(x, fx, ns)
	if err != nil {
		t.Fatalf("TransformOrders() error = %v", err)
	}

	for j, n := range ns {
		y, fy, err := tr.Transform(x, fx, n)
		if err != nil {
			t.Fatalf("Transform(n=%v) error = %v", n, err)
		}
		testutil.RequireSliceNearlyEqual(t, ys[j], y, 0)
		testutil.RequireSliceNearlyEqual(t, fys[j], fy, 1e-12)
		testutil.RequireFinite(t, fys[j])
	}
}

func TestTransform_Errors(t *testing.T) {
	x := []float64{1, 2, 4, 8}

	if _, _, err := Transform(x, x[:3], 0); !errors.Is(err, fftlog.ErrLengthMismatch) {
		t.Fatalf("err = %v, want ErrLengthMismatch", err)
	}
	if _, _, err := Transform(x[:3], x[:3], 0); !errors.Is(err, fftlog.ErrOddLength) {
		t.Fatalf("err = %v, want ErrOddLength", err)
	}
	if _, _, err := Transform(x, x, 0, fftlog.WithWindowWidth(-1)); !errors.Is(err, fftlog.ErrInvalidConfig) {
		t.Fatalf("err = %v, want ErrInvalidConfig", err)
	}
	if _, _, err := TransformOrders(x, x, nil); !errors.Is(err, fftlog.ErrNoOrders) {
		t.Fatalf("err = %v, want ErrNoOrders", err)
	}
}
