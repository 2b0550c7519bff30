package interp

import (
	"errors"
	"math"
	"testing"
)

func TestHermite4IdentityOnLinearRamp(t *testing.T) {
	xm1, x0, x1, x2 := -1.0, 0.0, 1.0, 2.0
	for _, tc := range []struct {
		t float64
		w float64
	}{
		{t: 0.0, w: 0.0},
		{t: 0.25, w: 0.25},
		{t: 0.5, w: 0.5},
		{t: 1.0, w: 1.0},
	} {
		got := Hermite4(tc.t, xm1, x0, x1, x2)
		if diff := got - tc.w; diff < -1e-12 || diff > 1e-12 {
			t.Fatalf("t=%v: got %v want %v", tc.t, got, tc.w)
		}
	}
}

func TestLinear2(t *testing.T) {
	if got := Linear2(0.25, 2, 4); got != 2.5 {
		t.Fatalf("Linear2 got %v want 2.5", got)
	}
}

func TestTableReproducesNodes(t *testing.T) {
	x := []float64{0.1, 0.3, 1, 2, 5, 40}
	y := []float64{3, -1, 0.5, 2, 2, 7}

	for _, mode := range []Mode{ModeLinear, ModeHermite} {
		tab, err := NewTable(x, y, mode)
		if err != nil {
			t.Fatalf("NewTable() error = %v", err)
		}
		for i := range x {
			if got := tab.At(x[i]); math.Abs(got-y[i]) > 1e-12 {
				t.Fatalf("mode %d: At(%v) = %v, want %v", mode, x[i], got, y[i])
			}
		}
	}
}

func TestTableLogLinearExact(t *testing.T) {
	// y = 3 + 2 ln x is linear in ln x, so both kernels are exact on a
	// log-uniform table.
	x := []float64{1e-2, 1e-1, 1, 1e1, 1e2}
	y := make([]float64, len(x))
	for i, v := range x {
		y[i] = 3 + 2*math.Log(v)
	}

	for _, mode := range []Mode{ModeLinear, ModeHermite} {
		tab, err := NewTable(x, y, mode)
		if err != nil {
			t.Fatalf("NewTable() error = %v", err)
		}

		probe := []float64{0.02, 0.5, 3, 70}
		got := make([]float64, len(probe))
		if err := tab.Resample(got, probe); err != nil {
			t.Fatalf("Resample() error = %v", err)
		}
		for i, p := range probe {
			if want := 3 + 2*math.Log(p); math.Abs(got[i]-want) > 1e-10 {
				t.Fatalf("mode %d: At(%v) = %v, want %v", mode, p, got[i], want)
			}
		}
	}
}

func TestTableOutOfRange(t *testing.T) {
	tab, err := NewTable([]float64{1, 2}, []float64{1, 2}, ModeHermite)
	if err != nil {
		t.Fatalf("NewTable() error = %v", err)
	}
	if !math.IsNaN(tab.At(0.5)) || !math.IsNaN(tab.At(3)) {
		t.Fatal("expected NaN outside the table")
	}
}

func TestNewTableErrors(t *testing.T) {
	tests := []struct {
		name string
		x, y []float64
		want error
	}{
		{name: "short", x: []float64{1}, y: []float64{1}, want: ErrTooShort},
		{name: "mismatch", x: []float64{1, 2}, y: []float64{1}, want: ErrLengthMismatch},
		{name: "zero", x: []float64{0, 1}, y: []float64{1, 1}, want: ErrNotIncreasing},
		{name: "decreasing", x: []float64{2, 1}, y: []float64{1, 1}, want: ErrNotIncreasing},
		{name: "repeated", x: []float64{1, 1}, y: []float64{1, 1}, want: ErrNotIncreasing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewTable(tt.x, tt.y, ModeLinear); !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestResampleLengthMismatch(t *testing.T) {
	tab, _ := NewTable([]float64{1, 2}, []float64{1, 2}, ModeLinear)
	if err := tab.Resample(make([]float64, 1), []float64{1, 2}); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("err = %v, want ErrLengthMismatch", err)
	}
}
