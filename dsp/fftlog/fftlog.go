package fftlog

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-fftlog/dsp/core"
	"github.com/cwbudde/algo-fftlog/dsp/fftlog/kernel"
	"github.com/cwbudde/algo-fftlog/dsp/loggrid"
	"github.com/cwbudde/algo-fftlog/dsp/window"
)

// Transformer computes FFTLog transforms with a fixed configuration.
//
// A Transformer only holds immutable settings; every call creates and owns
// its own plans and buffers, so one Transformer may be shared by several
// goroutines.
type Transformer struct {
	cfg     Config
	backend Backend
	workers int
}

// New returns a Transformer configured by opts on top of DefaultConfig.
func New(opts ...Option) (*Transformer, error) {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	if err := o.cfg.Validate(); err != nil {
		return nil, err
	}

	return &Transformer{
		cfg:     o.cfg,
		backend: o.backend,
		workers: o.workers,
	}, nil
}

// Config returns the transformer's configuration.
func (t *Transformer) Config() Config {
	return t.cfg
}

// Backend returns the FFT backend in use.
func (t *Transformer) Backend() Backend {
	return t.backend
}

// Transform is a one-shot helper for Transformer.Transform.
func Transform(x, fx []float64, cfg Config, ell float64) (y, fy []float64, err error) {
	t, err := New(WithConfig(cfg))
	if err != nil {
		return nil, nil, err
	}
	return t.Transform(x, fx, ell)
}

// Transform computes F(y) = ∫ dx/x f(x) K_ℓ(xy) for one order ell, where
// K_ℓ is the spherical Bessel function j_ℓ for the plain kernel. x must be
// log spaced with an even number of points; the returned y grid is
// y[i] = (ell+1)/x[N-1-i].
func (t *Transformer) Transform(x, fx []float64, ell float64) (y, fy []float64, err error) {
	if err := t.checkInput(x, fx); err != nil {
		return nil, nil, err
	}

	y = make([]float64, len(x))
	fy = make([]float64, len(x))
	if err := t.TransformTo(y, fy, x, fx, ell); err != nil {
		return nil, nil, err
	}
	return y, fy, nil
}

// TransformTo is Transform with caller-allocated outputs of length len(x).
// Nothing is written to y or fy when the input is rejected.
func (t *Transformer) TransformTo(y, fy, x, fx []float64, ell float64) error {
	if err := t.checkInput(x, fx); err != nil {
		return err
	}
	if len(y) != len(x) || len(fy) != len(x) {
		return fmt.Errorf("%w: outputs %d/%d, grid %d", ErrLengthMismatch, len(y), len(fy), len(x))
	}

	xs, fxs, err := t.extend(x, fx)
	if err != nil {
		return err
	}

	plan, err := t.backend.NewRealPlan(len(xs))
	if err != nil {
		return err
	}

	fwd, err := t.analyze(plan, xs, fxs)
	if err != nil {
		return err
	}

	return fwd.emit(t.newInverse(plan, len(xs)), y, fy, ell)
}

// checkInput validates the caller's grid. With extrapolation configured the
// parity check applies to the extended grid.
func (t *Transformer) checkInput(x, fx []float64) error {
	if len(x) != len(fx) {
		return fmt.Errorf("%w: x %d, fx %d", ErrLengthMismatch, len(x), len(fx))
	}
	if len(x) < 2 {
		return fmt.Errorf("%w: %d", ErrShortGrid, len(x))
	}
	if total := len(x) + t.cfg.ExtrapLow + t.cfg.ExtrapHigh; total%2 != 0 {
		return fmt.Errorf("%w: %d", ErrOddLength, total)
	}
	if !(x[0] > 0) || !(x[1] > 0) {
		return fmt.Errorf("%w: x[0]=%g, x[1]=%g", ErrNonPositiveGrid, x[0], x[1])
	}
	return nil
}

// extend applies the configured extrapolation; without it x and fx are
// returned unchanged.
func (t *Transformer) extend(x, fx []float64) ([]float64, []float64, error) {
	low, high := t.cfg.ExtrapLow, t.cfg.ExtrapHigh
	if low == 0 && high == 0 {
		return x, fx, nil
	}

	xs, err := loggrid.Extrapolate(x, low, high)
	if err != nil {
		return nil, nil, fmt.Errorf("fftlog: extrapolating grid: %w", err)
	}
	fxs, err := loggrid.Extrapolate(fx, low, high)
	if err != nil {
		return nil, nil, fmt.Errorf("fftlog: extrapolating values: %w", err)
	}
	return xs, fxs, nil
}

// spectrum is the windowed forward FFT of the biased input. It is computed
// once per call and only read afterwards, so all orders of a batch share it.
type spectrum struct {
	x       []float64
	eta     []float64
	coeffs  []complex128
	nu      float64
	variant kernel.Variant

	// trim bounds of the caller's points inside the extended grid
	low, high int
}

// analyze biases fx by x^-ν, runs the forward FFT and applies the window.
func (t *Transformer) analyze(plan RealPlan, x, fx []float64) (*spectrum, error) {
	n := len(x)
	dlnx := math.Log(x[1] / x[0])

	bias := make([]float64, n)
	for i, v := range x {
		bias[i] = 1 / math.Pow(v, t.cfg.Nu)
	}
	vecmath.MulBlockInPlace(bias, fx)

	coeffs := make([]complex128, n/2+1)
	if err := plan.Forward(coeffs, bias); err != nil {
		return nil, fmt.Errorf("fftlog: forward FFT failed: %w", err)
	}

	if err := window.ApplySpectrum(coeffs, t.cfg.WindowWidth); err != nil {
		return nil, fmt.Errorf("fftlog: %w", err)
	}

	return &spectrum{
		x:       x,
		eta:     kernel.Frequencies(n, dlnx),
		coeffs:  coeffs,
		nu:      t.cfg.Nu,
		variant: t.cfg.Derivative,
		low:     t.cfg.ExtrapLow,
		high:    t.cfg.ExtrapHigh,
	}, nil
}

// inverse is the per-order plan and scratch. Each goroutine owns one.
type inverse struct {
	plan  RealPlan
	gl    []complex128
	spec  []complex128
	seq   []float64
	scale []float64

	// full-length outputs, only used when the result is trimmed
	yFull  []float64
	fyFull []float64
}

func (t *Transformer) newInverse(plan RealPlan, n int) *inverse {
	inv := &inverse{
		plan:  plan,
		gl:    make([]complex128, n/2+1),
		spec:  make([]complex128, n/2+1),
		seq:   make([]float64, n),
		scale: make([]float64, n),
	}
	if t.cfg.ExtrapLow > 0 || t.cfg.ExtrapHigh > 0 {
		inv.yFull = make([]float64, n)
		inv.fyFull = make([]float64, n)
	}
	return inv
}

// emit transforms one order into y and fy, trimming extrapolated points.
func (s *spectrum) emit(inv *inverse, y, fy []float64, ell float64) error {
	if s.low == 0 && s.high == 0 {
		return s.order(inv, y, fy, ell)
	}

	if err := s.order(inv, inv.yFull, inv.fyFull, ell); err != nil {
		return err
	}

	// y is reversed relative to x: the high padding comes first.
	end := len(s.x) - s.low
	core.CopyInto(y, inv.yFull[s.high:end])
	core.CopyInto(fy, inv.fyFull[s.high:end])
	return nil
}

const sqrtPiOver4 = math.SqrtPi / 4

// order runs the per-order half of the transform: kernel, phase shift,
// inverse FFT and rescale. y and fy have the full grid length.
func (s *spectrum) order(inv *inverse, y, fy []float64, ell float64) error {
	loggrid.Reciprocal(y, s.x, ell)

	if err := kernel.Generate(inv.gl, ell, s.nu, s.eta, s.variant); err != nil {
		return fmt.Errorf("fftlog: %w", err)
	}

	// (x0·y0)^(-iη) is a pure phase since x0·y0 > 0.
	lnx0y0 := math.Log(s.x[0] * y[0])
	for i, c := range s.coeffs {
		phase := cmplx.Exp(complex(0, -s.eta[i]*lnx0y0))
		inv.spec[i] = cmplx.Conj(c * phase * inv.gl[i])
	}

	// A complex-to-real inverse only sees the real part of the DC and
	// Nyquist bins.
	half := len(inv.spec) - 1
	inv.spec[0] = complex(real(inv.spec[0]), 0)
	inv.spec[half] = complex(real(inv.spec[half]), 0)

	if err := inv.plan.Inverse(inv.seq, inv.spec); err != nil {
		return fmt.Errorf("fftlog: inverse FFT failed: %w", err)
	}

	// The inverse is already divided by N, so the √π/(4N) of an
	// unnormalised transform becomes √π/4.
	for i, v := range y {
		inv.scale[i] = sqrtPiOver4 / math.Pow(v, s.nu)
	}
	vecmath.MulBlock(fy, inv.seq, inv.scale)

	return nil
}
