package fftlog

import (
	"fmt"
	"strings"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/dsp/fourier"
)

// RealPlan is a real-input FFT of fixed even length N.
//
// Forward maps N real samples to the N/2+1 non-negative frequency bins
// without scaling. Inverse maps N/2+1 bins back to N samples, treating the
// spectrum as Hermitian and scaling by 1/N, so Inverse(Forward(x)) == x.
// A plan keeps internal scratch and must not be used by two goroutines at
// once.
type RealPlan interface {
	Len() int
	Forward(dst []complex128, src []float64) error
	Inverse(dst []float64, src []complex128) error
}

// Backend creates real FFT plans.
type Backend interface {
	Name() string
	NewRealPlan(n int) (RealPlan, error)
}

// Backend names accepted by BackendByName.
const (
	BackendAuto    = "auto"
	BackendAlgoFFT = "algofft"
	BackendGonum   = "gonum"
)

// DefaultBackend returns the backend used when none is configured: algo-fft,
// falling back to gonum for lengths algo-fft cannot plan.
func DefaultBackend() Backend {
	return autoBackend{}
}

// AlgoFFT returns the github.com/MeKo-Christian/algo-fft backend.
func AlgoFFT() Backend {
	return algoFFTBackend{}
}

// Gonum returns the gonum.org/v1/gonum/dsp/fourier backend, which plans any
// even length.
func Gonum() Backend {
	return gonumBackend{}
}

// BackendByName resolves "auto", "algofft" or "gonum" (case-insensitive).
func BackendByName(name string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", BackendAuto:
		return DefaultBackend(), nil
	case BackendAlgoFFT, "algo-fft":
		return AlgoFFT(), nil
	case BackendGonum:
		return Gonum(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
}

func checkPlanLength(n int) error {
	if n < 2 {
		return fmt.Errorf("%w: %d", ErrShortGrid, n)
	}
	if n%2 != 0 {
		return fmt.Errorf("%w: %d", ErrOddLength, n)
	}
	return nil
}

type algoFFTBackend struct{}

func (algoFFTBackend) Name() string { return BackendAlgoFFT }

func (algoFFTBackend) NewRealPlan(n int) (RealPlan, error) {
	if err := checkPlanLength(n); err != nil {
		return nil, err
	}

	plan, err := algofft.NewPlanReal64WithOptions(n, algofft.PlanOptions{
		Planner: algofft.PlannerEstimate,
	})
	if err != nil {
		return nil, fmt.Errorf("fftlog: failed to create FFT plan: %w", err)
	}
	return plan, nil
}

type gonumBackend struct{}

func (gonumBackend) Name() string { return BackendGonum }

func (gonumBackend) NewRealPlan(n int) (RealPlan, error) {
	if err := checkPlanLength(n); err != nil {
		return nil, err
	}
	return &gonumPlan{n: n, fft: fourier.NewFFT(n)}, nil
}

type autoBackend struct{}

func (autoBackend) Name() string { return BackendAuto }

func (autoBackend) NewRealPlan(n int) (RealPlan, error) {
	if err := checkPlanLength(n); err != nil {
		return nil, err
	}
	if plan, err := (algoFFTBackend{}).NewRealPlan(n); err == nil {
		return plan, nil
	}
	return gonumBackend{}.NewRealPlan(n)
}

// gonumPlan adapts fourier.FFT, whose inverse is unnormalised, to RealPlan.
type gonumPlan struct {
	n   int
	fft *fourier.FFT
}

func (p *gonumPlan) Len() int { return p.n }

func (p *gonumPlan) Forward(dst []complex128, src []float64) error {
	if len(src) != p.n || len(dst) != p.n/2+1 {
		return fmt.Errorf("%w: src %d, dst %d for length %d", ErrLengthMismatch, len(src), len(dst), p.n)
	}
	p.fft.Coefficients(dst, src)
	return nil
}

func (p *gonumPlan) Inverse(dst []float64, src []complex128) error {
	if len(dst) != p.n || len(src) != p.n/2+1 {
		return fmt.Errorf("%w: src %d, dst %d for length %d", ErrLengthMismatch, len(src), len(dst), p.n)
	}
	p.fft.Sequence(dst, src)
	vecmath.ScaleBlockInPlace(dst, 1/float64(p.n))
	return nil
}
