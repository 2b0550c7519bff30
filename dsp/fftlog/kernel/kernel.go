// Package kernel generates the complex Gamma-ratio kernels of the FFTLog
// method.
//
// For a bias exponent ν and angular frequency η the kernel of order ℓ is
//
//	g_ℓ(z) = 2^z · Γ((ℓ+z)/2) / Γ((3+ℓ−z)/2),   z = ν + iη,
//
// which is the Mellin transform of the spherical Bessel function j_ℓ. The
// derivative variants shift both Gamma arguments by one or two half-steps.
package kernel

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-fftlog/internal/gamma"
)

// Errors returned by kernel generation.
var (
	ErrUnsupportedVariant = errors.New("kernel: unsupported variant")
	ErrLengthMismatch     = errors.New("kernel: buffer length mismatch")
)

// Variant selects the kernel family.
type Variant int

const (
	// Plain is 2^z Γ((ℓ+z)/2) / Γ((3+ℓ−z)/2).
	Plain Variant = iota

	// FirstDerivative is 2^z Γ((ℓ+z−1)/2) / Γ((4+ℓ−z)/2).
	FirstDerivative

	// SecondDerivative is 2^z Γ((ℓ+z−2)/2) / Γ((5+ℓ−z)/2).
	SecondDerivative
)

// Valid reports whether v is one of the supported variants.
func (v Variant) Valid() bool {
	return v >= Plain && v <= SecondDerivative
}

// String returns a short name for the variant.
func (v Variant) String() string {
	switch v {
	case Plain:
		return "plain"
	case FirstDerivative:
		return "first-derivative"
	case SecondDerivative:
		return "second-derivative"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// shift is the number of half-steps both Gamma arguments move by.
func (v Variant) shift() float64 {
	return float64(v)
}

// Frequencies returns the n/2+1 non-negative angular frequencies
// η_m = 2πm / (n·dlnx) of an n-point grid with log spacing dlnx.
func Frequencies(n int, dlnx float64) []float64 {
	half := n / 2
	eta := make([]float64, half+1)
	step := 2 * math.Pi / dlnx / float64(n)
	for i := range eta {
		eta[i] = step * float64(i)
	}
	return eta
}

// New returns a freshly allocated kernel for order ell, bias nu and the
// frequencies eta.
func New(ell, nu float64, eta []float64, v Variant) ([]complex128, error) {
	if !v.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVariant, int(v))
	}

	dst := make([]complex128, len(eta))
	if err := Generate(dst, ell, nu, eta, v); err != nil {
		return nil, err
	}
	return dst, nil
}

// Generate writes the kernel for order ell, bias nu and frequencies eta into
// dst, which must have the same length as eta. Nothing is written when the
// variant is unsupported.
//
// The Gamma ratio is evaluated as exp(z·ln2 + lnΓ(a) − lnΓ(b)). Working in
// log space keeps the ratio finite at high frequencies where both Gamma
// values underflow individually.
func Generate(dst []complex128, ell, nu float64, eta []float64, v Variant) error {
	if !v.Valid() {
		return fmt.Errorf("%w: %d", ErrUnsupportedVariant, int(v))
	}
	if len(dst) != len(eta) {
		return fmt.Errorf("%w: dst %d, eta %d", ErrLengthMismatch, len(dst), len(eta))
	}

	s := v.shift()
	lowerOffset := complex(ell-s, 0)
	upperOffset := complex(3+s+ell, 0)

	for i, e := range eta {
		z := complex(nu, e)
		a := (lowerOffset + z) / 2
		b := (upperOffset - z) / 2
		dst[i] = cmplx.Exp(z*math.Ln2 + gamma.LogGamma(a) - gamma.LogGamma(b))
	}

	return nil
}
