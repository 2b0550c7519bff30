// Package window implements the one-sided spectral taper applied to FFTLog
// coefficients before the kernel multiply.
//
// The taper follows Eq. (C1) of McEwen et al. (2016): the top fraction of a
// half spectrum (bins 0..N/2) is multiplied by
//
//	W(i) = i/Ncut − sin(2πi/Ncut)/(2π),   i = 0..Ncut,
//
// at bin N/2−i. W rises smoothly from 0 at the Nyquist bin to 1 at the edge
// of the tapered region; lower bins are left untouched.
package window

import "math"

// Cut returns the number of tapered bins, floor(halfN·width).
func Cut(halfN int, width float64) int {
	if halfN <= 0 || width <= 0 {
		return 0
	}
	return int(float64(halfN) * width)
}

// Taper returns W(i) for a cut of ncut bins. A zero cut yields 0, so the
// Nyquist bin is still removed.
func Taper(i, ncut int) float64 {
	if ncut <= 0 {
		return 0
	}

	theta := float64(i) / float64(ncut)

	return theta - math.Sin(2*math.Pi*theta)/(2*math.Pi)
}

// Coefficients returns the per-bin multipliers for a half spectrum of
// halfN+1 bins: 1 below the tapered tail, W(i) at bin halfN−i.
func Coefficients(halfN int, width float64) ([]float64, error) {
	if err := validateHalf(halfN); err != nil {
		return nil, err
	}
	if err := validateWidth(width); err != nil {
		return nil, err
	}

	coeffs := make([]float64, halfN+1)
	for i := range coeffs {
		coeffs[i] = 1
	}

	ncut := Cut(halfN, width)
	for i := 0; i <= ncut; i++ {
		coeffs[halfN-i] = Taper(i, ncut)
	}

	return coeffs, nil
}

// ApplySpectrum tapers spec in place. spec holds the non-negative frequency
// half of a real FFT, so len(spec) = N/2+1.
func ApplySpectrum(spec []complex128, width float64) error {
	if len(spec) < 2 {
		return errEmptySpectrum
	}
	if err := validateWidth(width); err != nil {
		return err
	}

	halfN := len(spec) - 1
	ncut := Cut(halfN, width)

	if ncut == 0 {
		spec[halfN] = 0
		return nil
	}

	for i := 0; i <= ncut; i++ {
		spec[halfN-i] *= complex(Taper(i, ncut), 0)
	}

	return nil
}
