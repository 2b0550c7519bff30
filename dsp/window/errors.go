package window

import (
	"errors"
	"fmt"
	"math"
)

var errEmptySpectrum = errors.New("window: spectrum must hold at least the DC and Nyquist bins")

func validateWidth(width float64) error {
	if math.IsNaN(width) || width < 0 || width > 1 {
		return fmt.Errorf("window: width must be in [0,1]: %f", width)
	}
	return nil
}

func validateHalf(halfN int) error {
	if halfN < 1 {
		return fmt.Errorf("window: half length must be > 0: %d", halfN)
	}
	return nil
}
