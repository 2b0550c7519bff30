package fftlog

import (
	"errors"

	"github.com/cwbudde/algo-fftlog/dsp/fftlog/kernel"
)

// Errors returned by the transform engine. Every one of them is reported
// before any FFT plan or buffer is created and before outputs are written.
var (
	ErrOddLength       = errors.New("fftlog: grid length must be even")
	ErrShortGrid       = errors.New("fftlog: grid needs at least two points")
	ErrLengthMismatch  = errors.New("fftlog: buffer length mismatch")
	ErrNonPositiveGrid = errors.New("fftlog: grid values must be positive")
	ErrNoOrders        = errors.New("fftlog: no transform orders given")
	ErrInvalidConfig   = errors.New("fftlog: invalid configuration")
	ErrUnknownBackend  = errors.New("fftlog: unknown FFT backend")

	// ErrUnsupportedDerivative is kernel.ErrUnsupportedVariant, so either
	// sentinel matches with errors.Is.
	ErrUnsupportedDerivative = kernel.ErrUnsupportedVariant
)
