package fftlog

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-fftlog/dsp/fftlog/kernel"
)

// Config holds the numerical settings of a transform.
type Config struct {
	// Nu is the bias exponent: the input is divided by x^Nu before the
	// forward FFT and the output by y^Nu after the inverse FFT.
	Nu float64

	// WindowWidth is the fraction of the half spectrum, counted from the
	// Nyquist bin, that is tapered. Must be in [0,1].
	WindowWidth float64

	// Derivative selects the kernel variant.
	Derivative kernel.Variant

	// NPad is reserved for zero padding and is not used by the transform.
	NPad int

	// ExtrapLow and ExtrapHigh extend the input below x[0] and above
	// x[N-1] by log-linear extrapolation before transforming. Outputs are
	// trimmed back to the caller's N points.
	ExtrapLow  int
	ExtrapHigh int
}

// DefaultConfig returns ν = 1.5, a 25% window and the plain kernel.
func DefaultConfig() Config {
	return Config{
		Nu:          1.5,
		WindowWidth: 0.25,
		Derivative:  kernel.Plain,
	}
}

// Validate reports the first invalid field of c.
func (c Config) Validate() error {
	if !c.Derivative.Valid() {
		return fmt.Errorf("%w: derivative %d (choose 0, 1 or 2)", ErrUnsupportedDerivative, int(c.Derivative))
	}
	if math.IsNaN(c.WindowWidth) || c.WindowWidth < 0 || c.WindowWidth > 1 {
		return fmt.Errorf("%w: window width must be in [0,1]: %f", ErrInvalidConfig, c.WindowWidth)
	}
	if math.IsNaN(c.Nu) || math.IsInf(c.Nu, 0) {
		return fmt.Errorf("%w: nu must be finite: %f", ErrInvalidConfig, c.Nu)
	}
	if c.NPad < 0 {
		return fmt.Errorf("%w: padding must be >= 0: %d", ErrInvalidConfig, c.NPad)
	}
	if c.ExtrapLow < 0 || c.ExtrapHigh < 0 {
		return fmt.Errorf("%w: extrapolation counts must be >= 0: %d, %d", ErrInvalidConfig, c.ExtrapLow, c.ExtrapHigh)
	}
	return nil
}

// Option configures a Transformer.
type Option func(*options)

type options struct {
	cfg     Config
	backend Backend
	workers int
}

func defaultOptions() options {
	return options{
		cfg:     DefaultConfig(),
		backend: DefaultBackend(),
		workers: 1,
	}
}

// WithConfig replaces the whole numerical configuration.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		o.cfg = cfg
	}
}

// WithNu sets the bias exponent.
func WithNu(nu float64) Option {
	return func(o *options) {
		o.cfg.Nu = nu
	}
}

// WithWindowWidth sets the tapered fraction of the spectrum.
func WithWindowWidth(width float64) Option {
	return func(o *options) {
		o.cfg.WindowWidth = width
	}
}

// WithDerivative selects the kernel variant.
func WithDerivative(v kernel.Variant) Option {
	return func(o *options) {
		o.cfg.Derivative = v
	}
}

// WithPadding records the reserved zero-padding length.
func WithPadding(n int) Option {
	return func(o *options) {
		o.cfg.NPad = n
	}
}

// WithExtrapolation pads the input with low points below and high points
// above the grid before transforming.
func WithExtrapolation(low, high int) Option {
	return func(o *options) {
		o.cfg.ExtrapLow = low
		o.cfg.ExtrapHigh = high
	}
}

// WithBackend selects the FFT implementation. A nil backend is ignored.
func WithBackend(b Backend) Option {
	return func(o *options) {
		if b != nil {
			o.backend = b
		}
	}
}

// WithParallel transforms the orders of a batched call on up to workers
// goroutines, each with its own inverse plan. Values below 1 are ignored.
func WithParallel(workers int) Option {
	return func(o *options) {
		if workers > 0 {
			o.workers = workers
		}
	}
}
