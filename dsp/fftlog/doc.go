// Package fftlog computes Hankel-type transforms of functions sampled on
// logarithmic grids.
//
// Given N log-spaced points x_i and values f(x_i), the transform
//
//	F(y) = ∫₀^∞ dx/x · f(x) · j_ℓ(xy)
//
// is evaluated on the reciprocal grid y_i = (ℓ+1)/x_{N−1−i} with one real
// FFT, one kernel multiply and one inverse real FFT (Hamilton 2000; McEwen et
// al. 2016). The kernel for j_ℓ and its first two derivative variants lives
// in package kernel; the spectral taper lives in package window.
//
// # Usage
//
// For one-shot transforms, use the package-level helpers:
//
//	y, fy, err := fftlog.Transform(x, fx, fftlog.DefaultConfig(), 0)
//	ys, fys, err := fftlog.TransformOrders(x, fx, cfg, []float64{0, 1, 2})
//
// For repeated transforms with the same settings, build a Transformer:
//
//	t, err := fftlog.New(
//		fftlog.WithNu(1.01),
//		fftlog.WithWindowWidth(0.2),
//		fftlog.WithParallel(4),
//	)
//	ys, fys, err := t.TransformOrders(x, fx, ells)
//
// # Bias exponent
//
// The input is divided by x^ν before the forward FFT and the output by y^ν
// afterwards. ν shifts the Mellin contour and must lie inside the strip
// −ℓ < ν < 2 for the integral to converge; ν = 1.5 works for most smooth
// inputs. Power laws f ∝ x^ν are transformed exactly up to the window.
//
// # Window
//
// WindowWidth tapers that fraction of the half spectrum, counted from the
// Nyquist bin, with W(i) = i/Ncut − sin(2πi/Ncut)/(2π). A width of 0 only
// removes the Nyquist bin.
//
// # Extrapolation
//
// Inputs that are truncated abruptly ring after the transform. With
// WithExtrapolation(low, high) the grid and values are extended log-linearly
// by low points below x[0] and high points above x[N-1]; the result is
// trimmed back to the caller's N points. len(x)+low+high must be even.
//
// # Batches and concurrency
//
// TransformOrders shares the forward FFT and windowed spectrum between all
// orders. With WithParallel(n) the orders are split over n goroutines, each
// owning its own inverse plan and scratch; rows are written disjointly so
// the output equals the sequential result. A Transformer holds no mutable
// state and may be used from several goroutines.
//
// # FFT backends
//
// The default backend plans with github.com/MeKo-Christian/algo-fft and
// falls back to gonum.org/v1/gonum/dsp/fourier when algo-fft rejects a
// length. Both are normalised so that Inverse(Forward(x)) == x; select one
// explicitly with WithBackend or BackendByName.
package fftlog
