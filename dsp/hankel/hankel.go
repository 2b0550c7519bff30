// Package hankel computes cylindrical Hankel transforms
//
//	F(y) = ∫₀^∞ dx/x · f(x) · J_n(xy)
//
// on logarithmic grids. It reuses the spherical-Bessel engine of package
// fftlog through j_{n−½}(z) = √(π/(2z)) · J_n(z): the input is multiplied by
// √x, transformed with order n−½, and the result multiplied by √(2y/π).
//
// The output grid is y[i] = (n+½)/x[N-1-i]. The bias ν should satisfy
// ½−n < ν < 2.
package hankel

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-fftlog/dsp/fftlog"
)

// Transformer computes Hankel transforms with fixed engine settings.
type Transformer struct {
	engine *fftlog.Transformer
}

// New returns a Transformer. The options are those of fftlog.New.
func New(opts ...fftlog.Option) (*Transformer, error) {
	engine, err := fftlog.New(opts...)
	if err != nil {
		return nil, err
	}
	return &Transformer{engine: engine}, nil
}

// Transform is a one-shot helper for Transformer.Transform.
func Transform(x, fx []float64, n float64, opts ...fftlog.Option) (y, fy []float64, err error) {
	t, err := New(opts...)
	if err != nil {
		return nil, nil, err
	}
	return t.Transform(x, fx, n)
}

// TransformOrders is a one-shot helper for Transformer.TransformOrders.
func TransformOrders(x, fx, ns []float64, opts ...fftlog.Option) (y, fy [][]float64, err error) {
	t, err := New(opts...)
	if err != nil {
		return nil, nil, err
	}
	return t.TransformOrders(x, fx, ns)
}

// Transform computes the order-n Hankel transform of fx.
func (t *Transformer) Transform(x, fx []float64, n float64) (y, fy []float64, err error) {
	in, err := weight(x, fx)
	if err != nil {
		return nil, nil, err
	}

	y, fy, err = t.engine.Transform(x, in, n-0.5)
	if err != nil {
		return nil, nil, err
	}

	unweight(y, fy)
	return y, fy, nil
}

// TransformOrders computes the Hankel transform of fx for every order in ns,
// sharing one forward FFT.
func (t *Transformer) TransformOrders(x, fx, ns []float64) (y, fy [][]float64, err error) {
	in, err := weight(x, fx)
	if err != nil {
		return nil, nil, err
	}

	ells := make([]float64, len(ns))
	for j, n := range ns {
		ells[j] = n - 0.5
	}

	y, fy, err = t.engine.TransformOrders(x, in, ells)
	if err != nil {
		return nil, nil, err
	}

	for j := range y {
		unweight(y[j], fy[j])
	}
	return y, fy, nil
}

// weight returns √x·fx.
func weight(x, fx []float64) ([]float64, error) {
	if len(x) != len(fx) {
		return nil, fmt.Errorf("hankel: %w: x %d, fx %d", fftlog.ErrLengthMismatch, len(x), len(fx))
	}

	in := make([]float64, len(x))
	for i, v := range x {
		in[i] = math.Sqrt(v)
	}
	vecmath.MulBlockInPlace(in, fx)
	return in, nil
}

// unweight multiplies fy by √(2y/π) in place.
func unweight(y, fy []float64) {
	scale := make([]float64, len(y))
	for i, v := range y {
		scale[i] = math.Sqrt(2 * v / math.Pi)
	}
	vecmath.MulBlockInPlace(fy, scale)
}
