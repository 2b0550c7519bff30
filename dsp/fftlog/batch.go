package fftlog

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// TransformOrders is a one-shot helper for Transformer.TransformOrders.
func TransformOrders(x, fx []float64, cfg Config, ells []float64) (y, fy [][]float64, err error) {
	t, err := New(WithConfig(cfg))
	if err != nil {
		return nil, nil, err
	}
	return t.TransformOrders(x, fx, ells)
}

// TransformOrders transforms fx for every order in ells. The forward FFT
// runs once and is shared; row j of y and fy equals Transform(x, fx, ells[j]).
func (t *Transformer) TransformOrders(x, fx, ells []float64) (y, fy [][]float64, err error) {
	if err := t.checkBatch(x, fx, ells); err != nil {
		return nil, nil, err
	}

	y = make([][]float64, len(ells))
	fy = make([][]float64, len(ells))
	for j := range ells {
		y[j] = make([]float64, len(x))
		fy[j] = make([]float64, len(x))
	}

	if err := t.TransformOrdersTo(y, fy, x, fx, ells); err != nil {
		return nil, nil, err
	}
	return y, fy, nil
}

// TransformOrdersTo is TransformOrders with caller-allocated rows. y and fy
// need len(ells) rows of len(x) values each.
func (t *Transformer) TransformOrdersTo(y, fy [][]float64, x, fx, ells []float64) error {
	if err := t.checkBatch(x, fx, ells); err != nil {
		return err
	}
	if len(y) != len(ells) || len(fy) != len(ells) {
		return fmt.Errorf("%w: %d/%d output rows for %d orders", ErrLengthMismatch, len(y), len(fy), len(ells))
	}
	for j := range ells {
		if len(y[j]) != len(x) || len(fy[j]) != len(x) {
			return fmt.Errorf("%w: row %d has %d/%d values, grid %d", ErrLengthMismatch, j, len(y[j]), len(fy[j]), len(x))
		}
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

	workers := min(t.workers, len(ells))
	if workers <= 1 {
		inv := t.newInverse(plan, len(xs))
		for j, ell := range ells {
			if err := fwd.emit(inv, y[j], fy[j], ell); err != nil {
				return fmt.Errorf("fftlog: order %g: %w", ell, err)
			}
		}
		return nil
	}

	var g errgroup.Group
	for w := range workers {
		g.Go(func() error {
			p := plan
			if w > 0 {
				var err error
				if p, err = t.backend.NewRealPlan(len(xs)); err != nil {
					return err
				}
			}

			inv := t.newInverse(p, len(xs))
			for j := w; j < len(ells); j += workers {
				if err := fwd.emit(inv, y[j], fy[j], ells[j]); err != nil {
					return fmt.Errorf("fftlog: order %g: %w", ells[j], err)
				}
			}
			return nil
		})
	}
	return g.Wait()
}

func (t *Transformer) checkBatch(x, fx, ells []float64) error {
	if len(ells) == 0 {
		return ErrNoOrders
	}
	return t.checkInput(x, fx)
}
