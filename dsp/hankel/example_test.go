package hankel_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-fftlog/dsp/fftlog"
	"github.com/cwbudde/algo-fftlog/dsp/hankel"
	"github.com/cwbudde/algo-fftlog/dsp/loggrid"
)

func ExampleTransform() {
	// ∫ x^(−1/2) J₀(xy) dx = Γ(1/4)/(√2 Γ(3/4)) · y^(−1/2)
	x, _ := loggrid.LogSpace(1e-3, 1e3, 64)
	fx := make([]float64, len(x))
	for i, v := range x {
		fx[i] = math.Sqrt(v)
	}

	y, fy, err := hankel.Transform(x, fx, 0, fftlog.WithNu(1))
	if err != nil {
		fmt.Println(err)
		return
	}

	c := math.Gamma(0.25) / (math.Sqrt2 * math.Gamma(0.75))
	fmt.Printf("%.6f\n", fy[10]*math.Sqrt(y[10])/c)

	// Output:
	// 1.000000
}
