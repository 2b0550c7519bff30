package window

import "fmt"

func ExampleCoefficients() {
	w, _ := Coefficients(4, 0.5)
	fmt.Printf("%.2f %.2f %.2f %.2f %.2f\n", w[0], w[1], w[2], w[3], w[4])
	// Output:
	// 1.00 1.00 1.00 0.50 0.00
}

func ExampleApplySpectrum() {
	spec := []complex128{2, 2, 2, 2, 2}
	_ = ApplySpectrum(spec, 0)
	fmt.Println(real(spec[0]), real(spec[3]), real(spec[4]))
	// Output:
	// 2 2 0
}
