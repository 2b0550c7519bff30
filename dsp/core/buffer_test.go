package core

import "testing"

func TestCopyInto(t *testing.T) {
	dst := make([]float64, 2)

	n := CopyInto(dst, []float64{1, 2, 3})
	if n != 2 {
		t.Fatalf("n = %d, want 2", n)
	}

	if dst[0] != 1 || dst[1] != 2 {
		t.Fatalf("unexpected dst: %#v", dst)
	}
}

func TestCopyIntoShortSource(t *testing.T) {
	dst := []float64{9, 9, 9}

	if n := CopyInto(dst, []float64{1}); n != 1 {
		t.Fatalf("n = %d, want 1", n)
	}
	if dst[0] != 1 || dst[1] != 9 || dst[2] != 9 {
		t.Fatalf("unexpected dst: %#v", dst)
	}
}
