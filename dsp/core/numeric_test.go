package core

import "testing"

func TestClamp(t *testing.T) {
	cases := []struct {
		value, min, max, want float64
	}{
		{0.5, 0, 1, 0.5},
		{-0.5, 0, 1, 0},
		{1.5, 0, 1, 1},
		{0.5, 1, 0, 0.5}, // swapped bounds
		{2, 1, 0, 1},
	}

	for _, c := range cases {
		if got := Clamp(c.value, c.min, c.max); got != c.want {
			t.Fatalf("Clamp(%f, %f, %f) = %f, want %f", c.value, c.min, c.max, got, c.want)
		}
	}
}

func TestIsPowerOfTwo(t *testing.T) {
	for _, n := range []int{1, 2, 4, 256, 512, 2048, 1 << 20} {
		if !IsPowerOfTwo(n) {
			t.Fatalf("expected %d to be a power of two", n)
		}
	}

	for _, n := range []int{0, -1, -2, 3, 6, 511, 513, 1000} {
		if IsPowerOfTwo(n) {
			t.Fatalf("expected %d not to be a power of two", n)
		}
	}
}

func TestNextPowerOfTwo(t *testing.T) {
	cases := []struct{ in, want int }{
		{-5, 1},
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 4},
		{500, 512},
		{512, 512},
		{513, 1024},
	}

	for _, c := range cases {
		if got := NextPowerOfTwo(c.in); got != c.want {
			t.Fatalf("NextPowerOfTwo(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1, 1+1e-13, 1e-12) {
		t.Fatalf("expected values within eps to compare equal")
	}

	if NearlyEqual(1, 1.1, 1e-12) {
		t.Fatalf("expected distant values to compare unequal")
	}

	if !NearlyEqual(0, 0, 0) {
		t.Fatalf("expected zero comparison with default eps to succeed")
	}
}

func TestEnsureLen(t *testing.T) {
	buf := make([]float64, 0, 16)

	out := EnsureLen(buf, 8)
	if len(out) != 8 {
		t.Fatalf("expected len 8, got %d", len(out))
	}
	if cap(out) != 16 {
		t.Fatalf("expected capacity reuse, got cap %d", cap(out))
	}

	out = EnsureLen(buf, 32)
	if len(out) != 32 {
		t.Fatalf("expected len 32, got %d", len(out))
	}

	out = EnsureLen(buf, 0)
	if len(out) != 0 {
		t.Fatalf("expected empty slice, got len %d", len(out))
	}
}
