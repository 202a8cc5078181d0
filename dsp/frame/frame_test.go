package frame

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-haptics/dsp/window"
)

func TestCount(t *testing.T) {
	cases := []struct{ samples, length, want int }{
		{0, 512, 0},
		{511, 512, 0},
		{512, 512, 1},
		{1023, 512, 1},
		{1024, 512, 2},
		{44100, 512, 86},
		{100, 0, 0},
	}

	for _, c := range cases {
		if got := Count(c.samples, c.length); got != c.want {
			t.Fatalf("Count(%d, %d) = %d, want %d", c.samples, c.length, got, c.want)
		}
	}
}

func TestSplitEmptyInput(t *testing.T) {
	frames, err := Split(nil, 512, window.TypeHann)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(frames) != 0 {
		t.Fatalf("expected zero frames, got %d", len(frames))
	}
}

func TestSplitInvalidLength(t *testing.T) {
	samples := make([]float64, 1024)

	for _, length := range []int{0, -1, 3, 500, 1000} {
		_, err := Split(samples, length, window.TypeHann)
		if !errors.Is(err, ErrInvalidFrameSize) {
			t.Fatalf("expected ErrInvalidFrameSize for length %d, got %v", length, err)
		}
	}
}

func TestSplitFrameLargerThanInput(t *testing.T) {
	_, err := Split(make([]float64, 100), 512, window.TypeHann)
	if !errors.Is(err, ErrInvalidFrameSize) {
		t.Fatalf("expected ErrInvalidFrameSize, got %v", err)
	}
}

func TestSplitDropsTrailingRemainder(t *testing.T) {
	samples := make([]float64, 5*256+100)

	frames, err := Split(samples, 256, window.TypeRectangular)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(frames) != 5 {
		t.Fatalf("expected 5 frames, got %d", len(frames))
	}

	for i, f := range frames {
		if len(f) != 256 {
			t.Fatalf("frame %d has length %d, want 256", i, len(f))
		}
	}
}

func TestSplitAppliesWindow(t *testing.T) {
	samples := make([]float64, 128)
	for i := range samples {
		samples[i] = 1
	}

	frames, err := Split(samples, 64, window.TypeHann)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := window.Generate(window.TypeHann, 64)
	for fi, f := range frames {
		for i := range f {
			if math.Abs(f[i]-want[i]) > 1e-12 {
				t.Fatalf("frame %d sample %d = %g, want %g", fi, i, f[i], want[i])
			}
		}
	}
}

func TestSplitDoesNotMutateInput(t *testing.T) {
	samples := make([]float64, 512)
	for i := range samples {
		samples[i] = float64(i)
	}

	if _, err := Split(samples, 256, window.TypeHann); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := range samples {
		if samples[i] != float64(i) {
			t.Fatalf("input mutated at %d: %g", i, samples[i])
		}
	}
}
