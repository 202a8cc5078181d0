package series

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// ErrEmptySeries indicates a zero-length source sequence where at least one
// value was required.
var ErrEmptySeries = errors.New("series must not be empty")

// Resample maps src onto target values via linear interpolation over the
// normalized index mapping i*(len(src)-1)/(target-1).
//
// The endpoints are reproduced exactly: out[0] == src[0] and
// out[target-1] == src[len(src)-1]. A target of 1 yields src[0]. Resampling
// to the source length returns an equal copy. An empty src fails with
// [ErrEmptySeries]; a target below 1 is invalid.
func Resample(src []float64, target int) ([]float64, error) {
	if len(src) == 0 {
		return nil, fmt.Errorf("resample: %w", ErrEmptySeries)
	}
	if target < 1 {
		return nil, fmt.Errorf("resample: target length must be >= 1: %d", target)
	}

	out := make([]float64, target)
	if target == 1 || len(src) == 1 {
		// Constant extension; a single query point maps to src[0].
		for i := range out {
			out[i] = src[0]
		}
		return out, nil
	}

	step := float64(len(src)-1) / float64(target-1)
	last := len(src) - 1

	// The endpoints are assigned directly: i*(S-1)/(T-1) can round just
	// below S-1 at i = T-1, which would interpolate instead of hitting the
	// last source value exactly.
	out[0] = src[0]
	out[target-1] = src[last]

	for i := 1; i < target-1; i++ {
		pos := float64(i) * step
		j := int(pos)
		if j >= last {
			out[i] = src[last]
			continue
		}

		frac := pos - float64(j)
		out[i] = src[j] + frac*(src[j+1]-src[j])
	}

	return out, nil
}

// Smooth applies a centered moving average of the given window size.
//
// The window shrinks at the sequence boundaries; there is no wraparound and
// no zero padding. Even window sizes are rounded up to the next odd value.
// This is a single-pass filter: smoothing an already smoothed sequence
// changes it further. An empty src yields an empty result.
func Smooth(src []float64, windowSize int) []float64 {
	if len(src) == 0 {
		return nil
	}
	if windowSize < 1 {
		windowSize = 1
	}
	if windowSize%2 == 0 {
		windowSize++
	}

	half := windowSize / 2
	out := make([]float64, len(src))

	for i := range src {
		lo := i - half
		if lo < 0 {
			lo = 0
		}
		hi := i + half
		if hi > len(src)-1 {
			hi = len(src) - 1
		}

		out[i] = vecmath.Sum(src[lo:hi+1]) / float64(hi-lo+1)
	}

	return out
}

// Mean returns the arithmetic mean of src, or 0 for an empty sequence.
func Mean(src []float64) float64 {
	if len(src) == 0 {
		return 0
	}

	return vecmath.Sum(src) / float64(len(src))
}

// StdDev returns the population standard deviation of src (divide by N),
// or 0 for an empty sequence.
func StdDev(src []float64) float64 {
	n := len(src)
	if n == 0 {
		return 0
	}

	mean := Mean(src)
	sumSq := vecmath.DotProduct(src, src)

	variance := sumSq/float64(n) - mean*mean
	if variance < 0 {
		// Guard against negative rounding residue.
		variance = 0
	}

	return math.Sqrt(variance)
}

// Max returns the largest value in src, or 0 for an empty sequence.
func Max(src []float64) float64 {
	if len(src) == 0 {
		return 0
	}

	max := src[0]
	for _, v := range src[1:] {
		if v > max {
			max = v
		}
	}

	return max
}
