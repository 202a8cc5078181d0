package frame

import (
	"fmt"

	"github.com/cwbudde/algo-haptics/dsp/core"
	"github.com/cwbudde/algo-haptics/dsp/window"
)

// Count returns the number of complete non-overlapping frames of the given
// length contained in sampleCount samples. Trailing samples that do not fill
// a complete frame are not counted.
func Count(sampleCount, length int) int {
	if sampleCount <= 0 || length <= 0 {
		return 0
	}

	return sampleCount / length
}

// Split slices samples into consecutive non-overlapping frames of the given
// length and applies the window to each frame.
//
// The input is never modified; frames are backed by freshly allocated memory.
// An empty input yields zero frames and no error. A length that is not a
// power of two, or that exceeds a non-empty input, fails with
// [ErrInvalidFrameSize].
func Split(samples []float64, length int, t window.Type) ([][]float64, error) {
	if !core.IsPowerOfTwo(length) {
		return nil, fmt.Errorf("%w: frame length must be a power of two: %d", ErrInvalidFrameSize, length)
	}

	if len(samples) == 0 {
		return nil, nil
	}

	if length > len(samples) {
		return nil, fmt.Errorf("%w: frame length %d exceeds %d available samples",
			ErrInvalidFrameSize, length, len(samples))
	}

	count := Count(len(samples), length)
	coeffs := window.Generate(t, length)

	// One backing slab keeps the frames contiguous and cuts allocations.
	slab := make([]float64, count*length)
	frames := make([][]float64, count)

	for i := range frames {
		dst := slab[i*length : (i+1)*length]
		src := samples[i*length : (i+1)*length]

		copy(dst, src)

		if err := window.ApplyCoefficientsInPlace(dst, coeffs); err != nil {
			return nil, fmt.Errorf("frame windowing: %w", err)
		}

		frames[i] = dst
	}

	return frames, nil
}
