package spectral

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFFTSize indicates an analyzer size that is not a positive
	// power of two. This is a configuration error.
	ErrInvalidFFTSize = errors.New("fft size must be a power of two")

	// ErrFrameLength indicates a frame whose length does not match the
	// analyzer's configured size.
	ErrFrameLength = errors.New("frame length does not match analyzer size")
)

func validateSize(size int) error {
	if size <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidFFTSize, size)
	}
	if size&(size-1) != 0 {
		return fmt.Errorf("%w: %d", ErrInvalidFFTSize, size)
	}
	return nil
}

func validateSampleRate(sampleRate float64) error {
	if sampleRate <= 0 {
		return fmt.Errorf("sample rate must be > 0: %f", sampleRate)
	}
	return nil
}
