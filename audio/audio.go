package audio

import (
	"errors"
	"fmt"
	"io"
)

// ErrNoAudio indicates a source that produced no samples, e.g. a container
// without an audio track or an empty stream.
var ErrNoAudio = errors.New("no audio samples available")

// Source is a finite stream of PCM samples.
type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (1 = mono, 2 = stereo).
	Channels() int
	// ReadSamples fills dst with interleaved samples in [-1, 1] and returns
	// the number of values written. io.EOF with n == 0 ends the stream.
	ReadSamples(dst []float64) (n int, err error)
	// Close releases decoder resources.
	Close() error
}

// Decoder constructs a Source from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// SampleBuffer is an immutable mono sample sequence with its sample rate.
//
// Duration is derived from the sample count unless explicitly overridden at
// construction.
type SampleBuffer struct {
	samples    []float64
	sampleRate float64
	duration   float64
}

// NewSampleBuffer creates a buffer holding the given samples. The slice is
// taken over by the buffer and must not be modified afterwards.
func NewSampleBuffer(samples []float64, sampleRate float64) (*SampleBuffer, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("sample rate must be > 0: %f", sampleRate)
	}

	return &SampleBuffer{
		samples:    samples,
		sampleRate: sampleRate,
		duration:   float64(len(samples)) / sampleRate,
	}, nil
}

// NewSampleBufferWithDuration creates a buffer with an explicit duration,
// for sources that report container duration independently of the decoded
// sample count.
func NewSampleBufferWithDuration(samples []float64, sampleRate, duration float64) (*SampleBuffer, error) {
	buf, err := NewSampleBuffer(samples, sampleRate)
	if err != nil {
		return nil, err
	}

	if duration > 0 {
		buf.duration = duration
	}

	return buf, nil
}

// Samples returns the underlying sample slice. Callers must treat it as
// read-only.
func (b *SampleBuffer) Samples() []float64 { return b.samples }

// SampleRate returns the sample rate in Hz.
func (b *SampleBuffer) SampleRate() float64 { return b.sampleRate }

// Duration returns the buffer duration in seconds.
func (b *SampleBuffer) Duration() float64 { return b.duration }

// Len returns the sample count.
func (b *SampleBuffer) Len() int { return len(b.samples) }

// ReadAll drains src into a mono SampleBuffer. Multi-channel sources are
// downmixed by averaging. A source that yields no samples fails with
// [ErrNoAudio].
func ReadAll(src Source) (*SampleBuffer, error) {
	if src.Channels() != 1 {
		src = DownmixMono(src)
	}

	var samples []float64
	buf := make([]float64, 8192)

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			samples = append(samples, buf[:n]...)
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading samples: %w", err)
		}
		if n == 0 {
			break
		}
	}

	if len(samples) == 0 {
		return nil, ErrNoAudio
	}

	return NewSampleBuffer(samples, float64(src.SampleRate()))
}
