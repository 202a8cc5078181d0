package audio

import (
	"fmt"

	"github.com/cwbudde/algo-haptics/dsp/core"
)

// monoSource averages interleaved channels down to a single channel.
type monoSource struct {
	src Source
	tmp []float64
}

// DownmixMono wraps src so that ReadSamples yields mono samples. A source
// that is already mono is returned unchanged.
func DownmixMono(src Source) Source {
	if src.Channels() == 1 {
		return src
	}

	return &monoSource{src: src}
}

func (m *monoSource) SampleRate() int { return m.src.SampleRate() }
func (m *monoSource) Channels() int   { return 1 }

func (m *monoSource) Close() error {
	if err := m.src.Close(); err != nil {
		return fmt.Errorf("closing source: %w", err)
	}

	return nil
}

func (m *monoSource) ReadSamples(dst []float64) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	channels := m.src.Channels()
	m.tmp = core.EnsureLen(m.tmp, len(dst)*channels)

	n, err := m.src.ReadSamples(m.tmp)
	if n == 0 {
		return 0, err
	}

	frames := n / channels
	inv := 1 / float64(channels)

	for f := 0; f < frames; f++ {
		sum := 0.0
		for c := 0; c < channels; c++ {
			sum += m.tmp[f*channels+c]
		}
		dst[f] = sum * inv
	}

	return frames, err
}
