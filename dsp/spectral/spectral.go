package spectral

import (
	"fmt"
	"math"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

const defaultRolloffFraction = 0.85

// Frame holds the per-analysis-frame scalar features.
//
// RMS is computed over the windowed time-domain frame. DominantFreq,
// Centroid and Spread are in Hz; Rolloff is the fraction of the one-sided
// spectrum below which RolloffFraction of the energy lies, in [0, 1].
type Frame struct {
	RMS          float64
	DominantFreq float64
	Rolloff      float64
	Centroid     float64
	Spread       float64
}

// Series holds feature sequences in frame order, one value per analysis
// frame. All slices share the same length.
type Series struct {
	RMS          []float64
	DominantFreq []float64
	Rolloff      []float64
	Centroid     []float64
	Spread       []float64
}

// Len returns the number of analysis frames in the series.
func (s *Series) Len() int {
	if s == nil {
		return 0
	}
	return len(s.RMS)
}

func newSeries(n int) *Series {
	return &Series{
		RMS:          make([]float64, n),
		DominantFreq: make([]float64, n),
		Rolloff:      make([]float64, n),
		Centroid:     make([]float64, n),
		Spread:       make([]float64, n),
	}
}

func (s *Series) set(i int, f Frame) {
	s.RMS[i] = f.RMS
	s.DominantFreq[i] = f.DominantFreq
	s.Rolloff[i] = f.Rolloff
	s.Centroid[i] = f.Centroid
	s.Spread[i] = f.Spread
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithRolloffFraction sets the cumulative energy fraction for the rolloff
// feature. Values outside (0, 1] are ignored.
func WithRolloffFraction(fraction float64) Option {
	return func(a *Analyzer) {
		if fraction > 0 && fraction <= 1 {
			a.rolloffFraction = fraction
		}
	}
}

// WithParallelism sets the number of worker goroutines used by [Analyzer.Analyze].
// Values below 2 keep the analysis sequential.
func WithParallelism(workers int) Option {
	return func(a *Analyzer) {
		if workers > 0 {
			a.parallelism = workers
		}
	}
}

// Analyzer computes spectral features for fixed-size windowed frames.
//
// The analyzer owns an FFT plan and scratch buffers sized for its frame
// length; they are allocated once in [New] and reused across frames.
// An Analyzer is not safe for concurrent use; [Analyzer.Analyze] with
// parallelism enabled coordinates worker-local state internally.
type Analyzer struct {
	size            int
	sampleRate      float64
	rolloffFraction float64
	parallelism     int

	plan *algofft.Plan[complex128]
	in   []complex128
	out  []complex128
	pow  []float64
}

// New creates an analyzer for frames of the given size at the given sample
// rate. The size must be a positive power of two.
func New(size int, sampleRate float64, opts ...Option) (*Analyzer, error) {
	if err := validateSize(size); err != nil {
		return nil, err
	}
	if err := validateSampleRate(sampleRate); err != nil {
		return nil, err
	}

	a := &Analyzer{
		size:            size,
		sampleRate:      sampleRate,
		rolloffFraction: defaultRolloffFraction,
		parallelism:     1,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(a)
		}
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("spectral: create fft plan: %w", err)
	}

	a.plan = plan
	a.in = make([]complex128, size)
	a.out = make([]complex128, size)
	a.pow = make([]float64, size/2)

	return a, nil
}

// Size returns the configured frame length.
func (a *Analyzer) Size() int { return a.size }

// SampleRate returns the configured sample rate in Hz.
func (a *Analyzer) SampleRate() float64 { return a.sampleRate }

// BinWidth returns the frequency width of one FFT bin in Hz.
func (a *Analyzer) BinWidth() float64 {
	return a.sampleRate / float64(a.size)
}

// AnalyzeFrame computes the features of a single windowed frame.
// The frame length must equal the analyzer size.
func (a *Analyzer) AnalyzeFrame(frame []float64) (Frame, error) {
	return a.analyzeFrame(frame, a.plan, a.in, a.out, a.pow)
}

// Analyze computes features for every frame, in frame order.
//
// All frames must have the analyzer's size. With parallelism > 1 the
// per-frame transforms run concurrently; results are written by frame index,
// so the output order always matches the input order.
func (a *Analyzer) Analyze(frames [][]float64) (*Series, error) {
	if a.parallelism > 1 && len(frames) > 1 {
		return a.analyzeParallel(frames)
	}

	series := newSeries(len(frames))
	for i, f := range frames {
		feat, err := a.AnalyzeFrame(f)
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", i, err)
		}
		series.set(i, feat)
	}

	return series, nil
}

func (a *Analyzer) analyzeFrame(frame []float64, plan *algofft.Plan[complex128], in, out []complex128, pow []float64) (Frame, error) {
	if len(frame) != a.size {
		return Frame{}, fmt.Errorf("%w: got %d, want %d", ErrFrameLength, len(frame), a.size)
	}

	var feat Frame
	feat.RMS = math.Sqrt(vecmath.DotProduct(frame, frame) / float64(len(frame)))

	for i, v := range frame {
		in[i] = complex(v, 0)
	}

	if err := plan.Forward(out, in); err != nil {
		return Frame{}, fmt.Errorf("spectral: forward fft: %w", err)
	}

	// Squared magnitudes of the one-sided spectrum; energy weighting for
	// rolloff, centroid and spread.
	for k := range pow {
		x := out[k]
		pow[k] = real(x)*real(x) + imag(x)*imag(x)
	}

	binHz := a.BinWidth()
	feat.DominantFreq = dominantFrequency(pow, binHz)
	feat.Rolloff = rolloffFraction(pow, a.rolloffFraction)
	feat.Centroid, feat.Spread = centroidSpread(pow, binHz)

	return feat, nil
}
