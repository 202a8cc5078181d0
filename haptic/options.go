package haptic

import "github.com/cwbudde/algo-haptics/dsp/window"

// Classification cascade thresholds. The secondary feature is normalized to
// [0, 1] before comparison (see [Feature]).
const (
	heavyRMS       = 0.7
	heavySecondary = 0.6

	mediumRMS       = 0.4
	mediumSecondary = 0.5

	lightRMS = 0.2
)

const (
	defaultFPS             = 60
	defaultFrameLength     = 512
	defaultSmoothingWindow = 11
	defaultRolloffFraction = 0.85
	defaultThresholdK      = 0.5
)

// Feature selects the secondary input of the classification cascade.
type Feature int

const (
	// FeatureCentroid uses the spectral centroid normalized by the Nyquist
	// frequency.
	FeatureCentroid Feature = iota

	// FeatureRolloff uses the spectral rolloff fraction.
	FeatureRolloff
)

// Stage identifies a pipeline stage for progress reporting.
type Stage int

const (
	StageFraming Stage = iota
	StageSpectral
	StageResample
	StageSmooth
	StageThreshold
	StageSynthesis
)

// String returns the stage name.
func (s Stage) String() string {
	switch s {
	case StageFraming:
		return "framing"
	case StageSpectral:
		return "spectral"
	case StageResample:
		return "resample"
	case StageSmooth:
		return "smooth"
	case StageThreshold:
		return "threshold"
	case StageSynthesis:
		return "synthesis"
	}

	return "unknown"
}

// ProgressFunc is invoked after each completed pipeline stage. done counts
// completed stages out of total. It must not block.
type ProgressFunc func(stage Stage, done, total int)

// Config holds pipeline tunables.
type Config struct {
	FPS             int
	FrameLength     int
	WindowType      window.Type
	SmoothingWindow int
	RolloffFraction float64
	ThresholdK      float64
	IntensityFloor  float64
	Decimate        bool
	Classifier      Feature
	Parallelism     int
	Progress        ProgressFunc
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the pipeline defaults: 60 fps, 512-sample Hann
// frames, smoothing window 11, 85% rolloff, threshold k 0.5, no decimation,
// centroid-driven classification.
func DefaultConfig() Config {
	return Config{
		FPS:             defaultFPS,
		FrameLength:     defaultFrameLength,
		WindowType:      window.TypeHann,
		SmoothingWindow: defaultSmoothingWindow,
		RolloffFraction: defaultRolloffFraction,
		ThresholdK:      defaultThresholdK,
		Classifier:      FeatureCentroid,
		Parallelism:     1,
	}
}

// WithFPS sets the target output event rate.
func WithFPS(fps int) Option {
	return func(cfg *Config) {
		if fps > 0 {
			cfg.FPS = fps
		}
	}
}

// WithFrameLength sets the analysis frame length. Must be a power of two;
// validated when the pipeline runs.
func WithFrameLength(length int) Option {
	return func(cfg *Config) {
		if length > 0 {
			cfg.FrameLength = length
		}
	}
}

// WithWindowType sets the analysis window function.
func WithWindowType(t window.Type) Option {
	return func(cfg *Config) {
		cfg.WindowType = t
	}
}

// WithSmoothingWindow sets the moving-average window size. Even values are
// rounded up to the next odd size.
func WithSmoothingWindow(size int) Option {
	return func(cfg *Config) {
		if size > 0 {
			cfg.SmoothingWindow = size
		}
	}
}

// WithRolloffThreshold sets the cumulative energy fraction of the spectral
// rolloff feature.
func WithRolloffThreshold(fraction float64) Option {
	return func(cfg *Config) {
		if fraction > 0 && fraction <= 1 {
			cfg.RolloffFraction = fraction
		}
	}
}

// WithThresholdK sets the stddev multiplier of the adaptive emission
// threshold.
func WithThresholdK(k float64) Option {
	return func(cfg *Config) {
		if k >= 0 {
			cfg.ThresholdK = k
		}
	}
}

// WithIntensityFloor sets a fixed lower bound on emitted event intensity,
// applied in addition to the adaptive threshold. Historical analyzer
// variants used 0.1 or 0.3; the default is 0.
func WithIntensityFloor(floor float64) Option {
	return func(cfg *Config) {
		if floor >= 0 {
			cfg.IntensityFloor = floor
		}
	}
}

// WithDecimation retains only even-indexed output frames, halving event
// density.
func WithDecimation() Option {
	return func(cfg *Config) {
		cfg.Decimate = true
	}
}

// WithClassifierFeature selects the secondary feature of the classification
// cascade.
func WithClassifierFeature(f Feature) Option {
	return func(cfg *Config) {
		cfg.Classifier = f
	}
}

// WithParallelism sets the worker count for per-frame spectral analysis.
func WithParallelism(workers int) Option {
	return func(cfg *Config) {
		if workers > 0 {
			cfg.Parallelism = workers
		}
	}
}

// WithProgress registers a stage-completion callback.
func WithProgress(fn ProgressFunc) Option {
	return func(cfg *Config) {
		cfg.Progress = fn
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
