package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-haptics/dsp/window"
	"github.com/cwbudde/algo-haptics/haptic"
)

// fileConfig mirrors the YAML configuration file. Zero values mean "use the
// pipeline default" so a partial file only overrides what it names.
type fileConfig struct {
	FPS             int     `yaml:"fps"`
	FrameLength     int     `yaml:"frameLength"`
	Window          string  `yaml:"window"`
	SmoothingWindow int     `yaml:"smoothingWindow"`
	RolloffFraction float64 `yaml:"rolloffFraction"`
	ThresholdK      float64 `yaml:"thresholdK"`
	IntensityFloor  float64 `yaml:"intensityFloor"`
	Decimate        bool    `yaml:"decimate"`
	Classifier      string  `yaml:"classifier"`
	Parallelism     int     `yaml:"parallelism"`
}

var windowTypes = map[string]window.Type{
	"rectangular": window.TypeRectangular,
	"hann":        window.TypeHann,
	"hamming":     window.TypeHamming,
	"blackman":    window.TypeBlackman,
}

var classifierFeatures = map[string]haptic.Feature{
	"centroid": haptic.FeatureCentroid,
	"rolloff":  haptic.FeatureRolloff,
}

// loadConfig reads and validates a YAML config file.
func loadConfig(path string) (*fileConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %q: %w", path, err)
	}
	defer f.Close()

	cfg, err := loadConfigFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("config: parse %q: %w", path, err)
	}

	return cfg, nil
}

func loadConfigFromReader(r io.Reader) (*fileConfig, error) {
	cfg := &fileConfig{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true) // reject unknown keys to catch typos

	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *fileConfig) validate() error {
	if c.FPS < 0 {
		return fmt.Errorf("fps must be >= 0, got %d", c.FPS)
	}

	if c.FrameLength < 0 {
		return fmt.Errorf("frameLength must be >= 0, got %d", c.FrameLength)
	}

	if c.RolloffFraction < 0 || c.RolloffFraction > 1 {
		return fmt.Errorf("rolloffFraction must be in [0, 1], got %g", c.RolloffFraction)
	}

	if c.IntensityFloor < 0 || c.IntensityFloor > 1 {
		return fmt.Errorf("intensityFloor must be in [0, 1], got %g", c.IntensityFloor)
	}

	if c.Window != "" {
		if _, ok := windowTypes[strings.ToLower(c.Window)]; !ok {
			return fmt.Errorf("unknown window %q", c.Window)
		}
	}

	if c.Classifier != "" {
		if _, ok := classifierFeatures[strings.ToLower(c.Classifier)]; !ok {
			return fmt.Errorf("unknown classifier %q", c.Classifier)
		}
	}

	return nil
}

// options converts the file values into pipeline options, skipping zero
// values so defaults stay in effect.
func (c *fileConfig) options() []haptic.Option {
	var opts []haptic.Option

	if c.FPS > 0 {
		opts = append(opts, haptic.WithFPS(c.FPS))
	}

	if c.FrameLength > 0 {
		opts = append(opts, haptic.WithFrameLength(c.FrameLength))
	}

	if c.Window != "" {
		opts = append(opts, haptic.WithWindowType(windowTypes[strings.ToLower(c.Window)]))
	}

	if c.SmoothingWindow > 0 {
		opts = append(opts, haptic.WithSmoothingWindow(c.SmoothingWindow))
	}

	if c.RolloffFraction > 0 {
		opts = append(opts, haptic.WithRolloffThreshold(c.RolloffFraction))
	}

	if c.ThresholdK != 0 {
		opts = append(opts, haptic.WithThresholdK(c.ThresholdK))
	}

	if c.IntensityFloor > 0 {
		opts = append(opts, haptic.WithIntensityFloor(c.IntensityFloor))
	}

	if c.Decimate {
		opts = append(opts, haptic.WithDecimation())
	}

	if c.Classifier != "" {
		opts = append(opts, haptic.WithClassifierFeature(classifierFeatures[strings.ToLower(c.Classifier)]))
	}

	if c.Parallelism > 0 {
		opts = append(opts, haptic.WithParallelism(c.Parallelism))
	}

	return opts
}
