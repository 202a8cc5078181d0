package haptic

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-haptics/audio"
	"github.com/cwbudde/algo-haptics/dsp/core"
	"github.com/cwbudde/algo-haptics/dsp/frame"
	"github.com/cwbudde/algo-haptics/dsp/series"
	"github.com/cwbudde/algo-haptics/dsp/spectral"
)

const stageCount = 6

// Pipeline converts audio sample buffers into haptic event streams.
//
// A pipeline is a fixed configuration; Process may be called repeatedly
// and does not retain state between invocations. Either a complete,
// invariant-satisfying stream is returned or an error; there is no partial
// output.
type Pipeline struct {
	cfg Config
}

// New creates a pipeline with the given options applied over
// [DefaultConfig].
func New(opts ...Option) *Pipeline {
	return &Pipeline{cfg: ApplyOptions(opts...)}
}

// Analyze is a one-shot pipeline run.
func Analyze(buf *audio.SampleBuffer, opts ...Option) (*Stream, error) {
	return New(opts...).Process(buf)
}

// Process runs the analysis stages in order: framing, spectral features,
// resampling to the output rate, smoothing, threshold calibration and event
// synthesis.
//
// Failures are configuration or input errors and are never retried
// internally; the computation is deterministic.
func (p *Pipeline) Process(buf *audio.SampleBuffer) (*Stream, error) {
	cfg := p.cfg

	if buf == nil || buf.Len() == 0 {
		return nil, fmt.Errorf("pipeline: %w", series.ErrEmptySeries)
	}

	duration := buf.Duration()
	outputFrames := int(math.Floor(duration * float64(cfg.FPS)))
	if outputFrames < 1 {
		return nil, fmt.Errorf("pipeline: output frame count is zero for duration %gs at %d fps: %w",
			duration, cfg.FPS, series.ErrEmptySeries)
	}

	frames, err := frame.Split(buf.Samples(), cfg.FrameLength, cfg.WindowType)
	if err != nil {
		return nil, fmt.Errorf("pipeline: framing: %w", err)
	}
	if len(frames) == 0 {
		return nil, fmt.Errorf("pipeline: %w", series.ErrEmptySeries)
	}
	p.progress(StageFraming, 1)

	analyzer, err := spectral.New(cfg.FrameLength, buf.SampleRate(),
		spectral.WithRolloffFraction(cfg.RolloffFraction),
		spectral.WithParallelism(cfg.Parallelism),
	)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}

	feats, err := analyzer.Analyze(frames)
	if err != nil {
		return nil, fmt.Errorf("pipeline: spectral analysis: %w", err)
	}
	p.progress(StageSpectral, 2)

	rms, err := series.Resample(feats.RMS, outputFrames)
	if err != nil {
		return nil, fmt.Errorf("pipeline: resample rms: %w", err)
	}

	centroid, err := series.Resample(feats.Centroid, outputFrames)
	if err != nil {
		return nil, fmt.Errorf("pipeline: resample centroid: %w", err)
	}

	rolloff, err := series.Resample(feats.Rolloff, outputFrames)
	if err != nil {
		return nil, fmt.Errorf("pipeline: resample rolloff: %w", err)
	}
	p.progress(StageResample, 3)

	rms = series.Smooth(rms, cfg.SmoothingWindow)
	centroid = series.Smooth(centroid, cfg.SmoothingWindow)
	rolloff = series.Smooth(rolloff, cfg.SmoothingWindow)
	p.progress(StageSmooth, 4)

	threshold := Threshold(rms, cfg.ThresholdK)
	p.progress(StageThreshold, 5)

	events := synthesize(synthInput{
		rms:       rms,
		centroid:  centroid,
		secondary: p.secondary(centroid, rolloff, buf.SampleRate()),
		threshold: threshold,
	}, cfg)
	p.progress(StageSynthesis, 6)

	return &Stream{
		Metadata: Metadata{
			Version:     SchemaVersion,
			FPS:         cfg.FPS,
			Duration:    duration,
			TotalFrames: outputFrames,
		},
		Events: events,
	}, nil
}

// secondary maps the configured classifier feature onto [0, 1]. The rolloff
// sequence already is a fraction; the centroid is normalized by Nyquist.
func (p *Pipeline) secondary(centroid, rolloff []float64, sampleRate float64) []float64 {
	if p.cfg.Classifier == FeatureRolloff {
		return rolloff
	}

	nyquist := sampleRate / 2
	out := make([]float64, len(centroid))
	for i, c := range centroid {
		out[i] = core.Clamp(c/nyquist, 0, 1)
	}

	return out
}

func (p *Pipeline) progress(stage Stage, done int) {
	if p.cfg.Progress != nil {
		p.cfg.Progress(stage, done, stageCount)
	}
}
