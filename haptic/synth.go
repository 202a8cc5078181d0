package haptic

import (
	"github.com/cwbudde/algo-haptics/dsp/core"
	"github.com/cwbudde/algo-haptics/dsp/series"
)

// synthInput carries the smoothed, resampled sequences consumed by event
// synthesis. All slices have equal length.
type synthInput struct {
	rms       []float64
	centroid  []float64 // Hz
	secondary []float64 // normalized to [0, 1]
	threshold float64
}

// classify runs the priority cascade top-down; the first match wins.
// Comparisons are strict (rms == 0.7 exactly is not heavy).
func classify(rms, secondary float64) EventType {
	switch {
	case rms > heavyRMS && secondary > heavySecondary:
		return EventHeavy
	case rms > mediumRMS && secondary > mediumSecondary:
		return EventMedium
	case rms > lightRMS:
		return EventLight
	}

	return EventSoft
}

// synthesize walks the output frames and emits classified events.
//
// An output frame yields an event only when its smoothed RMS strictly
// exceeds the adaptive threshold and the derived intensity strictly exceeds
// the configured floor. With decimation enabled, odd-indexed frames are
// skipped. The only cross-frame state is the centroid normalization peak
// and the precomputed threshold.
func synthesize(in synthInput, cfg Config) []Event {
	maxCentroid := series.Max(in.centroid)

	events := make([]Event, 0, len(in.rms))

	for i := range in.rms {
		if cfg.Decimate && i%2 != 0 {
			continue
		}

		rms := in.rms[i]
		if !(rms > in.threshold) {
			continue
		}

		intensity := core.Clamp(rms*2, 0, 1)
		if !(intensity > cfg.IntensityFloor) {
			continue
		}

		sharpness := 0.0
		if maxCentroid > 0 {
			sharpness = core.Clamp(in.centroid[i]/maxCentroid, 0, 1)
		}

		events = append(events, Event{
			Time:      float64(i) / float64(cfg.FPS),
			Intensity: intensity,
			Sharpness: sharpness,
			Type:      classify(rms, in.secondary[i]),
		})
	}

	return events
}
