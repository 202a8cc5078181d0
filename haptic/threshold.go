package haptic

import "github.com/cwbudde/algo-haptics/dsp/series"

// Threshold computes the adaptive emission gate mean + k*stddev over the
// smoothed RMS sequence. The standard deviation is the population form
// (divide by N). An empty sequence yields 0.
func Threshold(rms []float64, k float64) float64 {
	if len(rms) == 0 {
		return 0
	}

	return series.Mean(rms) + k*series.StdDev(rms)
}
