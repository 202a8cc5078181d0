package spectral

import "math"

// dominantFrequency returns the center frequency of the strongest bin.
func dominantFrequency(pow []float64, binHz float64) float64 {
	if len(pow) == 0 {
		return 0
	}

	maxBin := 0
	maxVal := pow[0]
	for k, v := range pow {
		if v > maxVal {
			maxVal = v
			maxBin = k
		}
	}

	if maxVal == 0 {
		return 0
	}

	return float64(maxBin) * binHz
}

// rolloffFraction returns j/len(pow) for the smallest bin index j such that
// the cumulative energy up to and including j reaches fraction of the total.
// Zero total energy yields 0.
func rolloffFraction(pow []float64, fraction float64) float64 {
	n := len(pow)
	if n == 0 {
		return 0
	}

	total := 0.0
	for _, v := range pow {
		total += v
	}
	if total == 0 {
		return 0
	}

	threshold := fraction * total
	cum := 0.0
	for j, v := range pow {
		cum += v
		if cum >= threshold {
			return float64(j) / float64(n)
		}
	}

	return 1
}

// centroidSpread returns the energy-weighted mean frequency and the standard
// deviation of the spectrum around it, both in Hz. Zero total energy yields
// zeros for both.
func centroidSpread(pow []float64, binHz float64) (centroid, spread float64) {
	total := 0.0
	weighted := 0.0
	for k, v := range pow {
		total += v
		weighted += float64(k) * binHz * v
	}
	if total == 0 {
		return 0, 0
	}

	centroid = weighted / total

	sqSum := 0.0
	for k, v := range pow {
		d := float64(k)*binHz - centroid
		sqSum += d * d * v
	}

	return centroid, math.Sqrt(sqSum / total)
}

// RMS returns sqrt(mean(x^2)) of a time-domain signal.
func RMS(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	sumSq := 0.0
	for _, x := range signal {
		sumSq += x * x
	}

	return math.Sqrt(sumSq / float64(len(signal)))
}
