// Package spectral computes per-frame audio features used for haptic event
// synthesis: RMS level, dominant frequency, spectral rolloff, spectral
// centroid and spectral spread.
//
// The package operates on windowed, power-of-two-length frames and uses
// squared FFT magnitudes (energy) for the rolloff and centroid weighting.
package spectral
