// Package haptic synthesizes discrete haptic feedback events from audio.
//
// The pipeline frames a mono sample buffer, extracts per-frame spectral
// features, resamples the feature sequences to the target event rate,
// smooths them, calibrates an adaptive emission threshold and classifies
// each output frame into one of four event weights. The result is an
// immutable [Stream] serializable as JSON.
package haptic
