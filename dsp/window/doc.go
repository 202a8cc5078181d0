// Package window generates tapering functions applied to analysis frames
// before spectral transforms to reduce leakage.
//
// Only the cosine-sum families needed for feature extraction are provided:
// rectangular, Hann, Hamming and Blackman. The symmetric form is the default;
// use [WithPeriodic] for DFT-periodic framing.
package window
