// Package frame slices sample buffers into windowed, non-overlapping
// analysis frames for spectral feature extraction.
package frame
