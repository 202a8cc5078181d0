// Package series provides shape operations on per-frame feature sequences:
// linear resampling to a target frame count, centered moving-average
// smoothing, and the sequence statistics used for adaptive thresholding.
package series
