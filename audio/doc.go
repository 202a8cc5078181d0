// Package audio defines the sample-source boundary of the analysis pipeline:
// the Source stream interface, mono downmixing, and the immutable
// SampleBuffer handed to the pipeline.
//
// Format decoders live in the audio/formats subpackages.
package audio
