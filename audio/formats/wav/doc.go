// Package wav decodes RIFF/WAVE PCM files into audio sources.
//
// Decoding is built on github.com/go-audio/wav.
package wav
