// Package mp3 decodes MP3 files into audio sources.
//
// Decoding is built on github.com/hajimehoshi/go-mp3, which always outputs
// stereo 16-bit PCM.
package mp3
