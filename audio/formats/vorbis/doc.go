// Package vorbis decodes Ogg Vorbis files into audio sources.
//
// Decoding is built on github.com/jfreymuth/oggvorbis.
package vorbis
