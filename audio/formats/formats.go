// Package formats dispatches audio files to the matching format decoder by
// file extension.
package formats

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/cwbudde/algo-haptics/audio"
	"github.com/cwbudde/algo-haptics/audio/formats/mp3"
	"github.com/cwbudde/algo-haptics/audio/formats/vorbis"
	"github.com/cwbudde/algo-haptics/audio/formats/wav"
)

// ErrUnknownFormat indicates a file extension with no registered decoder.
var ErrUnknownFormat = fmt.Errorf("unknown audio format")

var decoders = map[string]audio.Decoder{
	".wav": wav.Decoder{},
	".mp3": mp3.Decoder{},
	".ogg": vorbis.Decoder{},
	".oga": vorbis.Decoder{},
}

// Supported returns the file extensions with a registered decoder, sorted.
func Supported() []string {
	out := make([]string, 0, len(decoders))
	for ext := range decoders {
		out = append(out, ext)
	}

	slices.Sort(out)

	return out
}

// Open opens the file at path and returns a Source for its audio stream.
// Closing the source closes the file.
func Open(path string) (audio.Source, error) {
	ext := strings.ToLower(filepath.Ext(path))

	dec, ok := decoders[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}

	src, err := dec.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decoding %q: %w", path, err)
	}

	return &fileSource{Source: src, f: f}, nil
}

// fileSource ties the lifetime of the backing file to the decoded source.
type fileSource struct {
	audio.Source
	f *os.File
}

func (s *fileSource) Close() error {
	decErr := s.Source.Close()

	if err := s.f.Close(); err != nil {
		return fmt.Errorf("closing file: %w", err)
	}

	return decErr
}
