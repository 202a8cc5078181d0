// Command hapticgen converts an audio file into a haptic event stream.
//
// It decodes the input (WAV, MP3 or Ogg Vorbis), runs the analysis pipeline
// and writes the resulting stream as JSON to stdout or a file:
//
//	hapticgen -in track.wav -out track.haptic.json -fps 60
//
// A YAML config file can set the full range of pipeline tunables; flags
// override values from the file.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/cwbudde/algo-haptics/audio"
	"github.com/cwbudde/algo-haptics/audio/formats"
	"github.com/cwbudde/algo-haptics/haptic"
)

func main() {
	os.Exit(run())
}

func run() int {
	inPath := flag.String("in", "", "input audio file ("+strings.Join(formats.Supported(), ", ")+")")
	outPath := flag.String("out", "", "output JSON file (default stdout)")
	configPath := flag.String("config", "", "optional YAML configuration file")
	fps := flag.Int("fps", 0, "output event rate (overrides config)")
	frameLength := flag.Int("frame", 0, "analysis frame length in samples, power of two (overrides config)")
	decimate := flag.Bool("decimate", false, "halve event density by keeping even frames only")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	logger := newLogger(*verbose)
	slog.SetDefault(logger)

	if *inPath == "" {
		fmt.Fprintln(os.Stderr, "hapticgen: -in is required")
		flag.Usage()
		return 2
	}

	var opts []haptic.Option

	if *configPath != "" {
		cfg, err := loadConfig(*configPath)
		if err != nil {
			slog.Error("failed to load config", "err", err)
			return 1
		}

		opts = cfg.options()
	}

	// Flag overrides apply after the file so they win.
	if *fps > 0 {
		opts = append(opts, haptic.WithFPS(*fps))
	}

	if *frameLength > 0 {
		opts = append(opts, haptic.WithFrameLength(*frameLength))
	}

	if *decimate {
		opts = append(opts, haptic.WithDecimation())
	}

	if *verbose {
		opts = append(opts, haptic.WithProgress(func(stage haptic.Stage, done, total int) {
			slog.Debug("pipeline stage complete", "stage", stage.String(), "done", done, "total", total)
		}))
	}

	stream, err := analyze(*inPath, opts)
	if err != nil {
		slog.Error("analysis failed", "in", *inPath, "err", err)
		return 1
	}

	slog.Info("analysis complete",
		"in", *inPath,
		"duration_s", stream.Metadata.Duration,
		"frames", stream.Metadata.TotalFrames,
		"events", len(stream.Events),
	)

	if err := writeStream(stream, *outPath); err != nil {
		slog.Error("failed to write output", "out", *outPath, "err", err)
		return 1
	}

	return 0
}

func analyze(path string, opts []haptic.Option) (*haptic.Stream, error) {
	src, err := formats.Open(path)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	slog.Debug("decoding audio", "path", path, "sample_rate", src.SampleRate(), "channels", src.Channels())

	buf, err := audio.ReadAll(src)
	if err != nil {
		return nil, err
	}

	return haptic.Analyze(buf, opts...)
}

func writeStream(stream *haptic.Stream, path string) error {
	var w io.Writer = os.Stdout

	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()

		w = f
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(stream)
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
