package haptic_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-haptics/audio"
	"github.com/cwbudde/algo-haptics/haptic"
)

func ExampleAnalyze() {
	// Half a second of silence followed by half a second of a loud tone.
	const sampleRate = 44100

	samples := make([]float64, sampleRate)
	for i := sampleRate / 2; i < sampleRate; i++ {
		samples[i] = math.Sin(2 * math.Pi * 440 * float64(i) / sampleRate)
	}

	buf, err := audio.NewSampleBuffer(samples, sampleRate)
	if err != nil {
		panic(err)
	}

	stream, err := haptic.Analyze(buf)
	if err != nil {
		panic(err)
	}

	fmt.Printf("version=%d fps=%d frames=%d\n",
		stream.Metadata.Version, stream.Metadata.FPS, stream.Metadata.TotalFrames)
	fmt.Printf("events=%v\n", len(stream.Events) > 0)

	// Output:
	// version=3 fps=60 frames=60
	// events=true
}

func ExampleNew() {
	samples := make([]float64, 22050)
	for i := range samples {
		samples[i] = 0.5 * math.Sin(2*math.Pi*220*float64(i)/22050)
	}

	buf, err := audio.NewSampleBuffer(samples, 22050)
	if err != nil {
		panic(err)
	}

	p := haptic.New(
		haptic.WithFPS(30),
		haptic.WithFrameLength(1024),
		haptic.WithDecimation(),
	)

	stream, err := p.Process(buf)
	if err != nil {
		panic(err)
	}

	fmt.Printf("fps=%d frames=%d\n", stream.Metadata.FPS, stream.Metadata.TotalFrames)

	// Output:
	// fps=30 frames=30
}
