// Command interp-wav resamples WAV audio files to a target sample rate
// using order-5 central-difference interpolation.
//
// Usage:
//
//	interp-wav -rate 48000 input.wav output.wav
//	interp-wav -rate 22050 -verbose input.wav output.wav
//
// This trades the filtering of a proper band-limited resampler for
// simplicity: each output sample is a local quartic fit of five input
// samples, so downsampling wide-band material will alias. It is intended
// as a demonstration of the interpolation engine on real signal data.
package main

import (
	"flag"
	"fmt"
	"log"
)

const (
	// defaultRate is the target sample rate in Hz.
	defaultRate = 48000

	// requiredArgs is the input and output path count.
	requiredArgs = 2
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	rate := flag.Int("rate", defaultRate, "Target sample rate in Hz")
	verbose := flag.Bool("verbose", false, "Print progress information")
	flag.Parse()

	if flag.NArg() != requiredArgs {
		return fmt.Errorf("usage: interp-wav [-rate hz] input.wav output.wav")
	}
	if *rate <= 0 {
		return fmt.Errorf("target rate must be positive, got %d", *rate)
	}
	inputPath, outputPath := flag.Arg(0), flag.Arg(1)

	channels, inputRate, bitDepth, err := readWAV(inputPath)
	if err != nil {
		return err
	}
	if *verbose {
		log.Printf("Input: %d Hz, %d channels, %d-bit, %d frames",
			inputRate, len(channels), bitDepth, len(channels[0]))
	}

	ratio := float64(*rate) / float64(inputRate)
	for ch := range channels {
		resampled, err := resampleChannel(channels[ch], ratio)
		if err != nil {
			return fmt.Errorf("channel %d: %w", ch, err)
		}
		channels[ch] = resampled
	}
	if *verbose {
		log.Printf("Output: %d Hz, %d frames (ratio %.6f)",
			*rate, len(channels[0]), ratio)
	}

	return writeWAV(outputPath, channels, *rate, bitDepth)
}
