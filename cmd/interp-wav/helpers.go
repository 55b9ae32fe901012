package main

import (
	"fmt"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	interp "github.com/marando/Interp"
)

const (
	// windowHalf is the reach of an order-5 window on each side of its
	// center sample.
	windowHalf = (interp.Order5 - 1) / 2

	// wavPCMFormat is the PCM audio format tag for the WAV encoder.
	wavPCMFormat = 1
)

// readWAV decodes a WAV file into one float64 slice per channel, with
// samples normalized to [-1, 1).
func readWAV(path string) (channels [][]float64, rate, bitDepth int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return nil, 0, 0, fmt.Errorf("invalid WAV file: %s", path)
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, 0, 0, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	rate = buf.Format.SampleRate
	bitDepth = int(decoder.BitDepth)
	channels = deinterleave(buf.Data, buf.Format.NumChannels, bitDepth)
	return channels, rate, bitDepth, nil
}

// writeWAV encodes per-channel float64 samples as a PCM WAV file.
func writeWAV(path string, channels [][]float64, rate, bitDepth int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = f.Close() }()

	enc := wav.NewEncoder(f, rate, bitDepth, len(channels), wavPCMFormat)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: len(channels), SampleRate: rate},
		Data:           interleave(channels, bitDepth),
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("failed to write samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to finalize WAV file: %w", err)
	}
	return nil
}

// deinterleave splits interleaved integer PCM samples into normalized
// per-channel float slices.
func deinterleave(data []int, numChannels, bitDepth int) [][]float64 {
	scale := float64(int(1) << (bitDepth - 1))
	frames := len(data) / numChannels

	channels := make([][]float64, numChannels)
	for ch := range channels {
		channels[ch] = make([]float64, frames)
		for i := 0; i < frames; i++ {
			channels[ch][i] = float64(data[i*numChannels+ch]) / scale
		}
	}
	return channels
}

// interleave converts normalized per-channel floats back to interleaved
// integer PCM, clipping to the representable range.
func interleave(channels [][]float64, bitDepth int) []int {
	scale := float64(int(1) << (bitDepth - 1))
	frames := 0
	for _, ch := range channels {
		if len(ch) > frames {
			frames = len(ch)
		}
	}

	data := make([]int, frames*len(channels))
	for ch, samples := range channels {
		for i, v := range samples {
			s := math.Round(v * scale)
			if s > scale-1 {
				s = scale - 1
			} else if s < -scale {
				s = -scale
			}
			data[i*len(channels)+ch] = int(s)
		}
	}
	return data
}

// resampleChannel converts one channel to a new length using order-5
// central-difference interpolation. Each output sample is fitted from the
// 5 input samples around its fractional source position; positions within
// two samples of either end fall back to the nearest input sample.
func resampleChannel(samples []float64, ratio float64) ([]float64, error) {
	if len(samples) < interp.Order5 {
		return nil, fmt.Errorf("channel too short: %d samples, need at least %d",
			len(samples), interp.Order5)
	}

	outLen := int(math.Ceil(float64(len(samples)) * ratio))
	out := make([]float64, outLen)
	for i := range out {
		pos := float64(i) / ratio

		center := int(math.Round(pos))
		if center < windowHalf {
			center = windowHalf
		} else if center > len(samples)-1-windowHalf {
			center = len(samples) - 1 - windowHalf
		}

		// Factor from the window center, in step units. Within two
		// samples of either channel edge the factor leaves the
		// admissible range; those positions round to the nearest
		// input sample instead.
		n := pos - float64(center)
		if n < -1 || n > 1 {
			idx := int(math.Round(pos))
			if idx < 0 {
				idx = 0
			} else if idx > len(samples)-1 {
				idx = len(samples) - 1
			}
			out[i] = samples[idx]
			continue
		}

		lo := center - windowHalf
		p, err := interp.New5(float64(lo), float64(lo+interp.Order5-1),
			samples[lo:lo+interp.Order5])
		if err != nil {
			return nil, fmt.Errorf("sample %d: %w", i, err)
		}
		r, err := p.N(n)
		if err != nil {
			return nil, fmt.Errorf("sample %d: %w", i, err)
		}
		out[i] = r.Y
	}
	return out, nil
}
