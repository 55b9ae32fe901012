package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestResampleChannelIdentity verifies that a 1:1 ratio reproduces the
// input samples.
func TestResampleChannelIdentity(t *testing.T) {
	in := []float64{0, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7}
	out, err := resampleChannel(in, 1.0)
	require.NoError(t, err)
	require.Len(t, out, len(in))
	for i := range in {
		assert.InDelta(t, in[i], out[i], 1e-12, "sample %d", i)
	}
}

// TestResampleChannelUpsampleSine verifies that 2x upsampling of a slow
// sine tracks the true waveform closely.
func TestResampleChannelUpsampleSine(t *testing.T) {
	const (
		inLen = 64
		freq  = 0.02 // cycles per input sample, well below Nyquist
	)
	in := make([]float64, inLen)
	for i := range in {
		in[i] = math.Sin(2 * math.Pi * freq * float64(i))
	}

	out, err := resampleChannel(in, 2.0)
	require.NoError(t, err)
	require.Len(t, out, 2*inLen)

	// Skip the window-edge region at both ends.
	for i := 8; i < len(out)-8; i++ {
		want := math.Sin(2 * math.Pi * freq * float64(i) / 2)
		assert.InDelta(t, want, out[i], 1e-4, "sample %d", i)
	}
}

// TestResampleChannelTooShort verifies the minimum input length.
func TestResampleChannelTooShort(t *testing.T) {
	_, err := resampleChannel([]float64{1, 2, 3, 4}, 2.0)
	assert.Error(t, err)
}

// TestInterleaveRoundTrip verifies channel interleaving against
// deinterleaving at 16-bit depth.
func TestInterleaveRoundTrip(t *testing.T) {
	const bitDepth = 16
	channels := [][]float64{
		{0, 0.25, -0.25, 0.5},
		{0.1, -0.1, 0.9, -0.9},
	}

	data := interleave(channels, bitDepth)
	require.Len(t, data, 8)

	back := deinterleave(data, len(channels), bitDepth)
	require.Len(t, back, len(channels))
	for ch := range channels {
		for i := range channels[ch] {
			assert.InDelta(t, channels[ch][i], back[ch][i], 1.0/32768,
				"channel %d sample %d", ch, i)
		}
	}
}

// TestInterleaveClipping verifies that out-of-range samples clip to the
// representable PCM range instead of wrapping.
func TestInterleaveClipping(t *testing.T) {
	const bitDepth = 16
	data := interleave([][]float64{{1.5, -1.5}}, bitDepth)
	assert.Equal(t, 32767, data[0])
	assert.Equal(t, -32768, data[1])
}
