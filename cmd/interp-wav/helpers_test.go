package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaxValue(t *testing.T) {
	assert.Equal(t, 32767.0, maxValue(16))
	assert.Equal(t, 8388607.0, maxValue(24))
	assert.Equal(t, 2147483647.0, maxValue(32))
}

func TestDeinterleaveInterleave_RoundTrip(t *testing.T) {
	data := []int{100, -200, 300, -400, 500, -600}
	maxVal := maxValue(16)

	channels := deinterleave(data, 2, maxVal)
	require.Len(t, channels, 2)
	require.Len(t, channels[0], 3)
	assert.InDelta(t, 100.0/maxVal, channels[0][0], 1e-12)
	assert.InDelta(t, -200.0/maxVal, channels[1][0], 1e-12)

	back := interleave(channels, maxVal)
	assert.Equal(t, data, back)
}

func TestInterleave_ClampsFullScale(t *testing.T) {
	maxVal := maxValue(16)
	out := interleave([][]float64{{1.5, -1.5, 0}}, maxVal)

	require.Len(t, out, 3)
	assert.Equal(t, int(maxVal), out[0])
	assert.Equal(t, -int(maxVal), out[1])
	assert.Equal(t, 0, out[2])
}

func TestInterleave_PadsShortChannels(t *testing.T) {
	maxVal := maxValue(16)
	out := interleave([][]float64{{1, 1, 1}, {1}}, maxVal)

	require.Len(t, out, 6)
	assert.Equal(t, 0, out[3], "short channel should be zero-padded")
	assert.Equal(t, 0, out[5])
}

func TestResampleChannels_PropagatesError(t *testing.T) {
	_, err := resampleChannels([][]float64{{1, 2, 3}}, 0, 48000)
	require.Error(t, err)
}
