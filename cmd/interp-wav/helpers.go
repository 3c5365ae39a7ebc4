package main

import (
	"fmt"
	"log"
	"math"
	"os"
	"sync"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	monospline "github.com/tphakala/go-monotone-spline"
)

// wavPCMFormat is the WAV audio format tag for linear PCM.
const wavPCMFormat = 1

// convertFile reads a WAV file, resamples every channel through the
// monotone spline and writes the result at the target rate.
func convertFile(inputPath, outputPath string, targetRate int, verbose bool) error {
	inputFile, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open input file: %w", err)
	}
	defer inputFile.Close()

	decoder := wav.NewDecoder(inputFile)
	if !decoder.IsValidFile() {
		return fmt.Errorf("invalid WAV file: %s", inputPath)
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return fmt.Errorf("failed to read PCM data: %w", err)
	}

	inputRate := buf.Format.SampleRate
	channels := buf.Format.NumChannels
	bitDepth := int(decoder.BitDepth)
	if verbose {
		log.Printf("Input format: %d Hz, %d channels, %d-bit", inputRate, channels, bitDepth)
	}

	maxVal := maxValue(bitDepth)
	channelData := deinterleave(buf.Data, channels, maxVal)

	resampled, err := resampleChannels(channelData, float64(inputRate), float64(targetRate))
	if err != nil {
		return err
	}

	if verbose {
		log.Printf("Resampled %d samples per channel to %d at %d Hz",
			len(channelData[0]), len(resampled[0]), targetRate)
	}

	outputFile, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer outputFile.Close()

	encoder := wav.NewEncoder(outputFile, targetRate, bitDepth, channels, wavPCMFormat)
	outBuf := &audio.IntBuffer{
		Data: interleave(resampled, maxVal),
		Format: &audio.Format{
			NumChannels: channels,
			SampleRate:  targetRate,
		},
		SourceBitDepth: bitDepth,
	}
	if err := encoder.Write(outBuf); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return encoder.Close()
}

// resampleChannels resamples each channel concurrently.
func resampleChannels(channels [][]float64, inputRate, targetRate float64) ([][]float64, error) {
	resampled := make([][]float64, len(channels))
	var wg sync.WaitGroup
	var processErr error
	var errMu sync.Mutex

	for ch := range channels {
		wg.Add(1)
		go func(channel int) {
			defer wg.Done()
			out, err := monospline.Resample(channels[channel], inputRate, targetRate)
			if err != nil {
				errMu.Lock()
				if processErr == nil {
					processErr = fmt.Errorf("resampling failed on channel %d: %w", channel, err)
				}
				errMu.Unlock()
				return
			}
			resampled[channel] = out
		}(ch)
	}
	wg.Wait()

	if processErr != nil {
		return nil, processErr
	}
	return resampled, nil
}

// maxValue returns the full-scale value for a signed PCM bit depth.
func maxValue(bitDepth int) float64 {
	return float64(int64(1)<<(bitDepth-1) - 1)
}

// deinterleave splits interleaved integer PCM into per-channel float64
// slices normalized to [-1, 1].
func deinterleave(data []int, channels int, maxVal float64) [][]float64 {
	numSamples := len(data) / channels
	out := make([][]float64, channels)
	for ch := range out {
		out[ch] = make([]float64, numSamples)
	}
	for i := 0; i < numSamples; i++ {
		for ch := 0; ch < channels; ch++ {
			out[ch][i] = float64(data[i*channels+ch]) / maxVal
		}
	}
	return out
}

// interleave merges per-channel float64 slices back into interleaved
// integer PCM, clamping to full scale. Channels shorter than the longest
// one are zero-padded.
func interleave(channels [][]float64, maxVal float64) []int {
	numSamples := 0
	for _, ch := range channels {
		if len(ch) > numSamples {
			numSamples = len(ch)
		}
	}

	out := make([]int, numSamples*len(channels))
	for ch, data := range channels {
		for i, v := range data {
			scaled := math.Round(v * maxVal)
			if scaled > maxVal {
				scaled = maxVal
			} else if scaled < -maxVal {
				scaled = -maxVal
			}
			out[i*len(channels)+ch] = int(scaled)
		}
	}
	return out
}
