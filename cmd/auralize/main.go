// Command auralize makes a simulated horn system audible: it convolves
// a WAV file with the system's impulse response so the result sounds
// the way the system would reproduce the input.
//
// Usage:
//
//	auralize -system horn.txt input.wav output.wav
//	auralize -system horn.txt -ir-length 8192 -voltage 2.83 input.wav output.wav
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"sync"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/hornwerk/hornsim"
	"github.com/hornwerk/hornsim/internal/convolve"
)

const (
	defaultIRLength = 4096
	defaultVoltage  = 2.83

	minRequiredArgs = 2

	// Peak target after convolution, about -1 dBFS of headroom.
	normalizeTarget = 0.891

	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32
	maxInt16        = 32767.0
	maxInt24        = 8388607.0
	maxInt32        = 2147483647.0

	wavAudioFormatPCM = 1
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	systemPath := flag.String("system", "", "System record file (required)")
	irLength := flag.Int("ir-length", defaultIRLength, "Impulse response length in samples (even, >= 64)")
	voltage := flag.Float64("voltage", defaultVoltage, "Drive voltage in V rms")
	irOut := flag.String("save-ir", "", "Also write the impulse response itself as a mono WAV")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	args := flag.Args()
	if *systemPath == "" || len(args) < minRequiredArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s -system horn.txt [options] input.wav output.wav\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		return fmt.Errorf("insufficient arguments")
	}
	inputPath, outputPath := args[0], args[1]

	cfg, err := hornsim.LoadRecordFile(*systemPath)
	if err != nil {
		return err
	}
	sys, err := hornsim.NewSystem(cfg)
	if err != nil {
		return err
	}

	channels, rate, bitDepth, err := readChannels(inputPath)
	if err != nil {
		return err
	}
	if *verbose {
		log.Printf("Input: %d Hz, %d channels, %d-bit, %d samples",
			rate, len(channels), bitDepth, len(channels[0]))
	}

	ir, err := sys.ImpulseResponse(float64(rate), *irLength, *voltage)
	if err != nil {
		return err
	}
	if *verbose {
		log.Printf("Impulse response: %d samples at %d Hz", len(ir), rate)
	}

	if *irOut != "" {
		mono := [][]float64{append([]float64(nil), ir...)}
		normalizePeak(mono)
		if err := writeChannels(*irOut, mono, rate, bitDepth); err != nil {
			return fmt.Errorf("saving impulse response: %w", err)
		}
	}

	processed, err := convolveChannels(channels, ir)
	if err != nil {
		return err
	}
	normalizePeak(processed)

	if err := writeChannels(outputPath, processed, rate, bitDepth); err != nil {
		return err
	}

	fmt.Printf("Auralized %s -> %s through %s\n", inputPath, outputPath, *systemPath)
	return nil
}

// readChannels decodes a WAV file into per-channel float slices
// normalized to [-1, 1].
func readChannels(path string) (channels [][]float64, rate, bitDepth int, err error) {
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
		return nil, 0, 0, fmt.Errorf("failed to read audio data: %w", err)
	}

	numChannels := buf.Format.NumChannels
	bitDepth = int(decoder.BitDepth)
	invMax := 1.0 / maxSampleValue(bitDepth)

	frames := len(buf.Data) / numChannels
	channels = make([][]float64, numChannels)
	for ch := range numChannels {
		channels[ch] = make([]float64, frames)
	}
	for i := range frames {
		base := i * numChannels
		for ch := range numChannels {
			channels[ch][i] = float64(buf.Data[base+ch]) * invMax
		}
	}
	return channels, buf.Format.SampleRate, bitDepth, nil
}

// convolveChannels convolves every channel with the impulse response
// concurrently; channels are independent.
func convolveChannels(channels [][]float64, ir []float64) ([][]float64, error) {
	if len(ir) == 0 {
		return nil, fmt.Errorf("empty impulse response")
	}

	// Direct convolution routines compute the correlation
	// y[n] = Σ x[n+k]·h[k]; front-padding the signal and reversing the
	// kernel turns that into the causal convolution y[n] = Σ h[k]·x[n−k]
	// with one output sample per input sample.
	pad := len(ir) - 1
	reversed := make([]float64, len(ir))
	for i, v := range ir {
		reversed[len(ir)-1-i] = v
	}

	out := make([][]float64, len(channels))
	var wg sync.WaitGroup
	for ch := range channels {
		wg.Add(1)
		go func(ch int) {
			defer wg.Done()

			padded := make([]float64, pad+len(channels[ch]))
			copy(padded[pad:], channels[ch])

			dst := make([]float64, len(channels[ch]))
			convolve.WithImpulse(dst, padded, reversed)
			out[ch] = dst
		}(ch)
	}
	wg.Wait()
	return out, nil
}

// normalizePeak scales all channels by a common factor so the loudest
// sample lands at the headroom target. The impulse response carries
// physical pressure units, so without this the output level would be
// arbitrary.
func normalizePeak(channels [][]float64) {
	peak := 0.0
	for _, ch := range channels {
		for _, v := range ch {
			if a := math.Abs(v); a > peak {
				peak = a
			}
		}
	}
	if peak == 0 {
		return
	}
	scale := normalizeTarget / peak
	for _, ch := range channels {
		for i := range ch {
			ch[i] *= scale
		}
	}
}

// writeChannels interleaves the processed channels and encodes a PCM
// WAV file at the original rate and bit depth.
func writeChannels(path string, channels [][]float64, rate, bitDepth int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()

	numChannels := len(channels)
	frames := len(channels[0])
	maxVal := maxSampleValue(bitDepth)

	data := make([]int, frames*numChannels)
	for i := range frames {
		base := i * numChannels
		for ch := range numChannels {
			s := channels[ch][i]
			if s > 1.0 {
				s = 1.0
			} else if s < -1.0 {
				s = -1.0
			}
			data[base+ch] = int(s * maxVal)
		}
	}

	enc := wav.NewEncoder(f, rate, bitDepth, numChannels, wavAudioFormatPCM)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: numChannels, SampleRate: rate},
		Data:           data,
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("failed to write audio data: %w", err)
	}
	return enc.Close()
}

func maxSampleValue(bitDepth int) float64 {
	switch bitDepth {
	case bitsPerSample24:
		return maxInt24
	case bitsPerSample32:
		return maxInt32
	case bitsPerSample16:
		return maxInt16
	default:
		return maxInt16
	}
}
