// Package convolve implements convolution of program material with a
// simulated impulse response: direct SIMD convolution for short
// responses and overlap-save FFT convolution for long ones.
package convolve

import (
	"github.com/tphakala/simd/c128"
	"github.com/tphakala/simd/f64"
	"gonum.org/v1/gonum/dsp/fourier"
)

const (
	// minKernelForFFT is the impulse-response length above which FFT
	// convolution beats direct SIMD convolution (crossover measured
	// around 400-500 taps with gonum's FFT).
	minKernelForFFT = 400

	// defaultFFTBlockSize is the starting FFT size (power of 2).
	defaultFFTBlockSize = 512

	// hermitianDivisor: a real FFT of size N has N/2 + 1 unique
	// complex coefficients.
	hermitianDivisor = 2
)

// FFTConvolver performs overlap-save FFT convolution of audio with a
// fixed impulse response. This is O(N log N) vs O(N×M) for direct
// convolution, beneficial for the long responses of low-cutoff horns.
//
// Overlap-save method:
//  1. Process input in blocks of fftSize samples (with kernelLen-1 overlap)
//  2. Each block produces blockSize = fftSize - kernelLen + 1 valid samples
//  3. The first kernelLen-1 samples of each block are discarded
//     (circular wrap artifacts)
type FFTConvolver struct {
	fft       *fourier.FFT
	fftSize   int
	blockSize int

	kernelFFT []complex128
	kernelLen int
	scale     float64 // 1/fftSize; gonum's inverse is unnormalized

	signalBlock []float64
	signalFFT   []complex128
	productFFT  []complex128
	ifftResult  []float64
}

// NewFFTConvolver creates a convolver for the given impulse response.
// The response is transformed once and reused for all convolutions.
// Returns nil for an empty response.
func NewFFTConvolver(impulse []float64) *FFTConvolver {
	kernelLen := len(impulse)
	if kernelLen == 0 {
		return nil
	}

	fftSize := defaultFFTBlockSize
	for fftSize < 2*kernelLen {
		fftSize *= 2
	}
	blockSize := fftSize - kernelLen + 1
	fft := fourier.NewFFT(fftSize)

	// Reverse the kernel: FFT circular convolution computes
	// y[n] = Σ x[(n−k) mod N]·h[k]; reversing h yields the valid
	// convolution y[n] = Σ x[n+k]·h[k].
	kernelPadded := make([]float64, fftSize)
	for i := range kernelLen {
		kernelPadded[i] = impulse[kernelLen-1-i]
	}
	kernelFFT := fft.Coefficients(nil, kernelPadded)

	fftLen := fftSize/hermitianDivisor + 1

	return &FFTConvolver{
		fft:         fft,
		fftSize:     fftSize,
		blockSize:   blockSize,
		kernelFFT:   kernelFFT,
		kernelLen:   kernelLen,
		scale:       1.0 / float64(fftSize),
		signalBlock: make([]float64, fftSize),
		signalFFT:   make([]complex128, fftLen),
		productFFT:  make([]complex128, fftLen),
		ifftResult:  make([]float64, fftSize),
	}
}

// Convolve performs overlap-save convolution.
// dst must have length >= len(signal) - kernelLen + 1.
func (c *FFTConvolver) Convolve(dst, signal []float64) {
	signalLen := len(signal)
	outputLen := signalLen - c.kernelLen + 1
	if outputLen <= 0 || len(dst) < outputLen {
		return
	}

	outIdx := 0
	overlap := c.kernelLen - 1

	for outIdx < outputLen {
		for i := range c.signalBlock {
			c.signalBlock[i] = 0
		}

		copyLen := c.fftSize
		if outIdx+copyLen > signalLen {
			copyLen = signalLen - outIdx
		}
		if copyLen > 0 {
			copy(c.signalBlock, signal[outIdx:outIdx+copyLen])
		}

		c.signalFFT = c.fft.Coefficients(c.signalFFT, c.signalBlock)
		c128.Mul(c.productFFT, c.signalFFT, c.kernelFFT)
		c.ifftResult = c.fft.Sequence(c.ifftResult, c.productFFT)
		f64.Scale(c.ifftResult, c.ifftResult, c.scale)

		validSamples := c.blockSize
		if outIdx+validSamples > outputLen {
			validSamples = outputLen - outIdx
		}
		copy(dst[outIdx:outIdx+validSamples], c.ifftResult[overlap:overlap+validSamples])

		outIdx += validSamples
	}
}

// WithImpulse convolves signal with the impulse response, choosing the
// direct SIMD path for short responses and overlap-save FFT for long
// ones. dst must have length >= len(signal) - len(impulse) + 1.
func WithImpulse(dst, signal, impulse []float64) {
	if len(impulse) < minKernelForFFT {
		f64.ConvolveValid(dst, signal, impulse)
		return
	}
	if conv := NewFFTConvolver(impulse); conv != nil {
		conv.Convolve(dst, signal)
	}
}
