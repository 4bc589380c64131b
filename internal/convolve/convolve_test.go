package convolve

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hornwerk/hornsim/internal/testutil"
)

const (
	convTolerance = 1e-9

	shortKernelLen = 64
	longKernelLen  = 1024
	signalLen      = 4096

	randomSeed = 42
)

// naiveConvolveValid is the O(N×M) reference implementation.
func naiveConvolveValid(signal, kernel []float64) []float64 {
	n := len(signal) - len(kernel) + 1
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	for i := range out {
		var acc float64
		for j, k := range kernel {
			acc += signal[i+j] * k
		}
		out[i] = acc
	}
	return out
}

func randomSignal(n int, rng *rand.Rand) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = rng.Float64()*2 - 1
	}
	return s
}

// TestFFTConvolver_MatchesNaive verifies the overlap-save path against
// the direct reference for a kernel long enough to take the FFT path.
func TestFFTConvolver_MatchesNaive(t *testing.T) {
	rng := rand.New(rand.NewSource(randomSeed))
	signal := randomSignal(signalLen, rng)
	kernel := randomSignal(longKernelLen, rng)

	want := naiveConvolveValid(signal, kernel)
	got := make([]float64, len(want))

	conv := NewFFTConvolver(kernel)
	require.NotNil(t, conv)
	conv.Convolve(got, signal)

	testutil.AssertNoNaNOrInf(t, got)
	for i := range want {
		assert.InDelta(t, want[i], got[i], convTolerance, "sample %d", i)
	}
}

// TestWithImpulse_ShortKernel verifies the direct SIMD path.
func TestWithImpulse_ShortKernel(t *testing.T) {
	rng := rand.New(rand.NewSource(randomSeed))
	signal := randomSignal(signalLen, rng)
	kernel := randomSignal(shortKernelLen, rng)

	want := naiveConvolveValid(signal, kernel)
	got := make([]float64, len(want))
	WithImpulse(got, signal, kernel)

	for i := range want {
		assert.InDelta(t, want[i], got[i], convTolerance, "sample %d", i)
	}
}

// TestFFTConvolver_Impulse verifies that convolving with a unit impulse
// reproduces the signal.
func TestFFTConvolver_Impulse(t *testing.T) {
	rng := rand.New(rand.NewSource(randomSeed))
	signal := randomSignal(2048, rng)

	kernel := make([]float64, longKernelLen)
	kernel[0] = 1

	got := make([]float64, len(signal)-len(kernel)+1)
	conv := NewFFTConvolver(kernel)
	require.NotNil(t, conv)
	conv.Convolve(got, signal)

	for i := range got {
		assert.InDelta(t, signal[i], got[i], convTolerance, "sample %d", i)
	}
}

func TestNewFFTConvolver_Empty(t *testing.T) {
	assert.Nil(t, NewFFTConvolver(nil))
}
