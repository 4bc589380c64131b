package hornsim

import (
	"fmt"

	"gonum.org/v1/gonum/dsp/fourier"
)

// Impulse synthesis constants.
const (
	// minImpulseLength keeps the linear frequency grid dense enough to
	// resolve the low-frequency response.
	minImpulseLength = 64

	// impulseHermitianDivisor: a real FFT of size N has N/2 + 1 unique
	// complex coefficients.
	impulseHermitianDivisor = 2
)

// ImpulseResponse synthesizes the pressure impulse response at the
// measurement point by inverse real FFT of the complex frequency
// response sampled on a linear grid of n points at the given sample
// rate. The result is the pressure (Pa per volt of drive, scaled by
// voltage) over n/sampleRate seconds; convolving program material with
// it auralizes the system.
//
// n must be an even power-of-two-friendly length of at least 64;
// sampleRate and voltage must be positive.
func (s *System) ImpulseResponse(sampleRate float64, n int, voltage float64) ([]float64, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: sample rate %g Hz must be positive", ErrInvalidFrequency, sampleRate)
	}
	if voltage <= 0 {
		return nil, fmt.Errorf("%w: voltage %g V must be positive", ErrInvalidVoltage, voltage)
	}
	if n < minImpulseLength || n%2 != 0 {
		return nil, fmt.Errorf("%w: impulse length %d must be even and ≥ %d",
			ErrInvalidConfig, n, minImpulseLength)
	}

	bins := n/impulseHermitianDivisor + 1
	spectrum := make([]complex128, bins)

	// Bin 0 is DC: a loudspeaker radiates nothing at 0 Hz.
	for k := 1; k < bins; k++ {
		f := float64(k) * sampleRate / float64(n)
		h, err := s.pressureResponse(f, voltage)
		if err != nil {
			return nil, err
		}
		spectrum[k] = h
	}

	fft := fourier.NewFFT(n)
	ir := fft.Sequence(nil, spectrum)

	// gonum's inverse transform is unnormalized.
	scale := 1 / float64(n)
	for i := range ir {
		ir[i] *= scale
	}
	return ir, nil
}
