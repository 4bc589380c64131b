package horn

import (
	"math"

	"github.com/hornwerk/hornsim/internal/acoustic"
)

// Exponential is the exponential horn profile: S(x) = S_t·e^(2mx) with
// the flare constant m derived from the boundary areas and length.
// Below the cutoff frequency f_c = m·c/2π the flare no longer supports
// propagating waves; the transfer matrix then describes the evanescent
// field through the same closed form.
type Exponential struct {
	throatArea float64
	mouthArea  float64
	length     float64
	flare      float64 // m, in 1/m
}

// NewExponential builds an exponential profile from throat area, mouth
// area (both m²) and length (m).
func NewExponential(throatArea, mouthArea, length float64) (*Exponential, error) {
	if err := validateFlare(throatArea, mouthArea, length); err != nil {
		return nil, err
	}
	return &Exponential{
		throatArea: throatArea,
		mouthArea:  mouthArea,
		length:     length,
		flare:      math.Log(mouthArea/throatArea) / (2 * length),
	}, nil
}

// Flare returns the flare constant m in 1/m.
func (e *Exponential) Flare() float64 { return e.flare }

// Cutoff returns the geometric cutoff frequency f_c = m·c/2π in Hz.
func (e *Exponential) Cutoff(m acoustic.Medium) float64 {
	return e.flare * m.SpeedOfSound / (2 * math.Pi)
}

func (e *Exponential) ThroatArea() float64 { return e.throatArea }
func (e *Exponential) MouthArea() float64  { return e.mouthArea }
func (e *Exponential) Length() float64     { return e.length }

// AreaAt returns S_t·e^(2mx).
func (e *Exponential) AreaAt(x float64) (float64, error) {
	if err := checkPosition(x, e.length); err != nil {
		return 0, err
	}
	return e.throatArea * math.Exp(2*e.flare*x), nil
}

// TransferMatrix evaluates the exponential closed form, the t = 1
// member of the Salmon family.
func (e *Exponential) TransferMatrix(m acoustic.Medium, omega float64) Matrix {
	return salmonMatrix(m, e.throatArea, e.mouthArea, e.flare, 1, e.length, omega)
}
