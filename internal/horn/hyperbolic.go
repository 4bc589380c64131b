package horn

import (
	"fmt"
	"math"

	"github.com/hornwerk/hornsim/internal/acoustic"
)

// Hyperbolic is the hyperbolic ("hypex") horn profile of Salmon's
// family:
//
//	S(x) = S_t·(cosh(m·x) + T·sinh(m·x))²
//
// The shape parameter T ∈ (0, 1] interpolates the loading continuously;
// T = 1 is exactly the exponential horn and small T approaches the
// slow-flaring (conical-like) end of the family. All members share the
// cutoff f_c = m·c/2π.
type Hyperbolic struct {
	throatArea float64
	mouthArea  float64
	length     float64
	shape      float64 // T
	flare      float64 // m, in 1/m
}

// NewHyperbolic builds a hyperbolic profile. The flare rate m is
// recovered in closed form: with R = √(S_m/S_t) and u = e^(mL),
// R = ((1+T)u + (1−T)/u)/2 is a quadratic in u, giving
//
//	u = (R + √(R² − (1 − T²))) / (1 + T)
func NewHyperbolic(throatArea, mouthArea, length, shape float64) (*Hyperbolic, error) {
	if err := validateFlare(throatArea, mouthArea, length); err != nil {
		return nil, err
	}
	if shape <= hyperbolicShapeMin || shape > hyperbolicShapeMax {
		return nil, fmt.Errorf("%w: flare shape parameter T=%g outside (0,1]", ErrGeometry, shape)
	}

	r := math.Sqrt(mouthArea / throatArea)
	// R > 1 and 1 − T² < 1, so the discriminant is always positive.
	u := (r + math.Sqrt(r*r-(1-shape*shape))) / (1 + shape)

	return &Hyperbolic{
		throatArea: throatArea,
		mouthArea:  mouthArea,
		length:     length,
		shape:      shape,
		flare:      math.Log(u) / length,
	}, nil
}

// Shape returns the family parameter T.
func (h *Hyperbolic) Shape() float64 { return h.shape }

// Flare returns the flare rate m in 1/m.
func (h *Hyperbolic) Flare() float64 { return h.flare }

// Cutoff returns the cutoff frequency f_c = m·c/2π in Hz, shared by
// every member of the family regardless of T.
func (h *Hyperbolic) Cutoff(m acoustic.Medium) float64 {
	return h.flare * m.SpeedOfSound / (2 * math.Pi)
}

func (h *Hyperbolic) ThroatArea() float64 { return h.throatArea }
func (h *Hyperbolic) MouthArea() float64  { return h.mouthArea }
func (h *Hyperbolic) Length() float64     { return h.length }

// AreaAt returns S_t·(cosh(mx) + T·sinh(mx))².
func (h *Hyperbolic) AreaAt(x float64) (float64, error) {
	if err := checkPosition(x, h.length); err != nil {
		return 0, err
	}
	f := math.Cosh(h.flare*x) + h.shape*math.Sinh(h.flare*x)
	return h.throatArea * f * f, nil
}

// TransferMatrix evaluates the Salmon closed form for this T.
func (h *Hyperbolic) TransferMatrix(m acoustic.Medium, omega float64) Matrix {
	return salmonMatrix(m, h.throatArea, h.mouthArea, h.flare, h.shape, h.length, omega)
}
