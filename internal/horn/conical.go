package horn

import (
	"math"

	"github.com/hornwerk/hornsim/internal/acoustic"
)

// Conical is the conical horn profile: straight walls, radius linear in
// axial position, so the segment is a frustum of a cone with apex at
// distance r₁ = L·a_t/(a_m − a_t) behind the throat. Conical horns have
// no cutoff frequency; the spherical-wave solution passes all
// frequencies with frequency-dependent phase and loading only.
type Conical struct {
	throatArea float64
	mouthArea  float64
	length     float64
	apexDist   float64 // r₁, throat distance from apex in m
}

// NewConical builds a conical profile from the boundary areas and length.
func NewConical(throatArea, mouthArea, length float64) (*Conical, error) {
	if err := validateFlare(throatArea, mouthArea, length); err != nil {
		return nil, err
	}
	at := math.Sqrt(throatArea / math.Pi)
	am := math.Sqrt(mouthArea / math.Pi)
	return &Conical{
		throatArea: throatArea,
		mouthArea:  mouthArea,
		length:     length,
		apexDist:   length * at / (am - at),
	}, nil
}

func (c *Conical) ThroatArea() float64 { return c.throatArea }
func (c *Conical) MouthArea() float64  { return c.mouthArea }
func (c *Conical) Length() float64     { return c.length }

// AreaAt returns π·a(x)² with the radius a(x) linear between throat and
// mouth.
func (c *Conical) AreaAt(x float64) (float64, error) {
	if err := checkPosition(x, c.length); err != nil {
		return 0, err
	}
	at := math.Sqrt(c.throatArea / math.Pi)
	am := math.Sqrt(c.mouthArea / math.Pi)
	a := at + (am-at)*x/c.length
	return math.Pi * a * a, nil
}

// TransferMatrix evaluates the spherical-wave closed form. With r₁ the
// throat and r₂ = r₁ + L the mouth distance from the apex, s = sin kL
// and co = cos kL:
//
//	A = (r₂/r₁)·co − s/(k·r₁)
//	B = j·(ρc/S_t)·(r₁/r₂)·s
//	C = j·(S_t/(ρc·k·r₁²))·((1/k + k·r₁·r₂)·s − L·co)
//	D = (r₁/r₂)·co + s/(k·r₂)
//
// The determinant reduces to cos² + sin² = 1 identically.
func (c *Conical) TransferMatrix(m acoustic.Medium, omega float64) Matrix {
	k := m.Wavenumber(omega)
	r1 := c.apexDist
	r2 := r1 + c.length
	s, co := math.Sincos(k * c.length)
	rhoC := m.Density * m.SpeedOfSound

	return Matrix{
		A: complex((r2/r1)*co-s/(k*r1), 0),
		B: complex(0, (rhoC/c.throatArea)*(r1/r2)*s),
		C: complex(0, c.throatArea/(rhoC*k*r1*r1)*((1/k+k*r1*r2)*s-c.length*co)),
		D: complex((r1/r2)*co+s/(k*r2), 0),
	}
}
