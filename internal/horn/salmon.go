package horn

import (
	"math"
	"math/cmplx"

	"github.com/hornwerk/hornsim/internal/acoustic"
)

// The exponential and hyperbolic families are both members of Salmon's
// constant-cutoff horn family: flares whose square-root-of-area
// function F(x) = √S(x) satisfies F″/F = m² with a constant flare rate
// m. Substituting p = ψ/F into the horn equation then reduces it to
// ψ″ + (k² − m²)ψ = 0, which has the single closed-form solution used
// below for every member of the family.
//
// Reference: V. Salmon, "A new family of horns", JASA 17 (1946).

// salmonMatrix returns the transmission matrix of a Salmon-family
// segment with flare rate m, shape parameter t (t = 1 is exponential),
// boundary areas throatArea/mouthArea and the given length.
//
// With b = √(k² − m²), s = sin(bL)/b, co = cos(bL), F_t = √S_t,
// F_m = √S_m and β = (sinh mL + t·cosh mL)/(cosh mL + t·sinh mL):
//
//	A = (F_m/F_t)·(co − m·β·s)
//	B = jωρ·s/(F_t·F_m)
//	C = j·(F_t·F_m/ωρ)·((b² + m²·t·β)·s + m·(β − t)·co)
//	D = (F_t/F_m)·(co + m·t·s)
//
// Below cutoff (k < m) b is imaginary and the same expressions become
// the evanescent solution; cmplx.Sqrt handles this with no branching.
func salmonMatrix(med acoustic.Medium, throatArea, mouthArea, flare, shape, length, omega float64) Matrix {
	k := med.Wavenumber(omega)
	b := cmplx.Sqrt(complex(k*k-flare*flare, 0))

	co := cmplx.Cos(b * complex(length, 0))
	s := sinOver(b, length) // sin(bL)/b, finite at b = 0

	ft := math.Sqrt(throatArea)
	fm := math.Sqrt(mouthArea)
	omegaRho := omega * med.Density

	sh, ch := math.Sinh(flare*length), math.Cosh(flare*length)
	beta := (sh + shape*ch) / (ch + shape*sh)

	m := complex(flare, 0)
	t := complex(shape, 0)
	betaC := complex(beta, 0)

	return Matrix{
		A: complex(fm/ft, 0) * (co - m*betaC*s),
		B: complex(0, omegaRho/(ft*fm)) * s,
		C: complex(0, ft*fm/omegaRho) * ((b*b+m*m*t*betaC)*s + m*(betaC-t)*co),
		D: complex(ft/fm, 0) * (co + m*t*s),
	}
}

// sinOver returns sin(b·L)/b, using the series 1 − (bL)²/6 near b = 0
// so that operation exactly at the cutoff frequency stays finite.
func sinOver(b complex128, length float64) complex128 {
	bl := b * complex(length, 0)
	if cmplx.Abs(bl) < sinOverArgThreshold {
		return complex(length, 0) * (1 - bl*bl*complex(sinOverSeriesCoeff, 0))
	}
	return cmplx.Sin(bl) / b
}
