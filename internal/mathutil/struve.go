// Package mathutil provides special-function evaluations for acoustic
// radiation calculations.
package mathutil

import (
	"math"
)

// StruveH1 computes the Struve function of order one: H₁(x).
// This function appears in the reactive part of the radiation impedance
// of a rigid circular piston in an infinite baffle.
//
// The implementation uses the trigonometric approximation of Aarts &
// Janssen, "Approximation of the Struve function H1 occurring in
// impedance calculations" (JASA 113, 2003):
//
//	H₁(x) ≈ 2/π − J₀(x) + (16/π − 5)·sin(x)/x + (12 − 36/π)·(1 − cos x)/x²
//
// Accuracy: absolute error below 5·10⁻³ over the whole real axis, which
// is well inside the tolerance of the lumped radiation model this feeds.
//
// The approximation has the correct limits at both ends: H₁(x) → 2x²/(3π)
// as x → 0 and H₁(x) → 2/π as x → ∞.
func StruveH1(x float64) float64 {
	// H₁ is even apart from sign: H₁(−x) = H₁(x) for the impedance use
	// case (ka is always positive); take the absolute value for safety.
	ax := math.Abs(x)

	if ax < smallArgThreshold {
		// Leading series term: H₁(x) = 2x²/(3π) + O(x⁴)
		return 2 * ax * ax / (3 * math.Pi)
	}

	sinTerm := math.Sin(ax) / ax
	cosTerm := (1 - math.Cos(ax)) / (ax * ax)

	return struveTwoOverPi - math.J0(ax) + struveSinCoeff*sinTerm + struveCosCoeff*cosTerm
}

// PistonResistance computes the normalized radiation resistance R₁(ka)
// of a rigid circular piston, where ka is the product of wavenumber and
// piston radius:
//
//	R₁(ka) = 1 − 2·J₁(2ka)/(2ka) = 1 − J₁(2ka)/ka
//
// Limits: R₁ → (ka)²/2 as ka → 0 (mass-controlled region) and R₁ → 1 as
// ka → ∞ (fully radiating).
//
// Reference: Kinsler & Frey, "Fundamentals of Acoustics", ch. 7.
func PistonResistance(ka float64) float64 {
	if ka < smallArgThreshold {
		return pistonResistanceSeriesCoeff * ka * ka
	}
	return 1 - math.J1(2*ka)/ka
}

// PistonReactance computes the normalized radiation reactance X₁(ka) of
// a rigid circular piston:
//
//	X₁(ka) = 2·H₁(2ka)/(2ka) = H₁(2ka)/ka
//
// Limits: X₁ → 8·ka/(3π) as ka → 0 and X₁ → 0 as ka → ∞.
func PistonReactance(ka float64) float64 {
	if ka < smallArgThreshold {
		return pistonReactanceSeriesCoeff * ka
	}
	return StruveH1(2*ka) / ka
}
