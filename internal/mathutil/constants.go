package mathutil

import "math"

// Struve H₁ approximation constants (Aarts & Janssen).
const (
	struveTwoOverPi = 2.0 / math.Pi

	// Coefficients of the trigonometric fit:
	// H₁(x) ≈ 2/π − J₀(x) + (16/π − 5)·sin(x)/x + (12 − 36/π)·(1 − cos x)/x²
	struveSinCoeff = 16.0/math.Pi - 5.0
	struveCosCoeff = 12.0 - 36.0/math.Pi
)

// Series-expansion thresholds.
const (
	// Below this argument the closed-form fits lose precision to
	// cancellation; the leading series terms are exact enough instead.
	smallArgThreshold = 1e-6

	// Leading series coefficients for the piston functions:
	//   R₁(ka) → (ka)²/2,  X₁(ka) → 8·ka/(3π)  as ka → 0
	pistonResistanceSeriesCoeff = 0.5
	pistonReactanceSeriesCoeff  = 8.0 / (3.0 * math.Pi)
)
