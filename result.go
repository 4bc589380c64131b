package hornsim

import (
	"math"
	"math/cmplx"
)

// Point is the system response at one frequency.
type Point struct {
	// Frequency in Hz.
	Frequency float64

	// Impedance is the complex electrical impedance at the terminals.
	Impedance complex128

	// Velocity is the complex diaphragm velocity in m/s, phase
	// referenced to the drive voltage. Its magnitude is derived from
	// the active current (see System.At).
	Velocity complex128

	// SPL is the sound pressure level at the measurement distance in
	// dB re 20 µPa.
	SPL float64

	// RadiationResistance and RadiationReactance are the normalized
	// piston radiation functions R₁(ka), X₁(ka) at the radiating area.
	RadiationResistance float64
	RadiationReactance  float64

	// Efficiency is radiated acoustic power over electrical input
	// power, both derived from the active current.
	Efficiency float64
}

// ImpedanceMagnitude returns |Z_e| in Ω.
func (p Point) ImpedanceMagnitude() float64 { return cmplx.Abs(p.Impedance) }

// ImpedancePhase returns the electrical impedance phase in radians.
func (p Point) ImpedancePhase() float64 { return cmplx.Phase(p.Impedance) }

// VelocityMagnitude returns |v| in m/s.
func (p Point) VelocityMagnitude() float64 { return cmplx.Abs(p.Velocity) }

// VelocityPhase returns the diaphragm velocity phase in radians.
func (p Point) VelocityPhase() float64 { return cmplx.Phase(p.Velocity) }

// Response is an ordered frequency response, one Point per frequency.
type Response []Point

// MaxSPL returns the highest SPL in the response, or -Inf when empty.
func (r Response) MaxSPL() float64 {
	maxSPL := math.Inf(-1)
	for _, p := range r {
		if p.SPL > maxSPL {
			maxSPL = p.SPL
		}
	}
	return maxSPL
}

// PeakImpedance returns the point with the largest electrical impedance
// magnitude; the impedance peak marks the system resonance.
func (r Response) PeakImpedance() Point {
	var peak Point
	best := math.Inf(-1)
	for _, p := range r {
		if m := p.ImpedanceMagnitude(); m > best {
			best = m
			peak = p
		}
	}
	return peak
}
