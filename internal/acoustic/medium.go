// Package acoustic provides the fluid medium, piston radiation impedance
// and lumped chamber elements used by the horn simulation engine.
package acoustic

import "math"

// Medium holds the physical constants of the propagation fluid.
// A Medium is immutable after construction and is shared read-only by
// every evaluator; concurrent frequency evaluations never mutate it.
type Medium struct {
	// SpeedOfSound in m/s.
	SpeedOfSound float64

	// Density of the fluid in kg/m³.
	Density float64
}

// Air returns the standard medium used for loudspeaker work: air at
// 25 °C and 1 atm. The values match the reference simulator so that
// cross-validation against it is meaningful.
func Air() Medium {
	return Medium{
		SpeedOfSound: airSpeedOfSound,
		Density:      airDensity,
	}
}

// Wavenumber returns k = ω/c for the given angular frequency.
func (m Medium) Wavenumber(omega float64) float64 {
	return omega / m.SpeedOfSound
}

// Impedance returns the characteristic acoustic impedance ρc/S of a
// duct of the given cross-section area.
func (m Medium) Impedance(area float64) float64 {
	return m.Density * m.SpeedOfSound / area
}

// EquivalentRadius returns the radius of the circle with the given area.
func EquivalentRadius(area float64) float64 {
	return math.Sqrt(area / math.Pi)
}
