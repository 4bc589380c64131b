package acoustic

import (
	"github.com/hornwerk/hornsim/internal/mathutil"
)

// Radiation holds the normalized radiation resistance and reactance of
// a circular piston at one frequency.
type Radiation struct {
	// Resistance is R₁(ka), the normalized radiation resistance.
	Resistance float64

	// Reactance is X₁(ka), the normalized radiation reactance.
	Reactance float64
}

// PistonRadiation evaluates the normalized radiation functions of a
// rigid circular piston of the given area at angular frequency omega.
func PistonRadiation(m Medium, area, omega float64) Radiation {
	ka := m.Wavenumber(omega) * EquivalentRadius(area)
	return Radiation{
		Resistance: mathutil.PistonResistance(ka),
		Reactance:  mathutil.PistonReactance(ka),
	}
}

// RadiationImpedance returns the complex acoustic radiation impedance
// of a circular piston of the given area:
//
//	Z_rad = (ρc/S)·(R₁(ka) + j·X₁(ka))
//
// This is the terminating impedance seen by a horn mouth (or by a bare
// diaphragm) radiating into half space.
func RadiationImpedance(m Medium, area, omega float64) complex128 {
	r := PistonRadiation(m, area, omega)
	z0 := m.Impedance(area)
	return complex(z0*r.Resistance, z0*r.Reactance)
}
