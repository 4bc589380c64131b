package acoustic

// Chamber is a lumped acoustic compliance: a closed air volume small
// compared to the wavelength. Compliance is derived once at
// construction; a zero-volume chamber is a valid no-op element.
type Chamber struct {
	// Volume of the chamber in m³.
	Volume float64

	// Compliance C = V/(ρc²) in m³/Pa. Zero when the chamber is absent.
	Compliance float64
}

// NewChamber builds a chamber of the given volume in the given medium.
// Volume zero models an absent chamber; its impedance contributions are
// identity elements, not nil references.
func NewChamber(m Medium, volume float64) Chamber {
	c := Chamber{Volume: volume}
	if volume > 0 {
		c.Compliance = volume / (m.Density * m.SpeedOfSound * m.SpeedOfSound)
	}
	return c
}

// SeriesImpedance returns the acoustic impedance the chamber inserts in
// series in the impedance chain: 1/(jωC). An absent chamber contributes
// zero (the series identity).
func (c Chamber) SeriesImpedance(omega float64) complex128 {
	if c.Compliance == 0 {
		return 0
	}
	return complex(0, -1/(omega*c.Compliance))
}

// ShuntImpedance returns the acoustic impedance the chamber presents as
// a shunt load, e.g. the rear chamber behind a driver. An absent
// chamber contributes zero load.
func (c Chamber) ShuntImpedance(omega float64) complex128 {
	// For a pure compliance the shunt load equals the series element.
	return c.SeriesImpedance(omega)
}
