package acoustic

// Standard air at 25 °C and 1 atm, matching the values used by common
// loudspeaker simulators so cross-validation lines up.
const (
	airSpeedOfSound = 344.0 // m/s
	airDensity      = 1.205 // kg/m³
)
