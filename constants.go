package hornsim

import "math"

// Acoustic reference values.
const (
	// referencePressure is the 20 µPa SPL reference in Pa.
	referencePressure = 20e-6

	// defaultDistance is the measurement distance in m when the
	// configuration leaves it zero.
	defaultDistance = 1.0

	// halfSpaceSolidAngle is the 2π factor of hemispherical radiation.
	halfSpaceSolidAngle = 2 * math.Pi
)

// Thiele-Small plausibility bounds.
const (
	minTotalQ = 0.1
	maxTotalQ = 2.0
)

// Numerical guards.
const (
	// degenerateImpedance is the magnitude below which a required
	// division is reported as ErrDegenerateSystem instead of silently
	// propagating infinities.
	degenerateImpedance = 1e-12

	// pressureFloor keeps the SPL logarithm finite when the radiated
	// pressure underflows, in Pa. Maps to about -146 dB SPL, far below
	// any level of interest.
	pressureFloor = 1e-12
)

// Voice-coil model defaults.
const (
	// defaultLossExponent is the power-law exponent of the lossy
	// semi-inductance model. Measured drivers typically fall in
	// 0.6–0.8; 0.7 matches the calibration data the model was fit to.
	defaultLossExponent = 0.7
)

// Sweep defaults.
const (
	// DefaultSweepStart and DefaultSweepStop bound the audio band
	// sweep used by the convenience helpers, in Hz.
	DefaultSweepStart = 10.0
	DefaultSweepStop  = 20000.0

	// DefaultSweepPoints is the default number of logarithmic points.
	DefaultSweepPoints = 200
)
