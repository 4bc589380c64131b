package hornsim

import (
	"errors"

	"github.com/hornwerk/hornsim/internal/horn"
)

// Errors returned by the simulation core. All validation failures are
// raised immediately at the point of detection and are never retried:
// they indicate invalid input, not transient conditions. An external
// optimization driver is expected to catch these per evaluation and
// substitute a penalty value.
var (
	// ErrGeometry indicates invalid or discontinuous horn geometry:
	// non-positive areas or lengths, mouth not larger than throat, a
	// shape parameter out of range, or mismatched segment boundaries.
	ErrGeometry = horn.ErrGeometry

	// ErrInvalidPosition indicates an axial position outside the horn.
	ErrInvalidPosition = horn.ErrInvalidPosition

	// ErrInvalidFrequency indicates a non-positive evaluation frequency.
	ErrInvalidFrequency = errors.New("invalid frequency")

	// ErrInvalidVoltage indicates a non-positive drive voltage.
	ErrInvalidVoltage = errors.New("invalid drive voltage")

	// ErrDegenerateSystem indicates a computed impedance with
	// near-zero magnitude where a division is required.
	ErrDegenerateSystem = errors.New("degenerate system")

	// ErrParameterRange indicates a Thiele-Small value outside
	// physically plausible bounds.
	ErrParameterRange = errors.New("parameter out of range")

	// ErrInvalidConfig indicates an invalid system configuration.
	ErrInvalidConfig = errors.New("invalid system configuration")
)
