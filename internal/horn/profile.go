package horn

import (
	"errors"
	"fmt"

	"github.com/hornwerk/hornsim/internal/acoustic"
)

// Errors reported by horn geometry construction and evaluation.
var (
	// ErrGeometry indicates invalid or discontinuous horn geometry:
	// non-positive areas or lengths, mouth not larger than throat, a
	// shape parameter out of range, or mismatched segment boundaries.
	ErrGeometry = errors.New("invalid horn geometry")

	// ErrInvalidPosition indicates an axial position outside [0, length].
	ErrInvalidPosition = errors.New("position outside horn")
)

// Profile is one closed-form horn flare family over a single physical
// segment. The set of implementations is closed: Exponential, Conical
// and Hyperbolic. Profiles are immutable after construction and safe
// for concurrent use.
type Profile interface {
	// ThroatArea returns the cross-section area at x = 0 in m².
	ThroatArea() float64

	// MouthArea returns the cross-section area at x = Length in m².
	MouthArea() float64

	// Length returns the axial length of the segment in m.
	Length() float64

	// AreaAt returns the cross-section area at axial position x,
	// failing with ErrInvalidPosition when x is outside [0, Length].
	AreaAt(x float64) (float64, error)

	// TransferMatrix returns the lossless transmission matrix of the
	// segment at angular frequency omega in the given medium. The
	// closed forms are valid over the whole complex plane, so
	// below-cutoff (evanescent) operation needs no separate path.
	TransferMatrix(m acoustic.Medium, omega float64) Matrix
}

// validateFlare checks the invariants shared by every profile family.
func validateFlare(throatArea, mouthArea, length float64) error {
	if throatArea <= 0 {
		return fmt.Errorf("%w: throat area %g m² must be positive", ErrGeometry, throatArea)
	}
	if mouthArea <= throatArea {
		return fmt.Errorf("%w: mouth area %g m² must exceed throat area %g m²",
			ErrGeometry, mouthArea, throatArea)
	}
	if length <= 0 {
		return fmt.Errorf("%w: length %g m must be positive", ErrGeometry, length)
	}
	return nil
}

// checkPosition validates an axial coordinate against the segment span.
func checkPosition(x, length float64) error {
	if x < 0 || x > length {
		return fmt.Errorf("%w: x=%g m outside [0, %g]", ErrInvalidPosition, x, length)
	}
	return nil
}
