package horn

import (
	"github.com/hornwerk/hornsim/internal/acoustic"
)

// Segment is one physical length of horn using exactly one profile.
// Segments are owned exclusively by a MultiSegment horn once chained.
type Segment struct {
	profile Profile
}

// NewSegment wraps a constructed profile as a chainable segment.
func NewSegment(p Profile) Segment {
	return Segment{profile: p}
}

// Profile returns the underlying flare family.
func (s Segment) Profile() Profile { return s.profile }

// ThroatArea returns the segment's throat-side area in m².
func (s Segment) ThroatArea() float64 { return s.profile.ThroatArea() }

// MouthArea returns the segment's mouth-side area in m².
func (s Segment) MouthArea() float64 { return s.profile.MouthArea() }

// Length returns the segment's axial length in m.
func (s Segment) Length() float64 { return s.profile.Length() }

// AreaAt returns the cross-section area at local position x.
func (s Segment) AreaAt(x float64) (float64, error) {
	return s.profile.AreaAt(x)
}

// TransferMatrix returns the segment's transmission matrix at omega.
func (s Segment) TransferMatrix(m acoustic.Medium, omega float64) Matrix {
	return s.profile.TransferMatrix(m, omega)
}
