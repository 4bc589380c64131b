package hornsim

import (
	"fmt"

	"github.com/hornwerk/hornsim/internal/horn"
)

// ProfileKind tags one of the closed set of horn flare families.
type ProfileKind int

const (
	// ProfileExponential is the exponential flare S(x) = S_t·e^(2mx).
	ProfileExponential ProfileKind = iota

	// ProfileConical is the straight-walled conical flare.
	ProfileConical

	// ProfileHyperbolic is the hyperbolic (hypex) flare with shape
	// parameter T ∈ (0, 1]; T = 1 is the exponential limit.
	ProfileHyperbolic
)

// String returns the record tag used by the text exchange format.
func (k ProfileKind) String() string {
	switch k {
	case ProfileExponential:
		return "EXP"
	case ProfileConical:
		return "CON"
	case ProfileHyperbolic:
		return "HYP"
	default:
		return "UNKNOWN"
	}
}

// SegmentSpec describes one horn segment: profile family, boundary
// areas in m², axial length in m and, for the hyperbolic family, the
// shape parameter T.
type SegmentSpec struct {
	Kind       ProfileKind
	ThroatArea float64
	MouthArea  float64
	Length     float64
	Shape      float64 // T, hyperbolic only
}

// buildHorn validates the segment specs and assembles the owned
// multi-segment transmission line.
func buildHorn(specs []SegmentSpec) (*horn.MultiSegment, error) {
	segments := make([]horn.Segment, 0, len(specs))
	for i, s := range specs {
		p, err := buildProfile(s)
		if err != nil {
			return nil, fmt.Errorf("segment %d: %w", i, err)
		}
		segments = append(segments, horn.NewSegment(p))
	}
	return horn.NewMultiSegment(segments...)
}

func buildProfile(s SegmentSpec) (horn.Profile, error) {
	switch s.Kind {
	case ProfileExponential:
		return horn.NewExponential(s.ThroatArea, s.MouthArea, s.Length)
	case ProfileConical:
		return horn.NewConical(s.ThroatArea, s.MouthArea, s.Length)
	case ProfileHyperbolic:
		return horn.NewHyperbolic(s.ThroatArea, s.MouthArea, s.Length, s.Shape)
	default:
		return nil, fmt.Errorf("%w: unknown profile kind %d", ErrGeometry, s.Kind)
	}
}
