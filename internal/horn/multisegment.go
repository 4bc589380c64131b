package horn

import (
	"fmt"
	"math"

	"github.com/hornwerk/hornsim/internal/acoustic"
)

// MultiSegment is an ordered sequence of segments chained throat to
// mouth. It exclusively owns its segments and is immutable once built;
// evaluating it at any frequency is side-effect-free.
type MultiSegment struct {
	segments []Segment
	offsets  []float64 // cumulative start position of each segment
	length   float64
}

// NewMultiSegment chains segments in throat-to-mouth order. It fails
// with ErrGeometry when no segments are given or when the mouth area of
// a segment does not match the throat area of the next within
// AreaContinuityTolerance.
func NewMultiSegment(segments ...Segment) (*MultiSegment, error) {
	if len(segments) == 0 {
		return nil, fmt.Errorf("%w: horn needs at least one segment", ErrGeometry)
	}

	offsets := make([]float64, len(segments))
	var total float64
	for i, s := range segments {
		if i > 0 {
			prev := segments[i-1].MouthArea()
			cur := s.ThroatArea()
			if math.Abs(prev-cur)/prev > AreaContinuityTolerance {
				return nil, fmt.Errorf(
					"%w: segment %d mouth area %g m² does not meet segment %d throat area %g m²",
					ErrGeometry, i-1, prev, i, cur)
			}
		}
		offsets[i] = total
		total += s.Length()
	}

	owned := make([]Segment, len(segments))
	copy(owned, segments)

	return &MultiSegment{segments: owned, offsets: offsets, length: total}, nil
}

// Segments returns the number of chained segments.
func (h *MultiSegment) Segments() int { return len(h.segments) }

// Length returns the total axial length in m.
func (h *MultiSegment) Length() float64 { return h.length }

// ThroatArea returns the area at the driver end in m².
func (h *MultiSegment) ThroatArea() float64 { return h.segments[0].ThroatArea() }

// MouthArea returns the area at the radiating end in m².
func (h *MultiSegment) MouthArea() float64 {
	return h.segments[len(h.segments)-1].MouthArea()
}

// AreaAt returns the cross-section area at position x along the whole
// horn, dispatching to the owning segment by cumulative offset.
func (h *MultiSegment) AreaAt(x float64) (float64, error) {
	if x < 0 || x > h.length {
		return 0, fmt.Errorf("%w: x=%g m outside [0, %g]", ErrInvalidPosition, x, h.length)
	}

	// Find the last segment starting at or before x.
	i := len(h.segments) - 1
	for i > 0 && h.offsets[i] > x {
		i--
	}
	local := x - h.offsets[i]
	if local > h.segments[i].Length() {
		local = h.segments[i].Length()
	}
	return h.segments[i].AreaAt(local)
}

// TransferMatrix composes the whole-horn transmission matrix at omega:
// M₁·M₂·…·M_N with segment 1 at the throat, preserving the
// mouth-to-throat convention of each segment matrix. The composition of
// lossless two-ports is lossless, so the composite determinant is 1.
func (h *MultiSegment) TransferMatrix(m acoustic.Medium, omega float64) Matrix {
	composite := h.segments[0].TransferMatrix(m, omega)
	for _, s := range h.segments[1:] {
		composite = composite.Mul(s.TransferMatrix(m, omega))
	}
	return composite
}

// ThroatImpedance reflects the load impedance at the mouth (normally
// the mouth radiation impedance) through the whole horn.
func (h *MultiSegment) ThroatImpedance(m acoustic.Medium, omega float64, mouthLoad complex128) complex128 {
	return h.TransferMatrix(m, omega).TransformImpedance(mouthLoad)
}
