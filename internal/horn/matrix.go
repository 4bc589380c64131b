// Package horn implements acoustic transmission-line models of horn
// flares: closed-form two-port matrices for the exponential, conical
// and hyperbolic (Salmon) profile families, and the chaining of
// multi-segment horns.
//
// Convention: every transfer matrix relates the (pressure, volume
// velocity) pair at the throat of an element to the same pair at its
// mouth:
//
//	| p_throat |   | A  B | | p_mouth |
//	| U_throat | = | C  D | | U_mouth |
//
// so that an impedance Z loading the mouth transforms to the throat as
// (A·Z + B)/(C·Z + D), and a horn chained from segments 1 (throat) to
// N (mouth) has the composite matrix M₁·M₂·…·M_N.
package horn

// Matrix is a 2×2 complex transmission (ABCD) matrix.
type Matrix struct {
	A, B, C, D complex128
}

// Identity returns the identity two-port (a zero-length element).
func Identity() Matrix {
	return Matrix{A: 1, D: 1}
}

// Mul returns the matrix product m·n: the two-port n is attached on the
// mouth side of m.
func (m Matrix) Mul(n Matrix) Matrix {
	return Matrix{
		A: m.A*n.A + m.B*n.C,
		B: m.A*n.B + m.B*n.D,
		C: m.C*n.A + m.D*n.C,
		D: m.C*n.B + m.D*n.D,
	}
}

// Det returns the determinant A·D − B·C. For any lossless reciprocal
// two-port the determinant is exactly 1; numerical evaluation should
// agree within floating tolerance.
func (m Matrix) Det() complex128 {
	return m.A*m.D - m.B*m.C
}

// TransformImpedance reflects a load impedance on the mouth side
// through the two-port to the throat side: (A·Z + B)/(C·Z + D).
func (m Matrix) TransformImpedance(z complex128) complex128 {
	return (m.A*z + m.B) / (m.C*z + m.D)
}
