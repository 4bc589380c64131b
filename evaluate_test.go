package hornsim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate_SealedMatchesDirectConfig(t *testing.T) {
	d := sealedBoxWoofer(t)
	freqs := LogFrequencies(20, 500, 40)
	const boxVolume = 0.065

	viaVector, err := Evaluate([]float64{boxVolume}, d, EnclosureSealed, freqs, testDriveVoltage)
	require.NoError(t, err)

	sys, err := NewSystem(&SystemConfig{Driver: d, RearChamberVolume: boxVolume})
	require.NoError(t, err)
	direct, err := sys.Sweep(freqs, testDriveVoltage, false)
	require.NoError(t, err)

	assert.Equal(t, direct, viaVector)
}

func TestEvaluate_HornMatchesDirectConfig(t *testing.T) {
	d := compressionDriver(t)
	freqs := LogFrequencies(100, 10000, 30)

	design := []float64{
		0, 0, // no chambers
		testHornThroatArea, testHornMouthArea, testHornLength, shapeCodeExponential,
	}
	viaVector, err := Evaluate(design, d, EnclosureFrontLoadedHorn, freqs, testDriveVoltage)
	require.NoError(t, err)

	sys := midrangeHornSystem(t)
	direct, err := sys.Sweep(freqs, testDriveVoltage, false)
	require.NoError(t, err)

	assert.Equal(t, direct, viaVector)
}

// TestEvaluate_ShapeCodes checks the design-vector encoding of the
// profile family: 0 conical, 1 exponential, fractional hyperbolic.
func TestEvaluate_ShapeCodes(t *testing.T) {
	d := compressionDriver(t)
	freqs := []float64{500.0, 2000.0}

	base := []float64{0, 0, testHornThroatArea, testHornMouthArea, testHornLength, 0}

	responses := make([]Response, 0, 3)
	for _, shape := range []float64{shapeCodeConical, shapeCodeExponential, 0.6} {
		design := append([]float64(nil), base...)
		design[5] = shape
		resp, err := Evaluate(design, d, EnclosureFrontLoadedHorn, freqs, testDriveVoltage)
		require.NoError(t, err, "shape code %g", shape)
		responses = append(responses, resp)
	}

	// The three families share endpoints but differ in between, so the
	// evaluations must not coincide.
	assert.NotEqual(t, responses[0], responses[1])
	assert.NotEqual(t, responses[1], responses[2])
	assert.NotEqual(t, responses[0], responses[2])
}

func TestEvaluate_MultiSegmentVector(t *testing.T) {
	d := compressionDriver(t)
	freqs := []float64{1000.0}

	const joinArea = 20e-4
	design := []float64{
		0, 0,
		testHornThroatArea, joinArea, 0.2, shapeCodeConical,
		joinArea, testHornMouthArea, 0.3, shapeCodeExponential,
	}

	resp, err := Evaluate(design, d, EnclosureFrontLoadedHorn, freqs, testDriveVoltage)
	require.NoError(t, err)
	require.Len(t, resp, 1)
}

func TestEvaluate_VectorLayoutErrors(t *testing.T) {
	d := compressionDriver(t)
	freqs := []float64{1000.0}

	tests := []struct {
		name   string
		design []float64
		kind   EnclosureKind
	}{
		{"sealed_empty", nil, EnclosureSealed},
		{"sealed_too_long", []float64{0.05, 0.05}, EnclosureSealed},
		{"horn_header_only", []float64{0, 0}, EnclosureFrontLoadedHorn},
		{"horn_partial_segment", []float64{0, 0, 5e-4, 200e-4, 0.5}, EnclosureFrontLoadedHorn},
		{"unknown_kind", []float64{0.05}, EnclosureKind(42)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Evaluate(tt.design, d, tt.kind, freqs, testDriveVoltage)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

// TestEvaluate_InvalidGeometryFailsFast: bad candidate geometry
// surfaces as ErrGeometry so an optimizer can map it to a penalty.
func TestEvaluate_InvalidGeometryFailsFast(t *testing.T) {
	d := compressionDriver(t)
	freqs := []float64{1000.0}

	// Mouth smaller than throat.
	design := []float64{0, 0, 200e-4, 5e-4, 0.5, shapeCodeExponential}
	_, err := Evaluate(design, d, EnclosureFrontLoadedHorn, freqs, testDriveVoltage)
	assert.ErrorIs(t, err, ErrGeometry)
}

// TestEvaluate_Stateless: the evaluator retains nothing between calls,
// so repeated evaluation of the same design is bit-identical.
func TestEvaluate_Stateless(t *testing.T) {
	d := compressionDriver(t)
	freqs := LogFrequencies(100, 10000, 20)
	design := []float64{
		10e-6, 5e-3,
		testHornThroatArea, testHornMouthArea, testHornLength, shapeCodeExponential,
	}

	first, err := Evaluate(design, d, EnclosureFrontLoadedHorn, freqs, testDriveVoltage)
	require.NoError(t, err)
	second, err := Evaluate(design, d, EnclosureFrontLoadedHorn, freqs, testDriveVoltage)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
