package hornsim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hornwerk/hornsim/internal/testutil"
)

const (
	testImpulseRate   = 48000.0
	testImpulseLength = 4096
)

func TestImpulseResponse_Basic(t *testing.T) {
	sys := midrangeHornSystem(t)

	ir, err := sys.ImpulseResponse(testImpulseRate, testImpulseLength, testDriveVoltage)
	require.NoError(t, err)
	require.Len(t, ir, testImpulseLength)

	testutil.AssertNoNaNOrInf(t, ir)

	var energy float64
	for _, v := range ir {
		energy += v * v
	}
	assert.Greater(t, energy, 0.0, "impulse response must carry energy")
}

// TestImpulseResponse_VoltageLinearity: the model is linear, so the
// impulse response scales with the drive voltage.
func TestImpulseResponse_VoltageLinearity(t *testing.T) {
	sys := midrangeHornSystem(t)

	one, err := sys.ImpulseResponse(testImpulseRate, 1024, 1.0)
	require.NoError(t, err)
	two, err := sys.ImpulseResponse(testImpulseRate, 1024, 2.0)
	require.NoError(t, err)

	for i := range one {
		assert.InDelta(t, 2*one[i], two[i], 1e-9*math.Max(1, math.Abs(one[i])),
			"sample %d", i)
	}
}

// TestImpulseResponse_Parseval checks the inverse-transform scaling:
// the time-domain energy must equal the spectrum energy divided by the
// transform length, with the conjugate-symmetric bins counted twice.
func TestImpulseResponse_Parseval(t *testing.T) {
	const n = 1024
	sys := midrangeHornSystem(t)

	ir, err := sys.ImpulseResponse(testImpulseRate, n, testDriveVoltage)
	require.NoError(t, err)

	var spectral float64
	for k := 1; k <= n/2; k++ {
		f := float64(k) * testImpulseRate / n
		h, err := sys.pressureResponse(f, testDriveVoltage)
		require.NoError(t, err)

		mag2 := real(h)*real(h) + imag(h)*imag(h)
		if k < n/2 {
			mag2 *= 2 // conjugate bin
		}
		spectral += mag2
	}

	var temporal float64
	for _, v := range ir {
		temporal += v * v
	}
	testutil.AssertRelativeError(t, spectral/n, temporal, 1e-9)
}

func TestImpulseResponse_InvalidInputs(t *testing.T) {
	sys := midrangeHornSystem(t)

	_, err := sys.ImpulseResponse(0, testImpulseLength, testDriveVoltage)
	assert.ErrorIs(t, err, ErrInvalidFrequency)

	_, err = sys.ImpulseResponse(testImpulseRate, testImpulseLength, 0)
	assert.ErrorIs(t, err, ErrInvalidVoltage)

	_, err = sys.ImpulseResponse(testImpulseRate, 32, testDriveVoltage)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = sys.ImpulseResponse(testImpulseRate, 1023, testDriveVoltage)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
