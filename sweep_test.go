package hornsim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hornwerk/hornsim/internal/testutil"
)

func TestLinearFrequencies(t *testing.T) {
	freqs := LinearFrequencies(20, 20000, 100)
	require.Len(t, freqs, 100)

	assert.Equal(t, 20.0, freqs[0])
	assert.Equal(t, 20000.0, freqs[len(freqs)-1])
	testutil.AssertIncreasing(t, freqs)

	// Uniform spacing.
	step := freqs[1] - freqs[0]
	assert.InDelta(t, step, freqs[51]-freqs[50], 1e-9)
}

func TestLogFrequencies(t *testing.T) {
	freqs := LogFrequencies(20, 20000, 31)
	require.Len(t, freqs, 31)

	assert.InDelta(t, 20.0, freqs[0], 1e-9)
	assert.InDelta(t, 20000.0, freqs[len(freqs)-1], 1e-6)
	testutil.AssertIncreasing(t, freqs)

	// Constant ratio between neighbors.
	ratio := freqs[1] / freqs[0]
	assert.InEpsilon(t, ratio, freqs[16]/freqs[15], 1e-9)
}

func TestDefaultFrequencies(t *testing.T) {
	freqs := DefaultFrequencies()
	require.Len(t, freqs, DefaultSweepPoints)
	assert.InDelta(t, DefaultSweepStart, freqs[0], 1e-9)
	assert.InDelta(t, DefaultSweepStop, freqs[len(freqs)-1], 1e-6)
}

func TestFrequencyGrids_DegenerateInputs(t *testing.T) {
	assert.Nil(t, LinearFrequencies(20, 20000, 1))
	assert.Nil(t, LinearFrequencies(0, 20000, 10))
	assert.Nil(t, LinearFrequencies(100, 100, 10))
	assert.Nil(t, LogFrequencies(20, 20000, 0))
	assert.Nil(t, LogFrequencies(-20, 20000, 10))
	assert.Nil(t, LogFrequencies(2000, 20, 10))
}

func TestSweep_SequentialMatchesAt(t *testing.T) {
	sys := midrangeHornSystem(t)
	freqs := LogFrequencies(100, 10000, 25)

	resp, err := sys.Sweep(freqs, testDriveVoltage, false)
	require.NoError(t, err)
	require.Len(t, resp, len(freqs))

	for i, f := range freqs {
		want, err := sys.At(f, testDriveVoltage)
		require.NoError(t, err)
		assert.Equal(t, want, resp[i], "point %d (%g Hz)", i, f)
	}
}

// TestSweep_ParallelMatchesSequential: frequency points are
// independent, so the parallel fan-out must reproduce the sequential
// result bit for bit.
func TestSweep_ParallelMatchesSequential(t *testing.T) {
	sys := midrangeHornSystem(t)
	freqs := LogFrequencies(20, 20000, 200)

	seq, err := sys.Sweep(freqs, testDriveVoltage, false)
	require.NoError(t, err)
	par, err := sys.Sweep(freqs, testDriveVoltage, true)
	require.NoError(t, err)

	assert.Equal(t, seq, par)
}

func TestSweep_Errors(t *testing.T) {
	sys := midrangeHornSystem(t)

	_, err := sys.Sweep(nil, testDriveVoltage, false)
	assert.ErrorIs(t, err, ErrInvalidFrequency)

	_, err = sys.Sweep([]float64{100, -200, 300}, testDriveVoltage, false)
	assert.ErrorIs(t, err, ErrInvalidFrequency)

	_, err = sys.Sweep([]float64{100, -200, 300}, testDriveVoltage, true)
	assert.ErrorIs(t, err, ErrInvalidFrequency)

	_, err = sys.Sweep([]float64{100, 200}, 0, false)
	assert.ErrorIs(t, err, ErrInvalidVoltage)
}

func TestResponse_Accessors(t *testing.T) {
	sys := midrangeHornSystem(t)

	resp, err := sys.Sweep(LogFrequencies(100, 10000, 50), testDriveVoltage, false)
	require.NoError(t, err)

	maxSPL := resp.MaxSPL()
	for _, p := range resp {
		assert.LessOrEqual(t, p.SPL, maxSPL)
	}

	peak := resp.PeakImpedance()
	for _, p := range resp {
		assert.LessOrEqual(t, p.ImpedanceMagnitude(), peak.ImpedanceMagnitude())
	}

	efficiencies := make([]float64, len(resp))
	for i, p := range resp {
		efficiencies[i] = p.Efficiency
	}
	testutil.AssertAllInRange(t, efficiencies, 0, 1)
}
