package hornsim

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hornwerk/hornsim/internal/acoustic"
)

// Compression driver used by the horn scenarios: 6.5 Ω coil, 12 T·m
// motor, 8 g moving mass, 500 Hz resonance. Cms is chosen consistent
// with Fs and Mms.
func compressionDriver(t *testing.T) *Driver {
	t.Helper()
	d, err := NewDriver(Driver{
		Fs:  500,
		Qes: 1.13,
		Qms: 10.0,
		Sd:  13e-4,
		Re:  6.5,
		Bl:  12.0,
		Mms: 0.008,
		Cms: 1.2665e-5,
		Rms: 2.5,
		Le:  5e-5,
	})
	require.NoError(t, err)
	return d
}

// Woofer used by the sealed-box scenario: 64.2 Hz resonance,
// Qts ≈ 0.527 so that α ≈ 0.80 lands on the Butterworth alignment.
func sealedBoxWoofer(t *testing.T) *Driver {
	t.Helper()
	d, err := NewDriver(Driver{
		Fs:  64.2,
		Qes: 0.5894,
		Qms: 5.0,
		Sd:  0.0350,
		Re:  6.0,
		Bl:  9.0,
		Mms: 0.020,
		Cms: 3.0726e-4,
		Rms: 1.613,
		Le:  1e-4,
	})
	require.NoError(t, err)
	return d
}

func TestNewDriver_DerivedConstants(t *testing.T) {
	d := compressionDriver(t)

	wantQts := d.Qes * d.Qms / (d.Qes + d.Qms)
	assert.InEpsilon(t, wantQts, d.Qts(), 1e-12)
	assert.InEpsilon(t, d.Fs/d.Qes, d.EBP(), 1e-12)
}

func TestNewDriver_ValidationErrors(t *testing.T) {
	base := Driver{
		Fs: 50, Qes: 0.5, Qms: 5, Sd: 0.03, Re: 6, Bl: 9,
		Mms: 0.02, Cms: 5e-4, Rms: 1, Le: 1e-4,
	}

	tests := []struct {
		name   string
		mutate func(*Driver)
	}{
		{"zero_fs", func(d *Driver) { d.Fs = 0 }},
		{"negative_re", func(d *Driver) { d.Re = -1 }},
		{"zero_bl", func(d *Driver) { d.Bl = 0 }},
		{"zero_mass", func(d *Driver) { d.Mms = 0 }},
		{"zero_compliance", func(d *Driver) { d.Cms = 0 }},
		{"negative_rms", func(d *Driver) { d.Rms = -0.1 }},
		{"loss_exponent_above_one", func(d *Driver) { d.LossExponent = 1.5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := base
			tt.mutate(&d)
			_, err := NewDriver(d)
			assert.ErrorIs(t, err, ErrParameterRange)
		})
	}
}

// TestNewDriver_TotalQRange verifies the plausibility bounds on the
// derived total Q.
func TestNewDriver_TotalQRange(t *testing.T) {
	// Qes = Qms = 0.1 gives Qts = 0.05, below the lower bound.
	_, err := NewDriver(Driver{
		Fs: 50, Qes: 0.1, Qms: 0.1, Sd: 0.03, Re: 6, Bl: 9,
		Mms: 0.02, Cms: 5e-4, Rms: 1, Le: 1e-4,
	})
	require.ErrorIs(t, err, ErrParameterRange)
	assert.Contains(t, err.Error(), "total Q")
}

// TestMechanicalImpedance_Resonance verifies that the mechanical
// reactance vanishes at Fs when Cms is consistent with Mms.
func TestMechanicalImpedance_Resonance(t *testing.T) {
	d := compressionDriver(t)
	omega := 2 * math.Pi * d.Fs

	z := d.MechanicalImpedance(omega)
	assert.InDelta(t, d.Rms, real(z), 1e-9)
	assert.InDelta(t, 0, imag(z), 0.05*omega*d.Mms,
		"reactance should nearly cancel at resonance")
}

func TestElectricalImpedance_Simple(t *testing.T) {
	d := compressionDriver(t)

	z, err := d.ElectricalImpedance(1000)
	require.NoError(t, err)
	assert.InEpsilon(t, d.Re, real(z), 1e-12)
	assert.InEpsilon(t, 2*math.Pi*1000*d.Le, imag(z), 1e-12)
}

func TestElectricalImpedance_InvalidFrequency(t *testing.T) {
	d := compressionDriver(t)

	_, err := d.ElectricalImpedance(0)
	assert.ErrorIs(t, err, ErrInvalidFrequency)
	_, err = d.ElectricalImpedance(-100)
	assert.ErrorIs(t, err, ErrInvalidFrequency)
}

// TestElectricalImpedance_LossyPowerLaw verifies that the lossy model's
// inductive part follows |Z| ∝ ω^n at constant phase nπ/2.
func TestElectricalImpedance_LossyPowerLaw(t *testing.T) {
	d, err := NewDriver(Driver{
		Fs: 500, Qes: 1.13, Qms: 10, Sd: 13e-4, Re: 6.5, Bl: 12,
		Mms: 0.008, Cms: 1.2665e-5, Rms: 2.5, Le: 1e-3,
		Inductance: InductanceLossy, LossExponent: 0.7,
	})
	require.NoError(t, err)

	z1, err := d.ElectricalImpedance(1000)
	require.NoError(t, err)
	z2, err := d.ElectricalImpedance(2000)
	require.NoError(t, err)

	l1 := z1 - complex(d.Re, 0)
	l2 := z2 - complex(d.Re, 0)

	assert.InEpsilon(t, math.Pow(2, 0.7), cmplx.Abs(l2)/cmplx.Abs(l1), 1e-9,
		"semi-inductance magnitude should scale as ω^0.7")
	assert.InDelta(t, 0.7*math.Pi/2, cmplx.Phase(l1), 1e-9)
	assert.InDelta(t, cmplx.Phase(l1), cmplx.Phase(l2), 1e-9,
		"semi-inductance phase should be constant in frequency")
}

// TestElectricalImpedance_LossyBlend verifies the low-frequency blend
// toward the simple inductor.
func TestElectricalImpedance_LossyBlend(t *testing.T) {
	base := Driver{
		Fs: 500, Qes: 1.13, Qms: 10, Sd: 13e-4, Re: 6.5, Bl: 12,
		Mms: 0.008, Cms: 1.2665e-5, Rms: 2.5, Le: 1e-3,
		Inductance: InductanceLossy, LossExponent: 0.7,
	}

	blended := base
	blended.BlendBelow = 1000
	db, err := NewDriver(blended)
	require.NoError(t, err)
	dl, err := NewDriver(base)
	require.NoError(t, err)

	// Above the crossover both models agree.
	zb, err := db.ElectricalImpedance(2000)
	require.NoError(t, err)
	zl, err := dl.ElectricalImpedance(2000)
	require.NoError(t, err)
	assert.InDelta(t, 0, cmplx.Abs(zb-zl), 1e-12)

	// Far below the crossover the blend approaches the simple model.
	zVeryLow, err := db.ElectricalImpedance(1)
	require.NoError(t, err)
	simple := complex(db.Re, 2*math.Pi*1*db.Le)
	pure, err := dl.ElectricalImpedance(1)
	require.NoError(t, err)
	assert.Less(t, cmplx.Abs(zVeryLow-simple), cmplx.Abs(zVeryLow-pure),
		"blend should sit closer to the simple model near DC")
}

func TestDriver_Vas(t *testing.T) {
	d := sealedBoxWoofer(t)
	m := acoustic.Air()

	want := m.Density * m.SpeedOfSound * m.SpeedOfSound * d.Cms * d.Sd * d.Sd
	assert.InEpsilon(t, want, d.Vas(m), 1e-12)

	// ~54 litres for this woofer.
	assert.InDelta(t, 0.0537, d.Vas(m), 0.002)
}
