package hornsim

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/hornwerk/hornsim/internal/acoustic"
)

// InductanceModel selects the voice-coil impedance model.
type InductanceModel int

const (
	// InductanceSimple models the coil as a lossless inductor:
	// Z = Re + jωLe.
	InductanceSimple InductanceModel = iota

	// InductanceLossy models the coil as a semi-inductance whose
	// magnitude and phase follow a power law in frequency,
	// Z = Re + Le·ω^n·e^(jnπ/2), capturing eddy-current losses in the
	// motor. Optionally blended with the simple model below
	// BlendBelow.
	InductanceLossy
)

// Driver holds the Thiele-Small parameters of a loudspeaker driver.
// Derived constants (total Q, efficiency-bandwidth product) are
// computed once by NewDriver; the value is immutable afterwards and is
// shared by reference across every enclosure evaluation that uses it.
type Driver struct {
	// Fs is the free-air resonance frequency in Hz.
	Fs float64

	// Qes and Qms are the electrical and mechanical quality factors.
	Qes float64
	Qms float64

	// Sd is the projected diaphragm area in m².
	Sd float64

	// Re is the voice-coil DC resistance in Ω.
	Re float64

	// Bl is the force factor in T·m.
	Bl float64

	// Mms is the moving mass including air load in kg.
	Mms float64

	// Cms is the suspension compliance in m/N.
	Cms float64

	// Rms is the mechanical resistance in kg/s (N·s/m). May be zero.
	Rms float64

	// Le is the voice-coil inductance in H for InductanceSimple, or
	// the semi-inductance coefficient in Ω·s^n for InductanceLossy.
	Le float64

	// Inductance selects the voice-coil model.
	Inductance InductanceModel

	// LossExponent is the power-law exponent n of the lossy model.
	// Zero selects the calibrated default.
	LossExponent float64

	// BlendBelow, when positive, blends the lossy model toward the
	// simple inductor below this frequency in Hz.
	BlendBelow float64

	qts float64
	ebp float64
}

// NewDriver validates the parameters, caches the derived constants and
// returns an immutable driver.
func NewDriver(d Driver) (*Driver, error) {
	if err := d.validate(); err != nil {
		return nil, err
	}

	if d.LossExponent == 0 {
		d.LossExponent = defaultLossExponent
	}
	d.qts = d.Qes * d.Qms / (d.Qes + d.Qms)
	d.ebp = d.Fs / d.Qes

	if d.qts < minTotalQ || d.qts > maxTotalQ {
		return nil, fmt.Errorf("%w: total Q %.3f outside [%g, %g]",
			ErrParameterRange, d.qts, minTotalQ, maxTotalQ)
	}

	return &d, nil
}

func (d *Driver) validate() error {
	positives := []struct {
		name  string
		value float64
	}{
		{"resonance frequency", d.Fs},
		{"electrical Q", d.Qes},
		{"mechanical Q", d.Qms},
		{"diaphragm area", d.Sd},
		{"DC resistance", d.Re},
		{"force factor", d.Bl},
		{"moving mass", d.Mms},
		{"compliance", d.Cms},
		{"voice-coil inductance", d.Le},
	}
	for _, p := range positives {
		if p.value <= 0 {
			return fmt.Errorf("%w: %s %g must be positive", ErrParameterRange, p.name, p.value)
		}
	}
	if d.Rms < 0 {
		return fmt.Errorf("%w: mechanical resistance %g must be non-negative", ErrParameterRange, d.Rms)
	}
	if d.LossExponent < 0 || d.LossExponent > 1 {
		return fmt.Errorf("%w: loss exponent %g outside [0, 1]", ErrParameterRange, d.LossExponent)
	}
	return nil
}

// Qts returns the cached total quality factor Qes·Qms/(Qes+Qms).
func (d *Driver) Qts() float64 { return d.qts }

// EBP returns the cached efficiency-bandwidth product Fs/Qes in Hz.
func (d *Driver) EBP() float64 { return d.ebp }

// Vas returns the equivalent compliance volume ρc²·Cms·Sd² in m³ for
// the given medium.
func (d *Driver) Vas(m acoustic.Medium) float64 {
	c := m.SpeedOfSound
	return m.Density * c * c * d.Cms * d.Sd * d.Sd
}

// MechanicalImpedance returns the driver's own mechanical impedance at
// angular frequency omega:
//
//	Z_mech = Rms + jωMms + 1/(jωCms)
func (d *Driver) MechanicalImpedance(omega float64) complex128 {
	return complex(d.Rms, omega*d.Mms-1/(omega*d.Cms))
}

// ElectricalImpedance returns the blocked voice-coil impedance at
// frequency f in Hz under the selected inductance model. It fails with
// ErrInvalidFrequency when f ≤ 0.
func (d *Driver) ElectricalImpedance(f float64) (complex128, error) {
	if f <= 0 {
		return 0, fmt.Errorf("%w: frequency %g Hz must be positive", ErrInvalidFrequency, f)
	}
	omega := 2 * math.Pi * f

	simple := complex(d.Re, omega*d.Le)
	if d.Inductance == InductanceSimple {
		return simple, nil
	}

	// Semi-inductance: Le·(jω)^n has magnitude Le·ω^n and constant
	// phase nπ/2.
	n := d.LossExponent
	lossy := complex(d.Re, 0) +
		complex(d.Le*math.Pow(omega, n), 0)*cmplx.Exp(complex(0, n*math.Pi/2))

	if d.BlendBelow > 0 && f < d.BlendBelow {
		// Linear blend toward the simple model at DC.
		w := complex(f/d.BlendBelow, 0)
		return w*lossy + (1-w)*simple, nil
	}
	return lossy, nil
}
