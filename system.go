package hornsim

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/hornwerk/hornsim/internal/acoustic"
	"github.com/hornwerk/hornsim/internal/horn"
)

// SystemConfig describes one enclosure design to evaluate.
type SystemConfig struct {
	// Driver is the shared, immutable driver parameter set. It is held
	// by reference: thousands of candidate systems may share it.
	Driver *Driver

	// Horn is the segment chain from throat to mouth. Empty means a
	// direct radiator (the diaphragm radiates into half space), which
	// with a rear chamber models a sealed box.
	Horn []SegmentSpec

	// ThroatChamberVolume is the front chamber volume in m³ inserted
	// as a series acoustic compliance between driver and horn throat.
	// Zero means absent.
	ThroatChamberVolume float64

	// RearChamberVolume is the rear chamber volume in m³ loading the
	// back of the diaphragm as a shunt compliance. Zero means absent.
	RearChamberVolume float64

	// Distance is the SPL measurement distance in m. Zero selects 1 m.
	Distance float64
}

// Validate checks the configuration without building it.
func (c *SystemConfig) Validate() error {
	if c.Driver == nil {
		return fmt.Errorf("%w: driver is nil", ErrInvalidConfig)
	}
	if c.ThroatChamberVolume < 0 {
		return fmt.Errorf("%w: throat chamber volume %g m³ must not be negative",
			ErrInvalidConfig, c.ThroatChamberVolume)
	}
	if c.RearChamberVolume < 0 {
		return fmt.Errorf("%w: rear chamber volume %g m³ must not be negative",
			ErrInvalidConfig, c.RearChamberVolume)
	}
	if c.Distance < 0 {
		return fmt.Errorf("%w: distance %g m must not be negative", ErrInvalidConfig, c.Distance)
	}
	return nil
}

// System is a complete electro-mechano-acoustic evaluator: driver,
// optional horn and chambers, composed once and then queried per
// frequency. A System is immutable after construction; evaluating it
// never mutates shared state, so any number of goroutines may evaluate
// the same System (or many Systems sharing one Driver) concurrently.
type System struct {
	driver   *Driver
	medium   acoustic.Medium
	horn     *horn.MultiSegment // nil for a direct radiator
	throat   acoustic.Chamber
	rear     acoustic.Chamber
	distance float64
}

// NewSystem validates the configuration and assembles the evaluator.
func NewSystem(cfg *SystemConfig) (*System, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	med := acoustic.Air()
	s := &System{
		driver:   cfg.Driver,
		medium:   med,
		throat:   acoustic.NewChamber(med, cfg.ThroatChamberVolume),
		rear:     acoustic.NewChamber(med, cfg.RearChamberVolume),
		distance: cfg.Distance,
	}
	if s.distance == 0 {
		s.distance = defaultDistance
	}

	if len(cfg.Horn) > 0 {
		h, err := buildHorn(cfg.Horn)
		if err != nil {
			return nil, err
		}
		s.horn = h
	}
	return s, nil
}

// Driver returns the shared driver parameters.
func (s *System) Driver() *Driver { return s.driver }

// HornLength returns the total horn length in m, zero for a direct
// radiator.
func (s *System) HornLength() float64 {
	if s.horn == nil {
		return 0
	}
	return s.horn.Length()
}

// AreaAt returns the horn cross-section area at axial position x.
func (s *System) AreaAt(x float64) (float64, error) {
	if s.horn == nil {
		return 0, fmt.Errorf("%w: system has no horn", ErrInvalidPosition)
	}
	return s.horn.AreaAt(x)
}

// At evaluates the system at frequency f (Hz) with drive voltage v
// (V rms). The evaluation is pure: each frequency point is computed
// independently and deterministically from the immutable inputs.
//
// The coupling chain:
//  1. Mouth radiation impedance → throat acoustic impedance through
//     the composite horn transfer matrix.
//  2. Throat chamber in series, rear chamber as shunt load.
//  3. Acoustic → mechanical reflection by Sd².
//  4. Mechanical → electrical reflection by Bl²/Z_mech.
//  5. Coil current from Ohm's law; only its active (in-phase)
//     component drives force, velocity and radiated pressure. Reactive
//     current does no time-averaged work, and using the full current
//     magnitude would overstate output wherever coil reactance
//     dominates.
func (s *System) At(f, v float64) (Point, error) {
	if f <= 0 {
		return Point{}, fmt.Errorf("%w: frequency %g Hz must be positive", ErrInvalidFrequency, f)
	}
	if v <= 0 {
		return Point{}, fmt.Errorf("%w: voltage %g V must be positive", ErrInvalidVoltage, v)
	}

	d := s.driver
	omega := 2 * math.Pi * f

	// Front acoustic load and the radiating area it belongs to.
	radiatingArea := d.Sd
	if s.horn != nil {
		radiatingArea = s.horn.MouthArea()
	}
	rad := acoustic.PistonRadiation(s.medium, radiatingArea, omega)
	mouthLoad := acoustic.RadiationImpedance(s.medium, radiatingArea, omega)

	zFront := mouthLoad
	if s.horn != nil {
		zFront = s.horn.ThroatImpedance(s.medium, omega, mouthLoad)
	}
	zFront += s.throat.SeriesImpedance(omega)
	zAcoustic := zFront + s.rear.ShuntImpedance(omega)

	// Reflect into the mechanical domain and add the driver's own
	// mechanical impedance.
	zMech := d.MechanicalImpedance(omega) + complex(d.Sd*d.Sd, 0)*zAcoustic
	zMechMag := cmplx.Abs(zMech)
	if zMechMag < degenerateImpedance {
		return Point{}, fmt.Errorf("%w: |Z_mech| = %g at %g Hz", ErrDegenerateSystem, zMechMag, f)
	}

	// Reflect into the electrical domain.
	zCoil, err := d.ElectricalImpedance(f)
	if err != nil {
		return Point{}, err
	}
	zElec := zCoil + complex(d.Bl*d.Bl, 0)/zMech
	zElecMag := cmplx.Abs(zElec)
	if zElecMag < degenerateImpedance {
		return Point{}, fmt.Errorf("%w: |Z_e| = %g at %g Hz", ErrDegenerateSystem, zElecMag, f)
	}

	// Active current: the projection of I onto the voltage phase
	// reference. Only this component produces time-averaged force.
	current := complex(v, 0) / zElec
	activeCurrent := real(current)
	force := d.Bl * activeCurrent

	// Diaphragm velocity from the active force: magnitude
	// |force|/|Z_mech|, phase from the complex mechanical division.
	velocity := complex(force, 0) / zMech
	velocityMag := cmplx.Abs(velocity)

	// Volume velocity and half-space pressure at the measurement
	// distance: |p| = ρ·ω·|U| / (2π·r).
	volumeVelocity := velocityMag * d.Sd
	pressure := s.medium.Density * omega * volumeVelocity / (halfSpaceSolidAngle * s.distance)

	spl := 20 * math.Log10(math.Max(pressure, pressureFloor)/referencePressure)

	// Powers from the same active quantities for consistency.
	electricalPower := v * activeCurrent
	acousticPower := volumeVelocity * volumeVelocity * real(zFront)
	efficiency := 0.0
	if electricalPower > 0 {
		efficiency = acousticPower / electricalPower
	}

	return Point{
		Frequency:           f,
		Impedance:           zElec,
		Velocity:            velocity,
		SPL:                 spl,
		RadiationResistance: rad.Resistance,
		RadiationReactance:  rad.Reactance,
		Efficiency:          efficiency,
	}, nil
}

// pressureResponse returns the complex pressure at the measurement
// point, phase referenced to the drive voltage. Its magnitude matches
// the active-current policy of At; the phase carries the +90° of the
// jω radiation factor plus the mechanical phase. Used for impulse
// response synthesis.
func (s *System) pressureResponse(f, v float64) (complex128, error) {
	p, err := s.At(f, v)
	if err != nil {
		return 0, err
	}
	omega := 2 * math.Pi * f
	u := p.Velocity * complex(s.driver.Sd, 0)
	return complex(0, s.medium.Density*omega/(halfSpaceSolidAngle*s.distance)) * u, nil
}
