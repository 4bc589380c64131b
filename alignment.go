package hornsim

import (
	"fmt"
	"math"

	"github.com/hornwerk/hornsim/internal/acoustic"
)

// SealedAlignment holds the derived small-signal alignment of a driver
// in a sealed (closed-box) enclosure, per the classical closed-box
// relations:
//
//	α   = Vas/Vb
//	fc  = fs·√(1+α)
//	Qtc = Qts·√(1+α)
//	f3  = fc·√((A + √(A²+4))/2),  A = 1/Qtc² − 2
type SealedAlignment struct {
	// Alpha is the compliance ratio Vas/Vb.
	Alpha float64

	// Fc is the closed-box resonance frequency in Hz.
	Fc float64

	// Qtc is the closed-box total quality factor.
	Qtc float64

	// F3 is the −3 dB cutoff frequency in Hz.
	F3 float64
}

// SealedBoxAlignment computes the closed-box alignment of the driver in
// a box of boxVolume m³ (net internal volume).
func SealedBoxAlignment(d *Driver, boxVolume float64) (SealedAlignment, error) {
	if boxVolume <= 0 {
		return SealedAlignment{}, fmt.Errorf("%w: box volume %g m³ must be positive",
			ErrInvalidConfig, boxVolume)
	}

	alpha := d.Vas(acoustic.Air()) / boxVolume
	ratio := math.Sqrt(1 + alpha)
	fc := d.Fs * ratio
	qtc := d.Qts() * ratio

	a := 1/(qtc*qtc) - 2
	f3 := fc * math.Sqrt((a+math.Sqrt(a*a+4))/2)

	return SealedAlignment{Alpha: alpha, Fc: fc, Qtc: qtc, F3: f3}, nil
}

// BoxVolumeForQtc returns the sealed box volume in m³ that yields the
// requested system Q, from Qtc = Qts·√(1 + Vas/Vb). Qtc must exceed
// the driver's Qts.
func BoxVolumeForQtc(d *Driver, qtc float64) (float64, error) {
	if qtc <= d.Qts() {
		return 0, fmt.Errorf("%w: target Qtc %g must exceed driver Qts %.3f",
			ErrInvalidConfig, qtc, d.Qts())
	}
	ratio := qtc / d.Qts()
	alpha := ratio*ratio - 1
	return d.Vas(acoustic.Air()) / alpha, nil
}
