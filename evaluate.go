package hornsim

import (
	"fmt"
)

// EnclosureKind selects the enclosure topology the optimizer is
// exploring.
type EnclosureKind int

const (
	// EnclosureSealed is a closed box: rear chamber only, no horn.
	EnclosureSealed EnclosureKind = iota

	// EnclosureFrontLoadedHorn is a front-loaded horn with optional
	// throat and rear chambers.
	EnclosureFrontLoadedHorn
)

// Design-vector layout constants.
const (
	// sealedDesignLen is [rearChamberVolume].
	sealedDesignLen = 1

	// hornDesignHeader is [throatChamberVolume, rearChamberVolume].
	hornDesignHeader = 2

	// hornDesignPerSegment is [throatArea, mouthArea, length, shape]
	// per segment.
	hornDesignPerSegment = 4

	// Shape-code sentinels in the design vector: 0 selects conical,
	// 1 exponential, anything in (0, 1) hyperbolic with that T.
	shapeCodeConical     = 0.0
	shapeCodeExponential = 1.0
)

// Evaluate is the pure evaluation function invoked by an external
// optimization driver, typically tens of thousands of times per run.
// It builds a fresh System from the flat design vector, sweeps it, and
// retains no state between calls.
//
// Design vector layout:
//
//	EnclosureSealed:          [Vrc]                                (m³)
//	EnclosureFrontLoadedHorn: [Vtc, Vrc, (S_t, S_m, L, shape)...]  (SI)
//
// where shape 0 selects the conical family, 1 the exponential, and a
// value in (0, 1) the hyperbolic family with that T.
//
// Invalid designs fail fast with the core error taxonomy; the caller is
// expected to map those to penalty values rather than aborting the run.
func Evaluate(design []float64, d *Driver, kind EnclosureKind, freqs []float64, voltage float64) (Response, error) {
	cfg, err := designConfig(design, d, kind)
	if err != nil {
		return nil, err
	}

	sys, err := NewSystem(cfg)
	if err != nil {
		return nil, err
	}
	return sys.Sweep(freqs, voltage, false)
}

func designConfig(design []float64, d *Driver, kind EnclosureKind) (*SystemConfig, error) {
	switch kind {
	case EnclosureSealed:
		if len(design) != sealedDesignLen {
			return nil, fmt.Errorf("%w: sealed design vector needs %d values, got %d",
				ErrInvalidConfig, sealedDesignLen, len(design))
		}
		return &SystemConfig{Driver: d, RearChamberVolume: design[0]}, nil

	case EnclosureFrontLoadedHorn:
		body := len(design) - hornDesignHeader
		if body <= 0 || body%hornDesignPerSegment != 0 {
			return nil, fmt.Errorf(
				"%w: horn design vector needs %d+%d·n values, got %d",
				ErrInvalidConfig, hornDesignHeader, hornDesignPerSegment, len(design))
		}

		n := body / hornDesignPerSegment
		segs := make([]SegmentSpec, n)
		for i := range n {
			base := hornDesignHeader + i*hornDesignPerSegment
			segs[i] = segmentFromShapeCode(
				design[base], design[base+1], design[base+2], design[base+3])
		}
		return &SystemConfig{
			Driver:              d,
			Horn:                segs,
			ThroatChamberVolume: design[0],
			RearChamberVolume:   design[1],
		}, nil

	default:
		return nil, fmt.Errorf("%w: unknown enclosure kind %d", ErrInvalidConfig, kind)
	}
}

func segmentFromShapeCode(throat, mouth, length, shape float64) SegmentSpec {
	spec := SegmentSpec{ThroatArea: throat, MouthArea: mouth, Length: length}
	switch shape {
	case shapeCodeConical:
		spec.Kind = ProfileConical
	case shapeCodeExponential:
		spec.Kind = ProfileExponential
	default:
		spec.Kind = ProfileHyperbolic
		spec.Shape = shape
	}
	return spec
}
