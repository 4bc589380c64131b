// Package hornsim simulates horn-loaded and sealed-box loudspeaker
// systems in pure Go.
//
// The simulation follows the one-dimensional transmission-line model of
// horn acoustics: each horn segment is represented by its 2×2 acoustic
// transfer matrix, segments chain by matrix multiplication, and the
// mouth radiates into half space through the circular-piston radiation
// impedance. The driver couples in through the standard
// electro-mechano-acoustical analogies, so the electrical input
// impedance, diaphragm velocity, sound pressure level and efficiency
// all fall out of one frequency-domain evaluation.
//
// # Features
//
//   - Exponential, conical and hyperbolic (hypex) flare families with
//     exact transfer matrices, chainable into multi-segment horns
//   - Full driver model: Thiele-Small parameters, mechanical and
//     electrical impedance, simple or semi-inductance voice coil
//   - Throat and rear compression chambers
//   - Sealed-box alignment calculations (fc, Qtc, f3)
//   - Frequency sweeps with optional parallel evaluation across
//     goroutines; a System is immutable and safe for concurrent use
//   - A flat design-vector entry point for external optimizers
//   - Impulse response synthesis and auralization support
//   - Plain-text record import/export for exchanging designs
//   - Pure Go implementation with no CGO dependencies
//
// # Quick Start
//
// Evaluate a front-loaded horn:
//
//	driver, err := hornsim.NewDriver(hornsim.Driver{
//	    Fs: 500, Qes: 1.13, Qms: 10, Sd: 13e-4, Re: 6.5, Bl: 12,
//	    Mms: 0.008, Cms: 1.27e-5, Rms: 2.5, Le: 5e-5,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	sys, err := hornsim.NewSystem(&hornsim.SystemConfig{
//	    Driver: driver,
//	    Horn: []hornsim.SegmentSpec{{
//	        Kind:       hornsim.ProfileExponential,
//	        ThroatArea: 5e-4,
//	        MouthArea:  200e-4,
//	        Length:     0.5,
//	    }},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	resp, err := sys.Sweep(hornsim.LogFrequencies(20, 20000, 100), 2.83, true)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, p := range resp {
//	    fmt.Printf("%g Hz: %.1f dB, %.1f ohm\n",
//	        p.Frequency, p.SPL, p.ImpedanceMagnitude())
//	}
//
// # Units and Conventions
//
// All public APIs use SI units: areas in m², lengths in m, volumes in
// m³, frequencies in Hz. SPL is reported in dB re 20 µPa at the
// configured measurement distance (1 m by default) assuming half-space
// (2π) radiation. Drive levels are V rms, and all complex quantities
// are phase referenced to the drive voltage.
//
// The transfer matrix convention maps mouth quantities to throat
// quantities, [p_t; U_t] = M·[p_m; U_m], so a chain multiplies left to
// right from throat to mouth and the throat impedance follows as
// Z_t = (A·Z_m + B)/(C·Z_m + D). Lossless segment matrices have unit
// determinant; this is checked in the test suite, not at runtime.
//
// # Architecture
//
// The package splits into a thin public surface and internal layers:
//
//   - internal/acoustic: medium properties, radiation impedance,
//     compression chambers
//   - internal/horn: flare profiles, transfer matrices, multi-segment
//     composition
//   - internal/mathutil: Struve function and piston radiation series
//   - internal/hrecord: the plain-text exchange format
//   - internal/convolve: impulse response convolution for auralization
//
// The root package ties these together: Driver, System, sweeps,
// sealed-box alignments, the Evaluate optimizer entry point, and
// record file I/O. Commands hornsweep and auralize build on the public
// API only.
//
// # References
//
// The acoustics follow the classical treatments: Webster's horn
// equation, Salmon's family of constant-cutoff flares, and the
// circular-piston radiation impedance with the Struve function
// approximated after Aarts and Janssen. Olson's "Acoustical
// Engineering" and Beranek's "Acoustics" cover the underlying theory.
package hornsim
