package hornsim

import (
	"fmt"
	"os"

	"github.com/hornwerk/hornsim/internal/hrecord"
)

// MarshalRecord renders the configuration in the plain-text exchange
// format (key=value lines, CRLF, exchange units). The driver must be
// set; inductance model selection is not part of the exchange format
// and is not carried.
func MarshalRecord(cfg *SystemConfig) ([]byte, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	d := cfg.Driver
	v := hrecord.SystemValues{
		Driver: hrecord.DriverValues{
			Fs: d.Fs, Qes: d.Qes, Qms: d.Qms, Sd: d.Sd, Re: d.Re,
			Bl: d.Bl, Mms: d.Mms, Cms: d.Cms, Rms: d.Rms, Le: d.Le,
		},
		ThroatChamberVolume: cfg.ThroatChamberVolume,
		RearChamberVolume:   cfg.RearChamberVolume,
	}
	for _, s := range cfg.Horn {
		v.Segments = append(v.Segments, hrecord.SegmentValues{
			Profile:    s.Kind.String(),
			ThroatArea: s.ThroatArea,
			MouthArea:  s.MouthArea,
			Length:     s.Length,
			Shape:      recordShape(s),
		})
	}
	return hrecord.Export(&v), nil
}

// UnmarshalRecord parses an exchange record into a validated
// configuration, constructing the driver along the way.
func UnmarshalRecord(data []byte) (*SystemConfig, error) {
	v, err := hrecord.Import(data)
	if err != nil {
		return nil, err
	}

	d, err := NewDriver(Driver{
		Fs: v.Driver.Fs, Qes: v.Driver.Qes, Qms: v.Driver.Qms,
		Sd: v.Driver.Sd, Re: v.Driver.Re, Bl: v.Driver.Bl,
		Mms: v.Driver.Mms, Cms: v.Driver.Cms, Rms: v.Driver.Rms,
		Le: v.Driver.Le,
	})
	if err != nil {
		return nil, err
	}

	cfg := &SystemConfig{
		Driver:              d,
		ThroatChamberVolume: v.ThroatChamberVolume,
		RearChamberVolume:   v.RearChamberVolume,
	}
	for i, s := range v.Segments {
		kind, err := profileKindFromTag(s.Profile)
		if err != nil {
			return nil, fmt.Errorf("segment %d: %w", i+1, err)
		}
		spec := SegmentSpec{
			Kind:       kind,
			ThroatArea: s.ThroatArea,
			MouthArea:  s.MouthArea,
			Length:     s.Length,
		}
		if kind == ProfileHyperbolic {
			spec.Shape = s.Shape
		}
		cfg.Horn = append(cfg.Horn, spec)
	}
	return cfg, nil
}

// LoadRecordFile reads and parses an exchange record file.
func LoadRecordFile(path string) (*SystemConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading record file: %w", err)
	}
	return UnmarshalRecord(data)
}

// SaveRecordFile writes the configuration as an exchange record file.
func SaveRecordFile(path string, cfg *SystemConfig) error {
	data, err := MarshalRecord(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// recordShape returns the T value stored in the record: the hyperbolic
// shape parameter, or 1 for the exponential limit, or 0 for conical.
func recordShape(s SegmentSpec) float64 {
	switch s.Kind {
	case ProfileHyperbolic:
		return s.Shape
	case ProfileExponential:
		return 1
	default:
		return 0
	}
}

func profileKindFromTag(tag string) (ProfileKind, error) {
	switch tag {
	case "EXP":
		return ProfileExponential, nil
	case "CON":
		return ProfileConical, nil
	case "HYP":
		return ProfileHyperbolic, nil
	default:
		return 0, fmt.Errorf("%w: unknown profile tag %q", hrecord.ErrFormat, tag)
	}
}
