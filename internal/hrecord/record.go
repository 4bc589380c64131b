// Package hrecord reads and writes the plain-text key=value record
// format used to exchange driver and enclosure parameters with the
// external reference simulator: one parameter per line, CRLF line
// endings, values printed with two decimal places.
//
// Values are stored in the file in the exchange units (areas in cm²,
// lengths in cm, volumes in litres, mass in g, compliance in mm/N,
// inductance in mH); the Go structs carry SI units throughout.
package hrecord

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrFormat indicates a malformed record file or a missing key.
var ErrFormat = errors.New("invalid record format")

// Exchange-unit conversion factors (SI value × factor = file value).
const (
	areaToCm2          = 1e4 // m² → cm²
	lengthToCm         = 1e2 // m → cm
	volumeToLitre      = 1e3 // m³ → litres
	massToGram         = 1e3 // kg → g
	complianceToMmPerN = 1e3 // m/N → mm/N
	inductanceToMh     = 1e3 // H → mH
)

const (
	lineEnding = "\r\n"
	decimalFmt = "%.2f"
)

// DriverValues holds Thiele-Small parameters in SI units.
type DriverValues struct {
	Fs  float64 // Hz
	Qes float64
	Qms float64
	Sd  float64 // m²
	Re  float64 // Ω
	Bl  float64 // T·m
	Mms float64 // kg
	Cms float64 // m/N
	Rms float64 // kg/s
	Le  float64 // H
}

// SegmentValues holds one horn segment in SI units. Profile is the
// record tag: EXP, CON or HYP.
type SegmentValues struct {
	Profile    string
	ThroatArea float64 // m²
	MouthArea  float64 // m²
	Length     float64 // m
	Shape      float64 // T, HYP only
}

// SystemValues is a complete exchanged configuration.
type SystemValues struct {
	Driver              DriverValues
	Segments            []SegmentValues
	ThroatChamberVolume float64 // m³
	RearChamberVolume   float64 // m³
}

// Export renders the configuration in the exchange layout.
func Export(v *SystemValues) []byte {
	var b bytes.Buffer
	put := func(key string, val float64) {
		fmt.Fprintf(&b, "%s="+decimalFmt+lineEnding, key, val)
	}

	d := v.Driver
	put("Fs", d.Fs)
	put("Qes", d.Qes)
	put("Qms", d.Qms)
	put("Sd", d.Sd*areaToCm2)
	put("Re", d.Re)
	put("Bl", d.Bl)
	put("Mms", d.Mms*massToGram)
	put("Cms", d.Cms*complianceToMmPerN)
	put("Rms", d.Rms)
	put("Le", d.Le*inductanceToMh)

	put("Vtc", v.ThroatChamberVolume*volumeToLitre)
	put("Vrc", v.RearChamberVolume*volumeToLitre)

	fmt.Fprintf(&b, "Nseg=%d%s", len(v.Segments), lineEnding)
	for i, s := range v.Segments {
		n := i + 1
		fmt.Fprintf(&b, "P%d=%s%s", n, s.Profile, lineEnding)
		put(fmt.Sprintf("S%dt", n), s.ThroatArea*areaToCm2)
		put(fmt.Sprintf("S%dm", n), s.MouthArea*areaToCm2)
		put(fmt.Sprintf("L%d", n), s.Length*lengthToCm)
		put(fmt.Sprintf("T%d", n), s.Shape)
	}
	return b.Bytes()
}

// Import parses a record file back into SI values. Unknown keys are
// ignored for forward compatibility; missing required keys fail with
// ErrFormat.
func Import(data []byte) (*SystemValues, error) {
	fields, err := parseLines(data)
	if err != nil {
		return nil, err
	}

	var v SystemValues
	d := &v.Driver

	for _, f := range []struct {
		key   string
		dst   *float64
		scale float64
	}{
		{"Fs", &d.Fs, 1},
		{"Qes", &d.Qes, 1},
		{"Qms", &d.Qms, 1},
		{"Sd", &d.Sd, 1 / areaToCm2},
		{"Re", &d.Re, 1},
		{"Bl", &d.Bl, 1},
		{"Mms", &d.Mms, 1 / massToGram},
		{"Cms", &d.Cms, 1 / complianceToMmPerN},
		{"Rms", &d.Rms, 1},
		{"Le", &d.Le, 1 / inductanceToMh},
		{"Vtc", &v.ThroatChamberVolume, 1 / volumeToLitre},
		{"Vrc", &v.RearChamberVolume, 1 / volumeToLitre},
	} {
		val, err := floatField(fields, f.key)
		if err != nil {
			return nil, err
		}
		*f.dst = val * f.scale
	}

	nseg, err := floatField(fields, "Nseg")
	if err != nil {
		return nil, err
	}
	for i := 0; i < int(nseg); i++ {
		n := i + 1
		profile, ok := fields[fmt.Sprintf("P%d", n)]
		if !ok {
			return nil, fmt.Errorf("%w: missing key P%d", ErrFormat, n)
		}

		var s SegmentValues
		s.Profile = profile
		for _, f := range []struct {
			key   string
			dst   *float64
			scale float64
		}{
			{fmt.Sprintf("S%dt", n), &s.ThroatArea, 1 / areaToCm2},
			{fmt.Sprintf("S%dm", n), &s.MouthArea, 1 / areaToCm2},
			{fmt.Sprintf("L%d", n), &s.Length, 1 / lengthToCm},
			{fmt.Sprintf("T%d", n), &s.Shape, 1},
		} {
			val, err := floatField(fields, f.key)
			if err != nil {
				return nil, err
			}
			*f.dst = val * f.scale
		}
		v.Segments = append(v.Segments, s)
	}
	return &v, nil
}

func parseLines(data []byte) (map[string]string, error) {
	fields := make(map[string]string)
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSuffix(line, "\r")
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		key, val, found := strings.Cut(line, "=")
		if !found {
			return nil, fmt.Errorf("%w: line %q has no '='", ErrFormat, line)
		}
		fields[strings.TrimSpace(key)] = strings.TrimSpace(val)
	}
	return fields, nil
}

func floatField(fields map[string]string, key string) (float64, error) {
	raw, ok := fields[key]
	if !ok {
		return 0, fmt.Errorf("%w: missing key %s", ErrFormat, key)
	}
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: key %s value %q is not a number", ErrFormat, key, raw)
	}
	return val, nil
}
