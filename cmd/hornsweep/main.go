// Command hornsweep evaluates a horn loudspeaker system described by a
// plain-text record file and prints its frequency response.
//
// Usage:
//
//	hornsweep system.txt
//	hornsweep -from 10 -to 40000 -points 200 system.txt
//	hornsweep -voltage 2.83 -csv system.txt > response.csv
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/hornwerk/hornsim"
)

const (
	defaultStartHz = 20.0
	defaultStopHz  = 20000.0
	defaultPoints  = 100
	defaultVoltage = 2.83 // 1 W into 8 Ω

	radToDeg = 180.0 / math.Pi
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	from := flag.Float64("from", defaultStartHz, "Sweep start frequency in Hz")
	to := flag.Float64("to", defaultStopHz, "Sweep stop frequency in Hz")
	points := flag.Int("points", defaultPoints, "Number of logarithmically spaced points")
	voltage := flag.Float64("voltage", defaultVoltage, "Drive voltage in V rms")
	csv := flag.Bool("csv", false, "Emit CSV instead of an aligned table")
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] system.txt\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		return fmt.Errorf("expected exactly one record file")
	}

	cfg, err := hornsim.LoadRecordFile(args[0])
	if err != nil {
		return err
	}
	sys, err := hornsim.NewSystem(cfg)
	if err != nil {
		return err
	}

	freqs := hornsim.LogFrequencies(*from, *to, *points)
	if freqs == nil {
		return fmt.Errorf("invalid sweep range %g..%g Hz, %d points", *from, *to, *points)
	}

	resp, err := sys.Sweep(freqs, *voltage, true)
	if err != nil {
		return err
	}

	printHeader(sys, *voltage, *csv)
	for _, p := range resp {
		printPoint(p, *csv)
	}
	return nil
}

func printHeader(sys *hornsim.System, voltage float64, csv bool) {
	if csv {
		fmt.Println("frequency_hz,spl_db,impedance_ohm,impedance_deg,efficiency_pct")
		return
	}

	d := sys.Driver()
	fmt.Printf("Driver: Fs %.1f Hz, Qts %.3f, Re %.1f ohm, Bl %.1f Tm\n",
		d.Fs, d.Qts(), d.Re, d.Bl)
	if l := sys.HornLength(); l > 0 {
		fmt.Printf("Horn:   %.0f cm\n", l*100)
	}
	fmt.Printf("Drive:  %.2f V rms\n\n", voltage)
	fmt.Printf("%10s  %8s  %9s  %7s  %6s\n", "freq [Hz]", "SPL [dB]", "|Z| [ohm]", "arg(Z)", "eff %")
}

func printPoint(p hornsim.Point, csv bool) {
	phaseDeg := p.ImpedancePhase() * radToDeg
	if csv {
		fmt.Printf("%.2f,%.2f,%.3f,%.2f,%.4f\n",
			p.Frequency, p.SPL, p.ImpedanceMagnitude(), phaseDeg, p.Efficiency*100)
		return
	}
	fmt.Printf("%10.1f  %8.1f  %9.2f  %6.1f°  %6.2f\n",
		p.Frequency, p.SPL, p.ImpedanceMagnitude(), phaseDeg, p.Efficiency*100)
}
