package hornsim

import (
	"fmt"
	"sync"

	"gonum.org/v1/gonum/floats"
)

// LinearFrequencies returns n evenly spaced frequencies spanning
// [start, stop] in Hz.
func LinearFrequencies(start, stop float64, n int) []float64 {
	if n < 2 || start <= 0 || stop <= start {
		return nil
	}
	return floats.Span(make([]float64, n), start, stop)
}

// LogFrequencies returns n logarithmically spaced frequencies spanning
// [start, stop] in Hz, the natural grid for loudspeaker responses.
func LogFrequencies(start, stop float64, n int) []float64 {
	if n < 2 || start <= 0 || stop <= start {
		return nil
	}
	return floats.LogSpan(make([]float64, n), start, stop)
}

// DefaultFrequencies returns the standard audio-band sweep grid:
// DefaultSweepPoints logarithmic points over
// [DefaultSweepStart, DefaultSweepStop].
func DefaultFrequencies() []float64 {
	return LogFrequencies(DefaultSweepStart, DefaultSweepStop, DefaultSweepPoints)
}

// Sweep evaluates the system at every frequency with the given drive
// voltage. Frequency points are independent, so when parallel is true
// they are fanned out across goroutines with no locking; the shared
// Driver and Medium are only ever read.
func (s *System) Sweep(freqs []float64, voltage float64, parallel bool) (Response, error) {
	if len(freqs) == 0 {
		return nil, fmt.Errorf("%w: empty frequency list", ErrInvalidFrequency)
	}

	out := make(Response, len(freqs))

	if !parallel || len(freqs) == 1 {
		for i, f := range freqs {
			p, err := s.At(f, voltage)
			if err != nil {
				return nil, fmt.Errorf("at %g Hz: %w", f, err)
			}
			out[i] = p
		}
		return out, nil
	}

	var wg sync.WaitGroup
	errChan := make(chan error, len(freqs))

	for i, f := range freqs {
		wg.Add(1)
		go func(idx int, freq float64) {
			defer wg.Done()

			p, err := s.At(freq, voltage)
			if err != nil {
				errChan <- fmt.Errorf("at %g Hz: %w", freq, err)
				return
			}
			out[idx] = p
		}(i, f)
	}

	wg.Wait()
	close(errChan)

	for err := range errChan {
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
