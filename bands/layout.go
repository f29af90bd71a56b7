package bands

import "fmt"

// Band describes where one output band reads from the spectrum for a
// given transform geometry.
type Band struct {
	// CenterHz is the log-spaced target frequency of the band.
	CenterHz float64
	// CenterBin is the FFT bin nearest CenterHz, clamped to the valid
	// bin range for the configured frequency bounds.
	CenterBin int
	// LowBin and HighBin bound the averaging window (inclusive). The
	// window may be empty (LowBin > HighBin) when the frequency range
	// barely overlaps the spectrum.
	LowBin  int
	HighBin int
}

// Layout reports the band placement the extractor uses for bandCount
// bands over a spectrum with the given sample rate and FFT size. This
// is exactly the mapping [Extractor.Bands] applies, so it can be used
// to label axes or inspect bin coverage.
func (e *Extractor) Layout(bandCount int, sampleRate float64, fftSize int) ([]Band, error) {
	if bandCount <= 0 {
		return nil, fmt.Errorf("bands: band count must be > 0: %d", bandCount)
	}

	geo, err := e.geometry(sampleRate, fftSize, 0)
	if err != nil {
		return nil, err
	}

	out := make([]Band, bandCount)

	for j := range bandCount {
		p := e.placeBand(j, bandCount, geo)
		out[j] = Band{
			CenterHz:  p.centerHz,
			CenterBin: p.centerBin,
			LowBin:    p.lowBin,
			HighBin:   p.highBin,
		}
	}

	return out, nil
}
