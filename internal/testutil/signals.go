package testutil

import "math"

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// FlatSpectrum returns a decibel spectrum with every bin at levelDB.
func FlatSpectrum(bins int, levelDB float64) []float64 {
	out := make([]float64, bins)
	for i := range out {
		out[i] = levelDB
	}
	return out
}

// PeakSpectrum returns a decibel spectrum at floorDB everywhere except
// a plateau of halfWidth bins on each side of centerBin set to peakDB.
func PeakSpectrum(bins, centerBin, halfWidth int, floorDB, peakDB float64) []float64 {
	out := FlatSpectrum(bins, floorDB)
	for k := centerBin - halfWidth; k <= centerBin+halfWidth; k++ {
		if k >= 0 && k < bins {
			out[k] = peakDB
		}
	}
	return out
}
