// Package analyzer turns a stream of mono samples into decibel
// magnitude spectra for band extraction.
//
// Samples are accumulated in a ring buffer; every hop (derived from the
// configured overlap) the analyzer windows the most recent FFT-size
// block, transforms it, converts bin magnitudes to dBFS with a -130 dB
// floor, and folds the result into a per-bin exponentially smoothed
// spectrum. Frame returns the smoothed spectrum as a [bands.Frame],
// empty until the ring has filled once.
package analyzer
