// Package bands converts decibel magnitude spectra into small, smoothly
// animated vectors of perceptual band energies in [0, 1].
//
// Bands are placed evenly in log-frequency space and read from the
// spectrum through an adaptive averaging window that is wide where FFT
// bins are sparse (low frequencies) and narrow where they are dense.
// Each band passes through a perceptual tilt, optional bass taming,
// gain, noise floor, power-law compression, a soft-knee limiter, an
// asymmetric attack/release envelope, and residual exponential
// smoothing. The result is stable at animation rates and suitable for
// driving bar heights, particle rates, and similar visual parameters.
//
// The package does not capture audio and does not compute FFTs. It
// consumes [Frame] values produced by an external spectral analyzer,
// such as the analyzer package in this module.
package bands
