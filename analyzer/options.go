package analyzer

import (
	"fmt"
	"math"
)

const (
	defaultSampleRate = 48000.0
	defaultFFTSize    = 2048
	defaultOverlap    = 0.75
	defaultWindow     = "blackmanharris"
	defaultSmoothing  = 0.8

	minOverlap   = 0.25
	maxOverlap   = 0.95
	maxSmoothing = 0.95
)

type config struct {
	sampleRate float64
	fftSize    int
	overlap    float64
	window     string
	smoothing  float64
}

func defaultConfig() config {
	return config{
		sampleRate: defaultSampleRate,
		fftSize:    defaultFFTSize,
		overlap:    defaultOverlap,
		window:     defaultWindow,
		smoothing:  defaultSmoothing,
	}
}

// Option configures an [Analyzer].
type Option func(*config) error

// WithSampleRate sets the input sample rate in Hz (default 48000).
func WithSampleRate(sampleRate float64) Option {
	return func(cfg *config) error {
		if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
			return fmt.Errorf("analyzer: sample rate must be > 0: %f", sampleRate)
		}

		cfg.sampleRate = sampleRate

		return nil
	}
}

// WithFFTSize sets the transform length (default 2048; one of 256, 512,
// 1024, 2048, 4096, 8192).
func WithFFTSize(fftSize int) Option {
	return func(cfg *config) error {
		switch fftSize {
		case 256, 512, 1024, 2048, 4096, 8192:
		default:
			return fmt.Errorf("analyzer: unsupported fft size: %d", fftSize)
		}

		cfg.fftSize = fftSize

		return nil
	}
}

// WithOverlap sets the analysis frame overlap fraction (default 0.75,
// in [0.25, 0.95]).
func WithOverlap(overlap float64) Option {
	return func(cfg *config) error {
		if overlap < minOverlap || overlap > maxOverlap || math.IsNaN(overlap) {
			return fmt.Errorf("analyzer: overlap must be in [%.2f, %.2f]: %f", minOverlap, maxOverlap, overlap)
		}

		cfg.overlap = overlap

		return nil
	}
}

// WithWindow selects the analysis window by name (default
// "blackmanharris"; see [WindowNames]).
func WithWindow(name string) Option {
	return func(cfg *config) error {
		_, ok := windowTerms[name]
		if !ok {
			return fmt.Errorf("analyzer: unsupported window: %s", name)
		}

		cfg.window = name

		return nil
	}
}

// WithSmoothing sets the per-bin exponential smoothing applied between
// analysis frames (default 0.8, in [0, 0.95]; 0 disables it).
func WithSmoothing(smoothing float64) Option {
	return func(cfg *config) error {
		if smoothing < 0 || smoothing > maxSmoothing || math.IsNaN(smoothing) {
			return fmt.Errorf("analyzer: smoothing must be in [0, %.2f]: %f", maxSmoothing, smoothing)
		}

		cfg.smoothing = smoothing

		return nil
	}
}
