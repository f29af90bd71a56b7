package analyzer

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-viz/bands"
)

const (
	minDB = -130.0
	eps   = 1e-12
)

// Analyzer computes smoothed decibel magnitude spectra from a mono
// sample stream. It is not safe for concurrent use; Push and Frame must
// be called from a single goroutine.
type Analyzer struct {
	cfg config

	win     []float64
	winGain float64
	plan    *algofft.Plan[complex128]
	hop     int

	ring  []float64
	write int
	// filled counts ring occupancy until the first full frame, toHop
	// counts samples since the last analysis frame.
	filled int
	toHop  int

	input  []complex128
	output []complex128
	re     []float64
	im     []float64
	mag    []float64

	db    []float64
	ready bool
}

// New creates an analyzer with the given options.
func New(opts ...Option) (*Analyzer, error) {
	cfg := defaultConfig()

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		err := opt(&cfg)
		if err != nil {
			return nil, err
		}
	}

	win, err := generateWindow(cfg.window, cfg.fftSize)
	if err != nil {
		return nil, err
	}

	sum := 0.0
	for _, w := range win {
		sum += w
	}

	plan, err := algofft.NewPlan64(cfg.fftSize)
	if err != nil {
		return nil, fmt.Errorf("analyzer: init fft plan: %w", err)
	}

	hop := int(math.Round(float64(cfg.fftSize) * (1 - cfg.overlap)))
	if hop < 1 {
		hop = 1
	}

	binCount := cfg.fftSize / 2

	a := &Analyzer{
		cfg:     cfg,
		win:     win,
		winGain: sum / float64(cfg.fftSize),
		plan:    plan,
		hop:     hop,
		ring:    make([]float64, cfg.fftSize),
		input:   make([]complex128, cfg.fftSize),
		output:  make([]complex128, cfg.fftSize),
		re:      make([]float64, binCount),
		im:      make([]float64, binCount),
		mag:     make([]float64, binCount),
		db:      make([]float64, binCount),
	}

	for i := range a.db {
		a.db[i] = minDB
	}

	return a, nil
}

// Push feeds mono samples into the analyzer, recomputing the spectrum
// every hop once the ring has filled.
func (a *Analyzer) Push(samples []float64) {
	for _, s := range samples {
		a.ring[a.write] = s

		a.write++
		if a.write >= a.cfg.fftSize {
			a.write = 0
		}

		if a.filled < a.cfg.fftSize {
			a.filled++
		}

		a.toHop++
		if a.filled < a.cfg.fftSize || a.toHop < a.hop {
			continue
		}

		a.toHop = 0
		a.analyzeFrame()
	}
}

// Frame returns the current smoothed decibel spectrum as a band
// extraction frame. Until the ring has filled once it returns an empty
// frame, which band extraction treats as a not-ready source.
//
// The frame borrows the analyzer's spectrum buffer: it is valid until
// the next Push and must not be mutated.
func (a *Analyzer) Frame() bands.Frame {
	if !a.ready {
		return bands.Frame{}
	}

	return bands.Frame{
		Bins:       a.db,
		SampleRate: a.cfg.sampleRate,
		FFTSize:    a.cfg.fftSize,
	}
}

// Reset clears the ring and the smoothed spectrum, returning the
// analyzer to the not-ready state.
func (a *Analyzer) Reset() {
	for i := range a.ring {
		a.ring[i] = 0
	}

	for i := range a.db {
		a.db[i] = minDB
	}

	a.write = 0
	a.filled = 0
	a.toHop = 0
	a.ready = false
}

// SampleRate returns the configured sample rate.
func (a *Analyzer) SampleRate() float64 { return a.cfg.sampleRate }

// FFTSize returns the configured transform length.
func (a *Analyzer) FFTSize() int { return a.cfg.fftSize }

// HopSize returns the analysis hop in samples.
func (a *Analyzer) HopSize() int { return a.hop }

func (a *Analyzer) analyzeFrame() {
	read := a.write
	for i := 0; i < a.cfg.fftSize; i++ {
		a.input[i] = complex(a.ring[read]*a.win[i], 0)

		read++
		if read >= a.cfg.fftSize {
			read = 0
		}
	}

	err := a.plan.Forward(a.output, a.input)
	if err != nil {
		return
	}

	binCount := len(a.db)
	for k := 0; k < binCount; k++ {
		a.re[k] = real(a.output[k])
		a.im[k] = imag(a.output[k])
	}

	vecmath.Magnitude(a.mag, a.re, a.im)

	norm := float64(a.cfg.fftSize) * math.Max(a.winGain, eps)

	for k := 0; k < binCount; k++ {
		mag := a.mag[k] / norm
		if k > 0 {
			mag *= 2
		}

		valDB := 20 * math.Log10(math.Max(eps, mag))
		if valDB < minDB {
			valDB = minDB
		}

		if !a.ready {
			a.db[k] = valDB
			continue
		}

		smooth := a.cfg.smoothing
		a.db[k] = smooth*a.db[k] + (1-smooth)*valDB
	}

	a.ready = true
}
