package bands

import (
	"fmt"
	"math"
)

const (
	// minBinDB floors decibel input before linear conversion so silence
	// does not blow up the exponentiation.
	minBinDB = -80.0

	// limiterKnee is the level above which the soft-knee limiter engages.
	limiterKnee = 0.8

	bassTameScale = 0.8
)

// Frame is one spectral magnitude frame as produced by an external
// analyzer: one decibel value per FFT bin plus the transform geometry.
//
// Bins is borrowed for the duration of a single [Extractor.Bands] call;
// the extractor never retains it. An empty Bins slice marks a frame
// from a source that is not ready yet, which is a normal condition and
// not an error.
type Frame struct {
	Bins       []float64
	SampleRate float64
	FFTSize    int
}

// Empty reports whether the frame carries no spectral data.
func (f Frame) Empty() bool { return len(f.Bins) == 0 }

// bandState holds the per-band-count buffers that persist across calls.
// raw is the pre-envelope energy of the current frame, peak the
// attack/release envelope, smoothed the doubly-smoothed output handed
// to callers, hold the optional falling peak caps.
type bandState struct {
	raw      []float64
	peak     []float64
	smoothed []float64
	hold     []float64
}

func newBandState(bandCount int) *bandState {
	return &bandState{
		raw:      make([]float64, bandCount),
		peak:     make([]float64, bandCount),
		smoothed: make([]float64, bandCount),
		hold:     make([]float64, bandCount),
	}
}

func (s *bandState) zero() {
	for i := range s.raw {
		s.raw[i] = 0
		s.peak[i] = 0
		s.smoothed[i] = 0
		s.hold[i] = 0
	}
}

// Extractor converts spectral frames into log-spaced band energy
// vectors. It memoizes envelope and smoothing state per requested band
// count, so several visual modules with different resolutions can share
// one extractor without interfering.
//
// The extractor is not safe for concurrent use. Calls for a given band
// count must be strictly sequential, at most once per animation frame;
// the envelope stages advance one fixed step per call and are not
// scaled by wall-clock time. Callers running at a different tick rate
// must rescale attack, release and smoothing themselves.
type Extractor struct {
	cfg   config
	state map[int]*bandState
}

// New creates an extractor with the given options.
func New(opts ...Option) (*Extractor, error) {
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

	return &Extractor{
		cfg:   cfg,
		state: make(map[int]*bandState),
	}, nil
}

// Bands extracts bandCount energies in [0, 1] from frame, ordered by
// ascending target frequency.
//
// The returned slice is the extractor's persisted output buffer for
// bandCount: it must not be mutated and is overwritten by the next call
// with the same band count. An empty frame returns the buffer unchanged
// (all zeros if this band count was never primed) without advancing the
// envelope.
func (e *Extractor) Bands(frame Frame, bandCount int) ([]float64, error) {
	if bandCount <= 0 {
		return nil, fmt.Errorf("bands: band count must be > 0: %d", bandCount)
	}

	st := e.stateFor(bandCount)

	if frame.Empty() {
		return st.smoothed, nil
	}

	geo, err := e.geometry(frame.SampleRate, frame.FFTSize, len(frame.Bins))
	if err != nil {
		return nil, err
	}

	for j := range bandCount {
		p := e.placeBand(j, bandCount, geo)

		energy := windowEnergy(frame.Bins, p.lowBin, p.highBin)

		if e.cfg.tilt != 0 {
			energy *= math.Pow(p.centerHz/e.cfg.freqMinHz, e.cfg.tilt)
		}

		if e.cfg.bassTame > 0 && p.pos < e.cfg.bassTameRange {
			tame := 1 - p.pos/e.cfg.bassTameRange
			energy = math.Pow(energy, 1+tame*e.cfg.bassTame*bassTameScale)
		}

		energy *= e.cfg.gain

		energy -= e.cfg.noiseFloor
		if energy < 0 {
			energy = 0
		}

		if e.cfg.compress != 1 {
			energy = math.Pow(energy, e.cfg.compress)
		}

		if energy > limiterKnee {
			over := energy - limiterKnee
			energy = limiterKnee + over/(1+over*2)
		}

		if energy > 1 {
			energy = 1
		}

		st.raw[j] = energy

		if energy > st.peak[j] {
			st.peak[j] += (energy - st.peak[j]) * e.cfg.attack
		} else {
			st.peak[j] += (energy - st.peak[j]) * e.cfg.release
		}

		st.smoothed[j] += (st.peak[j] - st.smoothed[j]) * (1 - e.cfg.smoothing)

		if e.cfg.peakHoldDecay > 0 {
			hold := st.hold[j] - e.cfg.peakHoldDecay
			if hold < st.smoothed[j] {
				hold = st.smoothed[j]
			}

			st.hold[j] = hold
		}
	}

	return st.smoothed, nil
}

// HoldBands returns the falling peak caps for bandCount, advanced by
// each [Extractor.Bands] call when peak hold is enabled via
// [WithPeakHold]. The same borrowed-buffer rules as for Bands apply.
func (e *Extractor) HoldBands(bandCount int) ([]float64, error) {
	if bandCount <= 0 {
		return nil, fmt.Errorf("bands: band count must be > 0: %d", bandCount)
	}

	return e.stateFor(bandCount).hold, nil
}

// Reset zeroes all persisted envelope, smoothing and peak-hold state
// for every band count seen so far.
func (e *Extractor) Reset() {
	for _, st := range e.state {
		st.zero()
	}
}

func (e *Extractor) stateFor(bandCount int) *bandState {
	st, ok := e.state[bandCount]
	if !ok {
		st = newBandState(bandCount)
		e.state[bandCount] = st
	}

	return st
}

// geometry captures the valid bin range of one frame for the configured
// frequency bounds.
type geometry struct {
	hzPerBin float64
	lowBin   int
	highBin  int
}

func (e *Extractor) geometry(sampleRate float64, fftSize, binsLen int) (geometry, error) {
	if sampleRate <= 0 || !isFinite(sampleRate) {
		return geometry{}, fmt.Errorf("bands: frame sample rate must be > 0: %f", sampleRate)
	}

	if fftSize <= 0 {
		return geometry{}, fmt.Errorf("bands: frame fft size must be > 0: %d", fftSize)
	}

	binCount := fftSize / 2
	if binsLen > 0 && binsLen < binCount {
		binCount = binsLen
	}

	g := geometry{hzPerBin: sampleRate / float64(fftSize)}

	g.lowBin = int(math.Floor(e.cfg.freqMinHz / g.hzPerBin))
	if g.lowBin < 1 {
		g.lowBin = 1
	}

	g.highBin = int(math.Ceil(e.cfg.freqMaxHz / g.hzPerBin))
	if g.highBin > binCount-1 {
		g.highBin = binCount - 1
	}

	return g, nil
}

// placement locates one band on the spectrum: its log-spaced target
// frequency, its position in [0, 1] along the band axis, and the
// clamped bin window it averages over.
type placement struct {
	pos       float64
	centerHz  float64
	centerBin int
	lowBin    int
	highBin   int
}

func (e *Extractor) placeBand(j, bandCount int, geo geometry) placement {
	p := placement{}
	if bandCount > 1 {
		p.pos = float64(j) / float64(bandCount-1)
	}

	logMin := math.Log(e.cfg.freqMinHz)
	logSpan := math.Log(e.cfg.freqMaxHz) - logMin
	p.centerHz = math.Exp(logMin + p.pos*logSpan)

	p.centerBin = int(math.Round(p.centerHz / geo.hzPerBin))
	if p.centerBin < geo.lowBin {
		p.centerBin = geo.lowBin
	}

	if p.centerBin > geo.highBin {
		p.centerBin = geo.highBin
	}

	// Wider averaging at the sparse low end, single-bin pairs at the top.
	width := int(3 - 2*p.pos)
	if width < 1 {
		width = 1
	}

	p.lowBin = p.centerBin - width
	if p.lowBin < geo.lowBin {
		p.lowBin = geo.lowBin
	}

	p.highBin = p.centerBin + width
	if p.highBin > geo.highBin {
		p.highBin = geo.highBin
	}

	return p
}

// windowEnergy averages the dB-derived linear energy over bins
// [lowBin, highBin]. An empty window yields zero energy.
func windowEnergy(bins []float64, lowBin, highBin int) float64 {
	if lowBin > highBin {
		return 0
	}

	sum := 0.0

	for k := lowBin; k <= highBin; k++ {
		db := bins[k]
		if db < minBinDB {
			db = minBinDB
		}

		sum += math.Pow(10, db/20)
	}

	return sum / float64(highBin-lowBin+1)
}
