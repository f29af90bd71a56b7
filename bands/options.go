package bands

import (
	"fmt"
	"math"
)

const (
	defaultFreqMinHz     = 40.0
	defaultFreqMaxHz     = 16000.0
	defaultTilt          = 0.25
	defaultBassTame      = 0.0
	defaultBassTameRange = 0.3
	defaultGain          = 1.0
	defaultCompress      = 0.8
	defaultAttack        = 0.6
	defaultRelease       = 0.15
	defaultSmoothing     = 0.25
	defaultNoiseFloor    = 0.01
)

type config struct {
	freqMinHz     float64
	freqMaxHz     float64
	tilt          float64
	bassTame      float64
	bassTameRange float64
	gain          float64
	compress      float64
	attack        float64
	release       float64
	smoothing     float64
	noiseFloor    float64
	peakHoldDecay float64
}

func defaultConfig() config {
	return config{
		freqMinHz:     defaultFreqMinHz,
		freqMaxHz:     defaultFreqMaxHz,
		tilt:          defaultTilt,
		bassTame:      defaultBassTame,
		bassTameRange: defaultBassTameRange,
		gain:          defaultGain,
		compress:      defaultCompress,
		attack:        defaultAttack,
		release:       defaultRelease,
		smoothing:     defaultSmoothing,
		noiseFloor:    defaultNoiseFloor,
	}
}

// Option configures an [Extractor].
type Option func(*config) error

// WithFreqRange sets the Hz bounds of the log-mapped band range
// (default 40 Hz to 16 kHz). minHz must be > 0 and maxHz > minHz.
func WithFreqRange(minHz, maxHz float64) Option {
	return func(cfg *config) error {
		err := validateFreqRange(minHz, maxHz)
		if err != nil {
			return err
		}

		cfg.freqMinHz = minHz
		cfg.freqMaxHz = maxHz

		return nil
	}
}

// WithTilt sets the perceptual tilt exponent boosting high-frequency
// bands relative to low ones (default 0.25, must be >= 0).
func WithTilt(tilt float64) Option {
	return func(cfg *config) error {
		err := validateTilt(tilt)
		if err != nil {
			return err
		}

		cfg.tilt = tilt

		return nil
	}
}

// WithBassTaming compresses the lowest rangeFrac fraction of bands by a
// power law scaled by amount (defaults 0 and 0.3). amount must be >= 0
// and rangeFrac in [0, 1].
func WithBassTaming(amount, rangeFrac float64) Option {
	return func(cfg *config) error {
		err := validateBassTaming(amount, rangeFrac)
		if err != nil {
			return err
		}

		cfg.bassTame = amount
		cfg.bassTameRange = rangeFrac

		return nil
	}
}

// WithGain sets the linear post-mapping multiplier (default 1, must be
// >= 0).
func WithGain(gain float64) Option {
	return func(cfg *config) error {
		err := validateGain(gain)
		if err != nil {
			return err
		}

		cfg.gain = gain

		return nil
	}
}

// WithCompression sets the global power-law compression exponent
// (default 0.8, must be > 0; values below 1 compress harder, 1 is a
// no-op).
func WithCompression(exponent float64) Option {
	return func(cfg *config) error {
		err := validateCompression(exponent)
		if err != nil {
			return err
		}

		cfg.compress = exponent

		return nil
	}
}

// WithEnvelope sets the attack and release envelope coefficients: the
// fraction of the gap to the current raw value closed per call when
// rising respectively falling (defaults 0.6 and 0.15, both in (0, 1]).
func WithEnvelope(attack, release float64) Option {
	return func(cfg *config) error {
		err := validateEnvelope(attack, release)
		if err != nil {
			return err
		}

		cfg.attack = attack
		cfg.release = release

		return nil
	}
}

// WithSmoothing sets the residual exponential smoothing applied after
// the envelope stage (default 0.25, in [0, 1); 0 disables it).
func WithSmoothing(smoothing float64) Option {
	return func(cfg *config) error {
		err := validateSmoothing(smoothing)
		if err != nil {
			return err
		}

		cfg.smoothing = smoothing

		return nil
	}
}

// WithNoiseFloor sets the linear energy subtracted (floored at 0)
// before compression (default 0.01, must be >= 0).
func WithNoiseFloor(floor float64) Option {
	return func(cfg *config) error {
		err := validateNoiseFloor(floor)
		if err != nil {
			return err
		}

		cfg.noiseFloor = floor

		return nil
	}
}

// WithPeakHold enables falling peak caps with the given decay per call
// (default 0 = disabled, must be >= 0). See [Extractor.HoldBands].
func WithPeakHold(decay float64) Option {
	return func(cfg *config) error {
		err := validatePeakHold(decay)
		if err != nil {
			return err
		}

		cfg.peakHoldDecay = decay

		return nil
	}
}

func validateFreqRange(minHz, maxHz float64) error {
	if minHz <= 0 || !isFinite(minHz) {
		return fmt.Errorf("bands: freq min must be > 0: %f", minHz)
	}

	if maxHz <= minHz || !isFinite(maxHz) {
		return fmt.Errorf("bands: freq max must be > freq min: min=%f max=%f", minHz, maxHz)
	}

	return nil
}

func validateTilt(tilt float64) error {
	if tilt < 0 || !isFinite(tilt) {
		return fmt.Errorf("bands: tilt must be >= 0: %f", tilt)
	}

	return nil
}

func validateBassTaming(amount, rangeFrac float64) error {
	if amount < 0 || !isFinite(amount) {
		return fmt.Errorf("bands: bass taming amount must be >= 0: %f", amount)
	}

	if rangeFrac < 0 || rangeFrac > 1 || !isFinite(rangeFrac) {
		return fmt.Errorf("bands: bass taming range must be in [0, 1]: %f", rangeFrac)
	}

	return nil
}

func validateGain(gain float64) error {
	if gain < 0 || !isFinite(gain) {
		return fmt.Errorf("bands: gain must be >= 0: %f", gain)
	}

	return nil
}

func validateCompression(exponent float64) error {
	if exponent <= 0 || !isFinite(exponent) {
		return fmt.Errorf("bands: compression exponent must be > 0: %f", exponent)
	}

	return nil
}

func validateEnvelope(attack, release float64) error {
	if attack <= 0 || attack > 1 || !isFinite(attack) {
		return fmt.Errorf("bands: attack must be in (0, 1]: %f", attack)
	}

	if release <= 0 || release > 1 || !isFinite(release) {
		return fmt.Errorf("bands: release must be in (0, 1]: %f", release)
	}

	return nil
}

func validateSmoothing(smoothing float64) error {
	if smoothing < 0 || smoothing >= 1 || !isFinite(smoothing) {
		return fmt.Errorf("bands: smoothing must be in [0, 1): %f", smoothing)
	}

	return nil
}

func validateNoiseFloor(floor float64) error {
	if floor < 0 || !isFinite(floor) {
		return fmt.Errorf("bands: noise floor must be >= 0: %f", floor)
	}

	return nil
}

func validatePeakHold(decay float64) error {
	if decay < 0 || !isFinite(decay) {
		return fmt.Errorf("bands: peak hold decay must be >= 0: %f", decay)
	}

	return nil
}

func isFinite(v float64) bool {
	return !(math.IsNaN(v) || math.IsInf(v, 0))
}
