package bands

// Live-tweaking mutators mirroring the construction options. Each
// validates like its option and leaves the configuration untouched on
// error. Changing parameters does not reset envelope state; the next
// call simply advances under the new settings.

// SetFreqRange updates the Hz bounds of the log-mapped band range.
func (e *Extractor) SetFreqRange(minHz, maxHz float64) error {
	err := validateFreqRange(minHz, maxHz)
	if err != nil {
		return err
	}

	e.cfg.freqMinHz = minHz
	e.cfg.freqMaxHz = maxHz

	return nil
}

// SetTilt updates the perceptual tilt exponent.
func (e *Extractor) SetTilt(tilt float64) error {
	err := validateTilt(tilt)
	if err != nil {
		return err
	}

	e.cfg.tilt = tilt

	return nil
}

// SetBassTaming updates the bass taming amount and band range fraction.
func (e *Extractor) SetBassTaming(amount, rangeFrac float64) error {
	err := validateBassTaming(amount, rangeFrac)
	if err != nil {
		return err
	}

	e.cfg.bassTame = amount
	e.cfg.bassTameRange = rangeFrac

	return nil
}

// SetGain updates the linear post-mapping multiplier.
func (e *Extractor) SetGain(gain float64) error {
	err := validateGain(gain)
	if err != nil {
		return err
	}

	e.cfg.gain = gain

	return nil
}

// SetCompression updates the power-law compression exponent.
func (e *Extractor) SetCompression(exponent float64) error {
	err := validateCompression(exponent)
	if err != nil {
		return err
	}

	e.cfg.compress = exponent

	return nil
}

// SetEnvelope updates the attack and release coefficients.
func (e *Extractor) SetEnvelope(attack, release float64) error {
	err := validateEnvelope(attack, release)
	if err != nil {
		return err
	}

	e.cfg.attack = attack
	e.cfg.release = release

	return nil
}

// SetSmoothing updates the residual smoothing coefficient.
func (e *Extractor) SetSmoothing(smoothing float64) error {
	err := validateSmoothing(smoothing)
	if err != nil {
		return err
	}

	e.cfg.smoothing = smoothing

	return nil
}

// SetNoiseFloor updates the linear noise floor.
func (e *Extractor) SetNoiseFloor(floor float64) error {
	err := validateNoiseFloor(floor)
	if err != nil {
		return err
	}

	e.cfg.noiseFloor = floor

	return nil
}

// SetPeakHold updates the peak cap decay per call (0 disables).
func (e *Extractor) SetPeakHold(decay float64) error {
	err := validatePeakHold(decay)
	if err != nil {
		return err
	}

	e.cfg.peakHoldDecay = decay

	return nil
}

// FreqRange returns the configured Hz bounds.
func (e *Extractor) FreqRange() (minHz, maxHz float64) {
	return e.cfg.freqMinHz, e.cfg.freqMaxHz
}

// Tilt returns the perceptual tilt exponent.
func (e *Extractor) Tilt() float64 { return e.cfg.tilt }

// BassTaming returns the bass taming amount and band range fraction.
func (e *Extractor) BassTaming() (amount, rangeFrac float64) {
	return e.cfg.bassTame, e.cfg.bassTameRange
}

// Gain returns the linear post-mapping multiplier.
func (e *Extractor) Gain() float64 { return e.cfg.gain }

// Compression returns the power-law compression exponent.
func (e *Extractor) Compression() float64 { return e.cfg.compress }

// Envelope returns the attack and release coefficients.
func (e *Extractor) Envelope() (attack, release float64) {
	return e.cfg.attack, e.cfg.release
}

// Smoothing returns the residual smoothing coefficient.
func (e *Extractor) Smoothing() float64 { return e.cfg.smoothing }

// NoiseFloor returns the linear noise floor.
func (e *Extractor) NoiseFloor() float64 { return e.cfg.noiseFloor }

// PeakHold returns the peak cap decay per call.
func (e *Extractor) PeakHold() float64 { return e.cfg.peakHoldDecay }
