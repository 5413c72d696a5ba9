package ads1x15

import "errors"

// ADS1x15 provides register-level control over a TI ADS1015/ADS1115 ADC.
//
// The handle performs no internal locking: a single device is driven from at
// most one execution context at a time by contract. [ADS1x15.ReadRearm] and
// [ADS1x15.ReadCurrent] are built to run inside timer or interrupt callbacks;
// they never block, never poll and never allocate. Callers running them from
// overlapping callbacks must serialize themselves (a busy flag that drops the
// overlapping tick is enough).
type ADS1x15 struct {
	bus     Bus
	variant Variant
	gain    Gain
	addr    byte

	// config caches the last written configuration word with the OS bit
	// cleared, so a pipelined read can retrigger without recomputing it.
	config uint16

	// Last written threshold pair, for reference or debugging.
	loThresh uint16
	hiThresh uint16

	// Last read / last written register shadows.
	regLR [NumRegisters]uint16
	regLW [NumRegisters]uint16
}

// Config represents user-level configuration parameters.
type Config struct {
	Variant Variant // ADS1015 or ADS1115
	Gain    Gain    // full-scale range, Gain6V..GainQuarterV
	Addr    byte    // 7-bit bus address; AddrGND when zero
}

// DefaultConfig provides default config. You can adjust as needed.
func DefaultConfig() Config {
	return Config{
		Variant: ADS1115,
		Gain:    Gain2V, // ±2.048V, the power-on default range
		Addr:    AddrGND,
	}
}

// NewADS1x15 constructs a device handle over the given bus. The variant and
// gain are fixed for the lifetime of the handle; the handle owns no buffers.
func NewADS1x15(bus Bus, cfg Config) (*ADS1x15, error) {
	if cfg.Gain >= NumGains {
		return nil, errBadGain(cfg.Gain)
	}
	if cfg.Variant.Bits == 0 {
		cfg.Variant = ADS1115
	}
	if cfg.Addr == 0 {
		cfg.Addr = AddrGND
	}
	return &ADS1x15{
		bus:     bus,
		variant: cfg.Variant,
		gain:    cfg.Gain,
		addr:    cfg.Addr,
	}, nil
}

// Variant returns the profile the handle was built with.
func (adc *ADS1x15) Variant() Variant {
	return adc.variant
}

// Gain returns the configured full-scale range index.
func (adc *ADS1x15) Gain() Gain {
	return adc.gain
}

// Addr returns the 7-bit bus address the handle was built for.
func (adc *ADS1x15) Addr() byte {
	return adc.addr
}

// Volts converts a decoded sample to volts using the handle's gain and
// variant.
func (adc *ADS1x15) Volts(code int16) float64 {
	return ConvertCodeToVolts(code, adc.gain, adc.variant)
}

// ReadBlocking performs one single-shot conversion and waits for it: write
// the configuration with the start bit set, poll the configuration register
// until the OS bit reads back high, then read and decode the conversion
// register. This is the only operation that polls; it is the reference
// behavior the pipelined paths are validated against.
func (adc *ADS1x15) ReadBlocking(rate Rate, mux Mux) (int16, error) {
	word, err := EncodeConfig(ModeSingleShot, rate, mux, adc.gain, false)
	if err != nil {
		return 0, err
	}
	if err = adc.WriteRegister(RegConfig, word|ConfigOS); err != nil {
		return 0, err
	}
	adc.config = word

	for {
		status, err := adc.ReadRegister(RegConfig)
		if err != nil {
			return 0, err
		}
		if status&ConfigOS != 0 {
			break
		}
	}

	raw, err := adc.ReadRegister(RegConversion)
	if err != nil {
		return 0, err
	}
	return DecodeSample(raw, adc.variant), nil
}

// Arm primes the pipelined sampling loop: it writes a single-shot
// configuration with the start bit set and caches it, without waiting for
// completion and without reading a value. The first [ADS1x15.ReadRearm]
// after Arm returns the result of the conversion started here.
func (adc *ADS1x15) Arm(rate Rate, mux Mux) error {
	word, err := EncodeConfig(ModeSingleShot, rate, mux, adc.gain, false)
	if err != nil {
		return err
	}
	if err = adc.WriteRegister(RegConfig, word|ConfigOS); err != nil {
		return err
	}
	adc.config = word
	return nil
}

// ReadRearm is the pipelined fast path for timer-driven sampling. It reads
// the conversion register (the result of the previous cycle's conversion),
// then immediately rewrites the cached configuration with the start bit
// reasserted to trigger the next one, and returns the decoded value. One
// sample of latency buys a hot path with no completion poll.
//
// The calling period must exceed the conversion time at the configured rate
// plus one register read and one register write; a period shorter than that
// yields stale or duplicate samples that this layer cannot detect.
func (adc *ADS1x15) ReadRearm() (int16, error) {
	if adc.config == 0 {
		return 0, ErrNotArmed
	}
	raw, err := adc.ReadRegister(RegConversion)
	if err != nil {
		return 0, err
	}
	if err = adc.WriteRegister(RegConfig, adc.config|ConfigOS); err != nil {
		return 0, err
	}
	return DecodeSample(raw, adc.variant), nil
}

// StartAlert puts the device into continuous conversion with the comparator
// armed: traditional mode, active-low, asserting ALERT after one conversion
// beyond the high threshold. The low threshold register is always written as
// zero; the high threshold defaults to the variant's maximum code when
// omitted. This routine does not wait on the ALERT pin.
func (adc *ADS1x15) StartAlert(rate Rate, mux Mux, threshold ...int16) error {
	word, err := EncodeConfig(ModeContinuous, rate, mux, adc.gain, true)
	if err != nil {
		return err
	}
	hi := adc.variant.MaxCode
	if len(threshold) > 0 {
		hi = threshold[0]
	}
	hiRaw, err := EncodeThreshold(hi, adc.variant)
	if err != nil {
		return err
	}
	return adc.startComparator(word, hiRaw)
}

// StartContinuous puts the device into continuous conversion with ALERT/RDY
// pulsing once per completed conversion instead of past a threshold, for
// interrupt-per-sample acquisition. Pair it with [ADS1x15.ReadCurrent] from
// the interrupt handler. The low threshold register stays at zero here too.
func (adc *ADS1x15) StartContinuous(rate Rate, mux Mux) error {
	word, err := EncodeConfig(ModeContinuous, rate, mux, adc.gain, true)
	if err != nil {
		return err
	}
	return adc.startComparator(word, convReadyHiThresh)
}

// startComparator programs the threshold pair, then writes the configuration
// word to start free-running conversions. Thresholds go first so the
// comparator never runs against stale trip points.
func (adc *ADS1x15) startComparator(word, hiRaw uint16) error {
	if err := adc.WriteRegister(RegLoThresh, 0); err != nil {
		return err
	}
	if err := adc.WriteRegister(RegHiThresh, hiRaw); err != nil {
		return err
	}
	if err := adc.WriteRegister(RegConfig, word); err != nil {
		return err
	}
	adc.config = word
	adc.loThresh = 0
	adc.hiThresh = hiRaw
	return nil
}

// ReadCurrent reads and decodes the conversion register, nothing else. In
// continuous mode the device reconverts on its own, so unlike
// [ADS1x15.ReadRearm] there is no retrigger write. Called once per ALERT
// assertion, from whatever context the caller services the pin in.
func (adc *ADS1x15) ReadCurrent() (int16, error) {
	raw, err := adc.ReadRegister(RegConversion)
	if err != nil {
		return 0, err
	}
	return DecodeSample(raw, adc.variant), nil
}

// Idle drops the device back into single-shot power-down mode without
// starting a conversion. There is no dedicated stop command in this family;
// leaving continuous mode is done by writing a single-shot configuration.
func (adc *ADS1x15) Idle() error {
	word, err := EncodeConfig(ModeSingleShot, 4, MuxDiff01, adc.gain, false)
	if err != nil {
		return err
	}
	if err = adc.WriteRegister(RegConfig, word); err != nil {
		return err
	}
	adc.config = word
	return nil
}

// Close idles the device and releases the bus.
func (adc *ADS1x15) Close() error {
	err := adc.Idle()
	return errors.Join(err, adc.bus.Close())
}
