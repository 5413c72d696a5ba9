package ads1x15

import "fmt"

// Mode selects how the device sequences conversions.
type Mode uint8

const (
	// ModeSingleShot converts once per trigger, then powers down.
	ModeSingleShot Mode = iota
	// ModeContinuous free-runs conversions at the configured rate.
	ModeContinuous
)

func (m Mode) String() string {
	switch m {
	case ModeSingleShot:
		return "single-shot"
	case ModeContinuous:
		return "continuous"
	default:
		return "(invalid mode)"
	}
}

// EncodeConfig packs a configuration word from its fields. The comparator is
// fixed to traditional mode, active-low, non-latching; comparator true arms
// it to assert after one conversion, false disables it and leaves ALERT/RDY
// in high impedance. The OS (start) bit is never set here; callers OR in
// [ConfigOS] when triggering.
//
// Pure function, no I/O. Out-of-range fields are rejected before anything
// touches the bus.
func EncodeConfig(mode Mode, rate Rate, mux Mux, gain Gain, comparator bool) (uint16, error) {
	if rate >= NumRates {
		return 0, errBadRate(rate)
	}
	if gain >= NumGains {
		return 0, errBadGain(gain)
	}
	if mux >= NumMuxes {
		return 0, errBadMux(mux)
	}

	word := uint16(mux)<<configMuxShift |
		uint16(gain)<<configGainShift |
		uint16(rate)<<configRateShift

	if mode == ModeSingleShot {
		word |= ConfigModeSingle
	}
	if comparator {
		word |= ConfigCompQueOne
	} else {
		word |= ConfigCompQueDisable
	}

	return word, nil
}

// ConfigFields is the unpacked view of a configuration word, for diagnostics
// and register dumps.
type ConfigFields struct {
	Idle       bool // OS bit as read back: conversion complete / device idle
	Mode       Mode
	Mux        Mux
	Gain       Gain
	Rate       Rate
	Window     bool
	ActiveHigh bool
	Latching   bool
	Queue      uint8 // raw comparator queue bits, 3 = disabled
}

// Comparator reports whether the comparator queue is enabled.
func (f ConfigFields) Comparator() bool {
	return f.Queue != uint8(ConfigCompQueDisable)
}

func (f ConfigFields) String() string {
	return fmt.Sprintf("ConfigFields{Mode:%s, Mux:%s, Gain:%s, Rate:%d, Comparator:%t, Idle:%t}",
		f.Mode, f.Mux, f.Gain, f.Rate, f.Comparator(), f.Idle)
}

// DecodeConfig unpacks a configuration word. Every 16-bit value decodes to
// something; this is the inverse of [EncodeConfig] for words it produces.
func DecodeConfig(word uint16) ConfigFields {
	f := ConfigFields{
		Idle:       word&ConfigOS != 0,
		Mode:       ModeContinuous,
		Mux:        Mux(word >> configMuxShift & 0x07),
		Gain:       Gain(word >> configGainShift & 0x07),
		Rate:       Rate(word >> configRateShift & 0x07),
		Window:     word&ConfigCompWindow != 0,
		ActiveHigh: word&ConfigCompActiveHi != 0,
		Latching:   word&ConfigCompLatching != 0,
		Queue:      uint8(word & 0x03),
	}
	if word&ConfigModeSingle != 0 {
		f.Mode = ModeSingleShot
	}
	return f
}

// DecodeSample converts a raw conversion register value into a signed code.
// The register always holds a 16-bit two's-complement value with the code
// left-justified, so the shift must be arithmetic: negative differential
// readings rely on the sign extension.
func DecodeSample(raw uint16, v Variant) int16 {
	return int16(raw) >> v.Shift
}

// EncodeThreshold converts a comparator threshold code into its register
// value, left-justified per variant. Negative thresholds are rejected: this
// driver keeps the low threshold pinned at zero and only programs the high
// one.
func EncodeThreshold(value int16, v Variant) (uint16, error) {
	if value < 0 || value > v.MaxCode {
		return 0, fmt.Errorf("%w: %d (%s allows 0..%d)", ErrBadThreshold, value, v.Name, v.MaxCode)
	}
	return uint16(value) << v.Shift, nil
}

// ConvertCodeToVolts converts a decoded sample to volts. A code equal to the
// variant's MaxCode corresponds to one LSB under the positive full-scale
// voltage of the gain range, per the usual 2^(Bits-1) scaling.
func ConvertCodeToVolts(code int16, gain Gain, v Variant) float64 {
	return float64(code) / float64(int32(v.MaxCode)+1) * gain.FullScale()
}
