package ads1x15

import (
	"errors"
	"testing"
)

func TestEncodeConfigRoundTrip(t *testing.T) {
	for gain := Gain(0); gain < NumGains; gain++ {
		for rate := Rate(0); rate < NumRates; rate++ {
			for mux := Mux(0); mux < NumMuxes; mux++ {
				word, err := EncodeConfig(ModeSingleShot, rate, mux, gain, false)
				if err != nil {
					t.Fatalf("unexpected error for g=%d r=%d m=%d: %v", gain, rate, mux, err)
				}
				f := DecodeConfig(word)
				if f.Gain != gain || f.Rate != rate || f.Mux != mux {
					t.Errorf("round trip mismatch: got g=%d r=%d m=%d, want g=%d r=%d m=%d",
						f.Gain, f.Rate, f.Mux, gain, rate, mux)
				}
				if f.Mode != ModeSingleShot {
					t.Errorf("expected single-shot mode, got %s", f.Mode)
				}
				if f.Comparator() {
					t.Error("comparator should decode as disabled")
				}
			}
		}
	}

	t.Run("Continuous", func(t *testing.T) {
		word, err := EncodeConfig(ModeContinuous, 4, MuxDiff01, Gain4V, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		f := DecodeConfig(word)
		if f.Mode != ModeContinuous {
			t.Errorf("expected continuous mode, got %s", f.Mode)
		}
		if !f.Comparator() {
			t.Error("comparator should decode as enabled")
		}
		if f.Queue != uint8(ConfigCompQueOne) {
			t.Errorf("expected assert-after-one queue, got %d", f.Queue)
		}
	})

	t.Run("FixedComparatorBits", func(t *testing.T) {
		// Traditional mode, active-low, non-latching: those bits never get set.
		word, err := EncodeConfig(ModeContinuous, 0, MuxSingle3, Gain6V, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		f := DecodeConfig(word)
		if f.Window || f.ActiveHigh || f.Latching {
			t.Errorf("comparator behavior bits set: window=%t activeHigh=%t latching=%t",
				f.Window, f.ActiveHigh, f.Latching)
		}
	})

	t.Run("NoStartBit", func(t *testing.T) {
		word, err := EncodeConfig(ModeSingleShot, 7, MuxSingle0, GainQuarterV, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if word&ConfigOS != 0 {
			t.Error("encoder must not assert the OS bit")
		}
	})
}

func TestEncodeConfigValidation(t *testing.T) {
	t.Run("BadGain", func(t *testing.T) {
		if _, err := EncodeConfig(ModeSingleShot, 0, MuxDiff01, NumGains, false); !errors.Is(err, ErrBadGain) {
			t.Errorf("expected ErrBadGain, got %v", err)
		}
	})
	t.Run("BadRate", func(t *testing.T) {
		if _, err := EncodeConfig(ModeSingleShot, NumRates, MuxDiff01, Gain2V, false); !errors.Is(err, ErrBadRate) {
			t.Errorf("expected ErrBadRate, got %v", err)
		}
	})
	t.Run("BadMux", func(t *testing.T) {
		if _, err := EncodeConfig(ModeSingleShot, 0, NumMuxes, Gain2V, false); !errors.Is(err, ErrBadMux) {
			t.Errorf("expected ErrBadMux, got %v", err)
		}
	})
}

func TestDecodeSample(t *testing.T) {
	t.Run("NegativeOne", func(t *testing.T) {
		// 0xFFFF must decode to -1 on both variants: the shift has to be
		// arithmetic, not logical.
		if got := DecodeSample(0xFFFF, ADS1115); got != -1 {
			t.Errorf("ADS1115: expected -1, got %d", got)
		}
		if got := DecodeSample(0xFFFF, ADS1015); got != -1 {
			t.Errorf("ADS1015: expected -1, got %d", got)
		}
	})

	t.Run("MaxPositive", func(t *testing.T) {
		if got := DecodeSample(0x7FFF, ADS1115); got != 32767 {
			t.Errorf("ADS1115: expected 32767, got %d", got)
		}
		if got := DecodeSample(0x7FF0, ADS1015); got != 2047 {
			t.Errorf("ADS1015: expected 2047, got %d", got)
		}
	})

	t.Run("MinNegative", func(t *testing.T) {
		if got := DecodeSample(0x8000, ADS1115); got != -32768 {
			t.Errorf("ADS1115: expected -32768, got %d", got)
		}
		if got := DecodeSample(0x8000, ADS1015); got != -2048 {
			t.Errorf("ADS1015: expected -2048, got %d", got)
		}
	})

	t.Run("KnownCodes", func(t *testing.T) {
		if got := DecodeSample(0x1000, ADS1115); got != 4096 {
			t.Errorf("ADS1115: expected 4096, got %d", got)
		}
		if got := DecodeSample(0x0FF0, ADS1015); got != 255 {
			t.Errorf("ADS1015: expected 255, got %d", got)
		}
	})

	t.Run("Zero", func(t *testing.T) {
		if got := DecodeSample(0, ADS1115); got != 0 {
			t.Errorf("expected 0, got %d", got)
		}
	})
}

func TestEncodeThreshold(t *testing.T) {
	t.Run("Negative", func(t *testing.T) {
		if _, err := EncodeThreshold(-1, ADS1115); !errors.Is(err, ErrBadThreshold) {
			t.Errorf("expected ErrBadThreshold, got %v", err)
		}
		if _, err := EncodeThreshold(-2048, ADS1015); !errors.Is(err, ErrBadThreshold) {
			t.Errorf("expected ErrBadThreshold, got %v", err)
		}
	})

	t.Run("AboveMax", func(t *testing.T) {
		if _, err := EncodeThreshold(2048, ADS1015); !errors.Is(err, ErrBadThreshold) {
			t.Errorf("expected ErrBadThreshold, got %v", err)
		}
	})

	t.Run("FullScale", func(t *testing.T) {
		if raw, err := EncodeThreshold(32767, ADS1115); err != nil || raw != 0x7FFF {
			t.Errorf("expected 0x7FFF, got 0x%04X (err %v)", raw, err)
		}
		if raw, err := EncodeThreshold(2047, ADS1015); err != nil || raw != 0x7FF0 {
			t.Errorf("expected 0x7FF0, got 0x%04X (err %v)", raw, err)
		}
	})

	t.Run("LeftJustified", func(t *testing.T) {
		if raw, err := EncodeThreshold(1000, ADS1115); err != nil || raw != 1000 {
			t.Errorf("expected 1000, got %d (err %v)", raw, err)
		}
		if raw, err := EncodeThreshold(1000, ADS1015); err != nil || raw != 1000<<4 {
			t.Errorf("expected %d, got %d (err %v)", 1000<<4, raw, err)
		}
	})
}

func TestConvertCodeToVolts(t *testing.T) {
	near := func(t *testing.T, got, want float64) {
		t.Helper()
		// tolerance allowed to account for lack of floating point precision.
		if got < want-0.000001 || got > want+0.000001 {
			t.Errorf("expected %f, got %f", want, got)
		}
	}

	t.Run("HalfScale16Bit", func(t *testing.T) {
		near(t, ConvertCodeToVolts(16384, Gain4V, ADS1115), 2.048)
	})
	t.Run("NegativeFullScale16Bit", func(t *testing.T) {
		near(t, ConvertCodeToVolts(-32768, Gain4V, ADS1115), -4.096)
	})
	t.Run("HalfScale12Bit", func(t *testing.T) {
		near(t, ConvertCodeToVolts(1024, Gain2V, ADS1015), 1.024)
	})
	t.Run("Zero", func(t *testing.T) {
		near(t, ConvertCodeToVolts(0, Gain6V, ADS1115), 0)
	})
}

func TestVariantSampleRate(t *testing.T) {
	if sps, err := ADS1115.SampleRate(4); err != nil || sps != 128 {
		t.Errorf("ADS1115 rate 4: expected 128 SPS, got %d (err %v)", sps, err)
	}
	if sps, err := ADS1015.SampleRate(4); err != nil || sps != 1600 {
		t.Errorf("ADS1015 rate 4: expected 1600 SPS, got %d (err %v)", sps, err)
	}
	// Rate code 7 is a duplicate of 3300 SPS on the 12-bit part.
	if sps, err := ADS1015.SampleRate(7); err != nil || sps != 3300 {
		t.Errorf("ADS1015 rate 7: expected 3300 SPS, got %d (err %v)", sps, err)
	}
	if _, err := ADS1115.SampleRate(NumRates); !errors.Is(err, ErrBadRate) {
		t.Errorf("expected ErrBadRate, got %v", err)
	}
}
