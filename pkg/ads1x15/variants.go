package ads1x15

// Variant carries the per-chip constants that distinguish the 12-bit and
// 16-bit members of the family. The conversion and threshold registers are
// always 16 bits wide; the 12-bit parts left-justify their codes, so Shift
// is the amount a raw register value must be arithmetically shifted right
// (or a threshold shifted left) to move between codes and register values.
//
// Variant is a plain value; copy it freely. A handle keeps its Variant for
// its whole lifetime.
type Variant struct {
	Name    string
	Bits    uint8
	Shift   uint8
	MaxCode int16 // largest positive code, 2^(Bits-1)-1

	rates [NumRates]uint16
}

// The two silicon variants.
var (
	// ADS1015 is the 12-bit variant, up to 3300 samples per second.
	ADS1015 = Variant{
		Name:    "ADS1015",
		Bits:    12,
		Shift:   4,
		MaxCode: 2047,
		// Rate codes 6 and 7 both select 3300 SPS on this part.
		rates: [NumRates]uint16{128, 250, 490, 920, 1600, 2400, 3300, 3300},
	}

	// ADS1115 is the 16-bit variant, up to 860 samples per second.
	ADS1115 = Variant{
		Name:    "ADS1115",
		Bits:    16,
		Shift:   0,
		MaxCode: 32767,
		rates:   [NumRates]uint16{8, 16, 32, 64, 128, 250, 475, 860},
	}
)

func (v Variant) String() string {
	return v.Name
}

// SampleRate returns the samples-per-second this variant converts at for the
// given rate code.
func (v Variant) SampleRate(r Rate) (uint16, error) {
	if r >= NumRates {
		return 0, errBadRate(r)
	}
	return v.rates[r], nil
}

// Rate is an index into a variant's data-rate table (0..7). The same code
// means a different frequency on each variant; see [Variant.SampleRate].
type Rate uint8

// NumRates is the size of the data-rate table.
const NumRates = 8

// Gain is an index into the programmable gain amplifier's full-scale table.
type Gain uint8

// Gain settings and the full-scale input range they select.
const (
	Gain6V       Gain = iota // ±6.144V
	Gain4V                   // ±4.096V
	Gain2V                   // ±2.048V
	Gain1V                   // ±1.024V
	GainHalfV                // ±0.512V
	GainQuarterV             // ±0.256V

	// NumGains is the number of valid gain settings. Mux codes 6 and 7 also
	// decode as ±0.256V on silicon, but are not accepted as input here.
	NumGains = 6
)

var gainFullScale = [NumGains]float64{6.144, 4.096, 2.048, 1.024, 0.512, 0.256}

// FullScale returns the positive full-scale input voltage for the gain
// setting, or 0 for an invalid one.
func (g Gain) FullScale() float64 {
	if g >= NumGains {
		return 0
	}
	return gainFullScale[g]
}

func (g Gain) String() string {
	switch g {
	case Gain6V:
		return "±6.144V"
	case Gain4V:
		return "±4.096V"
	case Gain2V:
		return "±2.048V"
	case Gain1V:
		return "±1.024V"
	case GainHalfV:
		return "±0.512V"
	case GainQuarterV:
		return "±0.256V"
	default:
		return "(invalid gain)"
	}
}
