package ads1x15

// Channel identifies one of the four analogue input pins.
type Channel uint8

const (
	AIN0 Channel = iota
	AIN1
	AIN2
	AIN3

	// NumChannels is the number of analogue input pins.
	NumChannels = 4
)

func (c Channel) String() string {
	switch c {
	case AIN0:
		return "AIN0"
	case AIN1:
		return "AIN1"
	case AIN2:
		return "AIN2"
	case AIN3:
		return "AIN3"
	default:
		return "(invalid channel)"
	}
}

// Mux is the input multiplexer setting of the configuration register. The
// first four codes measure the difference between two pins; the last four
// measure a single pin against ground.
type Mux uint8

const (
	MuxDiff01 Mux = iota // AIN0 positive, AIN1 negative
	MuxDiff03            // AIN0 positive, AIN3 negative
	MuxDiff13            // AIN1 positive, AIN3 negative
	MuxDiff23            // AIN2 positive, AIN3 negative
	MuxSingle0           // AIN0 vs GND
	MuxSingle1           // AIN1 vs GND
	MuxSingle2           // AIN2 vs GND
	MuxSingle3           // AIN3 vs GND

	// NumMuxes is the number of multiplexer settings.
	NumMuxes = 8
)

func (m Mux) String() string {
	switch m {
	case MuxDiff01:
		return "AIN0-AIN1"
	case MuxDiff03:
		return "AIN0-AIN3"
	case MuxDiff13:
		return "AIN1-AIN3"
	case MuxDiff23:
		return "AIN2-AIN3"
	case MuxSingle0:
		return "AIN0-GND"
	case MuxSingle1:
		return "AIN1-GND"
	case MuxSingle2:
		return "AIN2-GND"
	case MuxSingle3:
		return "AIN3-GND"
	default:
		return "(invalid mux)"
	}
}

// SingleEnded returns the multiplexer setting measuring ch against ground.
func SingleEnded(ch Channel) (Mux, error) {
	if ch >= NumChannels {
		return 0, errBadChannel(ch, ch)
	}
	return MuxSingle0 + Mux(ch), nil
}

// Differential returns the multiplexer setting measuring pos against neg.
// The multiplexer only routes four of the pin pairings: 0/1, 0/3, 1/3 and 2/3.
func Differential(pos, neg Channel) (Mux, error) {
	switch {
	case pos == AIN0 && neg == AIN1:
		return MuxDiff01, nil
	case pos == AIN0 && neg == AIN3:
		return MuxDiff03, nil
	case pos == AIN1 && neg == AIN3:
		return MuxDiff13, nil
	case pos == AIN2 && neg == AIN3:
		return MuxDiff23, nil
	default:
		return 0, errBadChannel(pos, neg)
	}
}
