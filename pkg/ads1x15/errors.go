package ads1x15

import (
	"errors"
	"fmt"
)

// Validation errors. All are caller contract violations raised before any
// register traffic; none are retried. Transport errors are returned from the
// [Bus] untouched.
var (
	ErrBadGain      = errors.New("gain index out of range")
	ErrBadRate      = errors.New("data rate index out of range")
	ErrBadMux       = errors.New("invalid multiplexer setting")
	ErrBadChannel   = errors.New("unsupported channel selection")
	ErrBadThreshold = errors.New("threshold out of range for variant")
	ErrBadRegister  = errors.New("invalid register address")
	ErrBadAddress   = errors.New("invalid bus address")
	ErrNotArmed     = errors.New("no conversion armed, call Arm first")
)

func errBadRate(r Rate) error {
	return fmt.Errorf("%w: %d", ErrBadRate, r)
}

func errBadGain(g Gain) error {
	return fmt.Errorf("%w: %d", ErrBadGain, g)
}

func errBadMux(m Mux) error {
	return fmt.Errorf("%w: %d", ErrBadMux, m)
}

func errBadChannel(pos, neg Channel) error {
	return fmt.Errorf("%w: %s/%s", ErrBadChannel, pos, neg)
}
