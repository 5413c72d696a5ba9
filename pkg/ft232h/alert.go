package ft232h

import (
	"fmt"
	"time"

	"github.com/yunginnanet/ft232h"
)

// SetAlertPin configures one of the bridge's GPIO pins as the input wired to
// the converter's ALERT/RDY line.
func (ft *FT232H) SetAlertPin(pin uint) error {
	ft.alertPin = ft232h.CPin(pin)
	return ft.GPIO.ConfigPin(ft.alertPin, ft232h.Input, true)
}

// AlertPin returns the configured ALERT/RDY pin.
func (ft *FT232H) AlertPin() ft232h.CPin {
	return ft.alertPin
}

// AlertAsserted polls the ALERT/RDY pin once. The comparator output is
// active-low, so a low pin means the alert condition fired.
func (ft *FT232H) AlertAsserted() (bool, error) {
	hl, err := ft.FT232H.GPIO.Get(ft.alertPin)
	if err != nil {
		return false, fmt.Errorf("failed to read ALERT pin: %w", err)
	}
	return !hl, nil
}

// WaitAlert polls the ALERT/RDY pin until it goes low. This is a host-side
// convenience for callers without a real interrupt line; the polling period
// bounds the latency, not the converter.
func (ft *FT232H) WaitAlert() error {
	for {
		asserted, err := ft.AlertAsserted()
		if err != nil {
			return err
		}
		if asserted {
			return nil
		}
		time.Sleep(100 * time.Microsecond)
	}
}
