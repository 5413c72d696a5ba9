package ads1x15

import (
	"os"
	"testing"

	"github.com/l0nax/go-spew/spew"

	"github.com/qqlu66/ads1x15/pkg/ft232h"
)

var pprint = spew.ConfigState{
	Indent:                  "\t",
	MaxDepth:                0,
	DisableMethods:          false,
	DisablePointerMethods:   false,
	DisablePointerAddresses: false,
	DisableCapacities:       false,
	ContinueOnMethod:        true,
	SortKeys:                true,
	SpewKeys:                true,
	HighlightValues:         true,
	HighlightHex:            true,
}

// TestI2CBusFT232H needs a real bridge with an ADS1x15 wired to it.
func TestI2CBusFT232H(t *testing.T) {
	if os.Getenv("TEST_FT232H") == "" {
		t.Skip("set 'TEST_FT232H' in environment to run this test")
	}

	bridge, err := ft232h.ConnectFT232h()
	if err != nil {
		t.Fatalf("failed to connect to FT232H: %v", err)
	}
	t.Logf("FT232H connected: %s", bridge)

	pprint.Dump(bridge.Info())

	bus, err := NewI2CBus(bridge, AddrGND)
	if err != nil {
		t.Fatalf("failed to bring up I2C master: %v", err)
	}

	adc, err := NewADS1x15(bus, DefaultConfig())
	if err != nil {
		t.Fatalf("failed to initialize ADS1x15: %v", err)
	}

	regs, err := adc.Registers()
	if err != nil {
		t.Fatalf("failed to read registers: %v", err)
	}
	pprint.Dump(regs)

	code, err := adc.ReadBlocking(4, MuxSingle0)
	if err != nil {
		t.Fatalf("blocking read failed: %v", err)
	}
	t.Logf("AIN0: code %d, %fV", code, adc.Volts(code))

	if err = adc.Close(); err != nil {
		t.Errorf("failed to close ADS1x15: %v", err)
	}
}

func TestNewI2CBusBadAddress(t *testing.T) {
	if _, err := NewI2CBus(&ft232h.FT232H{}, 0x20); err == nil {
		t.Error("expected error for an address outside 0x48-0x4B")
	}
}
