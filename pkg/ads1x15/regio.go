package ads1x15

import "fmt"

// WriteRegister writes a 16-bit value to one of the four device registers.
// Thin typed pass-through to the bus, exposed for diagnostics and for
// callers that need threshold or configuration bits beyond the higher-level
// operations. The last written value is shadowed per register.
func (adc *ADS1x15) WriteRegister(reg Register, value uint16) error {
	if reg >= NumRegisters {
		return fmt.Errorf("%w: 0x%02X", ErrBadRegister, byte(reg))
	}
	if err := adc.bus.WriteRegister(reg, value); err != nil {
		return err
	}
	adc.regLW[reg] = value
	return nil
}

// ReadRegister reads one of the four device registers. The last read value
// is shadowed per register.
func (adc *ADS1x15) ReadRegister(reg Register) (uint16, error) {
	if reg >= NumRegisters {
		return 0, fmt.Errorf("%w: 0x%02X", ErrBadRegister, byte(reg))
	}
	value, err := adc.bus.ReadRegister(reg)
	if err != nil {
		return 0, err
	}
	adc.regLR[reg] = value
	return value, nil
}

// LastRead returns the shadow of the last value read from reg.
func (adc *ADS1x15) LastRead(reg Register) uint16 {
	if reg >= NumRegisters {
		return 0
	}
	return adc.regLR[reg]
}

// LastWritten returns the shadow of the last value written to reg.
func (adc *ADS1x15) LastWritten(reg Register) uint16 {
	if reg >= NumRegisters {
		return 0
	}
	return adc.regLW[reg]
}

// Registers reads all four registers and returns a snapshot. Handy for
// debug; not for hot paths, it allocates the map.
func (adc *ADS1x15) Registers() (map[Register]uint16, error) {
	regs := make(map[Register]uint16, NumRegisters)
	for reg := Register(0); reg < NumRegisters; reg++ {
		val, err := adc.ReadRegister(reg)
		if err != nil {
			return nil, err
		}
		regs[reg] = val
	}
	return regs, nil
}
