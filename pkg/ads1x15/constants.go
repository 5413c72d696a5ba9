package ads1x15

// Constants from the ADS101x/ADS111x datasheets

// Register is the address of one of the four device registers, written as the
// address pointer byte at the start of every bus transaction.
type Register byte

// Register Addresses
const (
	// RegConversion holds the latest conversion result, left-justified per variant. Read-only.
	RegConversion Register = 0x00
	// RegConfig is the 16-bit bit-packed configuration register.
	RegConfig Register = 0x01
	// RegLoThresh is the comparator low threshold register.
	RegLoThresh Register = 0x02
	// RegHiThresh is the comparator high threshold register.
	RegHiThresh Register = 0x03

	// NumRegisters is the total number of registers.
	NumRegisters = 0x04
)

// Bus addresses, selected by strapping the ADDR pin.
const (
	AddrGND = 0x48 // default
	AddrVDD = 0x49
	AddrSDA = 0x4A
	AddrSCL = 0x4B
)

// Bits for the CONFIG register
const (
	// ConfigOS written high starts a single-shot conversion. Reads back high
	// once the device is idle again (conversion complete).
	ConfigOS = uint16(0x8000)

	// ConfigModeSingle selects single-shot/power-down mode; clear = continuous.
	ConfigModeSingle = uint16(0x0100)

	// Comparator behavior bits. All clear = traditional comparator,
	// active-low, non-latching.
	ConfigCompWindow   = uint16(0x0010)
	ConfigCompActiveHi = uint16(0x0008)
	ConfigCompLatching = uint16(0x0004)

	// Comparator queue, bits 1:0. QueDisable also puts ALERT/RDY in high-Z.
	ConfigCompQueOne     = uint16(0x0000)
	ConfigCompQueTwo     = uint16(0x0001)
	ConfigCompQueFour    = uint16(0x0002)
	ConfigCompQueDisable = uint16(0x0003)
)

// Field positions within the CONFIG register.
const (
	configMuxShift  = 12 // bits 14:12
	configGainShift = 9  // bits 11:9
	configRateShift = 5  // bits 7:5
)

// convReadyHiThresh repurposes ALERT/RDY as a conversion-ready output:
// high threshold MSB set while the low threshold MSB stays clear makes the
// pin pulse once per completed conversion.
const convReadyHiThresh = uint16(0x8000)
