package ads1x15

// Bus is the two-wire transport the driver runs over. Implementations own
// the device addressing and the byte-level framing; both operations are
// assumed atomic at the transfer level, with no partial-write states.
//
// Errors are passed through to callers uninterpreted. Retry policy depends
// on bus characteristics this layer knows nothing about.
type Bus interface {
	// WriteRegister writes a 16-bit value to the register at reg.
	WriteRegister(reg Register, value uint16) error

	// ReadRegister reads the 16-bit register at reg.
	ReadRegister(reg Register) (uint16, error)

	// Close releases the transport.
	Close() error
}
