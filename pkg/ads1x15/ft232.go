package ads1x15

import (
	"fmt"
	"io"
	"sync"

	"github.com/qqlu66/ads1x15/pkg/ft232h"
)

// I2CBus drives an ADS1x15 through the I2C master of an FT232H USB bridge.
// It implements [Bus].
//
// Every register access starts with the one-byte address pointer; writes
// follow it with the value MSB first. Frame buffers come from pools so the
// per-transfer cost on this side stays off the heap.
type I2CBus struct {
	ft   *ft232h.FT232H
	addr uint
}

// Pools for the two frame shapes: a bare address pointer, and a pointer
// followed by a big-endian 16-bit value.
var (
	pointerFrames = &sync.Pool{New: func() interface{} { return make([]byte, 1) }}
	writeFrames   = &sync.Pool{New: func() interface{} { return make([]byte, 3) }}
)

// NewI2CBus binds a connected FT232H bridge to a device address and brings
// up its I2C master.
func NewI2CBus(ft *ft232h.FT232H, addr byte) (*I2CBus, error) {
	if addr < AddrGND || addr > AddrSCL {
		return nil, fmt.Errorf("%w: 0x%02X", ErrBadAddress, addr)
	}
	if err := ft.I2C.Init(); err != nil {
		return nil, fmt.Errorf("failed to init I2C master: %w", err)
	}
	return &I2CBus{ft: ft, addr: uint(addr)}, nil
}

func (b *I2CBus) String() string {
	return fmt.Sprintf("I2CBus{addr:0x%02X, bridge:%s}", b.addr, b.ft)
}

// WriteRegister writes value to the register at reg in one stop-delimited
// transaction.
func (b *I2CBus) WriteRegister(reg Register, value uint16) error {
	frame := writeFrames.Get().([]byte)
	frame[0] = byte(reg)
	frame[1] = byte(value >> 8)
	frame[2] = byte(value)

	_, err := b.ft.I2C.Write(b.addr, frame, true, true)

	frame[0], frame[1], frame[2] = 0, 0, 0
	writeFrames.Put(frame)
	return err
}

// ReadRegister sets the address pointer at reg, then reads the two register
// bytes back MSB first.
func (b *I2CBus) ReadRegister(reg Register) (uint16, error) {
	frame := pointerFrames.Get().([]byte)
	frame[0] = byte(reg)

	_, err := b.ft.I2C.Write(b.addr, frame, true, true)

	frame[0] = 0
	pointerFrames.Put(frame)
	if err != nil {
		return 0, err
	}

	data, err := b.ft.I2C.Read(b.addr, 2, true, true)
	if err != nil {
		return 0, err
	}
	if len(data) != 2 {
		return 0, fmt.Errorf("%w: expected 2 bytes, got %d", io.ErrUnexpectedEOF, len(data))
	}
	return uint16(data[0])<<8 | uint16(data[1]), nil
}

// Close shuts down the bridge.
func (b *I2CBus) Close() error {
	return b.ft.Close()
}
