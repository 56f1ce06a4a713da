// Package interrupts provides the interrupt flag storage shared between
// the CPU core and the peripherals that raise interrupt lines. Only the
// flag state lives here; vectoring and servicing belong to the host.
package interrupts

import (
	"github.com/duskgb/duskgb/internal/types"
)

const (
	// VBlankFlag is the VBlank interrupt flag (bit 0).
	VBlankFlag = types.Bit0
	// LCDFlag is the LCD STAT interrupt flag (bit 1).
	LCDFlag = types.Bit1
	// TimerFlag is the Timer interrupt flag (bit 2).
	TimerFlag = types.Bit2
	// SerialFlag is the Serial interrupt flag (bit 3).
	SerialFlag = types.Bit3
	// JoypadFlag is the Joypad interrupt flag (bit 4).
	JoypadFlag = types.Bit4
)

// Service holds the interrupt Flag (IF, 0xFF0F) and Enable (IE, 0xFFFF)
// registers. A peripheral requests an interrupt by setting the
// corresponding Flag bit; the CPU's HALT state wakes once any requested
// line is also enabled.
type Service struct {
	Flag   uint8
	Enable uint8
}

// NewService returns a new Service with no lines requested or enabled.
func NewService() *Service {
	return &Service{}
}

// Request sets the given interrupt flag.
func (s *Service) Request(flag uint8) {
	s.Flag |= flag & 0x1F
}

// SetFlag writes the IF register. Only the low 5 bits are stored.
func (s *Service) SetFlag(v uint8) {
	s.Flag = v & 0x1F
}

// ReadFlag reads the IF register. The upper 3 bits are always set.
func (s *Service) ReadFlag() uint8 {
	return s.Flag | 0xE0
}

// Pending reports whether any requested interrupt is also enabled.
func (s *Service) Pending() bool {
	return s.Flag&s.Enable&0x1F != 0
}
