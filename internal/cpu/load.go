package cpu

import "github.com/duskgb/duskgb/internal/types"

// loadRegisterToRegister loads the value of src into dst.
//
//	LD r, r'
//	r, r' = A, B, C, D, E, H, L
func (c *CPU) loadRegisterToRegister(dst, src *types.Register) {
	*dst = *src
}

// loadMemoryToRegister loads the value at the given memory address into
// the given register.
//
//	LD r, (nn)
func (c *CPU) loadMemoryToRegister(reg *types.Register, address uint16) {
	*reg = c.readByte(address)
}

// loadRegisterToMemory loads the value of the given register into the
// given memory address.
//
//	LD (nn), r
func (c *CPU) loadRegisterToMemory(reg types.Register, address uint16) {
	c.writeByte(address, reg)
}

// loadHardwareToRegister loads the value at 0xFF00+offset into the A
// register.
//
//	LDH A, (a8) / LD A, (C)
func (c *CPU) loadHardwareToRegister(offset uint8) {
	c.A = c.readByte(0xFF00 + uint16(offset))
}

// loadRegisterToHardware loads the A register into 0xFF00+offset.
//
//	LDH (a8), A / LD (C), A
func (c *CPU) loadRegisterToHardware(offset uint8) {
	c.writeByte(0xFF00+uint16(offset), c.A)
}
