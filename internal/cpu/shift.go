package cpu

import "github.com/duskgb/duskgb/internal/types"

// shiftLeftArithmetic shifts n left by 1 bit. Bit 0 becomes zero.
//
//	SLA n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func (c *CPU) shiftLeftArithmetic(n uint8) uint8 {
	shifted := n << 1
	c.setFlags(shifted == 0, false, false, n&types.Bit7 == types.Bit7)
	return shifted
}

// shiftRightArithmetic shifts n right by 1 bit. Bit 7 keeps its value.
//
//	SRA n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) shiftRightArithmetic(n uint8) uint8 {
	shifted := n>>1 | n&types.Bit7
	c.setFlags(shifted == 0, false, false, n&types.Bit0 == types.Bit0)
	return shifted
}

// shiftRightLogical shifts n right by 1 bit. Bit 7 becomes zero.
//
//	SRL n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) shiftRightLogical(n uint8) uint8 {
	shifted := n >> 1
	c.setFlags(shifted == 0, false, false, n&types.Bit0 == types.Bit0)
	return shifted
}
