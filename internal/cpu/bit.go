package cpu

import "github.com/duskgb/duskgb/pkg/utils"

// testBit tests the bit at the given position in n.
//
//	BIT b, n
//	b = 0-7
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if bit b of n is 0.
//	N - Reset.
//	H - Set.
//	C - Not affected.
func (c *CPU) testBit(n uint8, bit uint8) {
	c.setFlags(!utils.TestBit(n, bit), false, true, c.isFlagSet(FlagCarry))
}

// resetBit clears the bit at the given position in n. No flags are
// affected.
//
//	RES b, n
func (c *CPU) resetBit(n uint8, bit uint8) uint8 {
	return utils.ClearBit(n, bit)
}

// setBit sets the bit at the given position in n. No flags are
// affected.
//
//	SET b, n
func (c *CPU) setBit(n uint8, bit uint8) uint8 {
	return utils.SetBit(n, bit)
}
