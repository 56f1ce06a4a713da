package cpu

import "github.com/duskgb/duskgb/internal/types"

// rotateLeft rotates n left by 1 bit. The most significant bit is
// copied to both the carry flag and the least significant bit.
//
//	RLC n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func (c *CPU) rotateLeft(n uint8) uint8 {
	carry := n >> 7
	rotated := n<<1 | carry
	c.setFlags(rotated == 0, false, false, carry == 1)
	return rotated
}

// rotateRight rotates n right by 1 bit. The least significant bit is
// copied to both the carry flag and the most significant bit.
//
//	RRC n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) rotateRight(n uint8) uint8 {
	carry := n & types.Bit0
	rotated := n>>1 | carry<<7
	c.setFlags(rotated == 0, false, false, carry == 1)
	return rotated
}

// rotateLeftThroughCarry rotates n left by 1 bit. The carry flag is
// copied to the least significant bit and the most significant bit is
// copied to the carry flag.
//
//	RL n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func (c *CPU) rotateLeftThroughCarry(n uint8) uint8 {
	rotated := n << 1
	if c.isFlagSet(FlagCarry) {
		rotated |= types.Bit0
	}
	c.setFlags(rotated == 0, false, false, n&types.Bit7 == types.Bit7)
	return rotated
}

// rotateRightThroughCarry rotates n right by 1 bit. The carry flag is
// copied to the most significant bit and the least significant bit is
// copied to the carry flag.
//
//	RR n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) rotateRightThroughCarry(n uint8) uint8 {
	rotated := n >> 1
	if c.isFlagSet(FlagCarry) {
		rotated |= types.Bit7
	}
	c.setFlags(rotated == 0, false, false, n&types.Bit0 == types.Bit0)
	return rotated
}

// rotateLeftAccumulator rotates the A register left by 1 bit, the old
// bit 7 entering both the carry flag and bit 0.
//
//	RLCA
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func (c *CPU) rotateLeftAccumulator() {
	carry := c.A >> 7
	c.A = c.A<<1 | carry
	c.setFlags(false, false, false, carry == 1)
}

// rotateRightAccumulator rotates the A register right by 1 bit, the
// old bit 0 entering both the carry flag and bit 7.
//
//	RRCA
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) rotateRightAccumulator() {
	carry := c.A & types.Bit0
	c.A = c.A>>1 | carry<<7
	c.setFlags(false, false, false, carry == 1)
}

// rotateLeftAccumulatorThroughCarry rotates the A register left by 1
// bit through the carry flag.
//
//	RLA
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func (c *CPU) rotateLeftAccumulatorThroughCarry() {
	carry := c.A & types.Bit7
	c.A <<= 1
	if c.isFlagSet(FlagCarry) {
		c.A |= types.Bit0
	}
	c.setFlags(false, false, false, carry == types.Bit7)
}

// rotateRightAccumulatorThroughCarry rotates the A register right by 1
// bit through the carry flag.
//
//	RRA
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) rotateRightAccumulatorThroughCarry() {
	carry := c.A & types.Bit0
	c.A >>= 1
	if c.isFlagSet(FlagCarry) {
		c.A |= types.Bit7
	}
	c.setFlags(false, false, false, carry == types.Bit0)
}
