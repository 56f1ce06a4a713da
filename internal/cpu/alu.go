package cpu

import "github.com/duskgb/duskgb/internal/types"

// add adds n (plus the carry flag when withCarry is set) to the A
// register.
//
//	ADD A, n / ADC A, n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) add(n uint8, withCarry bool) {
	var carry uint8
	if withCarry && c.isFlagSet(FlagCarry) {
		carry = 1
	}
	sum := uint16(c.A) + uint16(n) + uint16(carry)
	half := c.A&0x0F+n&0x0F+carry > 0x0F
	c.A = uint8(sum)
	c.setFlags(c.A == 0, false, half, sum > 0xFF)
}

// sub subtracts n (plus the carry flag when withCarry is set) from the
// A register.
//
//	SUB n / SBC A, n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func (c *CPU) sub(n uint8, withCarry bool) {
	var carry uint8
	if withCarry && c.isFlagSet(FlagCarry) {
		carry = 1
	}
	half := uint16(n&0x0F)+uint16(carry) > uint16(c.A&0x0F)
	borrow := uint16(n)+uint16(carry) > uint16(c.A)
	c.A = c.A - n - carry
	c.setFlags(c.A == 0, true, half, borrow)
}

// and performs a bitwise AND operation on n and the A register.
//
//	AND n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set.
//	C - Reset.
func (c *CPU) and(n uint8) {
	c.A &= n
	c.setFlags(c.A == 0, false, true, false)
}

// or performs a bitwise OR operation on n and the A register.
//
//	OR n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) or(n uint8) {
	c.A |= n
	c.setFlags(c.A == 0, false, false, false)
}

// xor performs a bitwise XOR operation on n and the A register.
//
//	XOR n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) xor(n uint8) {
	c.A ^= n
	c.setFlags(c.A == 0, false, false, false)
}

// compare subtracts n from the A register without storing the result.
//
//	CP n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if A == n.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if A < n.
func (c *CPU) compare(n uint8) {
	c.setFlags(c.A == n, true, n&0x0F > c.A&0x0F, n > c.A)
}

// increment n by 1, wrapping at 0xFF.
//
//	INC n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Not affected.
func (c *CPU) increment(n uint8) uint8 {
	incremented := n + 1
	c.setFlags(incremented == 0, false, n&0x0F == 0x0F, c.isFlagSet(FlagCarry))
	return incremented
}

// decrement n by 1, wrapping at 0x00.
//
//	DEC n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Not affected.
func (c *CPU) decrement(n uint8) uint8 {
	decremented := n - 1
	c.setFlags(decremented == 0, true, n&0x0F == 0, c.isFlagSet(FlagCarry))
	return decremented
}

// incrementNN increments the given register pair by 1, wrapping at
// 0xFFFF. No flags are affected.
//
//	INC nn
//	nn = BC, DE, HL
func (c *CPU) incrementNN(reg *types.RegisterPair) {
	reg.SetUint16(reg.Uint16() + 1)
}

// decrementNN decrements the given register pair by 1, wrapping at
// 0x0000. No flags are affected.
//
//	DEC nn
//	nn = BC, DE, HL
func (c *CPU) decrementNN(reg *types.RegisterPair) {
	reg.SetUint16(reg.Uint16() - 1)
}

// addHL adds the given 16-bit value to the HL register pair.
//
//	ADD HL, nn
//	nn = BC, DE, HL, SP
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Set if carry from bit 11.
//	C - Set if carry from bit 15.
func (c *CPU) addHL(n uint16) {
	hl := c.HL.Uint16()
	sum := uint32(hl) + uint32(n)
	half := hl&0x0FFF+n&0x0FFF > 0x0FFF
	c.HL.SetUint16(uint16(sum))
	c.setFlags(c.isFlagSet(FlagZero), false, half, sum > 0xFFFF)
}

// addSPSigned adds the signed 8-bit offset to SP and returns the
// result without storing it.
//
//	ADD SP, e8 / LD HL, SP+e8
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Set if carry from bit 3 of the low byte addition.
//	C - Set if carry from bit 7 of the low byte addition.
func (c *CPU) addSPSigned(offset uint8) uint16 {
	result := c.SP + uint16(int8(offset))
	half := c.SP&0x0F+uint16(offset)&0x0F > 0x0F
	carry := c.SP&0xFF+uint16(offset) > 0xFF
	c.setFlags(false, false, half, carry)
	return result
}

// decimalAdjust adjusts the A register after a BCD addition or
// subtraction.
//
//	DAA
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Not affected.
//	H - Reset.
//	C - Set if the adjustment carried.
func (c *CPU) decimalAdjust() {
	a := c.A
	carry := c.isFlagSet(FlagCarry)
	if !c.isFlagSet(FlagSubtract) {
		if carry || a > 0x99 {
			a += 0x60
			carry = true
		}
		if c.isFlagSet(FlagHalfCarry) || a&0x0F > 0x09 {
			a += 0x06
		}
	} else {
		if carry {
			a -= 0x60
		}
		if c.isFlagSet(FlagHalfCarry) {
			a -= 0x06
		}
	}
	c.A = a
	c.setFlags(a == 0, c.isFlagSet(FlagSubtract), false, carry)
}

// complement flips every bit of the A register.
//
//	CPL
//
// Flags affected:
//
//	Z - Not affected.
//	N - Set.
//	H - Set.
//	C - Not affected.
func (c *CPU) complement() {
	c.A = ^c.A
	c.setFlags(c.isFlagSet(FlagZero), true, true, c.isFlagSet(FlagCarry))
}

// swap the upper and lower nibbles of n.
//
//	SWAP n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) swap(n uint8) uint8 {
	swapped := n<<4 | n>>4
	c.setFlags(swapped == 0, false, false, false)
	return swapped
}
