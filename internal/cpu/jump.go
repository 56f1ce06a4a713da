package cpu

import "github.com/duskgb/duskgb/pkg/utils"

// pushStack pushes a 16-bit value onto the stack.
func (c *CPU) pushStack(value uint16) {
	high, low := utils.Uint16ToBytes(value)
	c.writeByte(c.SP-1, high)
	c.writeByte(c.SP-2, low)
	c.SP -= 2
}

// popStack pops a 16-bit value off the stack.
func (c *CPU) popStack() uint16 {
	low := c.readByte(c.SP)
	high := c.readByte(c.SP + 1)
	c.SP += 2
	return utils.BytesToUint16(high, low)
}

// call pushes the address of the next instruction onto the stack and
// jumps to the given address.
//
//	CALL nn
//	nn = 16-bit immediate value
func (c *CPU) call(address uint16) {
	c.pushStack(c.PC)
	c.PC = address
}

// callConditional performs call when the condition holds, charging the
// extra cycles of the taken branch.
//
//	CALL cc, nn
//	cc = NZ, Z, NC, C
func (c *CPU) callConditional(condition bool, address uint16) {
	if condition {
		c.call(address)
		c.tick(12)
	}
}

// jumpAbsolute jumps to the given address.
//
//	JP nn
//	nn = 16-bit immediate value
func (c *CPU) jumpAbsolute(address uint16) {
	c.PC = address
}

// jumpAbsoluteConditional performs jumpAbsolute when the condition
// holds, charging the extra cycles of the taken branch.
//
//	JP cc, nn
//	cc = NZ, Z, NC, C
func (c *CPU) jumpAbsoluteConditional(condition bool, address uint16) {
	if condition {
		c.jumpAbsolute(address)
		c.tick(4)
	}
}

// jumpRelative jumps to the address relative to the current PC.
//
//	JR e
//	e = 8-bit signed immediate value
func (c *CPU) jumpRelative(offset uint8) {
	c.PC = uint16(int32(c.PC) + int32(int8(offset)))
}

// jumpRelativeConditional performs jumpRelative when the condition
// holds, charging the extra cycles of the taken branch.
//
//	JR cc, e
//	cc = NZ, Z, NC, C
func (c *CPU) jumpRelativeConditional(condition bool, offset uint8) {
	if condition {
		c.jumpRelative(offset)
		c.tick(4)
	}
}

// ret pops the return address off the stack and jumps to it.
//
//	RET
func (c *CPU) ret() {
	c.PC = c.popStack()
}

// retConditional performs ret when the condition holds, charging the
// extra cycles of the taken branch.
//
//	RET cc
//	cc = NZ, Z, NC, C
func (c *CPU) retConditional(condition bool) {
	if condition {
		c.ret()
		c.tick(12)
	}
}

// rst pushes the current PC onto the stack and jumps to the given
// reset vector.
//
//	RST vec
//	vec = 0x00, 0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38
func (c *CPU) rst(vector uint8) {
	c.pushStack(c.PC)
	c.PC = uint16(vector)
}
