package cpu

import "fmt"

func init() {
	defineRotateShiftInstructions()
	defineBitInstructions()
}

// defineRotateShiftInstructions binds the CB 0x00-0x3F block: the
// rotate, shift and swap operations over the register index order.
func defineRotateShiftInstructions() {
	shiftOps := []struct {
		name string
		fn   func(*CPU, uint8) uint8
	}{
		{"RLC", (*CPU).rotateLeft},
		{"RRC", (*CPU).rotateRight},
		{"RL", (*CPU).rotateLeftThroughCarry},
		{"RR", (*CPU).rotateRightThroughCarry},
		{"SLA", (*CPU).shiftLeftArithmetic},
		{"SRA", (*CPU).shiftRightArithmetic},
		{"SWAP", (*CPU).swap},
		{"SRL", (*CPU).shiftRightLogical},
	}

	for i, op := range shiftOps {
		i, op := uint8(i), op
		for s := uint8(0); s < 8; s++ {
			s := s
			opcode := i<<3 + s
			name := fmt.Sprintf("%s %s", op.name, registerNames[s])
			if s == 6 {
				DefineInstructionCB(opcode, name, 16, func(c *CPU, _ uint16) {
					c.writeByte(c.HL.Uint16(), op.fn(c, c.readByte(c.HL.Uint16())))
				})
				continue
			}
			DefineInstructionCB(opcode, name, 8, func(c *CPU, _ uint16) {
				reg := c.registerIndex(s)
				*reg = op.fn(c, *reg)
			})
		}
	}
}

// defineBitInstructions binds the CB 0x40-0xFF block: BIT, RES and SET
// for each bit position and register index.
func defineBitInstructions() {
	for bit := uint8(0); bit < 8; bit++ {
		bit := bit
		for s := uint8(0); s < 8; s++ {
			s := s
			if s == 6 {
				DefineInstructionCB(0x40+bit<<3+s, fmt.Sprintf("BIT %d, (HL)", bit), 12, func(c *CPU, _ uint16) {
					c.testBit(c.readByte(c.HL.Uint16()), bit)
				})
				DefineInstructionCB(0x80+bit<<3+s, fmt.Sprintf("RES %d, (HL)", bit), 16, func(c *CPU, _ uint16) {
					c.writeByte(c.HL.Uint16(), c.resetBit(c.readByte(c.HL.Uint16()), bit))
				})
				DefineInstructionCB(0xC0+bit<<3+s, fmt.Sprintf("SET %d, (HL)", bit), 16, func(c *CPU, _ uint16) {
					c.writeByte(c.HL.Uint16(), c.setBit(c.readByte(c.HL.Uint16()), bit))
				})
				continue
			}
			DefineInstructionCB(0x40+bit<<3+s, fmt.Sprintf("BIT %d, %s", bit, registerNames[s]), 8, func(c *CPU, _ uint16) {
				c.testBit(*c.registerIndex(s), bit)
			})
			DefineInstructionCB(0x80+bit<<3+s, fmt.Sprintf("RES %d, %s", bit, registerNames[s]), 8, func(c *CPU, _ uint16) {
				reg := c.registerIndex(s)
				*reg = c.resetBit(*reg, bit)
			})
			DefineInstructionCB(0xC0+bit<<3+s, fmt.Sprintf("SET %d, %s", bit, registerNames[s]), 8, func(c *CPU, _ uint16) {
				reg := c.registerIndex(s)
				*reg = c.setBit(*reg, bit)
			})
		}
	}
}
