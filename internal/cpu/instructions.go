package cpu

import (
	"fmt"

	"github.com/duskgb/duskgb/pkg/utils"
)

// illegalOpcodes are the 11 opcode bytes with no instruction bound by
// the hardware. They are bound to a faulting routine so that the table
// still covers every byte value exactly once.
var illegalOpcodes = []uint8{
	0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC, 0xFD,
}

func init() {
	// control
	DefineInstruction(0x00, "NOP", 1, 4, func(c *CPU, _ uint16) {})
	DefineInstruction(0x10, "STOP", 2, 4, func(c *CPU, _ uint16) { c.halted = true })
	DefineInstruction(0x76, "HALT", 1, 4, func(c *CPU, _ uint16) { c.halted = true })
	DefineInstruction(0xF3, "DI", 1, 4, func(c *CPU, _ uint16) { c.IME = false })
	DefineInstruction(0xFB, "EI", 1, 4, func(c *CPU, _ uint16) { c.IME = true })
	DefineInstruction(0xCB, "PREFIX CB", 2, 0, func(c *CPU, v uint16) {
		instr := InstructionSetCB[uint8(v)]
		c.tick(instr.cycles)
		instr.fn(c, 0)
	})
	for _, opcode := range illegalOpcodes {
		opcode := opcode
		DefineInstruction(opcode, fmt.Sprintf("ILLEGAL 0x%02X", opcode), 1, 0, func(c *CPU, _ uint16) {
			c.fault = fmt.Errorf("%w: 0x%02X", ErrInvalidOpcode, opcode)
		})
	}

	// accumulator rotates and flag operations
	DefineInstruction(0x07, "RLCA", 1, 4, func(c *CPU, _ uint16) { c.rotateLeftAccumulator() })
	DefineInstruction(0x0F, "RRCA", 1, 4, func(c *CPU, _ uint16) { c.rotateRightAccumulator() })
	DefineInstruction(0x17, "RLA", 1, 4, func(c *CPU, _ uint16) { c.rotateLeftAccumulatorThroughCarry() })
	DefineInstruction(0x1F, "RRA", 1, 4, func(c *CPU, _ uint16) { c.rotateRightAccumulatorThroughCarry() })
	DefineInstruction(0x27, "DAA", 1, 4, func(c *CPU, _ uint16) { c.decimalAdjust() })
	DefineInstruction(0x2F, "CPL", 1, 4, func(c *CPU, _ uint16) { c.complement() })
	DefineInstruction(0x37, "SCF", 1, 4, func(c *CPU, _ uint16) {
		c.setFlags(c.isFlagSet(FlagZero), false, false, true)
	})
	DefineInstruction(0x3F, "CCF", 1, 4, func(c *CPU, _ uint16) {
		c.setFlags(c.isFlagSet(FlagZero), false, false, !c.isFlagSet(FlagCarry))
	})

	defineLoadInstructions()
	definePairInstructions()
	defineALUInstructions()
	defineControlFlowInstructions()
}

// defineLoadInstructions binds the 8-bit load families: the LD r, r'
// grid, LD r, d8, the indirect accumulator loads and the 0xFF00-page
// forms.
func defineLoadInstructions() {
	// LD r, r' grid (0x40-0x7F, 0x76 is HALT)
	for d := uint8(0); d < 8; d++ {
		for s := uint8(0); s < 8; s++ {
			if d == 6 && s == 6 {
				continue
			}
			d, s := d, s
			opcode := 0x40 + d<<3 + s
			name := fmt.Sprintf("LD %s, %s", registerNames[d], registerNames[s])
			switch {
			case d == 6:
				DefineInstruction(opcode, name, 1, 8, func(c *CPU, _ uint16) {
					c.loadRegisterToMemory(*c.registerIndex(s), c.HL.Uint16())
				})
			case s == 6:
				DefineInstruction(opcode, name, 1, 8, func(c *CPU, _ uint16) {
					c.loadMemoryToRegister(c.registerIndex(d), c.HL.Uint16())
				})
			default:
				DefineInstruction(opcode, name, 1, 4, func(c *CPU, _ uint16) {
					c.loadRegisterToRegister(c.registerIndex(d), c.registerIndex(s))
				})
			}
		}
	}

	// LD r, d8 / LD (HL), d8
	for i := uint8(0); i < 8; i++ {
		i := i
		opcode := 0x06 + i<<3
		if i == 6 {
			DefineInstruction(opcode, "LD (HL), d8", 2, 12, func(c *CPU, v uint16) {
				c.writeByte(c.HL.Uint16(), uint8(v))
			})
			continue
		}
		DefineInstruction(opcode, fmt.Sprintf("LD %s, d8", registerNames[i]), 2, 8, func(c *CPU, v uint16) {
			*c.registerIndex(i) = uint8(v)
		})
	}

	// indirect accumulator loads
	DefineInstruction(0x02, "LD (BC), A", 1, 8, func(c *CPU, _ uint16) {
		c.loadRegisterToMemory(c.A, c.BC.Uint16())
	})
	DefineInstruction(0x12, "LD (DE), A", 1, 8, func(c *CPU, _ uint16) {
		c.loadRegisterToMemory(c.A, c.DE.Uint16())
	})
	DefineInstruction(0x0A, "LD A, (BC)", 1, 8, func(c *CPU, _ uint16) {
		c.loadMemoryToRegister(&c.A, c.BC.Uint16())
	})
	DefineInstruction(0x1A, "LD A, (DE)", 1, 8, func(c *CPU, _ uint16) {
		c.loadMemoryToRegister(&c.A, c.DE.Uint16())
	})
	DefineInstruction(0x22, "LD (HL+), A", 1, 8, func(c *CPU, _ uint16) {
		c.loadRegisterToMemory(c.A, c.HL.Uint16())
		c.HL.SetUint16(c.HL.Uint16() + 1)
	})
	DefineInstruction(0x2A, "LD A, (HL+)", 1, 8, func(c *CPU, _ uint16) {
		c.loadMemoryToRegister(&c.A, c.HL.Uint16())
		c.HL.SetUint16(c.HL.Uint16() + 1)
	})
	DefineInstruction(0x32, "LD (HL-), A", 1, 8, func(c *CPU, _ uint16) {
		c.loadRegisterToMemory(c.A, c.HL.Uint16())
		c.HL.SetUint16(c.HL.Uint16() - 1)
	})
	DefineInstruction(0x3A, "LD A, (HL-)", 1, 8, func(c *CPU, _ uint16) {
		c.loadMemoryToRegister(&c.A, c.HL.Uint16())
		c.HL.SetUint16(c.HL.Uint16() - 1)
	})
	DefineInstruction(0xEA, "LD (a16), A", 3, 16, func(c *CPU, v uint16) {
		c.loadRegisterToMemory(c.A, v)
	})
	DefineInstruction(0xFA, "LD A, (a16)", 3, 16, func(c *CPU, v uint16) {
		c.loadMemoryToRegister(&c.A, v)
	})

	// 0xFF00 page
	DefineInstruction(0xE0, "LDH (a8), A", 2, 12, func(c *CPU, v uint16) {
		c.loadRegisterToHardware(uint8(v))
	})
	DefineInstruction(0xF0, "LDH A, (a8)", 2, 12, func(c *CPU, v uint16) {
		c.loadHardwareToRegister(uint8(v))
	})
	DefineInstruction(0xE2, "LD (C), A", 1, 8, func(c *CPU, _ uint16) {
		c.loadRegisterToHardware(c.C)
	})
	DefineInstruction(0xF2, "LD A, (C)", 1, 8, func(c *CPU, _ uint16) {
		c.loadHardwareToRegister(c.C)
	})
}

// definePairInstructions binds the 16-bit loads, pair
// increment/decrement, ADD HL and the stack operations.
func definePairInstructions() {
	DefineInstruction(0x01, "LD BC, d16", 3, 12, func(c *CPU, v uint16) { c.BC.SetUint16(v) })
	DefineInstruction(0x11, "LD DE, d16", 3, 12, func(c *CPU, v uint16) { c.DE.SetUint16(v) })
	DefineInstruction(0x21, "LD HL, d16", 3, 12, func(c *CPU, v uint16) { c.HL.SetUint16(v) })
	DefineInstruction(0x31, "LD SP, d16", 3, 12, func(c *CPU, v uint16) { c.SP = v })
	DefineInstruction(0x08, "LD (a16), SP", 3, 20, func(c *CPU, v uint16) {
		high, low := utils.Uint16ToBytes(c.SP)
		c.writeByte(v, low)
		c.writeByte(v+1, high)
	})

	DefineInstruction(0x03, "INC BC", 1, 8, func(c *CPU, _ uint16) { c.incrementNN(c.BC) })
	DefineInstruction(0x13, "INC DE", 1, 8, func(c *CPU, _ uint16) { c.incrementNN(c.DE) })
	DefineInstruction(0x23, "INC HL", 1, 8, func(c *CPU, _ uint16) { c.incrementNN(c.HL) })
	DefineInstruction(0x33, "INC SP", 1, 8, func(c *CPU, _ uint16) { c.SP++ })
	DefineInstruction(0x0B, "DEC BC", 1, 8, func(c *CPU, _ uint16) { c.decrementNN(c.BC) })
	DefineInstruction(0x1B, "DEC DE", 1, 8, func(c *CPU, _ uint16) { c.decrementNN(c.DE) })
	DefineInstruction(0x2B, "DEC HL", 1, 8, func(c *CPU, _ uint16) { c.decrementNN(c.HL) })
	DefineInstruction(0x3B, "DEC SP", 1, 8, func(c *CPU, _ uint16) { c.SP-- })

	DefineInstruction(0x09, "ADD HL, BC", 1, 8, func(c *CPU, _ uint16) { c.addHL(c.BC.Uint16()) })
	DefineInstruction(0x19, "ADD HL, DE", 1, 8, func(c *CPU, _ uint16) { c.addHL(c.DE.Uint16()) })
	DefineInstruction(0x29, "ADD HL, HL", 1, 8, func(c *CPU, _ uint16) { c.addHL(c.HL.Uint16()) })
	DefineInstruction(0x39, "ADD HL, SP", 1, 8, func(c *CPU, _ uint16) { c.addHL(c.SP) })

	DefineInstruction(0xE8, "ADD SP, e8", 2, 16, func(c *CPU, v uint16) {
		c.SP = c.addSPSigned(uint8(v))
	})
	DefineInstruction(0xF8, "LD HL, SP+e8", 2, 12, func(c *CPU, v uint16) {
		c.HL.SetUint16(c.addSPSigned(uint8(v)))
	})
	DefineInstruction(0xF9, "LD SP, HL", 1, 8, func(c *CPU, _ uint16) { c.SP = c.HL.Uint16() })

	DefineInstruction(0xC5, "PUSH BC", 1, 16, func(c *CPU, _ uint16) { c.pushStack(c.BC.Uint16()) })
	DefineInstruction(0xD5, "PUSH DE", 1, 16, func(c *CPU, _ uint16) { c.pushStack(c.DE.Uint16()) })
	DefineInstruction(0xE5, "PUSH HL", 1, 16, func(c *CPU, _ uint16) { c.pushStack(c.HL.Uint16()) })
	DefineInstruction(0xF5, "PUSH AF", 1, 16, func(c *CPU, _ uint16) { c.pushStack(c.AF.Uint16()) })
	DefineInstruction(0xC1, "POP BC", 1, 12, func(c *CPU, _ uint16) { c.BC.SetUint16(c.popStack()) })
	DefineInstruction(0xD1, "POP DE", 1, 12, func(c *CPU, _ uint16) { c.DE.SetUint16(c.popStack()) })
	DefineInstruction(0xE1, "POP HL", 1, 12, func(c *CPU, _ uint16) { c.HL.SetUint16(c.popStack()) })
	DefineInstruction(0xF1, "POP AF", 1, 12, func(c *CPU, _ uint16) {
		// the low nibble of F never holds data
		c.AF.SetUint16(c.popStack() & 0xFFF0)
	})
}

// defineALUInstructions binds the 8-bit arithmetic grid (0x80-0xBF),
// the immediate forms and the INC/DEC family.
func defineALUInstructions() {
	aluOps := []struct {
		name string
		fn   func(*CPU, uint8)
	}{
		{"ADD A,", func(c *CPU, n uint8) { c.add(n, false) }},
		{"ADC A,", func(c *CPU, n uint8) { c.add(n, true) }},
		{"SUB", func(c *CPU, n uint8) { c.sub(n, false) }},
		{"SBC A,", func(c *CPU, n uint8) { c.sub(n, true) }},
		{"AND", func(c *CPU, n uint8) { c.and(n) }},
		{"XOR", func(c *CPU, n uint8) { c.xor(n) }},
		{"OR", func(c *CPU, n uint8) { c.or(n) }},
		{"CP", func(c *CPU, n uint8) { c.compare(n) }},
	}

	for i, op := range aluOps {
		i, op := uint8(i), op
		for s := uint8(0); s < 8; s++ {
			s := s
			opcode := 0x80 + i<<3 + s
			name := fmt.Sprintf("%s %s", op.name, registerNames[s])
			if s == 6 {
				DefineInstruction(opcode, name, 1, 8, func(c *CPU, _ uint16) {
					op.fn(c, c.readByte(c.HL.Uint16()))
				})
				continue
			}
			DefineInstruction(opcode, name, 1, 4, func(c *CPU, _ uint16) {
				op.fn(c, *c.registerIndex(s))
			})
		}

		// immediate form (0xC6, 0xCE, ... 0xFE)
		DefineInstruction(0xC6+i<<3, fmt.Sprintf("%s d8", op.name), 2, 8, func(c *CPU, v uint16) {
			op.fn(c, uint8(v))
		})
	}

	// INC r / DEC r
	for i := uint8(0); i < 8; i++ {
		i := i
		if i == 6 {
			DefineInstruction(0x34, "INC (HL)", 1, 12, func(c *CPU, _ uint16) {
				c.writeByte(c.HL.Uint16(), c.increment(c.readByte(c.HL.Uint16())))
			})
			DefineInstruction(0x35, "DEC (HL)", 1, 12, func(c *CPU, _ uint16) {
				c.writeByte(c.HL.Uint16(), c.decrement(c.readByte(c.HL.Uint16())))
			})
			continue
		}
		DefineInstruction(0x04+i<<3, fmt.Sprintf("INC %s", registerNames[i]), 1, 4, func(c *CPU, _ uint16) {
			reg := c.registerIndex(i)
			*reg = c.increment(*reg)
		})
		DefineInstruction(0x05+i<<3, fmt.Sprintf("DEC %s", registerNames[i]), 1, 4, func(c *CPU, _ uint16) {
			reg := c.registerIndex(i)
			*reg = c.decrement(*reg)
		})
	}
}

// defineControlFlowInstructions binds the jumps, calls, returns and
// reset vectors. Conditional forms carry the not-taken cost in the
// descriptor and charge the taken branch inside the routine.
func defineControlFlowInstructions() {
	DefineInstruction(0x18, "JR e8", 2, 12, func(c *CPU, v uint16) { c.jumpRelative(uint8(v)) })
	DefineInstruction(0x20, "JR NZ, e8", 2, 8, func(c *CPU, v uint16) {
		c.jumpRelativeConditional(!c.isFlagSet(FlagZero), uint8(v))
	})
	DefineInstruction(0x28, "JR Z, e8", 2, 8, func(c *CPU, v uint16) {
		c.jumpRelativeConditional(c.isFlagSet(FlagZero), uint8(v))
	})
	DefineInstruction(0x30, "JR NC, e8", 2, 8, func(c *CPU, v uint16) {
		c.jumpRelativeConditional(!c.isFlagSet(FlagCarry), uint8(v))
	})
	DefineInstruction(0x38, "JR C, e8", 2, 8, func(c *CPU, v uint16) {
		c.jumpRelativeConditional(c.isFlagSet(FlagCarry), uint8(v))
	})

	DefineInstruction(0xC3, "JP a16", 3, 16, func(c *CPU, v uint16) { c.jumpAbsolute(v) })
	DefineInstruction(0xE9, "JP HL", 1, 4, func(c *CPU, _ uint16) { c.jumpAbsolute(c.HL.Uint16()) })
	DefineInstruction(0xC2, "JP NZ, a16", 3, 12, func(c *CPU, v uint16) {
		c.jumpAbsoluteConditional(!c.isFlagSet(FlagZero), v)
	})
	DefineInstruction(0xCA, "JP Z, a16", 3, 12, func(c *CPU, v uint16) {
		c.jumpAbsoluteConditional(c.isFlagSet(FlagZero), v)
	})
	DefineInstruction(0xD2, "JP NC, a16", 3, 12, func(c *CPU, v uint16) {
		c.jumpAbsoluteConditional(!c.isFlagSet(FlagCarry), v)
	})
	DefineInstruction(0xDA, "JP C, a16", 3, 12, func(c *CPU, v uint16) {
		c.jumpAbsoluteConditional(c.isFlagSet(FlagCarry), v)
	})

	DefineInstruction(0xCD, "CALL a16", 3, 24, func(c *CPU, v uint16) { c.call(v) })
	DefineInstruction(0xC4, "CALL NZ, a16", 3, 12, func(c *CPU, v uint16) {
		c.callConditional(!c.isFlagSet(FlagZero), v)
	})
	DefineInstruction(0xCC, "CALL Z, a16", 3, 12, func(c *CPU, v uint16) {
		c.callConditional(c.isFlagSet(FlagZero), v)
	})
	DefineInstruction(0xD4, "CALL NC, a16", 3, 12, func(c *CPU, v uint16) {
		c.callConditional(!c.isFlagSet(FlagCarry), v)
	})
	DefineInstruction(0xDC, "CALL C, a16", 3, 12, func(c *CPU, v uint16) {
		c.callConditional(c.isFlagSet(FlagCarry), v)
	})

	DefineInstruction(0xC9, "RET", 1, 16, func(c *CPU, _ uint16) { c.ret() })
	DefineInstruction(0xD9, "RETI", 1, 16, func(c *CPU, _ uint16) {
		c.ret()
		c.IME = true
	})
	DefineInstruction(0xC0, "RET NZ", 1, 8, func(c *CPU, _ uint16) {
		c.retConditional(!c.isFlagSet(FlagZero))
	})
	DefineInstruction(0xC8, "RET Z", 1, 8, func(c *CPU, _ uint16) {
		c.retConditional(c.isFlagSet(FlagZero))
	})
	DefineInstruction(0xD0, "RET NC", 1, 8, func(c *CPU, _ uint16) {
		c.retConditional(!c.isFlagSet(FlagCarry))
	})
	DefineInstruction(0xD8, "RET C", 1, 8, func(c *CPU, _ uint16) {
		c.retConditional(c.isFlagSet(FlagCarry))
	})

	for i := uint8(0); i < 8; i++ {
		vector := i * 8
		DefineInstruction(0xC7+i<<3, fmt.Sprintf("RST %02XH", vector), 1, 16, func(c *CPU, _ uint16) {
			c.rst(vector)
		})
	}
}
