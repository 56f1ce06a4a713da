package cpu

import "testing"

func TestJumpInstructions(t *testing.T) {
	// 0xC3 - JP a16
	testInstruction(t, "JP a16", 0xC3, func(t *testing.T, instr Instruction) {
		instr.fn(cpu, 0xC234)

		if cpu.PC != 0xC234 {
			t.Errorf("expected PC to be 0xC234, got 0x%04X", cpu.PC)
		}
	})
	// 0xE9 - JP HL
	testInstruction(t, "JP HL", 0xE9, func(t *testing.T, instr Instruction) {
		cpu.HL.SetUint16(0xC234)

		instr.fn(cpu, 0)

		if cpu.PC != 0xC234 {
			t.Errorf("expected PC to be 0xC234, got 0x%04X", cpu.PC)
		}
	})
	// 0xC2 - JP NZ, a16
	testInstruction(t, "JP NZ, a16", 0xC2, func(t *testing.T, instr Instruction) {
		cpu.PC = 0x0150
		cpu.setFlag(FlagZero)

		instr.fn(cpu, 0xC234)

		if cpu.PC != 0x0150 {
			t.Errorf("expected PC to be unchanged, got 0x%04X", cpu.PC)
		}

		cpu.clearFlag(FlagZero)
		instr.fn(cpu, 0xC234)

		if cpu.PC != 0xC234 {
			t.Errorf("expected PC to be 0xC234, got 0x%04X", cpu.PC)
		}
	})
	// 0x18 - JR e8, both directions
	testInstruction(t, "JR e8", 0x18, func(t *testing.T, instr Instruction) {
		cpu.PC = 0x0150

		instr.fn(cpu, 0x05)

		if cpu.PC != 0x0155 {
			t.Errorf("expected PC to be 0x0155, got 0x%04X", cpu.PC)
		}

		instr.fn(cpu, 0xFB) // -5

		if cpu.PC != 0x0150 {
			t.Errorf("expected PC to be 0x0150, got 0x%04X", cpu.PC)
		}
	})
	// 0x20 - JR NZ, e8
	testInstruction(t, "JR NZ, e8", 0x20, func(t *testing.T, instr Instruction) {
		cpu.PC = 0x0150
		cpu.setFlag(FlagZero)

		instr.fn(cpu, 0x05)

		if cpu.PC != 0x0150 {
			t.Errorf("expected PC to be unchanged, got 0x%04X", cpu.PC)
		}
	})
	// 0xCD - CALL a16
	testInstruction(t, "CALL a16", 0xCD, func(t *testing.T, instr Instruction) {
		cpu.PC = 0x0153
		cpu.SP = 0xFFFE

		instr.fn(cpu, 0xC234)

		if cpu.PC != 0xC234 {
			t.Errorf("expected PC to be 0xC234, got 0x%04X", cpu.PC)
		}
		if cpu.SP != 0xFFFC {
			t.Errorf("expected SP to be 0xFFFC, got 0x%04X", cpu.SP)
		}

		// RET returns to the pushed address
		InstructionSet[0xC9].fn(cpu, 0)

		if cpu.PC != 0x0153 {
			t.Errorf("expected PC to be 0x0153, got 0x%04X", cpu.PC)
		}
		if cpu.SP != 0xFFFE {
			t.Errorf("expected SP to be restored, got 0x%04X", cpu.SP)
		}
	})
	// 0xC4 - CALL NZ, a16 not taken
	testInstruction(t, "CALL NZ, a16", 0xC4, func(t *testing.T, instr Instruction) {
		cpu.PC = 0x0153
		cpu.SP = 0xFFFE
		cpu.setFlag(FlagZero)

		instr.fn(cpu, 0xC234)

		if cpu.PC != 0x0153 || cpu.SP != 0xFFFE {
			t.Errorf("expected PC and SP to be unchanged, got PC=0x%04X SP=0x%04X", cpu.PC, cpu.SP)
		}
	})
	// 0xC8 - RET Z
	testInstruction(t, "RET Z", 0xC8, func(t *testing.T, instr Instruction) {
		cpu.SP = 0xFFFC
		cpu.writeByte(0xFFFC, 0x53)
		cpu.writeByte(0xFFFD, 0x01)
		cpu.setFlag(FlagZero)

		instr.fn(cpu, 0)

		if cpu.PC != 0x0153 {
			t.Errorf("expected PC to be 0x0153, got 0x%04X", cpu.PC)
		}
	})
	// 0xD9 - RETI enables IME
	testInstruction(t, "RETI", 0xD9, func(t *testing.T, instr Instruction) {
		cpu.SP = 0xFFFC
		cpu.writeByte(0xFFFC, 0x53)
		cpu.writeByte(0xFFFD, 0x01)

		instr.fn(cpu, 0)

		if cpu.PC != 0x0153 {
			t.Errorf("expected PC to be 0x0153, got 0x%04X", cpu.PC)
		}
		if !cpu.IME {
			t.Errorf("expected IME to be enabled")
		}
	})
	// 0xEF - RST 28H
	testInstruction(t, "RST 28H", 0xEF, func(t *testing.T, instr Instruction) {
		cpu.PC = 0x0153
		cpu.SP = 0xFFFE

		instr.fn(cpu, 0)

		if cpu.PC != 0x0028 {
			t.Errorf("expected PC to be 0x0028, got 0x%04X", cpu.PC)
		}
		if cpu.SP != 0xFFFC {
			t.Errorf("expected SP to be 0xFFFC, got 0x%04X", cpu.SP)
		}
	})
}
