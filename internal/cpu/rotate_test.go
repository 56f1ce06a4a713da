package cpu

import "testing"

func TestInstruction_Rotate(t *testing.T) {
	// 0x07 - RLCA
	testInstruction(t, "RLCA", 0x07, func(t *testing.T, instr Instruction) {
		cpu.A = 0b1100_1100
		cpu.setFlag(FlagZero)

		instr.fn(cpu, 0)

		if cpu.A != 0b1001_1001 {
			t.Errorf("expected A to be 0b10011001, got 0b%08b", cpu.A)
		}
		if !cpu.isFlagSet(FlagCarry) {
			t.Errorf("expected C to carry bit 7, got F=0x%02X", cpu.F)
		}
		if cpu.isFlagSet(FlagZero) {
			t.Errorf("expected Z to be reset, got F=0x%02X", cpu.F)
		}
	})
	// 0x0F - RRCA
	testInstruction(t, "RRCA", 0x0F, func(t *testing.T, instr Instruction) {
		cpu.A = 0b1100_1100

		instr.fn(cpu, 0)

		if cpu.A != 0b0110_0110 {
			t.Errorf("expected A to be 0b01100110, got 0b%08b", cpu.A)
		}
		if cpu.isFlagSet(FlagCarry) {
			t.Errorf("expected C to carry bit 0, got F=0x%02X", cpu.F)
		}
	})
	// 0x17 - RLA
	testInstruction(t, "RLA", 0x17, func(t *testing.T, instr Instruction) {
		cpu.A = 0b0101_0101
		cpu.setFlag(FlagCarry)

		instr.fn(cpu, 0)

		if cpu.A != 0b1010_1011 {
			t.Errorf("expected A to be 0b10101011, got 0b%08b", cpu.A)
		}
		if cpu.isFlagSet(FlagCarry) {
			t.Errorf("expected C to carry bit 7, got F=0x%02X", cpu.F)
		}
	})
	// 0x1F - RRA
	testInstruction(t, "RRA", 0x1F, func(t *testing.T, instr Instruction) {
		cpu.A = 0b1010_1010
		cpu.setFlag(FlagCarry)

		instr.fn(cpu, 0)

		if cpu.A != 0b1101_0101 {
			t.Errorf("expected A to be 0b11010101, got 0b%08b", cpu.A)
		}
		if cpu.isFlagSet(FlagCarry) {
			t.Errorf("expected C to carry bit 0, got F=0x%02X", cpu.F)
		}
	})
	// RLCA of zero still resets Z
	testInstruction(t, "RLCA", 0x07, func(t *testing.T, instr Instruction) {
		cpu.A = 0x00
		cpu.setFlag(FlagZero)

		instr.fn(cpu, 0)

		if cpu.isFlagSet(FlagZero) {
			t.Errorf("expected Z to be reset even for a zero result, got F=0x%02X", cpu.F)
		}
	})
}

func TestInstructionCB_RotateShift(t *testing.T) {
	// 0x00 - RLC B
	testInstructionCB(t, "RLC B", 0x00, func(t *testing.T, instr Instruction) {
		cpu.B = 0b1000_0000

		instr.fn(cpu, 0)

		if cpu.B != 0b0000_0001 {
			t.Errorf("expected B to be 0b00000001, got 0b%08b", cpu.B)
		}
		if !cpu.isFlagSet(FlagCarry) {
			t.Errorf("expected C to be set, got F=0x%02X", cpu.F)
		}
	})
	// 0x08 - RRC B with a zero result
	testInstructionCB(t, "RRC B", 0x08, func(t *testing.T, instr Instruction) {
		cpu.B = 0x00

		instr.fn(cpu, 0)

		if !cpu.isFlagSet(FlagZero) {
			t.Errorf("expected Z to be set, got F=0x%02X", cpu.F)
		}
	})
	// 0x16 - RL (HL)
	testInstructionCB(t, "RL (HL)", 0x16, func(t *testing.T, instr Instruction) {
		cpu.HL.SetUint16(0xC234)
		cpu.writeByte(cpu.HL.Uint16(), 0b0100_0000)
		cpu.setFlag(FlagCarry)

		instr.fn(cpu, 0)

		if got := cpu.readByte(cpu.HL.Uint16()); got != 0b1000_0001 {
			t.Errorf("expected memory to be 0b10000001, got 0b%08b", got)
		}
		if cpu.isFlagSet(FlagCarry) {
			t.Errorf("expected C to be clear, got F=0x%02X", cpu.F)
		}
	})
	// 0x20 - SLA B
	testInstructionCB(t, "SLA B", 0x20, func(t *testing.T, instr Instruction) {
		cpu.B = 0b1100_0000

		instr.fn(cpu, 0)

		if cpu.B != 0b1000_0000 {
			t.Errorf("expected B to be 0b10000000, got 0b%08b", cpu.B)
		}
		if !cpu.isFlagSet(FlagCarry) {
			t.Errorf("expected C to be set, got F=0x%02X", cpu.F)
		}
	})
	// 0x28 - SRA B keeps the sign bit
	testInstructionCB(t, "SRA B", 0x28, func(t *testing.T, instr Instruction) {
		cpu.B = 0b1000_0001

		instr.fn(cpu, 0)

		if cpu.B != 0b1100_0000 {
			t.Errorf("expected B to be 0b11000000, got 0b%08b", cpu.B)
		}
		if !cpu.isFlagSet(FlagCarry) {
			t.Errorf("expected C to be set, got F=0x%02X", cpu.F)
		}
	})
	// 0x38 - SRL B clears the sign bit
	testInstructionCB(t, "SRL B", 0x38, func(t *testing.T, instr Instruction) {
		cpu.B = 0b1000_0001

		instr.fn(cpu, 0)

		if cpu.B != 0b0100_0000 {
			t.Errorf("expected B to be 0b01000000, got 0b%08b", cpu.B)
		}
		if !cpu.isFlagSet(FlagCarry) {
			t.Errorf("expected C to be set, got F=0x%02X", cpu.F)
		}
	})
	// 0x37 - SWAP A
	testInstructionCB(t, "SWAP A", 0x37, func(t *testing.T, instr Instruction) {
		cpu.A = 0xF1

		instr.fn(cpu, 0)

		if cpu.A != 0x1F {
			t.Errorf("expected A to be 0x1F, got 0x%02X", cpu.A)
		}
		if cpu.isFlagSet(FlagCarry) || cpu.isFlagSet(FlagHalfCarry) || cpu.isFlagSet(FlagSubtract) {
			t.Errorf("expected N, H and C to be clear, got F=0x%02X", cpu.F)
		}
	})
}
