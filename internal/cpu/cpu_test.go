package cpu

import (
	"errors"
	"testing"

	"github.com/duskgb/duskgb/internal/interrupts"
)

// loadProgram writes the bytes into WRAM and points PC at them.
func loadProgram(program ...uint8) {
	resetCPU()
	for i, b := range program {
		cpu.writeByte(0xC000+uint16(i), b)
	}
	cpu.PC = 0xC000
}

func TestStep_OperandFetch(t *testing.T) {
	// LD BC, d16 packs its immediate little-endian
	loadProgram(0x01, 0xCD, 0xAB)

	cycles, err := cpu.Step()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cpu.BC.Uint16() != 0xABCD {
		t.Errorf("expected BC to be 0xABCD, got 0x%04X", cpu.BC.Uint16())
	}
	if cpu.PC != 0xC003 {
		t.Errorf("expected PC to advance by 3, got 0x%04X", cpu.PC)
	}
	if cycles != 12 {
		t.Errorf("expected 12 cycles, got %d", cycles)
	}

	// LD B, d8 packs a single byte
	loadProgram(0x06, 0x42)

	if _, err := cpu.Step(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cpu.B != 0x42 {
		t.Errorf("expected B to be 0x42, got 0x%02X", cpu.B)
	}
	if cpu.PC != 0xC002 {
		t.Errorf("expected PC to advance by 2, got 0x%04X", cpu.PC)
	}
}

func TestStep_ConditionalTiming(t *testing.T) {
	// JR NZ not taken charges the base cost
	loadProgram(0x20, 0x05)
	cpu.setFlag(FlagZero)

	cycles, _ := cpu.Step()
	if cycles != 8 {
		t.Errorf("expected 8 cycles for the not-taken branch, got %d", cycles)
	}
	if cpu.PC != 0xC002 {
		t.Errorf("expected PC to fall through to 0xC002, got 0x%04X", cpu.PC)
	}

	// taken, it charges the internal delay on top
	loadProgram(0x20, 0x05)

	cycles, _ = cpu.Step()
	if cycles != 12 {
		t.Errorf("expected 12 cycles for the taken branch, got %d", cycles)
	}
	if cpu.PC != 0xC007 {
		t.Errorf("expected PC to be 0xC007, got 0x%04X", cpu.PC)
	}

	// CALL taken charges the full 24
	loadProgram(0xC4, 0x34, 0xC2)
	cpu.SP = 0xFFFE

	cycles, _ = cpu.Step()
	if cycles != 24 {
		t.Errorf("expected 24 cycles for the taken call, got %d", cycles)
	}

	// RET C not taken
	loadProgram(0xD8)

	cycles, _ = cpu.Step()
	if cycles != 8 {
		t.Errorf("expected 8 cycles for the not-taken return, got %d", cycles)
	}
}

func TestStep_PrefixCB(t *testing.T) {
	// CB 0x37 - SWAP A
	loadProgram(0xCB, 0x37)
	cpu.A = 0xF1

	cycles, err := cpu.Step()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cpu.A != 0x1F {
		t.Errorf("expected A to be 0x1F, got 0x%02X", cpu.A)
	}
	if cpu.PC != 0xC002 {
		t.Errorf("expected PC to advance by 2, got 0x%04X", cpu.PC)
	}
	if cycles != 8 {
		t.Errorf("expected 8 cycles, got %d", cycles)
	}

	// CB 0x46 - BIT 0, (HL) costs 12
	loadProgram(0xCB, 0x46)
	cpu.HL.SetUint16(0xC234)

	cycles, _ = cpu.Step()
	if cycles != 12 {
		t.Errorf("expected 12 cycles, got %d", cycles)
	}
}

func TestStep_Halt(t *testing.T) {
	loadProgram(0x76, 0x00)

	if _, err := cpu.Step(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cpu.Halted() {
		t.Fatalf("expected CPU to be halted")
	}

	// halted with nothing pending, the core idles
	cycles, err := cpu.Step()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cycles != 4 {
		t.Errorf("expected 4 idle cycles, got %d", cycles)
	}
	if cpu.PC != 0xC001 {
		t.Errorf("expected PC to hold at 0xC001, got 0x%04X", cpu.PC)
	}

	// a requested and enabled line resumes execution
	cpu.irq.Enable = interrupts.VBlankFlag
	cpu.irq.Request(interrupts.VBlankFlag)

	if _, err := cpu.Step(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cpu.Halted() {
		t.Errorf("expected CPU to resume")
	}
	if cpu.PC != 0xC002 {
		t.Errorf("expected PC to advance past the NOP, got 0x%04X", cpu.PC)
	}
}

func TestStep_InvalidOpcodeLatches(t *testing.T) {
	loadProgram(0xD3)

	_, err := cpu.Step()
	if !errors.Is(err, ErrInvalidOpcode) {
		t.Fatalf("expected ErrInvalidOpcode, got %v", err)
	}

	// the fault latches, later steps fail without fetching
	pc := cpu.PC
	_, err = cpu.Step()
	if !errors.Is(err, ErrInvalidOpcode) {
		t.Fatalf("expected the fault to latch, got %v", err)
	}
	if cpu.PC != pc {
		t.Errorf("expected PC to hold at 0x%04X, got 0x%04X", pc, cpu.PC)
	}
}

func TestStep_CycleAccounting(t *testing.T) {
	loadProgram(0x00, 0x00, 0x00)

	for i := 0; i < 3; i++ {
		if _, err := cpu.Step(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if cpu.Cycles() != 12 {
		t.Errorf("expected 12 total cycles, got %d", cpu.Cycles())
	}
}

func TestNewCPU_PairAliasing(t *testing.T) {
	resetCPU()

	cpu.A = 0x12
	cpu.F = 0x30
	if cpu.AF.Uint16() != 0x1230 {
		t.Errorf("expected AF to be 0x1230, got 0x%04X", cpu.AF.Uint16())
	}

	cpu.HL.SetUint16(0xABCD)
	if cpu.H != 0xAB || cpu.L != 0xCD {
		t.Errorf("expected H=0xAB L=0xCD, got H=0x%02X L=0x%02X", cpu.H, cpu.L)
	}
}
