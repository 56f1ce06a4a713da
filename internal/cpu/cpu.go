// Package cpu implements the SM83 core: the register file, the flag
// engine and the decode-dispatch-execute loop over the instruction
// tables. One Step executes exactly one instruction; the returned cycle
// count paces the rest of the emulated system.
package cpu

import (
	"errors"
	"fmt"

	"github.com/duskgb/duskgb/internal/interrupts"
	"github.com/duskgb/duskgb/internal/mmu"
	"github.com/duskgb/duskgb/internal/types"
	"github.com/duskgb/duskgb/pkg/utils"
)

// ErrInvalidOpcode is returned by Step when a fetched byte has no
// executable routine bound to it. The table invariant makes this
// unreachable for well-formed tables; reaching it is an internal
// consistency fault and stepping stays halted.
var ErrInvalidOpcode = errors.New("cpu: invalid opcode")

// CPU represents the SM83 core. It owns the register file and executes
// instructions against the memory bus.
type CPU struct {
	// PC is the program counter, it points to the next instruction to
	// be executed.
	PC uint16
	// SP is the stack pointer, it points to the top of the stack.
	SP uint16
	// Registers contains the 8-bit registers and the 16-bit pairs that
	// alias them.
	types.Registers

	// IME is the master interrupt enable. The core only stores it;
	// vectoring is the host's interrupt controller's job.
	IME bool

	bus *mmu.MMU
	irq *interrupts.Service

	halted bool
	fault  error

	currentTick uint8
	totalCycles uint64
}

// NewCPU creates a new CPU instance against the given bus. Registers
// are zero-initialized and live for the processor's lifetime.
func NewCPU(bus *mmu.MMU, irq *interrupts.Service) *CPU {
	c := &CPU{
		bus: bus,
		irq: irq,
	}
	c.AF = &types.RegisterPair{High: &c.A, Low: &c.F}
	c.BC = &types.RegisterPair{High: &c.B, Low: &c.C}
	c.DE = &types.RegisterPair{High: &c.D, Low: &c.E}
	c.HL = &types.RegisterPair{High: &c.H, Low: &c.L}
	return c
}

// Bus exposes the underlying memory bus for the host and tests.
func (c *CPU) Bus() *mmu.MMU { return c.bus }

// Cycles returns the running total of cycles consumed since construction.
func (c *CPU) Cycles() uint64 { return c.totalCycles }

// Halted reports whether the core is suspended waiting for an
// interrupt line.
func (c *CPU) Halted() bool { return c.halted }

// registerIndex returns a pointer to the register with the given SM83
// encoding (B=0, C=1, D=2, E=3, H=4, L=5, A=7). Index 6 is the (HL)
// memory operand and is never a register.
func (c *CPU) registerIndex(index uint8) *types.Register {
	switch index {
	case 0:
		return &c.B
	case 1:
		return &c.C
	case 2:
		return &c.D
	case 3:
		return &c.E
	case 4:
		return &c.H
	case 5:
		return &c.L
	case 7:
		return &c.A
	}
	panic(fmt.Sprintf("invalid register index: %d", index))
}

// readByte reads a byte from the bus.
func (c *CPU) readByte(address uint16) uint8 {
	return c.bus.Read(address)
}

// writeByte writes a byte to the bus.
func (c *CPU) writeByte(address uint16, value uint8) {
	c.bus.Write(address, value)
}

// tick charges cycles to the current step and the running total.
func (c *CPU) tick(cycles uint8) {
	c.currentTick += cycles
	c.totalCycles += uint64(cycles)
}

// Step executes one instruction and returns the number of cycles it
// consumed. While halted, Step charges idle cycles until an interrupt
// line is both requested and enabled. A fault latches: once Step has
// returned an error it returns the same error without fetching again.
func (c *CPU) Step() (uint8, error) {
	if c.fault != nil {
		return 0, c.fault
	}
	c.currentTick = 0

	if c.halted {
		if !c.irq.Pending() {
			c.tick(4)
			return c.currentTick, nil
		}
		c.halted = false
	}

	opcode := c.readByte(c.PC)
	instr := InstructionSet[opcode]

	var operand uint16
	switch instr.length {
	case 2:
		operand = uint16(c.readByte(c.PC + 1))
	case 3:
		operand = utils.BytesToUint16(c.readByte(c.PC+2), c.readByte(c.PC+1))
	}

	c.PC += uint16(instr.length)
	c.tick(instr.cycles)
	instr.fn(c, operand)

	if c.fault != nil {
		return 0, c.fault
	}
	return c.currentTick, nil
}
