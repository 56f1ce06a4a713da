package cpu

import "fmt"

// Instruction binds an opcode to its execution routine, its encoded
// length in bytes and its base cycle cost in T-cycles. Conditional
// control flow charges its extra cycles inside the routine.
type Instruction struct {
	name   string
	length uint8
	cycles uint8
	fn     func(*CPU, uint16)
}

// Name returns the mnemonic of the instruction.
func (i Instruction) Name() string { return i.name }

// Length returns the encoded length of the instruction in bytes.
func (i Instruction) Length() uint8 { return i.length }

// Cycles returns the base cycle cost of the instruction in T-cycles.
func (i Instruction) Cycles() uint8 { return i.cycles }

// InstructionSet holds the 256 unprefixed instructions.
var InstructionSet [256]Instruction

// InstructionSetCB holds the 256 0xCB-prefixed instructions. Their
// length and prefix cost are accounted for by the 0xCB descriptor;
// cycles here are the full cost of the extended instruction.
var InstructionSetCB [256]Instruction

// DefineInstruction binds an opcode in the InstructionSet. Binding the
// same opcode twice is a table construction bug and panics at init.
func DefineInstruction(opcode uint8, name string, length, cycles uint8, fn func(*CPU, uint16)) {
	if InstructionSet[opcode].fn != nil {
		panic(fmt.Sprintf("opcode 0x%02X bound twice (%s, %s)", opcode, InstructionSet[opcode].name, name))
	}
	InstructionSet[opcode] = Instruction{
		name:   name,
		length: length,
		cycles: cycles,
		fn:     fn,
	}
}

// DefineInstructionCB binds an opcode in the InstructionSetCB.
func DefineInstructionCB(opcode uint8, name string, cycles uint8, fn func(*CPU, uint16)) {
	if InstructionSetCB[opcode].fn != nil {
		panic(fmt.Sprintf("cb opcode 0x%02X bound twice (%s, %s)", opcode, InstructionSetCB[opcode].name, name))
	}
	InstructionSetCB[opcode] = Instruction{
		name:   name,
		length: 2,
		cycles: cycles,
		fn:     fn,
	}
}

// registerNames indexes the SM83 register encoding used by the
// generated instruction families. Index 6 is the (HL) memory operand.
var registerNames = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}
