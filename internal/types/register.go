package types

import "github.com/duskgb/duskgb/pkg/utils"

// Register represents one of the eight 8-bit CPU registers: A, B, C, D,
// E, H, L and F. The F register is special in that it only holds the
// four flag bits; its low nibble always reads zero.
type Register = uint8

// RegisterPair represents two adjacent 8-bit registers interpreted as a
// single 16-bit value, high register first. The CPU has 4 register
// pairs: AF, BC, DE and HL.
type RegisterPair struct {
	High *Register
	Low  *Register
}

// Uint16 returns the value of the RegisterPair as a uint16.
func (r *RegisterPair) Uint16() uint16 {
	return utils.BytesToUint16(*r.High, *r.Low)
}

// SetUint16 sets the value of the RegisterPair. Both halves are written
// from the caller's point of view atomically.
func (r *RegisterPair) SetUint16(value uint16) {
	*r.High, *r.Low = utils.Uint16ToBytes(value)
}

// Registers holds the CPU's 8-bit registers together with the four
// logical pairs that alias them. Writing an 8-bit register never
// affects any other register.
type Registers struct {
	A Register
	B Register
	C Register
	D Register
	E Register
	F Register
	H Register
	L Register

	AF *RegisterPair
	BC *RegisterPair
	DE *RegisterPair
	HL *RegisterPair
}
