package cpu

import "github.com/duskgb/duskgb/internal/types"

// Flag is one of the four status bits held in the high nibble of the F
// register.
type Flag = uint8

const (
	FlagZero      Flag = types.Bit7
	FlagSubtract  Flag = types.Bit6
	FlagHalfCarry Flag = types.Bit5
	FlagCarry     Flag = types.Bit4
)

// isFlagSet returns true if the given flag is set.
func (c *CPU) isFlagSet(flag Flag) bool {
	return c.F&flag != 0
}

// setFlag sets the given flag, leaving the other flags untouched.
func (c *CPU) setFlag(flag Flag) {
	c.F = (c.F | flag) & 0xF0
}

// clearFlag clears the given flag, leaving the other flags untouched.
func (c *CPU) clearFlag(flag Flag) {
	c.F = c.F &^ flag & 0xF0
}

// setFlags serializes all four flags into the F register at once. The
// low nibble of F is always zero.
func (c *CPU) setFlags(z, n, h, carry bool) {
	var f uint8
	if z {
		f |= FlagZero
	}
	if n {
		f |= FlagSubtract
	}
	if h {
		f |= FlagHalfCarry
	}
	if carry {
		f |= FlagCarry
	}
	c.F = f
}
