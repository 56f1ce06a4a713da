// Package cartridge loads and maps a binary cartridge image. The
// cartridge owns the ROM banks mapped at 0x0000-0x7FFF and the external
// RAM banks mapped at 0xA000-0xBFFF.
package cartridge

import (
	"errors"
	"fmt"

	"github.com/cespare/xxhash"
	"github.com/sirupsen/logrus"
)

var (
	// ErrIO is returned when the cartridge bytes are unavailable.
	ErrIO = errors.New("cartridge: rom image unavailable")
	// ErrCorruptCartridge is returned when the image fails header
	// validation, including a header checksum mismatch.
	ErrCorruptCartridge = errors.New("cartridge: corrupt image")
	// ErrInvalidCartridgeType is returned for unrecognized cartridge
	// type or size codes.
	ErrInvalidCartridgeType = errors.New("cartridge: invalid cartridge type")
	// ErrUnsupportedMapper is returned for recognized mappers this core
	// does not implement.
	ErrUnsupportedMapper = errors.New("cartridge: unsupported mapper")
)

const (
	romBankSize = 0x4000
	ramBankSize = 0x2000
)

// Cartridge is an immutable ROM image plus zero or more mutable 8KiB
// external RAM banks. ROM-only cartridges map bank 0 at 0x0000-0x3FFF
// and bank 1 at 0x4000-0x7FFF.
type Cartridge struct {
	rom    []byte
	ram    []byte
	header Header

	// 64-bit digest of the full image, used to identify the ROM
	hash uint64
}

// Load validates the given image and maps it into a Cartridge. The
// image must be at least two ROM banks long, carry a matching header
// checksum and declare a ROM-only mapper. On error nothing is mapped.
func Load(rom []byte, log *logrus.Logger) (*Cartridge, error) {
	if len(rom) == 0 {
		return nil, fmt.Errorf("%w: empty buffer", ErrIO)
	}
	if len(rom) < 2*romBankSize {
		return nil, fmt.Errorf("%w: image is %d bytes, need at least %d", ErrCorruptCartridge, len(rom), 2*romBankSize)
	}

	if sum := headerChecksum(rom); sum != rom[0x14D] {
		return nil, fmt.Errorf("%w: header checksum 0x%02X, computed 0x%02X", ErrCorruptCartridge, rom[0x14D], sum)
	}

	header, err := parseHeader(rom[0x100:0x150])
	if err != nil {
		return nil, err
	}
	if header.CartridgeType != ROM {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMapper, header.CartridgeType)
	}

	c := &Cartridge{
		rom:    rom,
		ram:    make([]byte, int(header.RAMBanks)*ramBankSize),
		header: header,
		hash:   xxhash.Sum64(rom),
	}

	if log != nil {
		log.Infof("loaded cartridge %s", header)
		log.Infof("rom digest %016x", c.hash)
	}

	return c, nil
}

// NewEmptyCartridge returns a cartridge backed by a blank two-bank
// ROM-only image with a valid header. It stands in for a real cartridge
// when no image is loaded.
func NewEmptyCartridge() *Cartridge {
	rom := make([]byte, 2*romBankSize)
	copy(rom[0x134:], "EMPTY")
	rom[0x14D] = headerChecksum(rom)

	c, err := Load(rom, nil)
	if err != nil {
		panic(err)
	}
	return c
}

// Header returns the parsed cartridge header.
func (c *Cartridge) Header() Header {
	return c.header
}

// Title returns the cartridge title.
func (c *Cartridge) Title() string {
	return c.header.Title
}

// Hash returns the 64-bit digest of the ROM image.
func (c *Cartridge) Hash() uint64 {
	return c.hash
}

// Read reads a byte from the ROM region 0x0000-0x7FFF.
func (c *Cartridge) Read(address uint16) uint8 {
	if int(address) < len(c.rom) {
		return c.rom[address]
	}
	return 0xFF
}

// Write handles a write to the ROM region. On a ROM-only cartridge
// these are banking-control addresses with no controller behind them,
// so the write is dropped.
func (c *Cartridge) Write(address uint16, value uint8) {}

// ReadRAM reads a byte from the external RAM region. address is
// relative to 0xA000. Reads with no RAM banks present return 0xFF.
func (c *Cartridge) ReadRAM(address uint16) uint8 {
	if int(address) < len(c.ram) {
		return c.ram[address]
	}
	return 0xFF
}

// WriteRAM writes a byte to the external RAM region. address is
// relative to 0xA000. Writes with no RAM banks present are dropped.
func (c *Cartridge) WriteRAM(address uint16, value uint8) {
	if int(address) < len(c.ram) {
		c.ram[address] = value
	}
}
