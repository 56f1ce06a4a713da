// Package mmu provides the memory bus for the core. The MMU dispatches
// every read and write in the 64KiB address space to the region that
// owns the address: cartridge ROM and RAM, video RAM, working RAM (with
// its echo), OAM, I/O registers, high RAM and the interrupt registers.
package mmu

import (
	"github.com/sirupsen/logrus"

	"github.com/duskgb/duskgb/internal/cartridge"
	"github.com/duskgb/duskgb/internal/interrupts"
	"github.com/duskgb/duskgb/internal/ram"
)

// IOBus is the interface the CPU uses to access memory.
type IOBus interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

// MMU is the memory bus. Every address maps to exactly one owning
// region.
type MMU struct {
	// 0x0000 - 0x7FFF - ROM (via cartridge)
	// 0xA000 - 0xBFFF - External RAM (via cartridge)
	Cart *cartridge.Cartridge

	// 0x8000 - 0x9FFF - Video RAM (8kB)
	vram [0x2000]uint8

	// 0xC000 - 0xDFFF - Work RAM (8kB)
	// 0xE000 - 0xFDFF - Echo RAM, aliases work RAM
	wRAM *WRAM

	// 0xFE00 - 0xFE9F - Object attribute memory (160B)
	oam [0xA0]uint8

	// 0xFF00 - 0xFF7F - I/O registers
	io ram.RAM

	// 0xFF80 - 0xFFFE - High RAM (127B)
	hRAM ram.RAM

	// 0xFF0F / 0xFFFF - interrupt Flag and Enable registers
	irq *interrupts.Service

	Log *logrus.Logger
}

// NewMMU returns a new MMU mapping the given cartridge.
func NewMMU(cart *cartridge.Cartridge, irq *interrupts.Service) *MMU {
	l := logrus.New()
	l.Formatter = &logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
		DisableSorting:   true,
		DisableQuote:     true,
	}

	return &MMU{
		Cart: cart,
		wRAM: NewWRAM(),
		io:   ram.NewRAM(0x80),
		hRAM: ram.NewRAM(0x7F),
		irq:  irq,
		Log:  l,
	}
}

// Read returns the value at the given address.
func (m *MMU) Read(address uint16) uint8 {
	switch {
	case address < 0x8000: // ROM
		return m.Cart.Read(address)
	case address < 0xA000: // VRAM
		return m.vram[address-0x8000]
	case address < 0xC000: // external RAM
		return m.Cart.ReadRAM(address - 0xA000)
	case address < 0xFE00: // WRAM and its echo
		return m.wRAM.Read(address)
	case address < 0xFEA0: // OAM
		return m.oam[address-0xFE00]
	case address < 0xFF00: // unusable gap
		return 0xFF
	case address == 0xFF0F:
		return m.irq.ReadFlag()
	case address < 0xFF80: // I/O registers
		return m.io.Read(address - 0xFF00)
	case address < 0xFFFF: // HRAM
		return m.hRAM.Read(address - 0xFF80)
	default: // 0xFFFF - interrupt enable
		return m.irq.Enable
	}
}

// Write writes the value to the given address.
func (m *MMU) Write(address uint16, value uint8) {
	switch {
	case address < 0x8000:
		m.Cart.Write(address, value)
	case address < 0xA000:
		m.vram[address-0x8000] = value
	case address < 0xC000:
		m.Cart.WriteRAM(address-0xA000, value)
	case address < 0xFE00:
		m.wRAM.Write(address, value)
	case address < 0xFEA0:
		m.oam[address-0xFE00] = value
	case address < 0xFF00:
		// unusable gap, writes are dropped
	case address == 0xFF0F:
		m.irq.SetFlag(value)
	case address < 0xFF80:
		m.io.Write(address-0xFF00, value)
	case address < 0xFFFF:
		m.hRAM.Write(address-0xFF80, value)
	default:
		m.irq.Enable = value
	}
}
