package cartridge

import (
	"fmt"
	"strings"
)

// Type identifies the memory bank controller a cartridge declares at
// header offset 0x0147.
type Type uint8

const (
	ROM               Type = 0x00
	MBC1              Type = 0x01
	MBC1RAM           Type = 0x02
	MBC1RAMBATT       Type = 0x03
	MBC2              Type = 0x05
	MBC2BATT          Type = 0x06
	ROMRAM            Type = 0x08
	ROMRAMBATT        Type = 0x09
	MMM01             Type = 0x0B
	MMM01RAM          Type = 0x0C
	MMM01RAMBATT      Type = 0x0D
	MBC3TIMERBATT     Type = 0x0F
	MBC3TIMERRAMBATT  Type = 0x10
	MBC3              Type = 0x11
	MBC3RAM           Type = 0x12
	MBC3RAMBATT       Type = 0x13
	MBC5              Type = 0x19
	MBC5RAM           Type = 0x1A
	MBC5RAMBATT       Type = 0x1B
	MBC5RUMBLE        Type = 0x1C
	MBC5RUMBLERAM     Type = 0x1D
	MBC5RUMBLERAMBATT Type = 0x1E
	MBC6              Type = 0x20
	MBC7              Type = 0x22
	POCKETCAMERA      Type = 0xFC
	BANDAITAMA5       Type = 0xFD
	HUDSONHUC3        Type = 0xFE
	HUDSONHUC1        Type = 0xFF
)

var typeNames = map[Type]string{
	ROM:               "ROM",
	MBC1:              "MBC1",
	MBC1RAM:           "MBC1+RAM",
	MBC1RAMBATT:       "MBC1+RAM+BATTERY",
	MBC2:              "MBC2",
	MBC2BATT:          "MBC2+BATTERY",
	ROMRAM:            "ROM+RAM",
	ROMRAMBATT:        "ROM+RAM+BATTERY",
	MMM01:             "MMM01",
	MMM01RAM:          "MMM01+RAM",
	MMM01RAMBATT:      "MMM01+RAM+BATTERY",
	MBC3TIMERBATT:     "MBC3+TIMER+BATTERY",
	MBC3TIMERRAMBATT:  "MBC3+TIMER+RAM+BATTERY",
	MBC3:              "MBC3",
	MBC3RAM:           "MBC3+RAM",
	MBC3RAMBATT:       "MBC3+RAM+BATTERY",
	MBC5:              "MBC5",
	MBC5RAM:           "MBC5+RAM",
	MBC5RAMBATT:       "MBC5+RAM+BATTERY",
	MBC5RUMBLE:        "MBC5+RUMBLE",
	MBC5RUMBLERAM:     "MBC5+RUMBLE+RAM",
	MBC5RUMBLERAMBATT: "MBC5+RUMBLE+RAM+BATTERY",
	MBC6:              "MBC6",
	MBC7:              "MBC7+SENSOR+RUMBLE+RAM+BATTERY",
	POCKETCAMERA:      "POCKET CAMERA",
	BANDAITAMA5:       "BANDAI TAMA5",
	HUDSONHUC3:        "HuC3",
	HUDSONHUC1:        "HuC1+RAM+BATTERY",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN (0x%02X)", uint8(t))
}

// ramBankMap maps the RAM size code at header offset 0x0149 to the
// number of 8KiB external RAM banks. Code 0x01 appears in some unofficial
// headers and maps to no RAM.
var ramBankMap = map[uint8]uint16{
	0x00: 0,
	0x01: 0,
	0x02: 1,
	0x03: 4,
	0x04: 16,
	0x05: 8,
}

// Header represents the cartridge header located at 0x0100-0x014F. It
// describes the cartridge hardware and carries the rolling checksum that
// guards the header bytes themselves.
type Header struct {
	// 0x0134-0x0143 - Title of the game
	Title string

	// 0x0143 - CGB flag (0x80 = CGB enhanced, 0xC0 = CGB only)
	CGBFlag uint8
	// 0x0146 - SGB flag (0x03 = SGB support)
	SGBFlag uint8

	// 0x0147 - CartridgeType declares the memory bank controller
	CartridgeType Type

	// 0x0148 - ROMSize is the total ROM size in bytes (32KiB << code)
	ROMSize uint32
	// ROMBanks is the number of 16KiB ROM banks
	ROMBanks uint16
	// RAMBanks is the number of 8KiB external RAM banks
	RAMBanks uint16

	OldLicenseeCode uint8
	MaskROMVersion  uint8
	HeaderChecksum  uint8
	GlobalChecksum  uint16
}

// parseHeader parses the 0x50 header bytes located at 0x0100. Offsets
// below are relative to the start of the header slice.
func parseHeader(header []byte) (Header, error) {
	h := Header{}

	if len(header) != 0x50 {
		return h, fmt.Errorf("%w: header length %d", ErrCorruptCartridge, len(header))
	}

	h.Title = strings.TrimRight(string(header[0x34:0x43]), "\x00")
	for _, r := range h.Title {
		if r < 0x20 || r > 0x7E {
			return h, fmt.Errorf("%w: title is not printable text", ErrCorruptCartridge)
		}
	}

	h.CGBFlag = header[0x43]
	h.SGBFlag = header[0x46]

	h.CartridgeType = Type(header[0x47])
	if _, recognized := typeNames[h.CartridgeType]; !recognized {
		return h, fmt.Errorf("%w: cartridge type 0x%02X", ErrInvalidCartridgeType, header[0x47])
	}

	// ROM size code n means 32KiB << n, i.e. 2 << n banks of 16KiB
	h.ROMSize = (32 * 1024) << header[0x48]
	h.ROMBanks = 2 << header[0x48]
	if h.ROMBanks < 2 || h.ROMBanks > 512 {
		return h, fmt.Errorf("%w: rom size code 0x%02X", ErrInvalidCartridgeType, header[0x48])
	}

	ramBanks, ok := ramBankMap[header[0x49]]
	if !ok {
		return h, fmt.Errorf("%w: ram size code 0x%02X", ErrInvalidCartridgeType, header[0x49])
	}
	h.RAMBanks = ramBanks

	h.OldLicenseeCode = header[0x4B]
	h.MaskROMVersion = header[0x4C]
	h.HeaderChecksum = header[0x4D]
	h.GlobalChecksum = uint16(header[0x4E]) | uint16(header[0x4F])<<8

	return h, nil
}

// headerChecksum computes the rolling checksum over the header bytes
// 0x0134-0x014C: for each byte, checksum = checksum - byte - 1, with
// 8-bit wraparound.
func headerChecksum(rom []byte) uint8 {
	var sum uint8
	for _, b := range rom[0x134:0x14D] {
		sum = sum - b - 1
	}
	return sum
}

func (h Header) String() string {
	return fmt.Sprintf("%s | %s | ROM: %dkB (%d banks) | RAM: %d banks", h.Title, h.CartridgeType, h.ROMSize/1024, h.ROMBanks, h.RAMBanks)
}
