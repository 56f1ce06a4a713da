package mmu

// WRAM is the 8KiB of working RAM mapped at 0xC000-0xDFFF. The echo
// range 0xE000-0xFDFF aliases the same storage, so a write through
// either range is visible through the other.
type WRAM struct {
	raw [2][0x1000]uint8
}

// NewWRAM returns zeroed working RAM.
func NewWRAM() *WRAM {
	return &WRAM{}
}

func (w *WRAM) Read(addr uint16) uint8 {
	// mask the echo offset away before selecting a bank
	addr &= 0x1FFF
	return w.raw[addr>>12][addr&0xFFF]
}

func (w *WRAM) Write(addr uint16, v uint8) {
	addr &= 0x1FFF
	w.raw[addr>>12][addr&0xFFF] = v
}
