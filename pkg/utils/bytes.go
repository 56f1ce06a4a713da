package utils

// BytesToUint16 packs a big-endian byte pair into a 16-bit word. Every
// register pair and 16-bit immediate in the core is assembled here, so
// byte order is enforced in exactly one place.
func BytesToUint16(high, low uint8) uint16 {
	return uint16(high)<<8 | uint16(low)
}

// Uint16ToBytes splits a 16-bit word into its big-endian byte pair. It is
// the exact inverse of BytesToUint16.
func Uint16ToBytes(value uint16) (high, low uint8) {
	return uint8(value >> 8), uint8(value)
}
