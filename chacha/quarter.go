package chacha

import "math/bits"

// QuarterRound is the basic ARX operation of ChaCha. It mixes four 32-bit
// words and returns the result. Additions wrap modulo 2^32.
func QuarterRound(a, b, c, d uint32) (uint32, uint32, uint32, uint32) {
	a += b
	d ^= a
	d = bits.RotateLeft32(d, 16)
	c += d
	b ^= c
	b = bits.RotateLeft32(b, 12)
	a += b
	d ^= a
	d = bits.RotateLeft32(d, 8)
	c += d
	b ^= c
	b = bits.RotateLeft32(b, 7)
	return a, b, c, d
}

// quarterRoundOn applies the quarter round to the state words at indices
// x, y, z, w in place, leaving the other 12 words untouched.
func quarterRoundOn(s *[16]uint32, x, y, z, w int) {
	s[x], s[y], s[z], s[w] = QuarterRound(s[x], s[y], s[z], s[w])
}
