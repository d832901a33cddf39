package chacha

import (
	"crypto/cipher"
	"encoding/binary"
)

// Cipher is a stateful ChaCha20 instance bound to one key and nonce. It
// implements cipher.Stream: successive XORKeyStream calls continue the same
// keystream, so processing a message in pieces yields the same bytes as one
// call over the concatenation.
//
// A Cipher is not safe for concurrent use.
type Cipher struct {
	key   [8]uint32
	nonce [3]uint32

	// counter is the index of the next keystream block. It is kept wider
	// than the 32-bit state word so exhaustion is detected instead of
	// silently restarting the stream.
	counter uint64

	// buf holds keystream left over from the last partially consumed
	// block; the final rem bytes are still unused.
	buf [BlockSize]byte
	rem int
}

var _ cipher.Stream = (*Cipher)(nil)

// New returns a Cipher for a 32-byte key and 12-byte nonce, starting at
// block counter 0.
func New(key, nonce []byte) (*Cipher, error) {
	if len(key) != KeySize {
		return nil, ErrInvalidKeyLength
	}
	if len(nonce) != NonceSize {
		return nil, ErrInvalidNonceLength
	}
	c := &Cipher{}
	for i := range c.key {
		c.key[i] = binary.LittleEndian.Uint32(key[4*i:])
	}
	for i := range c.nonce {
		c.nonce[i] = binary.LittleEndian.Uint32(nonce[4*i:])
	}
	return c, nil
}

// SetCounter positions the keystream at the given block counter and discards
// any buffered keystream. RFC 8439 encryption conventionally starts at 1,
// reserving block 0 for the Poly1305 one-time key.
func (c *Cipher) SetCounter(n uint32) {
	c.counter = uint64(n)
	c.rem = 0
}

// XORKeyStream XORs src with the next len(src) keystream bytes into dst.
// dst must be at least as long as src and must either overlap src exactly or
// not at all; partial overlap is not detected and corrupts the output. It
// panics if the 32-bit block counter is exhausted, which bounds one
// (key, nonce) pair at 256 GiB of keystream.
func (c *Cipher) XORKeyStream(dst, src []byte) {
	if len(dst) < len(src) {
		panic("chacha: output smaller than input")
	}
	for len(src) > 0 {
		if c.rem == 0 {
			c.refill()
		}
		n := len(src)
		if n > c.rem {
			n = c.rem
		}
		ks := c.buf[BlockSize-c.rem:]
		for i := 0; i < n; i++ {
			dst[i] = src[i] ^ ks[i]
		}
		c.rem -= n
		dst, src = dst[n:], src[n:]
	}
}

// refill generates the next keystream block into buf and advances the
// counter.
func (c *Cipher) refill() {
	if c.counter>>32 != 0 {
		panic("chacha: block counter overflow")
	}
	s := [16]uint32{
		constants[0], constants[1], constants[2], constants[3],
		c.key[0], c.key[1], c.key[2], c.key[3],
		c.key[4], c.key[5], c.key[6], c.key[7],
		uint32(c.counter),
		c.nonce[0], c.nonce[1], c.nonce[2],
	}
	serializeInto(c.buf[:], core(s))
	c.rem = BlockSize
	c.counter++
}
