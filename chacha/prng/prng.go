// Package prng provides a deterministic pseudorandom generator built on the
// ChaCha20 block function: the generator output is the raw keystream for a
// 32-byte seed, so the same seed always yields the same byte stream.
//
// This is for reproducible simulation, test fixtures, and protocol runs that
// need a shared deterministic stream. It does not stretch low-entropy input;
// seed quality is the caller's responsibility.
package prng

import (
	"encoding/binary"
	"errors"
	"io"
	"sync"

	"github.com/keyward/chacha20/chacha"
)

// SeedSize is the required seed length in bytes.
const SeedSize = chacha.KeySize

var ErrInvalidSeedLength = errors.New("prng: seed must be 32 bytes")

// Reader emits the ChaCha20 keystream for a seed, starting at block 0. It
// implements io.Reader and is safe for concurrent use.
type Reader struct {
	mu     sync.Mutex
	cipher *chacha.Cipher
}

var _ io.Reader = (*Reader)(nil)

// New returns a generator for the given 32-byte seed with an all-zero nonce.
func New(seed []byte) (*Reader, error) {
	return NewWithNonce(seed, make([]byte, chacha.NonceSize))
}

// NewWithNonce is New with a caller-chosen 12-byte nonce, so several
// independent streams can be derived from one seed.
func NewWithNonce(seed, nonce []byte) (*Reader, error) {
	if len(seed) != SeedSize {
		return nil, ErrInvalidSeedLength
	}
	c, err := chacha.New(seed, nonce)
	if err != nil {
		return nil, err
	}
	return &Reader{cipher: c}, nil
}

// Read fills p with the next keystream bytes. The returned error is always
// nil; the signature satisfies io.Reader.
func (r *Reader) Read(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range p {
		p[i] = 0
	}
	r.cipher.XORKeyStream(p, p)
	return len(p), nil
}

// Next returns the next n keystream bytes.
func (r *Reader) Next(n int) []byte {
	b := make([]byte, n)
	_, _ = r.Read(b)
	return b
}

// Uint32 returns the next keystream word, read little-endian.
func (r *Reader) Uint32() uint32 {
	var b [4]byte
	_, _ = r.Read(b[:])
	return binary.LittleEndian.Uint32(b[:])
}
