package chacha

import (
	"encoding/binary"
	"errors"
)

const (
	// KeySize is the length of a ChaCha20 key in bytes.
	KeySize = 32
	// NonceSize is the length of a ChaCha20 nonce in bytes.
	NonceSize = 12
	// BlockSize is the length of one keystream block in bytes.
	BlockSize = 64
)

var (
	ErrInvalidKeyLength   = errors.New("chacha: key must be 32 bytes")
	ErrInvalidNonceLength = errors.New("chacha: nonce must be 12 bytes")
)

// The first four state words are fixed: "expand 32-byte k" read as four
// little-endian words.
var constants = [4]uint32{0x61707865, 0x3320646e, 0x79622d32, 0x6b206574}

// InitState builds the initial 16-word ChaCha state: the four constants,
// the key as eight little-endian words, the block counter, and the nonce as
// three little-endian words. Lengths are checked before any indexing.
func InitState(key []byte, counter uint32, nonce []byte) ([16]uint32, error) {
	var s [16]uint32
	if len(key) != KeySize {
		return s, ErrInvalidKeyLength
	}
	if len(nonce) != NonceSize {
		return s, ErrInvalidNonceLength
	}
	s[0], s[1], s[2], s[3] = constants[0], constants[1], constants[2], constants[3]
	for i := 0; i < 8; i++ {
		s[4+i] = binary.LittleEndian.Uint32(key[4*i:])
	}
	s[12] = counter
	for i := 0; i < 3; i++ {
		s[13+i] = binary.LittleEndian.Uint32(nonce[4*i:])
	}
	return s, nil
}
