package chacha

// XORKeyStream encrypts or decrypts data with the keystream derived from
// key, nonce, and the initial block counter, returning a new buffer of the
// same length. Chunk j of 64 bytes is XORed against the serialized output of
// BlockFunction(key, counter+j, nonce); a trailing partial chunk uses only
// the first len(data) mod 64 keystream bytes. XOR is an involution, so the
// same call performs both encryption and decryption.
//
// The block counter is a 32-bit word and wraps modulo 2^32, so one
// (key, nonce, counter) triple yields at most 2^32 distinct blocks: 256 GiB
// of keystream. Inputs longer than that reuse keystream; for streams of that
// size use Cipher, which detects exhaustion instead of wrapping.
//
// The nonce must never be reused with the same key and overlapping counter
// range; doing so forfeits all confidentiality. That precondition is the
// caller's to uphold.
func XORKeyStream(key []byte, counter uint32, nonce []byte, data []byte) ([]byte, error) {
	s, err := InitState(key, counter, nonce)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(data))
	var ks [BlockSize]byte
	for off := 0; off < len(data); off += BlockSize {
		serializeInto(ks[:], core(s))
		s[12]++

		chunk := data[off:]
		if len(chunk) > BlockSize {
			chunk = chunk[:BlockSize]
		}
		for k, b := range chunk {
			out[off+k] = b ^ ks[k]
		}
	}
	return out, nil
}
