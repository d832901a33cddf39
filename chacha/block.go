package chacha

import "encoding/binary"

// rounds mixes a working state in place: ten double rounds, each a column
// round followed by a diagonal round, 20 rounds total.
func rounds(w *[16]uint32) {
	for i := 0; i < 10; i++ {
		quarterRoundOn(w, 0, 4, 8, 12)
		quarterRoundOn(w, 1, 5, 9, 13)
		quarterRoundOn(w, 2, 6, 10, 14)
		quarterRoundOn(w, 3, 7, 11, 15)
		quarterRoundOn(w, 0, 5, 10, 15)
		quarterRoundOn(w, 1, 6, 11, 12)
		quarterRoundOn(w, 2, 7, 8, 13)
		quarterRoundOn(w, 3, 4, 9, 14)
	}
}

// core runs the block function over an already-built initial state: 20
// rounds on a working copy, then the initial state added back word-wise.
func core(s [16]uint32) [16]uint32 {
	w := s
	rounds(&w)
	for i := range w {
		w[i] += s[i]
	}
	return w
}

// BlockFunction produces the 16-word keystream state for one block of the
// stream identified by key, nonce, and the block counter.
func BlockFunction(key []byte, counter uint32, nonce []byte) ([16]uint32, error) {
	s, err := InitState(key, counter, nonce)
	if err != nil {
		return s, err
	}
	return core(s), nil
}

// Serialize writes a 16-word state as 64 bytes, each word little-endian, in
// index order. This is the keystream byte layout mandated by RFC 8439.
func Serialize(state [16]uint32) []byte {
	out := make([]byte, BlockSize)
	serializeInto(out, state)
	return out
}

func serializeInto(dst []byte, state [16]uint32) {
	for i, w := range state {
		binary.LittleEndian.PutUint32(dst[4*i:], w)
	}
}
