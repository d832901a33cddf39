package prng

import (
	"bytes"
	"testing"

	"github.com/keyward/chacha20/chacha"
)

func TestDeterministic(t *testing.T) {
	seed := make([]byte, SeedSize)
	for i := range seed {
		seed[i] = byte(i)
	}

	a, err := New(seed)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	b, err := New(seed)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if !bytes.Equal(a.Next(1024), b.Next(1024)) {
		t.Fatalf("same seed produced different streams")
	}
}

func TestMatchesBlockFunction(t *testing.T) {
	seed := make([]byte, SeedSize)
	for i := range seed {
		seed[i] = byte(i)
	}
	nonce := make([]byte, chacha.NonceSize)

	r, err := New(seed)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	state, err := chacha.BlockFunction(seed, 0, nonce)
	if err != nil {
		t.Fatalf("BlockFunction: %v", err)
	}
	if got, want := r.Next(chacha.BlockSize), chacha.Serialize(state); !bytes.Equal(got, want) {
		t.Fatalf("first block = %x, want %x", got, want)
	}
}

// TestSeededWords pins the generator against the block-function word
// sequence for the 00..1f seed (blocks 0 and 1).
func TestSeededWords(t *testing.T) {
	want := []uint32{
		2100034873, 1780073945, 1996733837, 1229642936,
		1876440458, 3429555900, 1283312818, 2451892952,
		3888915243, 2871222434, 1777274431, 1686095930,
		3929375269, 765720497, 2690787266, 205609800,
		826456088, 3517376173, 1633444115, 659440559,
		4126388728, 1549512161, 318568684, 1551185194,
		1829242994, 1564274385, 609780125, 1006636644,
		1593221275, 3461963230, 2135566861, 3445265713,
	}

	seed := make([]byte, SeedSize)
	for i := range seed {
		seed[i] = byte(i)
	}
	r, err := New(seed)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for i, w := range want {
		if got := r.Uint32(); got != w {
			t.Fatalf("word %d = %d, want %d", i, got, w)
		}
	}
}

func TestReadSplitsAreContinuous(t *testing.T) {
	seed := make([]byte, SeedSize)
	seed[0] = 0xaa

	whole, err := New(seed)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	split, err := New(seed)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	want := whole.Next(200)
	var got []byte
	for _, n := range []int{1, 9, 63, 64, 63} {
		got = append(got, split.Next(n)...)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("split reads diverged from a single read")
	}
}

func TestNonceSeparatesStreams(t *testing.T) {
	seed := make([]byte, SeedSize)

	a, err := NewWithNonce(seed, []byte("stream-a \x00\x00\x00"))
	if err != nil {
		t.Fatalf("NewWithNonce: %v", err)
	}
	b, err := NewWithNonce(seed, []byte("stream-b \x00\x00\x00"))
	if err != nil {
		t.Fatalf("NewWithNonce: %v", err)
	}
	if bytes.Equal(a.Next(64), b.Next(64)) {
		t.Fatalf("different nonces produced the same stream")
	}
}

func TestRejectsBadSeedAndNonce(t *testing.T) {
	if _, err := New(make([]byte, 16)); err != ErrInvalidSeedLength {
		t.Fatalf("got %v, want ErrInvalidSeedLength", err)
	}
	if _, err := NewWithNonce(make([]byte, SeedSize), make([]byte, 5)); err != chacha.ErrInvalidNonceLength {
		t.Fatalf("got %v, want chacha.ErrInvalidNonceLength", err)
	}
}

func BenchmarkRead(b *testing.B) {
	r, _ := New(make([]byte, SeedSize))
	buf := make([]byte, 4096)
	b.SetBytes(int64(len(buf)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = r.Read(buf)
	}
}
