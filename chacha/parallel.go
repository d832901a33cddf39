package chacha

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// XORKeyStreamParallel is XORKeyStream with the keystream blocks computed
// concurrently. Block j depends only on (key, nonce, counter+j), so the
// input splits into contiguous block ranges with no shared mutable state and
// the output is byte-identical to the sequential form. workers <= 0 selects
// GOMAXPROCS.
func XORKeyStreamParallel(key []byte, counter uint32, nonce []byte, data []byte, workers int) ([]byte, error) {
	if len(key) != KeySize {
		return nil, ErrInvalidKeyLength
	}
	if len(nonce) != NonceSize {
		return nil, ErrInvalidNonceLength
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	blocks := (len(data) + BlockSize - 1) / BlockSize
	if blocks <= 1 || workers == 1 {
		return XORKeyStream(key, counter, nonce, data)
	}
	if workers > blocks {
		workers = blocks
	}

	out := make([]byte, len(data))
	per := (blocks + workers - 1) / workers

	var g errgroup.Group
	for first := 0; first < blocks; first += per {
		last := first + per
		if last > blocks {
			last = blocks
		}
		lo := first * BlockSize
		hi := last * BlockSize
		if hi > len(data) {
			hi = len(data)
		}
		shard := counter + uint32(first)
		g.Go(func() error {
			seg, err := XORKeyStream(key, shard, nonce, data[lo:hi])
			if err != nil {
				return err
			}
			copy(out[lo:], seg)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
