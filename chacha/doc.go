// Package chacha implements the ChaCha20 stream cipher as specified in
// RFC 8439.
//
// Design goals:
//   - Exact RFC 8439 semantics, validated against the published test vectors
//   - Explicit little-endian encoding, no reliance on platform byte order
//   - Key and nonce lengths checked up front and surfaced as typed errors
//   - A pure block function, so keystream blocks can be computed in parallel
//
// The package exposes the cipher at two levels: one-shot functions
// (XORKeyStream, XORKeyStreamParallel) that take the key, nonce, and initial
// block counter on every call, and a stateful Cipher implementing
// crypto/cipher.Stream for incremental processing. Both stop at the
// keystream-XOR construction; authentication (Poly1305) and AEAD framing are
// a separate layer.
package chacha
