// Package sampling provides the randomness of the samplers: byte streams
// (PRNG) and the bit sources (Source) that the samplers consume.
package sampling

import (
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/blake2b"
)

// PRNG is a stream of random bytes.
type PRNG interface {
	io.Reader
}

// ThreadSafePRNG reads from crypto/rand and can be shared between goroutines.
type ThreadSafePRNG struct{}

// NewPRNG returns a new ThreadSafePRNG.
func NewPRNG() (*ThreadSafePRNG, error) {
	return &ThreadSafePRNG{}, nil
}

// Read fills sum from crypto/rand.
func (prng *ThreadSafePRNG) Read(sum []byte) (n int, err error) {
	return rand.Read(sum)
}

// KeyedPRNG expands a key of at most 64 bytes into a stream of bytes with
// the blake2b XOF. Two KeyedPRNG with the same key produce the same stream,
// hence a sampler fed by a KeyedPRNG replays the same draws.
// A KeyedPRNG is meant to feed a single Source and is not thread safe.
type KeyedPRNG struct {
	key []byte
	xof blake2b.XOF
}

// NewKeyedPRNG creates a new KeyedPRNG from a copy of key.
// An empty key gives a fixed, public stream.
func NewKeyedPRNG(key []byte) (prng *KeyedPRNG, err error) {

	prng = &KeyedPRNG{key: append([]byte{}, key...)}

	if prng.xof, err = blake2b.NewXOF(blake2b.OutputLengthUnknown, prng.key); err != nil {
		return nil, fmt.Errorf("cannot NewKeyedPRNG: %w", err)
	}

	return
}

// Key returns a copy of the key, from which NewKeyedPRNG replays the stream.
func (prng *KeyedPRNG) Key() []byte {
	return append([]byte{}, prng.key...)
}

// Read reads the next len(sum) bytes of the stream.
func (prng *KeyedPRNG) Read(sum []byte) (n int, err error) {
	return prng.xof.Read(sum)
}
