package sampling

import (
	"encoding/binary"
)

// BitSource is an interface for uniform random bit sources.
type BitSource interface {
	// Uint64 returns 64 uniformly distributed random bits.
	Uint64() uint64
	// Bit returns a single uniformly distributed random bit in {0, 1}.
	Bit() uint64
}

// Source is a buffered BitSource reading from a PRNG.
// A Source is not thread safe: the order in which bits are consumed
// determines the values drawn from it, so each goroutine should own its Source.
type Source struct {
	prng   PRNG
	buff   []byte
	ptr    int
	word   uint64
	nbBits int
}

// NewSource creates a new Source reading from prng.
func NewSource(prng PRNG) *Source {
	return &Source{
		prng: prng,
		buff: make([]byte, 1024),
		ptr:  1024,
	}
}

// Uint64 returns 64 random bits.
func (s *Source) Uint64() uint64 {
	if s.ptr == len(s.buff) {
		if _, err := s.prng.Read(s.buff); err != nil {
			// Sanity check, this error should not happen.
			panic(err)
		}
		s.ptr = 0
	}
	w := binary.LittleEndian.Uint64(s.buff[s.ptr:])
	s.ptr += 8
	return w
}

// Bit returns a single random bit.
func (s *Source) Bit() (b uint64) {
	if s.nbBits == 0 {
		s.word = s.Uint64()
		s.nbBits = 64
	}
	b = s.word & 1
	s.word >>= 1
	s.nbBits--
	return
}
