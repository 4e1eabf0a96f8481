package buffer

import (
	"encoding/binary"
	"fmt"
	"io"
	"slices"
)

// readChunk is the largest allocation ReadUint8SliceN makes ahead of the
// bytes actually read.
const readChunk = 1 << 16

// ReadUint8 reads a byte from r and stores the result into c.
func ReadUint8(r Reader, c *uint8) (n int64, err error) {

	if c == nil {
		return 0, fmt.Errorf("cannot ReadUint8: c is nil")
	}

	if *c, err = r.ReadByte(); err != nil {
		return 0, err
	}

	return 1, nil
}

// ReadUint8SliceN reads size bytes from r on a new slice.
// The slice grows by chunks as the bytes arrive, so that the allocation
// never exceeds the input by more than one chunk, whatever size is.
// Returns io.ErrUnexpectedEOF if r holds fewer than size bytes.
func ReadUint8SliceN(r Reader, size uint64) (c []uint8, n int64, err error) {

	first := size
	if first > readChunk {
		first = readChunk
	}

	c = make([]uint8, 0, first)

	for uint64(len(c)) < size {

		k := size - uint64(len(c))
		if k > readChunk {
			k = readChunk
		}

		start := len(c)
		c = slices.Grow(c, int(k))[:start+int(k)]

		var nint int
		nint, err = io.ReadFull(r, c[start:])
		n += int64(nint)

		if err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return c[:start+nint], n, err
		}
	}

	return
}

// ReadUint64 reads a uint64 from r and stores the result into c.
func ReadUint64(r Reader, c *uint64) (n int64, err error) {

	if c == nil {
		return 0, fmt.Errorf("cannot ReadUint64: c is nil")
	}

	var bb = [8]byte{}

	nint, err := io.ReadFull(r, bb[:])
	if err != nil {
		return int64(nint), err
	}

	*c = binary.LittleEndian.Uint64(bb[:])

	return int64(nint), nil
}
