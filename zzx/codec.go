package zzx

import (
	"bufio"
	"fmt"
	"io"
	"math/big"

	"github.com/tuneinsight/zzring/utils/buffer"
)

// Binary format:
//   - the number of coefficients as an uint64
//   - for each coefficient, its sign as an uint8 (0 for non-negative, 1 for negative),
//     the byte size of its absolute value as an uint64, and the big-endian bytes.

// BinarySize returns the serialized size of the object in bytes.
func (p *Poly) BinarySize() (size int) {
	size = 8
	for _, c := range p.Coeffs {
		size += 9 + (c.BitLen()+7)>>3
	}
	return
}

// WriteTo writes the object on an io.Writer.
// To ensure optimal efficiency and minimal allocations, the user is encouraged
// to provide a struct implementing the interface buffer.Writer, which defines
// a subset of the method of the bufio.Writer.
// If w is not compliant to the buffer.Writer interface, it will be wrapped in
// a new bufio.Writer.
func (p *Poly) WriteTo(w io.Writer) (n int64, err error) {

	switch w := w.(type) {
	case buffer.Writer:

		var inc int64
		if inc, err = buffer.WriteUint64(w, uint64(len(p.Coeffs))); err != nil {
			return n + inc, err
		}

		n += inc

		for _, c := range p.Coeffs {

			var sign uint8
			if c.Sign() < 0 {
				sign = 1
			}

			if inc, err = buffer.WriteUint8(w, sign); err != nil {
				return n + inc, err
			}

			n += inc

			data := new(big.Int).Abs(c).Bytes()

			if inc, err = buffer.WriteUint64(w, uint64(len(data))); err != nil {
				return n + inc, err
			}

			n += inc

			if inc, err = buffer.WriteUint8Slice(w, data); err != nil {
				return n + inc, err
			}

			n += inc
		}

		return n, w.Flush()

	default:
		return p.WriteTo(bufio.NewWriter(w))
	}
}

// ReadFrom reads on the object from an io.Writer.
// To ensure optimal efficiency and minimal allocations, the user is encouraged
// to provide a struct implementing the interface buffer.Reader, which defines
// a subset of the method of the bufio.Reader.
// Coefficients are read by bounded chunks, so a corrupted length prefix
// fails with io.ErrUnexpectedEOF instead of allocating its declared size.
// If r is not compliant to the buffer.Reader interface, it will be wrapped in
// a new bufio.Reader.
// Returns an error if the decoded polynomial is not normalized.
func (p *Poly) ReadFrom(r io.Reader) (n int64, err error) {

	switch r := r.(type) {
	case buffer.Reader:

		var size uint64
		var inc int64
		if inc, err = buffer.ReadUint64(r, &size); err != nil {
			return n + inc, err
		}

		n += inc

		coeffs := make([]*big.Int, 0, minCapacity(size))

		for i := uint64(0); i < size; i++ {

			var sign uint8
			if inc, err = buffer.ReadUint8(r, &sign); err != nil {
				return n + inc, err
			}

			n += inc

			if sign > 1 {
				return n, fmt.Errorf("cannot ReadFrom: invalid sign byte %d", sign)
			}

			var length uint64
			if inc, err = buffer.ReadUint64(r, &length); err != nil {
				return n + inc, err
			}

			n += inc

			if length > 1<<32 {
				return n, fmt.Errorf("cannot ReadFrom: coefficient size %d is too large", length)
			}

			var data []byte
			if data, inc, err = buffer.ReadUint8SliceN(r, length); err != nil {
				return n + inc, err
			}

			n += inc

			c := new(big.Int).SetBytes(data)
			if sign == 1 {
				c.Neg(c)
			}

			coeffs = append(coeffs, c)
		}

		if size > 0 && coeffs[size-1].Sign() == 0 {
			return n, fmt.Errorf("cannot ReadFrom: leading coefficient is zero")
		}

		p.Coeffs = coeffs

		return n, nil

	default:
		return p.ReadFrom(bufio.NewReader(r))
	}
}

// MarshalBinary encodes the object into a binary form on a newly allocated slice of bytes.
func (p *Poly) MarshalBinary() (data []byte, err error) {
	buf := buffer.NewBufferSize(p.BinarySize())
	_, err = p.WriteTo(buf)
	return buf.Bytes(), err
}

// UnmarshalBinary decodes a slice of bytes generated by
// MarshalBinary or WriteTo on the object.
func (p *Poly) UnmarshalBinary(data []byte) (err error) {
	_, err = p.ReadFrom(buffer.NewBuffer(data))
	return
}

// minCapacity caps the pre-allocation of a decoded length prefix.
func minCapacity(size uint64) int {
	if size > 1<<16 {
		return 1 << 16
	}
	return int(size)
}
