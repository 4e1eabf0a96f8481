package rlwe

import (
	"io"

	"github.com/tuneinsight/zzring/utils/buffer"
	"github.com/tuneinsight/zzring/zzx"
)

// Plaintext is an encoded message: a polynomial of degree smaller than P
// with coefficients in [0, Q).
type Plaintext struct {
	Value *zzx.Poly
}

// Ciphertext is a pair (c1, c2) of polynomials of Z_Q[X]/(F).
type Ciphertext struct {
	C1 *zzx.Poly
	C2 *zzx.Poly
}

// Equal performs a deep equal.
func (ct *Ciphertext) Equal(other *Ciphertext) bool {
	return ct.C1.Equal(other.C1) && ct.C2.Equal(other.C2)
}

// CopyNew creates a deep copy of the receiver ciphertext and returns it.
func (ct *Ciphertext) CopyNew() *Ciphertext {
	return &Ciphertext{C1: ct.C1.CopyNew(), C2: ct.C2.CopyNew()}
}

// BinarySize returns the serialized size of the object in bytes.
func (ct *Ciphertext) BinarySize() int {
	return polyBinarySize(ct.C1, ct.C2)
}

// WriteTo writes the object on an io.Writer.
// To ensure optimal efficiency and minimal allocations, the user is encouraged
// to provide a struct implementing the interface buffer.Writer, which defines
// a subset of the method of the bufio.Writer.
// If w is not compliant to the buffer.Writer interface, it will be wrapped in
// a new bufio.Writer.
func (ct *Ciphertext) WriteTo(w io.Writer) (n int64, err error) {
	return writePolys(w, ct.C1, ct.C2)
}

// ReadFrom reads on the object from an io.Writer.
// To ensure optimal efficiency and minimal allocations, the user is encouraged
// to provide a struct implementing the interface buffer.Reader, which defines
// a subset of the method of the bufio.Reader.
// If r is not compliant to the buffer.Reader interface, it will be wrapped in
// a new bufio.Reader.
func (ct *Ciphertext) ReadFrom(r io.Reader) (n int64, err error) {
	ct.C1, ct.C2 = zzx.NewPoly(), zzx.NewPoly()
	return readPolys(r, ct.C1, ct.C2)
}

// MarshalBinary encodes the object into a binary form on a newly allocated slice of bytes.
func (ct *Ciphertext) MarshalBinary() (p []byte, err error) {
	buf := buffer.NewBufferSize(ct.BinarySize())
	_, err = ct.WriteTo(buf)
	return buf.Bytes(), err
}

// UnmarshalBinary decodes a slice of bytes generated by
// MarshalBinary or WriteTo on the object.
func (ct *Ciphertext) UnmarshalBinary(p []byte) (err error) {
	_, err = ct.ReadFrom(buffer.NewBuffer(p))
	return
}
