package rlwe

import (
	"io"

	"github.com/tuneinsight/zzring/utils/buffer"
	"github.com/tuneinsight/zzring/zzx"
)

// SecretKey is a type for secret keys: the noise polynomial r2.
type SecretKey struct {
	R2 *zzx.Poly
}

// PublicKey is a type for public keys: the public element a and
// p1 = r1 - a*r2 mod (F, Q).
type PublicKey struct {
	A  *zzx.Poly
	P1 *zzx.Poly
}

// Equal performs a deep equal.
func (sk *SecretKey) Equal(other *SecretKey) bool {
	return sk.R2.Equal(other.R2)
}

// CopyNew creates a deep copy of the receiver secret key and returns it.
func (sk *SecretKey) CopyNew() *SecretKey {
	return &SecretKey{R2: sk.R2.CopyNew()}
}

// BinarySize returns the serialized size of the object in bytes.
func (sk *SecretKey) BinarySize() int {
	return polyBinarySize(sk.R2)
}

// WriteTo writes the object on an io.Writer.
func (sk *SecretKey) WriteTo(w io.Writer) (n int64, err error) {
	return writePolys(w, sk.R2)
}

// ReadFrom reads on the object from an io.Reader.
func (sk *SecretKey) ReadFrom(r io.Reader) (n int64, err error) {
	sk.R2 = zzx.NewPoly()
	return readPolys(r, sk.R2)
}

// MarshalBinary encodes the object into a binary form on a newly allocated slice of bytes.
func (sk *SecretKey) MarshalBinary() (p []byte, err error) {
	buf := buffer.NewBufferSize(sk.BinarySize())
	_, err = sk.WriteTo(buf)
	return buf.Bytes(), err
}

// UnmarshalBinary decodes a slice of bytes generated by
// MarshalBinary or WriteTo on the object.
func (sk *SecretKey) UnmarshalBinary(p []byte) (err error) {
	_, err = sk.ReadFrom(buffer.NewBuffer(p))
	return
}

// Equal performs a deep equal.
func (pk *PublicKey) Equal(other *PublicKey) bool {
	return pk.A.Equal(other.A) && pk.P1.Equal(other.P1)
}

// CopyNew creates a deep copy of the receiver public key and returns it.
func (pk *PublicKey) CopyNew() *PublicKey {
	return &PublicKey{A: pk.A.CopyNew(), P1: pk.P1.CopyNew()}
}

// BinarySize returns the serialized size of the object in bytes.
func (pk *PublicKey) BinarySize() int {
	return polyBinarySize(pk.A, pk.P1)
}

// WriteTo writes the object on an io.Writer.
func (pk *PublicKey) WriteTo(w io.Writer) (n int64, err error) {
	return writePolys(w, pk.A, pk.P1)
}

// ReadFrom reads on the object from an io.Reader.
func (pk *PublicKey) ReadFrom(r io.Reader) (n int64, err error) {
	pk.A, pk.P1 = zzx.NewPoly(), zzx.NewPoly()
	return readPolys(r, pk.A, pk.P1)
}

// MarshalBinary encodes the object into a binary form on a newly allocated slice of bytes.
func (pk *PublicKey) MarshalBinary() (p []byte, err error) {
	buf := buffer.NewBufferSize(pk.BinarySize())
	_, err = pk.WriteTo(buf)
	return buf.Bytes(), err
}

// UnmarshalBinary decodes a slice of bytes generated by
// MarshalBinary or WriteTo on the object.
func (pk *PublicKey) UnmarshalBinary(p []byte) (err error) {
	_, err = pk.ReadFrom(buffer.NewBuffer(p))
	return
}
