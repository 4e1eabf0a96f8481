package rlwe

import (
	"bufio"
	"fmt"
	"io"

	"github.com/tuneinsight/zzring/utils/buffer"
	"github.com/tuneinsight/zzring/zzx"
)

// polyBinarySize returns the serialized size of a list of polynomials.
func polyBinarySize(polys ...*zzx.Poly) (size int) {
	for _, p := range polys {
		size += p.BinarySize()
	}
	return
}

// writePolys writes the polynomials on w, in order.
func writePolys(w io.Writer, polys ...*zzx.Poly) (n int64, err error) {

	switch w := w.(type) {
	case buffer.Writer:

		for _, p := range polys {

			if p == nil {
				return n, fmt.Errorf("cannot WriteTo: polynomial is nil")
			}

			var inc int64
			if inc, err = p.WriteTo(w); err != nil {
				return n + inc, err
			}

			n += inc
		}

		return n, w.Flush()

	default:
		return writePolys(bufio.NewWriter(w), polys...)
	}
}

// readPolys reads the polynomials from r, in order.
func readPolys(r io.Reader, polys ...*zzx.Poly) (n int64, err error) {

	switch r := r.(type) {
	case buffer.Reader:

		for _, p := range polys {

			var inc int64
			if inc, err = p.ReadFrom(r); err != nil {
				return n + inc, err
			}

			n += inc
		}

		return

	default:
		return readPolys(bufio.NewReader(r), polys...)
	}
}

// checkRingElement returns an error if a is not an element of Z_Q[X]/(F)
// in its canonical representation.
func checkRingElement(params Parameters, a *zzx.Poly) error {

	if a == nil {
		return fmt.Errorf("polynomial is nil")
	}

	if a.Degree() >= params.P() {
		return fmt.Errorf("polynomial degree %d is not smaller than P=%d", a.Degree(), params.P())
	}

	Q := params.Modulus().Q
	for i, c := range a.Coeffs {
		if c.Sign() < 0 || c.Cmp(Q) >= 0 {
			return fmt.Errorf("coefficient %d is not in [0, Q)", i)
		}
	}

	return nil
}
