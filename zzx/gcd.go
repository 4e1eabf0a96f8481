package zzx

import (
	"math/big"
)

// Content returns the GCD of the coefficients of f, with the sign of the
// leading coefficient of f. The content of the zero polynomial is zero.
func Content(f *Poly) *big.Int {

	c := new(big.Int)

	for _, fi := range f.Coeffs {
		c.GCD(nil, nil, c, new(big.Int).Abs(fi))
		if c.BitLen() == 1 {
			break
		}
	}

	if !f.IsZero() && f.lc().Sign() < 0 {
		c.Neg(c)
	}

	return c
}

// PrimitivePart returns f divided by its content, which has a positive
// leading coefficient. The primitive part of the zero polynomial is zero.
func PrimitivePart(f *Poly) *Poly {
	_, pp := contentAndPrimitivePart(f)
	return pp
}

func contentAndPrimitivePart(f *Poly) (c *big.Int, pp *Poly) {

	c = Content(f)

	if f.IsZero() {
		return c, NewPoly()
	}

	coeffs := make([]*big.Int, len(f.Coeffs))
	for i, fi := range f.Coeffs {
		coeffs[i] = new(big.Int).Quo(fi, c)
	}

	return c, &Poly{Coeffs: coeffs}
}

// GCD returns the greatest common divisor of a and b, with a non-negative
// leading coefficient. It is computed with a primitive pseudo-remainder
// sequence on the primitive parts, and multiplied by the GCD of the contents.
// If one of the operands is zero, the primitive part of the other is returned.
func GCD(a, b *Poly) *Poly {

	if a.IsZero() {
		return PrimitivePart(b)
	}

	if b.IsZero() {
		return PrimitivePart(a)
	}

	ca, f := contentAndPrimitivePart(a)
	cb, g := contentAndPrimitivePart(b)

	c := new(big.Int).GCD(nil, nil, new(big.Int).Abs(ca), new(big.Int).Abs(cb))

	if f.Degree() < g.Degree() {
		f, g = g, f
	}

	for {

		r, err := PseudoRem(f, g)

		// g is never zero
		if err != nil {
			panic(err)
		}

		if r.IsZero() {
			break
		}

		if r.Degree() == 0 {
			g = NewPolyFromInt64(1)
			break
		}

		f, g = g, PrimitivePart(r)
	}

	return MulByInt(g, c)
}
