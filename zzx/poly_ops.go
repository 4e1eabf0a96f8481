package zzx

import (
	"fmt"
	"math/big"

	"github.com/tuneinsight/zzring/utils"
)

// Trunc returns a mod X^m.
// It panics if m is negative.
func Trunc(a *Poly, m int) *Poly {
	if m < 0 {
		panic(fmt.Sprintf("cannot Trunc: negative length %d", m))
	}
	n := utils.Min(m, len(a.Coeffs))
	return newPolyFromSlice(copyCoeffs(a.Coeffs[:n]))
}

// LeftShift returns a * X^n.
// A negative n is a right shift by -n.
func LeftShift(a *Poly, n int) *Poly {

	if a.IsZero() {
		return NewPoly()
	}

	if n < 0 {
		return RightShift(a, -n)
	}

	coeffs := make([]*big.Int, len(a.Coeffs)+n)
	for i := 0; i < n; i++ {
		coeffs[i] = new(big.Int)
	}
	for i, c := range a.Coeffs {
		coeffs[i+n] = new(big.Int).Set(c)
	}

	return &Poly{Coeffs: coeffs}
}

// RightShift returns a / X^n, i.e. the quotient of a by X^n.
// A negative n is a left shift by -n.
func RightShift(a *Poly, n int) *Poly {

	if a.IsZero() {
		return NewPoly()
	}

	if n < 0 {
		return LeftShift(a, -n)
	}

	if a.Degree() < n {
		return NewPoly()
	}

	return newPolyFromSlice(copyCoeffs(a.Coeffs[n:]))
}

// Add returns a + b.
func Add(a, b *Poly) *Poly {
	return newPolyFromSlice(addVec(a.Coeffs, b.Coeffs))
}

// Sub returns a - b.
func Sub(a, b *Poly) *Poly {
	return newPolyFromSlice(subVec(a.Coeffs, b.Coeffs))
}

// Neg returns -a.
func Neg(a *Poly) *Poly {
	coeffs := make([]*big.Int, len(a.Coeffs))
	for i, c := range a.Coeffs {
		coeffs[i] = new(big.Int).Neg(c)
	}
	return &Poly{Coeffs: coeffs}
}

// MulByInt returns c * a.
func MulByInt(a *Poly, c *big.Int) *Poly {
	if c.Sign() == 0 {
		return NewPoly()
	}
	coeffs := make([]*big.Int, len(a.Coeffs))
	for i, ai := range a.Coeffs {
		coeffs[i] = new(big.Int).Mul(ai, c)
	}
	return &Poly{Coeffs: coeffs}
}

// Diff returns the formal derivative of a.
func Diff(a *Poly) *Poly {

	if a.Degree() <= 0 {
		return NewPoly()
	}

	coeffs := make([]*big.Int, a.Degree())
	for i := range coeffs {
		coeffs[i] = new(big.Int).Mul(a.Coeffs[i+1], big.NewInt(int64(i+1)))
	}

	return newPolyFromSlice(coeffs)
}

// addVec returns the coefficient-wise sum of a and b, zero-extending the shorter one.
func addVec(a, b []*big.Int) []*big.Int {
	if len(a) < len(b) {
		a, b = b, a
	}
	out := make([]*big.Int, len(a))
	for i := range b {
		out[i] = new(big.Int).Add(a[i], b[i])
	}
	for i := len(b); i < len(a); i++ {
		out[i] = new(big.Int).Set(a[i])
	}
	return out
}

// subVec returns the coefficient-wise difference a - b, zero-extending the shorter one.
func subVec(a, b []*big.Int) []*big.Int {
	n := utils.Max(len(a), len(b))
	out := make([]*big.Int, n)
	for i := range out {
		switch {
		case i < len(a) && i < len(b):
			out[i] = new(big.Int).Sub(a[i], b[i])
		case i < len(a):
			out[i] = new(big.Int).Set(a[i])
		default:
			out[i] = new(big.Int).Neg(b[i])
		}
	}
	return out
}

// addInto adds b to a[offset:] in place. a must be long enough.
func addInto(a []*big.Int, offset int, b []*big.Int) {
	for i, c := range b {
		a[offset+i].Add(a[offset+i], c)
	}
}

// subInto subtracts b from a[offset:] in place. a must be long enough.
func subInto(a []*big.Int, offset int, b []*big.Int) {
	for i, c := range b {
		a[offset+i].Sub(a[offset+i], c)
	}
}

// zeroVec allocates n zero coefficients.
func zeroVec(n int) []*big.Int {
	out := make([]*big.Int, n)
	for i := range out {
		out[i] = new(big.Int)
	}
	return out
}
