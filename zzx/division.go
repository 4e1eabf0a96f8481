package zzx

import (
	"fmt"
	"math/big"
	"math/bits"

	"github.com/tuneinsight/zzring/utils/bignum"
)

// PseudoDivRem returns q, r and k such that lc(b)^k * a = q*b + r with deg(r) < deg(b).
// k = deg(a) - deg(b) + 1 if deg(a) >= deg(b), otherwise k = 0, q = 0 and r = a.
// Returns ErrDivisionByZero if b is zero.
func PseudoDivRem(a, b *Poly) (q, r *Poly, k int, err error) {

	if b.IsZero() {
		return nil, nil, 0, fmt.Errorf("cannot PseudoDivRem: %w", ErrDivisionByZero)
	}

	da, db := a.Degree(), b.Degree()

	if da < db {
		return NewPoly(), a.CopyNew(), 0, nil
	}

	dq := da - db

	LC := b.lc()
	lcIsOne := bignum.IsOne(LC)

	// lcPow[i] = LC^i
	lcPow := make([]*big.Int, dq+1)
	lcPow[0] = big.NewInt(1)
	for i := 1; i <= dq; i++ {
		lcPow[i] = new(big.Int).Mul(lcPow[i-1], LC)
	}

	u := copyCoeffs(a.Coeffs)
	qCoeffs := make([]*big.Int, dq+1)

	s := new(big.Int)
	for i := dq; i >= 0; i-- {

		t := u[db+i]

		qCoeffs[i] = new(big.Int).Mul(t, lcPow[i])

		// The coefficients below X^i are only scaled by LC.
		lo := i
		if !lcIsOne {
			lo = 0
		}

		for j := db + i - 1; j >= lo; j-- {

			if !lcIsOne {
				u[j].Mul(u[j], LC)
			}

			if j >= i {
				u[j].Sub(u[j], s.Mul(t, b.Coeffs[j-i]))
			}
		}
	}

	return newPolyFromSlice(qCoeffs), newPolyFromSlice(u[:db]), dq + 1, nil
}

// PseudoRem returns the pseudo-remainder r of PseudoDivRem.
func PseudoRem(a, b *Poly) (r *Poly, err error) {
	if _, r, _, err = PseudoDivRem(a, b); err != nil {
		return nil, fmt.Errorf("cannot PseudoRem: %w", err)
	}
	return
}

// Rem returns the remainder r of the division of a by b over the integers,
// i.e. a = q*b + r with q in Z[X] and deg(r) < deg(b).
// Returns ErrDivisionByZero if b is zero and ErrNotIntegral if such q and r do not exist.
func Rem(a, b *Poly) (r *Poly, err error) {

	if b.IsZero() {
		return nil, fmt.Errorf("cannot Rem: %w", ErrDivisionByZero)
	}

	if a.Degree() < b.Degree() {
		return a.CopyNew(), nil
	}

	LC := b.lc()

	switch {
	case b.Degree() == 0:

		if _, ok := DivideByInt(a, LC); !ok {
			return nil, fmt.Errorf("cannot Rem: %w: constant divisor %s", ErrNotIntegral, LC)
		}

		return NewPoly(), nil

	case bignum.IsOne(LC):

		return PseudoRem(a, b)

	case bignum.IsMinusOne(LC):

		return PseudoRem(a, Neg(b))

	default:

		if _, ok := Divide(a, b); ok {
			return NewPoly(), nil
		}

		var k int
		if _, r, k, err = PseudoDivRem(a, b); err != nil {
			return nil, fmt.Errorf("cannot Rem: %w", err)
		}

		scale := new(big.Int).Exp(LC, big.NewInt(int64(k)), nil)

		if r, ok := DivideByInt(r, scale); ok {
			return r, nil
		}

		return nil, fmt.Errorf("cannot Rem: %w: pseudo-remainder is not divisible by lc(b)^%d", ErrNotIntegral, k)
	}
}

// Divide returns q and true if b divides a, i.e. a = q*b, and false otherwise.
// The contents are divided separately and the primitive parts with a
// schoolbook division that rejects as soon as a quotient coefficient
// exceeds the size bound of a factor of a.
// Divide(0, b) is (0, true) for any b, and Divide(a, 0) is false for a nonzero a.
func Divide(a, b *Poly) (q *Poly, ok bool) {

	if a.IsZero() {
		return NewPoly(), true
	}

	if b.IsZero() || a.Degree() < b.Degree() {
		return nil, false
	}

	ca, pa := contentAndPrimitivePart(a)
	cb, pb := contentAndPrimitivePart(b)

	qc := new(big.Int)
	if !bignum.QuoExact(ca, cb, qc) {
		return nil, false
	}

	if q, ok = divideBounded(pa, pb); !ok {
		return nil, false
	}

	if !bignum.IsOne(qc) {
		for i := range q.Coeffs {
			q.Coeffs[i].Mul(q.Coeffs[i], qc)
		}
	}

	return q, true
}

// DivideByInt returns a/c and true if c divides every coefficient of a, and false otherwise.
func DivideByInt(a *Poly, c *big.Int) (q *Poly, ok bool) {

	if a.IsZero() {
		return NewPoly(), true
	}

	coeffs := make([]*big.Int, len(a.Coeffs))
	for i, ai := range a.Coeffs {
		coeffs[i] = new(big.Int)
		if !bignum.QuoExact(ai, c, coeffs[i]) {
			return nil, false
		}
	}

	return &Poly{Coeffs: coeffs}, true
}

// divideBounded is the exact schoolbook division of a by b.
// Any factor of a has its coefficients bounded by ||a||_2 * 2^deg(q) (Mignotte),
// hence a larger quotient coefficient proves that b does not divide a.
func divideBounded(a, b *Poly) (q *Poly, ok bool) {

	da, db := a.Degree(), b.Degree()
	dq := da - db

	bound := a.MaxBits() + (bits.Len(uint(da+1))+1)/2 + dq

	LC := b.lc()

	u := copyCoeffs(a.Coeffs)
	qCoeffs := make([]*big.Int, dq+1)

	s := new(big.Int)
	for i := dq; i >= 0; i-- {

		qi := new(big.Int)
		if !bignum.QuoExact(u[db+i], LC, qi) || qi.BitLen() > bound {
			return nil, false
		}

		qCoeffs[i] = qi

		if qi.Sign() == 0 {
			continue
		}

		for j := 0; j < db; j++ {
			u[i+j].Sub(u[i+j], s.Mul(qi, b.Coeffs[j]))
		}
	}

	for _, ui := range u[:db] {
		if ui.Sign() != 0 {
			return nil, false
		}
	}

	return newPolyFromSlice(qCoeffs), true
}
