package zzx

import (
	"math/big"
)

// karatsubaThreshold is the operand length under which the Karatsuba
// recursion switches to the schoolbook convolution.
const karatsubaThreshold = 16

// mulKaratsuba returns the convolution of a and b.
// The result has len(a)+len(b)-1 coefficients and is not normalized.
func mulKaratsuba(a, b []*big.Int) []*big.Int {

	if len(a) == 0 || len(b) == 0 {
		return nil
	}

	if len(a) < len(b) {
		a, b = b, a
	}

	la, lb := len(a), len(b)

	if lb < karatsubaThreshold {
		return mulSchoolbook(a, b)
	}

	m := (la + 1) >> 1

	c := zeroVec(la + lb - 1)

	// Unbalanced operands: a is cut in chunks of the size of b.
	if lb <= m {
		for i := 0; i < la; i += lb {
			end := i + lb
			if end > la {
				end = la
			}
			addInto(c, i, mulKaratsuba(a[i:end], b))
		}
		return c
	}

	a0, a1 := a[:m], a[m:]
	b0, b1 := b[:m], b[m:]

	z0 := mulKaratsuba(a0, b0)
	z2 := mulKaratsuba(a1, b1)

	// (a0 + a1)(b0 + b1) - z0 - z2 = a0b1 + a1b0
	z1 := mulKaratsuba(addVec(a0, a1), addVec(b0, b1))
	subInto(z1, 0, z0)
	subInto(z1, 0, z2)

	addInto(c, 0, z0)
	addInto(c, m, z1)
	addInto(c, m<<1, z2)

	return c
}

// sqrKaratsuba returns a^2.
// The result has 2*len(a)-1 coefficients and is not normalized.
func sqrKaratsuba(a []*big.Int) []*big.Int {

	la := len(a)

	if la == 0 {
		return nil
	}

	if la < karatsubaThreshold {
		return sqrSchoolbook(a)
	}

	m := (la + 1) >> 1

	a0, a1 := a[:m], a[m:]

	z0 := sqrKaratsuba(a0)
	z2 := sqrKaratsuba(a1)

	z1 := sqrKaratsuba(addVec(a0, a1))
	subInto(z1, 0, z0)
	subInto(z1, 0, z2)

	c := zeroVec(2*la - 1)
	addInto(c, 0, z0)
	addInto(c, m, z1)
	addInto(c, m<<1, z2)

	return c
}
