package zzx

import (
	"math/big"
	"math/bits"

	"github.com/tuneinsight/zzring/utils"
)

// mulKronecker returns the convolution of a and b by Kronecker substitution:
// the coefficients are packed into a single integer, evaluating the polynomial
// at 2^(8*slot), and the product integer is unpacked slot by slot.
// Signed coefficients are handled by splitting each operand into its positive
// and negative parts, a = a+ - a-, so that every packed integer is non-negative:
// a*b = (a+b+ + a-b-) - (a+b- + a-b+).
// The result has len(a)+len(b)-1 coefficients and is not normalized.
func mulKronecker(a, b []*big.Int) []*big.Int {

	if len(a) == 0 || len(b) == 0 {
		return nil
	}

	n := len(a) + len(b) - 1

	slot := kroneckerSlotBytes(maxBitsVec(a)+maxBitsVec(b), utils.Min(len(a), len(b)))

	ap, an := packSigned(a, slot)
	bp, bn := packSigned(b, slot)

	pos := new(big.Int).Mul(ap, bp)
	pos.Add(pos, new(big.Int).Mul(an, bn))

	neg := new(big.Int).Mul(ap, bn)
	neg.Add(neg, new(big.Int).Mul(an, bp))

	return unpackDifference(pos, neg, n, slot)
}

// sqrKronecker returns a^2 by Kronecker substitution:
// a^2 = (a+^2 + a-^2) - 2a+a-.
// The result has 2*len(a)-1 coefficients and is not normalized.
func sqrKronecker(a []*big.Int) []*big.Int {

	if len(a) == 0 {
		return nil
	}

	n := 2*len(a) - 1

	maxBits := maxBitsVec(a)
	slot := kroneckerSlotBytes(maxBits<<1, len(a))

	ap, an := packSigned(a, slot)

	pos := new(big.Int).Mul(ap, ap)
	pos.Add(pos, new(big.Int).Mul(an, an))

	neg := new(big.Int).Mul(ap, an)
	neg.Lsh(neg, 1)

	return unpackDifference(pos, neg, n, slot)
}

// kroneckerSlotBytes returns the byte size of a slot able to hold, without
// carry, a sum of 2*terms products of bit-size at most productBits.
func kroneckerSlotBytes(productBits, terms int) int {
	return (productBits + bits.Len(uint(terms)) + 1 + 7) >> 3
}

// packSigned returns the evaluations at 2^(8*slot) of the positive part and of
// the negated negative part of a.
func packSigned(a []*big.Int, slot int) (pos, neg *big.Int) {

	size := len(a) * slot

	bufPos := make([]byte, size)
	bufNeg := make([]byte, size)

	t := new(big.Int)
	for i, c := range a {

		// Coefficient i occupies the i-th slot from the end (big-endian).
		start := size - (i+1)*slot

		switch c.Sign() {
		case 1:
			c.FillBytes(bufPos[start : start+slot])
		case -1:
			t.Neg(c).FillBytes(bufNeg[start : start+slot])
		}
	}

	return new(big.Int).SetBytes(bufPos), new(big.Int).SetBytes(bufNeg)
}

// unpackDifference returns the n slots of pos minus the n slots of neg.
func unpackDifference(pos, neg *big.Int, n, slot int) []*big.Int {

	size := n * slot

	bufPos := pos.FillBytes(make([]byte, size))
	bufNeg := neg.FillBytes(make([]byte, size))

	c := make([]*big.Int, n)
	t := new(big.Int)
	for i := range c {
		start := size - (i+1)*slot
		c[i] = new(big.Int).SetBytes(bufPos[start : start+slot])
		c[i].Sub(c[i], t.SetBytes(bufNeg[start:start+slot]))
	}

	return c
}

func maxBitsVec(a []*big.Int) (m int) {
	for _, c := range a {
		if b := c.BitLen(); b > m {
			m = b
		}
	}
	return
}
