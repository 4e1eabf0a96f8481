package zzx

import (
	"math/big"
	"math/bits"

	"github.com/tuneinsight/zzring/ring"
	"github.com/tuneinsight/zzring/utils"
)

// crtPrimeBits is the bit-size of the NTT primes of the multi-modular multiplication.
// Each prime is larger than 2^(crtPrimeBits-1).
const crtPrimeBits = ring.MaxModulusBits

// mulContentCRT returns a*b as content(a)*content(b)*(pp(a)*pp(b)),
// where the product of the primitive parts is computed modulo word-size primes.
func mulContentCRT(a, b *Poly) *Poly {

	ca, pa := contentAndPrimitivePart(a)
	cb, pb := contentAndPrimitivePart(b)

	boundBits := pa.MaxBits() + pb.MaxBits() + bits.Len(uint(utils.Min(len(pa.Coeffs), len(pb.Coeffs))))

	c := mulCRT(pa.Coeffs, pb.Coeffs, boundBits)

	scale := new(big.Int).Mul(ca, cb)
	for i := range c {
		c[i].Mul(c[i], scale)
	}

	return newPolyFromSlice(c)
}

// sqrContentCRT returns a^2 as content(a)^2*pp(a)^2.
func sqrContentCRT(a *Poly) *Poly {

	ca, pa := contentAndPrimitivePart(a)

	boundBits := pa.MaxBits()<<1 + bits.Len(uint(len(pa.Coeffs)))

	c := mulCRT(pa.Coeffs, pa.Coeffs, boundBits)

	scale := new(big.Int).Mul(ca, ca)
	for i := range c {
		c[i].Mul(c[i], scale)
	}

	return newPolyFromSlice(c)
}

// mulCRT returns the convolution of a and b, whose coefficients are assumed
// to be bounded in absolute value by 2^boundBits.
// The convolution is computed with a cyclic NTT of size N >= len(a)+len(b)-1
// modulo enough primes for their product P to satisfy P > 2^(boundBits+1),
// and the coefficients are lifted to the centered residues of (-P/2, P/2].
// If the primes cannot be generated, it falls back to the Karatsuba multiplication.
func mulCRT(a, b []*big.Int, boundBits int) []*big.Int {

	n := len(a) + len(b) - 1
	N := utils.NextPowerOfTwo(n)

	nbPrimes := (boundBits + crtPrimeBits - 1) / (crtPrimeBits - 1)

	primes, err := ring.GenerateNTTPrimes(crtPrimeBits, N, nbPrimes)
	if err != nil {
		return mulKaratsuba(a, b)
	}

	residues := make([][]uint64, len(primes))

	for k, q := range primes {

		table, err := ring.NewNTTTable(q, N)
		if err != nil {
			return mulKaratsuba(a, b)
		}

		pa := reduceVec(a, q, N)
		pb := reduceVec(b, q, N)

		table.Forward(pa)
		table.Forward(pb)
		table.MulCoeffs(pa, pb, pa)
		table.Backward(pa)

		residues[k] = pa[:n]
	}

	return reconstructCRT(residues, primes)
}

// reduceVec returns the coefficients of a modulo q, zero padded to size N.
func reduceVec(a []*big.Int, q uint64, N int) []uint64 {
	out := make([]uint64, N)
	Q := new(big.Int).SetUint64(q)
	t := new(big.Int)
	for i, c := range a {
		out[i] = t.Mod(c, Q).Uint64()
	}
	return out
}

// reconstructCRT returns, for each i, the centered integer x such that
// x = residues[k][i] mod primes[k] for all k.
func reconstructCRT(residues [][]uint64, primes []uint64) []*big.Int {

	P := big.NewInt(1)
	for _, q := range primes {
		P.Mul(P, new(big.Int).SetUint64(q))
	}

	halfP := new(big.Int).Rsh(P, 1)

	// Mk = P/pk and yk = Mk^-1 mod pk
	Mk := make([]*big.Int, len(primes))
	yk := make([]*big.Int, len(primes))
	for k, q := range primes {
		Q := new(big.Int).SetUint64(q)
		Mk[k] = new(big.Int).Quo(P, Q)
		yk[k] = new(big.Int).ModInverse(new(big.Int).Mod(Mk[k], Q), Q)
	}

	n := len(residues[0])
	c := make([]*big.Int, n)

	t := new(big.Int)
	for i := 0; i < n; i++ {

		x := new(big.Int)

		for k, q := range primes {
			Q := t.SetUint64(q)
			r := new(big.Int).SetUint64(residues[k][i])
			r.Mul(r, yk[k])
			r.Mod(r, Q)
			r.Mul(r, Mk[k])
			x.Add(x, r)
		}

		x.Mod(x, P)

		if x.Cmp(halfP) > 0 {
			x.Sub(x, P)
		}

		c[i] = x
	}

	return c
}
