package zzx

import (
	"math/big"

	"github.com/tuneinsight/zzring/utils"
)

// mulSchoolbook returns the convolution of a and b:
// c[i] = sum_{j=max(0, i-db)}^{min(da, i)} a[j] * b[i-j].
// The result has len(a)+len(b)-1 coefficients and is not normalized.
func mulSchoolbook(a, b []*big.Int) []*big.Int {

	if len(a) == 0 || len(b) == 0 {
		return nil
	}

	da, db := len(a)-1, len(b)-1

	c := make([]*big.Int, da+db+1)

	t := new(big.Int)
	for i := range c {
		accum := new(big.Int)
		for j := utils.Max(0, i-db); j <= utils.Min(da, i); j++ {
			accum.Add(accum, t.Mul(a[j], b[i-j]))
		}
		c[i] = accum
	}

	return c
}

// sqrSchoolbook returns a^2 with half of the cross products:
// each off-diagonal product a[j]*a[i-j] is computed once and doubled,
// and the diagonal term a[i/2]^2 is added once.
// The result has 2*len(a)-1 coefficients and is not normalized.
func sqrSchoolbook(a []*big.Int) []*big.Int {

	if len(a) == 0 {
		return nil
	}

	da := len(a) - 1

	c := make([]*big.Int, 2*da+1)

	t := new(big.Int)
	for i := range c {

		jMin := utils.Max(0, i-da)
		jMax := utils.Min(i, da)

		m := jMax - jMin + 1
		jMax = jMin + m>>1 - 1

		accum := new(big.Int)
		for j := jMin; j <= jMax; j++ {
			accum.Add(accum, t.Mul(a[j], a[i-j]))
		}

		accum.Lsh(accum, 1)

		if m&1 == 1 {
			accum.Add(accum, t.Mul(a[jMax+1], a[jMax+1]))
		}

		c[i] = accum
	}

	return c
}
