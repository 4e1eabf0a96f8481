package zzx

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tuneinsight/zzring/utils/bignum"
	"github.com/tuneinsight/zzring/utils/sampling"
)

func testString(opname string, deg, logBound int) string {
	return fmt.Sprintf("%s/deg=%d/logBound=%d", opname, deg, logBound)
}

// newTestPRNG returns a deterministic PRNG for reproducible tests.
func newTestPRNG(t testing.TB) sampling.PRNG {
	prng, err := sampling.NewKeyedPRNG([]byte{'z', 'z', 'x'})
	require.NoError(t, err)
	return prng
}

// randPoly returns a polynomial of degree exactly deg with coefficients
// uniform in (-2^logBound, 2^logBound).
func randPoly(prng sampling.PRNG, deg, logBound int) *Poly {

	if deg < 0 {
		return NewPoly()
	}

	bound := new(big.Int).Lsh(big.NewInt(1), uint(logBound+1))
	half := new(big.Int).Lsh(big.NewInt(1), uint(logBound))

	coeffs := make([]*big.Int, deg+1)
	for i := range coeffs {
		coeffs[i] = bignum.RandInt(prng, bound)
		coeffs[i].Sub(coeffs[i], half)
	}

	if coeffs[deg].Sign() == 0 {
		coeffs[deg].SetInt64(1)
	}

	return &Poly{Coeffs: coeffs}
}

// requireNormalized asserts the representation invariant of p.
func requireNormalized(t *testing.T, p *Poly) {
	if len(p.Coeffs) > 0 {
		require.NotNil(t, p.lc())
		require.NotZero(t, p.lc().Sign(), "leading coefficient is zero: %v", p)
	}
	for i, c := range p.Coeffs {
		require.NotNil(t, c, "nil coefficient at index %d", i)
	}
}
