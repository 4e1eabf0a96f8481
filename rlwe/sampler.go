package rlwe

import (
	"io"
	"math/big"

	"github.com/tuneinsight/zzring/gaussian"
	"github.com/tuneinsight/zzring/utils/bignum"
	"github.com/tuneinsight/zzring/utils/sampling"
	"github.com/tuneinsight/zzring/zzx"
	"github.com/zeebo/blake3"
)

// NoiseSampler samples polynomials of degree smaller than P with coefficients
// drawn from the error distribution of the parameters.
// A NoiseSampler is not thread safe.
type NoiseSampler struct {
	params  Parameters
	sampler *gaussian.Sampler
}

// NewNoiseSampler creates a new NoiseSampler drawing its randomness from prng.
func NewNoiseSampler(params Parameters, prng sampling.PRNG) *NoiseSampler {
	return &NoiseSampler{
		params:  params,
		sampler: gaussian.NewSamplerFromTable(params.GaussianTable(), sampling.NewSource(prng)),
	}
}

// ReadNew returns a new noise polynomial, with signed coefficients in
// (center-bound, center+bound).
func (s *NoiseSampler) ReadNew() *zzx.Poly {

	samples := make([]int64, s.params.P())
	s.sampler.Read(samples)

	return zzx.NewPolyFromCoeffs(samples)
}

// NewPublicElement returns a polynomial of degree smaller than P with
// coefficients uniform in [0, Q), drawn from prng.
func NewPublicElement(params Parameters, prng sampling.PRNG) *zzx.Poly {
	return uniformPoly(params, prng)
}

// NewPublicElementFromSeed expands a seed into a polynomial of degree smaller
// than P with coefficients uniform in [0, Q), using the blake3 XOF.
// The same seed always yields the same polynomial, so that the public element
// can be shared as a seed.
func NewPublicElementFromSeed(params Parameters, seed []byte) *zzx.Poly {
	hasher := blake3.New()
	hasher.Write(seed)
	return uniformPoly(params, hasher.Digest())
}

func uniformPoly(params Parameters, reader io.Reader) *zzx.Poly {
	Q := params.Modulus().Q
	coeffs := make([]*big.Int, params.P())
	for i := range coeffs {
		coeffs[i] = bignum.RandInt(reader, Q)
	}
	return zzx.NewPolyFromCoeffs(coeffs)
}
