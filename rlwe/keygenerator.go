package rlwe

import (
	"fmt"

	"github.com/tuneinsight/zzring/utils/sampling"
	"github.com/tuneinsight/zzring/zzx"
)

// KeyGenerator is a structure that stores the elements required to create new keys.
type KeyGenerator struct {
	params Parameters
	noise  *NoiseSampler
}

// NewKeyGenerator creates a new KeyGenerator, from which the secret and public keys can be generated.
// The noise of the keys is drawn from prng.
func NewKeyGenerator(params Parameters, prng sampling.PRNG) *KeyGenerator {
	return &KeyGenerator{
		params: params,
		noise:  NewNoiseSampler(params, prng),
	}
}

// PolySampling returns a new noise polynomial.
func (kgen *KeyGenerator) PolySampling() *zzx.Poly {
	return kgen.noise.ReadNew()
}

// GenKeyPairNew generates a new key pair from the public element a:
// the secret key r2 and the public key (a, p1 = r1 - a*r2 mod (F, Q)),
// r1 and r2 being noise polynomials.
func (kgen *KeyGenerator) GenKeyPairNew(a *zzx.Poly) (sk *SecretKey, pk *PublicKey, err error) {

	if err = checkRingElement(kgen.params, a); err != nil {
		return nil, nil, fmt.Errorf("cannot GenKeyPairNew: invalid public element: %w", err)
	}

	r1 := kgen.PolySampling()
	r2 := kgen.PolySampling()

	ring := kgen.params.Modulus()

	ar2, err := ring.MulMod(a, r2)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot GenKeyPairNew: %w", err)
	}

	p1, err := ring.Sub(r1, ar2)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot GenKeyPairNew: %w", err)
	}

	return &SecretKey{R2: r2}, &PublicKey{A: a.CopyNew(), P1: p1}, nil
}
