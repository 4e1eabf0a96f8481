package rlwe

import (
	"fmt"

	"github.com/tuneinsight/zzring/utils/sampling"
)

// Encryptor is a type for encrypting plaintexts under a public key.
type Encryptor struct {
	params Parameters
	pk     *PublicKey
	noise  *NoiseSampler
}

// NewEncryptor creates a new Encryptor under the public key pk.
// The noise of the encryptions is drawn from prng.
func NewEncryptor(params Parameters, pk *PublicKey, prng sampling.PRNG) *Encryptor {
	return &Encryptor{
		params: params,
		pk:     pk,
		noise:  NewNoiseSampler(params, prng),
	}
}

// EncryptNew encrypts the plaintext m on a new ciphertext:
// c1 = a*e1 + e2 and c2 = p1*e1 + e3 + m mod (F, Q), with e1, e2 and e3 noise polynomials.
func (enc *Encryptor) EncryptNew(pt *Plaintext) (ct *Ciphertext, err error) {

	if err = checkRingElement(enc.params, pt.Value); err != nil {
		return nil, fmt.Errorf("cannot EncryptNew: invalid plaintext: %w", err)
	}

	ring := enc.params.Modulus()

	e1 := enc.noise.ReadNew()
	e2 := enc.noise.ReadNew()
	e3 := enc.noise.ReadNew()

	c1, err := ring.MulMod(enc.pk.A, e1)
	if err != nil {
		return nil, fmt.Errorf("cannot EncryptNew: %w", err)
	}

	if c1, err = ring.Add(c1, e2); err != nil {
		return nil, fmt.Errorf("cannot EncryptNew: %w", err)
	}

	c2, err := ring.MulMod(enc.pk.P1, e1)
	if err != nil {
		return nil, fmt.Errorf("cannot EncryptNew: %w", err)
	}

	if c2, err = ring.Add(c2, e3); err != nil {
		return nil, fmt.Errorf("cannot EncryptNew: %w", err)
	}

	if c2, err = ring.Add(c2, pt.Value); err != nil {
		return nil, fmt.Errorf("cannot EncryptNew: %w", err)
	}

	return &Ciphertext{C1: c1, C2: c2}, nil
}
