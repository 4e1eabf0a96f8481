package rlwe

import (
	"fmt"
)

// Decryptor is a structure used to decrypt ciphertexts with a secret key.
type Decryptor struct {
	params Parameters
	sk     *SecretKey
}

// NewDecryptor instantiates a new Decryptor.
func NewDecryptor(params Parameters, sk *SecretKey) *Decryptor {
	return &Decryptor{params: params, sk: sk}
}

// DecryptNew decrypts the ciphertext on a new plaintext: c1*r2 + c2 mod (F, Q).
// The a*e1*r2 terms cancel and the result is m + e1*r1 + e2*r2 + e3.
func (dec *Decryptor) DecryptNew(ct *Ciphertext) (pt *Plaintext, err error) {

	ring := dec.params.Modulus()

	m, err := ring.MulMod(ct.C1, dec.sk.R2)
	if err != nil {
		return nil, fmt.Errorf("cannot DecryptNew: %w", err)
	}

	if m, err = ring.Add(m, ct.C2); err != nil {
		return nil, fmt.Errorf("cannot DecryptNew: %w", err)
	}

	return &Plaintext{Value: m}, nil
}
