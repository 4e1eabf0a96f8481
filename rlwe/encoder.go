package rlwe

import (
	"fmt"
	"math/big"

	"github.com/tuneinsight/zzring/utils/bignum"
	"github.com/tuneinsight/zzring/zzx"
)

// Encoder maps bit messages of length at most P to plaintexts:
// the bit b is encoded as the coefficient b*(Q-1)/2.
type Encoder struct {
	params Parameters
	scale  *big.Int // (Q-1)/2
	lower  *big.Int // round((Q-1)/4)
	upper  *big.Int // round((3Q-1)/4)
}

// NewEncoder creates a new Encoder.
func NewEncoder(params Parameters) *Encoder {

	Q := params.Modulus().Q
	qm1 := new(big.Int).Sub(Q, big.NewInt(1))

	lower, upper := new(big.Int), new(big.Int)
	bignum.DivRound(qm1, big.NewInt(4), lower)
	bignum.DivRound(new(big.Int).Sub(new(big.Int).Mul(Q, big.NewInt(3)), big.NewInt(1)), big.NewInt(4), upper)

	return &Encoder{
		params: params,
		scale:  new(big.Int).Rsh(qm1, 1),
		lower:  lower,
		upper:  upper,
	}
}

// EncodeNew encodes the bits on a new plaintext.
// Returns an error if len(bits) > P or if a value is not 0 or 1.
func (ecd *Encoder) EncodeNew(bits []uint64) (pt *Plaintext, err error) {

	if len(bits) > ecd.params.P() {
		return nil, fmt.Errorf("cannot EncodeNew: len(bits)=%d > P=%d", len(bits), ecd.params.P())
	}

	coeffs := make([]*big.Int, len(bits))
	for i, b := range bits {
		if b > 1 {
			return nil, fmt.Errorf("cannot EncodeNew: bits[%d]=%d is not a bit", i, b)
		}
		coeffs[i] = new(big.Int).Mul(ecd.scale, new(big.Int).SetUint64(b))
	}

	return &Plaintext{Value: zzx.NewPolyFromCoeffs(coeffs)}, nil
}

// Decode decodes the first len(bits) coefficients of the plaintext on bits:
// the coefficient c is decoded as 1 if it is closer to (Q-1)/2 than to 0 modulo Q,
// that is round((Q-1)/4) <= c < round((3Q-1)/4), and as 0 otherwise.
func (ecd *Encoder) Decode(pt *Plaintext, bits []uint64) {
	for i := range bits {
		c := pt.Value.Coeff(i)
		if c.Cmp(ecd.lower) >= 0 && c.Cmp(ecd.upper) < 0 {
			bits[i] = 1
		} else {
			bits[i] = 0
		}
	}
}
