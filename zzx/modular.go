package zzx

import (
	"fmt"
	"math/big"

	"github.com/tuneinsight/zzring/utils/bignum"
)

// checkMonicModulus returns an error if f is not a monic polynomial of degree at least one.
func checkMonicModulus(f *Poly) error {
	if f.Degree() < 1 {
		return fmt.Errorf("%w: modulus degree %d < 1", ErrBadArguments, f.Degree())
	}
	if !bignum.IsOne(f.lc()) {
		return fmt.Errorf("%w: modulus is not monic", ErrBadArguments)
	}
	return nil
}

// checkReduced returns an error if deg(a) >= deg(f).
func checkReduced(a, f *Poly) error {
	if a.Degree() >= f.Degree() {
		return fmt.Errorf("%w: operand degree %d >= modulus degree %d", ErrBadArguments, a.Degree(), f.Degree())
	}
	return nil
}

// MulMod returns a*b mod f.
// f must be monic of degree at least one and a and b of degree smaller than f,
// otherwise ErrBadArguments is returned.
func MulMod(a, b, f *Poly) (*Poly, error) {

	if err := checkMonicModulus(f); err != nil {
		return nil, fmt.Errorf("cannot MulMod: %w", err)
	}

	if err := checkReduced(a, f); err != nil {
		return nil, fmt.Errorf("cannot MulMod: %w", err)
	}

	if err := checkReduced(b, f); err != nil {
		return nil, fmt.Errorf("cannot MulMod: %w", err)
	}

	return Rem(Mul(a, b), f)
}

// SqrMod returns a^2 mod f, with the same requirements as MulMod.
func SqrMod(a, f *Poly) (*Poly, error) {

	if err := checkMonicModulus(f); err != nil {
		return nil, fmt.Errorf("cannot SqrMod: %w", err)
	}

	if err := checkReduced(a, f); err != nil {
		return nil, fmt.Errorf("cannot SqrMod: %w", err)
	}

	return Rem(Sqr(a), f)
}

// MulByXMod returns a*X mod f, with the same requirements as MulMod.
func MulByXMod(a, f *Poly) (*Poly, error) {

	if err := checkMonicModulus(f); err != nil {
		return nil, fmt.Errorf("cannot MulByXMod: %w", err)
	}

	if err := checkReduced(a, f); err != nil {
		return nil, fmt.Errorf("cannot MulByXMod: %w", err)
	}

	if a.Degree() < f.Degree()-1 {
		return LeftShift(a, 1), nil
	}

	// a*X = lc(a) * (X^n - f) + (a - lc(a)X^(n-1))*X
	n := f.Degree()
	lc := a.lc()

	coeffs := zeroVec(n)
	for i := 1; i < n; i++ {
		coeffs[i].Set(a.Coeffs[i-1])
	}

	t := new(big.Int)
	for i := 0; i < n; i++ {
		coeffs[i].Sub(coeffs[i], t.Mul(lc, f.Coeffs[i]))
	}

	return newPolyFromSlice(coeffs), nil
}

// Modulus is the ring Z_Q[X]/(F) in which the encryption scheme operates.
// F is monic of degree at least one and Q > 1.
// Its methods take operands of degree smaller than deg(F) and return
// polynomials of degree smaller than deg(F) with coefficients in [0, Q).
type Modulus struct {
	F *Poly
	Q *big.Int
}

// NewModulus returns a new Modulus from a copy of f and q.
func NewModulus(f *Poly, q *big.Int) (m *Modulus, err error) {

	if err = checkMonicModulus(f); err != nil {
		return nil, fmt.Errorf("cannot NewModulus: %w", err)
	}

	if q == nil || q.Cmp(big.NewInt(1)) <= 0 {
		return nil, fmt.Errorf("cannot NewModulus: %w: Q must be greater than one", ErrBadArguments)
	}

	return &Modulus{F: f.CopyNew(), Q: new(big.Int).Set(q)}, nil
}

// Degree returns the degree of F.
func (m *Modulus) Degree() int {
	return m.F.Degree()
}

// Reduce returns a with its coefficients reduced into [0, Q).
// The degree of a is not reduced.
func (m *Modulus) Reduce(a *Poly) *Poly {
	coeffs := make([]*big.Int, len(a.Coeffs))
	for i, c := range a.Coeffs {
		coeffs[i] = bignum.Mod(c, m.Q, new(big.Int))
	}
	return newPolyFromSlice(coeffs)
}

// Add returns a + b mod (F, Q).
func (m *Modulus) Add(a, b *Poly) (*Poly, error) {
	if err := checkReduced(a, m.F); err != nil {
		return nil, fmt.Errorf("cannot Add: %w", err)
	}
	if err := checkReduced(b, m.F); err != nil {
		return nil, fmt.Errorf("cannot Add: %w", err)
	}
	return m.Reduce(Add(a, b)), nil
}

// Sub returns a - b mod (F, Q).
func (m *Modulus) Sub(a, b *Poly) (*Poly, error) {
	if err := checkReduced(a, m.F); err != nil {
		return nil, fmt.Errorf("cannot Sub: %w", err)
	}
	if err := checkReduced(b, m.F); err != nil {
		return nil, fmt.Errorf("cannot Sub: %w", err)
	}
	return m.Reduce(Sub(a, b)), nil
}

// MulMod returns a*b mod (F, Q).
func (m *Modulus) MulMod(a, b *Poly) (*Poly, error) {
	c, err := MulMod(a, b, m.F)
	if err != nil {
		return nil, err
	}
	return m.Reduce(c), nil
}

// SqrMod returns a^2 mod (F, Q).
func (m *Modulus) SqrMod(a *Poly) (*Poly, error) {
	c, err := SqrMod(a, m.F)
	if err != nil {
		return nil, err
	}
	return m.Reduce(c), nil
}

// MulByXMod returns a*X mod (F, Q).
func (m *Modulus) MulByXMod(a *Poly) (*Poly, error) {
	c, err := MulByXMod(a, m.F)
	if err != nil {
		return nil, err
	}
	return m.Reduce(c), nil
}
