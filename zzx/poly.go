// Package zzx implements dense polynomials with arbitrary precision integer
// coefficients, i.e. elements of Z[X], and the arithmetic needed by ring based
// encryption schemes: multiplication with several strategies, exact and pseudo
// division, content and GCD, truncated power series inversion and reduction
// modulo a monic polynomial.
package zzx

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/tuneinsight/zzring/utils"
	"github.com/tuneinsight/zzring/utils/bignum"
)

// Poly is a polynomial with integer coefficients.
// Coeffs[i] holds the coefficient of X^i. The zero polynomial is the empty
// slice and a non-empty slice never has a zero leading coefficient.
// Every function of this package returns normalized polynomials; callers
// that write into Coeffs directly must call Normalize afterward.
type Poly struct {
	Coeffs []*big.Int
}

// NewPoly returns the zero polynomial.
func NewPoly() *Poly {
	return &Poly{}
}

// NewPolyWithCapacity returns the zero polynomial with space reserved for n coefficients.
func NewPolyWithCapacity(n int) *Poly {
	return &Poly{Coeffs: make([]*big.Int, 0, n)}
}

// NewPolyFromInt64 returns the constant polynomial v.
func NewPolyFromInt64(v int64) *Poly {
	return NewPolyFromBigInt(big.NewInt(v))
}

// NewPolyFromBigInt returns the constant polynomial v.
func NewPolyFromBigInt(v *big.Int) *Poly {
	if v.Sign() == 0 {
		return NewPoly()
	}
	return &Poly{Coeffs: []*big.Int{new(big.Int).Set(v)}}
}

// NewPolyFromCoeffs returns the polynomial whose i-th coefficient is coeffs[i].
// Accepted types are []int64, []int, []uint64 and []*big.Int (values are copied).
func NewPolyFromCoeffs(coeffs interface{}) (p *Poly) {

	p = new(Poly)

	switch coeffs := coeffs.(type) {
	case []int64:
		p.Coeffs = make([]*big.Int, len(coeffs))
		for i, c := range coeffs {
			p.Coeffs[i] = big.NewInt(c)
		}
	case []int:
		p.Coeffs = make([]*big.Int, len(coeffs))
		for i, c := range coeffs {
			p.Coeffs[i] = big.NewInt(int64(c))
		}
	case []uint64:
		p.Coeffs = make([]*big.Int, len(coeffs))
		for i, c := range coeffs {
			p.Coeffs[i] = new(big.Int).SetUint64(c)
		}
	case []*big.Int:
		p.Coeffs = make([]*big.Int, len(coeffs))
		for i, c := range coeffs {
			p.Coeffs[i] = bignum.NewInt(c)
		}
	default:
		panic(fmt.Sprintf("cannot NewPolyFromCoeffs: accepted types are []int64, []int, []uint64 and []*big.Int, but is %T", coeffs))
	}

	p.Normalize()

	return
}

// NewMonomial returns X^n.
func NewMonomial(n int) (p *Poly) {
	if n < 0 {
		panic(fmt.Sprintf("cannot NewMonomial: negative degree %d", n))
	}
	p = new(Poly)
	p.setLength(n + 1)
	p.Coeffs[n].SetUint64(1)
	return
}

// Degree returns the degree of the polynomial, or -1 for the zero polynomial.
func (p *Poly) Degree() int {
	return len(p.Coeffs) - 1
}

// IsZero returns true if p is the zero polynomial.
func (p *Poly) IsZero() bool {
	return len(p.Coeffs) == 0
}

// IsOne returns true if p is the constant polynomial 1.
func (p *Poly) IsOne() bool {
	return len(p.Coeffs) == 1 && bignum.IsOne(p.Coeffs[0])
}

// IsX returns true if p is the monomial X.
func (p *Poly) IsX() bool {
	return len(p.Coeffs) == 2 && p.Coeffs[0].Sign() == 0 && bignum.IsOne(p.Coeffs[1])
}

// Coeff returns a copy of the coefficient of X^i, which is zero for i > deg(p).
// It panics if i is negative.
func (p *Poly) Coeff(i int) *big.Int {
	if i < 0 {
		panic(fmt.Sprintf("cannot Coeff: negative index %d", i))
	}
	if i >= len(p.Coeffs) {
		return new(big.Int)
	}
	return new(big.Int).Set(p.Coeffs[i])
}

// LeadingCoeff returns a copy of the leading coefficient, zero for the zero polynomial.
func (p *Poly) LeadingCoeff() *big.Int {
	if p.IsZero() {
		return new(big.Int)
	}
	return new(big.Int).Set(p.lc())
}

// ConstantTerm returns a copy of the constant term, zero for the zero polynomial.
func (p *Poly) ConstantTerm() *big.Int {
	return p.Coeff(0)
}

// SetCoeff sets the coefficient of X^i to v, or to 1 if v is nil.
// The coefficient buffer grows if i > deg(p). Setting a zero past the
// leading coefficient leaves p unchanged.
// It panics if i is negative.
func (p *Poly) SetCoeff(i int, v *big.Int) {

	if i < 0 {
		panic(fmt.Sprintf("cannot SetCoeff: negative index %d", i))
	}

	if v == nil {
		v = big.NewInt(1)
	}

	if i >= len(p.Coeffs) {
		if v.Sign() == 0 {
			return
		}
		p.setLength(i + 1)
	}

	p.Coeffs[i].Set(v)

	p.Normalize()
}

// SetCoeffInt64 sets the coefficient of X^i to v.
func (p *Poly) SetCoeffInt64(i int, v int64) {
	p.SetCoeff(i, big.NewInt(v))
}

// Normalize strips the zero leading coefficients.
func (p *Poly) Normalize() {
	n := len(p.Coeffs)
	for n > 0 && (p.Coeffs[n-1] == nil || p.Coeffs[n-1].Sign() == 0) {
		n--
	}
	for i := n; i < len(p.Coeffs); i++ {
		p.Coeffs[i] = nil
	}
	p.Coeffs = p.Coeffs[:n]
}

// CopyNew returns a deep copy of p.
func (p *Poly) CopyNew() *Poly {
	return &Poly{Coeffs: copyCoeffs(p.Coeffs)}
}

// Copy sets p to a deep copy of other.
func (p *Poly) Copy(other *Poly) {
	if p != other {
		p.Coeffs = copyCoeffs(other.Coeffs)
	}
}

// Equal returns true if p and other have the same coefficients.
func (p *Poly) Equal(other *Poly) bool {
	if p == other {
		return true
	}

	if p == nil || other == nil || len(p.Coeffs) != len(other.Coeffs) {
		return false
	}

	for i := range p.Coeffs {
		if p.Coeffs[i].Cmp(other.Coeffs[i]) != 0 {
			return false
		}
	}

	return true
}

// MaxBits returns the maximum bit-length of the absolute value of the coefficients.
func (p *Poly) MaxBits() (m int) {
	for _, c := range p.Coeffs {
		if b := c.BitLen(); b > m {
			m = b
		}
	}
	return
}

// MaxLimbs returns the maximum number of 64-bit words of the coefficients.
func (p *Poly) MaxLimbs() (m int) {
	for _, c := range p.Coeffs {
		m = utils.Max(m, bignum.Limbs(c))
	}
	return
}

// String returns the coefficients of p, constant term first, e.g. "[1 0 -3]".
func (p *Poly) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, c := range p.Coeffs {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(c.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

// lc returns the leading coefficient without copy.
// The receiver must not be the zero polynomial.
func (p *Poly) lc() *big.Int {
	return p.Coeffs[len(p.Coeffs)-1]
}

// setLength resizes the coefficient buffer to n, the new coefficients being zero.
// The result is not normalized.
func (p *Poly) setLength(n int) {
	if n <= len(p.Coeffs) {
		for i := n; i < len(p.Coeffs); i++ {
			p.Coeffs[i] = nil
		}
		p.Coeffs = p.Coeffs[:n]
		return
	}
	for len(p.Coeffs) < n {
		p.Coeffs = append(p.Coeffs, new(big.Int))
	}
}

func copyCoeffs(coeffs []*big.Int) []*big.Int {
	if len(coeffs) == 0 {
		return nil
	}
	out := make([]*big.Int, len(coeffs))
	for i, c := range coeffs {
		out[i] = new(big.Int).Set(c)
	}
	return out
}

// newPolyFromSlice wraps coeffs, taking ownership, and normalizes it.
func newPolyFromSlice(coeffs []*big.Int) (p *Poly) {
	p = &Poly{Coeffs: coeffs}
	p.Normalize()
	return
}
