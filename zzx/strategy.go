package zzx

import (
	"fmt"
	"math/bits"

	"github.com/tuneinsight/zzring/utils"
)

// Strategy is an enumeration of the multiplication algorithms.
// All strategies compute the exact same integer convolution and only
// differ by their cost profile.
type Strategy int

const (
	// Schoolbook is the quadratic convolution, and the reference for all other strategies.
	Schoolbook Strategy = iota
	// DivideAndConquer is the Karatsuba multiplication over the big integer coefficients.
	DivideAndConquer
	// TransformBased packs the coefficients into a single big integer (Kronecker
	// substitution) and relies on the big integer multiplication.
	TransformBased
	// ContentCrt removes the contents of the operands and multiplies the primitive parts
	// modulo several word-size NTT primes before reconstructing them with the CRT.
	ContentCrt
)

var strategyToString = [4]string{"Schoolbook", "DivideAndConquer", "TransformBased", "ContentCrt"}

// Strategies lists all the supported multiplication strategies.
var Strategies = []Strategy{Schoolbook, DivideAndConquer, TransformBased, ContentCrt}

func (s Strategy) String() string {
	if s < 0 || int(s) >= len(strategyToString) {
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
	return strategyToString[s]
}

// transformMinBits is the bit-size of the product coefficients above which the
// Kronecker substitution is preferred over the multi-modular multiplication.
const transformMinBits = 1024

// ChooseStrategy returns the multiplication strategy for a*b, as a function of the
// number of coefficients and the number of 64-bit words of the coefficients.
func ChooseStrategy(a, b *Poly) Strategy {

	k := utils.Min(a.MaxLimbs(), b.MaxLimbs())
	s := utils.Min(a.Degree(), b.Degree()) + 1

	switch {
	case s <= 1 || (k == 1 && s < 40) || (k == 2 && s < 20) || (k == 3 && s < 10):
		return Schoolbook
	case s < 80 || (k < 30 && s < 150):
		return DivideAndConquer
	case chooseTransform(a.Degree(), a.MaxBits(), b.Degree(), b.MaxBits()):
		return TransformBased
	default:
		return ContentCrt
	}
}

// ChooseSqrStrategy returns the squaring strategy for a^2.
func ChooseSqrStrategy(a *Poly) Strategy {

	k := a.MaxLimbs()
	s := a.Degree() + 1

	switch {
	case s <= 1 || (k == 1 && s < 50) || (k == 2 && s < 25) || (k == 3 && s < 25) || (k == 4 && s < 10):
		return Schoolbook
	case s < 80 || (k < 30 && s < 150):
		return DivideAndConquer
	case chooseTransform(a.Degree(), a.MaxBits(), a.Degree(), a.MaxBits()):
		return TransformBased
	default:
		return ContentCrt
	}
}

// chooseTransform returns true if the product coefficients are large enough for
// the multi-modular approach to need many primes.
func chooseTransform(da, maxBitsA, db, maxBitsB int) bool {
	return maxBitsA+maxBitsB+bits.Len(uint(utils.Min(da, db)+1)) >= transformMinBits
}

// Mul returns a * b.
// If a and b are equal, the squaring algorithm is used.
func Mul(a, b *Poly) *Poly {

	if a.IsZero() || b.IsZero() {
		return NewPoly()
	}

	if a.Equal(b) {
		return Sqr(a)
	}

	return MulWith(a, b, ChooseStrategy(a, b))
}

// Sqr returns a^2.
func Sqr(a *Poly) *Poly {

	if a.IsZero() {
		return NewPoly()
	}

	return SqrWith(a, ChooseSqrStrategy(a))
}

// MulWith returns a * b computed with the given strategy.
func MulWith(a, b *Poly, s Strategy) *Poly {

	if a.IsZero() || b.IsZero() {
		return NewPoly()
	}

	switch s {
	case Schoolbook:
		return newPolyFromSlice(mulSchoolbook(a.Coeffs, b.Coeffs))
	case DivideAndConquer:
		return newPolyFromSlice(mulKaratsuba(a.Coeffs, b.Coeffs))
	case TransformBased:
		return newPolyFromSlice(mulKronecker(a.Coeffs, b.Coeffs))
	case ContentCrt:
		return mulContentCRT(a, b)
	default:
		panic(fmt.Sprintf("cannot MulWith: invalid strategy %s", s))
	}
}

// SqrWith returns a^2 computed with the given strategy.
func SqrWith(a *Poly, s Strategy) *Poly {

	if a.IsZero() {
		return NewPoly()
	}

	switch s {
	case Schoolbook:
		return newPolyFromSlice(sqrSchoolbook(a.Coeffs))
	case DivideAndConquer:
		return newPolyFromSlice(sqrKaratsuba(a.Coeffs))
	case TransformBased:
		return newPolyFromSlice(sqrKronecker(a.Coeffs))
	case ContentCrt:
		return sqrContentCRT(a)
	default:
		panic(fmt.Sprintf("cannot SqrWith: invalid strategy %s", s))
	}
}
