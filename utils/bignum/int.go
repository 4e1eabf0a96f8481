// Package bignum implements arbitrary precision arithmetic helpers for
// integers and floats on top of math/big.
package bignum

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

// NewInt allocates a new *big.Int.
// Accepted types are: string, uint, uint64, int64, int, *big.Float or *big.Int.
func NewInt(x interface{}) (y *big.Int) {

	y = new(big.Int)

	if x == nil {
		return
	}

	switch x := x.(type) {
	case string:
		y.SetString(x, 0)
	case uint:
		y.SetUint64(uint64(x))
	case uint64:
		y.SetUint64(x)
	case int64:
		y.SetInt64(x)
	case int:
		y.SetInt64(int64(x))
	case *big.Float:
		x.Int(y)
	case *big.Int:
		y.Set(x)
	default:
		panic(fmt.Sprintf("cannot NewInt: accepted types are string, uint, uint64, int, int64, *big.Float, *big.Int, but is %T", x))
	}

	return
}

// RandInt generates a random Int in [0, max-1].
func RandInt(reader io.Reader, max *big.Int) (n *big.Int) {
	var err error
	if n, err = rand.Int(reader, max); err != nil {
		panic("error: crypto/rand/bigint")
	}
	return
}

// DivRound sets the target i to round(a/b).
func DivRound(a, b, i *big.Int) {
	_a := new(big.Int).Set(a)
	i.Quo(_a, b)
	r := new(big.Int).Rem(_a, b)
	r2 := new(big.Int).Mul(r, NewInt(2))
	if r2.CmpAbs(b) != -1.0 {
		if _a.Sign() == b.Sign() {
			i.Add(i, NewInt(1))
		} else {
			i.Sub(i, NewInt(1))
		}
	}
}

// Mod sets i to the representative of a modulo n in [0, n), whatever the sign of a,
// computed as ((a rem n) + n) rem n, and returns i.
func Mod(a, n, i *big.Int) *big.Int {
	i.Rem(a, n)
	i.Add(i, n)
	return i.Rem(i, n)
}

// QuoExact sets q to a/b and returns true if b divides a exactly.
// If b is zero, it returns true if and only if a is zero, in which case q is set to zero.
// The value of q is unspecified if the division is not exact.
func QuoExact(a, b, q *big.Int) bool {
	if b.Sign() == 0 {
		if a.Sign() == 0 {
			q.SetUint64(0)
			return true
		}
		return false
	}
	r := new(big.Int)
	q.QuoRem(a, b, r)
	return r.Sign() == 0
}

// IsOne returns true if a = 1.
func IsOne(a *big.Int) bool {
	return a.IsInt64() && a.Int64() == 1
}

// IsMinusOne returns true if a = -1.
func IsMinusOne(a *big.Int) bool {
	return a.IsInt64() && a.Int64() == -1
}

// Limbs returns the number of 64-bit words needed to store |a|.
func Limbs(a *big.Int) int {
	return (a.BitLen() + 63) >> 6
}
