package zzx

import (
	"fmt"
)

// InvTrunc returns g such that a*g = 1 mod X^e, computed with a Newton
// iteration doubling the precision at each step.
// Returns the zero polynomial for e = 0, ErrBadArguments for e < 0 and
// ErrNonInvertible if the constant term of a is not 1 or -1.
func InvTrunc(a *Poly, e int) (g *Poly, err error) {

	if e < 0 {
		return nil, fmt.Errorf("cannot InvTrunc: %w: negative precision %d", ErrBadArguments, e)
	}

	if e == 0 {
		return NewPoly(), nil
	}

	c0 := a.ConstantTerm()

	if !c0.IsInt64() || (c0.Int64() != 1 && c0.Int64() != -1) {
		return nil, fmt.Errorf("cannot InvTrunc: %w: constant term %s is not a unit", ErrNonInvertible, c0)
	}

	// Precisions e = E[0] > E[1] > ... > E[len(E)-1] = 1
	E := []int{e}
	for e > 1 {
		e = (e + 1) >> 1
		E = append(E, e)
	}

	// 1/c0 = c0 for c0 = +/-1
	g = NewPolyFromBigInt(c0)

	for i := len(E) - 2; i >= 0; i-- {

		k := E[i+1]
		l := E[i] - k

		// a*g = 1 + X^k * h, g <- g - X^k * (h*g mod X^l)
		h := Trunc(RightShift(Mul(Trunc(a, k+l), g), k), l)
		t := Trunc(Mul(h, g), l)

		g = Sub(g, LeftShift(t, k))
	}

	return g, nil
}
