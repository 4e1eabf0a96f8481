package zzx

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

var testMulSizes = []struct {
	degA, degB, logBound int
}{
	{0, 0, 10},
	{0, 7, 100},
	{1, 1, 1},
	{5, 3, 64},
	{15, 15, 64},
	{16, 16, 3},
	{31, 17, 128},
	{40, 9, 200},
	{63, 63, 60},
	{100, 1, 30},
	{127, 120, 300},
	{200, 150, 1100},
}

func TestMul(t *testing.T) {

	prng := newTestPRNG(t)

	for _, size := range testMulSizes {

		a := randPoly(prng, size.degA, size.logBound)
		b := randPoly(prng, size.degB, size.logBound)

		want := MulWith(a, b, Schoolbook)
		wantSqr := SqrWith(a, Schoolbook)

		t.Run(testString("Schoolbook/Convolution", size.degA, size.logBound), func(t *testing.T) {
			requireNormalized(t, want)
			require.Equal(t, a.Degree()+b.Degree(), want.Degree())
			require.True(t, wantSqr.Equal(MulWith(a, a.CopyNew(), Schoolbook)))
		})

		for _, s := range Strategies {

			t.Run(testString(s.String()+"/Mul", size.degA, size.logBound), func(t *testing.T) {
				have := MulWith(a, b, s)
				requireNormalized(t, have)
				require.True(t, want.Equal(have), cmp.Diff(want.String(), have.String()))

				// commutativity
				require.True(t, want.Equal(MulWith(b, a, s)))
			})

			t.Run(testString(s.String()+"/Sqr", size.degA, size.logBound), func(t *testing.T) {
				have := SqrWith(a, s)
				requireNormalized(t, have)
				require.True(t, wantSqr.Equal(have), cmp.Diff(wantSqr.String(), have.String()))
			})
		}

		t.Run(testString("Dispatch", size.degA, size.logBound), func(t *testing.T) {
			require.True(t, want.Equal(Mul(a, b)))
			require.True(t, wantSqr.Equal(Sqr(a)))
			require.True(t, wantSqr.Equal(Mul(a, a.CopyNew())))
		})
	}

	t.Run("Zero", func(t *testing.T) {
		a := randPoly(prng, 10, 10)
		for _, s := range Strategies {
			require.True(t, MulWith(a, NewPoly(), s).IsZero())
			require.True(t, MulWith(NewPoly(), a, s).IsZero())
			require.True(t, SqrWith(NewPoly(), s).IsZero())
		}
		require.True(t, Mul(a, NewPoly()).IsZero())
		require.True(t, Sqr(NewPoly()).IsZero())
	})

	t.Run("Unbalanced/Karatsuba", func(t *testing.T) {
		a := randPoly(prng, 300, 20)
		b := randPoly(prng, 20, 20)
		require.True(t, MulWith(a, b, Schoolbook).Equal(MulWith(a, b, DivideAndConquer)))
	})

	t.Run("Sparse/Kronecker", func(t *testing.T) {
		// sign changes and zero slots
		a := NewPolyFromCoeffs([]int64{-1, 0, 0, 1 << 62, 0, -(1 << 62)})
		b := NewPolyFromCoeffs([]int64{0, -1 << 40, 1, 0, -1})
		require.True(t, MulWith(a, b, Schoolbook).Equal(MulWith(a, b, TransformBased)))
		require.True(t, SqrWith(a, Schoolbook).Equal(SqrWith(a, TransformBased)))
	})

	t.Run("InvalidStrategy", func(t *testing.T) {
		a := NewPolyFromInt64(1)
		require.Panics(t, func() { MulWith(a, a, Strategy(42)) })
		require.Panics(t, func() { SqrWith(a, Strategy(-1)) })
		require.Equal(t, "Strategy(42)", Strategy(42).String())
	})
}

func TestChooseStrategy(t *testing.T) {

	prng := newTestPRNG(t)

	for _, tc := range []struct {
		deg, logBound int
		mul, sqr      Strategy
	}{
		{0, 1000, Schoolbook, Schoolbook},
		{30, 60, Schoolbook, Schoolbook},
		{45, 60, DivideAndConquer, Schoolbook},
		{60, 60, DivideAndConquer, DivideAndConquer},
		{12, 150, DivideAndConquer, Schoolbook},
		{200, 60, ContentCrt, ContentCrt},
		{200, 600, TransformBased, TransformBased},
		{100, 2000, TransformBased, TransformBased},
	} {
		a := randPoly(prng, tc.deg, tc.logBound)
		b := randPoly(prng, tc.deg, tc.logBound)
		t.Run(testString("ChooseStrategy", tc.deg, tc.logBound), func(t *testing.T) {
			require.Equal(t, tc.mul, ChooseStrategy(a, b))
			require.Equal(t, tc.sqr, ChooseSqrStrategy(a))
		})
	}
}
