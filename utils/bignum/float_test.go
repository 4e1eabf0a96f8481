package bignum

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFloat(t *testing.T) {
	testFunc1("Exp", 1.4142135623730951, math.Exp, Exp, 1e-15, t)
	testFunc1("Exp/Negative", -4.5, math.Exp, Exp, 1e-15, t)

	t.Run("Pi", func(t *testing.T) {
		y, _ := Pi(53).Float64()
		require.Equal(t, math.Pi, y)
	})

	t.Run("Pow2", func(t *testing.T) {
		y, _ := Pow2(-3, 64).Float64()
		require.Equal(t, 0.125, y)
		y, _ = Pow2(10, 64).Float64()
		require.Equal(t, 1024.0, y)
	})

}

func testFunc1(name string, x float64, f func(x float64) (y float64), g func(x *big.Float) (y *big.Float), delta float64, t *testing.T) {
	t.Run(name, func(t *testing.T) {
		y, _ := g(NewFloat(x, 53)).Float64()
		require.InDelta(t, f(x), y, delta)
	})
}
