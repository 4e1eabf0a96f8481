package bignum

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInt(t *testing.T) {

	t.Run("Mod", func(t *testing.T) {
		n := NewInt(7)
		for _, tc := range []struct{ a, want int64 }{{10, 3}, {-10, 4}, {-7, 0}, {0, 0}, {6, 6}, {-1, 6}} {
			require.Equal(t, tc.want, Mod(NewInt(tc.a), n, new(big.Int)).Int64())
		}
	})

	t.Run("QuoExact", func(t *testing.T) {
		q := new(big.Int)
		require.True(t, QuoExact(NewInt(-12), NewInt(4), q))
		require.Equal(t, int64(-3), q.Int64())
		require.False(t, QuoExact(NewInt(13), NewInt(4), q))
		require.True(t, QuoExact(NewInt(0), NewInt(0), q))
		require.Equal(t, 0, q.Sign())
		require.False(t, QuoExact(NewInt(5), NewInt(0), q))
	})

	t.Run("DivRound", func(t *testing.T) {
		i := new(big.Int)
		DivRound(NewInt(7), NewInt(2), i)
		require.Equal(t, int64(4), i.Int64())
		DivRound(NewInt(-7), NewInt(2), i)
		require.Equal(t, int64(-4), i.Int64())
		DivRound(NewInt(5), NewInt(3), i)
		require.Equal(t, int64(2), i.Int64())
	})

	t.Run("Limbs", func(t *testing.T) {
		require.Equal(t, 0, Limbs(NewInt(0)))
		require.Equal(t, 1, Limbs(NewInt(-1)))
		require.Equal(t, 2, Limbs(new(big.Int).Lsh(NewInt(1), 64)))
	})

	require.True(t, IsOne(NewInt(1)))
	require.True(t, IsMinusOne(NewInt(-1)))
	require.False(t, IsOne(NewInt("123456789012345678901234567890")))
}
