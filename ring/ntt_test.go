package ring

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tuneinsight/zzring/utils/sampling"
)

func testString(opname string, q uint64, N int) string {
	return fmt.Sprintf("%s/q=%d/N=%d", opname, q, N)
}

func newTestSource(t *testing.T) *sampling.Source {
	prng, err := sampling.NewKeyedPRNG([]byte("ring"))
	require.NoError(t, err)
	return sampling.NewSource(prng)
}

func TestRing(t *testing.T) {

	testGenerateNTTPrimes(t)
	testBRed(t)

	for _, logN := range []int{0, 1, 3, 6, 10} {
		N := 1 << logN
		primes, err := GenerateNTTPrimes(MaxModulusBits, N, 2)
		require.NoError(t, err)
		for _, q := range primes {
			testNTT(q, N, t)
		}
	}

	testNTTTableErrors(t)
}

func testGenerateNTTPrimes(t *testing.T) {
	t.Run("GenerateNTTPrimes", func(t *testing.T) {
		N := 1 << 12
		primes, err := GenerateNTTPrimes(MaxModulusBits, N, 8)
		require.NoError(t, err)
		require.Len(t, primes, 8)

		seen := map[uint64]bool{}
		for _, q := range primes {
			require.True(t, IsPrime(q))
			require.Equal(t, uint64(1), q%uint64(N))
			require.Less(t, q, uint64(1)<<MaxModulusBits)
			require.False(t, seen[q])
			seen[q] = true
		}

		_, err = GenerateNTTPrimes(62, N, 1)
		require.Error(t, err)
		_, err = GenerateNTTPrimes(MaxModulusBits, 3, 1)
		require.Error(t, err)
		_, err = GenerateNTTPrimes(4, 1<<3, 10)
		require.Error(t, err)
	})
}

func testBRed(t *testing.T) {
	t.Run("BRed", func(t *testing.T) {
		q := uint64(0x1fffffffffe00001)
		brc := GenBRedConstant(q)
		src := newTestSource(t)
		bigQ := new(big.Int).SetUint64(q)
		for i := 0; i < 1024; i++ {
			x := src.Uint64() % q
			y := src.Uint64() % q
			want := new(big.Int).Mul(new(big.Int).SetUint64(x), new(big.Int).SetUint64(y))
			want.Mod(want, bigQ)
			require.Equal(t, want.Uint64(), BRed(x, y, q, brc))
		}
		require.Equal(t, uint64(1), ModExp(7, q-1, q))
	})
}

func testNTT(q uint64, N int, t *testing.T) {
	t.Run(testString("NTT/Convolution", q, N), func(t *testing.T) {

		table, err := NewNTTTable(q, N)
		require.NoError(t, err)
		require.Equal(t, uint64(1), ModExp(table.Root, uint64(N), q))

		src := newTestSource(t)
		a := make([]uint64, N)
		b := make([]uint64, N)
		for i := 0; i < N; i++ {
			a[i] = src.Uint64() % q
			b[i] = src.Uint64() % q
		}

		// Naive cyclic convolution modulo q.
		want := make([]uint64, N)
		for i := 0; i < N; i++ {
			for j := 0; j < N; j++ {
				k := (i + j) % N
				want[k] = CRed(want[k]+BRed(a[i], b[j], q, table.BRedConstant), q)
			}
		}

		table.Forward(a)
		table.Forward(b)
		table.MulCoeffs(a, b, a)
		table.Backward(a)
		require.Equal(t, want, a)

	})

	t.Run(testString("NTT/Identity", q, N), func(t *testing.T) {
		table, err := NewNTTTable(q, N)
		require.NoError(t, err)
		src := newTestSource(t)
		a := make([]uint64, N)
		for i := range a {
			a[i] = src.Uint64() % q
		}
		b := append([]uint64{}, a...)
		table.Forward(b)
		table.Backward(b)
		require.Equal(t, a, b)
	})
}

func testNTTTableErrors(t *testing.T) {
	t.Run("NTTTable/Errors", func(t *testing.T) {
		_, err := NewNTTTable(17, 3)
		require.Error(t, err)
		_, err = NewNTTTable(15, 2)
		require.Error(t, err)
		_, err = NewNTTTable(13, 8)
		require.Error(t, err)
		_, err = NewNTTTable(17, 16)
		require.NoError(t, err)
	})
}
