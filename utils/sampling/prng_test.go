package sampling_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tuneinsight/zzring/utils/sampling"
)

func TestPRNG(t *testing.T) {

	key := []byte{0x49, 0x0a, 0x42, 0x3d, 0x97, 0x9d, 0xc1, 0x07, 0xa1, 0xd7, 0xe9, 0x7b, 0x3b, 0xce, 0xa1, 0xdb,
		0x42, 0xf3, 0xa6, 0xd5, 0x75, 0xd2, 0x0c, 0x92, 0xb7, 0x35, 0xce, 0x0c, 0xee, 0x09, 0x7c, 0x98}

	t.Run("KeyedPRNG/Replay", func(t *testing.T) {

		Ha, err := sampling.NewKeyedPRNG(key)
		require.NoError(t, err)

		sum0 := make([]byte, 512)
		sum1 := make([]byte, 512)

		Ha.Read(sum0)

		Hb, err := sampling.NewKeyedPRNG(Ha.Key())
		require.NoError(t, err)
		Hb.Read(sum1)

		require.Equal(t, sum0, sum1)
		require.Equal(t, key, Ha.Key())

		// the stream advances
		Ha.Read(sum1)
		require.NotEqual(t, sum0, sum1)
	})

	t.Run("KeyedPRNG/Key", func(t *testing.T) {

		Ha, err := sampling.NewKeyedPRNG(key)
		require.NoError(t, err)
		Hb, err := sampling.NewKeyedPRNG(key[:31])
		require.NoError(t, err)

		sum0 := make([]byte, 64)
		sum1 := make([]byte, 64)
		Ha.Read(sum0)
		Hb.Read(sum1)
		require.NotEqual(t, sum0, sum1)

		_, err = sampling.NewKeyedPRNG(make([]byte, 65))
		require.Error(t, err)
	})

	t.Run("Source/Deterministic", func(t *testing.T) {

		Ha, _ := sampling.NewKeyedPRNG(key)
		Hb, _ := sampling.NewKeyedPRNG(key)

		sa := sampling.NewSource(Ha)
		sb := sampling.NewSource(Hb)

		// Crosses the internal buffer boundary.
		for i := 0; i < 300; i++ {
			require.Equal(t, sa.Uint64(), sb.Uint64())
			require.Equal(t, sa.Bit(), sb.Bit())
		}
	})

	t.Run("Source/Bits", func(t *testing.T) {

		Ha, _ := sampling.NewKeyedPRNG(key)
		Hb, _ := sampling.NewKeyedPRNG(key)

		sa := sampling.NewSource(Ha)
		sb := sampling.NewSource(Hb)

		// Bits are the little-endian unpacking of the words.
		w := sa.Uint64()
		for i := 0; i < 64; i++ {
			require.Equal(t, (w>>i)&1, sb.Bit())
		}

		var ones uint64
		n := 1 << 14
		for i := 0; i < n; i++ {
			b := sa.Bit()
			require.LessOrEqual(t, b, uint64(1))
			ones += b
		}
		require.InDelta(t, float64(n)/2, float64(ones), 6*64)
	})

	t.Run("Source/ThreadSafePRNG", func(t *testing.T) {
		prng, err := sampling.NewPRNG()
		require.NoError(t, err)
		s := sampling.NewSource(prng)
		require.NotEqual(t, s.Uint64(), s.Uint64())
	})
}
