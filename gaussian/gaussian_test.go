package gaussian

import (
	"fmt"
	"math"
	"math/big"
	"testing"

	"github.com/montanaflynn/stats"
	"github.com/stretchr/testify/require"
	"github.com/tuneinsight/zzring/utils/bignum"
	"github.com/tuneinsight/zzring/utils/sampling"
)

func testString(opname string, params Parameters) string {
	return fmt.Sprintf("%s/prec=%d/tailcut=%.1f/sigma=%.2f/center=%.1f", opname, params.Precision, params.TailCut, params.Sigma, params.Center)
}

var testParams = []Parameters{
	{Precision: 64, TailCut: 13.2, Sigma: 2.0, Center: 0},
	{Precision: 64, TailCut: 6, Sigma: 3.19, Center: 0},
	{Precision: 128, TailCut: 10, Sigma: 1.5, Center: 3},
}

// bitSource replays a fixed sequence of bits.
type bitSource struct {
	bits []uint64
	ptr  int
}

func (s *bitSource) Bit() (b uint64) {
	b = s.bits[s.ptr%len(s.bits)]
	s.ptr++
	return
}

func (s *bitSource) Uint64() (w uint64) {
	for i := 0; i < 64; i++ {
		w |= s.Bit() << i
	}
	return
}

func newTestSource(t *testing.T) *sampling.Source {
	prng, err := sampling.NewKeyedPRNG([]byte{'k', 'y'})
	require.NoError(t, err)
	return sampling.NewSource(prng)
}

func TestParameters(t *testing.T) {

	require.NoError(t, testParams[0].Validate())
	require.Equal(t, int64(26), testParams[0].Bound())
	require.Equal(t, int64(19), testParams[1].Bound())

	for _, params := range []Parameters{
		{Precision: 0, TailCut: 13.2, Sigma: 2},
		{Precision: MaxPrecision + 1, TailCut: 13.2, Sigma: 2},
		{Precision: 64, TailCut: 13.2, Sigma: 0},
		{Precision: 64, TailCut: -1, Sigma: 2},
		{Precision: 64, TailCut: 13.2, Sigma: math.NaN()},
		{Precision: 64, TailCut: 13.2, Sigma: 2, Center: math.Inf(1)},
		{Precision: 64, TailCut: 0.1, Sigma: 2},
		{Precision: 64, TailCut: 1e6, Sigma: 1e6},
	} {
		require.Error(t, params.Validate())
		_, err := NewTable(params)
		require.Error(t, err)
	}
}

func TestTable(t *testing.T) {

	for _, params := range testParams {

		table, err := NewTable(params)
		require.NoError(t, err)

		t.Run(testString("Dimensions", params), func(t *testing.T) {
			require.Equal(t, params.Precision, table.Rows())
			require.Equal(t, int(params.Bound())+1, table.Cols())
			require.Equal(t, params.RoundedCenter(), table.Center())
		})

		t.Run(testString("Begin", params), func(t *testing.T) {
			for row := 0; row < table.Rows(); row++ {
				begin := table.Begin(row)
				for col := 0; col < begin; col++ {
					require.Zero(t, table.Digit(row, col))
				}
				if begin != table.Cols()-1 {
					require.Equal(t, uint8(1), table.Digit(row, begin))
				}
			}
		})

		t.Run(testString("BinaryExpansion", params), func(t *testing.T) {

			prec := uint(params.Precision + guardBits)

			// The digits of each column are the truncation of the probability.
			total := bignum.NewFloat(0, prec)

			for x := 0; x < table.Cols(); x++ {

				want := probability(int64(x), params.Sigma, prec)
				if x == 0 {
					want.Quo(want, bignum.NewFloat(2, prec))
				}

				have := bignum.NewFloat(0, prec)
				for row := 0; row < table.Rows(); row++ {
					if table.Digit(row, table.Cols()-1-x) == 1 {
						have.Add(have, bignum.Pow2(-(row+1), prec))
					}
				}

				require.True(t, have.Cmp(want) <= 0)

				diff := new(big.Float).Sub(want, have)
				require.True(t, diff.Cmp(bignum.Pow2(-params.Precision, prec)) < 0)

				total.Add(total, have)
			}

			// One-sided mass of the folded distribution.
			f, _ := total.Float64()
			require.InDelta(t, 0.5, f, 1e-6)
		})
	}
}

func TestKnuthYao(t *testing.T) {

	t.Run("Select", func(t *testing.T) {
		require.Equal(t, int64(7), ctSelect(7, -3, 0))
		require.Equal(t, int64(-3), ctSelect(7, -3, 1))
	})

	t.Run("HandcraftedTable", func(t *testing.T) {

		// bound = 1, the offset 0 has probability 1/2 and the offset 1 has probability 1/4.
		table := &Table{
			bound: 1,
			rows:  2,
			cols:  2,
			p:     [][]uint8{{0, 1}, {1, 0}},
			begin: []int{1, 0},
		}

		// sign, row 0, row 1
		require.Equal(t, int64(0), table.KnuthYao(&bitSource{bits: []uint64{0, 0, 0}}))
		require.Equal(t, int64(0), table.KnuthYao(&bitSource{bits: []uint64{1, 0, 1}}))
		require.Equal(t, int64(1), table.KnuthYao(&bitSource{bits: []uint64{0, 1, 0}}))
		require.Equal(t, int64(-1), table.KnuthYao(&bitSource{bits: []uint64{1, 1, 0}}))

		// No hit: the result is on the bound
		require.Equal(t, int64(-1), table.KnuthYao(&bitSource{bits: []uint64{1, 1, 1}}))
		require.Equal(t, int64(1), table.KnuthYao(&bitSource{bits: []uint64{0, 1, 1}}))
	})

	t.Run("Exhaustion", func(t *testing.T) {

		// A zero table never hits and must not panic.
		table := &Table{
			bound:  4,
			center: 10,
			rows:   3,
			cols:   5,
			p:      [][]uint8{make([]uint8, 5), make([]uint8, 5), make([]uint8, 5)},
			begin:  []int{4, 4, 4},
		}

		require.Equal(t, int64(14), table.KnuthYao(&bitSource{bits: []uint64{0}}))
		require.Equal(t, int64(6), table.KnuthYao(&bitSource{bits: []uint64{1}}))
	})

	t.Run("LongWalk", func(t *testing.T) {

		// All ones: the walk runs past the table mass for 1024 rows.
		params := Parameters{Precision: MaxPrecision, TailCut: 6, Sigma: 2}
		table, err := NewTable(params)
		require.NoError(t, err)

		x := table.KnuthYao(&bitSource{bits: []uint64{1}})
		require.Equal(t, -params.Bound(), x)
	})

	for _, params := range testParams {

		table, err := NewTable(params)
		require.NoError(t, err)

		src := newTestSource(t)

		t.Run(testString("Range", params), func(t *testing.T) {
			for i := 0; i < 1<<12; i++ {
				x := table.KnuthYao(src)
				require.GreaterOrEqual(t, x, table.Center()-table.Bound())
				require.LessOrEqual(t, x, table.Center()+table.Bound())
			}
		})
	}
}

func TestSampler(t *testing.T) {

	params := Parameters{Precision: 64, TailCut: 13.2, Sigma: 2.0, Center: 0}

	N := 100000
	if testing.Short() {
		N = 20000
	}

	prng, err := sampling.NewKeyedPRNG([]byte{'g', 'a', 'u', 's', 's'})
	require.NoError(t, err)

	sampler, err := NewSampler(params, prng)
	require.NoError(t, err)

	samples := make([]int64, N)
	sampler.Read(samples)

	bound := params.Bound()

	data := make(stats.Float64Data, N)
	counts := map[int64]int{}
	for i, x := range samples {
		require.Less(t, x, bound)
		require.Greater(t, x, -bound)
		data[i] = float64(x)
		counts[x]++
	}

	t.Run(testString("Mean", params), func(t *testing.T) {
		mean, err := stats.Mean(data)
		require.NoError(t, err)
		require.InDelta(t, params.Center, mean, 0.05)
	})

	t.Run(testString("StandardDeviation", params), func(t *testing.T) {
		std, err := stats.StandardDeviation(data)
		require.NoError(t, err)
		require.InDelta(t, params.Sigma, std, 0.1)
	})

	t.Run(testString("ChiSquared", params), func(t *testing.T) {

		// Discrete Gaussian on (-bound, bound)
		pdf := map[int64]float64{}
		var norm float64
		for x := -bound + 1; x < bound; x++ {
			pdf[x] = math.Exp(-float64(x*x) / (2 * params.Sigma * params.Sigma))
			norm += pdf[x]
		}

		// Bins with expected count >= 5, the tails are pooled.
		var chi2, tailExpected float64
		var tailObserved, df int

		for x := -bound + 1; x < bound; x++ {
			expected := pdf[x] / norm * float64(N)
			if expected < 5 {
				tailExpected += expected
				tailObserved += counts[x]
				continue
			}
			diff := float64(counts[x]) - expected
			chi2 += diff * diff / expected
			df++
		}

		if tailExpected > 0 {
			diff := float64(tailObserved) - tailExpected
			chi2 += diff * diff / tailExpected
			df++
		}

		df--

		// Far beyond the 1e-6 quantile of the chi-squared distribution.
		require.Less(t, chi2, float64(df)+8*math.Sqrt(2*float64(df)))
	})

	t.Run(testString("SharedTable", params), func(t *testing.T) {
		table := sampler.Table
		s1 := NewSamplerFromTable(table, newTestSource(t))
		s2 := NewSamplerFromTable(table, newTestSource(t))
		for i := 0; i < 64; i++ {
			require.Equal(t, s1.Sample(), s2.Sample())
		}
	})
}

func TestSamplerCenter(t *testing.T) {

	params := Parameters{Precision: 64, TailCut: 10, Sigma: 1.5, Center: 3}

	N := 100000
	if testing.Short() {
		N = 20000
	}

	prng, err := sampling.NewKeyedPRNG([]byte{'c', 'e', 'n', 't', 'e', 'r'})
	require.NoError(t, err)

	sampler, err := NewSampler(params, prng)
	require.NoError(t, err)

	samples := make([]int64, N)
	sampler.Read(samples)

	data := make(stats.Float64Data, N)
	for i, x := range samples {
		data[i] = float64(x)
	}

	t.Run(testString("Mean", params), func(t *testing.T) {
		mean, err := stats.Mean(data)
		require.NoError(t, err)
		require.InDelta(t, params.Center, mean, 0.05)
	})

	t.Run(testString("StandardDeviation", params), func(t *testing.T) {
		std, err := stats.StandardDeviation(data)
		require.NoError(t, err)
		require.InDelta(t, params.Sigma, std, 0.1)
	})

	t.Run(testString("Symmetry", params), func(t *testing.T) {
		counts := map[int64]int{}
		for _, x := range samples {
			counts[x]++
		}
		// P(center+1) = P(center-1) ~ 0.21
		d := float64(counts[4] - counts[2])
		require.Less(t, math.Abs(d), 8*math.Sqrt(float64(counts[4]+counts[2])))
	})
}
