package gaussian

import (
	"github.com/tuneinsight/zzring/utils/sampling"
)

// KnuthYao draws one sample by walking the probability matrix with random bits
// from src: first one bit for the sign, then one bit per row. The matrix holds
// the distribution of the offset x >= 0 from the center, and the sample is
// center + sign*x. The walk does not branch
// on the value of the sample: every column of every row is visited and the
// hitting column is accumulated with a constant-time select.
//
// The result lies in [center-bound, center+bound]. If no column is hit within
// the precision of the table, the result is center+bound or center-bound
// (sign bit 0 or 1), which Sampler.Sample rejects.
func (t *Table) KnuthYao(src sampling.BitSource) int64 {

	invalidSample := t.bound + 1

	sign := 1 - 2*int64(src.Bit())

	// Once d reaches 2*cols no column can be hit anymore, so d
	// is capped to keep it from overflowing on long walks.
	limit := 2 * int64(t.cols)

	var d, S int64
	var hit uint64

	for row, p := range t.p {

		d = 2*d + int64(src.Bit())
		d = ctSelect(d, limit, uint64(limit-d)>>63)
		d = ctSelect(d, -1, uint64(d+1)>>63)

		for col := t.begin[row]; col < t.cols; col++ {

			d -= int64(p[col])

			// enable = 1 iff d == -1
			e := uint64(d + 1)
			enable := 1 ^ ((e | -e) >> 63)

			add := enable &^ hit

			S += ctSelect(invalidSample, int64(col), add)

			hit |= add
		}
	}

	// Non-hitting steps accumulated multiples of invalidSample.
	S %= invalidSample

	return t.center + sign*(t.bound-S)
}

// ctSelect returns a if bit = 0 and b if bit = 1, without branching.
func ctSelect(a, b int64, bit uint64) int64 {
	mask := -int64(bit)
	return (mask & (a ^ b)) ^ a
}
