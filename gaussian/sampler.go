package gaussian

import (
	"github.com/tuneinsight/zzring/utils/sampling"
)

// Sampler is a discrete Gaussian sampler drawing from a Table with its own
// bit source. A Sampler is not thread safe, but several samplers can share
// the same Table.
type Sampler struct {
	*Table
	source sampling.BitSource
}

// NewSampler creates a new Sampler from the given parameters and PRNG.
func NewSampler(params Parameters, prng sampling.PRNG) (*Sampler, error) {

	table, err := NewTable(params)
	if err != nil {
		return nil, err
	}

	return NewSamplerFromTable(table, sampling.NewSource(prng)), nil
}

// NewSamplerFromTable creates a new Sampler from a Table and a bit source.
func NewSamplerFromTable(table *Table, source sampling.BitSource) *Sampler {
	return &Sampler{Table: table, source: source}
}

// Sample returns a sample of the discrete Gaussian restricted to the open
// interval (center-bound, center+bound). Draws of KnuthYao outside of the
// interval are rejected and drawn again.
func (s *Sampler) Sample() (x int64) {
	lo, hi := s.center-s.bound, s.center+s.bound
	for {
		if x = s.KnuthYao(s.source); x > lo && x < hi {
			return
		}
	}
}

// Read fills x with independent samples.
func (s *Sampler) Read(x []int64) {
	for i := range x {
		x[i] = s.Sample()
	}
}
