// Package gaussian implements a discrete Gaussian sampler based on the
// Knuth-Yao algorithm: the probabilities of a tail-cut discrete Gaussian are
// expanded offline into a bit matrix, which is then walked online with a
// random bit stream to draw one sample per call.
package gaussian

import (
	"fmt"
	"math"
)

// MaxPrecision is the maximum number of bits of probability resolution.
const MaxPrecision = 1024

// MaxBound is the maximum value of round(TailCut * Sigma).
const MaxBound = 1 << 16

// Parameters is a struct storing the parameters of a discrete Gaussian
// distribution of mean Center and standard deviation Sigma, truncated
// at TailCut standard deviations, whose probabilities are expanded on
// Precision bits.
type Parameters struct {
	Precision int
	TailCut   float64
	Sigma     float64
	Center    float64
}

// Bound returns round(TailCut * Sigma).
func (p Parameters) Bound() int64 {
	return int64(math.Round(p.TailCut * p.Sigma))
}

// RoundedCenter returns round(Center).
func (p Parameters) RoundedCenter() int64 {
	return int64(math.Round(p.Center))
}

// Validate returns an error if the parameters cannot instantiate a table.
func (p Parameters) Validate() error {

	if p.Precision < 1 || p.Precision > MaxPrecision {
		return fmt.Errorf("invalid Precision: %d must be between 1 and %d", p.Precision, MaxPrecision)
	}

	if !(p.Sigma > 0) || math.IsInf(p.Sigma, 0) {
		return fmt.Errorf("invalid Sigma: %f must be positive and finite", p.Sigma)
	}

	if !(p.TailCut > 0) || math.IsInf(p.TailCut, 0) {
		return fmt.Errorf("invalid TailCut: %f must be positive and finite", p.TailCut)
	}

	if math.IsNaN(p.Center) || math.IsInf(p.Center, 0) {
		return fmt.Errorf("invalid Center: %f must be finite", p.Center)
	}

	if bound := p.TailCut * p.Sigma; bound < 1 || bound > MaxBound {
		return fmt.Errorf("invalid TailCut * Sigma: %f must be between 1 and %d", bound, MaxBound)
	}

	return nil
}
