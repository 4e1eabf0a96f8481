package gaussian

import (
	"math/big"

	"github.com/tuneinsight/zzring/utils/bignum"
)

// guardBits is the number of extra bits of precision of the
// floating point arithmetic used to compute the probabilities.
const guardBits = 64

// Table is the Knuth-Yao probability matrix of a tail-cut discrete Gaussian.
// Row j stores the j-th binary digit (of weight 2^-(j+1)) of the probabilities
// and column bound-x the digits of the probability of the offset x in [0, bound],
// the probability of the offset 0 being halved since the sign is drawn separately.
// A Table is read-only after its construction and can be shared among goroutines.
type Table struct {
	Parameters
	bound  int64
	center int64
	rows   int
	cols   int
	p      [][]uint8
	begin  []int
}

// NewTable builds the probability matrix of the given parameters.
func NewTable(params Parameters) (t *Table, err error) {

	if err = params.Validate(); err != nil {
		return nil, err
	}

	bound := params.Bound()

	t = &Table{
		Parameters: params,
		bound:      bound,
		center:     params.RoundedCenter(),
		rows:       params.Precision,
		cols:       int(bound) + 1,
	}

	// Allocates the final dimensions at once: one backing buffer re-sliced per row.
	buff := make([]uint8, t.rows*t.cols)
	t.p = make([][]uint8, t.rows)
	for i := range t.p {
		t.p[i] = buff[i*t.cols : (i+1)*t.cols]
	}

	prec := uint(params.Precision + guardBits)

	probs := make([]*big.Float, t.cols)
	for x := range probs {
		probs[x] = probability(int64(x), params.Sigma, prec)
	}
	probs[0].Quo(probs[0], bignum.NewFloat(2, prec))

	for x, prob := range probs {
		t.binaryExpansion(prob, t.cols-1-x)
	}

	t.begin = make([]int, t.rows)
	for i, row := range t.p {
		t.begin[i] = t.cols - 1
		for j, b := range row {
			if b == 1 {
				t.begin[i] = j
				break
			}
		}
	}

	return
}

// probability returns exp(-(x/sigma)^2/2) / (sigma * sqrt(2pi)), the density
// at the offset x from the center of the Gaussian of standard deviation sigma.
func probability(x int64, sigma float64, prec uint) (p *big.Float) {

	s := bignum.NewFloat(sigma, prec)

	// -(x/sigma)^2/2
	e := bignum.NewFloat(x, prec)
	e.Quo(e, s)
	e.Mul(e, e)
	e.Quo(e, bignum.NewFloat(-2, prec))

	p = bignum.Exp(e)

	// sigma * sqrt(2pi)
	norm := bignum.Pi(prec)
	norm.Mul(norm, bignum.NewFloat(2, prec))
	norm.Sqrt(norm)
	norm.Mul(norm, s)

	return p.Quo(p, norm)
}

// binaryExpansion writes the first t.rows binary digits of prob in [0, 1)
// at the given column, most significant digit first, by repeated subtraction
// of the largest power of two not exceeding the residual.
func (t *Table) binaryExpansion(prob *big.Float, col int) {

	residual := new(big.Float).Set(prob)

	for j := 0; j < t.rows && residual.Sign() > 0; j++ {
		if pow := bignum.Pow2(-(j + 1), residual.Prec()); pow.Cmp(residual) <= 0 {
			t.p[j][col] = 1
			residual.Sub(residual, pow)
		}
	}
}

// Bound returns the truncation bound round(TailCut * Sigma).
func (t *Table) Bound() int64 {
	return t.bound
}

// Center returns the rounded center of the distribution.
func (t *Table) Center() int64 {
	return t.center
}

// Rows returns the number of rows of the matrix, i.e. the precision.
func (t *Table) Rows() int {
	return t.rows
}

// Cols returns the number of columns of the matrix, i.e. bound+1.
func (t *Table) Cols() int {
	return t.cols
}

// Digit returns the bit of the matrix at the given row and column.
func (t *Table) Digit(row, col int) uint8 {
	return t.p[row][col]
}

// Begin returns the index of the first non-zero column of the row, or Cols()-1
// if the row is zero.
func (t *Table) Begin(row int) int {
	return t.begin[row]
}
