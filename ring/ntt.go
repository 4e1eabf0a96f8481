package ring

import (
	"fmt"
	"math/bits"

	"github.com/tuneinsight/zzring/utils"
)

// NTTTable stores the pre-computed constants of a cyclic number theoretic
// transform of size N modulo a prime q = 1 mod N.
type NTTTable struct {
	Modulus      uint64
	N            int
	LogN         int
	BRedConstant [2]uint64
	NInv         uint64   // N^-1 mod q
	Root         uint64   // primitive N-th root of unity
	Roots        []uint64 // Root^i for i in [0, N/2)
	RootsInv     []uint64 // Root^-i for i in [0, N/2)
}

// NewNTTTable generates the constants of the size N cyclic NTT modulo q.
// N must be a power of two dividing q-1 and q must be a prime of at most MaxModulusBits bits.
func NewNTTTable(q uint64, N int) (t *NTTTable, err error) {

	if !utils.IsPowerOfTwo(N) {
		return nil, fmt.Errorf("cannot NewNTTTable: N=%d is not a power of two", N)
	}

	if bits.Len64(q) > MaxModulusBits || !IsPrime(q) {
		return nil, fmt.Errorf("cannot NewNTTTable: q=%d is not a prime of at most %d bits", q, MaxModulusBits)
	}

	if (q-1)%uint64(N) != 0 {
		return nil, fmt.Errorf("cannot NewNTTTable: q=%d is not 1 mod N=%d", q, N)
	}

	t = &NTTTable{
		Modulus:      q,
		N:            N,
		LogN:         bits.Len64(uint64(N)) - 1,
		BRedConstant: GenBRedConstant(q),
	}

	t.Root = primitiveRoot(q, uint64(N))
	t.NInv = ModExp(uint64(N), q-2, q)

	rootInv := ModExp(t.Root, q-2, q)

	half := N >> 1
	if half == 0 {
		half = 1
	}

	t.Roots = make([]uint64, half)
	t.RootsInv = make([]uint64, half)

	t.Roots[0], t.RootsInv[0] = 1, 1
	for i := 1; i < half; i++ {
		t.Roots[i] = BRed(t.Roots[i-1], t.Root, q, t.BRedConstant)
		t.RootsInv[i] = BRed(t.RootsInv[i-1], rootInv, q, t.BRedConstant)
	}

	return
}

// primitiveRoot returns a primitive N-th root of unity modulo the prime q,
// assuming N is a power of two dividing q-1.
func primitiveRoot(q, N uint64) uint64 {

	if N == 1 {
		return 1
	}

	exp := (q - 1) / N

	for g := uint64(2); g < q; g++ {
		// For N a power of two, w has order exactly N iff w^(N/2) != 1.
		if w := ModExp(g, exp, q); ModExp(w, N>>1, q) != 1 {
			return w
		}
	}

	// Unreachable for a prime q = 1 mod N.
	panic("cannot primitiveRoot: no primitive root found")
}

// Forward evaluates the NTT of p in place.
// Coefficients are required to be in [0, q-1] and are returned in natural order.
func (t *NTTTable) Forward(p []uint64) {
	t.transform(p, t.Roots)
}

// Backward evaluates the inverse NTT of p in place, including the scaling by N^-1.
func (t *NTTTable) Backward(p []uint64) {
	t.transform(p, t.RootsInv)
	q, brc := t.Modulus, t.BRedConstant
	for i := range p[:t.N] {
		p[i] = BRed(p[i], t.NInv, q, brc)
	}
}

// MulCoeffs sets p3 to the coefficient-wise product of p1 and p2.
func (t *NTTTable) MulCoeffs(p1, p2, p3 []uint64) {
	q, brc := t.Modulus, t.BRedConstant
	for i := range p3[:t.N] {
		p3[i] = BRed(p1[i], p2[i], q, brc)
	}
}

// transform is an iterative Cooley-Tukey radix-2 transform with a
// bit-reversal permutation of the input.
func (t *NTTTable) transform(p []uint64, roots []uint64) {

	N := t.N
	q, brc := t.Modulus, t.BRedConstant

	for i := 0; i < N; i++ {
		if j := int(utils.BitReverse64(uint64(i), uint64(t.LogN))); i < j {
			p[i], p[j] = p[j], p[i]
		}
	}

	for length := 2; length <= N; length <<= 1 {
		half := length >> 1
		step := N / length
		for i := 0; i < N; i += length {
			for j := 0; j < half; j++ {
				U := p[i+j]
				V := BRed(p[i+j+half], roots[j*step], q, brc)
				p[i+j] = CRed(U+V, q)
				p[i+j+half] = CRed(U+q-V, q)
			}
		}
	}
}
