package ring

import (
	"fmt"
	"math/big"
	"math/bits"
)

// MaxModulusBits is the largest supported bit-size of the NTT primes.
// It leaves enough headroom to lazily add two residues without overflow.
const MaxModulusBits = 61

// IsPrime applies the Baillie-PSW, which is 100% accurate for numbers bellow 2^64.
func IsPrime(x uint64) bool {
	return new(big.Int).SetUint64(x).ProbablyPrime(0)
}

// GenerateNTTPrimes generates n distinct NthRoot NTT-friendly primes, i.e. primes
// equal to 1 modulo NthRoot, of at most logQ bits, starting from 2^logQ and downward.
// NthRoot must be a power of two.
func GenerateNTTPrimes(logQ, NthRoot, n int) (primes []uint64, err error) {

	if logQ < 2 || logQ > MaxModulusBits {
		return nil, fmt.Errorf("cannot GenerateNTTPrimes: logQ=%d must be between 2 and %d", logQ, MaxModulusBits)
	}

	if NthRoot < 1 || NthRoot&(NthRoot-1) != 0 {
		return nil, fmt.Errorf("cannot GenerateNTTPrimes: NthRoot=%d must be a power of two", NthRoot)
	}

	if bits.Len64(uint64(NthRoot)) > logQ {
		return nil, fmt.Errorf("cannot GenerateNTTPrimes: NthRoot=%d is larger than 2^logQ", NthRoot)
	}

	primes = make([]uint64, 0, n)

	// We start by subtracting NthRoot to ensure that the prime bit-length is smaller than logQ
	x := uint64(1)<<logQ + 1

	for len(primes) < n {

		if x <= uint64(NthRoot)+1 {
			return nil, fmt.Errorf("cannot GenerateNTTPrimes: not enough %d-th root NTT primes of at most %d bits", NthRoot, logQ)
		}

		x -= uint64(NthRoot)

		if IsPrime(x) {
			primes = append(primes, x)
		}
	}

	return
}
