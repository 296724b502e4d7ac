// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package factorial

import (
	"math"

	"github.com/consensys/factorial/prime"
)

// swingValue computes swing(n) = n!/(⌊n/2⌋!)², the product over every
// prime p ≤ n of p raised to the number of odd quotients ⌊n/pᵏ⌋ for
// k ≥ 1. The sieve must cover [2, n].
//
// The primes are split in three bands so that only those below √n pay
// the general repeated-division loop:
//
//   - p ∈ [2, ⌊√n⌋]: repeated division, one factor of p per odd quotient
//   - p ∈ (⌊√n⌋, n/3]: p² > n, so the exponent is 1 iff ⌊n/p⌋ is odd
//   - p ∈ (n/3, n/2]: ⌊n/p⌋ = 2, even — no contribution, skipped
//   - p ∈ (n/2, n]: ⌊n/p⌋ = 1 and ⌊n/p²⌋ = 0, exponent exactly 1
//
// The bands partition the primes of [2, n]; the skipped range is what
// lets the middle band stop at n/3.
func swingValue[T any](a Arithmetic[T], n uint64, s *prime.Sieve) (T, bool) {
	product := a.One()
	ok := true

	mulPrime := func(p uint64) bool {
		f, fits := a.FromUint64(p)
		if fits {
			product, fits = a.CheckedMul(product, f)
		}
		ok = fits
		return fits
	}

	root := isqrt(n)

	// small primes: accumulate one factor of p per odd quotient
	s.PrimesBetween(2, root, func(p uint64) bool {
		acc := a.One()
		contributed := false
		for q := n / p; q > 0; q /= p {
			if q&1 == 1 {
				f, fits := a.FromUint64(p)
				if fits {
					acc, fits = a.CheckedMul(acc, f)
				}
				if !fits {
					ok = false
					return false
				}
				contributed = true
			}
		}
		if !contributed {
			return true
		}
		var fits bool
		product, fits = a.CheckedMul(product, acc)
		ok = fits
		return fits
	})
	if !ok {
		var zero T
		return zero, false
	}

	// medium primes: a single quotient, its parity decides
	s.PrimesBetween(root+1, n/3, func(p uint64) bool {
		if (n/p)&1 == 1 {
			return mulPrime(p)
		}
		return true
	})
	if !ok {
		var zero T
		return zero, false
	}

	// large primes: exponent exactly 1
	s.PrimesBetween(n/2+1, n, mulPrime)
	if !ok {
		var zero T
		return zero, false
	}

	return product, true
}

// isqrt returns ⌊√n⌋.
func isqrt(n uint64) uint64 {
	r := uint64(math.Sqrt(float64(n)))
	if r > math.MaxUint32 {
		r = math.MaxUint32
	}
	for r*r > n {
		r--
	}
	for s := r + 1; s <= n/s; s++ {
		r = s
	}
	return r
}
