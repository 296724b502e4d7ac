// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package prime provides a fixed-bound sieve of Eratosthenes with
// ordered, resumable prime enumeration.
package prime

import (
	"github.com/bits-and-blooms/bitset"
)

// Sieve knows every prime up to a fixed bound. It is immutable once
// constructed and safe for concurrent readers, so a single sieve can
// back any number of simultaneous factorial computations with
// arguments up to its bound.
type Sieve struct {
	limit uint64
	b     *bitset.BitSet // bit v set ⇔ v is prime
}

// New builds a sieve covering [2, limit].
func New(limit uint64) *Sieve {
	b := bitset.New(uint(limit) + 1)
	if limit >= 2 {
		b.FlipRange(2, uint(limit)+1)
	}
	for p := uint64(2); p*p <= limit; p++ {
		if !b.Test(uint(p)) {
			continue
		}
		for m := p * p; m <= limit; m += p {
			b.Clear(uint(m))
		}
	}
	return &Sieve{limit: limit, b: b}
}

// Limit returns the bound the sieve was built with. Primality is
// answered correctly for every value up to and including it.
func (s *Sieve) Limit() uint64 { return s.limit }

// IsPrime reports whether v is prime. v must not exceed Limit().
func (s *Sieve) IsPrime(v uint64) bool { return s.b.Test(uint(v)) }

// Count returns the number of primes not exceeding Limit().
func (s *Sieve) Count() uint64 { return uint64(s.b.Count()) }

// PrimesBetween calls fn with every prime in [lo, hi] in increasing
// order, stopping early if fn returns false. hi is clamped to the
// sieve bound, so enumeration may resume from any starting value.
func (s *Sieve) PrimesBetween(lo, hi uint64, fn func(p uint64) bool) {
	if hi > s.limit {
		hi = s.limit
	}
	if lo < 2 {
		lo = 2
	}
	for v, ok := s.b.NextSet(uint(lo)); ok && uint64(v) <= hi; v, ok = s.b.NextSet(v + 1) {
		if !fn(uint64(v)) {
			return
		}
	}
}
