// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package factorial

import (
	"time"

	"github.com/consensys/factorial/logger"
	"github.com/consensys/factorial/prime"
)

// linearCutoff is where building a sieve starts beating plain
// iterative multiplication. Any value is correct: the three strategies
// are interchangeable, only their cost differs.
const linearCutoff = 1200

// CheckedFactorial returns n! if it is representable in T.
//
// The strategy depends on the magnitude of n: lookup-table recursion
// below len(smallSwing), iterative multiplication below linearCutoff,
// and prime-swing recursion against a freshly built sieve beyond that.
func CheckedFactorial[T any](a Arithmetic[T], n T) (T, bool) {
	u, ok := a.ToUint64(n)
	if !ok {
		var zero T
		return zero, false
	}
	switch {
	case u < uint64(len(smallSwing)):
		return tableFactorial(a, u)
	case u < linearCutoff:
		return linearFactorial(a, u)
	}
	return swingFactorial(a, u, newSieve(u))
}

// Factorial returns n!, panicking if it does not fit T.
func Factorial[T any](a Arithmetic[T], n T) T {
	f, ok := CheckedFactorial(a, n)
	if !ok {
		panic("Overflow computing factorial")
	}
	return f
}

// CheckedFactorialWithSieve is CheckedFactorial for callers that
// already hold a sieve: it always takes the prime-swing path, whatever
// the magnitude of n, so the sieve's construction cost is paid once
// across many calls. The sieve must cover [2, n]; this precondition is
// not checked.
func CheckedFactorialWithSieve[T any](a Arithmetic[T], n T, s *prime.Sieve) (T, bool) {
	u, ok := a.ToUint64(n)
	if !ok {
		var zero T
		return zero, false
	}
	return swingFactorial(a, u, s)
}

func newSieve(bound uint64) *prime.Sieve {
	log := logger.Logger()
	start := time.Now()
	s := prime.New(bound)
	log.Debug().
		Uint64("bound", bound).
		Uint64("primes", s.Count()).
		Dur("took", time.Since(start)).
		Msg("built prime sieve")
	return s
}

// swingFactorial computes n! = (⌊n/2⌋!)² · swing(n), recursing on
// ⌊n/2⌋ until the lookup tables take over. Depth is O(log n) and each
// level costs one swing evaluation.
func swingFactorial[T any](a Arithmetic[T], n uint64, s *prime.Sieve) (T, bool) {
	if n < uint64(len(smallSwing)) {
		return tableFactorial(a, n)
	}
	half, ok := swingFactorial(a, n/2, s)
	if !ok {
		var zero T
		return zero, false
	}
	sw, ok := swingValue(a, n, s)
	if !ok {
		var zero T
		return zero, false
	}
	sq, ok := a.CheckedMul(half, half)
	if !ok {
		var zero T
		return zero, false
	}
	return a.CheckedMul(sq, sw)
}

// tableFactorial is the same recurrence with both the base case and
// swing(n) served from the generated tables, so no sieve is needed.
func tableFactorial[T any](a Arithmetic[T], n uint64) (T, bool) {
	if n < uint64(len(smallFactorial)) {
		e := smallFactorial[n]
		return a.FromUint128(e.hi, e.lo)
	}
	half, ok := tableFactorial(a, n/2)
	if !ok {
		var zero T
		return zero, false
	}
	e := smallSwing[n]
	sw, ok := a.FromUint128(e.hi, e.lo)
	if !ok {
		var zero T
		return zero, false
	}
	sq, ok := a.CheckedMul(half, half)
	if !ok {
		var zero T
		return zero, false
	}
	return a.CheckedMul(sq, sw)
}

// linearFactorial seeds the accumulator with the largest tabulated
// factorial and multiplies the remaining factors one by one.
func linearFactorial[T any](a Arithmetic[T], n uint64) (T, bool) {
	last := uint64(len(smallSwing)) - 1
	acc, ok := tableFactorial(a, last)
	if !ok {
		var zero T
		return zero, false
	}
	for i := last + 1; i <= n; i++ {
		f, fits := a.FromUint64(i)
		if fits {
			acc, fits = a.CheckedMul(acc, f)
		}
		if !fits {
			var zero T
			return zero, false
		}
	}
	return acc, true
}
