// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package factorial

// CheckedDoubleFactorial returns n‼, the product of every integer of
// n's parity in [1, n], if it is representable in T. The computation
// is a plain checked accumulation; no sieve acceleration exists for
// the double factorial.
func CheckedDoubleFactorial[T any](a Arithmetic[T], n T) (T, bool) {
	u, ok := a.ToUint64(n)
	if !ok {
		var zero T
		return zero, false
	}
	acc := a.One()
	i := uint64(1)
	if u%2 == 0 {
		i = 2
	}
	for ; i <= u; i += 2 {
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

// DoubleFactorial returns n‼, panicking if it does not fit T.
func DoubleFactorial[T any](a Arithmetic[T], n T) T {
	f, ok := CheckedDoubleFactorial(a, n)
	if !ok {
		panic("Overflow computing double factorial")
	}
	return f
}
