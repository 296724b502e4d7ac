// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package factorial

import (
	"math/big"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Arithmetic is the capability set the engine needs from a numeric
// type: a multiplicative identity, overflow-checked multiplication,
// and lossless conversions to and from machine-sized integers (used
// for indexing, sieve sizing and table entries).
//
// Implementations must be stateless and must not mutate operands;
// every value handed back is owned by the caller.
type Arithmetic[T any] interface {
	// One returns the multiplicative identity.
	One() T

	// CheckedMul returns x·y, or false if the product is not
	// representable in T.
	CheckedMul(x, y T) (T, bool)

	// FromUint64 converts v to T, or false if v is not representable.
	FromUint64(v uint64) (T, bool)

	// FromUint128 converts hi·2⁶⁴+lo to T, or false if it is not
	// representable.
	FromUint128(hi, lo uint64) (T, bool)

	// ToUint64 converts x to a uint64, or false if x does not fit.
	ToUint64(x T) (uint64, bool)
}

// Uint returns the Arithmetic for a fixed-width unsigned integer type.
func Uint[T constraints.Unsigned]() Arithmetic[T] { return uintArith[T]{} }

// Big returns the Arithmetic for *big.Int values. Its checked
// operations never fail, so the checked entry points return a value
// for every n that fits a uint64.
func Big() Arithmetic[*big.Int] { return bigArith{} }

type uintArith[T constraints.Unsigned] struct{}

func (uintArith[T]) One() T { return 1 }

func (uintArith[T]) CheckedMul(x, y T) (T, bool) {
	hi, lo := bits.Mul64(uint64(x), uint64(y))
	if hi != 0 || uint64(T(lo)) != lo {
		return 0, false
	}
	return T(lo), true
}

func (uintArith[T]) FromUint64(v uint64) (T, bool) {
	if uint64(T(v)) != v {
		return 0, false
	}
	return T(v), true
}

func (a uintArith[T]) FromUint128(hi, lo uint64) (T, bool) {
	if hi != 0 {
		return 0, false
	}
	return a.FromUint64(lo)
}

func (uintArith[T]) ToUint64(x T) (uint64, bool) { return uint64(x), true }

type bigArith struct{}

func (bigArith) One() *big.Int { return big.NewInt(1) }

func (bigArith) CheckedMul(x, y *big.Int) (*big.Int, bool) {
	return new(big.Int).Mul(x, y), true
}

func (bigArith) FromUint64(v uint64) (*big.Int, bool) {
	return new(big.Int).SetUint64(v), true
}

func (bigArith) FromUint128(hi, lo uint64) (*big.Int, bool) {
	z := new(big.Int).SetUint64(hi)
	z.Lsh(z, 64)
	return z.Or(z, new(big.Int).SetUint64(lo)), true
}

func (bigArith) ToUint64(x *big.Int) (uint64, bool) {
	if !x.IsUint64() {
		return 0, false
	}
	return x.Uint64(), true
}
