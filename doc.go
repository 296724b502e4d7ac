// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package factorial computes exact factorials and double factorials of
// unsigned integers of arbitrary magnitude.
//
// Large factorials are computed with Luschny's prime-swing algorithm:
//
//	n! = (⌊n/2⌋!)² · swing(n)
//
// where swing(n) is a product over the primes up to n, read off a
// sieve in O(π(n)) checked multiplications per recursion level. Small
// inputs are served from generated lookup tables, middling ones by
// plain iterative multiplication.
//
// The engine is generic over an Arithmetic capability, so the same
// code runs against every fixed-width unsigned type (with overflow
// reported, never wrapped) and against math/big integers (where
// overflow cannot occur).
package factorial
