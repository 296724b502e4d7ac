// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package factorial

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/consensys/factorial/prime"
)

// linearBig is the reference implementation: 1·2·…·n in arbitrary
// precision.
func linearBig(n uint64) *big.Int {
	f := big.NewInt(1)
	for i := uint64(2); i <= n; i++ {
		f.Mul(f, new(big.Int).SetUint64(i))
	}
	return f
}

func TestFactorialBoundaries(t *testing.T) {
	a := Uint[uint32]()
	assert.Equal(t, uint32(1), Factorial(a, uint32(0)))
	assert.Equal(t, uint32(1), Factorial(a, uint32(1)))
	assert.Equal(t, uint32(2), Factorial(a, uint32(2)))
	assert.Equal(t, uint32(3628800), Factorial(a, uint32(10)))
}

func TestFactorialMatchesLinearProduct(t *testing.T) {
	a := Big()
	// across the table bound, the linear/sieve crossover, and deep
	// into sieve territory
	for _, n := range []uint64{0, 1, 2, 33, 34, 35, 125, 126, 127, 128, 500, 1199, 1200, 1201, 2000, 8000} {
		got, ok := CheckedFactorial(a, new(big.Int).SetUint64(n))
		require.True(t, ok, "n=%d", n)
		require.Zero(t, got.Cmp(linearBig(n)), "n=%d", n)
	}
}

func TestUint32OverflowBoundary(t *testing.T) {
	a := Uint[uint32]()
	got, ok := CheckedFactorial(a, uint32(12))
	require.True(t, ok)
	assert.Equal(t, uint32(479001600), got)

	_, ok = CheckedFactorial(a, uint32(13))
	assert.False(t, ok)
}

func TestUint64OverflowBoundary(t *testing.T) {
	a := Uint[uint64]()
	got, ok := CheckedFactorial(a, uint64(20))
	require.True(t, ok)
	assert.Equal(t, uint64(2432902008176640000), got)

	_, ok = CheckedFactorial(a, uint64(21))
	assert.False(t, ok)
}

func TestFactorialPanicsOnOverflow(t *testing.T) {
	a := Uint[uint32]()
	assert.PanicsWithValue(t, "Overflow computing factorial", func() {
		Factorial(a, uint32(100))
	})
}

func TestBigNeverOverflows(t *testing.T) {
	a := Big()
	got, ok := CheckedFactorial(a, big.NewInt(100))
	require.True(t, ok)
	assert.Zero(t, got.Cmp(linearBig(100)))
}

func TestWithSieveAgreesWithDispatcher(t *testing.T) {
	a := Big()
	s := prime.New(600)
	// includes values below both lookup tables: the recursive sieve
	// path must reproduce the memoized values
	for n := uint64(0); n <= 600; n++ {
		want, ok := CheckedFactorial(a, new(big.Int).SetUint64(n))
		require.True(t, ok)
		got, ok := CheckedFactorialWithSieve(a, new(big.Int).SetUint64(n), s)
		require.True(t, ok)
		require.Zero(t, got.Cmp(want), "n=%d", n)
	}
}

func TestSieveReuse(t *testing.T) {
	a := Big()
	const na, nb = 500, 1500
	s := prime.New(nb)

	fa, ok := CheckedFactorialWithSieve(a, big.NewInt(na), s)
	require.True(t, ok)
	fb, ok := CheckedFactorialWithSieve(a, big.NewInt(nb), s)
	require.True(t, ok)

	assert.Zero(t, fa.Cmp(linearBig(na)))
	assert.Zero(t, fb.Cmp(linearBig(nb)))
}

func TestDeterministicWithReusedSieve(t *testing.T) {
	a := Big()
	s := prime.New(2000)
	first, ok := CheckedFactorialWithSieve(a, big.NewInt(2000), s)
	require.True(t, ok)
	for i := 0; i < 3; i++ {
		again, ok := CheckedFactorialWithSieve(a, big.NewInt(2000), s)
		require.True(t, ok)
		require.Zero(t, first.Cmp(again))
	}
}

func TestSharedSieveConcurrent(t *testing.T) {
	a := Big()
	s := prime.New(3000)
	var g errgroup.Group
	for n := uint64(1000); n <= 3000; n += 250 {
		n := n
		g.Go(func() error {
			got, ok := CheckedFactorialWithSieve(a, new(big.Int).SetUint64(n), s)
			if !ok {
				return fmt.Errorf("n=%d: unexpected overflow", n)
			}
			if got.Cmp(linearBig(n)) != 0 {
				return fmt.Errorf("n=%d: mismatch", n)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

func TestFactorialProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)
	a := Big()
	s := prime.New(3000)

	properties.Property("dispatcher == linear product", prop.ForAll(
		func(n uint64) bool {
			got, ok := CheckedFactorial(a, new(big.Int).SetUint64(n))
			return ok && got.Cmp(linearBig(n)) == 0
		},
		gen.UInt64Range(0, 1500),
	))

	properties.Property("with-sieve == dispatcher", prop.ForAll(
		func(n uint64) bool {
			want, okWant := CheckedFactorial(a, new(big.Int).SetUint64(n))
			got, okGot := CheckedFactorialWithSieve(a, new(big.Int).SetUint64(n), s)
			return okWant && okGot && got.Cmp(want) == 0
		},
		gen.UInt64Range(0, 3000),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
