// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package prime

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSmallPrimes(t *testing.T) {
	s := New(30)
	var got []uint64
	s.PrimesBetween(0, 30, func(p uint64) bool {
		got = append(got, p)
		return true
	})
	assert.Equal(t, []uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}, got)
}

func TestCount(t *testing.T) {
	assert.Equal(t, uint64(168), New(1000).Count())
	assert.Equal(t, uint64(25), New(100).Count())
	assert.Equal(t, uint64(1), New(2).Count())
	assert.Equal(t, uint64(0), New(1).Count())
	assert.Equal(t, uint64(0), New(0).Count())
}

func TestIsPrime(t *testing.T) {
	s := New(100)
	for _, p := range []uint64{2, 3, 5, 97} {
		assert.True(t, s.IsPrime(p), "p=%d", p)
	}
	for _, c := range []uint64{0, 1, 4, 91, 100} {
		assert.False(t, s.IsPrime(c), "c=%d", c)
	}
}

func TestResumeFromArbitraryStart(t *testing.T) {
	s := New(100)

	var got []uint64
	s.PrimesBetween(10, 20, func(p uint64) bool {
		got = append(got, p)
		return true
	})
	assert.Equal(t, []uint64{11, 13, 17, 19}, got)

	// hi beyond the bound is clamped
	got = got[:0]
	s.PrimesBetween(90, 200, func(p uint64) bool {
		got = append(got, p)
		return true
	})
	assert.Equal(t, []uint64{97}, got)
}

func TestEarlyStop(t *testing.T) {
	s := New(100)
	var seen int
	s.PrimesBetween(2, 100, func(p uint64) bool {
		seen++
		return seen < 3
	})
	assert.Equal(t, 3, seen)
}

func TestLimit(t *testing.T) {
	assert.Equal(t, uint64(64), New(64).Limit())
}
