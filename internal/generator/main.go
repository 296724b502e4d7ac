// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Regenerates the lookup tables of the root package: every factorial
// and every swing value that fits 128 bits, from first principles
// (big.Int, no sieve), stored as hi/lo pairs.
package main

import (
	"log"
	"math/big"

	"github.com/consensys/bavard"
)

type entry struct {
	Hi, Lo uint64
	Dec    string
}

type tableData struct {
	Factorials []entry
	Swings     []entry
}

//go:generate go run main.go
func main() {
	var d tableData

	f := big.NewInt(1)
	for n := int64(0); f.BitLen() <= 128; n++ {
		d.Factorials = append(d.Factorials, split(f))
		f = new(big.Int).Mul(f, big.NewInt(n+1))
	}

	for n := int64(0); ; n++ {
		s := swing(n)
		if s.BitLen() > 128 {
			break
		}
		d.Swings = append(d.Swings, split(s))
	}

	if err := bavard.GenerateFromString("../../tables.go", []string{tablesTemplate}, d,
		bavard.Package("factorial"),
		bavard.Apache2("Consensys Software Inc.", 2020),
		bavard.GeneratedBy("factorial"),
	); err != nil {
		log.Fatal(err)
	}
}

// swing returns n!/(⌊n/2⌋!)²; with m = ⌊n/2⌋ this is C(2m, m) for
// even n and (m+1)·C(2m+1, m) for odd n.
func swing(n int64) *big.Int {
	m := n / 2
	s := new(big.Int).Binomial(n, m)
	if n&1 == 1 {
		s.Mul(s, big.NewInt(m+1))
	}
	return s
}

func split(v *big.Int) entry {
	lo := new(big.Int).And(v, new(big.Int).SetUint64(^uint64(0)))
	hi := new(big.Int).Rsh(v, 64)
	return entry{Hi: hi.Uint64(), Lo: lo.Uint64(), Dec: v.String()}
}

const tablesTemplate = `

// uint128 holds an exact table entry, hi·2⁶⁴ + lo. Entries enter the
// computation through Arithmetic.FromUint128, so a narrow target type
// rejects out-of-range values itself.
type uint128 struct {
	hi, lo uint64
}

// smallFactorial[i] = i!, every factorial below 2¹²⁸.
var smallFactorial = [{{len .Factorials}}]uint128{
{{- range .Factorials}}
	{hi: {{.Hi}}, lo: {{.Lo}}}, // {{.Dec}}
{{- end}}
}

// smallSwing[i] = swing(i) = i!/(⌊i/2⌋!)², every swing up to the
// first 128-bit overflow.
// Covers strictly more indices than smallFactorial, so it sets the
// bound of the table-only fast path.
var smallSwing = [{{len .Swings}}]uint128{
{{- range .Swings}}
	{hi: {{.Hi}}, lo: {{.Lo}}}, // {{.Dec}}
{{- end}}
}
`
