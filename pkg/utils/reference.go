// SPDX-License-Identifier: MIT
//
// Package utils holds slow, obviously-correct reference implementations
// of the closed forms in pkg/bitint, and a cross-checker that compares
// the two over a range of inputs.
package utils

import (
	"fmt"

	"bitkit/pkg/bitint"

	"gonum.org/v1/gonum/stat/combin"
)

// FoldXor returns l ^ (l+1) ^ ... ^ r by iterating the range. An empty
// range (l > r) folds to 0. The loop stops at r before incrementing, so
// r may be math.MaxInt64.
func FoldXor(l, r int64) int64 {
	var acc int64
	if l > r {
		return acc
	}
	for v := l; ; v++ {
		acc ^= v
		if v == r {
			return acc
		}
	}
}

// ShiftCount counts the 1-bits in the low width bits of v one bit at a
// time.
func ShiftCount(v uint64, width uint) int {
	count := 0
	for i := uint(0); i < width; i++ {
		count += int(v & 1)
		v >>= 1
	}
	return count
}

// RepeatedProduct returns base multiplied by itself exponent times.
func RepeatedProduct(base, exponent int64) int64 {
	result := int64(1)
	for i := int64(0); i < exponent; i++ {
		result *= base
	}
	return result
}

// SubsetSizeHistogram returns, for each k in [0, n], the number of
// k-element subsets of an n-element set.
func SubsetSizeHistogram(n int) []int {
	histogram := make([]int, n+1)
	for k := range histogram {
		histogram[k] = combin.Binomial(n, k)
	}
	return histogram
}

// Mismatch records one input where a closed form disagreed with its
// reference implementation.
type Mismatch struct {
	Operation string
	Input     string
	Got       int64
	Want      int64
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s(%s) = %d, reference %d", m.Operation, m.Input, m.Got, m.Want)
}

// powerCheckBase is the base used for exponent sweeps; 3^39 still fits
// in an int64 and larger exponents exercise wraparound on both sides.
const powerCheckBase = 3

// CrossCheck compares PrefixXor, RangeXor, CountSetBits, Power and
// PowerSet against the references above for inputs in [0, limit] and
// returns every disagreement found. A negative limit checks nothing.
func CrossCheck(limit int64) []Mismatch {
	var mismatches []Mismatch
	record := func(op, input string, got, want int64) {
		if got != want {
			mismatches = append(mismatches, Mismatch{Operation: op, Input: input, Got: got, Want: want})
		}
	}

	if limit < 0 {
		return nil
	}

	for n := int64(0); ; n++ {
		record("PrefixXor", fmt.Sprint(n), bitint.PrefixXor(n), FoldXor(1, n))
		record("CountSetBits", fmt.Sprint(n), int64(bitint.CountSetBits(n)), int64(ShiftCount(uint64(n), 64)))
		record("CountSetBits", fmt.Sprint(-n), int64(bitint.CountSetBits(-n)), int64(ShiftCount(uint64(-n), 64)))
		record("Power", fmt.Sprintf("%d, %d", powerCheckBase, n%64), bitint.Power(powerCheckBase, n%64), RepeatedProduct(powerCheckBase, n%64))
		if n == limit {
			break
		}
	}

	// Range XOR is quadratic in the limit, so sweep a bounded window.
	window := min(limit, 256)
	for l := int64(0); l <= window; l++ {
		for r := l; r <= window; r++ {
			record("RangeXor", fmt.Sprintf("%d, %d", l, r), bitint.RangeXor(l, r), FoldXor(l, r))
		}
	}

	for n := 0; n <= min(int(limit), 12); n++ {
		histogram := make([]int, n+1)
		for _, subset := range bitint.PowerSet(make([]struct{}, n)) {
			histogram[len(subset)]++
		}
		for k, want := range SubsetSizeHistogram(n) {
			record("PowerSet", fmt.Sprintf("n=%d, k=%d", n, k), int64(histogram[k]), int64(want))
		}
	}

	return mismatches
}
