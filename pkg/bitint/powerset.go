// SPDX-License-Identifier: MIT
package bitint

import (
	"fmt"
	"math/bits"
)

const (
	// MaxPowerSetElements is the largest input PowerSet is meant for.
	// 2^20 subsets is already about a million slices.
	MaxPowerSetElements = 20

	// MaxSubsetMaskBits is the hard limit imposed by the uint64 mask.
	// Larger inputs panic.
	MaxSubsetMaskBits = 63
)

// PowerSet returns all 2^n subsets of elements. Subset k holds the
// elements whose index is a set bit of k, so subsets appear in increasing
// mask order and each one keeps the input order:
//
//	PowerSet([]int{1, 2}) // [[] [1] [2] [1 2]]
//
// Callers bound len(elements); see MaxPowerSetElements.
func PowerSet[E any](elements []E) [][]E {
	total := subsetCount(len(elements))
	powerSet := make([][]E, 0, total)
	for mask := uint64(0); mask < total; mask++ {
		subset := make([]E, 0, bits.OnesCount64(mask))
		powerSet = append(powerSet, appendSubset(subset, elements, mask))
	}
	return powerSet
}

// EachSubset calls fn for every subset of elements in the same order as
// PowerSet without materializing the result. The slice passed to fn is
// reused between calls and must be copied if retained. Iteration stops at
// the first error returned by fn.
func EachSubset[E any](elements []E, fn func(subset []E) error) error {
	total := subsetCount(len(elements))
	subset := make([]E, 0, len(elements))
	for mask := uint64(0); mask < total; mask++ {
		subset = appendSubset(subset[:0], elements, mask)
		if err := fn(subset); err != nil {
			return err
		}
	}
	return nil
}

func subsetCount(n int) uint64 {
	if n > MaxSubsetMaskBits {
		panic(fmt.Sprintf("bitint: power set of %d elements exceeds %d-bit mask", n, MaxSubsetMaskBits))
	}
	return uint64(1) << uint(n)
}

func appendSubset[E any](dst, elements []E, mask uint64) []E {
	for mask != 0 {
		i := bits.TrailingZeros64(mask)
		dst = append(dst, elements[i])
		mask = ClearLowestSetBit(mask)
	}
	return dst
}
