// SPDX-License-Identifier: MIT
//
// Package search provides the two classic lookup routines over slices:
// a linear scan for arbitrary input and a halving binary search for
// ascending input. Both return -1 when the target is absent.
package search

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// Linear returns the index of the first element equal to target, or -1.
func Linear[T comparable](values []T, target T) int {
	return slices.Index(values, target)
}

// Binary returns the index of an element equal to target in values, or
// -1. Values must be sorted in ascending order; with duplicates any
// matching index may be returned.
func Binary[T constraints.Ordered](values []T, target T) int {
	lo, hi := 0, len(values)-1
	for lo <= hi {
		// lo + (hi-lo)/2 cannot overflow the way (lo+hi)/2 can.
		mid := lo + (hi-lo)/2
		switch {
		case values[mid] == target:
			return mid
		case values[mid] < target:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}
	return -1
}

// IsSorted reports whether values are in ascending order.
func IsSorted[T constraints.Ordered](values []T) bool {
	return slices.IsSorted(values)
}
