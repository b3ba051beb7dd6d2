// SPDX-License-Identifier: MIT
package bitint

import "golang.org/x/exp/constraints"

// XorSwap exchanges *a and *b with three XORs and no temporary.
//
// When a and b point at the same variable the naive sequence would zero
// it (x ^= x), so aliased pointers are left untouched.
func XorSwap[T constraints.Integer](a, b *T) {
	if a == b {
		return
	}
	*a ^= *b
	*b ^= *a
	*a ^= *b
}

// Swap returns a and b exchanged, computed with the same XOR sequence as
// XorSwap.
func Swap[T constraints.Integer](a, b T) (T, T) {
	a ^= b
	b ^= a
	a ^= b
	return a, b
}
