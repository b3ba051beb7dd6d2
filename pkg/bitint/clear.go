// SPDX-License-Identifier: MIT
package bitint

import "golang.org/x/exp/constraints"

// ClearLowestSetBit returns num with its least significant 1-bit cleared.
// Zero stays zero.
//
// Examples:
//
//	Input  Output  Binary
//	12     8       1100 -> 1000
//	1      0       0001 -> 0000
func ClearLowestSetBit[T constraints.Integer](num T) T {
	return num & (num - 1)
}

// ClearBitsBelowOrAt clears every bit at position <= i and keeps the
// bits above i. The mask has its low i+1 bits zero:
//
//	^((1 << (i+1)) - 1)
//
// When i is the top bit, 1 << (i+1) shifts out to 0 and the mask becomes
// zero, so the whole word is cleared.
//
// Examples:
//
//	Input  i  Output  Binary
//	15     1  12      1111 -> 1100
//	15     0  14      1111 -> 1110
func ClearBitsBelowOrAt[T constraints.Integer](num T, i uint) T {
	mask := ^((T(1) << (i + 1)) - 1)
	return num & mask
}

// ClearBitsAboveOrAt clears every bit at position >= i and keeps the
// bits below i. The mask has only its low i bits set:
//
//	(1 << i) - 1
//
// For i == 0 the mask is empty and the result is 0.
//
// Examples:
//
//	Input  i  Output  Binary
//	15     1  1       1111 -> 0001
//	15     2  3       1111 -> 0011
func ClearBitsAboveOrAt[T constraints.Integer](num T, i uint) T {
	mask := (T(1) << i) - 1
	return num & mask
}
