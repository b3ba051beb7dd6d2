// SPDX-License-Identifier: MIT
package bitint

import "golang.org/x/exp/constraints"

// PrefixXor returns 1 ^ 2 ^ ... ^ n in constant time.
//
// The running XOR repeats with period 4:
//
//	n mod 4  Result
//	0        n
//	1        1
//	2        n + 1
//	3        0
//
// PrefixXor(0) is the empty XOR, 0. Negative n also yields 0 so that
// RangeXor can evaluate PrefixXor(l-1) for l == 0.
func PrefixXor[T constraints.Integer](n T) T {
	if n <= 0 {
		return 0
	}
	switch n % 4 {
	case 0:
		return n
	case 1:
		return 1
	case 2:
		return n + 1
	default:
		return 0
	}
}

// RangeXor returns l ^ (l+1) ^ ... ^ r as PrefixXor(r) ^ PrefixXor(l-1).
// The caller guarantees 0 <= l <= r.
//
// Examples:
//
//	l  r   Output
//	5  10  15
//	0  3   0
//	7  7   7
func RangeXor[T constraints.Integer](l, r T) T {
	// l-1 would wrap for unsigned types; XOR over [0, r] equals [1, r].
	if l == 0 {
		return PrefixXor(r)
	}
	return PrefixXor(r) ^ PrefixXor(l-1)
}
