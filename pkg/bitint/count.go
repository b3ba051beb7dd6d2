// SPDX-License-Identifier: MIT
package bitint

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// patternMask returns the low Width[T]() bits set, used to drop the sign
// extension a signed value picks up when widened to uint64.
func patternMask[T constraints.Integer]() uint64 {
	w := Width[T]()
	if w >= 64 {
		return ^uint64(0)
	}
	return 1<<w - 1
}

// CountSetBits returns the Hamming weight of num's bit pattern. Signed
// values are reinterpreted as an unsigned word of the same width, so the
// result always lies in [0, Width[T]()].
//
// Examples:
//
//	Input        Output
//	int8(5)      2
//	int8(-1)     8
//	int32(-1)    32
func CountSetBits[T constraints.Integer](num T) int {
	return bits.OnesCount64(uint64(num) & patternMask[T]())
}

// LowestSetBit isolates the least significant 1-bit of num using the
// two's-complement identity num & -num. Zero yields zero.
func LowestSetBit[T constraints.Integer](num T) T {
	return num & -num
}

// LowestSetBitPosition returns the 0-indexed position of the least
// significant 1-bit of num, or -1 when num is 0.
func LowestSetBitPosition[T constraints.Integer](num T) int {
	if num == 0 {
		return -1
	}
	// Sign extension only adds high bits, so trailing zeros are unaffected.
	return bits.TrailingZeros64(uint64(num))
}
