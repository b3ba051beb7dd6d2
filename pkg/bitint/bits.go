// SPDX-License-Identifier: MIT
package bitint

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Width returns the number of bits in T.
func Width[T constraints.Integer]() uint {
	var zero T
	return uint(unsafe.Sizeof(zero)) * 8
}

// ValidIndex reports whether i addresses a bit of T.
func ValidIndex[T constraints.Integer](i uint) bool {
	return i < Width[T]()
}

// SetBit returns num with bit i forced to 1.
//
// Examples:
//
//	Input   i  Output  Binary
//	5       1  7       101 -> 111
//	7       1  7       Already set
func SetBit[T constraints.Integer](num T, i uint) T {
	return num | T(1)<<i
}

// ClearBit returns num with bit i forced to 0.
//
// Examples:
//
//	Input   i  Output  Binary
//	7       1  5       111 -> 101
//	5       1  5       Already clear
func ClearBit[T constraints.Integer](num T, i uint) T {
	return num &^ (T(1) << i)
}

// ToggleBit returns num with bit i inverted.
func ToggleBit[T constraints.Integer](num T, i uint) T {
	return num ^ T(1)<<i
}

// IsSet reports whether bit i of num is 1.
func IsSet[T constraints.Integer](num T, i uint) bool {
	return ExtractBit(num, i) == 1
}

// ExtractBit returns bit i of num as 0 or 1.
func ExtractBit[T constraints.Integer](num T, i uint) T {
	return (num >> i) & 1
}

// Complement flips every bit of num (one's complement).
func Complement[T constraints.Integer](num T) T {
	return ^num
}

// TwosComplement returns ^num + 1, the arithmetic negation of num in
// two's-complement form. The most negative value of a signed type wraps
// to itself.
func TwosComplement[T constraints.Integer](num T) T {
	return Complement(num) + 1
}

// IsEven reports whether the least significant bit of num is 0.
func IsEven[T constraints.Integer](num T) bool {
	return num&1 == 0
}
