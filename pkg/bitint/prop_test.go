// SPDX-License-Identifier: MIT
package bitint

import (
	"math/bits"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

const minSuccessfulTests = 2000

func newProperties() *gopter.Properties {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = minSuccessfulTests
	return gopter.NewProperties(parameters)
}

func TestBitAccessorProperties(t *testing.T) {
	props := newProperties()
	index := gen.UIntRange(0, 63)

	props.Property("set bit reads back as set", prop.ForAll(func(n int64, i uint) bool {
		return IsSet(SetBit(n, i), i)
	}, gen.Int64(), index))

	props.Property("cleared bit reads back as clear", prop.ForAll(func(n int64, i uint) bool {
		return !IsSet(ClearBit(n, i), i)
	}, gen.Int64(), index))

	props.Property("toggle is an involution", prop.ForAll(func(n int64, i uint) bool {
		return ToggleBit(ToggleBit(n, i), i) == n
	}, gen.Int64(), index))

	props.Property("mutators touch only bit i", prop.ForAll(func(n int64, i uint) bool {
		other := ^(int64(1) << i)
		return SetBit(n, i)&other == n&other &&
			ClearBit(n, i)&other == n&other &&
			ToggleBit(n, i)&other == n&other
	}, gen.Int64(), index))

	props.TestingRun(t)
}

func TestCountingProperties(t *testing.T) {
	props := newProperties()

	props.Property("popcount of word and complement covers the width", prop.ForAll(func(n int32) bool {
		return CountSetBits(n)+CountSetBits(Complement(n)) == int(Width[int32]())
	}, gen.Int32()))

	props.Property("popcount matches the unsigned pattern", prop.ForAll(func(n int16) bool {
		return CountSetBits(n) == bits.OnesCount16(uint16(n))
	}, gen.Int16()))

	props.Property("n & -n isolates the lowest set bit", prop.ForAll(func(n int64) bool {
		if n == 0 {
			return LowestSetBitPosition(n) == -1
		}
		low := LowestSetBit(n)
		return CountSetBits(low) == 1 &&
			uint64(low) == uint64(1)<<uint(LowestSetBitPosition(n)) &&
			bits.Len64(uint64(low))-1 == LowestSetBitPosition(n)
	}, gen.Int64()))

	props.Property("power of two has exactly one bit and is positive", prop.ForAll(func(n int64) bool {
		return IsPowerOfTwo(n) == (n > 0 && CountSetBits(n) == 1)
	}, gen.Int64()))

	props.TestingRun(t)
}

func TestSequenceProperties(t *testing.T) {
	props := newProperties()

	props.Property("range xor matches a fold", prop.ForAll(func(l, span int) bool {
		r := l + span
		acc := 0
		for v := l; v <= r; v++ {
			acc ^= v
		}
		return RangeXor(l, r) == acc
	}, gen.IntRange(0, 5000), gen.IntRange(0, 500)))

	props.Property("power matches repeated multiplication", prop.ForAll(func(base, exponent int64) bool {
		expected := int64(1)
		for i := int64(0); i < exponent; i++ {
			expected *= base
		}
		return Power(base, exponent) == expected
	}, gen.Int64Range(-50, 50), gen.Int64Range(0, 80)))

	props.Property("swap exchanges values", prop.ForAll(func(a, b int64) bool {
		x, y := a, b
		XorSwap(&x, &y)
		sa, sb := Swap(a, b)
		return x == b && y == a && sa == b && sb == a
	}, gen.Int64(), gen.Int64()))

	props.TestingRun(t)
}

func TestRangeClearProperties(t *testing.T) {
	props := newProperties()

	props.Property("below and above masks partition the word", prop.ForAll(func(n int64, i uint) bool {
		below := ClearBitsBelowOrAt(n, i)
		above := ClearBitsAboveOrAt(n, i)
		return below|above|(n&(int64(1)<<i)) == n && below&above == 0
	}, gen.Int64(), gen.UIntRange(0, 63)))

	props.TestingRun(t)
}
