/*
Package bitint provides bit manipulation functions over fixed-width
integers. Every function is generic over the Go integer types and works
on the value's own width: an int8 has bits 0..7, an int64 bits 0..63.

Design Principles:
- Value Semantics: Mutators return the new word instead of writing through a pointer
- Zero Allocations: Word operations use stack memory only
- Predictable Performance: O(1) for single-word operations, O(log n) for Power
- Concurrency Safe: No package state, no locks

Usage:

	// Flip a flag and read it back
	flags = bitint.ToggleBit(flags, 3)
	enabled := bitint.IsSet(flags, 3)

	// XOR of every integer in [5, 10] without a loop
	x := bitint.RangeXor(5, 10) // Returns 15

----------------------------------------------------------------------

Bit indices:

	A bit index is a uint counted from the least significant bit. Valid
	indices lie in [0, Width[T]()). Passing a larger index is outside the
	contract of every function in this package. Go does not wrap shift
	counts: 1 << i is 0 once i reaches the width, so SetBit, ClearBit and
	ToggleBit leave the word unchanged and the range clears degrade to the
	all-zero mask. Use ValidIndex when the index comes from user input.

Signed words:

	Operations read the two's-complement bit pattern. CountSetBits(-1)
	on an int32 is 32, LowestSetBitPosition(math.MinInt64) is 63 and
	TwosComplement(math.MinInt8) wraps back to math.MinInt8.
*/
package bitint
