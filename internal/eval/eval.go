// SPDX-License-Identifier: MIT
//
// Package eval maps operation names typed on the command line to the
// functions in pkg/bitint. Arguments are parsed as int64 words with Go
// literal syntax, so 0b1010, 0x1f and -7 are all accepted.
package eval

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"bitkit/internal/demo"
	"bitkit/pkg/bitint"

	"github.com/pkg/errors"
)

var (
	// ErrUnknownOperation is returned for a name with no registered operation.
	ErrUnknownOperation = errors.New("unknown operation")
	// ErrArgCount is returned when the number of arguments does not match.
	ErrArgCount = errors.New("wrong number of arguments")
	// ErrBadArgument is returned when an argument is not an integer or is
	// outside the operation's domain.
	ErrBadArgument = errors.New("bad argument")
)

// Kind says how a Result is printed.
type Kind int

const (
	KindWord   Kind = iota // Decimal plus binary
	KindNumber             // Decimal only
	KindBool
)

// Result is the outcome of one operation. Swap yields two words; every
// other operation yields one value.
type Result struct {
	Kind   Kind
	Values []int64
	Bool   bool
}

// Format renders the result, showing words at the given bit width.
func (r Result) Format(width int) string {
	if r.Kind == KindBool {
		return strconv.FormatBool(r.Bool)
	}
	parts := make([]string, len(r.Values))
	for i, v := range r.Values {
		if r.Kind == KindWord {
			parts[i] = demo.FormatWord(v, width)
		} else {
			parts[i] = strconv.FormatInt(v, 10)
		}
	}
	return strings.Join(parts, " ")
}

// Operation describes one named function.
type Operation struct {
	Name    string
	Args    []string
	Summary string
	apply   func(args []int64) (Result, error)
}

// Usage returns "name arg1 arg2".
func (o Operation) Usage() string {
	return strings.TrimSpace(o.Name + " " + strings.Join(o.Args, " "))
}

func word(v int64) (Result, error)   { return Result{Kind: KindWord, Values: []int64{v}}, nil }
func number(v int64) (Result, error) { return Result{Kind: KindNumber, Values: []int64{v}}, nil }
func boolean(b bool) (Result, error) { return Result{Kind: KindBool, Bool: b}, nil }

func bitIndex(v int64) (uint, error) {
	if v < 0 || !bitint.ValidIndex[int64](uint(v)) {
		return 0, errors.Wrapf(ErrBadArgument, "bit index %d outside [0, %d)", v, bitint.Width[int64]())
	}
	return uint(v), nil
}

// indexed adapts a (word, bit index) function.
func indexed(fn func(n int64, i uint) (Result, error)) func([]int64) (Result, error) {
	return func(args []int64) (Result, error) {
		i, err := bitIndex(args[1])
		if err != nil {
			return Result{}, err
		}
		return fn(args[0], i)
	}
}

var operations = []Operation{
	{"setbit", []string{"n", "i"}, "force bit i to 1", indexed(func(n int64, i uint) (Result, error) {
		return word(bitint.SetBit(n, i))
	})},
	{"clearbit", []string{"n", "i"}, "force bit i to 0", indexed(func(n int64, i uint) (Result, error) {
		return word(bitint.ClearBit(n, i))
	})},
	{"togglebit", []string{"n", "i"}, "invert bit i", indexed(func(n int64, i uint) (Result, error) {
		return word(bitint.ToggleBit(n, i))
	})},
	{"isset", []string{"n", "i"}, "report whether bit i is 1", indexed(func(n int64, i uint) (Result, error) {
		return boolean(bitint.IsSet(n, i))
	})},
	{"extract", []string{"n", "i"}, "bit i as 0 or 1", indexed(func(n int64, i uint) (Result, error) {
		return number(bitint.ExtractBit(n, i))
	})},
	{"complement", []string{"n"}, "one's complement", func(a []int64) (Result, error) {
		return word(bitint.Complement(a[0]))
	}},
	{"twos", []string{"n"}, "two's complement negation", func(a []int64) (Result, error) {
		return word(bitint.TwosComplement(a[0]))
	}},
	{"clearlowest", []string{"n"}, "clear the lowest set bit", func(a []int64) (Result, error) {
		return word(bitint.ClearLowestSetBit(a[0]))
	}},
	{"clearbelow", []string{"n", "i"}, "clear bits 0..i", indexed(func(n int64, i uint) (Result, error) {
		return word(bitint.ClearBitsBelowOrAt(n, i))
	})},
	{"clearabove", []string{"n", "i"}, "clear bits i..63", indexed(func(n int64, i uint) (Result, error) {
		return word(bitint.ClearBitsAboveOrAt(n, i))
	})},
	{"popcount", []string{"n"}, "number of set bits", func(a []int64) (Result, error) {
		return number(int64(bitint.CountSetBits(a[0])))
	}},
	{"pow2", []string{"n"}, "report whether n is a power of two", func(a []int64) (Result, error) {
		return boolean(bitint.IsPowerOfTwo(a[0]))
	}},
	{"lsb", []string{"n"}, "position of the lowest set bit, -1 for 0", func(a []int64) (Result, error) {
		return number(int64(bitint.LowestSetBitPosition(a[0])))
	}},
	{"lowbit", []string{"n"}, "isolate the lowest set bit", func(a []int64) (Result, error) {
		return word(bitint.LowestSetBit(a[0]))
	}},
	{"nextpow2", []string{"n"}, "smallest power of two >= n", func(a []int64) (Result, error) {
		return number(bitint.NextPowerOfTwo(a[0]))
	}},
	{"xor", []string{"n"}, "XOR of 1..n", func(a []int64) (Result, error) {
		if a[0] < 0 {
			return Result{}, errors.Wrapf(ErrBadArgument, "n %d must not be negative", a[0])
		}
		return number(bitint.PrefixXor(a[0]))
	}},
	{"rangexor", []string{"l", "r"}, "XOR of l..r", func(a []int64) (Result, error) {
		if a[0] < 0 || a[0] > a[1] {
			return Result{}, errors.Wrapf(ErrBadArgument, "range [%d, %d] must satisfy 0 <= l <= r", a[0], a[1])
		}
		return number(bitint.RangeXor(a[0], a[1]))
	}},
	{"power", []string{"base", "exponent"}, "base^exponent by squaring", func(a []int64) (Result, error) {
		if a[1] < 0 {
			return Result{}, errors.Wrapf(ErrBadArgument, "exponent %d must not be negative", a[1])
		}
		return number(bitint.Power(a[0], a[1]))
	}},
	{"even", []string{"n"}, "report whether n is even", func(a []int64) (Result, error) {
		return boolean(bitint.IsEven(a[0]))
	}},
	{"swap", []string{"a", "b"}, "exchange a and b with XOR", func(a []int64) (Result, error) {
		x, y := a[0], a[1]
		bitint.XorSwap(&x, &y)
		return Result{Kind: KindWord, Values: []int64{x, y}}, nil
	}},
}

var byName = func() map[string]Operation {
	m := make(map[string]Operation, len(operations))
	for _, op := range operations {
		m[op.Name] = op
	}
	return m
}()

// Lookup returns the operation registered under name.
func Lookup(name string) (Operation, bool) {
	op, ok := byName[strings.ToLower(name)]
	return op, ok
}

// Operations returns every operation sorted by name.
func Operations() []Operation {
	ops := append([]Operation(nil), operations...)
	sort.Slice(ops, func(i, j int) bool { return ops[i].Name < ops[j].Name })
	return ops
}

// ParseWord parses a decimal, 0b, 0o or 0x integer literal.
func ParseWord(s string) (int64, error) {
	v, err := strconv.ParseInt(s, 0, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrBadArgument, "%q is not an integer", s)
	}
	return v, nil
}

// Evaluate runs the operation called name on the given arguments.
func Evaluate(name string, args []string) (Result, error) {
	op, ok := Lookup(name)
	if !ok {
		return Result{}, errors.Wrapf(ErrUnknownOperation, "%q", name)
	}
	if len(args) != len(op.Args) {
		return Result{}, errors.Wrapf(ErrArgCount, "usage: %s", op.Usage())
	}

	words := make([]int64, len(args))
	for i, arg := range args {
		v, err := ParseWord(arg)
		if err != nil {
			return Result{}, errors.Wrapf(err, "argument %s", op.Args[i])
		}
		words[i] = v
	}

	result, err := op.apply(words)
	if err != nil {
		return Result{}, errors.Wrap(err, op.Name)
	}
	return result, nil
}

// Help lists every operation with its usage and summary.
func Help() string {
	var sb strings.Builder
	for _, op := range Operations() {
		fmt.Fprintf(&sb, "  %-22s %s\n", op.Usage(), op.Summary)
	}
	return sb.String()
}
