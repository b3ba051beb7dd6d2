// SPDX-License-Identifier: MIT
package eval

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		op       string
		args     []string
		width    int
		expected string
	}{
		{"setbit", []string{"5", "1"}, 8, "7 (00000111)"},
		{"clearbit", []string{"7", "1"}, 8, "5 (00000101)"},
		{"togglebit", []string{"5", "0"}, 8, "4 (00000100)"},
		{"isset", []string{"5", "2"}, 8, "true"},
		{"extract", []string{"5", "1"}, 8, "0"},
		{"complement", []string{"0"}, 8, "-1 (11111111)"},
		{"twos", []string{"5"}, 8, "-5 (11111011)"},
		{"clearlowest", []string{"12"}, 4, "8 (1000)"},
		{"clearbelow", []string{"0b1111", "1"}, 4, "12 (1100)"},
		{"clearabove", []string{"0b1111", "1"}, 4, "1 (0001)"},
		{"popcount", []string{"-1"}, 8, "64"},
		{"pow2", []string{"6"}, 8, "false"},
		{"lsb", []string{"0"}, 8, "-1"},
		{"lsb", []string{"0x10"}, 8, "4"},
		{"lowbit", []string{"12"}, 4, "4 (0100)"},
		{"nextpow2", []string{"1000"}, 8, "1024"},
		{"xor", []string{"5"}, 8, "1"},
		{"rangexor", []string{"5", "10"}, 8, "15"},
		{"power", []string{"2", "10"}, 8, "1024"},
		{"power", []string{"3", "0"}, 8, "1"},
		{"even", []string{"-4"}, 8, "true"},
		{"swap", []string{"3", "9"}, 4, "9 (1001) 3 (0011)"},
		{"SETBIT", []string{"0", "63"}, 8, "-9223372036854775808 (00000000)"},
	}

	for _, tt := range tests {
		t.Run(tt.op+" "+strings.Join(tt.args, " "), func(t *testing.T) {
			result, err := Evaluate(tt.op, tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result.Format(tt.width))
		})
	}
}

func TestEvaluateErrors(t *testing.T) {
	tests := []struct {
		name string
		op   string
		args []string
		want error
	}{
		{"Unknown", "rotate", []string{"1"}, ErrUnknownOperation},
		{"Too Few", "setbit", []string{"1"}, ErrArgCount},
		{"Too Many", "popcount", []string{"1", "2"}, ErrArgCount},
		{"Not A Number", "popcount", []string{"ten"}, ErrBadArgument},
		{"Index Too Large", "setbit", []string{"1", "64"}, ErrBadArgument},
		{"Negative Index", "isset", []string{"1", "-1"}, ErrBadArgument},
		{"Negative Exponent", "power", []string{"2", "-1"}, ErrBadArgument},
		{"Reversed Range", "rangexor", []string{"10", "5"}, ErrBadArgument},
		{"Negative Prefix", "xor", []string{"-3"}, ErrBadArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Evaluate(tt.op, tt.args)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "error %v should wrap %v", err, tt.want)
			assert.Equal(t, tt.want, errors.Cause(err))
		})
	}
}

func TestOperationsSortedAndComplete(t *testing.T) {
	ops := Operations()
	require.Len(t, ops, len(operations))
	for i := 1; i < len(ops); i++ {
		assert.Less(t, ops[i-1].Name, ops[i].Name)
	}

	for _, name := range []string{"setbit", "clearbit", "togglebit", "isset", "extract", "complement",
		"twos", "clearlowest", "clearbelow", "clearabove", "popcount", "pow2", "lsb", "lowbit",
		"nextpow2", "xor", "rangexor", "power", "even", "swap"} {
		_, ok := Lookup(name)
		assert.True(t, ok, "operation %s missing", name)
	}
}

func TestHelp(t *testing.T) {
	help := Help()
	assert.Contains(t, help, "rangexor l r")
	assert.Contains(t, help, "XOR of l..r")
}

func TestParseWord(t *testing.T) {
	for input, want := range map[string]int64{"10": 10, "0b101": 5, "0x1f": 31, "-7": -7, "0o17": 15} {
		got, err := ParseWord(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}
	_, err := ParseWord("1.5")
	assert.Error(t, err)
}
