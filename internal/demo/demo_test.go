// SPDX-License-Identifier: MIT
package demo

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatBinary(t *testing.T) {
	tests := []struct {
		v        int64
		width    int
		expected string
	}{
		{5, 8, "00000101"},
		{-1, 8, "11111111"},
		{-1, 16, "1111111111111111"},
		{256, 8, "00000000"},
		{1, 64, "0000000000000000000000000000000000000000000000000000000000000001"},
		{-1, 64, "1111111111111111111111111111111111111111111111111111111111111111"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatBinary(tt.v, tt.width), "FormatBinary(%d, %d)", tt.v, tt.width)
	}
}

func TestSteps(t *testing.T) {
	steps := Steps(5)
	require.Len(t, steps, 8)

	words := []int64{5, 7, 5, 4}
	for i, want := range words {
		assert.True(t, steps[i].Word, steps[i].Label)
		assert.Equal(t, want, steps[i].Value, steps[i].Label)
	}

	assert.Equal(t, "true", steps[4].Text)  // 100: bit 2 set
	assert.Equal(t, "1", steps[5].Text)     // one bit
	assert.Equal(t, "true", steps[6].Text)  // 4 is a power of two
	assert.Equal(t, "XOR from 1 to 5", steps[7].Label)
	assert.Equal(t, "1", steps[7].Text)
}

func TestStepsNegative(t *testing.T) {
	steps := Steps(-3)
	require.Len(t, steps, 7)
	for _, step := range steps {
		assert.NotContains(t, step.Label, "XOR from 1 to")
	}

	zero := Steps(0)
	require.Len(t, zero, 8)
	assert.Equal(t, "XOR from 1 to 0", zero[7].Label)
	assert.Equal(t, "0", zero[7].Text)
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, 5, 8, false))

	expected := `=== Bit Manipulation Demo ===
Original number: 5 (00000101)
After setting bit 1: 7 (00000111)
After unsetting bit 1: 5 (00000101)
After toggling bit 0: 4 (00000100)
Bit 2 is set: true
Number of set bits: 1
Is power of two: true
XOR from 1 to 5: 1
`
	assert.Equal(t, expected, buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestRenderWriteError(t *testing.T) {
	assert.Error(t, Render(failingWriter{}, 5, 8, false))
}
