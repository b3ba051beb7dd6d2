// SPDX-License-Identifier: MIT
//
// Package demo renders the before/after walkthrough printed by
// `bitkit demo`. Output is presentation only.
package demo

import (
	"fmt"
	"io"
	"strings"

	"bitkit/pkg/bitint"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFDF5")).
			Background(lipgloss.Color("#25A065")).
			Padding(0, 1).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#25A065"))
)

// Step is one line of the walkthrough. Word steps print the value with
// its binary form; the others print Text.
type Step struct {
	Label string
	Word  bool
	Value int64
	Text  string
}

// FormatBinary renders the low width bits of v, zero padded.
func FormatBinary(v int64, width int) string {
	mask := ^uint64(0)
	if width < 64 {
		mask = 1<<uint(width) - 1
	}
	return fmt.Sprintf("%0*b", width, uint64(v)&mask)
}

// FormatWord renders v as "decimal (binary)".
func FormatWord(v int64, width int) string {
	return fmt.Sprintf("%d (%s)", v, FormatBinary(v, width))
}

// Steps runs the walkthrough starting from num: set bit 1, unset it,
// toggle bit 0, then inspect the result.
func Steps(num int64) []Step {
	steps := []Step{{Label: "Original number", Word: true, Value: num}}

	num = bitint.SetBit(num, 1)
	steps = append(steps, Step{Label: "After setting bit 1", Word: true, Value: num})

	num = bitint.ClearBit(num, 1)
	steps = append(steps, Step{Label: "After unsetting bit 1", Word: true, Value: num})

	num = bitint.ToggleBit(num, 0)
	steps = append(steps, Step{Label: "After toggling bit 0", Word: true, Value: num})

	steps = append(steps,
		Step{Label: "Bit 2 is set", Text: fmt.Sprint(bitint.IsSet(num, 2))},
		Step{Label: "Number of set bits", Text: fmt.Sprint(bitint.CountSetBits(num))},
		Step{Label: "Is power of two", Text: fmt.Sprint(bitint.IsPowerOfTwo(num))},
	)

	// [1, start] is empty for a negative start.
	if start := steps[0].Value; start >= 0 {
		steps = append(steps, Step{Label: fmt.Sprintf("XOR from 1 to %d", start), Text: fmt.Sprint(bitint.PrefixXor(start))})
	}
	return steps
}

// Render writes the walkthrough for num to w at the given display width.
func Render(w io.Writer, num int64, width int, styled bool) error {
	var sb strings.Builder

	header := "=== Bit Manipulation Demo ==="
	if styled {
		header = headerStyle.Render("Bit Manipulation Demo")
	}
	sb.WriteString(header)
	sb.WriteString("\n")

	for _, step := range Steps(num) {
		label := step.Label + ":"
		if styled {
			label = labelStyle.Render(label)
		}
		value := step.Text
		if step.Word {
			value = FormatWord(step.Value, width)
		}
		fmt.Fprintf(&sb, "%s %s\n", label, value)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
