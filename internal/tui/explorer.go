package tui

import (
	"fmt"
	"strings"

	"bitkit/internal/demo"
	"bitkit/pkg/bitint"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/exp/constraints"
)

type styles struct {
	title     lipgloss.Style
	info      lipgloss.Style
	highlight lipgloss.Style
	set       lipgloss.Style
}

func newStyles(color bool) styles {
	if !color {
		plain := lipgloss.NewStyle()
		return styles{title: plain, info: plain, highlight: plain, set: plain}
	}
	return styles{
		title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFDF5")).
			Background(lipgloss.Color("#25A065")).
			Padding(0, 1).
			Bold(true),
		info: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFDF5")),
		highlight: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#25A065")).
			Underline(true).
			Bold(true),
		set: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#25A065")),
	}
}

// keyMap holds every binding the explorer responds to
type keyMap struct {
	Left, Right        key.Binding
	Toggle, Set        key.Binding
	Clear, ClearLow    key.Binding
	Complement, Negate key.Binding
	Reset, Quit        key.Binding
}

var keys = keyMap{
	Left:       key.NewBinding(key.WithKeys("left", "h")),
	Right:      key.NewBinding(key.WithKeys("right", "l")),
	Toggle:     key.NewBinding(key.WithKeys(" ", "t")),
	Set:        key.NewBinding(key.WithKeys("s")),
	Clear:      key.NewBinding(key.WithKeys("c")),
	ClearLow:   key.NewBinding(key.WithKeys("n")),
	Complement: key.NewBinding(key.WithKeys("~")),
	Negate:     key.NewBinding(key.WithKeys("-")),
	Reset:      key.NewBinding(key.WithKeys("r")),
	Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c")),
}

// Status summarises the current word
type Status struct {
	Value      int64
	PopCount   int
	LowestBit  int
	PowerOfTwo bool
	Even       bool
}

func describe[T constraints.Signed](v T) Status {
	return Status{
		Value:      int64(v),
		PopCount:   bitint.CountSetBits(v),
		LowestBit:  bitint.LowestSetBitPosition(v),
		PowerOfTwo: bitint.IsPowerOfTwo(v),
		Even:       bitint.IsEven(v),
	}
}

// describeWidth reads v as a signed word of the given width.
func describeWidth(v int64, width int) Status {
	switch width {
	case 8:
		return describe(int8(v))
	case 16:
		return describe(int16(v))
	case 32:
		return describe(int32(v))
	default:
		return describe(v)
	}
}

// ExplorerModel is the Bubble Tea model for editing a single word bit by bit
type ExplorerModel struct {
	initial int64
	value   int64
	width   int
	cursor  uint // bit index under the cursor, 0 is the LSB
	styles  styles
}

// NewExplorerModel creates an explorer showing value at the given width
func NewExplorerModel(value int64, width int, color bool) ExplorerModel {
	if width <= 0 || width > 64 {
		width = 64
	}
	value = describeWidth(value, width).Value
	return ExplorerModel{
		initial: value,
		value:   value,
		width:   width,
		styles:  newStyles(color),
	}
}

// Value returns the current word, sign-extended from the display width
func (m ExplorerModel) Value() int64 {
	return m.value
}

// Cursor returns the bit index under the cursor
func (m ExplorerModel) Cursor() uint {
	return m.cursor
}

// Status describes the current word
func (m ExplorerModel) Status() Status {
	return describeWidth(m.value, m.width)
}

// Init implements tea.Model
func (m ExplorerModel) Init() tea.Cmd {
	return nil
}

// Update handles input and updates the model
func (m ExplorerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.Quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.Left):
		if m.cursor < uint(m.width-1) {
			m.cursor++
		}
	case key.Matches(keyMsg, keys.Right):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, keys.Toggle):
		m.apply(bitint.ToggleBit(m.value, m.cursor))
	case key.Matches(keyMsg, keys.Set):
		m.apply(bitint.SetBit(m.value, m.cursor))
	case key.Matches(keyMsg, keys.Clear):
		m.apply(bitint.ClearBit(m.value, m.cursor))
	case key.Matches(keyMsg, keys.ClearLow):
		m.apply(bitint.ClearLowestSetBit(m.value))
	case key.Matches(keyMsg, keys.Complement):
		m.apply(bitint.Complement(m.value))
	case key.Matches(keyMsg, keys.Negate):
		m.apply(bitint.TwosComplement(m.value))
	case key.Matches(keyMsg, keys.Reset):
		m.value = m.initial
	}

	return m, nil
}

// apply stores v truncated to the display width.
func (m *ExplorerModel) apply(v int64) {
	m.value = describeWidth(v, m.width).Value
}

// View renders the UI
func (m ExplorerModel) View() string {
	var sb strings.Builder

	sb.WriteString(m.styles.title.Render(fmt.Sprintf("Bit Explorer (%d-bit)", m.width)))
	sb.WriteString("\n\n")
	sb.WriteString(m.renderBits())
	sb.WriteString("\n\n")

	st := m.Status()
	fmt.Fprintf(&sb, "Value: %d\n", st.Value)
	fmt.Fprintf(&sb, "Bit %d: %d\n", m.cursor, bitint.ExtractBit(m.value, m.cursor))
	fmt.Fprintf(&sb, "Set bits: %d  Lowest set bit: %d  Power of two: %t  Even: %t\n",
		st.PopCount, st.LowestBit, st.PowerOfTwo, st.Even)
	sb.WriteString("\n")
	sb.WriteString(m.styles.info.Render("←/→: Move • Space: Toggle • s/c: Set/Clear • n: Clear lowest • ~: Complement • -: Negate • r: Reset • q: Quit"))

	return sb.String()
}

// renderBits draws the word MSB first in nibbles, with a marker line
// under the cursor bit
func (m ExplorerModel) renderBits() string {
	binary := demo.FormatBinary(m.value, m.width)

	var bitsLine, markerLine strings.Builder
	for pos, ch := range binary {
		bit := uint(m.width - 1 - pos)
		cell := string(ch)
		marker := " "
		switch {
		case bit == m.cursor:
			cell = m.styles.highlight.Render(cell)
			marker = "^"
		case ch == '1':
			cell = m.styles.set.Render(cell)
		}
		bitsLine.WriteString(cell)
		markerLine.WriteString(marker)
		if bit%4 == 0 && bit != 0 {
			bitsLine.WriteString(" ")
			markerLine.WriteString(" ")
		}
	}
	return bitsLine.String() + "\n" + strings.TrimRight(markerLine.String(), " ")
}

// StartExplorer launches the Bubble Tea TUI for editing a word
func StartExplorer(value int64, width int, color bool) error {
	p := tea.NewProgram(
		NewExplorerModel(value, width, color),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
