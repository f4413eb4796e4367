package layout

import (
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/penwyp/go-expiry-bar/internal/util"
	"golang.org/x/term"
)

const (
	fallbackTerminalWidth = 80
	minBarWidth           = 10
	maxBarWidth           = 100
)

// Sizer measures strings and the terminal so columns line up with wide runes.
type Sizer struct {
	// terminalWidth overrides detection when non-zero
	terminalWidth int
}

// NewSizer returns a Sizer. A zero width means detect from stdout.
func NewSizer(terminalWidth int) *Sizer {
	return &Sizer{terminalWidth: terminalWidth}
}

// DisplayWidth is the number of terminal cells s occupies.
func (s *Sizer) DisplayWidth(str string) int {
	return runewidth.StringWidth(str)
}

// PadString pads str to width display cells.
func (s *Sizer) PadString(str string, width int, leftAlign bool) string {
	actual := s.DisplayWidth(str)
	if actual >= width {
		return str
	}

	padding := strings.Repeat(" ", width-actual)
	if leftAlign {
		return str + padding
	}
	return padding + str
}

// Truncate shortens str to at most width cells, marking the cut with an ellipsis.
func (s *Sizer) Truncate(str string, width int) string {
	return runewidth.Truncate(str, width, "…")
}

// TerminalWidth returns the stdout width, or a fallback when stdout is not a terminal.
func (s *Sizer) TerminalWidth() int {
	if s.terminalWidth > 0 {
		return s.terminalWidth
	}
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return fallbackTerminalWidth
	}
	return width
}

// BarWidth picks how many cells a bar may use next to a label of labelWidth cells.
func (s *Sizer) BarWidth(labelWidth int) int {
	width := s.TerminalWidth() - labelWidth - 30
	if width < minBarWidth {
		width = minBarWidth
	}
	if width > maxBarWidth {
		width = maxBarWidth
	}

	util.LogDebugf("BarWidth %d (terminal %d, label %d)", width, s.TerminalWidth(), labelWidth)
	return width
}
