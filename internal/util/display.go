package util

import (
	"io"
	"os"

	"golang.org/x/term"
)

// Terminal control sequences
const (
	ClearScreen    = "\033[2J" // Clear entire screen
	MoveCursorHome = "\033[H"  // Move cursor to home position
)

// IsTerminal reports whether w writes to an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// ClearTerminal wipes the screen when w is a terminal and does nothing otherwise.
func ClearTerminal(w io.Writer) error {
	if !IsTerminal(w) {
		return nil
	}
	_, err := io.WriteString(w, ClearScreen+MoveCursorHome)
	return err
}
