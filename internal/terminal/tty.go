package terminal

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"
)

// ErrNotTerminal is returned when a file is not attached to a terminal.
var ErrNotTerminal = errors.New("not a terminal")

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// TTY reports the size of a terminal in character cells.
type TTY struct {
	fd int
}

// NewTTY returns the TTY behind f or ErrNotTerminal.
func NewTTY(f *os.File) (TTY, error) {
	if !IsTerminal(f) {
		return TTY{}, fmt.Errorf("terminal: %s: %w", f.Name(), ErrNotTerminal)
	}
	return TTY{fd: int(f.Fd())}, nil
}

// Size returns the terminal width and height in character cells.
func (t TTY) Size() (int, int, error) {
	cols, rows, err := term.GetSize(t.fd)
	if err != nil {
		return 0, 0, fmt.Errorf("terminal: size: %w", err)
	}
	return cols, rows, nil
}
