//go:build windows

package terminal

import (
	"fmt"
	"os"

	"golang.org/x/sys/windows"
)

// EnableVirtualTerminal turns on escape sequence processing for a console
// output handle. The returned func restores the previous console mode.
func EnableVirtualTerminal(f *os.File) (func() error, error) {
	h := windows.Handle(f.Fd())
	var mode uint32
	if err := windows.GetConsoleMode(h, &mode); err != nil {
		return nil, fmt.Errorf("terminal: %s: %w", f.Name(), ErrNotTerminal)
	}
	vt := mode | windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING
	if err := windows.SetConsoleMode(h, vt); err != nil {
		return nil, fmt.Errorf("terminal: enable VT output: %w", err)
	}
	return func() error { return windows.SetConsoleMode(h, mode) }, nil
}
