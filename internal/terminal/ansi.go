// Package terminal builds ANSI escape sequences and talks to the attached
// terminal: drawing cells, querying its size and reading raw keystrokes.
package terminal

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-tiles/internal/core"
)

// ErrInvalidArgument is returned for non-positive cursor amounts and color
// components outside 0-255.
var ErrInvalidArgument = errors.New("invalid argument")

// CSI is the Control Sequence Introducer.
const CSI = "\x1b["

// Fixed control sequences.
const (
	MoveHome       = CSI + "H"
	ReportPosition = CSI + "6n"

	EraseToEnd        = CSI + "0J"
	EraseToBegin      = CSI + "1J"
	EraseScreen       = CSI + "2J"
	EraseAll          = CSI + "3J" // Includes scrollback; not supported everywhere
	EraseRowToEnd     = CSI + "0K"
	EraseRowFromBegin = CSI + "1K"
	EraseRow          = CSI + "2K"

	HideCursor = CSI + "?25l"
	ShowCursor = CSI + "?25h"
)

func positive(name string, n int) error {
	if n < 1 {
		return fmt.Errorf("terminal: %s must be a positive integer, got %d: %w", name, n, ErrInvalidArgument)
	}
	return nil
}

func move(name string, n int, final byte) (string, error) {
	if err := positive(name, n); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%d%c", CSI, n, final), nil
}

// MoveUp moves the cursor up n rows.
func MoveUp(n int) (string, error) { return move("amount", n, 'A') }

// MoveDown moves the cursor down n rows.
func MoveDown(n int) (string, error) { return move("amount", n, 'B') }

// MoveForward moves the cursor right n columns.
func MoveForward(n int) (string, error) { return move("amount", n, 'C') }

// MoveBack moves the cursor left n columns.
func MoveBack(n int) (string, error) { return move("amount", n, 'D') }

// MoveNextLine moves the cursor to the start of the n-th next line.
func MoveNextLine(n int) (string, error) { return move("amount", n, 'E') }

// MovePrevLine moves the cursor to the start of the n-th previous line.
func MovePrevLine(n int) (string, error) { return move("amount", n, 'F') }

// MoveColumn moves the cursor to column col (1-indexed).
func MoveColumn(col int) (string, error) { return move("column", col, 'G') }

// MoveRow moves the cursor to row row (1-indexed).
func MoveRow(row int) (string, error) { return move("row", row, 'd') }

// ScrollUp scrolls the window up n lines.
func ScrollUp(n int) (string, error) { return move("amount", n, 'S') }

// ScrollDown scrolls the window down n lines.
func ScrollDown(n int) (string, error) { return move("amount", n, 'T') }

// MoveTo moves the cursor to (col, row), both 1-indexed.
func MoveTo(col, row int) (string, error) {
	if err := positive("column", col); err != nil {
		return "", err
	}
	if err := positive("row", row); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%d;%dH", CSI, row, col), nil
}

// Mode is one SGR (Select Graphic Rendition) parameter list, e.g. "1" or
// "38;2;255;0;0". Several modes combine into a single sequence.
type Mode string

// Graphic modes. Modes prefixed with No or Reset disable an attribute.
const (
	ModeReset           Mode = "0"
	ModeBold            Mode = "1"
	ModeNoBold          Mode = "22"
	ModeDim             Mode = "2"
	ModeNoDim           Mode = "22"
	ModeItalic          Mode = "3"
	ModeNoItalic        Mode = "23"
	ModeUnderline       Mode = "4"
	ModeNoUnderline     Mode = "24"
	ModeBlink           Mode = "5"
	ModeNoBlink         Mode = "25"
	ModeReverse         Mode = "7"
	ModeNoReverse       Mode = "27"
	ModeHidden          Mode = "8"
	ModeNoHidden        Mode = "28"
	ModeStrikethrough   Mode = "9"
	ModeNoStrikethrough Mode = "29"
	ModeResetFg         Mode = "39"
	ModeResetBg         Mode = "49"
	ModeResetColor      Mode = "39;49"
)

// 4-bit palette colors. Background variants are the foreground code + 10.
const (
	FgBlack   Mode = "30"
	FgRed     Mode = "31"
	FgGreen   Mode = "32"
	FgYellow  Mode = "33"
	FgBlue    Mode = "34"
	FgMagenta Mode = "35"
	FgCyan    Mode = "36"
	FgWhite   Mode = "37"

	FgBrightBlack   Mode = "90"
	FgBrightRed     Mode = "91"
	FgBrightGreen   Mode = "92"
	FgBrightYellow  Mode = "93"
	FgBrightBlue    Mode = "94"
	FgBrightMagenta Mode = "95"
	FgBrightCyan    Mode = "96"
	FgBrightWhite   Mode = "97"

	BgBlack   Mode = "40"
	BgRed     Mode = "41"
	BgGreen   Mode = "42"
	BgYellow  Mode = "43"
	BgBlue    Mode = "44"
	BgMagenta Mode = "45"
	BgCyan    Mode = "46"
	BgWhite   Mode = "47"

	BgBrightBlack   Mode = "100"
	BgBrightRed     Mode = "101"
	BgBrightGreen   Mode = "102"
	BgBrightYellow  Mode = "103"
	BgBrightBlue    Mode = "104"
	BgBrightMagenta Mode = "105"
	BgBrightCyan    Mode = "106"
	BgBrightWhite   Mode = "107"
)

// Sequence returns the mode as a standalone escape sequence.
func (m Mode) Sequence() string {
	return CSI + string(m) + "m"
}

// CombineModes joins modes into one SGR sequence.
func CombineModes(modes ...Mode) string {
	parts := make([]string, len(modes))
	for i, m := range modes {
		parts[i] = string(m)
	}
	return CSI + strings.Join(parts, ";") + "m"
}

func component(name string, v int) error {
	if v < 0 || v > 255 {
		return fmt.Errorf("terminal: %s must be inside the range 0-255, got %d: %w", name, v, ErrInvalidArgument)
	}
	return nil
}

// Fg256 selects a foreground color from the 256-color palette.
func Fg256(index int) (Mode, error) {
	if err := component("index", index); err != nil {
		return "", err
	}
	return Mode(fmt.Sprintf("38;5;%d", index)), nil
}

// Bg256 selects a background color from the 256-color palette.
func Bg256(index int) (Mode, error) {
	if err := component("index", index); err != nil {
		return "", err
	}
	return Mode(fmt.Sprintf("48;5;%d", index)), nil
}

func checkRGB(r, g, b int) error {
	return errors.Join(component("red", r), component("green", g), component("blue", b))
}

// FgRGB selects a 24-bit foreground color.
func FgRGB(r, g, b int) (Mode, error) {
	if err := checkRGB(r, g, b); err != nil {
		return "", err
	}
	return Mode(fmt.Sprintf("38;2;%d;%d;%d", r, g, b)), nil
}

// BgRGB selects a 24-bit background color.
func BgRGB(r, g, b int) (Mode, error) {
	if err := checkRGB(r, g, b); err != nil {
		return "", err
	}
	return Mode(fmt.Sprintf("48;2;%d;%d;%d", r, g, b)), nil
}

// FgColor is FgRGB for an already valid core.Color.
func FgColor(c core.Color) Mode {
	return Mode(fmt.Sprintf("38;2;%d;%d;%d", c.R, c.G, c.B))
}

// BgColor is BgRGB for an already valid core.Color.
func BgColor(c core.Color) Mode {
	return Mode(fmt.Sprintf("48;2;%d;%d;%d", c.R, c.G, c.B))
}
