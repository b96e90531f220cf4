package terminal

import (
	"bufio"
	"fmt"
	"io"

	"github.com/vovakirdan/tui-tiles/internal/core"
)

// Display writes map cells to a terminal as ANSI sequences. Every map cell is
// two terminal columns wide. Output is buffered until Flush.
type Display struct {
	w *bufio.Writer
}

// NewDisplay wraps w.
func NewDisplay(w io.Writer) *Display {
	return &Display{w: bufio.NewWriter(w)}
}

// Draw paints data at map-space position pos relative to the top-left corner.
// A nil color resets that channel to the terminal default, so no attributes
// leak from the previous cell.
func (d *Display) Draw(pos core.Position, data core.RenderData) error {
	to, err := MoveTo(pos.X*2+1, pos.Y+1)
	if err != nil {
		return fmt.Errorf("terminal: draw at %s: %w", pos, err)
	}
	fg, bg := ModeResetFg, ModeResetBg
	if data.Fg != nil {
		fg = FgColor(*data.Fg)
	}
	if data.Bg != nil {
		bg = BgColor(*data.Bg)
	}
	if _, err := io.WriteString(d.w, to+CombineModes(fg, bg)+data.Text()); err != nil {
		return fmt.Errorf("terminal: draw at %s: %w", pos, err)
	}
	return nil
}

// Clear resets attributes and erases the screen.
func (d *Display) Clear() error {
	_, err := io.WriteString(d.w, ModeReset.Sequence()+EraseScreen)
	return err
}

// Home moves the cursor to the top-left corner.
func (d *Display) Home() error {
	_, err := io.WriteString(d.w, MoveHome)
	return err
}

// Flush writes buffered output.
func (d *Display) Flush() error {
	return d.w.Flush()
}

// Enter hides the cursor and clears the screen.
func (d *Display) Enter() error {
	if _, err := io.WriteString(d.w, HideCursor); err != nil {
		return err
	}
	if err := d.Clear(); err != nil {
		return err
	}
	return d.Flush()
}

// Leave undoes Enter, leaving the terminal with default attributes.
func (d *Display) Leave() error {
	if err := d.Clear(); err != nil {
		return err
	}
	if _, err := io.WriteString(d.w, MoveHome+ShowCursor); err != nil {
		return err
	}
	return d.Flush()
}
