package world

import "github.com/vovakirdan/tui-tiles/internal/core"

// Display receives the output of a camera pass. Positions are camera-relative
// map cells; implementations map each cell onto two terminal columns.
type Display interface {
	// Draw moves to the cell at pos and writes data's colors and glyph.
	Draw(pos core.Position, data core.RenderData) error
	// Clear erases the screen and resets all graphic attributes.
	Clear() error
	// Home returns the cursor to the top-left cell.
	Home() error
	// Flush pushes buffered output to the device.
	Flush() error
}

// Sizer reports the live terminal size in character cells.
type Sizer interface {
	Size() (cols, rows int, err error)
}

// SizerFunc adapts a function to the Sizer interface.
type SizerFunc func() (cols, rows int, err error)

// Size calls f.
func (f SizerFunc) Size() (int, int, error) {
	return f()
}

// FixedSize is a Sizer with constant dimensions.
type FixedSize struct {
	Cols, Rows int
}

// Size returns the fixed dimensions.
func (s FixedSize) Size() (int, int, error) {
	return s.Cols, s.Rows, nil
}
