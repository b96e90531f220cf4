package core

import (
	"strings"
)

// Cell is one map cell of a Screen: a two-column glyph plus optional colors.
type Cell struct {
	Glyph string
	Fg    *Color
	Bg    *Color
}

func blankCell() Cell {
	return Cell{Glyph: DefaultGlyph}
}

// Screen is a buffer of map cells. It accepts the same draw calls as the ANSI
// terminal display, so a camera pass can be rendered into memory and painted
// by another frontend or inspected by tests.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
	draws  int
}

// NewScreen creates a new screen buffer measured in map cells.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.allocate()
	s.clear()
	return s
}

func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

func (s *Screen) clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = blankCell()
		}
	}
}

// Width returns the screen width in map cells.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in map cells.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions, preserving content where possible.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}

	oldCells := s.cells
	oldW, oldH := s.width, s.height

	s.width = width
	s.height = height
	s.allocate()
	s.clear()

	copyW := min(oldW, width)
	copyH := min(oldH, height)
	for y := 0; y < copyH; y++ {
		copy(s.cells[y][:copyW], oldCells[y][:copyW])
	}
}

// Draw stores data at pos. Out-of-bounds positions are silently ignored.
func (s *Screen) Draw(pos Position, data RenderData) error {
	s.draws++
	if pos.X < 0 || pos.X >= s.width || pos.Y < 0 || pos.Y >= s.height {
		return nil
	}
	s.cells[pos.Y][pos.X] = Cell{Glyph: data.Text(), Fg: data.Fg, Bg: data.Bg}
	return nil
}

// Clear blanks every cell.
func (s *Screen) Clear() error {
	s.clear()
	return nil
}

// Home is a no-op; a buffer has no cursor.
func (s *Screen) Home() error {
	return nil
}

// Flush is a no-op; draws land in the buffer immediately.
func (s *Screen) Flush() error {
	return nil
}

// Draws returns how many Draw calls the screen has received.
func (s *Screen) Draws() int {
	return s.draws
}

// Get returns the cell at (x, y), or a blank cell when out of bounds.
func (s *Screen) Get(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return blankCell()
	}
	return s.cells[y][x]
}

// Row returns the glyphs of the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(DefaultGlyph, s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteString(c.Glyph)
	}
	return sb.String()
}

// String converts the screen to plain text, rows joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(s.Row(y))
	}
	return sb.String()
}
