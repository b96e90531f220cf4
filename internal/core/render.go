package core

// DefaultGlyph is drawn when no layer supplies a glyph.
// Each map cell covers two terminal columns.
const DefaultGlyph = "  "

// RenderData holds the visual attributes of one grid cell for one render
// pass. Nil colors and an empty glyph mean "not set".
type RenderData struct {
	Fg    *Color
	Bg    *Color
	Glyph string
}

// Merge layers over on top of d: for each field the overlay wins when set,
// otherwise d's value is kept.
func (d RenderData) Merge(over RenderData) RenderData {
	out := d
	if over.Fg != nil {
		out.Fg = over.Fg
	}
	if over.Bg != nil {
		out.Bg = over.Bg
	}
	if over.Glyph != "" {
		out.Glyph = over.Glyph
	}
	return out
}

// Text returns the glyph to draw, falling back to DefaultGlyph.
func (d RenderData) Text() string {
	if d.Glyph == "" {
		return DefaultGlyph
	}
	return d.Glyph
}

// Equal reports whether both records resolve to the same attributes.
func (d RenderData) Equal(o RenderData) bool {
	return colorEqual(d.Fg, o.Fg) && colorEqual(d.Bg, o.Bg) && d.Glyph == o.Glyph
}

func colorEqual(a, b *Color) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
