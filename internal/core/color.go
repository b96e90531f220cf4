package core

import "fmt"

// Color is a 24-bit RGB triple.
type Color struct {
	R, G, B uint8
}

// RGB is a convenience constructor for Color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// NewColor builds a Color from int components, rejecting values outside 0-255.
func NewColor(r, g, b int) (Color, error) {
	for _, c := range [...]struct {
		name string
		v    int
	}{{"red", r}, {"green", g}, {"blue", b}} {
		if c.v < 0 || c.v > 255 {
			return Color{}, fmt.Errorf("core: %s component %d outside range 0-255", c.name, c.v)
		}
	}
	return Color{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

// Ptr returns a pointer to a copy of c, for use in optional RenderData fields.
func (c Color) Ptr() *Color {
	return &c
}

// Hex returns the color in #rrggbb form.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
