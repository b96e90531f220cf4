package world

import (
	"fmt"

	"github.com/vovakirdan/tui-tiles/internal/core"
)

// Camera is a viewport onto a map: an origin offset applied when converting
// map positions to display cells, and a frustum bounding the visible region.
type Camera struct {
	origin  core.Position
	frustum core.Position // Width in X, height in Y
	view    *Map
	out     Display
	sizer   Sizer
}

// Frustum converts a terminal size to frustum dimensions, rounding each down
// to an even number.
func Frustum(cols, rows int) core.Position {
	return core.P(cols/2*2, rows/2*2)
}

// NewCamera creates a camera over m drawing to out, with the frustum read
// from sizer.
func NewCamera(m *Map, out Display, sizer Sizer) (*Camera, error) {
	c := &Camera{
		view:  m,
		out:   out,
		sizer: sizer,
	}
	if _, err := c.RecomputeFrustum(); err != nil {
		return nil, err
	}
	return c, nil
}

// Map returns the map the camera renders.
func (c *Camera) Map() *Map {
	return c.view
}

// SetMap points the camera at another map and redraws everything.
func (c *Camera) SetMap(m *Map) error {
	c.view = m
	return c.Render(true)
}

// Origin returns the current origin offset.
func (c *Camera) Origin() core.Position {
	return c.origin
}

// SetOrigin changes the origin and immediately forces a full redraw.
func (c *Camera) SetOrigin(origin core.Position) error {
	c.origin = origin
	return c.Render(true)
}

// Pan shifts the origin by delta.
func (c *Camera) Pan(delta core.Position) error {
	return c.SetOrigin(c.origin.Add(delta))
}

// Frustum returns the visible region size.
func (c *Camera) Frustum() core.Position {
	return c.frustum
}

// RecomputeFrustum re-reads the live terminal size and reports whether the
// frustum changed.
func (c *Camera) RecomputeFrustum() (bool, error) {
	cols, rows, err := c.sizer.Size()
	if err != nil {
		return false, fmt.Errorf("world: read terminal size: %w", err)
	}
	f := Frustum(cols, rows)
	if f == c.frustum {
		return false, nil
	}
	c.frustum = f
	return true, nil
}

// ToScreen translates a map position into a display cell.
func (c *Camera) ToScreen(pos core.Position) core.Position {
	return pos.Add(c.origin)
}

// IsVisible reports whether pos, translated by the origin, lies within
// [0, width] x [0, height]. Both bounds are inclusive.
func (c *Camera) IsVisible(pos core.Position) bool {
	p := c.ToScreen(pos)
	return p.X >= 0 && p.Y >= 0 && p.X <= c.frustum.X && p.Y <= c.frustum.Y
}

// Render draws every visible tile that is dirty, or whose occupant is
// dirty. force clears the display first and redraws every visible tile.
func (c *Camera) Render(force bool) error {
	if force {
		if err := c.out.Clear(); err != nil {
			return fmt.Errorf("world: clear display: %w", err)
		}
	}

	if c.view != nil {
		for _, t := range c.view.Tiles() {
			if !c.IsVisible(t.position) {
				continue
			}
			u := t.unit
			if !force && !t.IsDirty() && (u == nil || !u.IsDirty()) {
				continue
			}

			var data core.RenderData
			t.Draw(&data)
			if u != nil {
				var unitData core.RenderData
				u.Draw(&unitData)
				data = data.Merge(unitData)
				u.SetDirty(false)
			}
			if err := c.out.Draw(c.ToScreen(t.position), data); err != nil {
				return fmt.Errorf("world: draw tile %v: %w", t.position, err)
			}
			t.SetDirty(false)
		}
	}

	if err := c.out.Home(); err != nil {
		return fmt.Errorf("world: cursor home: %w", err)
	}
	return c.out.Flush()
}
