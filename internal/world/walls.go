package world

import "github.com/vovakirdan/tui-tiles/internal/core"

// WallColor is the default wall foreground.
var WallColor = core.RGB(50, 255, 50)

// Wall is a tile that refuses every unit.
type Wall struct {
	BaseTile
	Style core.RenderData
}

// DefaultWallStyle returns the classic green "||" wall.
func DefaultWallStyle() core.RenderData {
	return core.RenderData{Fg: WallColor.Ptr(), Glyph: "||"}
}

// NewWall creates a wall tile with the default style.
func NewWall() *Tile {
	return NewTile(&Wall{Style: DefaultWallStyle()})
}

// CanEnter always refuses.
func (w *Wall) CanEnter(*Tile, *Unit) bool {
	return false
}

// OnDraw applies the wall style.
func (w *Wall) OnDraw(_ *Tile, data *core.RenderData) {
	*data = data.Merge(w.Style)
}

// Floor is an enterable tile with a fixed appearance.
type Floor struct {
	BaseTile
	Style core.RenderData
}

// NewFloor creates a decorated floor tile.
func NewFloor(style core.RenderData) *Tile {
	return NewTile(&Floor{Style: style})
}

// OnDraw applies the floor style.
func (f *Floor) OnDraw(_ *Tile, data *core.RenderData) {
	*data = data.Merge(f.Style)
}
