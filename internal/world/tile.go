// Package world implements the tile map: tiles, the units occupying them,
// the movement/spawn/contact protocol between the two, and the camera that
// redraws dirty cells through a Display.
package world

import "github.com/vovakirdan/tui-tiles/internal/core"

// TileBehavior is the polymorphic part of a tile. Embed BaseTile to inherit
// the defaults and override only the hooks a variant needs.
type TileBehavior interface {
	CanEnter(t *Tile, u *Unit) bool
	OnEnter(t *Tile, u *Unit)
	OnLeave(t *Tile, u *Unit)
	OnDraw(t *Tile, data *core.RenderData)
	OnTick(t *Tile)
}

// BaseTile provides the default tile behavior: enterable, no visuals, and a
// tick that forwards to the occupying unit.
type BaseTile struct{}

func (BaseTile) CanEnter(*Tile, *Unit) bool     { return true }
func (BaseTile) OnEnter(*Tile, *Unit)           {}
func (BaseTile) OnLeave(*Tile, *Unit)           {}
func (BaseTile) OnDraw(*Tile, *core.RenderData) {}

// OnTick forwards the tick to the occupying unit, if any.
func (BaseTile) OnTick(t *Tile) {
	if u := t.Unit(); u != nil {
		u.Tick()
	}
}

// Tile is a fixed grid cell holding at most one unit.
// Occupancy changes only through Map's move, spawn and remove operations.
type Tile struct {
	core.Dirty
	position core.Position
	unit     *Unit
	behavior TileBehavior
}

// NewTile creates a tile with the given behavior. A nil behavior yields a
// plain enterable floor. Tiles start dirty so the first render draws them.
func NewTile(b TileBehavior) *Tile {
	if b == nil {
		b = BaseTile{}
	}
	return &Tile{
		Dirty:    core.NewDirty(true, nil),
		behavior: b,
	}
}

// Position returns the tile's grid key, assigned when the map is built.
func (t *Tile) Position() core.Position {
	return t.position
}

// Unit returns the occupant, or nil.
func (t *Tile) Unit() *Unit {
	return t.unit
}

// Occupied reports whether a unit stands on the tile.
func (t *Tile) Occupied() bool {
	return t.unit != nil
}

// Behavior returns the tile's behavior.
func (t *Tile) Behavior() TileBehavior {
	return t.behavior
}

// CanEnter asks the behavior whether u may step onto the tile.
func (t *Tile) CanEnter(u *Unit) bool {
	return t.behavior.CanEnter(t, u)
}

// Draw lets the behavior fill in the tile's visual attributes.
func (t *Tile) Draw(data *core.RenderData) {
	t.behavior.OnDraw(t, data)
}

// Tick runs the behavior's per-tick hook.
func (t *Tile) Tick() {
	t.behavior.OnTick(t)
}

// setUnit changes the occupant and keeps both back-references paired.
// The tile turns dirty whenever the occupant identity changes.
func (t *Tile) setUnit(u *Unit) {
	if t.unit == u {
		return
	}
	if old := t.unit; old != nil && old.tile == t {
		old.tile = nil
	}
	t.unit = u
	t.SetDirty(true)
	if u != nil {
		u.tile = t
	}
}
