package world

import "github.com/vovakirdan/tui-tiles/internal/core"

// UnitBehavior is the polymorphic part of a unit. All hooks on BaseUnit are
// no-ops; embed it and override what a variant needs.
type UnitBehavior interface {
	OnEnter(u *Unit, t *Tile)
	OnLeave(u *Unit, t *Tile)
	// OnContact runs when a move is blocked because one of the two units
	// occupies the target tile. It is the only unit-unit interaction.
	OnContact(u *Unit, other *Unit)
	OnSpawn(u *Unit, t *Tile, m *Map)
	OnRemove(u *Unit, m *Map)
	OnDraw(u *Unit, data *core.RenderData)
	OnTick(u *Unit)
}

// BaseUnit implements UnitBehavior with no-ops.
type BaseUnit struct{}

func (BaseUnit) OnEnter(*Unit, *Tile)           {}
func (BaseUnit) OnLeave(*Unit, *Tile)           {}
func (BaseUnit) OnContact(*Unit, *Unit)         {}
func (BaseUnit) OnSpawn(*Unit, *Tile, *Map)     {}
func (BaseUnit) OnRemove(*Unit, *Map)           {}
func (BaseUnit) OnDraw(*Unit, *core.RenderData) {}
func (BaseUnit) OnTick(*Unit)                   {}

// Unit is a mobile entity occupying zero or one tile.
type Unit struct {
	core.Dirty
	name     string
	tile     *Tile
	behavior UnitBehavior
}

// NewUnit creates an unspawned unit. A nil behavior yields an inert unit.
func NewUnit(name string, b UnitBehavior) *Unit {
	if b == nil {
		b = BaseUnit{}
	}
	u := &Unit{
		name:     name,
		behavior: b,
	}
	u.Dirty = core.NewDirty(true, u.onDirtyChanged)
	return u
}

// onDirtyChanged propagates a pending redraw to the occupied tile.
func (u *Unit) onDirtyChanged(dirty bool) {
	if dirty && u.tile != nil {
		u.tile.SetDirty(true)
	}
}

// String returns the unit's name.
func (u *Unit) String() string {
	return u.name
}

// Name returns the unit's name.
func (u *Unit) Name() string {
	return u.name
}

// Tile returns the occupied tile, or nil when unspawned.
func (u *Unit) Tile() *Tile {
	return u.tile
}

// Spawned reports whether the unit occupies a tile.
func (u *Unit) Spawned() bool {
	return u.tile != nil
}

// Position returns the occupied tile's position. ok is false when the unit
// is not spawned.
func (u *Unit) Position() (pos core.Position, ok bool) {
	if u.tile == nil {
		return core.Position{}, false
	}
	return u.tile.position, true
}

// Behavior returns the unit's behavior.
func (u *Unit) Behavior() UnitBehavior {
	return u.behavior
}

// MarkDirty requests a redraw of the unit and the tile under it.
func (u *Unit) MarkDirty() {
	u.SetDirty(true)
}

// Draw lets the behavior fill in the unit's visual attributes.
func (u *Unit) Draw(data *core.RenderData) {
	u.behavior.OnDraw(u, data)
}

// Tick runs the behavior's per-tick hook.
func (u *Unit) Tick() {
	u.behavior.OnTick(u)
}
