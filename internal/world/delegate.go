package world

import "github.com/vovakirdan/tui-tiles/internal/core"

// DelegateTile is a TileBehavior assembled from optional functions. A nil
// field falls back to the BaseTile default.
type DelegateTile struct {
	CanEnterFunc func(t *Tile, u *Unit) bool
	EnterFunc    func(t *Tile, u *Unit)
	LeaveFunc    func(t *Tile, u *Unit)
	DrawFunc     func(t *Tile, data *core.RenderData)
	TickFunc     func(t *Tile)
}

func (d *DelegateTile) CanEnter(t *Tile, u *Unit) bool {
	if d.CanEnterFunc == nil {
		return BaseTile{}.CanEnter(t, u)
	}
	return d.CanEnterFunc(t, u)
}

func (d *DelegateTile) OnEnter(t *Tile, u *Unit) {
	if d.EnterFunc != nil {
		d.EnterFunc(t, u)
	}
}

func (d *DelegateTile) OnLeave(t *Tile, u *Unit) {
	if d.LeaveFunc != nil {
		d.LeaveFunc(t, u)
	}
}

func (d *DelegateTile) OnDraw(t *Tile, data *core.RenderData) {
	if d.DrawFunc != nil {
		d.DrawFunc(t, data)
	}
}

func (d *DelegateTile) OnTick(t *Tile) {
	if d.TickFunc == nil {
		BaseTile{}.OnTick(t)
		return
	}
	d.TickFunc(t)
}

// DelegateUnit is a UnitBehavior assembled from optional functions. Every nil
// field is a no-op.
type DelegateUnit struct {
	EnterFunc   func(u *Unit, t *Tile)
	LeaveFunc   func(u *Unit, t *Tile)
	ContactFunc func(u *Unit, other *Unit)
	SpawnFunc   func(u *Unit, t *Tile, m *Map)
	RemoveFunc  func(u *Unit, m *Map)
	DrawFunc    func(u *Unit, data *core.RenderData)
	TickFunc    func(u *Unit)
}

func (d *DelegateUnit) OnEnter(u *Unit, t *Tile) {
	if d.EnterFunc != nil {
		d.EnterFunc(u, t)
	}
}

func (d *DelegateUnit) OnLeave(u *Unit, t *Tile) {
	if d.LeaveFunc != nil {
		d.LeaveFunc(u, t)
	}
}

func (d *DelegateUnit) OnContact(u *Unit, other *Unit) {
	if d.ContactFunc != nil {
		d.ContactFunc(u, other)
	}
}

func (d *DelegateUnit) OnSpawn(u *Unit, t *Tile, m *Map) {
	if d.SpawnFunc != nil {
		d.SpawnFunc(u, t, m)
	}
}

func (d *DelegateUnit) OnRemove(u *Unit, m *Map) {
	if d.RemoveFunc != nil {
		d.RemoveFunc(u, m)
	}
}

func (d *DelegateUnit) OnDraw(u *Unit, data *core.RenderData) {
	if d.DrawFunc != nil {
		d.DrawFunc(u, data)
	}
}

func (d *DelegateUnit) OnTick(u *Unit) {
	if d.TickFunc != nil {
		d.TickFunc(u)
	}
}
