package world

import (
	"github.com/vovakirdan/tui-tiles/internal/core"
)

// Collector is implemented by unit behaviors that keep picked-up items.
type Collector interface {
	Collect(item string)
}

// Collectible is a unit that is picked up when another unit bumps into it.
// The default pickup removes the collectible from the map it was spawned on
// and hands its item to the picker if the picker is a Collector.
type Collectible struct {
	BaseUnit
	Item  string
	Style core.RenderData

	// CanPickupFunc filters pickers; nil accepts everyone.
	CanPickupFunc func(self, picker *Unit) bool
	// PickedFunc runs after a successful pickup.
	PickedFunc func(self, picker *Unit)

	m *Map
}

// NewCollectible creates an unspawned collectible unit.
func NewCollectible(item string, style core.RenderData) *Unit {
	return NewUnit(item, &Collectible{Item: item, Style: style})
}

// KeyGlyph is how key pickups are drawn.
const KeyGlyph = "⎆⏔"

// DefaultKeyStyle returns the gold key appearance.
func DefaultKeyStyle() core.RenderData {
	return core.RenderData{Fg: core.RGB(255, 215, 0).Ptr(), Glyph: KeyGlyph}
}

// NewKeyPickup creates a key collectible.
func NewKeyPickup() *Unit {
	return NewCollectible("key", DefaultKeyStyle())
}

// CanPickup reports whether picker may take the item.
func (c *Collectible) CanPickup(self, picker *Unit) bool {
	if c.CanPickupFunc == nil {
		return true
	}
	return c.CanPickupFunc(self, picker)
}

// OnSpawn remembers the map so the pickup can remove itself later.
func (c *Collectible) OnSpawn(_ *Unit, _ *Tile, m *Map) {
	c.m = m
}

// OnRemove forgets the map.
func (c *Collectible) OnRemove(*Unit, *Map) {
	c.m = nil
}

// OnContact picks the collectible up when the other unit is allowed to.
func (c *Collectible) OnContact(self, other *Unit) {
	if c.CanPickup(self, other) {
		c.pickup(self, other)
	}
}

func (c *Collectible) pickup(self, picker *Unit) {
	m := c.m
	if m == nil {
		return
	}
	if err := m.TryRemoveUnit(self); err != nil {
		m.Logger().Error("pickup failed", "item", c.Item, "error", err)
		return
	}
	if col, ok := picker.Behavior().(Collector); ok {
		col.Collect(c.Item)
	}
	m.Logger().Info("item picked up", "item", c.Item, "by", picker)
	if c.PickedFunc != nil {
		c.PickedFunc(self, picker)
	}
}

// OnDraw applies the collectible's style.
func (c *Collectible) OnDraw(_ *Unit, data *core.RenderData) {
	*data = data.Merge(c.Style)
}
