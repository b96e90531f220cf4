package world

import "github.com/vovakirdan/tui-tiles/internal/core"

// Player is the unit driven by keyboard input. It keeps the items it picks up.
type Player struct {
	BaseUnit
	Style     core.RenderData
	Inventory []string
}

// DefaultPlayerStyle returns the default player appearance.
func DefaultPlayerStyle() core.RenderData {
	return core.RenderData{Fg: core.RGB(255, 255, 255).Ptr(), Glyph: "@@"}
}

// NewPlayer creates an unspawned player unit.
func NewPlayer(name string, style core.RenderData) *Unit {
	return NewUnit(name, &Player{Style: style})
}

// Collect adds item to the inventory.
func (p *Player) Collect(item string) {
	p.Inventory = append(p.Inventory, item)
}

// Count returns how many of item the player holds.
func (p *Player) Count(item string) int {
	n := 0
	for _, it := range p.Inventory {
		if it == item {
			n++
		}
	}
	return n
}

// OnDraw applies the player style.
func (p *Player) OnDraw(_ *Unit, data *core.RenderData) {
	*data = data.Merge(p.Style)
}
