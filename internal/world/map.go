package world

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tiles/internal/core"
)

// ErrUnitNotSpawned is returned when removing a unit that occupies no tile
// of the map.
var ErrUnitNotSpawned = errors.New("unit not spawned")

// Map owns a fixed grid of tiles keyed by position and enforces the
// placement invariants for units moving across it.
type Map struct {
	tiles  map[core.Position]*Tile
	order  []*Tile // Row-major snapshot used for iteration
	min    core.Position
	max    core.Position
	logger *log.Logger
}

// Option configures a Map.
type Option func(*Map)

// WithLogger sets the logger used for spawn, removal and contact events.
func WithLogger(l *log.Logger) Option {
	return func(m *Map) {
		if l != nil {
			m.logger = l
		}
	}
}

// NewMap takes ownership of tiles. Each tile's position is set to its key.
// It panics if one tile appears under two keys.
func NewMap(tiles map[core.Position]*Tile, opts ...Option) *Map {
	m := &Map{
		tiles:  make(map[core.Position]*Tile, len(tiles)),
		order:  make([]*Tile, 0, len(tiles)),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(m)
	}

	seen := make(map[*Tile]core.Position, len(tiles))
	first := true
	for pos, t := range tiles {
		if t == nil {
			continue
		}
		if prev, dup := seen[t]; dup {
			panic(fmt.Sprintf("world: tile keyed at both %s and %s", prev, pos))
		}
		seen[t] = pos
		t.position = pos
		m.tiles[pos] = t
		m.order = append(m.order, t)

		if first {
			m.min, m.max = pos, pos
			first = false
			continue
		}
		m.min = core.P(min(m.min.X, pos.X), min(m.min.Y, pos.Y))
		m.max = core.P(max(m.max.X, pos.X), max(m.max.Y, pos.Y))
	}

	sort.Slice(m.order, func(i, j int) bool {
		a, b := m.order[i].position, m.order[j].position
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})

	return m
}

// Grid builds a w x h tile set anchored at (0, 0) using f for each cell.
func Grid(w, h int, f func(p core.Position) *Tile) map[core.Position]*Tile {
	tiles := make(map[core.Position]*Tile, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p := core.P(x, y)
			tiles[p] = f(p)
		}
	}
	return tiles
}

// Logger returns the map's logger.
func (m *Map) Logger() *log.Logger {
	return m.logger
}

// TileAt returns the tile at pos, or nil outside the grid.
func (m *Map) TileAt(pos core.Position) *Tile {
	return m.tiles[pos]
}

// Tiles returns every tile in row-major order.
// The slice is shared; callers must not modify it.
func (m *Map) Tiles() []*Tile {
	return m.order
}

// Len returns the number of tiles.
func (m *Map) Len() int {
	return len(m.order)
}

// Bounds returns the smallest and largest tile positions.
func (m *Map) Bounds() (lo, hi core.Position) {
	return m.min, m.max
}

// Size returns the width and height of the bounding box of the grid.
func (m *Map) Size() (w, h int) {
	if len(m.order) == 0 {
		return 0, 0
	}
	return m.max.X - m.min.X + 1, m.max.Y - m.min.Y + 1
}

// Units returns every spawned unit in row-major order of their tiles.
func (m *Map) Units() []*Unit {
	var units []*Unit
	for _, t := range m.order {
		if t.unit != nil {
			units = append(units, t.unit)
		}
	}
	return units
}

// owns reports whether t is this map's tile.
func (m *Map) owns(t *Tile) bool {
	return t != nil && m.tiles[t.position] == t
}

// Tick runs every tile's tick hook exactly once, which cascades to units.
func (m *Map) Tick() {
	snapshot := make([]*Tile, len(m.order))
	copy(snapshot, m.order)
	for _, t := range snapshot {
		t.Tick()
	}
}

// TryMoveUnit moves u to target and reports whether it ended up there.
//
// A move into an occupied tile never succeeds: both units get OnContact,
// occupant first, and the caller must retry if contact freed the tile.
func (m *Map) TryMoveUnit(u *Unit, target core.Position) bool {
	oldTile := u.tile
	if !m.owns(oldTile) {
		return false
	}
	if oldTile.position == target {
		return true
	}

	newTile := m.TileAt(target)
	if newTile == nil {
		return false
	}
	if occupant := newTile.unit; occupant != nil {
		m.logger.Debug("move blocked by unit", "unit", u, "occupant", occupant, "pos", target)
		occupant.behavior.OnContact(occupant, u)
		u.behavior.OnContact(u, occupant)
		return false
	}
	if !newTile.CanEnter(u) {
		m.logger.Debug("move refused by tile", "unit", u, "pos", target)
		return false
	}

	oldTile.setUnit(nil)
	newTile.setUnit(u)

	oldTile.behavior.OnLeave(oldTile, u)
	u.behavior.OnLeave(u, oldTile)
	newTile.behavior.OnEnter(newTile, u)
	u.behavior.OnEnter(u, newTile)

	return true
}

// TrySpawnUnit places an unspawned unit on t. It fails when t is nil, not
// part of the map, occupied, or refuses entry, and when u is already spawned.
func (m *Map) TrySpawnUnit(u *Unit, t *Tile) bool {
	if !m.owns(t) || t.unit != nil || u.tile != nil || !t.CanEnter(u) {
		return false
	}

	t.setUnit(u)
	u.behavior.OnSpawn(u, t, m)
	t.behavior.OnEnter(t, u)
	u.behavior.OnEnter(u, t)

	m.logger.Debug("unit spawned", "unit", u, "pos", t.position)
	return true
}

// TrySpawnUnitAt is TrySpawnUnit for the tile at pos.
func (m *Map) TrySpawnUnitAt(u *Unit, pos core.Position) bool {
	return m.TrySpawnUnit(u, m.TileAt(pos))
}

// TryRemoveUnit detaches u from its tile. Removing a unit that is not
// spawned on this map is a caller bug and returns ErrUnitNotSpawned.
func (m *Map) TryRemoveUnit(u *Unit) error {
	t := u.tile
	if !m.owns(t) {
		return fmt.Errorf("world: remove %s: %w", u, ErrUnitNotSpawned)
	}

	t.behavior.OnLeave(t, u)
	u.behavior.OnLeave(u, t)
	t.setUnit(nil)
	u.behavior.OnRemove(u, m)

	m.logger.Debug("unit removed", "unit", u, "pos", t.position)
	return nil
}
