package levels

import (
	"fmt"

	"github.com/vovakirdan/tui-tiles/internal/core"
	"github.com/vovakirdan/tui-tiles/internal/levels/formats"
	"github.com/vovakirdan/tui-tiles/internal/world"
)

// Built is a map ready to play.
type Built struct {
	ID     string
	Title  string
	Map    *world.Map
	Player *world.Unit

	// Rebuild creates a fresh copy of the same map. Nil when the map has no
	// source to rebuild from.
	Rebuild func(opts ...world.Option) (*Built, error)
}

// Build creates fresh tiles and units for the level and spawns the units.
// Every call returns an independent world.
func (l Level) Build(opts ...world.Option) (*Built, error) {
	tiles := make(map[core.Position]*world.Tile, len(l.Cells))
	type spawn struct {
		pos  core.Position
		unit *world.Unit
		kind formats.UnitKind
	}
	var spawns []spawn

	// Row-major so spawn order does not depend on map iteration
	for y := 0; y < l.Height; y++ {
		for x := 0; x < l.Width; x++ {
			pos := core.P(x, y)
			cell, ok := l.Cells[pos]
			if !ok {
				continue
			}
			tiles[pos] = newTile(cell)
			if cell.Unit != nil {
				spawns = append(spawns, spawn{pos: pos, unit: newUnit(*cell.Unit), kind: cell.Unit.Kind})
			}
		}
	}

	b := &Built{ID: l.ID, Title: l.Name, Map: world.NewMap(tiles, opts...), Rebuild: l.Build}
	for _, s := range spawns {
		if !b.Map.TrySpawnUnitAt(s.unit, s.pos) {
			return nil, fmt.Errorf("levels: %s: cannot spawn %s at %s", l.ID, s.unit, s.pos)
		}
		if s.kind == formats.UnitPlayer {
			b.Player = s.unit
		}
	}
	if b.Player == nil {
		return nil, fmt.Errorf("levels: %s: no player", l.ID)
	}
	return b, nil
}

func newTile(c formats.Cell) *world.Tile {
	switch c.Tile {
	case formats.TileWall:
		return world.NewTile(&world.Wall{Style: world.DefaultWallStyle().Merge(c.Style)})
	default:
		return world.NewFloor(c.Style)
	}
}

func newUnit(u formats.Unit) *world.Unit {
	switch u.Kind {
	case formats.UnitPlayer:
		return world.NewPlayer("player", world.DefaultPlayerStyle().Merge(u.Style))
	case formats.UnitKey:
		return world.NewCollectible("key", world.DefaultKeyStyle().Merge(u.Style))
	default:
		return world.NewCollectible(u.Item, u.Style)
	}
}
