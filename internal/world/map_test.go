package world

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-tiles/internal/core"
)

func expectEvents(t *testing.T, log *eventLog, expected ...string) {
	t.Helper()
	if len(log.events) != len(expected) {
		t.Fatalf("events = %v, expected %v", log.events, expected)
	}
	for i := range expected {
		if log.events[i] != expected[i] {
			t.Errorf("event %d = %q, expected %q", i, log.events[i], expected[i])
		}
	}
}

func TestNewMapAssignsPositions(t *testing.T) {
	tiles := map[core.Position]*Tile{
		core.P(2, 3):  NewTile(nil),
		core.P(-1, 0): NewTile(nil),
		core.P(5, 5):  NewTile(nil),
	}
	m := NewMap(tiles)

	for pos, tile := range tiles {
		if tile.Position() != pos {
			t.Errorf("tile at key %v has Position() %v", pos, tile.Position())
		}
		if m.TileAt(pos) != tile {
			t.Errorf("TileAt(%v) returned a different tile", pos)
		}
	}

	if m.TileAt(core.P(100, 100)) != nil {
		t.Error("TileAt outside the grid should return nil")
	}

	lo, hi := m.Bounds()
	if lo != core.P(-1, 0) || hi != core.P(5, 5) {
		t.Errorf("Bounds() = %v, %v; expected (-1,0), (5,5)", lo, hi)
	}
	if w, h := m.Size(); w != 7 || h != 6 {
		t.Errorf("Size() = %dx%d, expected 7x6", w, h)
	}
}

func TestNewMapRejectsSharedTile(t *testing.T) {
	shared := NewTile(nil)
	tiles := map[core.Position]*Tile{
		core.P(0, 0): shared,
		core.P(1, 0): shared,
	}
	defer func() {
		if recover() == nil {
			t.Error("NewMap() should panic when one tile has two keys")
		}
	}()
	NewMap(tiles)
}

func TestTilesRowMajor(t *testing.T) {
	m := NewMap(Grid(3, 2, func(core.Position) *Tile { return NewTile(nil) }))
	expected := []core.Position{
		core.P(0, 0), core.P(1, 0), core.P(2, 0),
		core.P(0, 1), core.P(1, 1), core.P(2, 1),
	}
	tiles := m.Tiles()
	if len(tiles) != len(expected) {
		t.Fatalf("Tiles() returned %d tiles, expected %d", len(tiles), len(expected))
	}
	for i, p := range expected {
		if tiles[i].Position() != p {
			t.Errorf("Tiles()[%d] = %v, expected %v", i, tiles[i].Position(), p)
		}
	}
}

func TestTickVisitsEveryTileOnce(t *testing.T) {
	log := &eventLog{}
	m := newRecordingMap(log, 4, 3)
	u := newRecordingUnit(log, "u")
	m.TrySpawnUnitAt(u, core.P(1, 1))

	m.Tick()
	m.Tick()

	for _, tile := range m.Tiles() {
		if r := tile.Behavior().(*recordingTile); r.ticks != 2 {
			t.Errorf("tile %v ticked %d times, expected 2", tile.Position(), r.ticks)
		}
	}
	if r := u.Behavior().(*recordingUnit); r.ticks != 2 {
		t.Errorf("unit ticked %d times, expected 2", r.ticks)
	}
}

func TestSpawnUnit(t *testing.T) {
	log := &eventLog{}
	m := newRecordingMap(log, 3, 3)
	u := newRecordingUnit(log, "u")
	tile := m.TileAt(core.P(1, 1))
	tile.SetDirty(false)

	if !m.TrySpawnUnit(u, tile) {
		t.Fatal("TrySpawnUnit() on a vacant tile should succeed")
	}

	expectEvents(t, log, "u.spawn(1,1)", "tile(1,1).enter(u)", "u.enter(1,1)")

	if tile.Unit() != u || u.Tile() != tile {
		t.Error("Spawn should link tile and unit both ways")
	}
	if pos, ok := u.Position(); !ok || pos != core.P(1, 1) {
		t.Errorf("Position() = %v, %v; expected (1,1), true", pos, ok)
	}
	if !tile.IsDirty() {
		t.Error("Spawn should mark the tile dirty")
	}
}

func TestSpawnUnitFailures(t *testing.T) {
	tests := []struct {
		name  string
		setup func(m *Map, log *eventLog) (*Unit, *Tile)
	}{
		{
			name: "nil tile",
			setup: func(m *Map, log *eventLog) (*Unit, *Tile) {
				return newRecordingUnit(log, "u"), nil
			},
		},
		{
			name: "occupied tile",
			setup: func(m *Map, log *eventLog) (*Unit, *Tile) {
				m.TrySpawnUnitAt(newRecordingUnit(log, "first"), core.P(1, 1))
				return newRecordingUnit(log, "u"), m.TileAt(core.P(1, 1))
			},
		},
		{
			name: "refusing tile",
			setup: func(m *Map, log *eventLog) (*Unit, *Tile) {
				return newRecordingUnit(log, "u"), m.TileAt(core.P(0, 0))
			},
		},
		{
			name: "unit already spawned",
			setup: func(m *Map, log *eventLog) (*Unit, *Tile) {
				u := newRecordingUnit(log, "u")
				m.TrySpawnUnitAt(u, core.P(2, 2))
				return u, m.TileAt(core.P(1, 2))
			},
		},
		{
			name: "tile from another map",
			setup: func(m *Map, log *eventLog) (*Unit, *Tile) {
				other := newRecordingMap(log, 3, 3)
				return newRecordingUnit(log, "u"), other.TileAt(core.P(1, 1))
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			log := &eventLog{}
			m := newRecordingMap(log, 3, 3, core.P(0, 0))
			u, tile := tc.setup(m, log)
			before := tileOccupants(m)
			log.reset()

			if m.TrySpawnUnit(u, tile) {
				t.Fatal("TrySpawnUnit() should fail")
			}
			if len(log.events) != 0 {
				t.Errorf("failed spawn fired callbacks: %v", log.events)
			}
			after := tileOccupants(m)
			for pos, occ := range before {
				if after[pos] != occ {
					t.Errorf("occupant of %v changed on failed spawn", pos)
				}
			}
		})
	}
}

func tileOccupants(m *Map) map[core.Position]*Unit {
	out := make(map[core.Position]*Unit)
	for _, tile := range m.Tiles() {
		out[tile.Position()] = tile.Unit()
	}
	return out
}

func TestMoveIntoVacantTile(t *testing.T) {
	log := &eventLog{}
	m := newRecordingMap(log, 3, 3)
	u := newRecordingUnit(log, "u")
	m.TrySpawnUnitAt(u, core.P(1, 1))
	cleanAll(m)
	log.reset()

	if !m.TryMoveUnit(u, core.P(2, 1)) {
		t.Fatal("TryMoveUnit() into a vacant tile should succeed")
	}

	expectEvents(t, log,
		"tile(1,1).leave(u)",
		"u.leave(1,1)",
		"tile(2,1).enter(u)",
		"u.enter(2,1)",
	)

	oldTile, newTile := m.TileAt(core.P(1, 1)), m.TileAt(core.P(2, 1))
	if pos, _ := u.Position(); pos != core.P(2, 1) {
		t.Errorf("Position() = %v, expected (2,1)", pos)
	}
	if oldTile.Occupied() || !oldTile.IsDirty() {
		t.Error("Old tile should be vacant and dirty")
	}
	if newTile.Unit() != u || u.Tile() != newTile || !newTile.IsDirty() {
		t.Error("New tile should hold the unit, link back, and be dirty")
	}
}

func TestMoveToSamePosition(t *testing.T) {
	log := &eventLog{}
	m := newRecordingMap(log, 3, 3)
	u := newRecordingUnit(log, "u")
	m.TrySpawnUnitAt(u, core.P(1, 1))
	cleanAll(m)
	log.reset()

	if !m.TryMoveUnit(u, core.P(1, 1)) {
		t.Error("Moving onto the current position should succeed trivially")
	}
	if len(log.events) != 0 || m.TileAt(core.P(1, 1)).IsDirty() {
		t.Error("Trivial move should not change state or fire callbacks")
	}
}

func TestMoveOutsideGrid(t *testing.T) {
	log := &eventLog{}
	m := newRecordingMap(log, 3, 3)
	u := newRecordingUnit(log, "u")
	m.TrySpawnUnitAt(u, core.P(0, 0))
	log.reset()

	if m.TryMoveUnit(u, core.P(-1, 0)) {
		t.Error("Moving outside the grid should fail")
	}
	if pos, _ := u.Position(); pos != core.P(0, 0) {
		t.Errorf("Position() = %v, expected (0,0)", pos)
	}
	if len(log.events) != 0 {
		t.Errorf("callbacks fired: %v", log.events)
	}
}

func TestMoveIntoOccupiedTile(t *testing.T) {
	log := &eventLog{}
	m := newRecordingMap(log, 3, 3)
	mover := newRecordingUnit(log, "mover")
	occupant := newRecordingUnit(log, "occupant")
	m.TrySpawnUnitAt(mover, core.P(0, 1))
	m.TrySpawnUnitAt(occupant, core.P(1, 1))
	log.reset()

	if m.TryMoveUnit(mover, core.P(1, 1)) {
		t.Fatal("TryMoveUnit() into an occupied tile should fail")
	}

	expectEvents(t, log, "occupant.contact(mover)", "mover.contact(occupant)")

	if m.TileAt(core.P(0, 1)).Unit() != mover || m.TileAt(core.P(1, 1)).Unit() != occupant {
		t.Error("Blocked move should not change occupancy")
	}
}

func TestMoveIntoWall(t *testing.T) {
	log := &eventLog{}
	m := newRecordingMap(log, 3, 3, core.P(2, 1))
	u := newRecordingUnit(log, "u")
	m.TrySpawnUnitAt(u, core.P(1, 1))
	cleanAll(m)
	log.reset()

	if m.TryMoveUnit(u, core.P(2, 1)) {
		t.Fatal("TryMoveUnit() into a refusing tile should fail")
	}
	if len(log.events) != 0 {
		t.Errorf("callbacks fired: %v", log.events)
	}
	if m.TileAt(core.P(1, 1)).IsDirty() || m.TileAt(core.P(2, 1)).IsDirty() {
		t.Error("Refused move should not dirty any tile")
	}
	if m.TileAt(core.P(1, 1)).Unit() != u {
		t.Error("Refused move should leave the unit in place")
	}
}

func TestMoveUnspawnedUnit(t *testing.T) {
	log := &eventLog{}
	m := newRecordingMap(log, 3, 3)
	u := newRecordingUnit(log, "u")

	if m.TryMoveUnit(u, core.P(1, 1)) {
		t.Error("Moving an unspawned unit should fail")
	}
	if m.TileAt(core.P(1, 1)).Occupied() {
		t.Error("Failed move should not place the unit")
	}
}

func TestRemoveUnit(t *testing.T) {
	log := &eventLog{}
	m := newRecordingMap(log, 3, 3)
	u := newRecordingUnit(log, "u")
	m.TrySpawnUnitAt(u, core.P(2, 2))
	cleanAll(m)
	log.reset()

	if err := m.TryRemoveUnit(u); err != nil {
		t.Fatalf("TryRemoveUnit() failed: %v", err)
	}

	expectEvents(t, log, "tile(2,2).leave(u)", "u.leave(2,2)", "u.remove")

	tile := m.TileAt(core.P(2, 2))
	if tile.Occupied() || !tile.IsDirty() {
		t.Error("Removal should vacate and dirty the tile")
	}
	if u.Spawned() {
		t.Error("Removed unit should report unspawned")
	}
	if _, ok := u.Position(); ok {
		t.Error("Removed unit should have no position")
	}
}

func TestRemoveUnspawnedUnit(t *testing.T) {
	log := &eventLog{}
	m := newRecordingMap(log, 3, 3)
	u := newRecordingUnit(log, "u")

	err := m.TryRemoveUnit(u)
	if !errors.Is(err, ErrUnitNotSpawned) {
		t.Errorf("TryRemoveUnit() error = %v, expected ErrUnitNotSpawned", err)
	}
	if len(log.events) != 0 {
		t.Errorf("callbacks fired: %v", log.events)
	}
}

func TestRemoveThenRespawn(t *testing.T) {
	m := NewMap(Grid(2, 1, func(core.Position) *Tile { return NewTile(nil) }))
	u := NewUnit("u", nil)

	m.TrySpawnUnitAt(u, core.P(0, 0))
	if err := m.TryRemoveUnit(u); err != nil {
		t.Fatalf("TryRemoveUnit() failed: %v", err)
	}
	if !m.TrySpawnUnitAt(u, core.P(1, 0)) {
		t.Error("A removed unit should be spawnable again")
	}
	if len(m.Units()) != 1 {
		t.Errorf("Units() = %d, expected 1", len(m.Units()))
	}
}

func TestUnitDirtyMarksTile(t *testing.T) {
	m := NewMap(Grid(2, 2, func(core.Position) *Tile { return NewTile(nil) }))
	u := NewUnit("u", nil)
	m.TrySpawnUnitAt(u, core.P(1, 1))
	cleanAll(m)

	u.MarkDirty()
	if !m.TileAt(core.P(1, 1)).IsDirty() {
		t.Error("A dirty unit should mark its tile dirty")
	}
}
