package world

import (
	"fmt"

	"github.com/vovakirdan/tui-tiles/internal/core"
)

// eventLog records hook invocations across tiles and units in call order.
type eventLog struct {
	events []string
}

func (l *eventLog) add(format string, args ...any) {
	l.events = append(l.events, fmt.Sprintf(format, args...))
}

func (l *eventLog) reset() {
	l.events = nil
}

// recordingTile logs every tile hook.
type recordingTile struct {
	BaseTile
	log     *eventLog
	blocked bool
	ticks   int
}

func (r *recordingTile) CanEnter(t *Tile, u *Unit) bool {
	return !r.blocked
}

func (r *recordingTile) OnEnter(t *Tile, u *Unit) {
	r.log.add("tile%v.enter(%s)", t.Position(), u)
}

func (r *recordingTile) OnLeave(t *Tile, u *Unit) {
	r.log.add("tile%v.leave(%s)", t.Position(), u)
}

func (r *recordingTile) OnTick(t *Tile) {
	r.ticks++
	BaseTile{}.OnTick(t)
}

// recordingUnit logs every unit hook.
type recordingUnit struct {
	BaseUnit
	log   *eventLog
	ticks int
}

func (r *recordingUnit) OnEnter(u *Unit, t *Tile) {
	r.log.add("%s.enter%v", u, t.Position())
}

func (r *recordingUnit) OnLeave(u *Unit, t *Tile) {
	r.log.add("%s.leave%v", u, t.Position())
}

func (r *recordingUnit) OnContact(u *Unit, other *Unit) {
	r.log.add("%s.contact(%s)", u, other)
}

func (r *recordingUnit) OnSpawn(u *Unit, t *Tile, m *Map) {
	r.log.add("%s.spawn%v", u, t.Position())
}

func (r *recordingUnit) OnRemove(u *Unit, m *Map) {
	r.log.add("%s.remove", u)
}

func (r *recordingUnit) OnTick(u *Unit) {
	r.ticks++
}

// newRecordingMap builds a w x h map of recording tiles; walls marks blocked cells.
func newRecordingMap(log *eventLog, w, h int, walls ...core.Position) *Map {
	blocked := make(map[core.Position]bool)
	for _, p := range walls {
		blocked[p] = true
	}
	return NewMap(Grid(w, h, func(p core.Position) *Tile {
		return NewTile(&recordingTile{log: log, blocked: blocked[p]})
	}))
}

func newRecordingUnit(log *eventLog, name string) *Unit {
	return NewUnit(name, &recordingUnit{log: log})
}

// walledRoom builds the 10x10 room with a wall ring and an open 8x8 interior.
func walledRoom() *Map {
	return NewMap(Grid(10, 10, func(p core.Position) *Tile {
		if p.X == 0 || p.Y == 0 || p.X == 9 || p.Y == 9 {
			return NewWall()
		}
		return NewTile(nil)
	}))
}

// drawCall is one recorded Display.Draw.
type drawCall struct {
	pos  core.Position
	data core.RenderData
}

// recordingDisplay captures camera output.
type recordingDisplay struct {
	draws  []drawCall
	clears int
	homes  int
	err    error
}

func (d *recordingDisplay) Draw(pos core.Position, data core.RenderData) error {
	if d.err != nil {
		return d.err
	}
	d.draws = append(d.draws, drawCall{pos: pos, data: data})
	return nil
}

func (d *recordingDisplay) Clear() error {
	d.clears++
	return nil
}

func (d *recordingDisplay) Home() error {
	d.homes++
	return nil
}

func (d *recordingDisplay) Flush() error {
	return nil
}

func (d *recordingDisplay) drawnAt(pos core.Position) (core.RenderData, bool) {
	for i := len(d.draws) - 1; i >= 0; i-- {
		if d.draws[i].pos == pos {
			return d.draws[i].data, true
		}
	}
	return core.RenderData{}, false
}

// cleanAll clears every dirty flag on the map.
func cleanAll(m *Map) {
	for _, t := range m.Tiles() {
		t.SetDirty(false)
		if u := t.Unit(); u != nil {
			u.SetDirty(false)
		}
	}
}
