// Package formats provides pluggable map file format parsers.
package formats

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-tiles/internal/core"
)

// ErrInvalidLevel is wrapped by every structural problem in a map file.
var ErrInvalidLevel = errors.New("invalid level")

// TileKind selects the tile behavior of a legend entry.
type TileKind string

const (
	TileFloor TileKind = "floor"
	TileWall  TileKind = "wall"
	TileVoid  TileKind = "void" // No tile at all
)

// UnitKind selects the unit spawned on a legend entry's tile.
type UnitKind string

const (
	UnitPlayer UnitKind = "player"
	UnitKey    UnitKind = "key"
	UnitItem   UnitKind = "item"
)

// YAMLLevel represents the YAML structure for a map file.
type YAMLLevel struct {
	ID       string               `yaml:"id"`
	Name     string               `yaml:"name"`
	Rows     []string             `yaml:"rows"`
	Legend   map[string]YAMLEntry `yaml:"legend"`
	Metadata map[string]string    `yaml:"metadata,omitempty"`
}

// YAMLEntry describes what one legend character stands for.
type YAMLEntry struct {
	Tile  string    `yaml:"tile"` // floor (default), wall or void
	Glyph string    `yaml:"glyph,omitempty"`
	Fg    string    `yaml:"fg,omitempty"` // Hex, e.g. "#32ff32"
	Bg    string    `yaml:"bg,omitempty"`
	Unit  *YAMLUnit `yaml:"unit,omitempty"`
}

// YAMLUnit is a unit on a legend entry. A bare scalar is shorthand for the
// kind ("unit: key").
type YAMLUnit struct {
	Kind  string `yaml:"kind"`
	Item  string `yaml:"item,omitempty"`
	Glyph string `yaml:"glyph,omitempty"`
	Fg    string `yaml:"fg,omitempty"`
	Bg    string `yaml:"bg,omitempty"`
}

// UnmarshalYAML accepts both the scalar and mapping forms.
func (u *YAMLUnit) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode {
		u.Kind = n.Value
		return nil
	}
	type plain YAMLUnit
	return n.Decode((*plain)(u))
}

// Cell is one parsed grid cell.
type Cell struct {
	Tile  TileKind
	Style core.RenderData
	Unit  *Unit
}

// Unit is a parsed unit placement.
type Unit struct {
	Kind  UnitKind
	Item  string
	Style core.RenderData
}

// Level represents a parsed map ready for building.
type Level struct {
	ID       string
	Name     string
	Width    int
	Height   int
	Cells    map[core.Position]Cell // Void cells are absent
	Metadata map[string]string
}

// ParseYAML parses a YAML map file. Rows are read rune by rune; each rune
// must appear in the legend. Exactly one player is required.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if yl.ID == "" {
		return Level{}, fmt.Errorf("missing id: %w", ErrInvalidLevel)
	}
	if len(yl.Rows) == 0 {
		return Level{}, fmt.Errorf("%s: no rows: %w", yl.ID, ErrInvalidLevel)
	}

	legend := make(map[rune]Cell, len(yl.Legend))
	for key, e := range yl.Legend {
		r, size := utf8.DecodeRuneInString(key)
		if size == 0 || size != len(key) {
			return Level{}, fmt.Errorf("%s: legend key %q must be one character: %w", yl.ID, key, ErrInvalidLevel)
		}
		cell, err := parseEntry(e)
		if err != nil {
			return Level{}, fmt.Errorf("%s: legend %q: %w", yl.ID, key, err)
		}
		legend[r] = cell
	}

	level := Level{
		ID:       yl.ID,
		Name:     yl.Name,
		Height:   len(yl.Rows),
		Cells:    make(map[core.Position]Cell),
		Metadata: yl.Metadata,
	}
	if level.Name == "" {
		level.Name = yl.ID
	}

	players := 0
	for y, row := range yl.Rows {
		x := 0
		for _, r := range row {
			cell, ok := legend[r]
			if !ok {
				return Level{}, fmt.Errorf("%s: row %d column %d: %q not in legend: %w", yl.ID, y, x, r, ErrInvalidLevel)
			}
			if cell.Tile != TileVoid {
				level.Cells[core.P(x, y)] = cell
			}
			if cell.Unit != nil && cell.Unit.Kind == UnitPlayer {
				players++
			}
			x++
		}
		level.Width = max(level.Width, x)
	}
	if players != 1 {
		return Level{}, fmt.Errorf("%s: expected one player, found %d: %w", yl.ID, players, ErrInvalidLevel)
	}

	return level, nil
}

func parseEntry(e YAMLEntry) (Cell, error) {
	cell := Cell{Tile: TileKind(e.Tile)}
	switch cell.Tile {
	case "":
		cell.Tile = TileFloor
	case TileFloor, TileWall, TileVoid:
	default:
		return Cell{}, fmt.Errorf("unknown tile %q: %w", e.Tile, ErrInvalidLevel)
	}

	style, err := parseStyle(e.Glyph, e.Fg, e.Bg)
	if err != nil {
		return Cell{}, err
	}
	cell.Style = style

	if e.Unit == nil {
		return cell, nil
	}
	if cell.Tile != TileFloor {
		return Cell{}, fmt.Errorf("unit on a %s tile: %w", cell.Tile, ErrInvalidLevel)
	}
	u := &Unit{Kind: UnitKind(e.Unit.Kind), Item: e.Unit.Item}
	switch u.Kind {
	case UnitPlayer, UnitKey:
	case UnitItem:
		if u.Item == "" {
			return Cell{}, fmt.Errorf("item unit without a name: %w", ErrInvalidLevel)
		}
	default:
		return Cell{}, fmt.Errorf("unknown unit %q: %w", e.Unit.Kind, ErrInvalidLevel)
	}
	if u.Style, err = parseStyle(e.Unit.Glyph, e.Unit.Fg, e.Unit.Bg); err != nil {
		return Cell{}, err
	}
	if u.Kind == UnitItem && u.Style.Glyph == "" {
		return Cell{}, fmt.Errorf("item %q without a glyph: %w", u.Item, ErrInvalidLevel)
	}
	cell.Unit = u
	return cell, nil
}

func parseStyle(glyph, fg, bg string) (core.RenderData, error) {
	var style core.RenderData
	if glyph != "" {
		if n := utf8.RuneCountInString(glyph); n != 2 {
			return style, fmt.Errorf("glyph %q has %d characters, expected 2: %w", glyph, n, ErrInvalidLevel)
		}
		style.Glyph = glyph
	}
	var err error
	if style.Fg, err = parseColor(fg); err != nil {
		return style, err
	}
	if style.Bg, err = parseColor(bg); err != nil {
		return style, err
	}
	return style, nil
}

func parseColor(s string) (*core.Color, error) {
	if s == "" {
		return nil, nil
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, fmt.Errorf("color %q: %w", s, ErrInvalidLevel)
	}
	r, g, b := c.RGB255()
	return core.RGB(r, g, b).Ptr(), nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
