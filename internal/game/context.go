// Package game ties a map, its camera and the player together and drives
// them from key input.
package game

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tiles/internal/core"
	"github.com/vovakirdan/tui-tiles/internal/levels"
	"github.com/vovakirdan/tui-tiles/internal/world"
)

// Context is the single active map and camera. It is passed explicitly to
// whatever drives the game; nothing about it is global.
type Context struct {
	ID     string
	Title  string
	Map    *world.Map
	Camera *world.Camera
	Player *world.Unit

	rebuild func(opts ...world.Option) (*levels.Built, error)
	logger  *log.Logger
}

// NewContext puts a built map behind a fresh camera drawing to out.
func NewContext(b *levels.Built, out world.Display, sizer world.Sizer, logger *log.Logger) (*Context, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	cam, err := world.NewCamera(b.Map, out, sizer)
	if err != nil {
		return nil, fmt.Errorf("game: camera: %w", err)
	}
	return &Context{
		ID:      b.ID,
		Title:   b.Title,
		Map:     b.Map,
		Camera:  cam,
		Player:  b.Player,
		rebuild: b.Rebuild,
		logger:  logger,
	}, nil
}

// Load swaps in another map, keeping the camera and its origin. The whole
// view is redrawn.
func (c *Context) Load(b *levels.Built) error {
	c.ID, c.Title = b.ID, b.Title
	c.Map, c.Player = b.Map, b.Player
	c.rebuild = b.Rebuild
	c.logger.Info("map loaded", "map", b.ID)
	return c.Camera.SetMap(b.Map)
}

// Apply performs one action. It reports quit for ActionQuit. Moves that are
// blocked are not errors.
func (c *Context) Apply(a core.Action) (quit bool, err error) {
	switch {
	case a == core.ActionQuit:
		return true, nil
	case a == core.ActionRestart:
		return false, c.restart()
	case a.IsMove():
		dir, _ := a.Direction()
		from, ok := c.Player.Position()
		if !ok {
			c.logger.Debug("player not spawned", "action", a)
			return false, nil
		}
		if !c.Map.TryMoveUnit(c.Player, from.Add(dir)) {
			c.logger.Debug("move blocked", "from", from, "to", from.Add(dir))
		}
	case a.IsPan():
		dir, _ := a.Direction()
		if err := c.Camera.Pan(dir); err != nil {
			return false, fmt.Errorf("game: pan: %w", err)
		}
	}
	return false, nil
}

// restart replaces the active map with a fresh build of itself.
func (c *Context) restart() error {
	if c.rebuild == nil {
		c.logger.Debug("map cannot be restarted", "map", c.ID)
		return nil
	}
	b, err := c.rebuild(world.WithLogger(c.logger))
	if err != nil {
		return fmt.Errorf("game: restart %s: %w", c.ID, err)
	}
	return c.Load(b)
}

// Step runs one tick followed by one render pass.
func (c *Context) Step(force bool) error {
	c.Map.Tick()
	if err := c.Camera.Render(force); err != nil {
		return fmt.Errorf("game: render: %w", err)
	}
	return nil
}

// Refresh re-reads the display size. A change redraws everything.
func (c *Context) Refresh() (bool, error) {
	changed, err := c.Camera.RecomputeFrustum()
	if err != nil {
		return false, fmt.Errorf("game: frustum: %w", err)
	}
	if changed {
		c.logger.Info("frustum changed", "frustum", c.Camera.Frustum())
	}
	return changed, nil
}

// Collected returns the player's inventory, or nil when the player keeps none.
func (c *Context) Collected() []string {
	if p, ok := c.Player.Behavior().(*world.Player); ok {
		return p.Inventory
	}
	return nil
}
