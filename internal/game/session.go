package game

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tiles/internal/config"
	"github.com/vovakirdan/tui-tiles/internal/core"
)

// KeySource yields key names ("w", "up", "ctrl+c").
type KeySource interface {
	ReadKey() (string, error)
	KeyAvailable() (bool, error)
}

// Session is the raw terminal input loop. With a zero tick interval every
// consumed key produces exactly one tick and one render. With a positive
// interval every interval consumes at most one pending key and then runs
// exactly one tick and one render.
type Session struct {
	game     *Context
	keys     KeySource
	bindings config.KeyMap
	interval time.Duration
	logger   *log.Logger
}

// NewSession creates a session driving g from keys.
func NewSession(g *Context, keys KeySource, bindings config.KeyMap, rc core.RuntimeConfig, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Session{
		game:     g,
		keys:     keys,
		bindings: bindings,
		interval: rc.TickInterval,
		logger:   logger,
	}
}

// Run draws the map and processes input until the quit action, an error or
// ctx is done. A pending read does not delay cancellation.
func (s *Session) Run(ctx context.Context) error {
	s.logger.Info("session started", "map", s.game.ID, "interval", s.interval)
	defer s.logger.Info("session stopped", "map", s.game.ID)

	if _, err := s.game.Refresh(); err != nil {
		return err
	}
	if err := s.game.Camera.Render(true); err != nil {
		return fmt.Errorf("game: render: %w", err)
	}

	if s.interval > 0 {
		return s.runTimed(ctx)
	}
	return s.runBlocking(ctx)
}

type keyResult struct {
	key string
	err error
}

// runBlocking reads each key on its own goroutine so ctx can end the loop
// while a read is pending. Only one read is in flight at a time and no key
// is read ahead of the one being handled.
func (s *Session) runBlocking(ctx context.Context) error {
	results := make(chan keyResult, 1)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		go func() {
			key, err := s.keys.ReadKey()
			results <- keyResult{key: key, err: err}
		}()

		var r keyResult
		select {
		case <-ctx.Done():
			return ctx.Err()
		case r = <-results:
		}
		if r.err != nil {
			return fmt.Errorf("game: read key: %w", r.err)
		}
		quit, err := s.handle(r.key)
		if err != nil || quit {
			return err
		}
		if err := s.step(); err != nil {
			return err
		}
	}
}

func (s *Session) runTimed(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		ok, err := s.keys.KeyAvailable()
		if err != nil {
			return fmt.Errorf("game: poll keys: %w", err)
		}
		if ok {
			key, err := s.keys.ReadKey()
			if err != nil {
				return fmt.Errorf("game: read key: %w", err)
			}
			quit, err := s.handle(key)
			if err != nil || quit {
				return err
			}
		}
		if err := s.step(); err != nil {
			return err
		}
	}
}

// handle maps a key to its action and applies it.
func (s *Session) handle(key string) (bool, error) {
	a := s.bindings.Lookup(key)
	if a == core.ActionNone {
		s.logger.Debug("unbound key", "key", key)
		return false, nil
	}
	quit, err := s.game.Apply(a)
	if quit {
		s.logger.Info("quit", "key", key)
	}
	return quit, err
}

// step follows a size change with a full redraw, otherwise a partial one.
func (s *Session) step() error {
	changed, err := s.game.Refresh()
	if err != nil {
		return err
	}
	return s.game.Step(changed)
}
