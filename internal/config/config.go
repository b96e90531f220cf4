// Package config provides YAML-based configuration loading for key bindings,
// tick interval and logging.
package config

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tiles/internal/core"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config contains the user-tunable settings.
type Config struct {
	TickInterval time.Duration       `yaml:"tick_interval"`
	LogLevel     string              `yaml:"log_level"`
	Keys         map[string][]string `yaml:"keys"` // action name -> key names

	// Source is the file the config was read from, or "embedded".
	Source string `yaml:"-"`
}

// Validate checks intervals, log level and bindings. A key may trigger only
// one action and quit must stay reachable.
func (c Config) Validate() error {
	if c.TickInterval < 0 {
		return fmt.Errorf("config: tick_interval %s is negative: %w", c.TickInterval, ErrInvalid)
	}
	if c.LogLevel != "" {
		if _, err := log.ParseLevel(c.LogLevel); err != nil {
			return fmt.Errorf("config: log_level %q: %w", c.LogLevel, ErrInvalid)
		}
	}

	owner := make(map[string]string)
	for name, keys := range c.Keys {
		if _, ok := core.ParseAction(name); !ok {
			return fmt.Errorf("config: unknown action %q: %w", name, ErrInvalid)
		}
		for _, key := range keys {
			if key == "" {
				return fmt.Errorf("config: empty key for %s: %w", name, ErrInvalid)
			}
			if prev, ok := owner[key]; ok && prev != name {
				return fmt.Errorf("config: key %q bound to both %s and %s: %w", key, prev, name, ErrInvalid)
			}
			owner[key] = name
		}
	}
	if len(c.Keys[core.ActionQuit.String()]) == 0 {
		return fmt.Errorf("config: quit has no key: %w", ErrInvalid)
	}
	return nil
}

// Level returns the parsed log level, info when unset.
func (c Config) Level() log.Level {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// Runtime returns the settings a session needs.
func (c Config) Runtime() core.RuntimeConfig {
	rc := core.DefaultConfig()
	rc.TickInterval = c.TickInterval
	return rc
}

// Bindings returns the keys of each action in action order.
func (c Config) Bindings() map[core.Action][]string {
	out := make(map[core.Action][]string, len(c.Keys))
	for _, a := range core.AllActions() {
		if keys := c.Keys[a.String()]; len(keys) > 0 {
			out[a] = slices.Clone(keys)
		}
	}
	return out
}

// KeyMap resolves key names to actions.
type KeyMap map[string]core.Action

// KeyMap builds the key lookup for a validated config.
func (c Config) KeyMap() KeyMap {
	km := make(KeyMap)
	for a, keys := range c.Bindings() {
		for _, key := range keys {
			km[key] = a
		}
	}
	return km
}

// Lookup returns the action bound to key, or ActionNone.
func (km KeyMap) Lookup(key string) core.Action {
	return km[key]
}

// withDefaults fills actions the file left out from def. Default keys that
// the file already uses for another action are dropped.
func (c Config) withDefaults(def Config) Config {
	used := make(map[string]bool)
	for _, keys := range c.Keys {
		for _, k := range keys {
			used[k] = true
		}
	}
	merged := make(map[string][]string, len(def.Keys))
	for name, keys := range c.Keys {
		merged[name] = keys
	}
	for name, keys := range def.Keys {
		if _, ok := merged[name]; ok {
			continue
		}
		var kept []string
		for _, k := range keys {
			if !used[k] {
				kept = append(kept, k)
			}
		}
		merged[name] = kept
	}
	c.Keys = merged
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	return c
}
