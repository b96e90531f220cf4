package core

import "time"

// RuntimeConfig contains the settings a frontend passes into a session.
type RuntimeConfig struct {
	ScreenW      int           // Terminal width in characters
	ScreenH      int           // Terminal height in characters
	TickInterval time.Duration // 0 means one tick per consumed key
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:      80,
		ScreenH:      24,
		TickInterval: 0,
	}
}
