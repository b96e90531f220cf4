package config

import (
	_ "embed"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/tiles.yaml
var defaultYAML []byte

// Default returns the embedded default configuration.
func Default() Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil || cfg.Validate() != nil {
		return fallback() // Hardcoded if the embedded file is broken
	}
	cfg.Source = "embedded"
	return cfg
}

func fallback() Config {
	return Config{
		LogLevel: "info",
		Keys: map[string][]string{
			"move_up":    {"w", "up"},
			"move_down":  {"s", "down"},
			"move_left":  {"a", "left"},
			"move_right": {"d", "right"},
			"pan_up":     {"t"},
			"pan_down":   {"g"},
			"pan_left":   {"f"},
			"pan_right":  {"h"},
			"restart":    {"r"},
			"quit":       {"ctrl+c", "q"},
		},
		Source: "embedded",
	}
}
