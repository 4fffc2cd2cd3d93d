package config

import (
	_ "embed"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/pixelpilot.yaml
var defaultYAML []byte

// Default returns the embedded default configuration.
func Default() Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return fallbackConfig() // Fallback to hardcoded if embed fails
	}
	return cfg
}

func fallbackConfig() Config {
	return Config{
		TickRate:     60,
		HoldDuration: 500 * time.Millisecond,
		Log: LogConfig{
			Level: "info",
			File:  "~/.pixelpilot/pixelpilot.log",
		},
		Keys: KeyConfig{
			ThrustForward: []string{"w", "up"},
			ThrustBack:    []string{"s", "down"},
			StrafeLeft:    []string{"a"},
			StrafeRight:   []string{"d"},
			RotateCCW:     []string{"j", "left"},
			RotateCW:      []string{"k", "right"},
			Fire:          []string{" ", "space"},
			Restart:       []string{"enter", "r"},
			Pause:         []string{"esc", "p"},
			Quit:          []string{"q", "ctrl+c"},
			Suspend:       []string{"ctrl+z"},
		},
	}
}
