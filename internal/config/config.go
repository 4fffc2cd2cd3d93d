// Package config provides YAML-based runtime configuration for Pixel Pilot:
// tick rate, seeding, input hold window, key bindings and logging.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pixel-pilot/internal/core"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

// MaxTickRate bounds tick_rate; terminals cannot redraw faster anyway.
const MaxTickRate = 240

// Config contains all runtime configuration.
type Config struct {
	TickRate     int           `yaml:"tick_rate"`
	Seed         int64         `yaml:"seed"`
	HoldDuration time.Duration `yaml:"hold_duration"`
	Log          LogConfig     `yaml:"log"`
	Keys         KeyConfig     `yaml:"keys"`
}

// LogConfig defines where and how verbosely to log.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn or error
	File  string `yaml:"file"`  // Empty discards output; ~ expands to the home directory
}

// KeyConfig binds each control intent to a list of Bubble Tea key names.
type KeyConfig struct {
	ThrustForward []string `yaml:"thrust_forward"`
	ThrustBack    []string `yaml:"thrust_back"`
	StrafeLeft    []string `yaml:"strafe_left"`
	StrafeRight   []string `yaml:"strafe_right"`
	RotateCCW     []string `yaml:"rotate_ccw"`
	RotateCW      []string `yaml:"rotate_cw"`
	Fire          []string `yaml:"fire"`
	Restart       []string `yaml:"restart"`
	Pause         []string `yaml:"pause"`
	Quit          []string `yaml:"quit"`
	Suspend       []string `yaml:"suspend"`
}

// For returns the keys bound to an action.
func (k KeyConfig) For(a core.Action) []string {
	switch a {
	case core.ActionThrustForward:
		return k.ThrustForward
	case core.ActionThrustBack:
		return k.ThrustBack
	case core.ActionStrafeLeft:
		return k.StrafeLeft
	case core.ActionStrafeRight:
		return k.StrafeRight
	case core.ActionRotateCCW:
		return k.RotateCCW
	case core.ActionRotateCW:
		return k.RotateCW
	case core.ActionFire:
		return k.Fire
	case core.ActionRestart:
		return k.Restart
	case core.ActionPause:
		return k.Pause
	case core.ActionQuit:
		return k.Quit
	case core.ActionSuspend:
		return k.Suspend
	default:
		return nil
	}
}

// Validate checks every field. The returned error wraps ErrInvalid.
func (c Config) Validate() error {
	if c.TickRate <= 0 || c.TickRate > MaxTickRate {
		return fmt.Errorf("%w: tick_rate %d must be in [1, %d]", ErrInvalid, c.TickRate, MaxTickRate)
	}
	if c.HoldDuration <= 0 {
		return fmt.Errorf("%w: hold_duration %v must be positive", ErrInvalid, c.HoldDuration)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level %q: %w", ErrInvalid, c.Log.Level, err)
	}

	owner := make(map[string]core.Action)
	for _, a := range core.Actions {
		keys := c.Keys.For(a)
		if len(keys) == 0 {
			return fmt.Errorf("%w: no keys bound to %s", ErrInvalid, a)
		}
		for _, k := range keys {
			k = strings.ToLower(k)
			if prev, ok := owner[k]; ok {
				return fmt.Errorf("%w: key %q bound to both %s and %s", ErrInvalid, k, prev, a)
			}
			owner[k] = a
		}
	}
	return nil
}
