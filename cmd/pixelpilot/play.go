package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pixel-pilot/internal/config"
	"github.com/vovakirdan/pixel-pilot/internal/core"
	"github.com/vovakirdan/pixel-pilot/internal/platform/tui"
)

// loadConfig loads the config file and applies flags the user set explicitly.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		cfg.TickRate = flagFPS
	}
	if flags.Changed("seed") {
		cfg.Seed = flagSeed
	}
	if flags.Changed("log-file") {
		cfg.Log.File = flagLogFile
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("after applying flags: %w", err)
	}
	return cfg, nil
}

func runGame(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := cfg.Log.NewLogger()
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	// Get terminal size, falling back to 80x24
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil { //#nosec G115 -- fd fits in int
		width = w
		height = h
	}

	runtime := core.DefaultConfig()
	runtime.ScreenW = width
	runtime.ScreenH = height
	runtime.TickRate = cfg.TickRate
	runtime.Seed = cfg.Seed

	if err := tui.Run(tui.Options{
		Runtime:      runtime,
		Keys:         cfg.Keys,
		HoldDuration: cfg.HoldDuration,
		Logger:       logger,
	}); err != nil {
		logger.Error("game exited", "err", err)
		return fmt.Errorf("failed to run game: %w", err)
	}
	return nil
}
