package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// NewLogger creates the application logger described by c.
// The terminal belongs to the TUI, so output goes to a file; an empty File
// discards everything. The returned close function releases the file.
func (c LogConfig) NewLogger() (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(c.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: log.level %q: %w", ErrInvalid, c.Level, err)
	}

	var w io.Writer = io.Discard
	closeFn := func() error { return nil }

	if c.File != "" {
		path, err := ExpandHome(c.File)
		if err != nil {
			return nil, nil, err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) //#nosec G304 -- path from user config
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file %s: %w", path, err)
		}
		w = f
		closeFn = f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "pixelpilot",
		Level:           level,
	})
	return logger, closeFn, nil
}
