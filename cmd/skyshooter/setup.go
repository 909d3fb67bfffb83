package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skyshooter/internal/config"
)

// newLogger creates the structured logger used by every command.
func newLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "skyshooter",
	})
}

// openLogFile returns a logger for the time the TUI owns the terminal.
// Without --log-file everything is discarded. The returned close function
// is never nil.
func openLogFile(path string) (*log.Logger, func(), error) {
	if path == "" {
		return newLogger(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) //#nosec G304 -- user-supplied log path
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := newLogger(f)
	logger.SetLevel(log.DebugLevel)
	return logger, func() { _ = f.Close() }, nil
}

// loadConfig loads and validates the game configuration. Any error here is
// fatal: the game never starts with an invalid field.
func loadConfig(logger *log.Logger) (config.ShooterConfig, error) {
	cfg, src, err := config.LoadShooter(flagConfig)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	logger.Debug("config loaded", "source", src)
	return cfg, nil
}

// fatal reports err and exits.
func fatal(logger *log.Logger, msg string, err error) {
	logger.Error(msg, "err", err)
	os.Exit(1)
}
