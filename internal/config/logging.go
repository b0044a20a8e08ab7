package config

import (
	"io"
	"log/slog"
	"os"
)

// NewLogger builds the application logger. Records go to LogFile, or are
// dropped when it is unset because the terminal belongs to the UI. The
// returned close function must be called on exit.
func (c *Config) NewLogger() (*slog.Logger, func() error, error) {
	if c.LogFile == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() error { return nil }, nil
	}

	f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, err
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: c.LogLevel}))
	return logger, f.Close, nil
}
