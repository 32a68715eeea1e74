// Package debug sets up the optional debug log. The terminal belongs to the
// game, so records always go to a file.
package debug

import (
	"fmt"
	"log/slog"
	"os"
)

// NewLogger returns a logger appending to path when enabled, or one that
// drops everything. The returned close func is never nil.
func NewLogger(enabled bool, path string) (*slog.Logger, func() error, error) {
	if !enabled {
		return slog.New(slog.DiscardHandler), func() error { return nil }, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, nil, fmt.Errorf("open debug log: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	logger.Info("=== DEBUG MODE ENABLED ===")
	return logger, f.Close, nil
}
