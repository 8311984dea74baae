// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logging configures the process-wide diagnostic logger. Setup is
// called once from main; importing this package has no side effects.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Setup opens path for append (creating it when missing) and installs a
// slog text logger writing timestamped lines to both stderr and the file.
// The returned close function releases the log file; call it on shutdown.
func Setup(path string) (*slog.Logger, func() error, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file %s: %w", path, err)
	}

	handler := slog.NewTextHandler(io.MultiWriter(os.Stderr, f), &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	logger := slog.New(handler)
	slog.SetDefault(logger)

	return logger, f.Close, nil
}
