package tui

import (
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-racer/internal/config"
	"github.com/vovakirdan/space-racer/internal/core"
)

// NewLogger builds the session logger writing to w at the configured level.
// An unknown level falls back to info.
func NewLogger(cfg config.LogConfig, w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "spaceracer",
	})

	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// OpenLogFile opens the configured log file for appending, creating its
// directory. An empty path resolves to ~/.spaceracer/spaceracer.log.
func OpenLogFile(cfg config.LogConfig) (*os.File, error) {
	path := cfg.File
	if path == "" {
		path = config.DefaultLogPath()
	}
	if path == "" {
		return nil, fmt.Errorf("no log file path: home directory unavailable")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file %s: %w", path, err)
	}
	return f, nil
}

// logEvent writes one simulation event. Game over is logged at info,
// everything else at debug.
func logEvent(logger *log.Logger, runID string, e core.Event) {
	kv := make([]any, 0, 2+2*len(e.Fields))
	kv = append(kv, "run", runID)
	for _, k := range slices.Sorted(maps.Keys(e.Fields)) {
		kv = append(kv, k, e.Fields[k])
	}

	if e.Kind == "game_over" {
		logger.Info(e.Kind, kv...)
		return
	}
	logger.Debug(e.Kind, kv...)
}
