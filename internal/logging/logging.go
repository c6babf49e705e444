package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	loggerMu sync.RWMutex
	logger   *slog.Logger
)

func init() {
	logger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
}

// Logger returns the process-wide structured logger.
func Logger() *slog.Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return logger
}

// SetLogger overrides the global logger (useful for tests or custom sinks).
func SetLogger(l *slog.Logger) {
	loggerMu.Lock()
	logger = l
	loggerMu.Unlock()
}

// DiscardLogging routes logs to /dev/null while preserving structured handler semantics.
func DiscardLogging() {
	SetLogger(slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelInfo})))
}

// Configure installs a logger writing to w at the named level ("off", "debug",
// "info", "warn", "error") in the named format ("json" or "text"). Level "off"
// is equivalent to DiscardLogging.
func Configure(level, format string, w io.Writer) error {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "" || level == "off" {
		DiscardLogging()
		return nil
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("invalid log level %q", level)
	}
	opts := &slog.HandlerOptions{Level: lvl}
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "json":
		SetLogger(slog.New(slog.NewJSONHandler(w, opts)))
	case "text":
		SetLogger(slog.New(slog.NewTextHandler(w, opts)))
	default:
		return fmt.Errorf("invalid log format %q", format)
	}
	return nil
}
