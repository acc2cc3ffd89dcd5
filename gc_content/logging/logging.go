// Package logging holds the process-wide structured logger.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	mu            sync.Mutex
	once          sync.Once
	defaultLogger *slog.Logger
)

// ForTestsOnlyResetLogger lets tests initialise the global logger again.
// It must not be used in production code.
func ForTestsOnlyResetLogger() {
	mu.Lock()
	defer mu.Unlock()
	once = sync.Once{}
	defaultLogger = nil
}

// Init configures the global logger. Only the first call has an effect.
// format is "json" or "text"; it defaults to "text".
func Init(level slog.Level, output io.Writer, format ...string) {
	mu.Lock()
	defer mu.Unlock()
	once.Do(func() {
		fmtStr := "text"
		if len(format) > 0 {
			fmtStr = format[0]
		}

		opts := &slog.HandlerOptions{Level: level}
		if fmtStr == "json" {
			defaultLogger = slog.New(slog.NewJSONHandler(output, opts))
		} else {
			defaultLogger = slog.New(slog.NewTextHandler(output, opts))
		}
	})
}

// GetLogger returns the global logger, initialising it to log INFO and above
// to stderr if Init was never called.
func GetLogger() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	once.Do(func() {
		defaultLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	})
	return defaultLogger
}

// ToSlogLevel converts a level name to a slog.Level. Unknown names map to INFO.
func ToSlogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
