// ABOUTME: Process-wide logging built on slog with a tint handler.
// ABOUTME: Level comes from BRIGHTRAY_LOG_LEVEL; helpers keep printf-style call sites.
package logging

import (
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/lmittmann/tint"
)

var (
	mu     sync.Mutex
	logger *slog.Logger
)

// Setup installs the tint handler on stderr at the given level and makes it
// the default slog logger. Safe to call more than once; the last call wins.
func Setup(level slog.Level) {
	mu.Lock()
	defer mu.Unlock()

	logger = slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))
	slog.SetDefault(logger)
}

// LevelFromEnv reads BRIGHTRAY_LOG_LEVEL ("debug", "info", "warn", "error").
// Unset or unparseable values yield slog.LevelInfo.
func LevelFromEnv() slog.Level {
	level := slog.LevelInfo
	if s := os.Getenv("BRIGHTRAY_LOG_LEVEL"); s != "" {
		var l slog.Level
		if err := l.UnmarshalText([]byte(s)); err == nil {
			level = l
		}
	}
	return level
}

func get() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	if logger == nil {
		logger = slog.New(tint.NewHandler(os.Stderr, &tint.Options{
			Level:      LevelFromEnv(),
			TimeFormat: time.Kitchen,
		}))
	}
	return logger
}

// Debug logs a debug message with printf formatting.
func Debug(format string, args ...interface{}) {
	get().Debug(fmt.Sprintf(format, args...))
}

// Info logs an info message with printf formatting.
func Info(format string, args ...interface{}) {
	get().Info(fmt.Sprintf(format, args...))
}

// Warn logs a warning message with printf formatting.
func Warn(format string, args ...interface{}) {
	get().Warn(fmt.Sprintf(format, args...))
}

// Error logs an error message with printf formatting.
func Error(format string, args ...interface{}) {
	get().Error(fmt.Sprintf(format, args...))
}
