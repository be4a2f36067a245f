package logging

import (
	"log/slog"
	"testing"
)

func TestLevelFromEnv_Default(t *testing.T) {
	t.Setenv("BRIGHTRAY_LOG_LEVEL", "")
	if got := LevelFromEnv(); got != slog.LevelInfo {
		t.Errorf("LevelFromEnv() = %v, want %v", got, slog.LevelInfo)
	}
}

func TestLevelFromEnv_Debug(t *testing.T) {
	t.Setenv("BRIGHTRAY_LOG_LEVEL", "debug")
	if got := LevelFromEnv(); got != slog.LevelDebug {
		t.Errorf("LevelFromEnv() = %v, want %v", got, slog.LevelDebug)
	}
}

func TestLevelFromEnv_Garbage(t *testing.T) {
	t.Setenv("BRIGHTRAY_LOG_LEVEL", "loudest")
	if got := LevelFromEnv(); got != slog.LevelInfo {
		t.Errorf("LevelFromEnv() = %v, want %v", got, slog.LevelInfo)
	}
}

func TestHelpersDoNotPanicBeforeSetup(t *testing.T) {
	// The lazily built default handler must serve all helpers.
	Debug("debug %d", 1)
	Info("info %s", "x")
	Warn("warn")
	Error("error: %v", nil)
}
