package logger

import (
	"context"
	"log/slog"
	"testing"
)

func TestNew(t *testing.T) {
	log := New()
	if log == nil {
		t.Fatal("expected logger instance")
	}
	if !log.Enabled(context.Background(), slog.LevelInfo) {
		t.Fatal("info level must be enabled")
	}
	if log.Enabled(context.Background(), slog.LevelDebug) {
		t.Fatal("debug level must be disabled")
	}
}
