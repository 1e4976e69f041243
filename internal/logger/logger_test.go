package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
)

func TestNewProvidesJSONLogger(t *testing.T) {
	l := New(slog.LevelInfo)
	if l == nil {
		t.Fatal("expected logger, got nil")
	}

	if !l.Enabled(context.Background(), slog.LevelInfo) {
		t.Errorf("expected info level to be enabled")
	}
	if l.Enabled(context.Background(), slog.LevelDebug) {
		t.Errorf("did not expect debug level to be enabled")
	}

	if _, ok := l.Handler().(*slog.JSONHandler); !ok {
		t.Fatalf("expected JSON handler, got %T", l.Handler())
	}
}

func TestLoggerHonoursLevelAndTagsService(t *testing.T) {
	var buf bytes.Buffer
	l := newWithWriter(&buf, slog.LevelDebug)
	l.Debug("bus advanced", slog.Int("domains", 8))

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("expected JSON record, got %q: %v", buf.String(), err)
	}
	if record["service"] != "procurement-console" {
		t.Fatalf("expected service attribute, got %v", record["service"])
	}
	if record["msg"] != "bus advanced" || record["level"] != "DEBUG" {
		t.Fatalf("unexpected record %v", record)
	}
}
