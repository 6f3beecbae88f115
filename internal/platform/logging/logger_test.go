package logging

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
)

func TestNew_WritesKeyValueFields(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, LevelInfo, false)

	logger.Debug("hidden", "k", "v")
	logger.With("component", "pwned").Warn("pwned request failed", "status", 502, "error", errors.New("boom"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected one line, got %d: %s", len(lines), buf.String())
	}

	var entry map[string]any
	if err := sonic.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if entry["msg"] != "pwned request failed" || entry["level"] != "WARN" {
		t.Fatalf("unexpected entry %v", entry)
	}
	if entry["component"] != "pwned" || entry["error"] != "boom" {
		t.Fatalf("expected fields carried, got %v", entry)
	}
	if status, ok := entry["status"].(float64); !ok || status != 502 {
		t.Fatalf("unexpected status field %v", entry["status"])
	}
}

func TestSetMirror_ReceivesEnabledRecords(t *testing.T) {
	var got []string
	SetMirror(func(_ context.Context, level Level, msg string, _ ...any) {
		got = append(got, level.String()+":"+msg)
	})
	t.Cleanup(func() { SetMirror(nil) })

	logger := New(&bytes.Buffer{}, LevelInfo, false)
	logger.DebugContext(context.Background(), "skipped")
	logger.InfoContext(context.Background(), "kept")

	if len(got) != 1 || got[0] != "info:kept" {
		t.Fatalf("unexpected mirrored records %v", got)
	}
}

func TestNilLoggerFallsBackToDefault(t *testing.T) {
	var logger *Logger
	logger.Info("no panic")
	if logger.Enabled(LevelError) {
		t.Fatalf("nil logger must report disabled")
	}
	if err := logger.Sync(); err != nil {
		t.Fatalf("sync nil logger: %v", err)
	}
}
