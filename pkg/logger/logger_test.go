package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
)

func TestCloudRunHandler_WritesSeverityAndData(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewCloudRunHandlerTo(&buf, slog.LevelInfo)).With("operation", "add_page")

	log.Warn("mutation skipped", "reason", "duplicate_page")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("invalid json line %q: %v", buf.String(), err)
	}
	if entry["severity"] != "WARNING" {
		t.Errorf("expected severity WARNING, got %v", entry["severity"])
	}
	if entry["message"] != "mutation skipped" {
		t.Errorf("unexpected message %v", entry["message"])
	}
	data, ok := entry["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected data object, got %v", entry["data"])
	}
	if data["operation"] != "add_page" || data["reason"] != "duplicate_page" {
		t.Errorf("unexpected data %v", data)
	}
}

func TestCloudRunHandler_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewCloudRunHandlerTo(&buf, slog.LevelWarn))

	log.Info("ignored")
	if buf.Len() != 0 {
		t.Errorf("expected nothing written, got %q", buf.String())
	}
}

func TestNew_ParsesLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"WARN":  slog.LevelWarn,
		"error": slog.LevelError,
		"":      slog.LevelInfo,
		"loud":  slog.LevelInfo,
	}
	for in, want := range cases {
		var got slog.Level
		New(in, func(level slog.Level) slog.Handler {
			got = level
			return NewTestHandler(level)
		})
		if got != want {
			t.Errorf("level %q: expected %v, got %v", in, want, got)
		}
	}
}

func TestFromContext_FallsBackToDefault(t *testing.T) {
	if FromContext(context.Background()) == nil {
		t.Fatal("expected a logger")
	}
	log := slog.New(NewTestHandler(slog.LevelDebug))
	ctx := ToContext(context.Background(), log)
	if FromContext(ctx) != log {
		t.Error("expected the stored logger")
	}
	if !IsDebugEnabled(ctx) {
		t.Error("expected debug to be enabled")
	}
}

func TestCloudRunHandler_StringifiesErrorsAndGroups(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewCloudRunHandlerTo(&buf, slog.LevelDebug)).WithGroup("request")

	log.Error("save failed", "err", errors.New("disk full"), "path", "/admin")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("invalid json line %q: %v", buf.String(), err)
	}
	if entry["severity"] != "ERROR" {
		t.Errorf("expected severity ERROR, got %v", entry["severity"])
	}
	data := entry["data"].(map[string]any)
	req, ok := data["request"].(map[string]any)
	if !ok {
		t.Fatalf("expected grouped attrs, got %v", data)
	}
	if req["err"] != "disk full" || req["path"] != "/admin" {
		t.Errorf("unexpected group %v", req)
	}
}
