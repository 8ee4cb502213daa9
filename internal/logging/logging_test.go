package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"DEBUG":   slog.LevelDebug,
		"debug":   slog.LevelDebug,
		"WARN":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"ERROR":   slog.LevelError,
		"INFO":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNew_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "WARN")
	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("INFO record should be filtered at WARN level")
	}
	if !strings.Contains(out, "shown") {
		t.Error("WARN record should be written")
	}
}

func TestNew_ErrorCarriesStackTrace(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "INFO").With("component", "test")
	logger.Error("boom", "error", "bad")

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if rec["msg"] != "boom" {
		t.Errorf("unexpected msg %v", rec["msg"])
	}
	if rec["component"] != "test" {
		t.Errorf("expected attrs from With to survive, got %v", rec["component"])
	}
	st, _ := rec["stacktrace"].(string)
	if !strings.Contains(st, "goroutine") {
		t.Errorf("expected stack trace, got %q", st)
	}
}

func TestNew_InfoHasNoStackTrace(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, "INFO").Info("fine")
	if strings.Contains(buf.String(), "stacktrace") {
		t.Error("INFO record should not carry a stack trace")
	}
}
