package app

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/terraincognita07/fertilitrack/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for raw, want := range tests {
		if got := parseLevel(raw); got != want {
			t.Fatalf("parseLevel(%q) = %s, want %s", raw, got, want)
		}
	}
}

func TestNewLoggerJSONFormat(t *testing.T) {
	var output bytes.Buffer
	logger := newLogger(config.LogConfig{Level: "info", Format: "json"}, &output)
	logger.Debug("hidden")
	logger.Info("prediction computed", "user_id", 7)

	lines := strings.Split(strings.TrimSpace(output.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected a single info line, got %q", output.String())
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("expected JSON log line: %v", err)
	}
	if entry["msg"] != "prediction computed" || entry["user_id"] != float64(7) {
		t.Fatalf("unexpected log entry %#v", entry)
	}
}

func TestNewLoggerTextFormat(t *testing.T) {
	var output bytes.Buffer
	logger := newLogger(config.LogConfig{Level: "debug", Format: "text"}, &output)
	logger.Debug("scan finished", "owners", 2)

	if !strings.Contains(output.String(), "msg=\"scan finished\"") || !strings.Contains(output.String(), "owners=2") {
		t.Fatalf("unexpected text output %q", output.String())
	}
}
