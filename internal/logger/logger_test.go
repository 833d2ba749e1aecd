package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
)

func TestSetup_OutputsJSON(t *testing.T) {
	var buf bytes.Buffer
	log := Setup(&buf)

	log.Info("test message", slog.String("key", "value"))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output should be JSON: %v (%s)", err, buf.String())
	}
	if entry["msg"] != "test message" {
		t.Errorf("msg = %v, want test message", entry["msg"])
	}
	if entry["key"] != "value" {
		t.Errorf("key = %v, want value", entry["key"])
	}
}

// デフォルトレベルはInfoのため、Debugログは出力されない
func TestSetup_DebugSuppressed(t *testing.T) {
	var buf bytes.Buffer
	log := Setup(&buf)

	log.Debug("debug message")

	if buf.Len() != 0 {
		t.Errorf("debug log should be suppressed, got %s", buf.String())
	}
}

func TestSetupDefault_SetsGlobalLogger(t *testing.T) {
	var buf bytes.Buffer
	SetupDefault(&buf)

	slog.Info("global log")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("global log output should be JSON: %v", err)
	}
	if entry["msg"] != "global log" {
		t.Errorf("msg = %v, want global log", entry["msg"])
	}
}
