package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestProductionLoggerWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("production", &buf).WithRunID("run-1")

	log.FileError("open", "contacts.vcf", errors.New("permission denied"))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected JSON log line, got %q: %v", buf.String(), err)
	}
	if entry["msg"] != "file_error" {
		t.Fatalf("expected msg file_error, got %v", entry["msg"])
	}
	if entry["run_id"] != "run-1" {
		t.Fatalf("expected run_id run-1, got %v", entry["run_id"])
	}
	if entry["path"] != "contacts.vcf" {
		t.Fatalf("expected path contacts.vcf, got %v", entry["path"])
	}
}

func TestDevelopmentLoggerEnablesDebug(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("Development", &buf)

	log.Debug("debug_line")

	if !strings.Contains(buf.String(), "debug_line") {
		t.Fatalf("expected debug output in development, got %q", buf.String())
	}
}

func TestProductionLoggerSuppressesDebug(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("production", &buf)

	log.Debug("debug_line")

	if buf.Len() != 0 {
		t.Fatalf("expected no debug output in production, got %q", buf.String())
	}
}

func TestConversionSummaryAttributes(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("production", &buf)

	log.ConversionSummary(slog.Int("contacts_read", 3), slog.Int("groups", 2))

	out := buf.String()
	if !strings.Contains(out, `"contacts_read":3`) || !strings.Contains(out, `"groups":2`) {
		t.Fatalf("expected summary attributes in output, got %q", out)
	}
}

func TestWithNewRunIDIsUnique(t *testing.T) {
	var a, b bytes.Buffer
	NewWithWriter("production", &a).WithNewRunID().Info("x")
	NewWithWriter("production", &b).WithNewRunID().Info("x")

	var ea, eb map[string]any
	_ = json.Unmarshal(a.Bytes(), &ea)
	_ = json.Unmarshal(b.Bytes(), &eb)
	if ea["run_id"] == "" || ea["run_id"] == eb["run_id"] {
		t.Fatalf("expected distinct run ids, got %v and %v", ea["run_id"], eb["run_id"])
	}
}
