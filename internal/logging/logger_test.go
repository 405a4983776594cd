package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

// newTestLogger returns a logger writing to buf with a fixed clock.
func newTestLogger(buf *bytes.Buffer, level Level, format Format) *logger {
	l := NewWriter(buf, level, format).(*logger)
	l.now = func() time.Time {
		return time.Date(2026, 10, 19, 10, 30, 0, 0, time.UTC)
	}
	return l
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"error", LevelError},
		{"DEBUG", LevelDebug},
		{"unknown", LevelInfo}, // default
		{"", LevelInfo},        // default
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := ParseLevel(tt.input)
			if result != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{LevelDebug, "debug"},
		{LevelInfo, "info"},
		{LevelWarn, "warn"},
		{LevelError, "error"},
		{Level(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			result := tt.level.String()
			if result != tt.expected {
				t.Errorf("Level.String() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
	}{
		{"json", FormatJSON},
		{"JSON", FormatJSON},
		{"text", FormatText},
		{"unknown", FormatText}, // default
		{"", FormatText},        // default
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := ParseFormat(tt.input)
			if result != tt.expected {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, LevelDebug, FormatJSON)

	l.Info("tree decoded", "nodes", 5, "encoding", "1,null,null")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Failed to parse JSON output: %v", err)
	}

	if entry["ts"] != "2026-10-19T10:30:00Z" {
		t.Errorf("Expected fixed timestamp, got %v", entry["ts"])
	}
	if entry["level"] != "info" {
		t.Errorf("Expected level=info, got %v", entry["level"])
	}
	if entry["msg"] != "tree decoded" {
		t.Errorf("Expected msg='tree decoded', got %v", entry["msg"])
	}
	if entry["nodes"] != float64(5) { // JSON numbers are float64
		t.Errorf("Expected nodes=5, got %v", entry["nodes"])
	}
	if entry["encoding"] != "1,null,null" {
		t.Errorf("Expected encoding field, got %v", entry["encoding"])
	}
}

func TestLoggerText(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, LevelDebug, FormatText)

	l.Warn("slow query", "query", "maxsum", "duration_us", 120)

	expected := "2026-10-19T10:30:00Z [warn] slow query duration_us=120 query=maxsum\n"
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
}

func TestLoggerErrorValues(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, LevelDebug, FormatJSON)

	l.Error("decode failed", "error", errors.New("bad token"))

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Failed to parse JSON output: %v", err)
	}
	if entry["error"] != "bad token" {
		t.Errorf("Expected error text, got %v", entry["error"])
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, LevelWarn, FormatText)

	l.Debug("debug message")
	l.Info("info message")
	l.Warn("warn message")
	l.Error("error message")

	output := buf.String()
	if strings.Contains(output, "debug message") {
		t.Error("Debug message should be filtered")
	}
	if strings.Contains(output, "info message") {
		t.Error("Info message should be filtered")
	}
	if !strings.Contains(output, "warn message") {
		t.Error("Warn message should be present")
	}
	if !strings.Contains(output, "error message") {
		t.Error("Error message should be present")
	}
}

func TestLoggerWithFields(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, LevelDebug, FormatJSON)

	cmdLogger := l.WithFields("command", "depth", "verbose", true)
	cmdLogger.Info("query complete")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Failed to parse JSON output: %v", err)
	}

	if entry["command"] != "depth" {
		t.Errorf("Expected command=depth, got %v", entry["command"])
	}
	if entry["verbose"] != true {
		t.Errorf("Expected verbose=true, got %v", entry["verbose"])
	}
}

func TestLoggerCloneIsolation(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, LevelDebug, FormatJSON)

	child := l.WithFields("child_field", "value")

	buf.Reset()
	l.Info("parent message")

	var parentEntry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &parentEntry); err != nil {
		t.Fatalf("Failed to parse JSON output: %v", err)
	}
	if _, ok := parentEntry["child_field"]; ok {
		t.Error("Parent logger should not have child's fields")
	}

	buf.Reset()
	child.Info("child message")

	var childEntry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &childEntry); err != nil {
		t.Fatalf("Failed to parse JSON output: %v", err)
	}
	if childEntry["child_field"] != "value" {
		t.Errorf("Child logger should have its fields, got %v", childEntry["child_field"])
	}
}

func TestLoggerOddKeyValues(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, LevelDebug, FormatText)

	l.Info("message", "key", "value", 42, "ignored", "dangling")

	output := buf.String()
	if !strings.Contains(output, "key=value") {
		t.Errorf("Expected key=value, got: %s", output)
	}
	if strings.Contains(output, "ignored") || strings.Contains(output, "dangling") {
		t.Errorf("Expected non-string key and dangling key to be dropped, got: %s", output)
	}
}

func TestLoggerConcurrentChildren(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, LevelDebug, FormatText)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			l.WithFields("worker", i).Info("done")
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 8 {
		t.Errorf("expected 8 lines, got %d", len(lines))
	}
}

func TestNewLoggerFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bintree.log")

	l := New(Config{Level: "debug", Format: "text", Output: path})
	l.Debug("written to file")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "written to file") {
		t.Errorf("expected message in log file, got %q", data)
	}
}

func TestLoggerCloseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bintree.log")

	l := New(Config{Level: "info", Output: path})
	child := l.WithFields("command", "depth")
	child.Info("before close")

	if err := child.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := child.Close(); err != nil {
		t.Errorf("second Close should be a no-op, got %v", err)
	}
	child.Info("after close")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "before close") {
		t.Errorf("expected message in log file, got %q", data)
	}
	if strings.Contains(string(data), "after close") {
		t.Errorf("expected no writes after Close, got %q", data)
	}
}

func TestLoggerCloseWriter(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriter(&buf, LevelInfo, FormatText)

	if err := l.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	l.Info("still writing")
	if !strings.Contains(buf.String(), "still writing") {
		t.Errorf("expected Close to leave the writer open, got %q", buf.String())
	}
}

func TestLoggerAllLevels(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, LevelDebug, FormatJSON)

	tests := []struct {
		logFunc func(string, ...interface{})
		level   string
	}{
		{l.Debug, "debug"},
		{l.Info, "info"},
		{l.Warn, "warn"},
		{l.Error, "error"},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			buf.Reset()
			tt.logFunc("test message")

			var entry map[string]interface{}
			if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
				t.Fatalf("Failed to parse JSON output: %v", err)
			}

			if entry["level"] != tt.level {
				t.Errorf("Expected level=%s, got %v", tt.level, entry["level"])
			}
		})
	}
}
