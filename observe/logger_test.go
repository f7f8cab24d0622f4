package observe

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func decodeLogLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to parse log output as JSON: %v\nOutput: %s", err, buf.String())
	}
	return entry
}

// TestLogger_IncludesCheckFields verifies check fields are present in log output.
func TestLogger_IncludesCheckFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter("info", &buf).WithCheck(CheckMeta{ID: "database", Verdict: "ready"})

	logger.Info(context.Background(), "test message")

	entry := decodeLogLine(t, &buf)
	if v := entry["check.id"]; v != "database" {
		t.Errorf("check.id = %v, want 'database'", v)
	}
	if v := entry["check.verdict"]; v != "ready" {
		t.Errorf("check.verdict = %v, want 'ready'", v)
	}
	if v := entry["message"]; v != "test message" {
		t.Errorf("message = %v, want 'test message'", v)
	}
	if v := entry["level"]; v != "info" {
		t.Errorf("level = %v, want 'info'", v)
	}
	if _, ok := entry["time"]; !ok {
		t.Error("expected time field")
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter("warn", &buf)

	logger.Debug(context.Background(), "debug")
	logger.Info(context.Background(), "info")
	if buf.Len() != 0 {
		t.Fatalf("expected debug and info to be filtered, got: %s", buf.String())
	}

	logger.Warn(context.Background(), "warn")
	logger.Error(context.Background(), "error")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %s", len(lines), buf.String())
	}
}

func TestLogger_RedactsSensitiveFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter("info", &buf)

	logger.Info(context.Background(), "connecting",
		Field{Key: "password", Value: "hunter2"},
		Field{Key: "dsn", Value: "postgres://u:p@db"},
		Field{Key: "host", Value: "db"},
	)

	entry := decodeLogLine(t, &buf)
	if entry["password"] != "[REDACTED]" {
		t.Errorf("password = %v, want [REDACTED]", entry["password"])
	}
	if entry["dsn"] != "[REDACTED]" {
		t.Errorf("dsn = %v, want [REDACTED]", entry["dsn"])
	}
	if entry["host"] != "db" {
		t.Errorf("host = %v, want 'db'", entry["host"])
	}
}

func TestLogger_ErrorFieldsAreStrings(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter("info", &buf)

	logger.Error(context.Background(), "failed", Field{Key: "cause", Value: errors.New("oh dear")})

	entry := decodeLogLine(t, &buf)
	if entry["cause"] != "oh dear" {
		t.Errorf("cause = %v, want 'oh dear'", entry["cause"])
	}
}

func TestLogger_TraceCorrelation(t *testing.T) {
	tp := sdktrace.NewTracerProvider()
	ctx, span := tp.Tracer("test").Start(context.Background(), "probe")
	defer span.End()

	var buf bytes.Buffer
	NewLoggerWithWriter("info", &buf).Info(ctx, "inside span")

	entry := decodeLogLine(t, &buf)
	if entry["trace_id"] != span.SpanContext().TraceID().String() {
		t.Errorf("trace_id = %v, want %s", entry["trace_id"], span.SpanContext().TraceID())
	}
	if entry["span_id"] != span.SpanContext().SpanID().String() {
		t.Errorf("span_id = %v, want %s", entry["span_id"], span.SpanContext().SpanID())
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"error", LevelError},
		{"", LevelInfo},
		{"loud", LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLogLevel(tt.in); got != tt.want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNopLogger(t *testing.T) {
	logger := NopLogger()
	logger.Info(context.Background(), "ignored")
	if logger.WithCheck(CheckMeta{ID: "x"}) == nil {
		t.Error("WithCheck() returned nil")
	}
}
