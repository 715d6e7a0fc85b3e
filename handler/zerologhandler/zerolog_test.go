package zerologhandler

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/logportdev/logport/core"
)

func newEntry(level core.Level, msg string) *core.Entry {
	return &core.Entry{
		Time:    time.Now(),
		Level:   level,
		Name:    "fetcher",
		Message: msg,
	}
}

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()

	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("zerolog output is not valid JSON: %v\n%s", err, buf.String())
	}
	return decoded
}

func TestHandle(t *testing.T) {
	var buf bytes.Buffer
	h := New(Config{Writer: &buf})

	e := newEntry(core.InfoLevel, "page fetched")
	e.Fields = []core.Field{
		{Key: "bytes", Type: core.Int64Type, Int64: 2048},
		{Key: "cached", Type: core.BoolType, Int64: 0},
	}
	if err := h.Handle(e); err != nil {
		t.Fatalf("Handle failed: %v", err)
	}

	decoded := decodeLine(t, &buf)
	if decoded["level"] != "info" {
		t.Errorf("Expected info level, got: %v", decoded["level"])
	}
	if decoded["message"] != "page fetched" {
		t.Errorf("Expected message, got: %v", decoded["message"])
	}
	if decoded["logger"] != "fetcher" {
		t.Errorf("Expected logger field, got: %v", decoded["logger"])
	}
	if decoded["bytes"] != float64(2048) {
		t.Errorf("Expected bytes field, got: %v", decoded["bytes"])
	}
	if decoded["cached"] != false {
		t.Errorf("Expected cached field, got: %v", decoded["cached"])
	}
}

func TestFatalDoesNotExit(t *testing.T) {
	var buf bytes.Buffer
	h := New(Config{Writer: &buf})

	// WithLevel records the fatal entry and returns; reaching the
	// assertions below is the point of the test.
	if err := h.Handle(newEntry(core.FatalLevel, "recorded only")); err != nil {
		t.Fatalf("Handle failed: %v", err)
	}

	decoded := decodeLine(t, &buf)
	if decoded["level"] != "fatal" {
		t.Errorf("Expected fatal level, got: %v", decoded["level"])
	}
}

func TestErrorField(t *testing.T) {
	var buf bytes.Buffer
	h := New(Config{Writer: &buf})

	e := newEntry(core.ErrorLevel, "fetch failed")
	e.Fields = []core.Field{
		{Key: "cause", Type: core.ErrorType, Any: errors.New("connection refused")},
	}
	if err := h.Handle(e); err != nil {
		t.Fatalf("Handle failed: %v", err)
	}

	decoded := decodeLine(t, &buf)
	if decoded["cause"] != "connection refused" {
		t.Errorf("Expected cause field, got: %v", decoded["cause"])
	}
}

func TestExistingLoggerReused(t *testing.T) {
	var buf bytes.Buffer
	lg := zerolog.New(&buf).Level(zerolog.ErrorLevel)
	h := New(Config{Logger: &lg})

	if err := h.Handle(newEntry(core.InfoLevel, "suppressed")); err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Expected entry suppressed by logger level, got: %s", buf.String())
	}

	if err := h.Handle(newEntry(core.ErrorLevel, "passed")); err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("Expected error entry written")
	}
}

func BenchmarkHandle(b *testing.B) {
	lg := zerolog.Nop()
	h := New(Config{Logger: &lg})
	e := newEntry(core.InfoLevel, "benchmark")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = h.Handle(e)
	}
}
