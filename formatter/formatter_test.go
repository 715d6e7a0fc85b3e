package formatter

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/logportdev/logport/core"
)

func testEntry() *core.Entry {
	return &core.Entry{
		Time:    time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC),
		Level:   core.InfoLevel,
		Name:    "http.server",
		Message: "request served",
		Fields: []core.Field{
			{Key: "status", Type: core.IntType, Int64: 200},
			{Key: "path", Type: core.StringType, Str: "/healthz"},
		},
	}
}

func TestTextFormatter(t *testing.T) {
	f := NewTextFormatter()
	out, err := f.Format(testEntry())
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	line := string(out)
	if !strings.Contains(line, "2024-03-15T10:30:00Z") {
		t.Errorf("Expected timestamp in output, got: %s", line)
	}
	if !strings.Contains(line, "[INFO]") {
		t.Errorf("Expected level bracket in output, got: %s", line)
	}
	if !strings.Contains(line, "http.server: request served") {
		t.Errorf("Expected name and message in output, got: %s", line)
	}
	if !strings.Contains(line, "status=200") {
		t.Errorf("Expected status field in output, got: %s", line)
	}
	if !strings.Contains(line, "path=/healthz") {
		t.Errorf("Expected path field in output, got: %s", line)
	}
	if !strings.HasSuffix(line, "\n") {
		t.Errorf("Expected trailing newline, got: %q", line)
	}
}

func TestTextFormatterNoName(t *testing.T) {
	f := &TextFormatter{DisableTimestamp: true}
	e := testEntry()
	e.Name = ""
	e.Fields = nil

	out, err := f.Format(e)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if got := string(out); got != "[INFO] request served\n" {
		t.Errorf("Expected bare message line, got: %q", got)
	}
}

func TestTextFormatterUnknownLevel(t *testing.T) {
	f := &TextFormatter{DisableTimestamp: true}
	e := testEntry()
	e.Level = core.Level(42)

	out, err := f.Format(e)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if !strings.Contains(string(out), "[UNKNOWN]") {
		t.Errorf("Expected [UNKNOWN] bracket, got: %s", out)
	}
}

func TestTextFormatterFormatTo(t *testing.T) {
	var buf bytes.Buffer
	f := NewTextFormatter()
	if err := f.FormatTo(&buf, testEntry()); err != nil {
		t.Fatalf("FormatTo failed: %v", err)
	}
	if !strings.Contains(buf.String(), "request served") {
		t.Errorf("Expected message in writer output, got: %s", buf.String())
	}
}

func TestJSONFormatter(t *testing.T) {
	f := NewJSONFormatter()
	out, err := f.Format(testEntry())
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("Output is not valid JSON: %v\n%s", err, out)
	}

	if decoded["level"] != "INFO" {
		t.Errorf("Expected level INFO, got: %v", decoded["level"])
	}
	if decoded["logger"] != "http.server" {
		t.Errorf("Expected logger http.server, got: %v", decoded["logger"])
	}
	if decoded["msg"] != "request served" {
		t.Errorf("Expected msg, got: %v", decoded["msg"])
	}
	if decoded["status"] != float64(200) {
		t.Errorf("Expected numeric status 200, got: %v", decoded["status"])
	}
	if decoded["path"] != "/healthz" {
		t.Errorf("Expected path /healthz, got: %v", decoded["path"])
	}
}

func TestJSONFormatterOmitsEmptyName(t *testing.T) {
	f := NewJSONFormatter()
	e := testEntry()
	e.Name = ""

	out, err := f.Format(e)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if strings.Contains(string(out), `"logger"`) {
		t.Errorf("Expected no logger key for unnamed entry, got: %s", out)
	}
}

func TestJSONFormatterEscaping(t *testing.T) {
	f := NewJSONFormatter()
	e := testEntry()
	e.Message = "quote \" backslash \\ newline \n tab \t bell \x07"
	e.Fields = nil

	out, err := f.Format(e)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("Escaped output is not valid JSON: %v\n%s", err, out)
	}
	if decoded["msg"] != e.Message {
		t.Errorf("Expected message to round-trip, got: %q", decoded["msg"])
	}
}

func TestJSONFormatterFieldTypes(t *testing.T) {
	f := NewJSONFormatter()
	e := testEntry()
	e.Fields = []core.Field{
		{Key: "ok", Type: core.BoolType, Int64: 1},
		{Key: "ratio", Type: core.Float64Type, Float64: 0.5},
		{Key: "wait", Type: core.DurationType, Int64: int64(2 * time.Second)},
	}

	out, err := f.Format(e)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("Output is not valid JSON: %v\n%s", err, out)
	}
	if decoded["ok"] != true {
		t.Errorf("Expected bool true, got: %v", decoded["ok"])
	}
	if decoded["ratio"] != 0.5 {
		t.Errorf("Expected 0.5, got: %v", decoded["ratio"])
	}
	if decoded["wait"] != "2s" {
		t.Errorf("Expected duration string 2s, got: %v", decoded["wait"])
	}
}

func TestBufferReuse(t *testing.T) {
	f := NewTextFormatter()
	buf, err := f.FormatBuffer(testEntry())
	if err != nil {
		t.Fatalf("FormatBuffer failed: %v", err)
	}
	first := buf.String()
	f.PutBuffer(buf)

	buf2, err := f.FormatBuffer(testEntry())
	if err != nil {
		t.Fatalf("FormatBuffer failed: %v", err)
	}
	defer f.PutBuffer(buf2)

	if buf2.String() != first {
		t.Errorf("Expected identical output after buffer reuse, got: %q vs %q", buf2.String(), first)
	}
}

func BenchmarkTextFormat(b *testing.B) {
	f := NewTextFormatter()
	e := testEntry()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf, _ := f.FormatBuffer(e)
		f.PutBuffer(buf)
	}
}

func BenchmarkJSONFormat(b *testing.B) {
	f := NewJSONFormatter()
	e := testEntry()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf, _ := f.FormatBuffer(e)
		f.PutBuffer(buf)
	}
}
