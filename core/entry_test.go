package core

import (
	"testing"
	"time"
)

func TestGetEntry(t *testing.T) {
	before := time.Now()
	e := GetEntry()
	after := time.Now()

	if e.Time.Before(before) || e.Time.After(after) {
		t.Errorf("Expected entry time between %v and %v, got: %v", before, after, e.Time)
	}
	if len(e.Fields) != 0 {
		t.Errorf("Expected empty fields, got: %d", len(e.Fields))
	}
	PutEntry(e)
}

func TestPutEntryResets(t *testing.T) {
	e := GetEntry()
	e.Level = ErrorLevel
	e.Name = "db.pool"
	e.Message = "connection lost"
	e.Fields = append(e.Fields, Field{Key: "attempt", Type: IntType, Int64: 3})
	PutEntry(e)

	reused := GetEntry()
	defer PutEntry(reused)

	if reused.Name != "" {
		t.Errorf("Expected empty name after reuse, got: %q", reused.Name)
	}
	if reused.Message != "" {
		t.Errorf("Expected empty message after reuse, got: %q", reused.Message)
	}
	if len(reused.Fields) != 0 {
		t.Errorf("Expected empty fields after reuse, got: %d", len(reused.Fields))
	}
}

func TestPutEntryNil(t *testing.T) {
	// Must not panic.
	PutEntry(nil)
}

func BenchmarkEntryPool(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		e := GetEntry()
		e.Level = InfoLevel
		e.Message = "benchmark"
		PutEntry(e)
	}
}
