package logger

import (
	"errors"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"trace", TraceLevel},
		{"TRACE", TraceLevel},
		{"verbose", TraceLevel},
		{"VERBOSE", TraceLevel},
		{"debug", DebugLevel},
		{"Debug", DebugLevel},
		{"info", InfoLevel},
		{"warn", WarnLevel},
		{"WARNING", WarnLevel},
		{"error", ErrorLevel},
		{"fatal", FatalLevel},
		{"  info  ", InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if err != nil {
				t.Fatalf("ParseLevel(%q) failed: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("Expected %s, got: %s", tt.expected, got)
			}
		})
	}
}

func TestParseLevelUnknown(t *testing.T) {
	for _, input := range []string{"", "bogus", "warnish", "none"} {
		_, err := ParseLevel(input)
		if !errors.Is(err, ErrUnknownLevel) {
			t.Errorf("Expected ErrUnknownLevel for %q, got: %v", input, err)
		}
	}
}
