package logger

import (
	"errors"
	"fmt"
	"strings"

	"github.com/logportdev/logport/core"
)

// Level is re-exported from core so callers of this package rarely need to
// import core directly.
type Level = core.Level

const (
	// NoLevel means "no level set"
	NoLevel = core.NoLevel
	// TraceLevel for very fine-grained diagnostic information
	TraceLevel = core.TraceLevel
	// DebugLevel for detailed debugging information
	DebugLevel = core.DebugLevel
	// InfoLevel for general informational messages
	InfoLevel = core.InfoLevel
	// WarnLevel for warning messages
	WarnLevel = core.WarnLevel
	// ErrorLevel for error messages
	ErrorLevel = core.ErrorLevel
	// FatalLevel for unrecoverable errors
	FatalLevel = core.FatalLevel
)

// ErrUnknownLevel is returned by ParseLevel for unrecognized names.
var ErrUnknownLevel = errors.New("unknown level")

// ParseLevel converts a level name to a Level. Matching is case-insensitive
// and accepts VERBOSE and WARNING as aliases for TRACE and WARN.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRACE", "VERBOSE":
		return TraceLevel, nil
	case "DEBUG":
		return DebugLevel, nil
	case "INFO":
		return InfoLevel, nil
	case "WARN", "WARNING":
		return WarnLevel, nil
	case "ERROR":
		return ErrorLevel, nil
	case "FATAL":
		return FatalLevel, nil
	default:
		return NoLevel, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
	}
}
