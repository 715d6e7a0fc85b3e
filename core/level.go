package core

import "sync/atomic"

// Level represents the severity of a log entry. Levels are ordered:
// a larger value is more severe.
type Level int8

const (
	// NoLevel means "no level set". It is the zero value so that an
	// unset level in a config struct can be told apart from an explicit
	// TraceLevel; it is never attached to an emitted entry.
	NoLevel Level = iota
	// TraceLevel for very fine-grained diagnostic information
	TraceLevel
	// DebugLevel for detailed debugging information
	DebugLevel
	// InfoLevel for general informational messages
	InfoLevel
	// WarnLevel for warning messages (the default factory threshold)
	WarnLevel
	// ErrorLevel for error messages
	ErrorLevel
	// FatalLevel for unrecoverable errors (causes os.Exit(1))
	FatalLevel
)

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case NoLevel:
		return "NONE"
	case TraceLevel:
		return "TRACE"
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case FatalLevel:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// LevelVar is a Level whose value can be read and changed concurrently.
// The factory threshold is a LevelVar shared by every logger without a
// per-logger override, so threshold changes take effect on loggers that
// were already handed out.
type LevelVar struct {
	val atomic.Int32
}

// NewLevelVar returns a LevelVar initialized to l.
func NewLevelVar(l Level) *LevelVar {
	v := &LevelVar{}
	v.Set(l)
	return v
}

// Level returns the current value.
func (v *LevelVar) Level() Level {
	return Level(v.val.Load())
}

// Set updates the value.
func (v *LevelVar) Set(l Level) {
	v.val.Store(int32(l))
}

// String returns the string representation of the current value.
func (v *LevelVar) String() string {
	return v.Level().String()
}
