package logger

import (
	"fmt"
	"os"

	"github.com/logportdev/logport/core"
	"github.com/logportdev/logport/handler"
)

// osExit is swapped out in tests that exercise Fatal
var osExit = os.Exit

// Logger writes leveled, named, structured log entries to a handler.
//
// Loggers are immutable: With and AtLevel return modified copies, so a
// logger handed to another component cannot be reconfigured behind its
// back. The zero value discards everything; use NewBuilder or a Factory
// to obtain a working instance.
type Logger struct {
	handler   handler.Handler
	name      string
	override  core.Level     // NoLevel means "follow the threshold"
	threshold *core.LevelVar // shared with the issuing factory
	fields    []core.Field
}

// NewNop returns a logger that discards every entry.
func NewNop() *Logger {
	return &Logger{threshold: core.NewLevelVar(core.WarnLevel)}
}

// Name returns the category the logger was issued for.
func (l *Logger) Name() string {
	return l.name
}

// Enabled reports whether an entry at the given level would be written.
// The per-logger override wins when set; otherwise the live value of the
// shared threshold decides, so threshold changes affect loggers that were
// handed out earlier.
func (l *Logger) Enabled(level Level) bool {
	if l.handler == nil || level == core.NoLevel {
		return false
	}
	return level >= l.effectiveLevel()
}

func (l *Logger) effectiveLevel() core.Level {
	if l.override != core.NoLevel {
		return l.override
	}
	if l.threshold == nil {
		return core.WarnLevel
	}
	return l.threshold.Level()
}

// With returns a copy of the logger that attaches the given fields to
// every entry.
func (l *Logger) With(fields ...Field) *Logger {
	if len(fields) == 0 {
		return l
	}
	clone := *l
	merged := make([]core.Field, 0, len(l.fields)+len(fields))
	merged = append(merged, l.fields...)
	merged = append(merged, fields...)
	clone.fields = merged
	return &clone
}

// AtLevel returns a copy of the logger with its own minimum level,
// detached from the shared threshold. Passing NoLevel removes the
// override and reattaches the copy to the threshold.
func (l *Logger) AtLevel(level Level) *Logger {
	clone := *l
	clone.override = level
	return &clone
}

// Log writes an entry at an arbitrary level. Unlike Fatal it has no exit
// side effect regardless of the level passed.
func (l *Logger) Log(level Level, msg string, fields ...Field) {
	l.log(level, msg, fields)
}

// Trace logs a message at trace level
func (l *Logger) Trace(msg string, fields ...Field) {
	l.log(core.TraceLevel, msg, fields)
}

// Debug logs a message at debug level
func (l *Logger) Debug(msg string, fields ...Field) {
	l.log(core.DebugLevel, msg, fields)
}

// Info logs a message at info level
func (l *Logger) Info(msg string, fields ...Field) {
	l.log(core.InfoLevel, msg, fields)
}

// Warn logs a message at warn level
func (l *Logger) Warn(msg string, fields ...Field) {
	l.log(core.WarnLevel, msg, fields)
}

// Error logs a message at error level
func (l *Logger) Error(msg string, fields ...Field) {
	l.log(core.ErrorLevel, msg, fields)
}

// Fatal logs a message at fatal level and then terminates the process.
func (l *Logger) Fatal(msg string, fields ...Field) {
	l.log(core.FatalLevel, msg, fields)
	osExit(1)
}

// Tracef logs a formatted message at trace level
func (l *Logger) Tracef(format string, args ...interface{}) {
	if l.Enabled(core.TraceLevel) {
		l.log(core.TraceLevel, fmt.Sprintf(format, args...), nil)
	}
}

// Debugf logs a formatted message at debug level
func (l *Logger) Debugf(format string, args ...interface{}) {
	if l.Enabled(core.DebugLevel) {
		l.log(core.DebugLevel, fmt.Sprintf(format, args...), nil)
	}
}

// Infof logs a formatted message at info level
func (l *Logger) Infof(format string, args ...interface{}) {
	if l.Enabled(core.InfoLevel) {
		l.log(core.InfoLevel, fmt.Sprintf(format, args...), nil)
	}
}

// Warnf logs a formatted message at warn level
func (l *Logger) Warnf(format string, args ...interface{}) {
	if l.Enabled(core.WarnLevel) {
		l.log(core.WarnLevel, fmt.Sprintf(format, args...), nil)
	}
}

// Errorf logs a formatted message at error level
func (l *Logger) Errorf(format string, args ...interface{}) {
	if l.Enabled(core.ErrorLevel) {
		l.log(core.ErrorLevel, fmt.Sprintf(format, args...), nil)
	}
}

// Fatalf logs a formatted message at fatal level and then terminates the
// process.
func (l *Logger) Fatalf(format string, args ...interface{}) {
	if l.Enabled(core.FatalLevel) {
		l.log(core.FatalLevel, fmt.Sprintf(format, args...), nil)
	}
	osExit(1)
}

// Close releases the underlying handler. Loggers issued by a factory share
// its handler; close those through the factory instead.
func (l *Logger) Close() error {
	if l.handler == nil {
		return nil
	}
	return l.handler.Close()
}

func (l *Logger) log(level core.Level, msg string, fields []core.Field) {
	if !l.Enabled(level) {
		return
	}

	e := core.GetEntry()
	e.Level = level
	e.Name = l.name
	e.Message = msg
	e.Fields = append(e.Fields, l.fields...)
	e.Fields = append(e.Fields, fields...)

	_ = l.handler.Handle(e)
	core.PutEntry(e)
}
