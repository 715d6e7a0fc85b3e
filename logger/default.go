package logger

import "sync"

var (
	defaultMu      sync.RWMutex
	defaultFactory = NewFactory(FactoryConfig{})
)

// Default returns the process-wide factory.
func Default() *Factory {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultFactory
}

// SetDefault replaces the process-wide factory. A nil factory is ignored.
// Swap it before the first GetLogger call anywhere in the process,
// otherwise two factories will have resolved independently.
func SetDefault(f *Factory) {
	if f == nil {
		return
	}
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultFactory = f
}

// GetLogger returns a fresh logger for the category from the default
// factory.
func GetLogger(category string, opts ...Option) *Logger {
	return Default().GetLogger(category, opts...)
}

// GetLoggerFor returns a fresh logger categorized by v's type from the
// default factory.
func GetLoggerFor(v interface{}, opts ...Option) *Logger {
	return Default().GetLoggerFor(v, opts...)
}

// RegisterConfigurator registers c on the default factory.
func RegisterConfigurator(c Configurator) error {
	return Default().RegisterConfigurator(c)
}

// Threshold returns the default factory's shared minimum level.
func Threshold() Level {
	return Default().Threshold()
}

// SetThreshold changes the default factory's shared minimum level.
func SetThreshold(level Level) {
	Default().SetThreshold(level)
}

// Trace logs a message at trace level on the root category
func Trace(msg string, fields ...Field) {
	Default().GetLogger("").Trace(msg, fields...)
}

// Debug logs a message at debug level on the root category
func Debug(msg string, fields ...Field) {
	Default().GetLogger("").Debug(msg, fields...)
}

// Info logs a message at info level on the root category
func Info(msg string, fields ...Field) {
	Default().GetLogger("").Info(msg, fields...)
}

// Warn logs a message at warn level on the root category
func Warn(msg string, fields ...Field) {
	Default().GetLogger("").Warn(msg, fields...)
}

// Error logs a message at error level on the root category
func Error(msg string, fields ...Field) {
	Default().GetLogger("").Error(msg, fields...)
}

// Fatal logs a message at fatal level on the root category and terminates
// the process.
func Fatal(msg string, fields ...Field) {
	Default().GetLogger("").Fatal(msg, fields...)
}

// Tracef logs a formatted message at trace level on the root category
func Tracef(format string, args ...interface{}) {
	Default().GetLogger("").Tracef(format, args...)
}

// Debugf logs a formatted message at debug level on the root category
func Debugf(format string, args ...interface{}) {
	Default().GetLogger("").Debugf(format, args...)
}

// Infof logs a formatted message at info level on the root category
func Infof(format string, args ...interface{}) {
	Default().GetLogger("").Infof(format, args...)
}

// Warnf logs a formatted message at warn level on the root category
func Warnf(format string, args ...interface{}) {
	Default().GetLogger("").Warnf(format, args...)
}

// Errorf logs a formatted message at error level on the root category
func Errorf(format string, args ...interface{}) {
	Default().GetLogger("").Errorf(format, args...)
}

// Fatalf logs a formatted message at fatal level on the root category and
// terminates the process.
func Fatalf(format string, args ...interface{}) {
	Default().GetLogger("").Fatalf(format, args...)
}
