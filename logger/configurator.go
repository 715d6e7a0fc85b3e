package logger

import "reflect"

// Configurator supplies loggers for an externally configured backend. An
// application that already owns a logging stack registers one on a factory,
// which then delegates every request to it.
//
// Returning nil means "no logger for this category"; the factory falls back
// to a native logger for that request instead of treating it as an error.
type Configurator interface {
	Logger(category string) *Logger
}

// TypeConfigurator is an optional extension of Configurator for backends
// that key their configuration on Go types rather than category strings.
// When a logger is requested for a type and the registered Configurator
// implements this interface, the type lookup is consulted first.
type TypeConfigurator interface {
	LoggerForType(t reflect.Type) *Logger
}

// ConfiguratorFunc adapts a plain function to the Configurator interface.
type ConfiguratorFunc func(category string) *Logger

// Logger calls f.
func (f ConfiguratorFunc) Logger(category string) *Logger {
	return f(category)
}
