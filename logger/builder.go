package logger

import (
	"github.com/logportdev/logport/core"
	"github.com/logportdev/logport/handler"
	"github.com/logportdev/logport/handler/consolehandler"
)

// Builder assembles a Logger step by step. Configurator implementations
// use it to hand purpose-built loggers back to a factory.
type Builder struct {
	handler   handler.Handler
	name      string
	level     core.Level
	threshold *core.LevelVar
	fields    []core.Field
}

// NewBuilder creates a builder with defaults: console handler on stderr,
// no name, no level override, a fresh threshold at warn.
func NewBuilder() *Builder {
	return &Builder{}
}

// WithHandler sets the handler entries are delivered to.
func (b *Builder) WithHandler(h handler.Handler) *Builder {
	b.handler = h
	return b
}

// WithName sets the logger's category name.
func (b *Builder) WithName(name string) *Builder {
	b.name = name
	return b
}

// WithLevel sets a fixed minimum level for the logger, detaching it from
// any shared threshold.
func (b *Builder) WithLevel(level Level) *Builder {
	b.level = level
	return b
}

// WithLevelVar attaches the logger to a shared mutable threshold.
func (b *Builder) WithLevelVar(v *core.LevelVar) *Builder {
	b.threshold = v
	return b
}

// WithFields attaches fields to every entry the logger writes.
func (b *Builder) WithFields(fields ...Field) *Builder {
	b.fields = append(b.fields, fields...)
	return b
}

// Build assembles the logger.
func (b *Builder) Build() *Logger {
	h := b.handler
	if h == nil {
		h = consolehandler.New(consolehandler.Config{})
	}
	threshold := b.threshold
	if threshold == nil {
		threshold = core.NewLevelVar(core.WarnLevel)
	}

	var fields []core.Field
	if len(b.fields) > 0 {
		fields = make([]core.Field, len(b.fields))
		copy(fields, b.fields)
	}

	return &Logger{
		handler:   h,
		name:      b.name,
		override:  b.level,
		threshold: threshold,
		fields:    fields,
	}
}
