package logger

import "context"

type contextKey struct{}

// WithContext returns a copy of ctx carrying lg.
func WithContext(ctx context.Context, lg *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, lg)
}

// FromContext returns the logger carried by ctx. When ctx carries none, a
// discarding logger is returned so call sites never check for nil.
func FromContext(ctx context.Context) *Logger {
	if lg, ok := ctx.Value(contextKey{}).(*Logger); ok && lg != nil {
		return lg
	}
	return NewNop()
}
