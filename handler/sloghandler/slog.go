package sloghandler

import (
	"context"
	"log/slog"
	"time"

	"github.com/logportdev/logport/core"
)

// Trace and fatal have no slog equivalent; they sit one band outside the
// standard levels, mirroring how slog spaces its own constants.
const (
	slogLevelTrace = slog.LevelDebug - 4
	slogLevelFatal = slog.LevelError + 4
)

// Handler forwards entries to a standard library slog.Handler.
type Handler struct {
	slog slog.Handler
}

// New wraps h. A nil h falls back to the process-wide slog default.
func New(h slog.Handler) *Handler {
	if h == nil {
		h = slog.Default().Handler()
	}
	return &Handler{slog: h}
}

// Handle converts the entry to a slog.Record and hands it over.
func (h *Handler) Handle(entry *core.Entry) error {
	lvl := toSlogLevel(entry.Level)
	ctx := context.Background()
	if !h.slog.Enabled(ctx, lvl) {
		return nil
	}

	rec := slog.NewRecord(entry.Time, lvl, entry.Message, 0)
	if entry.Name != "" {
		rec.AddAttrs(slog.String("logger", entry.Name))
	}
	for _, f := range entry.Fields {
		rec.AddAttrs(toSlogAttr(f))
	}
	return h.slog.Handle(ctx, rec)
}

// Close is a no-op; slog handlers have no close semantics.
func (h *Handler) Close() error {
	return nil
}

func toSlogLevel(l core.Level) slog.Level {
	switch l {
	case core.TraceLevel:
		return slogLevelTrace
	case core.DebugLevel:
		return slog.LevelDebug
	case core.InfoLevel:
		return slog.LevelInfo
	case core.WarnLevel:
		return slog.LevelWarn
	case core.ErrorLevel:
		return slog.LevelError
	case core.FatalLevel:
		return slogLevelFatal
	default:
		return slog.LevelInfo
	}
}

func toSlogAttr(f core.Field) slog.Attr {
	switch f.Type {
	case core.StringType:
		return slog.String(f.Key, f.Str)
	case core.IntType, core.Int64Type:
		return slog.Int64(f.Key, f.Int64)
	case core.Float64Type:
		return slog.Float64(f.Key, f.Float64)
	case core.BoolType:
		return slog.Bool(f.Key, f.Int64 == 1)
	case core.TimeType:
		if t, ok := f.Any.(time.Time); ok {
			return slog.Time(f.Key, t)
		}
		return slog.Any(f.Key, f.Any)
	case core.DurationType:
		return slog.Duration(f.Key, time.Duration(f.Int64))
	default:
		return slog.Any(f.Key, f.Any)
	}
}
