package zerologhandler

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/logportdev/logport/core"
)

// Config controls zerolog handler construction.
type Config struct {
	// Logger is a pre-built zerolog logger to deliver into. When nil, one
	// is created writing to Writer.
	Logger *zerolog.Logger
	// Writer receives output of the created logger. Defaults to os.Stderr.
	Writer io.Writer
}

// Handler delivers entries to a zerolog logger. Events are raised through
// WithLevel, which records fatal entries without terminating the process.
type Handler struct {
	log zerolog.Logger
}

// New returns a zerolog-backed handler.
func New(cfg Config) *Handler {
	if cfg.Logger != nil {
		return &Handler{log: *cfg.Logger}
	}
	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}
	return &Handler{
		log: zerolog.New(w).With().Timestamp().Logger().Level(zerolog.TraceLevel),
	}
}

// Handle raises a zerolog event for the entry. zerolog stamps its own
// wall-clock time.
func (h *Handler) Handle(entry *core.Entry) error {
	ev := h.log.WithLevel(toZerologLevel(entry.Level))
	if entry.Name != "" {
		ev = ev.Str("logger", entry.Name)
	}
	for _, f := range entry.Fields {
		ev = appendField(ev, f)
	}
	ev.Msg(entry.Message)
	return nil
}

// Close is a no-op; zerolog writers are owned by the caller.
func (h *Handler) Close() error {
	return nil
}

func toZerologLevel(l core.Level) zerolog.Level {
	switch l {
	case core.TraceLevel:
		return zerolog.TraceLevel
	case core.DebugLevel:
		return zerolog.DebugLevel
	case core.InfoLevel:
		return zerolog.InfoLevel
	case core.WarnLevel:
		return zerolog.WarnLevel
	case core.ErrorLevel:
		return zerolog.ErrorLevel
	case core.FatalLevel:
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}

func appendField(ev *zerolog.Event, f core.Field) *zerolog.Event {
	switch f.Type {
	case core.StringType:
		return ev.Str(f.Key, f.Str)
	case core.IntType, core.Int64Type:
		return ev.Int64(f.Key, f.Int64)
	case core.Float64Type:
		return ev.Float64(f.Key, f.Float64)
	case core.BoolType:
		return ev.Bool(f.Key, f.Int64 == 1)
	case core.TimeType:
		if t, ok := f.Any.(time.Time); ok {
			return ev.Time(f.Key, t)
		}
		return ev.Interface(f.Key, f.Any)
	case core.DurationType:
		return ev.Dur(f.Key, time.Duration(f.Int64))
	case core.ErrorType:
		if err, ok := f.Any.(error); ok {
			return ev.AnErr(f.Key, err)
		}
		return ev.Interface(f.Key, f.Any)
	default:
		return ev.Interface(f.Key, f.Any)
	}
}
