package zaphandler

import (
	"io"
	"os"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/logportdev/logport/core"
)

// Rotation bounds the size and age of log files written by the handler.
// Zero values defer to the rotation library defaults (100 MiB per file,
// backups kept forever).
type Rotation struct {
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// Config controls zap handler construction.
type Config struct {
	// Writer receives encoded entries. Defaults to os.Stderr. Ignored
	// when FilePath or Core is set.
	Writer io.Writer
	// JSON selects the production JSON encoder instead of the console one.
	JSON bool
	// FilePath, when non-empty, routes output to a size-rotated file.
	FilePath string
	// Rotation tunes the rotated file. Only read when FilePath is set.
	Rotation Rotation
	// Core, when non-nil, replaces the built encoder and sink entirely.
	// Tests use this with zap's observer core.
	Core zapcore.Core
}

// Handler delivers entries to a zapcore.Core. Writing through the core
// rather than a zap.Logger keeps exit-on-fatal policy in the hands of the
// caller.
type Handler struct {
	core   zapcore.Core
	closer io.Closer
}

// New returns a zap-backed handler. Construction never fails; file open
// errors surface from Handle.
func New(cfg Config) *Handler {
	if cfg.Core != nil {
		return &Handler{core: cfg.Core}
	}

	var sink io.Writer
	var closer io.Closer
	switch {
	case cfg.FilePath != "":
		lj := &lumberjack.Logger{
			Filename:   cfg.FilePath,
			MaxSize:    cfg.Rotation.MaxSizeMB,
			MaxBackups: cfg.Rotation.MaxBackups,
			MaxAge:     cfg.Rotation.MaxAgeDays,
			Compress:   cfg.Rotation.Compress,
		}
		sink = lj
		closer = lj
	case cfg.Writer != nil:
		sink = cfg.Writer
	default:
		sink = os.Stderr
	}

	var enc zapcore.Encoder
	if cfg.JSON {
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		enc = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	}

	return &Handler{
		core:   zapcore.NewCore(enc, zapcore.AddSync(sink), zapcore.DebugLevel),
		closer: closer,
	}
}

// Handle encodes the entry through the core.
func (h *Handler) Handle(entry *core.Entry) error {
	ent := zapcore.Entry{
		Level:      toZapLevel(entry.Level),
		Time:       entry.Time,
		LoggerName: entry.Name,
		Message:    entry.Message,
	}
	if !h.core.Enabled(ent.Level) {
		return nil
	}
	return h.core.Write(ent, toZapFields(entry.Fields))
}

// Close syncs the core and closes the rotated file if one is open.
func (h *Handler) Close() error {
	err := h.core.Sync()
	if h.closer != nil {
		err = multierr.Append(err, h.closer.Close())
	}
	return err
}

// toZapLevel maps module levels onto zap's scale. Zap has no trace level,
// so trace entries are written as debug.
func toZapLevel(l core.Level) zapcore.Level {
	switch l {
	case core.TraceLevel, core.DebugLevel:
		return zapcore.DebugLevel
	case core.InfoLevel:
		return zapcore.InfoLevel
	case core.WarnLevel:
		return zapcore.WarnLevel
	case core.ErrorLevel:
		return zapcore.ErrorLevel
	case core.FatalLevel:
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

func toZapFields(fields []core.Field) []zapcore.Field {
	if len(fields) == 0 {
		return nil
	}
	out := make([]zapcore.Field, 0, len(fields))
	for _, f := range fields {
		out = append(out, toZapField(f))
	}
	return out
}

func toZapField(f core.Field) zapcore.Field {
	switch f.Type {
	case core.StringType:
		return zap.String(f.Key, f.Str)
	case core.IntType:
		return zap.Int(f.Key, int(f.Int64))
	case core.Int64Type:
		return zap.Int64(f.Key, f.Int64)
	case core.Float64Type:
		return zap.Float64(f.Key, f.Float64)
	case core.BoolType:
		return zap.Bool(f.Key, f.Int64 == 1)
	case core.TimeType:
		if t, ok := f.Any.(time.Time); ok {
			return zap.Time(f.Key, t)
		}
		return zap.Any(f.Key, f.Any)
	case core.DurationType:
		return zap.Duration(f.Key, time.Duration(f.Int64))
	case core.ErrorType:
		if err, ok := f.Any.(error); ok {
			return zap.NamedError(f.Key, err)
		}
		return zap.Any(f.Key, f.Any)
	default:
		return zap.Any(f.Key, f.Any)
	}
}
