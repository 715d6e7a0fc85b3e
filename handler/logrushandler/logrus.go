package logrushandler

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/logportdev/logport/core"
)

// Config controls logrus handler construction.
type Config struct {
	// Logger is a pre-built logrus logger to deliver into. When nil, one
	// is created from the remaining fields.
	Logger *logrus.Logger
	// Writer receives output of the created logger. Defaults to os.Stderr.
	Writer io.Writer
	// JSON switches the created logger to logrus.JSONFormatter.
	JSON bool
}

// Handler delivers entries to a sirupsen/logrus logger. Entries go through
// logrus's Log method, which records fatal entries without terminating the
// process.
type Handler struct {
	log *logrus.Logger
}

// New returns a logrus-backed handler.
func New(cfg Config) *Handler {
	log := cfg.Logger
	if log == nil {
		log = logrus.New()
		if cfg.Writer != nil {
			log.SetOutput(cfg.Writer)
		} else {
			log.SetOutput(os.Stderr)
		}
		if cfg.JSON {
			log.SetFormatter(&logrus.JSONFormatter{})
		}
		log.SetLevel(logrus.TraceLevel)
	}
	return &Handler{log: log}
}

// Handle logs the entry, preserving its original timestamp.
func (h *Handler) Handle(entry *core.Entry) error {
	le := logrus.NewEntry(h.log).WithTime(entry.Time)
	if entry.Name != "" {
		le = le.WithField("logger", entry.Name)
	}
	if len(entry.Fields) > 0 {
		fields := make(logrus.Fields, len(entry.Fields))
		for _, f := range entry.Fields {
			fields[f.Key] = f.Value()
		}
		le = le.WithFields(fields)
	}
	le.Log(toLogrusLevel(entry.Level), entry.Message)
	return nil
}

// Close is a no-op; logrus writers are owned by the caller.
func (h *Handler) Close() error {
	return nil
}

func toLogrusLevel(l core.Level) logrus.Level {
	switch l {
	case core.TraceLevel:
		return logrus.TraceLevel
	case core.DebugLevel:
		return logrus.DebugLevel
	case core.InfoLevel:
		return logrus.InfoLevel
	case core.WarnLevel:
		return logrus.WarnLevel
	case core.ErrorLevel:
		return logrus.ErrorLevel
	case core.FatalLevel:
		return logrus.FatalLevel
	default:
		return logrus.InfoLevel
	}
}
