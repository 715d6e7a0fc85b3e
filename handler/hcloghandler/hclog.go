package hcloghandler

import (
	"io"
	"sync"

	"github.com/hashicorp/go-hclog"

	"github.com/logportdev/logport/core"
)

// Config controls hclog handler construction.
type Config struct {
	// Logger is a pre-built hclog logger to deliver into. When nil, one is
	// created from the remaining fields.
	Logger hclog.Logger
	// Name is the root module name of the created logger.
	Name string
	// Writer receives output of the created logger. Defaults to os.Stderr.
	Writer io.Writer
	// JSON switches the created logger to JSON output.
	JSON bool
}

// Handler delivers entries to a hashicorp/go-hclog logger. Entry names map
// onto hclog sub-logger modules via ResetNamed.
type Handler struct {
	log hclog.Logger

	mu    sync.RWMutex
	named map[string]hclog.Logger
}

// New returns an hclog-backed handler.
func New(cfg Config) *Handler {
	log := cfg.Logger
	if log == nil {
		log = hclog.New(&hclog.LoggerOptions{
			Name:       cfg.Name,
			Output:     cfg.Writer,
			JSONFormat: cfg.JSON,
			Level:      hclog.Trace,
		})
	}
	return &Handler{log: log, named: make(map[string]hclog.Logger)}
}

// Handle logs the entry through the module logger matching its name.
// hclog stamps its own wall-clock time.
func (h *Handler) Handle(entry *core.Entry) error {
	lg := h.forName(entry.Name)

	if len(entry.Fields) == 0 {
		lg.Log(toHclogLevel(entry.Level), entry.Message)
		return nil
	}

	args := make([]interface{}, 0, len(entry.Fields)*2)
	for _, f := range entry.Fields {
		args = append(args, f.Key, f.Value())
	}
	lg.Log(toHclogLevel(entry.Level), entry.Message, args...)
	return nil
}

// Close is a no-op; hclog writers are owned by the caller.
func (h *Handler) Close() error {
	return nil
}

func (h *Handler) forName(name string) hclog.Logger {
	if name == "" {
		return h.log
	}

	h.mu.RLock()
	lg, ok := h.named[name]
	h.mu.RUnlock()
	if ok {
		return lg
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if lg, ok = h.named[name]; ok {
		return lg
	}
	lg = h.log.ResetNamed(name)
	h.named[name] = lg
	return lg
}

// toHclogLevel maps module levels onto hclog's scale. hclog has no fatal,
// so fatal entries are written as errors.
func toHclogLevel(l core.Level) hclog.Level {
	switch l {
	case core.TraceLevel:
		return hclog.Trace
	case core.DebugLevel:
		return hclog.Debug
	case core.InfoLevel:
		return hclog.Info
	case core.WarnLevel:
		return hclog.Warn
	case core.ErrorLevel, core.FatalLevel:
		return hclog.Error
	default:
		return hclog.Info
	}
}
