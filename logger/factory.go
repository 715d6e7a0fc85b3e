package logger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"sync"
	"sync/atomic"

	"go.uber.org/multierr"

	"github.com/logportdev/logport/core"
	"github.com/logportdev/logport/handler"
	"github.com/logportdev/logport/handler/consolehandler"
	"github.com/logportdev/logport/handler/zaphandler"
)

// Backend identifies the backend family a factory resolved to.
type Backend int32

const (
	// BackendUnresolved is the state before the first logger request.
	BackendUnresolved Backend = iota
	// BackendConfigured delegates every request to a registered Configurator.
	BackendConfigured
	// BackendNative writes through the zap-based platform handler.
	BackendNative
	// BackendConsole writes plain text to standard error.
	BackendConsole
)

// String returns the lower-case backend name.
func (b Backend) String() string {
	switch b {
	case BackendUnresolved:
		return "unresolved"
	case BackendConfigured:
		return "configured"
	case BackendNative:
		return "native"
	case BackendConsole:
		return "console"
	default:
		return "unknown"
	}
}

var (
	// ErrNilConfigurator is returned when registering a nil Configurator.
	ErrNilConfigurator = errors.New("nil configurator")
	// ErrAlreadyResolved is returned when registering a Configurator after
	// the backend selection has been made.
	ErrAlreadyResolved = errors.New("backend already resolved")
)

// FactoryConfig controls factory construction. The zero value is valid.
type FactoryConfig struct {
	// Configurator, when non-nil, is registered up front, as if
	// RegisterConfigurator had been called before the first request.
	Configurator Configurator
	// Diagnostic receives the one-time backend selection line. Defaults
	// to os.Stderr; pass io.Discard to silence it.
	Diagnostic io.Writer
	// Environment replaces the process environment when non-nil.
	Environment map[string]string
	// Threshold is the initial shared minimum level. NoLevel means
	// WarnLevel. An explicit value takes precedence over LOGPORT_LEVEL.
	Threshold core.Level
}

// Factory hands out loggers bound to a lazily selected logging backend.
//
// The first logger request resolves the backend, exactly once per factory:
// a registered Configurator wins, otherwise the environment decides between
// the native and the console backend. The selection is never recomputed.
// GetLogger and GetLoggerFor are total: no combination of missing
// configurator, malformed environment or empty category makes them fail.
type Factory struct {
	mu           sync.Mutex // guards configurator before resolution, native after
	configurator Configurator
	native       handler.Handler

	resolveOnce sync.Once
	backend     atomic.Int32
	handler     handler.Handler

	threshold         *core.LevelVar
	explicitThreshold bool
	diagnostic        io.Writer
	environment       map[string]string
	envCfg            envConfig
}

// NewFactory creates an unresolved factory. Construction never fails;
// backend selection happens on the first logger request.
func NewFactory(cfg FactoryConfig) *Factory {
	f := &Factory{
		configurator: cfg.Configurator,
		diagnostic:   cfg.Diagnostic,
		environment:  cfg.Environment,
	}
	if f.diagnostic == nil {
		f.diagnostic = os.Stderr
	}
	threshold := cfg.Threshold
	if threshold == core.NoLevel {
		threshold = core.WarnLevel
	} else {
		f.explicitThreshold = true
	}
	f.threshold = core.NewLevelVar(threshold)
	return f
}

// RegisterConfigurator injects the configurator of an externally managed
// logging backend. Registration must happen before the first logger
// request: once the backend selection has been made it is never disturbed,
// and ErrAlreadyResolved is returned instead.
func (f *Factory) RegisterConfigurator(c Configurator) error {
	if c == nil {
		return ErrNilConfigurator
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Backend() != BackendUnresolved {
		return ErrAlreadyResolved
	}
	f.configurator = c
	return nil
}

// GetLogger returns a fresh logger for the given category. The first call
// on a factory resolves the backend; every later call reuses the selection.
// It never fails and never returns nil.
func (f *Factory) GetLogger(category string, opts ...Option) *Logger {
	return f.get(category, nil, opts)
}

// GetLoggerFor returns a fresh logger categorized by v's type. Pointers
// are unwrapped, so a *Service and a Service value share a category; a
// reflect.Type is used as-is; a nil v degrades to the empty category.
func (f *Factory) GetLoggerFor(v interface{}, opts ...Option) *Logger {
	t := typeOf(v)
	return f.get(typeName(t), t, opts)
}

func (f *Factory) get(category string, t reflect.Type, opts []Option) *Logger {
	f.resolve()

	var lg *Logger
	if f.Backend() == BackendConfigured {
		lg = f.fromConfigurator(category, t)
	}
	if lg == nil {
		lg = &Logger{
			handler:   f.backendHandler(),
			name:      category,
			threshold: f.threshold,
		}
	}
	return applyOptions(lg, opts)
}

// resolve performs the one-shot backend selection.
func (f *Factory) resolve() {
	f.resolveOnce.Do(func() {
		f.mu.Lock()
		defer f.mu.Unlock()

		cfg, _ := parseEnvConfig(f.environment)
		f.envCfg = cfg

		if !f.explicitThreshold {
			if lvl, err := ParseLevel(cfg.Level); err == nil {
				f.threshold.Set(lvl)
			}
		}

		b := BackendNative
		switch {
		case f.configurator != nil:
			b = BackendConfigured
		case cfg.Enabled == "false":
			b = BackendConsole
			f.handler = consolehandler.New(consolehandler.Config{})
		default:
			f.handler = newNativeHandler(cfg.LogFile)
		}

		f.backend.Store(int32(b))
		f.emitDiagnostic(b)
	})
}

// fromConfigurator asks the registered configurator for a logger, trying
// the type lookup before the category lookup. A nil result means the
// configurator has nothing for this request.
func (f *Factory) fromConfigurator(category string, t reflect.Type) *Logger {
	c := f.configurator
	if c == nil {
		return nil
	}
	if t != nil {
		if tc, ok := c.(TypeConfigurator); ok {
			if lg := tc.LoggerForType(t); lg != nil {
				return lg
			}
		}
	}
	return c.Logger(category)
}

// backendHandler returns the handler selected at resolution. Under the
// configured backend no handler was built, so configurator fallbacks get
// a lazily constructed native one.
func (f *Factory) backendHandler() handler.Handler {
	if f.handler != nil {
		return f.handler
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.native == nil {
		f.native = newNativeHandler(f.envCfg.LogFile)
	}
	return f.native
}

// emitDiagnostic writes the one-time selection line. Best effort: a nil
// writer or a write error never aborts resolution.
func (f *Factory) emitDiagnostic(b Backend) {
	if f.diagnostic == nil || f.threshold.Level() < core.InfoLevel {
		return
	}
	_, _ = fmt.Fprintf(f.diagnostic, "logport: selected %s backend\n", b)
}

// Backend reports the resolved backend, BackendUnresolved before the
// first logger request.
func (f *Factory) Backend() Backend {
	return Backend(f.backend.Load())
}

// Threshold returns the current shared minimum level.
func (f *Factory) Threshold() Level {
	return f.threshold.Level()
}

// SetThreshold changes the shared minimum level. Loggers already issued
// without a level override pick the change up immediately. NoLevel is
// ignored.
func (f *Factory) SetThreshold(level Level) {
	if level == core.NoLevel {
		return
	}
	f.threshold.Set(level)
}

// Close releases the handlers the factory built. Loggers obtained from a
// registered configurator are unaffected.
func (f *Factory) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	var err error
	if f.handler != nil {
		err = multierr.Append(err, f.handler.Close())
	}
	if f.native != nil {
		err = multierr.Append(err, f.native.Close())
	}
	return err
}

// newNativeHandler builds the platform handler: JSON to stderr, or a
// rotating file when a path is configured.
func newNativeHandler(filePath string) handler.Handler {
	return zaphandler.New(zaphandler.Config{JSON: true, FilePath: filePath})
}

// typeOf derives the lookup type for GetLoggerFor.
func typeOf(v interface{}) reflect.Type {
	if v == nil {
		return nil
	}
	if t, ok := v.(reflect.Type); ok {
		return t
	}
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}

func typeName(t reflect.Type) string {
	if t == nil {
		return ""
	}
	return t.String()
}

// Option customizes a logger at request time.
type Option func(*options)

type options struct {
	level  core.Level
	fields []core.Field
}

// WithLevel gives the requested logger its own minimum level instead of
// the shared factory threshold.
func WithLevel(level Level) Option {
	return func(o *options) { o.level = level }
}

// WithFields attaches fields to every entry of the requested logger.
func WithFields(fields ...Field) Option {
	return func(o *options) { o.fields = append(o.fields, fields...) }
}

func applyOptions(lg *Logger, opts []Option) *Logger {
	if len(opts) == 0 {
		return lg
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.level != core.NoLevel {
		lg = lg.AtLevel(o.level)
	}
	if len(o.fields) > 0 {
		lg = lg.With(o.fields...)
	}
	return lg
}
