package handler

import (
	"github.com/logportdev/logport/core"
	"go.uber.org/multierr"
)

// MultiHandler fans every entry out to a fixed set of handlers in order.
// A failing handler does not short-circuit the rest; errors are combined.
type MultiHandler struct {
	handlers []Handler
}

// NewMulti returns a handler that duplicates entries to all of hs.
// Nil entries in hs are skipped.
func NewMulti(hs ...Handler) *MultiHandler {
	filtered := make([]Handler, 0, len(hs))
	for _, h := range hs {
		if h != nil {
			filtered = append(filtered, h)
		}
	}
	return &MultiHandler{handlers: filtered}
}

// Handle passes the entry to every wrapped handler.
func (m *MultiHandler) Handle(entry *core.Entry) error {
	var err error
	for _, h := range m.handlers {
		err = multierr.Append(err, h.Handle(entry))
	}
	return err
}

// Close closes every wrapped handler.
func (m *MultiHandler) Close() error {
	var err error
	for _, h := range m.handlers {
		err = multierr.Append(err, h.Close())
	}
	return err
}

// Len reports the number of wrapped handlers.
func (m *MultiHandler) Len() int {
	return len(m.handlers)
}
