package handler

import "github.com/logportdev/logport/core"

// Handler consumes log entries on behalf of a logging backend.
//
// Handle is called synchronously from the logging goroutine with an entry
// that is only valid for the duration of the call; implementations that
// retain entry data must copy it. Close releases any resources the handler
// holds and flushes buffered output.
type Handler interface {
	Handle(entry *core.Entry) error
	Close() error
}

// Nop is a Handler that discards every entry. It backs no-op loggers and
// serves as a baseline in benchmarks.
type Nop struct{}

// NewNop returns a discarding handler.
func NewNop() *Nop {
	return &Nop{}
}

// Handle discards the entry.
func (*Nop) Handle(*core.Entry) error {
	return nil
}

// Close is a no-op.
func (*Nop) Close() error {
	return nil
}

// Func adapts a plain function to the Handler interface. Close is a no-op.
type Func func(entry *core.Entry) error

// Handle calls f.
func (f Func) Handle(entry *core.Entry) error {
	return f(entry)
}

// Close is a no-op.
func (Func) Close() error {
	return nil
}
