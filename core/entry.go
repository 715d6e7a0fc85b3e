package core

import (
	"sync"
	"time"
)

// Entry represents a single log event flowing from a logger to a handler.
type Entry struct {
	Time    time.Time
	Level   Level
	Name    string // category label of the logger that produced the entry
	Message string
	Fields  []Field
}

// entryPool is a pool of Entry objects to reduce allocations
var entryPool = sync.Pool{
	New: func() interface{} {
		return &Entry{
			Fields: make([]Field, 0, 8), // Pre-allocate for 8 fields
		}
	},
}

// GetEntry retrieves a clean Entry from the pool.
func GetEntry() *Entry {
	e := entryPool.Get().(*Entry)
	e.Time = time.Now()
	e.Fields = e.Fields[:0]
	return e
}

// PutEntry returns an Entry to the pool once a handler has consumed it.
func PutEntry(e *Entry) {
	if e == nil {
		return
	}
	// Re-slice to zero length; GC handles reference cleanup
	e.Fields = e.Fields[:0]
	e.Name = ""
	e.Message = ""
	entryPool.Put(e)
}
