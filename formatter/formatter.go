package formatter

import (
	"bytes"
	"io"
	"sync"

	"github.com/logportdev/logport/core"
)

// Formatter converts a log entry to bytes
type Formatter interface {
	Format(entry *core.Entry) ([]byte, error)
}

// WriterFormatter formats an entry directly into a writer, skipping the
// intermediate byte slice.
type WriterFormatter interface {
	Formatter
	FormatTo(w io.Writer, entry *core.Entry) error
}

// BufferFormatter formats an entry into a pooled buffer. The caller must
// hand the buffer back via PutBuffer once written out.
type BufferFormatter interface {
	Formatter
	FormatBuffer(entry *core.Entry) (*bytes.Buffer, error)
	PutBuffer(buf *bytes.Buffer)
}

// bufferPool recycles formatting buffers across entries
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 1024))
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

func putBuffer(buf *bytes.Buffer) {
	// Oversized buffers are dropped to keep the pool footprint bounded
	if buf.Cap() > 64*1024 {
		return
	}
	buf.Reset()
	bufferPool.Put(buf)
}
