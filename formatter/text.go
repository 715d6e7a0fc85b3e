package formatter

import (
	"bytes"
	"io"
	"time"

	"github.com/logportdev/logport/core"
)

// levelBrackets holds preformatted level markers indexed by core.Level so
// the hot path avoids string concatenation.
var levelBrackets = [...]string{
	core.NoLevel:    "[NONE]",
	core.TraceLevel: "[TRACE]",
	core.DebugLevel: "[DEBUG]",
	core.InfoLevel:  "[INFO]",
	core.WarnLevel:  "[WARN]",
	core.ErrorLevel: "[ERROR]",
	core.FatalLevel: "[FATAL]",
}

func levelBracket(l core.Level) string {
	if l >= 0 && int(l) < len(levelBrackets) {
		return levelBrackets[l]
	}
	return "[UNKNOWN]"
}

// TextFormatter renders entries as a single human-readable line:
//
//	2024-03-15T10:30:00Z [INFO] http.server: request served status=200
//
// The logger name and fields are omitted when absent.
type TextFormatter struct {
	// TimestampFormat overrides the time layout. Defaults to time.RFC3339.
	TimestampFormat string
	// DisableTimestamp drops the leading timestamp entirely.
	DisableTimestamp bool
}

// NewTextFormatter returns a TextFormatter with default settings.
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{TimestampFormat: time.RFC3339}
}

// Format renders the entry to a fresh byte slice.
func (f *TextFormatter) Format(entry *core.Entry) ([]byte, error) {
	buf, err := f.FormatBuffer(entry)
	if err != nil {
		return nil, err
	}
	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	putBuffer(buf)
	return out, nil
}

// FormatTo renders the entry directly into w.
func (f *TextFormatter) FormatTo(w io.Writer, entry *core.Entry) error {
	buf, err := f.FormatBuffer(entry)
	if err != nil {
		return err
	}
	_, err = w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// FormatBuffer renders the entry into a pooled buffer.
func (f *TextFormatter) FormatBuffer(entry *core.Entry) (*bytes.Buffer, error) {
	buf := getBuffer()

	if !f.DisableTimestamp {
		layout := f.TimestampFormat
		if layout == "" {
			layout = time.RFC3339
		}
		buf.WriteString(entry.Time.Format(layout))
		buf.WriteByte(' ')
	}

	buf.WriteString(levelBracket(entry.Level))
	buf.WriteByte(' ')

	if entry.Name != "" {
		buf.WriteString(entry.Name)
		buf.WriteString(": ")
	}

	buf.WriteString(entry.Message)

	for i := range entry.Fields {
		buf.WriteByte(' ')
		buf.WriteString(entry.Fields[i].Key)
		buf.WriteByte('=')
		buf.WriteString(entry.Fields[i].StringValue())
	}

	buf.WriteByte('\n')
	return buf, nil
}

// PutBuffer returns a buffer obtained from FormatBuffer to the pool.
func (f *TextFormatter) PutBuffer(buf *bytes.Buffer) {
	putBuffer(buf)
}
