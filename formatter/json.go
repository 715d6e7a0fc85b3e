package formatter

import (
	"bytes"
	"io"
	"strconv"
	"time"

	"github.com/logportdev/logport/core"
)

const hexChars = "0123456789abcdef"

// JSONFormatter renders entries as single-line JSON objects with fixed
// keys ts, level, logger (when the entry carries a name) and msg, followed
// by the entry fields. Escaping is done by hand to avoid reflection and
// map allocation on the hot path.
type JSONFormatter struct {
	// TimestampFormat overrides the time layout. Defaults to time.RFC3339.
	TimestampFormat string
}

// NewJSONFormatter returns a JSONFormatter with default settings.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{TimestampFormat: time.RFC3339}
}

// Format renders the entry to a fresh byte slice.
func (f *JSONFormatter) Format(entry *core.Entry) ([]byte, error) {
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
func (f *JSONFormatter) FormatTo(w io.Writer, entry *core.Entry) error {
	buf, err := f.FormatBuffer(entry)
	if err != nil {
		return err
	}
	_, err = w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// FormatBuffer renders the entry into a pooled buffer.
func (f *JSONFormatter) FormatBuffer(entry *core.Entry) (*bytes.Buffer, error) {
	buf := getBuffer()

	layout := f.TimestampFormat
	if layout == "" {
		layout = time.RFC3339
	}

	buf.WriteString(`{"ts":`)
	appendJSONString(buf, entry.Time.Format(layout))
	buf.WriteString(`,"level":`)
	appendJSONString(buf, entry.Level.String())
	if entry.Name != "" {
		buf.WriteString(`,"logger":`)
		appendJSONString(buf, entry.Name)
	}
	buf.WriteString(`,"msg":`)
	appendJSONString(buf, entry.Message)

	for i := range entry.Fields {
		buf.WriteByte(',')
		appendJSONString(buf, entry.Fields[i].Key)
		buf.WriteByte(':')
		appendJSONValue(buf, &entry.Fields[i])
	}

	buf.WriteString("}\n")
	return buf, nil
}

// PutBuffer returns a buffer obtained from FormatBuffer to the pool.
func (f *JSONFormatter) PutBuffer(buf *bytes.Buffer) {
	putBuffer(buf)
}

func appendJSONValue(buf *bytes.Buffer, field *core.Field) {
	switch field.Type {
	case core.IntType, core.Int64Type:
		b := buf.AvailableBuffer()
		buf.Write(strconv.AppendInt(b, field.Int64, 10))
	case core.Float64Type:
		b := buf.AvailableBuffer()
		buf.Write(strconv.AppendFloat(b, field.Float64, 'g', -1, 64))
	case core.BoolType:
		if field.Int64 == 1 {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	default:
		appendJSONString(buf, field.StringValue())
	}
}

// appendJSONString writes s as a quoted JSON string with minimal escaping.
func appendJSONString(buf *bytes.Buffer, s string) {
	buf.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"':
			buf.WriteString(`\"`)
		case c == '\\':
			buf.WriteString(`\\`)
		case c == '\n':
			buf.WriteString(`\n`)
		case c == '\r':
			buf.WriteString(`\r`)
		case c == '\t':
			buf.WriteString(`\t`)
		case c < 0x20:
			buf.WriteString(`\u00`)
			buf.WriteByte(hexChars[c>>4])
			buf.WriteByte(hexChars[c&0xf])
		default:
			buf.WriteByte(c)
		}
	}
	buf.WriteByte('"')
}
