// Package formatter renders log entries to bytes.
//
// TextFormatter produces a human-readable line for consoles, JSONFormatter
// a machine-readable object per entry. Both implement WriterFormatter and
// BufferFormatter so handlers can choose the cheapest path; buffers are
// pooled and must be returned with PutBuffer.
package formatter
