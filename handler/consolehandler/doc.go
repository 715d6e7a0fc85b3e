// Package consolehandler writes formatted log entries to a terminal or any
// io.Writer. It is the fallback sink selected when logging is disabled by
// environment flag, and depends on nothing outside the standard library.
package consolehandler
