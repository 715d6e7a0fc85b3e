// Package sloghandler bridges entries into the standard library's log/slog.
package sloghandler
