// Package core holds the primitive types shared by loggers, handlers and
// formatters: severity levels, typed fields and pooled log entries.
//
// The package has no dependencies on the rest of the module so that
// handler implementations can be built against it in isolation.
package core
