// Package zerologhandler delivers entries to rs/zerolog loggers.
package zerologhandler
