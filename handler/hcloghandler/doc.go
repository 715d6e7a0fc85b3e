// Package hcloghandler delivers entries to hashicorp/go-hclog loggers.
package hcloghandler
