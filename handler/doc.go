// Package handler defines the sink interface log entries are delivered to.
//
// Concrete handlers live in subpackages, one per backing library, so that
// importing the console handler does not pull zap, zerolog, logrus or
// hclog into the build. MultiHandler composes several sinks into one.
package handler
