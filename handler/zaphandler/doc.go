// Package zaphandler is the platform-native logging sink, built on zap's
// encoder cores with optional size-based file rotation.
package zaphandler
