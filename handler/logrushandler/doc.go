// Package logrushandler delivers entries to sirupsen/logrus loggers.
package logrushandler
