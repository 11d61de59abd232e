// Package log provides the small logging interface used throughout the
// emulator core. The default implementation is backed by logrus; its
// method set is kept narrow on purpose so that callers embedding the CPU
// in their own harness can satisfy it trivially.
package log

import "github.com/sirupsen/logrus"

// Logger is the logging surface the core depends on. logrus.Logger already
// satisfies it, so New simply hands back a configured *logrus.Logger.
type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

// New returns a Logger backed by logrus, logging at Info level to stderr.
func New() Logger {
	l := logrus.New()
	l.SetLevel(logrus.InfoLevel)
	return l
}
