// Package log configures the shared logrus logger used across conduit's
// components, following the same library the teacher's HTTP middleware
// and servers log through.
package log

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Setup configures the standard logger's level and formatter. An
// unparseable level falls back to info.
func Setup(level string) *logrus.Logger {
	logger := logrus.StandardLogger()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logger.SetLevel(parsed)
	return logger
}

// WithComponent returns a logger entry tagged with the given component
// name, the convention every internal package's constructor follows.
func WithComponent(component string) *logrus.Entry {
	return logrus.StandardLogger().WithField("component", component)
}
