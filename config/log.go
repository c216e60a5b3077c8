package config

import (
	"github.com/sirupsen/logrus"
)

// NamedLogger creates a named package logger on the process-wide logrus
// instance.
func NamedLogger(name string) *logrus.Entry {
	return logrus.StandardLogger().WithField("logger", name)
}

// InitLogger configures the process-wide logger from the configured level.
// Unknown levels fall back to info.
func InitLogger(level string) {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)
}
