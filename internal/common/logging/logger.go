// Package logging provides named component loggers for the application
package logging

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// New returns a logger scoped to the given component name.
func New(component string) *logrus.Entry {
	return logrus.WithField("component", component)
}

// Configure sets the process-wide log level and output format. The debug flag
// wins over the level string so that -debug always produces debug output.
func Configure(level string, debug bool) {
	lvl := ParseLevel(level)
	if debug {
		lvl = logrus.DebugLevel
	}
	logrus.SetLevel(lvl)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
}

// ParseLevel converts a level name to a logrus level. It accepts the Django
// spellings (WARNING, CRITICAL) alongside the logrus ones and falls back to
// info for anything unrecognized.
func ParseLevel(level string) logrus.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return logrus.DebugLevel
	case "INFO":
		return logrus.InfoLevel
	case "WARN", "WARNING":
		return logrus.WarnLevel
	case "ERROR":
		return logrus.ErrorLevel
	case "CRITICAL", "FATAL":
		return logrus.FatalLevel
	default:
		return logrus.InfoLevel
	}
}
