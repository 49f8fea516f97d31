package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New creates a logrus logger configured from the given level string.
// Unknown levels fall back to info rather than failing startup.
func New(level string) *logrus.Logger {
	l := logrus.New()

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	l.SetLevel(parsed)

	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	l.SetOutput(os.Stdout)

	return l
}
