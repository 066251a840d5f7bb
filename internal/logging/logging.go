package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// NewLogger builds the JSON logger every binary uses, writing to out.
func NewLogger(out io.Writer, level logrus.Level) *logrus.Logger {
	return &logrus.Logger{
		Formatter: &logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyLevel: "loglevel",
			},
		},
		Out:   out,
		Level: level,
		Hooks: make(logrus.LevelHooks),
	}
}

func SetupLogging() *logrus.Logger {
	return NewLogger(os.Stdout, logrus.InfoLevel)
}

// SetupLoggingWithLevel is SetupLogging with a level name such as "debug".
// Unknown names keep the info level.
func SetupLoggingWithLevel(level string) *logrus.Logger {
	logger := SetupLogging()
	if parsed, err := logrus.ParseLevel(level); err == nil {
		logger.SetLevel(parsed)
	}
	return logger
}
