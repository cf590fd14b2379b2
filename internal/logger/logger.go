package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New returns a logger writing to stdout at the given level.
// JSON output uses the field names Cloud Logging recognises.
func New(level string, json bool, version string) *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)

	// set debug log level
	switch level {
	case "debug", "trace":
		logger.SetLevel(logrus.DebugLevel)
	case "info":
		logger.SetLevel(logrus.InfoLevel)
	case "warning", "warn":
		logger.SetLevel(logrus.WarnLevel)
	case "error":
		logger.SetLevel(logrus.ErrorLevel)
	case "fatal":
		logger.SetLevel(logrus.FatalLevel)
	case "panic":
		logger.SetLevel(logrus.PanicLevel)
	default:
		logger.SetLevel(logrus.InfoLevel)
	}

	// set JSON formatter for structured logging
	if json {
		logger.SetFormatter(&logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyLevel: "severity",
				logrus.FieldKeyMsg:   "message",
				logrus.FieldKeyTime:  "timestamp",
			},
		})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger.WithField("version", version)
}
