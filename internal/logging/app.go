package logging

import "github.com/sirupsen/logrus"

// #region app-logger
// NewAppLogger builds the application logger. level accepts the logrus level
// names ("debug", "info", "warn", "error"); anything unparseable falls back
// to info rather than failing startup.
func NewAppLogger(level string) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	log.SetLevel(parsed)
	return log
}
// #endregion app-logger
