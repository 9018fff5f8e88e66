package clean

import (
	"io"

	"github.com/sirupsen/logrus"
)

// NewLogger returns a logger writing to w at the level of the verbosity:
// 0 fatal, 1 errors, 2 warnings, 3 progress, 4 and above debug
func NewLogger(verbosity int, w io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	switch {
	case verbosity <= 0:
		log.SetLevel(logrus.FatalLevel)
	case verbosity == 1:
		log.SetLevel(logrus.ErrorLevel)
	case verbosity == 2:
		log.SetLevel(logrus.WarnLevel)
	case verbosity == 3:
		log.SetLevel(logrus.InfoLevel)
	default:
		log.SetLevel(logrus.DebugLevel)
	}

	return log
}
