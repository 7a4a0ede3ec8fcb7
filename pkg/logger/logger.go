package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New builds the application logger. Debug mode lowers the level so request
// details show up during development.
func New(mode string) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	if mode == "debug" {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.InfoLevel)
	}
	return log
}
