package applogger

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/marhaba-park/mp-booking/config"
)

var (
	once   sync.Once
	logger *logrus.Logger
)

// GetLogrus returns the shared application logger, configured once from the
// application config.
func GetLogrus() *logrus.Logger {
	once.Do(func() {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})

		level, err := logrus.ParseLevel(config.Get().Application.LogLevel)
		if err != nil {
			level = logrus.InfoLevel
		}
		logger.SetLevel(level)
	})

	return logger
}
