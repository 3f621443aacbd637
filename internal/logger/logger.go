package logger

import (
	"os"
	"strings"

	"api/internal/config"

	"github.com/sirupsen/logrus"
)

// Log é a instância global do logger.
var Log = logrus.New()

// Init configura nível e formato do logger a partir da configuração.
func Init(cfg *config.Config) {
	Log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		Log.Warnf("Nível de log inválido '%s', usando 'info'", cfg.LogLevel)
		Log.SetLevel(logrus.InfoLevel)
	} else {
		Log.SetLevel(level)
	}

	if cfg.Ambiente == "production" || cfg.Ambiente == "staging" {
		Log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}
}
