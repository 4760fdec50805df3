package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New создает JSON логгер сервиса, пишущий в stdout
func New(logLevel string) *logrus.Logger {
	log := logrus.New()

	log.SetFormatter(&logrus.JSONFormatter{})

	log.SetOutput(os.Stdout)

	log.SetLevel(parseLevel(logLevel))
	return log
}

// NewConsole создает текстовый логгер для консольных утилит.
// Вывод идет в out, чтобы не смешиваться с отрисовкой дашборда.
func NewConsole(logLevel string, out io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	log.SetOutput(out)
	log.SetLevel(parseLevel(logLevel))
	return log
}

func parseLevel(logLevel string) logrus.Level {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return logrus.InfoLevel // Уровень по умолчанию, если передан некорректный
	}
	return level
}
