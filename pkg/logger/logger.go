package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New создает логгер приложения; format "text" включает человекочитаемый вывод, иначе JSON
func New(logLevel, format string) *logrus.Logger {
	return NewWithOutput(logLevel, format, os.Stdout)
}

func NewWithOutput(logLevel, format string, out io.Writer) *logrus.Logger {
	log := logrus.New()

	if format == "text" {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		log.SetFormatter(&logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime: "ts",
				logrus.FieldKeyMsg:  "message",
			},
		})
	}

	log.SetOutput(out)

	// Уровень логирования
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel // Уровень по умолчанию, если передан некорректный
	}
	log.SetLevel(level)
	return log
}
