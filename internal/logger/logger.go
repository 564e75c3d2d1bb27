package logger

import (
	"os"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

func New() zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	logger := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Caller().
		Logger()

	return logger.Level(zerolog.InfoLevel)
}

func SetLevel(level zerolog.Level) zerolog.Logger {
	return New().Level(level)
}

var Module = fx.Provide(New)
