package logger

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup configures the global zerolog logger. Console output outside
// production, JSON otherwise.
func Setup(level string, production bool) {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		parsed = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(parsed)

	if !production {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

// Get returns the global logger.
func Get() zerolog.Logger {
	return log.Logger
}

// With returns a logger extended with the given fields.
func With(fields ...any) zerolog.Logger {
	return log.Logger.With().Fields(fields).Logger()
}
