package util

import (
	"os"

	"github.com/rs/zerolog"
)

// Logger is the application-wide structured logger. Level comes from
// LOG_LEVEL (debug, info, warn, error); unknown values fall back to info.
var Logger = newLogger()

// InitLogger rebuilds the logger once the environment is fully loaded,
// so a LOG_LEVEL from .env takes effect.
func InitLogger() {
	Logger = newLogger()
}

func newLogger() zerolog.Logger {
	level, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		level = zerolog.InfoLevel
	}
	return zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()
}
