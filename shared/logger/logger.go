package logger

import (
	"hoteldash/config"
	"hoteldash/shared/constant"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger installs a human readable console logger at trace level. It runs
// before configuration is loaded; SetLogLevel refines it afterwards.
func InitLogger() {
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	log.Logger = zerolog.New(consoleWriter(os.Stdout)).With().Timestamp().Logger()
	log.Trace().Msg("Zerolog initialized.")
}

func consoleWriter(out io.Writer) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
}

// ErrorWithStack logs err with the stack trace of the caller.
func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

// SetLogLevel applies SERVER_LOG_LEVEL. In production the console writer is
// replaced by JSON lines tagged with the app name so they can be shipped as is.
func SetLogLevel(config *config.Config) {
	Configure(config, os.Stdout)
}

func Configure(config *config.Config, out io.Writer) {
	level, err := zerolog.ParseLevel(config.Server.LogLevel)
	if err != nil || config.Server.LogLevel == "" {
		level = zerolog.TraceLevel
	}

	if config.Server.Env == constant.ServerEnvProduction {
		log.Logger = zerolog.New(out).With().Timestamp().Str("app", config.App.Name).Logger()
	} else {
		log.Logger = zerolog.New(consoleWriter(out)).With().Timestamp().Logger()
	}

	zerolog.SetGlobalLevel(level)

	log.Debug().Str("loglevel", level.String()).Str("env", config.Server.Env).Msg("Logger configured.")
}
