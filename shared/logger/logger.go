package logger

import (
	"io"
	"os"
	"resto/config"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
)

const defaultLevel = zerolog.TraceLevel

// InitLogger installs a console logger at trace level. SetLogLevel narrows it once config is loaded.
func InitLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	zerolog.SetGlobalLevel(defaultLevel)

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	log.Trace().Msg("Zerolog initialized.")
}

// ErrorWithStack logs err with the stack trace of the caller.
func ErrorWithStack(err error) {
	if err == nil {
		return
	}

	log.Error().Stack().Err(errors.WithStack(err)).Msg("unexpected error")
}

// Output picks console output for local development and JSON lines everywhere else.
func Output(cfg *config.Config, w io.Writer) zerolog.Logger {
	if cfg.Server.Env == "" || cfg.Server.Env == "development" {
		return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}).With().Timestamp().Logger()
	}

	return zerolog.New(w).With().
		Timestamp().
		Str("service", cfg.App.Name).
		Str("env", cfg.Server.Env).
		Logger()
}

func SetLogLevel(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.Server.LogLevel)
	if err != nil || cfg.Server.LogLevel == "" {
		level = defaultLevel
		log.Trace().Str("loglevel", level.String()).Msg("Environment has no log level set up, using default.")
	} else {
		log.Trace().Str("loglevel", level.String()).Msg("Desired log level detected.")
	}

	zerolog.SetGlobalLevel(level)
}
