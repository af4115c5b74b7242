// Package logging configures the global zerolog logger.
package logging

import (
	"io"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/salesboard/backend/internal/config"
)

// Setup points the global logger to out.
//
// Logs are human readable or JSON depending on the configuration. The
// debug level is enabled in the gin debug mode.
func Setup(cfg *config.Config, out io.Writer) {
	output := out
	if cfg.HumanLogs() {
		output = zerolog.ConsoleWriter{Out: out}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cfg.GinMode == "debug" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()
}
