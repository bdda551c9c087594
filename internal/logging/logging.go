// Package logging constructs the application's zerolog loggers.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// Format names for Config.Format.
const (
	FormatAuto    = "auto"
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config holds logger construction settings.
type Config struct {
	// Level is a zerolog level name ("debug", "info", ...). Unparseable
	// values fall back to info.
	Level string

	// Format selects console or JSON output. FormatAuto picks console
	// when Out is a terminal and JSON otherwise.
	Format string

	// Out is the destination writer; defaults to os.Stderr.
	Out io.Writer
}

// New builds a zerolog logger from cfg.
func New(cfg Config) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		lvl = zerolog.InfoLevel
	}

	out := cfg.Out
	if out == nil {
		out = os.Stderr
	}

	format := cfg.Format
	if format == "" || format == FormatAuto {
		format = FormatJSON
		if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			format = FormatConsole
		}
	}

	w := out
	if format == FormatConsole {
		w = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
		}
	}

	return zerolog.New(w).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}

// ComponentLogger returns logger tagged with a component field, so log
// lines from different subsystems are distinguishable.
func ComponentLogger(logger zerolog.Logger, component string) zerolog.Logger {
	return logger.With().Str("component", component).Logger()
}
