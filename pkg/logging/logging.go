// Package logging builds the zerolog logger shared by the commands and the HTTP server.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Options control logger construction.
type Options struct {
	// Level is a zerolog level name; empty means info.
	Level string
	// Console switches from JSON lines to human-readable output.
	Console bool
	// Writer defaults to stderr so command output on stdout stays clean.
	Writer io.Writer
}

// New returns a logger with timestamps at the requested level.
func New(opts Options) (logger zerolog.Logger, err error) {
	level := zerolog.InfoLevel
	if opts.Level != "" {
		level, err = zerolog.ParseLevel(opts.Level)
		if err != nil {
			err = errors.Wrapf(err, "invalid log level %q", opts.Level)
			return logger, err
		}
	}

	var out io.Writer = os.Stderr
	if opts.Writer != nil {
		out = opts.Writer
	}
	if opts.Console {
		out = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.TimeOnly,
		}
	}

	logger = zerolog.New(out).Level(level).With().Timestamp().Logger()
	return logger, err
}

// Nop returns a logger that discards everything.
func Nop() (logger zerolog.Logger) {
	logger = zerolog.Nop()
	return logger
}
