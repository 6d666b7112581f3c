// Package logger builds the zerolog loggers used across shiftsheet.
//
// Library code never logs unless a logger is injected; [Nop] is the default
// everywhere. [New] picks a human-readable console format when APP_ENV=dev
// and JSON lines otherwise.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

type options struct {
	out   io.Writer
	level zerolog.Level
}

// Option configures [New].
type Option func(*options)

// WithWriter sends output to w instead of stderr.
func WithWriter(w io.Writer) Option {
	return func(o *options) { o.out = w }
}

// WithLevel sets the minimum level written.
func WithLevel(l zerolog.Level) Option {
	return func(o *options) { o.level = l }
}

// New returns a logger tagged with the given component.
func New(component string, opts ...Option) zerolog.Logger {
	o := options{out: os.Stderr, level: zerolog.InfoLevel}
	for _, opt := range opts {
		opt(&o)
	}

	out := o.out
	if strings.ToLower(os.Getenv("APP_ENV")) == "dev" {
		out = zerolog.ConsoleWriter{Out: o.out, TimeFormat: time.RFC3339}
	}
	return zerolog.New(out).
		Level(o.level).
		With().
		Timestamp().
		Str("component", component).
		Logger()
}

// Nop returns a disabled logger.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}
