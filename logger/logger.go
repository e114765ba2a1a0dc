// Package logger provides a configurable package-global logger.
//
// By default the logger writes human-readable lines to os.Stdout. Callers
// may replace it (Set), redirect it (SetOutput), filter it (SetLevel) or
// silence it entirely (Disable). Encoders attach build summaries at debug
// level; a context may carry its own logger (WithContext / FromContext).
package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

var logger zerolog.Logger

func init() {
	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}
	logger = zerolog.New(output).With().Timestamp().Logger().Level(zerolog.InfoLevel)
}

// SetOutput changes the output of the global logger, keeping its level.
func SetOutput(w io.Writer) {
	logger = logger.Output(w)
}

// Set allows a gnark-style caller to install its own logger.
func Set(l zerolog.Logger) {
	logger = l
}

// SetLevel parses a level name ("debug", "info", "warn", "error", "disabled")
// and applies it to the global logger.
func SetLevel(level string) error {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	logger = logger.Level(lvl)

	return nil
}

// Disable turns off all logs.
func Disable() {
	logger = zerolog.Nop()
}

// Logger returns the global logger.
func Logger() zerolog.Logger {
	return logger
}

// WithContext returns a copy of ctx carrying l.
func WithContext(ctx context.Context, l zerolog.Logger) context.Context {
	return l.WithContext(ctx)
}

// FromContext returns the logger carried by ctx, or the global one.
func FromContext(ctx context.Context) zerolog.Logger {
	if ctx != nil {
		if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
			return *l
		}
	}

	return logger
}
