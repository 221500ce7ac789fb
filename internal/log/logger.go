// Package log provides the diagnostic logger used across tsfy.
//
// User-facing status lines are not logged here; they are printed by the
// report package. This logger carries debug detail that is only shown with
// --verbose or LOG_LEVEL.
package log

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

// Config captures options for configuring the global logger.
type Config struct {
	Level   string    // optional log level ("debug", "info", etc.)
	Verbose bool      // shorthand for Level "debug"
	Output  io.Writer // optional writer (defaults to os.Stderr)
	NoColor bool
}

var (
	mu   sync.RWMutex
	base = newLogger(Config{})
)

// Configure replaces the global logger.
func Configure(cfg Config) {
	l := newLogger(cfg)
	mu.Lock()
	base = l
	mu.Unlock()
}

func newLogger(cfg Config) zerolog.Logger {
	level := zerolog.WarnLevel
	switch {
	case cfg.Verbose:
		level = zerolog.DebugLevel
	case cfg.Level != "":
		if parsed, err := zerolog.ParseLevel(cfg.Level); err == nil {
			level = parsed
		}
	default:
		if env := os.Getenv("LOG_LEVEL"); env != "" {
			if parsed, err := zerolog.ParseLevel(env); err == nil {
				level = parsed
			}
		}
	}

	writer := cfg.Output
	if writer == nil {
		writer = os.Stderr
	}

	console := zerolog.ConsoleWriter{
		Out:        writer,
		NoColor:    cfg.NoColor,
		PartsOrder: []string{zerolog.LevelFieldName, "component", zerolog.MessageFieldName},
		FieldsExclude: []string{
			"component",
		},
	}

	return zerolog.New(console).Level(level)
}

// Base returns the configured base logger instance.
func Base() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base
}

// WithComponent returns a child logger annotated with the given component name.
func WithComponent(component string) zerolog.Logger {
	return Base().With().Str("component", component).Logger()
}
