package logger

import (
	"io"
	"log/slog"
	"os"
)

// Option configures the logger factory.
type Option func(*settings)

type settings struct {
	out   io.Writer
	level slog.Level
	attrs []slog.Attr
}

// WithLevel sets the minimum log level. Defaults to Info.
func WithLevel(level slog.Level) Option {
	return func(s *settings) {
		s.level = level
	}
}

// WithOutput sets the log destination. Defaults to stdout.
func WithOutput(out io.Writer) Option {
	return func(s *settings) {
		if out != nil {
			s.out = out
		}
	}
}

// WithComponent tags every record with a component attribute.
func WithComponent(name string) Option {
	return func(s *settings) {
		s.attrs = append(s.attrs, slog.String("component", name))
	}
}

// New creates a JSON-formatted logger.
func New(opts ...Option) *slog.Logger {
	s := apply(opts)
	handler := slog.NewJSONHandler(s.out, &slog.HandlerOptions{Level: s.level})
	return slog.New(handler.WithAttrs(s.attrs))
}

// Nop creates a logger that discards all output. Use it as the default when
// logging is not configured, e.g. in tests.
func Nop() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func apply(opts []Option) *settings {
	s := &settings{
		out:   os.Stdout,
		level: slog.LevelInfo,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
