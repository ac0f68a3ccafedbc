package theatre

import (
	"log/slog"
)

type settings struct {
	logger       *slog.Logger
	panicHandler func(reason any)
}

func newSettings(options []Option) *settings {
	s := &settings{logger: slog.Default()}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *settings) reportPanic(reason any) {
	if s.panicHandler != nil {
		s.panicHandler(reason)
		return
	}
	s.logger.Error("interpreter panicked while processing a message", "reason", reason)
}

// Option represents an optional setting, passed to an actor
// constructor, which alters default behavior.
type Option func(*settings)

// WithLogger sets the logger used to report interpreter failures.
// Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithPanicHandler sets a function called with the recovered value
// whenever an interpretation panics, replacing the default logging.
// The worker keeps processing messages after the handler returns.
func WithPanicHandler(handler func(reason any)) Option {
	return func(s *settings) {
		s.panicHandler = handler
	}
}
