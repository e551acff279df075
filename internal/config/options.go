package config

import "log/slog"

// Option configures a Loader.
type Option func(*Loader)

// WithLookup replaces the environment lookup, mostly useful in tests.
func WithLookup(lookup LookupFunc) Option {
	return func(l *Loader) {
		if lookup != nil {
			l.lookup = lookup
		}
	}
}

// WithFile layers the TOML file at path beneath the environment.
func WithFile(path string) Option {
	return func(l *Loader) {
		l.filePath = path
	}
}

// WithLogger sets a custom logger for the Loader.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithLogHandler sets a custom log handler for the Loader.
func WithLogHandler(handler slog.Handler) Option {
	return func(l *Loader) {
		if handler != nil {
			l.logger = slog.New(handler).WithGroup("config")
		}
	}
}
