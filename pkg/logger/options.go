package logger

import (
	"io"
	"log/slog"
)

// Option configures a Logger created with New.
type Option func(*config)

// WithDebug logs at Debug level when true and Info otherwise.
func WithDebug(debug bool) Option {
	return func(c *config) {
		c.level = slog.LevelInfo
		if debug {
			c.level = slog.LevelDebug
		}
	}
}

// WithPretty uses charmbracelet/log for colorized terminal output.
func WithPretty(pretty bool) Option {
	return func(c *config) {
		c.pretty = pretty
	}
}

// WithJSON writes one JSON object per record. It takes precedence over
// WithPretty and is what training run logs use.
func WithJSON(json bool) Option {
	return func(c *config) {
		c.json = json
	}
}

// WithWriter sets the output writer. Defaults to os.Stdout. Use Multi to
// send the same records to differently formatted destinations.
func WithWriter(w io.Writer) Option {
	return func(c *config) {
		c.writer = w
	}
}
