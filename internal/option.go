package internal

import "io"

// Option is a functional option for configuring the application.
type Option func(*application)

type application struct {
	config  *Config
	console io.Writer
}

// WithConfig sets the application configuration.
func WithConfig(cfg *Config) Option {
	return func(a *application) {
		a.config = cfg
	}
}

// WithConsole sets where log entries are mirrored besides the error log file.
// Defaults to os.Stderr.
func WithConsole(w io.Writer) Option {
	return func(a *application) {
		a.console = w
	}
}
