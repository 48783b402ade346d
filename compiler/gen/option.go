package gen

import (
	"errors"
	"io"
	"log/slog"
	"runtime"
)

// Config holds the configuration of a generation run.
type Config struct {
	// Target is the directory generated files are written to.
	Target string
	// Header is written verbatim at the top of each generated file.
	Header string
	// RuntimeModule is the module the Model base class is imported from.
	RuntimeModule string
	// Workers limits the number of schemas generated or files written
	// concurrently.
	Workers int
	// Check reports files that differ from their on-disk copy instead of
	// writing them.
	Check bool
	// Logger receives progress logs. Defaults to a discarding logger.
	Logger *slog.Logger
}

// Option configures code generation.
type Option func(*Config) error

// WithTarget sets the output directory.
func WithTarget(dir string) Option {
	return func(c *Config) error {
		if dir == "" {
			return NewConfigError("Target", nil, "target directory cannot be empty")
		}
		c.Target = dir
		return nil
	}
}

// WithHeader sets the file header.
// The header is added at the top of each generated file.
func WithHeader(header string) Option {
	return func(c *Config) error {
		c.Header = header
		return nil
	}
}

// WithRuntimeModule sets the import path of the Model base class.
func WithRuntimeModule(path string) Option {
	return func(c *Config) error {
		if path == "" {
			return NewConfigError("RuntimeModule", nil, "runtime module cannot be empty")
		}
		c.RuntimeModule = path
		return nil
	}
}

// WithWorkers sets the number of parallel workers.
func WithWorkers(n int) Option {
	return func(c *Config) error {
		if n < 1 {
			return NewConfigError("Workers", n, "workers must be positive")
		}
		c.Workers = n
		return nil
	}
}

// WithCheck enables check mode: nothing is written, and stale files
// are reported with ErrStale.
func WithCheck(check bool) Option {
	return func(c *Config) error {
		c.Check = check
		return nil
	}
}

// WithLogger sets the logger of the generation run.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) error {
		if l == nil {
			return NewConfigError("Logger", nil, "logger cannot be nil")
		}
		c.Logger = l
		return nil
	}
}

// Apply applies options to the config.
// It returns the first error encountered.
func (c *Config) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// ApplyAll applies options and collects all errors.
// Returns a joined error if any options failed.
func (c *Config) ApplyAll(opts ...Option) error {
	var errs []error
	for _, opt := range opts {
		if err := opt(c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewConfig creates a new Config with the given options. Unset values
// get their defaults.
func NewConfig(opts ...Option) (*Config, error) {
	c := &Config{}
	if err := c.Apply(opts...); err != nil {
		return nil, err
	}
	c.defaults()
	return c, nil
}

// MustNewConfig creates a new Config with the given options.
// It panics if any option fails.
func MustNewConfig(opts ...Option) *Config {
	c, err := NewConfig(opts...)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Config) defaults() {
	if c.RuntimeModule == "" {
		c.RuntimeModule = DefaultRuntimeModule
	}
	if c.Workers == 0 {
		c.Workers = runtime.GOMAXPROCS(0)
	}
	if c.Logger == nil {
		c.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
}
