package schema

import (
	"fmt"
	"io/fs"
)

// Option is a function that configures a schema load operation
type Option func(*loadConfig) error

// loadConfig holds configuration for a schema load operation
type loadConfig struct {
	// Input source (dir is required unless fsys is supplied)
	dir  string
	fsys fs.FS

	// Configuration options
	primary   string
	secondary string
	logger    Logger
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*loadConfig, error) {
	cfg := &loadConfig{
		primary:   DefaultPrimarySchema,
		secondary: DefaultSecondarySchema,
		logger:    NopLogger{},
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.dir == "" && cfg.fsys == nil {
		return nil, fmt.Errorf("must specify a schema source (use WithDir or WithFS)")
	}
	if cfg.primary == "" {
		return nil, fmt.Errorf("primary schema file name must not be empty")
	}

	return cfg, nil
}

// WithDir specifies the directory containing the schema pair
func WithDir(dir string) Option {
	return func(cfg *loadConfig) error {
		cfg.dir = dir
		return nil
	}
}

// WithFS specifies an fs.FS to load schemas from instead of a directory.
// The confinement policy is applied on top of it; mainly useful in tests
func WithFS(fsys fs.FS) Option {
	return func(cfg *loadConfig) error {
		cfg.fsys = fsys
		return nil
	}
}

// WithPrimary overrides the primary schema file name
// Default: "FSA029-Schema.xsd"
func WithPrimary(name string) Option {
	return func(cfg *loadConfig) error {
		cfg.primary = name
		return nil
	}
}

// WithSecondary overrides the secondary schema file name that imports
// are rewritten to
// Default: "CommonTypes-Schema.xsd"
func WithSecondary(name string) Option {
	return func(cfg *loadConfig) error {
		cfg.secondary = name
		return nil
	}
}

// WithLogger specifies a logger for load diagnostics
// Default: NopLogger
func WithLogger(logger Logger) Option {
	return func(cfg *loadConfig) error {
		if logger == nil {
			logger = NopLogger{}
		}
		cfg.logger = logger
		return nil
	}
}
