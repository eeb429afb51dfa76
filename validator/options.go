package validator

import (
	"fmt"

	"github.com/fsatools/fsatools/schema"
)

// Option is a function that configures a validation operation
type Option func(*validateConfig) error

// validateConfig holds configuration for a validation operation
type validateConfig struct {
	// Bundle is required
	bundle *schema.Bundle

	// Input source (exactly one must be set)
	submissionPath *string
	source         []byte

	// Configuration options
	logger schema.Logger
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*validateConfig, error) {
	cfg := &validateConfig{
		logger: schema.NopLogger{},
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.bundle == nil || cfg.bundle.Schema == nil {
		return nil, fmt.Errorf("must specify a loaded schema bundle (use WithBundle)")
	}
	hasPath := cfg.submissionPath != nil
	hasSource := cfg.source != nil
	if !hasPath && !hasSource {
		return nil, fmt.Errorf("must specify an input source (use WithSubmissionPath or WithSource)")
	}
	if hasPath && hasSource {
		return nil, fmt.Errorf("must specify exactly one input source")
	}

	return cfg, nil
}

// WithBundle specifies the compiled schema bundle to validate against
func WithBundle(bundle *schema.Bundle) Option {
	return func(cfg *validateConfig) error {
		cfg.bundle = bundle
		return nil
	}
}

// WithSubmissionPath specifies a submission file path as the input source
func WithSubmissionPath(path string) Option {
	return func(cfg *validateConfig) error {
		cfg.submissionPath = &path
		return nil
	}
}

// WithSource specifies in-memory submission content as the input source
func WithSource(src []byte) Option {
	return func(cfg *validateConfig) error {
		cfg.source = src
		return nil
	}
}

// WithLogger specifies a logger for validation diagnostics
// Default: schema.NopLogger
func WithLogger(logger schema.Logger) Option {
	return func(cfg *validateConfig) error {
		if logger == nil {
			logger = schema.NopLogger{}
		}
		cfg.logger = logger
		return nil
	}
}
