package schema

import (
	"time"

	"github.com/fsatools/fsatools/internal/importrewrite"
	"github.com/fsatools/fsatools/internal/issues"
	"github.com/jacoelho/xsd"
)

// Default file names for the FSA029 schema pair as distributed by the
// regulator.
const (
	// DefaultPrimarySchema is the balance sheet schema file name.
	DefaultPrimarySchema = "FSA029-Schema.xsd"
	// DefaultSecondarySchema is the shared common types schema file name.
	DefaultSecondarySchema = "CommonTypes-Schema.xsd"
)

// RewriteRecord describes one import location rewritten during loading.
type RewriteRecord = importrewrite.Record

// Bundle is a compiled schema pair ready to validate submissions.
// Obtain one from Load or LoadWithOptions.
type Bundle struct {
	// Schema is the compiled schema, with imports resolved locally
	Schema *xsd.Schema

	// Dir is the schema directory the bundle was loaded from
	Dir string

	// PrimaryPath is the primary schema path relative to Dir
	PrimaryPath string

	// SecondaryPath is the secondary schema path relative to Dir,
	// empty when the primary schema is self-contained
	SecondaryPath string

	// Declarations counts the import, include, and redefine
	// declarations found in the primary schema
	Declarations int

	// Rewrites lists every import location rewritten in memory,
	// in document order
	Rewrites []RewriteRecord

	// Warnings holds non-fatal observations made during loading
	Warnings []*issues.Issue

	// LoadTime is how long loading and compilation took
	LoadTime time.Duration

	// PrimarySize is the primary schema source size in bytes
	PrimarySize int64
}

// SelfContained reports whether the primary schema declared no imports
// and loaded without a secondary schema.
func (b *Bundle) SelfContained() bool {
	return b.Declarations == 0
}
