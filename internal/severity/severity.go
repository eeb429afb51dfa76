// Package severity provides severity level constants and utilities
// for issues reported by the schema and validator packages.
//
// The severity levels are ordered from least to most severe:
// Info < Warning < Error
package severity

// Severity indicates the severity level of an issue found while loading a
// schema pair or validating a submission.
type Severity int

const (
	// SeverityError indicates a schema violation that makes the submission
	// non-conformant, or a condition that prevented processing.
	SeverityError Severity = iota

	// SeverityWarning indicates a condition that does not prevent
	// processing but should be reviewed, such as a primary schema with no
	// common-types import declaration.
	SeverityWarning

	// SeverityInfo indicates informational messages about processing choices.
	SeverityInfo
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}
