// Package issues provides a unified issue type for schema violations and
// loader warnings.
package issues

import (
	"fmt"

	"github.com/fsatools/fsatools/internal/severity"
)

// Issue represents a single problem found while loading a schema pair or
// validating a submission against it.
type Issue struct {
	// Index is the 1-based position among issues found in the same run
	// (0 when the issue is not part of an ordered sequence)
	Index int
	// Message is a human-readable description of the issue
	Message string
	// Severity indicates the severity level of the issue
	Severity severity.Severity
	// Line is the 1-based line number in the source file (0 if unknown)
	Line int
	// Column is the column number reported by the parser. Column tracking
	// is best-effort: 0 means the parser did not report one.
	Column int
	// Path is the instance path to the offending node, when reported
	// (e.g. "/FSA029-BalanceSheet/Capital")
	Path string
	// Code is the validator's error code, when reported (e.g. "cvc-complex-type.2.4.d")
	Code string
	// File is the source file path (empty for the main document)
	File string
}

// String returns a formatted string representation of the issue.
// Uses different symbols based on severity level:
// - "✗" for Error severity
// - "⚠" for Warning severity
// - "ℹ" for Info severity
func (i Issue) String() string {
	var symbol string
	switch i.Severity {
	case severity.SeverityError:
		symbol = "✗"
	case severity.SeverityWarning:
		symbol = "⚠"
	case severity.SeverityInfo:
		symbol = "ℹ"
	default:
		symbol = "?"
	}

	var result string
	if i.Line > 0 {
		result = fmt.Sprintf("%s Line %d, Col %d: %s", symbol, i.Line, i.Column, i.Message)
	} else {
		result = fmt.Sprintf("%s %s", symbol, i.Message)
	}
	if i.Path != "" {
		result += fmt.Sprintf(" (at %s)", i.Path)
	}
	return result
}

// Display returns the 1-indexed listing form used by the CLI:
// "N. Line L, Col C: message (at /path)". The instance path is included
// so the listing identifies the offending node even when the message
// alone does not name it.
func (i Issue) Display() string {
	var result string
	if i.Line > 0 {
		result = fmt.Sprintf("%d. Line %d, Col %d: %s", i.Index, i.Line, i.Column, i.Message)
	} else {
		result = fmt.Sprintf("%d. %s", i.Index, i.Message)
	}
	if i.Path != "" {
		result += fmt.Sprintf(" (at %s)", i.Path)
	}
	return result
}

// Location returns the source location in IDE-friendly format.
// Returns "file:line:column" if file is set, "line:column" if only line is
// set, or the instance path if location is unknown.
func (i Issue) Location() string {
	if i.Line == 0 {
		return i.Path
	}
	if i.File != "" {
		return fmt.Sprintf("%s:%d:%d", i.File, i.Line, i.Column)
	}
	return fmt.Sprintf("%d:%d", i.Line, i.Column)
}

// HasLocation returns true if this issue has source location information.
func (i Issue) HasLocation() bool {
	return i.Line > 0
}
