package xsderrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrForbiddenPath indicates a path containing the forbidden legacy segment.
	ErrForbiddenPath = errors.New("forbidden path")

	// ErrMissingFile indicates a required schema file is absent.
	ErrMissingFile = errors.New("missing file")

	// ErrMalformedSchema indicates a schema file that cannot be compiled.
	ErrMalformedSchema = errors.New("malformed schema")

	// ErrUnresolvedImport indicates a schema import that could not be resolved.
	ErrUnresolvedImport = errors.New("unresolved import")

	// ErrSubmissionLoad indicates a submission that could not be loaded.
	ErrSubmissionLoad = errors.New("submission load error")

	// ErrSchemaLoad matches any schema-side load failure: missing file,
	// malformed schema, or unresolved import.
	ErrSchemaLoad = errors.New("schema load error")
)

// ForbiddenPathError reports a path that contains the forbidden legacy
// CommonTypes/v14 segment. The check happens before any file is opened,
// so a ForbiddenPathError guarantees no I/O was performed.
type ForbiddenPathError struct {
	// Path is the offending path as supplied by the caller
	Path string
	// Segment is the forbidden segment that was matched
	Segment string
}

// Error returns a human-readable error message.
func (e *ForbiddenPathError) Error() string {
	msg := "forbidden path"
	if e.Path != "" {
		msg += ": " + e.Path
	}
	if e.Segment != "" {
		msg += fmt.Sprintf(": must not contain '%s'", e.Segment)
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *ForbiddenPathError) Is(target error) bool {
	return target == ErrForbiddenPath
}

// MissingFileError reports a required file that does not exist.
type MissingFileError struct {
	// Path is the path that was expected to exist
	Path string
	// Role describes what the file was needed for, e.g. "primary schema"
	Role string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *MissingFileError) Error() string {
	msg := "missing file"
	if e.Role != "" {
		msg = "missing " + e.Role
	}
	if e.Path != "" {
		msg += ": " + e.Path
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *MissingFileError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
// Matches ErrMissingFile and the ErrSchemaLoad umbrella.
func (e *MissingFileError) Is(target error) bool {
	return target == ErrMissingFile || target == ErrSchemaLoad
}

// MalformedSchemaError reports a schema file that is not well-formed XML,
// carries a DOCTYPE declaration, or violates the XSD meta-schema.
type MalformedSchemaError struct {
	// Path is the schema file path
	Path string
	// Line is the line number where the problem was reported (0 if unknown)
	Line int
	// Column is the column number where the problem was reported (0 if unknown)
	Column int
	// Message describes the problem
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *MalformedSchemaError) Error() string {
	msg := "malformed schema"
	if e.Path != "" {
		msg += " " + e.Path
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
		if e.Column > 0 {
			msg += fmt.Sprintf(", column %d", e.Column)
		}
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *MalformedSchemaError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
// Matches ErrMalformedSchema and the ErrSchemaLoad umbrella.
func (e *MalformedSchemaError) Is(target error) bool {
	return target == ErrMalformedSchema || target == ErrSchemaLoad
}

// UnresolvedImportError reports a schema import declaration whose target
// could not be resolved inside the schema directory after rewriting. This
// includes a declared common-types dependency that is absent on disk and a
// location that the resolution policy refused to open (network URL,
// absolute path, or directory escape).
type UnresolvedImportError struct {
	// Namespace is the imported namespace, if declared
	Namespace string
	// Location is the schema location after rewriting
	Location string
	// IsBlocked is true when resolution was refused by policy rather than
	// the target being absent
	IsBlocked bool
	// Message provides additional context about the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *UnresolvedImportError) Error() string {
	msg := "unresolved import"
	if e.IsBlocked {
		msg = "blocked import resolution"
	}
	if e.Location != "" {
		msg += ": " + e.Location
	}
	if e.Namespace != "" {
		msg += fmt.Sprintf(" (namespace %s)", e.Namespace)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *UnresolvedImportError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
// Matches ErrUnresolvedImport and the ErrSchemaLoad umbrella.
func (e *UnresolvedImportError) Is(target error) bool {
	return target == ErrUnresolvedImport || target == ErrSchemaLoad
}

// SubmissionLoadError reports a submission document that could not be
// loaded: the file is unreadable, not well-formed XML, or carries a
// DOCTYPE declaration. Schema violations in a well-formed submission are
// not errors; they are reported as validator.Violation values.
type SubmissionLoadError struct {
	// Path is the submission file path
	Path string
	// Line is the line number where parsing failed (0 if unknown)
	Line int
	// Column is the column number where parsing failed (0 if unknown)
	Column int
	// Message describes the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *SubmissionLoadError) Error() string {
	msg := "submission load error"
	if e.Path != "" {
		msg += " " + e.Path
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
		if e.Column > 0 {
			msg += fmt.Sprintf(", column %d", e.Column)
		}
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *SubmissionLoadError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *SubmissionLoadError) Is(target error) bool {
	return target == ErrSubmissionLoad
}
