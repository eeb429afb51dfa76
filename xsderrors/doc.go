// Package xsderrors provides structured error types for the fsatools library.
//
// Import path: github.com/fsatools/fsatools/xsderrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to distinguish between different categories of failures and
// branch on them without parsing message text. The fsatools CLI maps each
// category to a distinct process exit code.
//
// # Error Types
//
// The package provides five core error types:
//
//   - [ForbiddenPathError]: a supplied path contains the forbidden legacy
//     CommonTypes/v14 segment
//   - [MissingFileError]: a required schema file is absent
//   - [MalformedSchemaError]: a schema file is not well-formed XML, carries a
//     DOCTYPE declaration, or violates the XSD meta-schema
//   - [UnresolvedImportError]: a declared schema import could not be resolved
//     inside the schema directory after rewriting
//   - [SubmissionLoadError]: the submission could not be read or is not
//     well-formed XML (distinct from schema violations, which are reported as
//     validator.Violation values, not errors)
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrForbiddenPath]: Matches any [ForbiddenPathError]
//   - [ErrMissingFile]: Matches any [MissingFileError]
//   - [ErrMalformedSchema]: Matches any [MalformedSchemaError]
//   - [ErrUnresolvedImport]: Matches any [UnresolvedImportError]
//   - [ErrSubmissionLoad]: Matches any [SubmissionLoadError]
//
// [ErrSchemaLoad] additionally matches every schema-side load failure
// (missing file, malformed schema, unresolved import) so automation that only
// cares about "could the schema be loaded at all" needs a single check.
package xsderrors
