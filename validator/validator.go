package validator

import (
	"bytes"
	"os"
	"time"

	"github.com/fsatools/fsatools/internal/issues"
	"github.com/fsatools/fsatools/internal/pathguard"
	"github.com/fsatools/fsatools/internal/severity"
	"github.com/fsatools/fsatools/internal/xmlguard"
	"github.com/fsatools/fsatools/schema"
	"github.com/fsatools/fsatools/xsderrors"
	xsdvalidation "github.com/jacoelho/xsd/errors"
)

// Violation is one schema violation found in a submission, with its
// 1-based line and best-effort column.
type Violation = issues.Issue

// Result holds the outcome of validating one submission.
type Result struct {
	// Conformant is true when the submission has no schema violations
	Conformant bool

	// Violations lists every violation in document order; nil when
	// the submission conforms
	Violations []*Violation

	// SubmissionPath is the validated file path, empty for in-memory
	// sources
	SubmissionPath string

	// SourceSize is the submission size in bytes
	SourceSize int64

	// ValidateTime is how long validation took
	ValidateTime time.Duration
}

// ViolationCount returns the number of violations found.
func (r *Result) ViolationCount() int {
	return len(r.Violations)
}

// Validate checks the submission at path against bundle. It is
// shorthand for:
//
//	ValidateWithOptions(WithBundle(bundle), WithSubmissionPath(path))
func Validate(bundle *schema.Bundle, path string) (*Result, error) {
	return ValidateWithOptions(WithBundle(bundle), WithSubmissionPath(path))
}

// ValidateWithOptions checks a submission according to the supplied
// options.
//
// A non-nil error means the submission could not be checked at all:
// *xsderrors.ForbiddenPathError when the path references the legacy
// CommonTypes/v14 lineage, *xsderrors.SubmissionLoadError when the file
// is unreadable, not well-formed XML, or carries a DOCTYPE declaration.
// Schema violations are not errors; they are returned in
// Result.Violations, all of them, with 1-based line numbers.
func ValidateWithOptions(opts ...Option) (*Result, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	logger := cfg.logger.With("component", "validator")

	src := cfg.source
	submissionPath := ""
	if cfg.submissionPath != nil {
		submissionPath = *cfg.submissionPath
		if err := pathguard.Check(submissionPath); err != nil {
			logger.Error("refused forbidden path", "path", submissionPath)
			return nil, err
		}
		src, err = os.ReadFile(submissionPath)
		if err != nil {
			logger.Error("submission unreadable", "path", submissionPath, "error", err)
			return nil, &xsderrors.SubmissionLoadError{
				Path:    submissionPath,
				Message: "submission file could not be read",
				Cause:   err,
			}
		}
	}
	logger.Debug("read submission", "path", submissionPath, "bytes", len(src))

	if err := xmlguard.Check(src); err != nil {
		return nil, &xsderrors.SubmissionLoadError{
			Path:    submissionPath,
			Message: "document type declarations are not allowed",
			Cause:   err,
		}
	}

	result := &Result{
		SubmissionPath: submissionPath,
		SourceSize:     int64(len(src)),
	}

	verr := cfg.bundle.Schema.Validate(bytes.NewReader(src))
	if verr == nil {
		result.Conformant = true
		result.ValidateTime = time.Since(start)
		logger.Info("submission conforms", "path", submissionPath, "duration", result.ValidateTime)
		return result, nil
	}

	validations, ok := xsdvalidation.AsValidations(verr)
	if !ok {
		return nil, &xsderrors.SubmissionLoadError{
			Path:    submissionPath,
			Message: "validation aborted",
			Cause:   verr,
		}
	}

	// A parse error means the document never reached schema checking.
	for _, v := range validations {
		if v.Code == string(xsdvalidation.ErrXMLParse) {
			return nil, &xsderrors.SubmissionLoadError{
				Path:    submissionPath,
				Line:    v.Line,
				Column:  v.Column,
				Message: v.Message,
				Cause:   verr,
			}
		}
	}

	for i, v := range validations {
		result.Violations = append(result.Violations, &issues.Issue{
			Index:    i + 1,
			Severity: severity.SeverityError,
			Message:  v.Message,
			Line:     v.Line,
			Column:   v.Column,
			Path:     v.Path,
			Code:     v.Code,
			File:     submissionPath,
		})
	}
	result.ValidateTime = time.Since(start)
	logger.Info("submission has violations",
		"path", submissionPath,
		"violations", len(result.Violations),
		"duration", result.ValidateTime)
	return result, nil
}
