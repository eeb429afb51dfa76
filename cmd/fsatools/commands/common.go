// Package commands provides CLI command handlers for fsatools.
package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fsatools/fsatools/xsderrors"
	"go.yaml.in/yaml/v4"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Exit codes. Every failure category gets its own code so callers can
// script against the result without parsing output.
const (
	// ExitOK: the submission conforms to the schema
	ExitOK = 0
	// ExitViolations: the submission was checked and has schema violations
	ExitViolations = 1
	// ExitForbiddenPath: a supplied path references the legacy
	// CommonTypes/v14 lineage; also used for invalid invocations
	ExitForbiddenPath = 2
	// ExitSchemaLoad: the schema pair could not be loaded or compiled
	ExitSchemaLoad = 3
	// ExitSubmissionLoad: the submission could not be read or parsed
	ExitSubmissionLoad = 4

	// ExitUsage: invalid invocation, shares the refusal code
	ExitUsage = ExitForbiddenPath
)

// ExitCodeForError maps a load or validation error onto the exit code
// taxonomy. Submission errors are checked before the schema umbrella
// because only the latter is an umbrella sentinel.
func ExitCodeForError(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, xsderrors.ErrForbiddenPath):
		return ExitForbiddenPath
	case errors.Is(err, xsderrors.ErrSubmissionLoad):
		return ExitSubmissionLoad
	case errors.Is(err, xsderrors.ErrSchemaLoad):
		return ExitSchemaLoad
	default:
		return ExitUsage
	}
}

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// OutputStructured outputs data in the specified format (json or yaml) to stdout.
// Returns an error if marshaling fails.
func OutputStructured(data any, format string) error {
	var bytes []byte
	var err error

	switch format {
	case FormatJSON:
		bytes, err = json.MarshalIndent(data, "", "  ")
	case FormatYAML:
		bytes, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}

	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}

	fmt.Println(string(bytes))
	return nil
}

// Writef writes formatted output, reporting write failures to stderr.
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}
