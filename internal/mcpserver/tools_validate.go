package mcpserver

import (
	"context"
	"errors"

	"github.com/fsatools/fsatools/schema"
	"github.com/fsatools/fsatools/validator"
	"github.com/fsatools/fsatools/xsderrors"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type validateInput struct {
	SchemaDir  string `json:"schema_dir"           jsonschema:"Directory containing the schema pair"`
	Submission string `json:"submission"           jsonschema:"Path to the FSA029 submission XML file"`
	Primary    string `json:"primary,omitempty"    jsonschema:"Primary schema file name (default FSA029-Schema.xsd, configurable via FSATOOLS_PRIMARY)"`
	Secondary  string `json:"secondary,omitempty"  jsonschema:"Secondary schema file name imports resolve to (default CommonTypes-Schema.xsd, configurable via FSATOOLS_SECONDARY)"`
	Limit      int    `json:"limit,omitempty"      jsonschema:"Maximum number of violations to return (default from FSATOOLS_VIOLATION_LIMIT)"`
}

type violationOutput struct {
	Index   int    `json:"index"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Message string `json:"message"`
	Path    string `json:"path,omitempty"`
	Code    string `json:"code,omitempty"`
}

type validateToolOutput struct {
	Conformant     bool              `json:"conformant"`
	ViolationCount int               `json:"violation_count"`
	Returned       int               `json:"returned"`
	Violations     []violationOutput `json:"violations,omitempty"`
	FailureKind    string            `json:"failure_kind,omitempty"`
	Warnings       []string          `json:"warnings,omitempty"`
}

// failureKind categorizes a load error for MCP clients.
func failureKind(err error) string {
	switch {
	case errors.Is(err, xsderrors.ErrForbiddenPath):
		return "forbidden_path"
	case errors.Is(err, xsderrors.ErrSubmissionLoad):
		return "submission_load"
	case errors.Is(err, xsderrors.ErrSchemaLoad):
		return "schema_load"
	default:
		return "internal"
	}
}

func handleValidate(_ context.Context, _ *mcp.CallToolRequest, input validateInput) (*mcp.CallToolResult, validateToolOutput, error) {
	// Apply config defaults when input fields are omitted.
	primary := cfg.Primary
	if input.Primary != "" {
		primary = input.Primary
	}
	secondary := cfg.Secondary
	if input.Secondary != "" {
		secondary = input.Secondary
	}
	limit := cfg.ViolationLimit
	if input.Limit > 0 {
		limit = input.Limit
	}

	bundle, err := schema.LoadWithOptions(
		schema.WithDir(input.SchemaDir),
		schema.WithPrimary(primary),
		schema.WithSecondary(secondary),
	)
	if err != nil {
		return errResult(err), validateToolOutput{FailureKind: failureKind(err)}, nil
	}

	result, err := validator.ValidateWithOptions(
		validator.WithBundle(bundle),
		validator.WithSubmissionPath(input.Submission),
	)
	if err != nil {
		return errResult(err), validateToolOutput{FailureKind: failureKind(err)}, nil
	}

	output := validateToolOutput{
		Conformant:     result.Conformant,
		ViolationCount: result.ViolationCount(),
	}
	for _, w := range bundle.Warnings {
		output.Warnings = append(output.Warnings, w.Message)
	}

	violations := result.Violations
	if len(violations) > limit {
		violations = violations[:limit]
	}
	output.Violations = makeSlice[violationOutput](len(violations))
	for _, v := range violations {
		output.Violations = append(output.Violations, violationOutput{
			Index:   v.Index,
			Line:    v.Line,
			Column:  v.Column,
			Message: v.Message,
			Path:    v.Path,
			Code:    v.Code,
		})
	}
	output.Returned = len(output.Violations)

	return nil, output, nil
}
