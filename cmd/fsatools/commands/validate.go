package commands

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"github.com/fsatools/fsatools/schema"
	"github.com/fsatools/fsatools/validator"
)

// ValidateFlags contains flags for the validate command
type ValidateFlags struct {
	Primary   string
	Secondary string
	Format    string
	Quiet     bool
	Verbose   bool
}

// SetupValidateFlags creates and configures a FlagSet for the validate command.
// Returns the FlagSet and a ValidateFlags struct with bound flag variables.
func SetupValidateFlags() (*flag.FlagSet, *ValidateFlags) {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	flags := &ValidateFlags{}

	fs.StringVar(&flags.Primary, "primary", schema.DefaultPrimarySchema, "primary schema file name inside the schema directory")
	fs.StringVar(&flags.Secondary, "secondary", schema.DefaultSecondarySchema, "secondary schema file name that imports resolve to")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output the validation result")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output the validation result")
	fs.BoolVar(&flags.Verbose, "v", false, "verbose mode: log load and validation steps to stderr")
	fs.BoolVar(&flags.Verbose, "verbose", false, "verbose mode: log load and validation steps to stderr")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: fsatools validate [flags] <schema-dir> <submission.xml>\n\n")
		Writef(fs.Output(), "Validate an FSA029 submission against the schema pair in <schema-dir>.\n")
		Writef(fs.Output(), "Schemas are loaded offline: imports are rewritten in memory to the\n")
		Writef(fs.Output(), "secondary file in the same directory, and nothing is ever fetched.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  fsatools validate schemas FSA029-Sample-Valid.xml\n")
		Writef(fs.Output(), "  fsatools validate --format json schemas return.xml | jq '.conformant'\n")
		Writef(fs.Output(), "  fsatools validate --primary Main.xsd --secondary Shared.xsd schemas return.xml\n")
		Writef(fs.Output(), "\nExit Codes:\n")
		Writef(fs.Output(), "  0    Submission conforms to the schema\n")
		Writef(fs.Output(), "  1    Submission has schema violations\n")
		Writef(fs.Output(), "  2    Forbidden path or invalid invocation\n")
		Writef(fs.Output(), "  3    Schema could not be loaded\n")
		Writef(fs.Output(), "  4    Submission could not be loaded\n")
	}

	return fs, flags
}

// validateReport is the structured output shape for --format json|yaml.
type validateReport struct {
	Conformant     bool              `json:"conformant" yaml:"conformant"`
	SchemaDir      string            `json:"schemaDir" yaml:"schemaDir"`
	Submission     string            `json:"submission" yaml:"submission"`
	ViolationCount int               `json:"violationCount" yaml:"violationCount"`
	Violations     []violationReport `json:"violations,omitempty" yaml:"violations,omitempty"`
	Rewrites       []rewriteReport   `json:"rewrites,omitempty" yaml:"rewrites,omitempty"`
	Warnings       []string          `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

type violationReport struct {
	Index   int    `json:"index" yaml:"index"`
	Line    int    `json:"line" yaml:"line"`
	Column  int    `json:"column" yaml:"column"`
	Message string `json:"message" yaml:"message"`
	Path    string `json:"path,omitempty" yaml:"path,omitempty"`
	Code    string `json:"code,omitempty" yaml:"code,omitempty"`
}

type rewriteReport struct {
	Tag       string `json:"tag" yaml:"tag"`
	Namespace string `json:"namespace,omitempty" yaml:"namespace,omitempty"`
	From      string `json:"from" yaml:"from"`
	To        string `json:"to" yaml:"to"`
}

// HandleValidate executes the validate command and returns the process
// exit code.
func HandleValidate(args []string) int {
	fs, flags := SetupValidateFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitOK
		}
		return ExitUsage
	}

	if fs.NArg() != 2 {
		fs.Usage()
		Writef(os.Stderr, "\nError: validate requires a schema directory and a submission file\n")
		return ExitUsage
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		Writef(os.Stderr, "Error: %v\n", err)
		return ExitUsage
	}

	schemaDir := fs.Arg(0)
	submissionPath := fs.Arg(1)

	logger := schema.Logger(schema.NopLogger{})
	if flags.Verbose {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		logger = schema.NewSlogAdapter(slog.New(handler))
	}

	bundle, err := schema.LoadWithOptions(
		schema.WithDir(schemaDir),
		schema.WithPrimary(flags.Primary),
		schema.WithSecondary(flags.Secondary),
		schema.WithLogger(logger),
	)
	if err != nil {
		Writef(os.Stderr, "Error: %v\n", err)
		return ExitCodeForError(err)
	}

	result, err := validator.ValidateWithOptions(
		validator.WithBundle(bundle),
		validator.WithSubmissionPath(submissionPath),
		validator.WithLogger(logger),
	)
	if err != nil {
		Writef(os.Stderr, "Error: %v\n", err)
		return ExitCodeForError(err)
	}

	if flags.Format == FormatJSON || flags.Format == FormatYAML {
		report := buildValidateReport(schemaDir, bundle, result)
		if err := OutputStructured(report, flags.Format); err != nil {
			Writef(os.Stderr, "Error: %v\n", err)
			return ExitUsage
		}
		if !result.Conformant {
			return ExitViolations
		}
		return ExitOK
	}

	if !flags.Quiet {
		for _, w := range bundle.Warnings {
			Writef(os.Stderr, "Warning: %s\n", w.Message)
		}
		Writef(os.Stdout, "[OK] Loaded schemas & submission securely.\n")
	}

	if result.Conformant {
		Writef(os.Stdout, "[OK] Submission conforms to the FSA029 schema.\n")
		return ExitOK
	}

	Writef(os.Stdout, "[FAIL] Submission has %d schema violation(s):\n", result.ViolationCount())
	for _, v := range result.Violations {
		Writef(os.Stdout, "%s\n", v.Display())
	}
	return ExitViolations
}

func buildValidateReport(schemaDir string, bundle *schema.Bundle, result *validator.Result) validateReport {
	report := validateReport{
		Conformant:     result.Conformant,
		SchemaDir:      schemaDir,
		Submission:     result.SubmissionPath,
		ViolationCount: result.ViolationCount(),
	}
	for _, v := range result.Violations {
		report.Violations = append(report.Violations, violationReport{
			Index:   v.Index,
			Line:    v.Line,
			Column:  v.Column,
			Message: v.Message,
			Path:    v.Path,
			Code:    v.Code,
		})
	}
	for _, rec := range bundle.Rewrites {
		report.Rewrites = append(report.Rewrites, rewriteReport{
			Tag:       rec.Tag,
			Namespace: rec.Namespace,
			From:      rec.From,
			To:        rec.To,
		})
	}
	for _, w := range bundle.Warnings {
		report.Warnings = append(report.Warnings, w.Message)
	}
	return report
}
