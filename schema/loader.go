package schema

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsatools/fsatools/internal/importrewrite"
	"github.com/fsatools/fsatools/internal/issues"
	"github.com/fsatools/fsatools/internal/pathguard"
	"github.com/fsatools/fsatools/internal/securefs"
	"github.com/fsatools/fsatools/internal/severity"
	"github.com/fsatools/fsatools/internal/xmlguard"
	"github.com/fsatools/fsatools/xsderrors"
	"github.com/jacoelho/xsd"
)

// Load reads, rewrites, and compiles the FSA029 schema pair from dir
// using the default file names. It is shorthand for:
//
//	LoadWithOptions(WithDir(dir))
func Load(dir string) (*Bundle, error) {
	return LoadWithOptions(WithDir(dir))
}

// LoadWithOptions reads, rewrites, and compiles a schema pair according
// to the supplied options.
//
// The pipeline is:
//
//  1. Refuse any configured path containing the legacy CommonTypes/v14
//     segment, before touching the filesystem.
//  2. Read the primary schema and refuse DOCTYPE declarations.
//  3. Rewrite import locations in memory so they resolve to the
//     secondary file colocated with the primary. Files on disk are
//     never modified.
//  4. Verify the secondary schema exists when the primary declares
//     dependencies; a self-contained primary records a warning instead.
//  5. Compile through a filesystem confined to the schema directory, so
//     network fetches and directory escapes are structurally impossible.
//
// Errors are classified: *xsderrors.ForbiddenPathError,
// *xsderrors.MissingFileError, *xsderrors.MalformedSchemaError, or
// *xsderrors.UnresolvedImportError. All of them match
// xsderrors.ErrSchemaLoad except the forbidden path, which is refused
// before any load work begins.
func LoadWithOptions(opts ...Option) (*Bundle, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	logger := cfg.logger.With("component", "schema-loader")

	for _, p := range []string{cfg.dir, cfg.primary, cfg.secondary} {
		if err := pathguard.Check(p); err != nil {
			logger.Error("refused forbidden path", "path", p)
			return nil, err
		}
	}

	base := cfg.fsys
	if base == nil {
		base = os.DirFS(cfg.dir)
	}
	sfs := securefs.New(base)
	primaryPath := displayPath(cfg.dir, cfg.primary)

	raw, err := fs.ReadFile(sfs, cfg.primary)
	if err != nil {
		logger.Error("primary schema unreadable", "path", primaryPath, "error", err)
		return nil, &xsderrors.MissingFileError{
			Path:  primaryPath,
			Role:  "primary schema",
			Cause: err,
		}
	}
	logger.Debug("read primary schema", "path", primaryPath, "bytes", len(raw))

	if err := xmlguard.Check(raw); err != nil {
		return nil, &xsderrors.MalformedSchemaError{
			Path:    primaryPath,
			Message: "document type declarations are not allowed",
			Cause:   err,
		}
	}

	rewritten, err := importrewrite.Rewrite(raw, cfg.secondary)
	if err != nil {
		if errors.Is(err, xsderrors.ErrForbiddenPath) {
			return nil, err
		}
		return nil, &xsderrors.MalformedSchemaError{
			Path:    primaryPath,
			Message: "schema is not well-formed XML",
			Cause:   err,
		}
	}
	for _, rec := range rewritten.Records {
		logger.Info("rewrote schema dependency",
			"tag", rec.Tag, "namespace", rec.Namespace, "from", rec.From, "to", rec.To)
	}

	// Only import declarations are redirected at the shared secondary
	// file; includes and redefines resolve to their own base names
	// during compilation. An include-only primary therefore has no
	// secondary to verify up front.
	var warnings []*issues.Issue
	secondaryPath := ""
	if rewritten.Imports > 0 {
		sec, err := fs.ReadFile(sfs, cfg.secondary)
		if err != nil {
			logger.Error("secondary schema unresolved", "path", cfg.secondary, "error", err)
			return nil, &xsderrors.UnresolvedImportError{
				Namespace: importNamespace(rewritten.Records),
				Location:  cfg.secondary,
				Message:   "declared dependency is absent from the schema directory",
				Cause:     err,
			}
		}
		if err := xmlguard.Check(sec); err != nil {
			return nil, &xsderrors.MalformedSchemaError{
				Path:    displayPath(cfg.dir, cfg.secondary),
				Message: "document type declarations are not allowed",
				Cause:   err,
			}
		}
		secondaryPath = cfg.secondary
	} else if rewritten.Declarations == 0 {
		warnings = append(warnings, &issues.Issue{
			Severity: severity.SeverityWarning,
			Message:  "primary schema declares no dependencies; loading as self-contained",
			File:     primaryPath,
		})
		logger.Warn("primary schema declares no dependencies", "path", primaryPath)
	}

	resolveFS := sfs.
		WithOverlay(cfg.primary, rewritten.Source).
		WithOpenHook(func(name string) {
			logger.Debug("resolving schema file", "name", name)
		})

	compiled, err := xsd.Load(resolveFS, cfg.primary)
	if err != nil {
		return nil, classifyCompileError(err, primaryPath, rewritten.Records)
	}

	bundle := &Bundle{
		Schema:        compiled,
		Dir:           cfg.dir,
		PrimaryPath:   cfg.primary,
		SecondaryPath: secondaryPath,
		Declarations:  rewritten.Declarations,
		Rewrites:      rewritten.Records,
		Warnings:      warnings,
		LoadTime:      time.Since(start),
		PrimarySize:   int64(len(raw)),
	}
	logger.Info("schema bundle loaded",
		"primary", cfg.primary,
		"secondary", secondaryPath,
		"rewrites", len(rewritten.Records),
		"duration", bundle.LoadTime)
	return bundle, nil
}

// classifyCompileError maps a compilation failure onto the error
// taxonomy. Policy blocks and missing files surface as unresolved
// imports; everything else means the schema source itself is bad.
func classifyCompileError(err error, primaryPath string, records []RewriteRecord) error {
	var blocked *securefs.BlockedError
	if errors.As(err, &blocked) {
		return &xsderrors.UnresolvedImportError{
			Namespace: importNamespace(records),
			Location:  blocked.Name,
			IsBlocked: true,
			Message:   blocked.Reason,
			Cause:     err,
		}
	}

	var pathErr *fs.PathError
	if errors.As(err, &pathErr) && errors.Is(err, fs.ErrNotExist) {
		return &xsderrors.UnresolvedImportError{
			Namespace: importNamespace(records),
			Location:  pathErr.Path,
			Message:   "schema dependency is absent from the schema directory",
			Cause:     err,
		}
	}

	return &xsderrors.MalformedSchemaError{
		Path:    primaryPath,
		Message: "schema compilation failed",
		Cause:   err,
	}
}

// importNamespace returns the namespace of the first rewritten import,
// if any.
func importNamespace(records []RewriteRecord) string {
	for _, rec := range records {
		if rec.Tag == "import" {
			return rec.Namespace
		}
	}
	return ""
}

// displayPath joins dir and name for error messages only. Resolution
// itself always goes through the confined filesystem.
func displayPath(dir, name string) string {
	if dir == "" {
		return name
	}
	return filepath.Join(dir, name)
}
