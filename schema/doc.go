// Package schema loads and compiles the FSA029 regulatory schema pair
// for offline validation.
//
// The regulator distributes the balance sheet schema (FSA029-Schema.xsd)
// with an import of a shared common types schema whose declared location
// matches the publishing layout, not the user's disk. This package reads
// the pair from a single directory, rewrites the import location in
// memory, and compiles the result through a filesystem confined to that
// directory. No network access happens at any point, DOCTYPE
// declarations are refused, and the files on disk are never modified.
//
// # Quick Start
//
//	bundle, err := schema.Load("schemas")
//	if err != nil {
//	    log.Fatalf("schema load failed: %v", err)
//	}
//	fmt.Printf("loaded %s with %d rewrites\n", bundle.PrimaryPath, len(bundle.Rewrites))
//
// Use LoadWithOptions to override file names or attach a logger:
//
//	bundle, err := schema.LoadWithOptions(
//	    schema.WithDir("schemas"),
//	    schema.WithPrimary("FSA029-Schema.xsd"),
//	    schema.WithSecondary("CommonTypes-Schema.xsd"),
//	    schema.WithLogger(schema.NewSlogAdapter(slog.Default())),
//	)
//
// Load failures are classified by the xsderrors package: check them with
// errors.Is against xsderrors.ErrForbiddenPath, xsderrors.ErrMissingFile,
// xsderrors.ErrMalformedSchema, and xsderrors.ErrUnresolvedImport, or
// match the xsderrors.ErrSchemaLoad umbrella.
package schema
