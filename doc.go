// Package fsatools provides tools for validating FSA029 regulatory
// submissions against the official multi-file XSD schema pair.
//
// Regulators distribute the FSA029 schema as two files: the main
// FSA029-Schema.xsd and a CommonTypes-Schema.xsd dependency. The main
// schema declares the dependency's location with a path that matches the
// regulator's publishing layout rather than the local one, so naive
// validation fails — or worse, resolves schema content over the network.
// fsatools loads both files from a single local directory, rewrites the
// import location in memory (the files on disk are never modified), and
// validates submissions with all external resolution disabled.
//
// # Overview
//
// The library consists of three primary packages:
//
//   - schema: load and compile the FSA029 schema pair securely
//   - validator: validate submission documents against a loaded schema
//   - xsderrors: structured error types for programmatic handling
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/fsatools/fsatools
//
// # Quick Start
//
// Load the schema pair and validate a submission:
//
//	import (
//		"github.com/fsatools/fsatools/schema"
//		"github.com/fsatools/fsatools/validator"
//	)
//
//	bundle, err := schema.Load("schemas")
//	if err != nil {
//		log.Fatal(err)
//	}
//	result, err := validator.Validate(bundle, "FSA029-Sample-Valid.xml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	if !result.Conformant {
//		for _, v := range result.Violations {
//			fmt.Println(v.String())
//		}
//	}
//
// Failure categories are distinguished with errors.Is against the
// sentinels in the xsderrors package, so callers can branch on forbidden
// paths, schema-side load failures, and submission-side load failures
// without parsing message text. The fsatools CLI maps each category to a
// distinct process exit code for the same reason.
package fsatools
