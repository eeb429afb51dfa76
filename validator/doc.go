// Package validator checks FSA029 submission documents against a
// compiled schema bundle and reports every schema violation with its
// line and column.
//
// Validation never stops at the first problem: a submission with ten
// violations reports all ten, in document order, so a filer can fix a
// whole return in one pass. Schema violations are data, not errors; the
// error return is reserved for submissions that cannot be checked at
// all, such as missing files, XML that does not parse, or documents
// carrying DOCTYPE declarations.
//
// # Quick Start
//
//	bundle, err := schema.Load("schemas")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := validator.Validate(bundle, "FSA029-Sample-Valid.xml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if result.Conformant {
//	    fmt.Println("submission conforms")
//	} else {
//	    for _, v := range result.Violations {
//	        fmt.Println(v.Display())
//	    }
//	}
package validator
