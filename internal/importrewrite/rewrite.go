// Package importrewrite rewrites schema import locations in memory so a
// loader resolves them inside the local schema directory.
//
// Regulator-published schemas declare dependency locations that match the
// publishing layout ("../../CommonTypes/v14/CommonTypes-Schema.xsd",
// absolute paths, or URLs), none of which exist on the user's machine.
// Rewrite is a pure function from raw schema source to rewritten source;
// it performs no I/O, so the files on disk are never modified and
// repeated runs are always safe.
package importrewrite

import (
	"bytes"
	"path"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/fsatools/fsatools/internal/pathguard"
)

// xsNamespace is the XML Schema definition namespace.
const xsNamespace = "http://www.w3.org/2001/XMLSchema"

// rewritableTags are the XSD elements that pull in other schema files via
// a schemaLocation attribute.
var rewritableTags = map[string]bool{
	"import":   true,
	"include":  true,
	"redefine": true,
}

// Record describes one rewritten declaration.
type Record struct {
	// Tag is the declaration kind: "import", "include", or "redefine"
	Tag string
	// Namespace is the declared namespace attribute (imports only)
	Namespace string
	// From is the location as declared in the source
	From string
	// To is the location after rewriting
	To string
}

// Result holds the rewritten source and the rewrites that produced it.
type Result struct {
	// Source is the rewritten schema document
	Source []byte
	// Records lists each rewritten declaration in document order
	Records []Record
	// Declarations counts every import, include, and redefine carrying
	// a schemaLocation, rewritten or not. Zero means the schema is
	// self-contained.
	Declarations int
	// Imports counts the import declarations among Declarations. Only
	// imports are redirected at the shared secondary file; includes and
	// redefines resolve to their own base names.
	Imports int
}

// Rewrite parses src as an XSD document and rewrites the schemaLocation
// attribute of every import, include, and redefine declaration so that it
// resolves to a file colocated with the primary schema. Import
// declarations are pointed at secondaryName (the common-types dependency);
// include and redefine declarations keep their own base file name. All
// declarations targeting the same namespace therefore collapse to the
// same resolved location.
//
// A source with no such declarations is returned unchanged with an empty
// Records slice: the schema may be self-contained.
//
// After rewriting, every location is re-checked against the forbidden
// legacy segment; a surviving match fails with a ForbiddenPathError.
func Rewrite(src []byte, secondaryName string) (*Result, error) {
	doc, err := xmlquery.Parse(bytes.NewReader(src))
	if err != nil {
		return nil, err
	}

	var records []Record
	declarations, imports := 0, 0
	for _, node := range collectDeclarations(doc) {
		loc := node.SelectAttr("schemaLocation")
		if loc == "" {
			continue
		}
		declarations++

		target := baseName(loc)
		if node.Data == "import" {
			imports++
			if secondaryName != "" {
				target = secondaryName
			}
		}
		if target == loc {
			continue
		}

		node.SetAttr("schemaLocation", target)
		records = append(records, Record{
			Tag:       node.Data,
			Namespace: node.SelectAttr("namespace"),
			From:      loc,
			To:        target,
		})
	}

	if len(records) == 0 {
		return &Result{Source: src, Declarations: declarations, Imports: imports}, nil
	}

	// Defensive re-check: no rewritten location may still reference the
	// deprecated lineage.
	for _, node := range collectDeclarations(doc) {
		if loc := node.SelectAttr("schemaLocation"); loc != "" {
			if err := pathguard.Check(loc); err != nil {
				return nil, err
			}
		}
	}

	return &Result{
		Source:       []byte(doc.OutputXML(true)),
		Records:      records,
		Declarations: declarations,
		Imports:      imports,
	}, nil
}

// collectDeclarations returns every xs:import, xs:include, and
// xs:redefine element in document order.
func collectDeclarations(doc *xmlquery.Node) []*xmlquery.Node {
	var nodes []*xmlquery.Node
	var walk func(n *xmlquery.Node)
	walk = func(n *xmlquery.Node) {
		if n.Type == xmlquery.ElementNode &&
			n.NamespaceURI == xsNamespace &&
			rewritableTags[n.Data] {
			nodes = append(nodes, n)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)
	return nodes
}

// baseName extracts the file name from a location that may use forward
// slashes, backslashes, or be URL-shaped.
func baseName(loc string) string {
	return path.Base(strings.ReplaceAll(loc, `\`, "/"))
}
