package mcpserver

import (
	"bytes"
	"context"
	"io/fs"
	"path"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/fsatools/fsatools/internal/pathguard"
	"github.com/fsatools/fsatools/internal/securefs"
	"github.com/fsatools/fsatools/internal/xmlguard"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type schemaInfoInput struct {
	SchemaDir string `json:"schema_dir"          jsonschema:"Directory containing the schema pair"`
	Primary   string `json:"primary,omitempty"   jsonschema:"Primary schema file name (default FSA029-Schema.xsd, configurable via FSATOOLS_PRIMARY)"`
	Secondary string `json:"secondary,omitempty" jsonschema:"Secondary schema file name imports would resolve to (default CommonTypes-Schema.xsd, configurable via FSATOOLS_SECONDARY)"`
}

type declarationOutput struct {
	Tag        string `json:"tag"`
	Namespace  string `json:"namespace,omitempty"`
	Location   string `json:"location"`
	ResolvesTo string `json:"resolves_to"`
}

type schemaInfoOutput struct {
	Primary         string              `json:"primary"`
	TargetNamespace string              `json:"target_namespace"`
	SelfContained   bool                `json:"self_contained"`
	Declarations    []declarationOutput `json:"declarations,omitempty"`
}

func handleSchemaInfo(_ context.Context, _ *mcp.CallToolRequest, input schemaInfoInput) (*mcp.CallToolResult, schemaInfoOutput, error) {
	primary := cfg.Primary
	if input.Primary != "" {
		primary = input.Primary
	}
	secondary := cfg.Secondary
	if input.Secondary != "" {
		secondary = input.Secondary
	}

	for _, p := range []string{input.SchemaDir, primary, secondary} {
		if err := pathguard.Check(p); err != nil {
			return errResult(err), schemaInfoOutput{}, nil
		}
	}

	src, err := fs.ReadFile(securefs.Dir(input.SchemaDir), primary)
	if err != nil {
		return errResult(err), schemaInfoOutput{}, nil
	}
	if err := xmlguard.Check(src); err != nil {
		return errResult(err), schemaInfoOutput{}, nil
	}

	doc, err := xmlquery.Parse(bytes.NewReader(src))
	if err != nil {
		return errResult(err), schemaInfoOutput{}, nil
	}

	output := schemaInfoOutput{Primary: primary}
	if root := xmlquery.FindOne(doc,
		"//*[local-name()='schema' and namespace-uri()='http://www.w3.org/2001/XMLSchema']"); root != nil {
		output.TargetNamespace = root.SelectAttr("targetNamespace")
	}

	declarations := xmlquery.Find(doc,
		"//*[namespace-uri()='http://www.w3.org/2001/XMLSchema' and (local-name()='import' or local-name()='include' or local-name()='redefine')]")
	for _, node := range declarations {
		loc := node.SelectAttr("schemaLocation")
		if loc == "" {
			continue
		}
		resolved := path.Base(strings.ReplaceAll(loc, `\`, "/"))
		if node.Data == "import" {
			resolved = secondary
		}
		output.Declarations = append(output.Declarations, declarationOutput{
			Tag:        node.Data,
			Namespace:  node.SelectAttr("namespace"),
			Location:   loc,
			ResolvesTo: resolved,
		})
	}
	output.SelfContained = len(output.Declarations) == 0

	return nil, output, nil
}
