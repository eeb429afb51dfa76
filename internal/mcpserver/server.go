// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes fsatools capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/fsatools/fsatools"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `fsatools MCP server — validates FSA029 regulatory submissions against the published schema pair, fully offline.

Configuration: defaults are configurable via FSATOOLS_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- FSATOOLS_PRIMARY (default: FSA029-Schema.xsd) — primary schema file name
- FSATOOLS_SECONDARY (default: CommonTypes-Schema.xsd) — secondary schema file name imports resolve to
- FSATOOLS_VIOLATION_LIMIT (default: 100) — maximum violations returned per validate call

Security: schemas and submissions are only ever read from the supplied schema directory and submission path. Import locations are rewritten in memory; network fetches, DOCTYPE declarations, and paths referencing the legacy CommonTypes/v14 lineage are refused.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "fsatools", Version: fsatools.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "validate",
		Description: "Validate an FSA029 submission file against the schema pair in a directory. Returns a conformance flag and every schema violation with its 1-based line number. Load failures are categorized: forbidden_path, schema_load, submission_load. Default schema file names are configurable via FSATOOLS_PRIMARY and FSATOOLS_SECONDARY env vars.",
	}, handleValidate)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "schema_info",
		Description: "Inspect the primary schema in a directory without compiling it. Returns the target namespace and every import, include, and redefine declaration with the location it would be rewritten to. Useful for checking what a validate call will resolve before running it.",
	}, handleSchemaInfo)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}

func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}
