package main

import (
	"fmt"
	"os"

	"github.com/fsatools/fsatools"
	"github.com/fsatools/fsatools/cmd/fsatools/commands"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) < 1 {
		printUsage()
		return commands.ExitUsage
	}

	switch command := args[0]; command {
	case "version", "-v", "--version":
		fmt.Printf("fsatools v%s\n", fsatools.Version())
		return commands.ExitOK
	case "help", "-h", "--help":
		printUsage()
		return commands.ExitOK
	case "validate":
		return commands.HandleValidate(args[1:])
	case "mcp":
		if err := commands.HandleMCP(args[1:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return commands.ExitUsage
		}
		return commands.ExitOK
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		return commands.ExitUsage
	}
}

func printUsage() {
	fmt.Println(`fsatools - secure offline validation of FSA029 regulatory submissions

Usage:
  fsatools <command> [flags] [arguments]

Commands:
  validate    Validate an FSA029 submission against the schema pair in a directory
  mcp         Start an MCP server over stdio exposing the validate and schema_info tools
  version     Show version information
  help        Show this help message

Run 'fsatools <command> -h' for command-specific flags.

Examples:
  fsatools validate schemas FSA029-Sample-Valid.xml
  fsatools validate --format json schemas return.xml
  fsatools mcp

Exit Codes:
  0    Submission conforms to the schema
  1    Submission has schema violations
  2    Forbidden path or invalid invocation
  3    Schema could not be loaded
  4    Submission could not be loaded`)
}
