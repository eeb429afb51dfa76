package commands

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/fsatools/fsatools/internal/mcpserver"
)

// SetupMCPFlags creates and configures a FlagSet for the mcp command.
func SetupMCPFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: fsatools mcp\n\n")
		Writef(fs.Output(), "Start an MCP (Model Context Protocol) server over stdio exposing the\n")
		Writef(fs.Output(), "validate and schema_info tools. Defaults are configured via FSATOOLS_*\n")
		Writef(fs.Output(), "environment variables:\n\n")
		Writef(fs.Output(), "  FSATOOLS_PRIMARY          primary schema file name (default FSA029-Schema.xsd)\n")
		Writef(fs.Output(), "  FSATOOLS_SECONDARY        secondary schema file name (default CommonTypes-Schema.xsd)\n")
		Writef(fs.Output(), "  FSATOOLS_VIOLATION_LIMIT  max violations returned per call (default 100)\n")
	}

	return fs
}

// HandleMCP executes the mcp command: it blocks serving MCP over stdio
// until the client disconnects or the process receives SIGINT/SIGTERM.
func HandleMCP(args []string) error {
	fs := SetupMCPFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return errors.New("mcp command takes no arguments")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := mcpserver.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
