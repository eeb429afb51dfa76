package mcpserver

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/fsatools/fsatools/schema"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Default schema file names for tool calls that omit them.
	Primary   string
	Secondary string

	// ViolationLimit caps the number of violations returned per call.
	ViolationLimit int
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from FSATOOLS_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		Primary:        envString("FSATOOLS_PRIMARY", schema.DefaultPrimarySchema),
		Secondary:      envString("FSATOOLS_SECONDARY", schema.DefaultSecondarySchema),
		ViolationLimit: envInt("FSATOOLS_VIOLATION_LIMIT", 100),
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}
