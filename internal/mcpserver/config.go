package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded from environment variables via loadConfig() when the server starts.
type serverConfig struct {
	// Convert tool defaults, used when a call leaves the field unset.
	IncludeInfo bool
	Check       bool

	// MaxInputSize bounds inline content and file size, in bytes.
	MaxInputSize int64
}

const defaultMaxInputSize = 10 * 1024 * 1024

// cfg is the active server configuration. Run replaces it with a fresh
// loadConfig() so variables loaded from an env file are honored.
var cfg = loadConfig()

// loadConfig reads configuration from OASNULLABLE_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		IncludeInfo:  envBool("OASNULLABLE_INCLUDE_INFO", true),
		Check:        envBool("OASNULLABLE_CHECK", false),
		MaxInputSize: int64(envInt("OASNULLABLE_MAX_INPUT_SIZE", defaultMaxInputSize)),
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return n
}
