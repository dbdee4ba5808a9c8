// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes the nullable converter as an MCP tool over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/erraggy/oasnullable"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `oasnullable MCP server: rewrites OpenAPI 3.0 "nullable: true" schemas as OpenAPI 3.1 type arrays, e.g. type: [string, "null"].

The conversion is textual. Comments, key order and formatting are preserved; only a nested "type:" line followed within 4 lines by a same-indent "nullable: true" is rewritten. Unconverted nullable declarations are reported as warnings.

Configuration: defaults are configurable via OASNULLABLE_* environment variables set in your MCP client config.
- OASNULLABLE_INCLUDE_INFO (default: true) - report every conversion as an info issue
- OASNULLABLE_CHECK (default: false) - verify the converted output is well-formed YAML
- OASNULLABLE_MAX_INPUT_SIZE (default: 10485760) - maximum input size in bytes`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	cfg = loadConfig()

	server := mcp.NewServer(
		&mcp.Implementation{Name: "oasnullable", Version: oasnullable.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "convert_nullable",
		Description: "Convert an OpenAPI 3.0 YAML document's nullable schemas to OpenAPI 3.1 type arrays. Provide exactly one of spec.file or spec.content. Returns conversion statistics, warnings for nullable declarations that were left unconverted, and the converted document (or writes it to output). Use check=true to verify the result is well-formed YAML.",
	}, handleConvertNullable)
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
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
