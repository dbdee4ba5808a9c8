// Package oasnullable rewrites OpenAPI 3.0 nullable schemas as OpenAPI 3.1
// type arrays.
//
// The module is organised like this:
//
//   - nullable: the converter library (Convert, ConvertWithOptions, CheckYAML)
//   - oaserrors: structured error types shared by the library and the CLI
//   - cmd/oasnullable: the command-line tool
//
// # Nullable Package
//
// The nullable package performs a single line-oriented pass over document text.
// It does not parse YAML, so comments, key order and formatting survive the
// conversion untouched.
//
// Key features:
//   - type/format/nullable groups rewritten as type: [T, "null"]
//   - format lines retained, nullable lines removed
//   - CRLF input round-trips unchanged
//   - diagnostics for nullable declarations that were left unconverted
//   - optional well-formed YAML check of the output
//
// Example:
//
//	result, err := nullable.ConvertWithOptions(
//		nullable.WithFilePath("openapi.yaml"),
//		nullable.WithCheckYAML(true),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("%d conversion(s), %d warning(s)\n", result.Conversions, result.WarningCount)
//
// # Command-Line Tool
//
// Run without arguments, oasnullable is a filter from standard input to
// standard output:
//
//	oasnullable < openapi-3.0.yaml > openapi-3.1.yaml
//
// The convert subcommand adds files, diagnostics and checks:
//
//	oasnullable convert --check -o openapi-3.1.yaml openapi-3.0.yaml
//
// The mcp subcommand serves the converter to MCP clients over stdio.
package oasnullable
