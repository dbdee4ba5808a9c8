package main

import (
	"fmt"
	"os"

	"github.com/erraggy/oasnullable"
	"github.com/erraggy/oasnullable/cmd/oasnullable/commands"
	"github.com/erraggy/oasnullable/internal/cliutil"
)

// commandNames lists the subcommands considered for typo suggestions.
var commandNames = []string{"convert", "mcp", "version", "help"}

func main() {
	// Bare invocation is a pure stdin to stdout filter.
	if len(os.Args) < 2 {
		exitOnError(commands.HandleFilter())
		return
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("oasnullable v%s\n", oasnullable.Version())
		fmt.Printf("commit: %s\n", oasnullable.Commit())
		fmt.Printf("built: %s\n", oasnullable.BuildTime())
		fmt.Printf("go: %s\n", oasnullable.GoVersion())
	case "help", "-h", "--help":
		printUsage()
	case "convert":
		exitOnError(commands.HandleConvert(os.Args[2:]))
	case "mcp":
		exitOnError(commands.HandleMCP(os.Args[2:]))
	default:
		cliutil.Writef(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			cliutil.Writef(os.Stderr, "Did you mean: %s?\n", suggestion)
		}
		cliutil.Writef(os.Stderr, "\n")
		printUsage()
		os.Exit(1)
	}
}

func exitOnError(err error) {
	if err != nil {
		cliutil.Writef(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	usage := `oasnullable - OpenAPI 3.0 nullable to OpenAPI 3.1 type array converter

Usage:
  oasnullable < openapi-3.0.yaml > openapi-3.1.yaml
  oasnullable <command> [options]

With no command, the document is read from stdin and the converted
document is written to stdout.

Commands:
  convert     Convert a document with diagnostics, checks and file output
  mcp         Run the MCP server over stdio
  version     Show version information
  help        Show this help message

Examples:
  oasnullable < openapi.yaml > openapi-3.1.yaml
  oasnullable convert --check -o openapi-3.1.yaml openapi.yaml
  oasnullable convert --strict --format json openapi.yaml > /dev/null

Run 'oasnullable <command> --help' for more information on a command.`

	fmt.Println(usage)
}

// suggestCommand returns the command closest to input by edit distance,
// or "" when none is within two edits.
func suggestCommand(input string) string {
	const maxDistance = 2

	best, bestDistance := "", maxDistance+1
	for _, name := range commandNames {
		if d := levenshtein(input, name); d < bestDistance {
			best, bestDistance = name, d
		}
	}
	return best
}

func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}
