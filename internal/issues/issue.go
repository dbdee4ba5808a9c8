// Package issues provides the diagnostic type shared by the converter, the CLI
// and the MCP server.
package issues

import (
	"fmt"

	"github.com/erraggy/oasnullable/internal/severity"
)

// Issue represents a single diagnostic produced while converting a document.
type Issue struct {
	// Line is the 1-based line number in the input document (0 if unknown)
	Line int `json:"line,omitempty" yaml:"line,omitempty"`
	// Field is the key the diagnostic is about: "nullable", "format", "type" or "line"
	Field string `json:"field,omitempty" yaml:"field,omitempty"`
	// Message is a human-readable description of the issue
	Message string `json:"message" yaml:"message"`
	// Severity indicates the severity level of the issue
	Severity severity.Severity `json:"severity" yaml:"severity"`
	// Text is the offending source line, without its line terminator (optional)
	Text string `json:"text,omitempty" yaml:"text,omitempty"`
	// Context provides additional information about the issue (optional)
	Context string `json:"context,omitempty" yaml:"context,omitempty"`
	// File is the source file path (empty for stdin or inline content)
	File string `json:"file,omitempty" yaml:"file,omitempty"`
}

// String returns a formatted string representation of the issue.
// Uses different symbols based on severity level:
// - "✗" for Error severity
// - "⚠" for Warning severity
// - "ℹ" for Info severity
func (i Issue) String() string {
	var symbol string
	switch i.Severity {
	case severity.SeverityError:
		symbol = "✗"
	case severity.SeverityWarning:
		symbol = "⚠"
	case severity.SeverityInfo:
		symbol = "ℹ"
	default:
		symbol = "?"
	}

	location := i.Location()
	if i.Field != "" {
		location = fmt.Sprintf("%s (%s)", location, i.Field)
	}

	var result string
	if location != "" {
		result = fmt.Sprintf("%s %s: %s", symbol, location, i.Message)
	} else {
		result = fmt.Sprintf("%s %s", symbol, i.Message)
	}

	if i.Text != "" {
		result += fmt.Sprintf("\n    Line: %q", i.Text)
	}
	if i.Context != "" {
		result += fmt.Sprintf("\n    Context: %s", i.Context)
	}

	return result
}

// Location returns the source location in IDE-friendly format.
// Returns "file:line" if file is set, "line N" if only the line is known,
// or an empty string otherwise.
func (i Issue) Location() string {
	if i.Line == 0 {
		return i.File
	}
	if i.File != "" {
		return fmt.Sprintf("%s:%d", i.File, i.Line)
	}
	return fmt.Sprintf("line %d", i.Line)
}

// HasLocation returns true if this issue has source location information.
func (i Issue) HasLocation() bool {
	return i.Line > 0
}
