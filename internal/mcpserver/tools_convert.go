package mcpserver

import (
	"context"
	"fmt"

	"github.com/erraggy/oasnullable/internal/cliutil"
	"github.com/erraggy/oasnullable/nullable"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type convertInput struct {
	Spec        specInput `json:"spec"                   jsonschema:"The OpenAPI 3.0 YAML document to convert"`
	Output      string    `json:"output,omitempty"       jsonschema:"File path to write the converted document. If omitted the document is returned inline."`
	Check       *bool     `json:"check,omitempty"        jsonschema:"Verify the converted output is well-formed YAML. Defaults to OASNULLABLE_CHECK."`
	IncludeInfo *bool     `json:"include_info,omitempty" jsonschema:"Report every conversion as an info issue. Defaults to OASNULLABLE_INCLUDE_INFO."`
}

type convertIssue struct {
	Severity string `json:"severity"`
	Line     int    `json:"line,omitempty"`
	Field    string `json:"field,omitempty"`
	Message  string `json:"message"`
	Context  string `json:"context,omitempty"`
}

type convertOutput struct {
	Conversions     int            `json:"conversions"`
	FormatsRetained int            `json:"formats_retained"`
	DroppedLines    int            `json:"dropped_lines"`
	Lines           int            `json:"lines"`
	Changed         bool           `json:"changed"`
	IssueCount      int            `json:"issue_count"`
	Issues          []convertIssue `json:"issues,omitempty"`
	ValidYAML       *bool          `json:"valid_yaml,omitempty"`
	WrittenTo       string         `json:"written_to,omitempty"`
	Document        string         `json:"document,omitempty"`
}

func handleConvertNullable(_ context.Context, _ *mcp.CallToolRequest, input convertInput) (*mcp.CallToolResult, convertOutput, error) {
	opts, err := buildConvertOptions(input)
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	if input.Output != "" && input.Spec.File != "" {
		if err := cliutil.ValidateOutputPath(input.Output, input.Spec.File); err != nil {
			return errResult(err), convertOutput{}, nil
		}
	}

	result, err := nullable.ConvertWithOptions(opts...)
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	output := convertOutput{
		Conversions:     result.Conversions,
		FormatsRetained: result.FormatsRetained,
		DroppedLines:    result.DroppedLines,
		Lines:           result.Lines,
		Changed:         result.Changed(),
		IssueCount:      len(result.Issues),
	}
	if result.Checked {
		valid := result.ValidYAML
		output.ValidYAML = &valid
	}

	output.Issues = makeSlice[convertIssue](len(result.Issues))
	for _, issue := range result.Issues {
		output.Issues = append(output.Issues, convertIssue{
			Severity: issue.Severity.String(),
			Line:     issue.Line,
			Field:    issue.Field,
			Message:  issue.Message,
			Context:  issue.Context,
		})
	}

	if input.Output != "" {
		if err := cliutil.WriteFile(input.Output, []byte(result.Output)); err != nil {
			return errResult(fmt.Errorf("failed to write output file: %w", err)), convertOutput{}, nil
		}
		output.WrittenTo = input.Output
	} else {
		output.Document = result.Output
	}

	return nil, output, nil
}

// buildConvertOptions translates the MCP input into nullable options,
// filling unset fields from the server configuration.
func buildConvertOptions(input convertInput) ([]nullable.Option, error) {
	source, err := input.Spec.option()
	if err != nil {
		return nil, err
	}

	includeInfo := cfg.IncludeInfo
	if input.IncludeInfo != nil {
		includeInfo = *input.IncludeInfo
	}
	check := cfg.Check
	if input.Check != nil {
		check = *input.Check
	}

	return []nullable.Option{
		source,
		nullable.WithIncludeInfo(includeInfo),
		nullable.WithCheckYAML(check),
	}, nil
}
