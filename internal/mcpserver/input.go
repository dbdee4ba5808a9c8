package mcpserver

import (
	"fmt"
	"os"

	"github.com/erraggy/oasnullable/nullable"
)

// specInput represents the two ways a document can be provided to a tool.
// Exactly one of File or Content must be set.
type specInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to an OpenAPI 3.0 YAML file on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline OpenAPI 3.0 YAML document content"`
}

// option returns the nullable input option for whichever source was provided,
// enforcing the configured size limit on both.
func (s specInput) option() (nullable.Option, error) {
	count := 0
	if s.File != "" {
		count++
	}
	if s.Content != "" {
		count++
	}
	if count != 1 {
		return nil, fmt.Errorf("exactly one of file or content must be provided (got %d)", count)
	}

	if s.Content != "" {
		if int64(len(s.Content)) > cfg.MaxInputSize {
			return nil, fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; set OASNULLABLE_MAX_INPUT_SIZE to increase",
				len(s.Content), cfg.MaxInputSize)
		}
		return nullable.WithText(s.Content), nil
	}

	info, err := os.Stat(s.File)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.File, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", s.File)
	}
	if info.Size() > cfg.MaxInputSize {
		return nil, fmt.Errorf("file size %d bytes exceeds maximum %d bytes; set OASNULLABLE_MAX_INPUT_SIZE to increase",
			info.Size(), cfg.MaxInputSize)
	}
	return nullable.WithFilePath(s.File), nil
}
