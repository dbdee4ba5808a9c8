package nullable

import (
	"errors"
	"io"
	"os"

	"github.com/erraggy/oasnullable/internal/options"
	"github.com/erraggy/oasnullable/oaserrors"
)

// Option is a function that configures a conversion operation
type Option func(*convertConfig) error

// convertConfig holds configuration for a conversion operation
type convertConfig struct {
	// Input sources (exactly one must be set)
	text     *string
	reader   io.Reader
	filePath *string

	// Configuration options
	includeInfo bool
	checkYAML   bool
	logger      Logger
}

// ConvertWithOptions converts a document using functional options.
// This provides a flexible, extensible API that combines input source selection
// and configuration in a single function call.
//
// Example:
//
//	result, err := nullable.ConvertWithOptions(
//	    nullable.WithFilePath("openapi-3.0.yaml"),
//	    nullable.WithCheckYAML(true),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%d conversion(s)\n", result.Conversions)
//
// Errors are limited to invalid options ([oaserrors.ConfigError]) and input
// that cannot be read ([oaserrors.IOError]); the conversion itself never fails.
func ConvertWithOptions(opts ...Option) (*Result, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, err
	}

	var text, sourcePath string
	switch {
	case cfg.text != nil:
		text = *cfg.text
	case cfg.reader != nil:
		data, err := io.ReadAll(cfg.reader)
		if err != nil {
			return nil, &oaserrors.IOError{Op: "read", Cause: err}
		}
		text = string(data)
	default:
		sourcePath = *cfg.filePath
		data, err := os.ReadFile(sourcePath)
		if err != nil {
			return nil, &oaserrors.IOError{Op: "read", Path: sourcePath, Cause: err}
		}
		text = string(data)
	}

	c := &Converter{
		IncludeInfo: cfg.includeInfo,
		Logger:      cfg.logger,
	}
	if sourcePath != "" {
		c.Logger = c.Logger.With("file", sourcePath)
	}
	result := c.Convert(text)
	result.SourcePath = sourcePath
	for i := range result.Issues {
		result.Issues[i].File = sourcePath
	}

	if cfg.checkYAML {
		result.Checked = true
		result.ValidYAML = true
		if err := CheckYAML(result.Output); err != nil {
			result.ValidYAML = false
			issue := Issue{
				Message:  "converted output is not well-formed YAML",
				Severity: SeverityError,
				Context:  err.Error(),
				File:     sourcePath,
			}
			var checkErr *oaserrors.CheckError
			if errors.As(err, &checkErr) {
				issue.Line = checkErr.Line
			}
			result.Issues = append(result.Issues, issue)
			updateCounts(result)
		}
	}

	return result, nil
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*convertConfig, error) {
	cfg := &convertConfig{
		includeInfo: true,
		logger:      NopLogger{},
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.ValidateSingleInputSource("input",
		"must specify an input source (use WithText, WithReader, or WithFilePath)",
		"must specify exactly one input source",
		cfg.text != nil, cfg.reader != nil, cfg.filePath != nil,
	); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithText specifies the document text to convert
func WithText(text string) Option {
	return func(cfg *convertConfig) error {
		cfg.text = &text
		return nil
	}
}

// WithReader specifies a reader that is read to completion before converting
func WithReader(r io.Reader) Option {
	return func(cfg *convertConfig) error {
		if r == nil {
			return &oaserrors.ConfigError{Option: "reader", Message: "reader cannot be nil"}
		}
		cfg.reader = r
		return nil
	}
}

// WithFilePath specifies a file to read the document from
func WithFilePath(path string) Option {
	return func(cfg *convertConfig) error {
		if path == "" {
			return &oaserrors.ConfigError{Option: "file path", Message: "file path cannot be empty"}
		}
		cfg.filePath = &path
		return nil
	}
}

// WithIncludeInfo enables or disables informational messages
// Default: true
func WithIncludeInfo(enabled bool) Option {
	return func(cfg *convertConfig) error {
		cfg.includeInfo = enabled
		return nil
	}
}

// WithCheckYAML checks that the converted output is well-formed YAML.
// A failed check is reported as an error issue, not as a returned error.
// Default: false
func WithCheckYAML(enabled bool) Option {
	return func(cfg *convertConfig) error {
		cfg.checkYAML = enabled
		return nil
	}
}

// WithLogger sets the logger for conversion diagnostics.
// Passing nil restores the default no-op logger.
func WithLogger(logger Logger) Option {
	return func(cfg *convertConfig) error {
		if logger == nil {
			logger = NopLogger{}
		}
		cfg.logger = logger
		return nil
	}
}
