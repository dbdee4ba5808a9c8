package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/erraggy/oasnullable"
	"github.com/erraggy/oasnullable/internal/cliutil"
	"github.com/erraggy/oasnullable/nullable"
	"github.com/erraggy/oasnullable/oaserrors"
)

// ConvertFlags contains flags for the convert command
type ConvertFlags struct {
	Output  string
	Format  string
	Check   bool
	Strict  bool
	NoInfo  bool
	Quiet   bool
	Verbose bool
}

// SetupConvertFlags creates and configures a FlagSet for the convert command.
// Returns the FlagSet and a ConvertFlags struct with bound flag variables.
func SetupConvertFlags() (*flag.FlagSet, *ConvertFlags) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	flags := &ConvertFlags{}

	fs.StringVar(&flags.Output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Format, "format", FormatText, "diagnostics format: text, json, or yaml")
	fs.BoolVar(&flags.Check, "check", false, "fail if the converted output is not well-formed YAML")
	fs.BoolVar(&flags.Strict, "strict", false, "fail if any nullable declaration was left unconverted or a line was dropped")
	fs.BoolVar(&flags.NoInfo, "no-info", false, "suppress info messages")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output the document, no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output the document, no diagnostic messages")
	fs.BoolVar(&flags.Verbose, "v", false, "log every conversion to stderr")
	fs.BoolVar(&flags.Verbose, "verbose", false, "log every conversion to stderr")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: oasnullable convert [flags] [file|-]\n\n")
		cliutil.Writef(fs.Output(), "Rewrite OpenAPI 3.0 'nullable: true' schemas as OpenAPI 3.1 type arrays.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  oasnullable convert openapi.yaml -o openapi-3.1.yaml\n")
		cliutil.Writef(fs.Output(), "  oasnullable convert --check --strict openapi.yaml\n")
		cliutil.Writef(fs.Output(), "  oasnullable convert --format json openapi.yaml > /dev/null\n")
		cliutil.Writef(fs.Output(), "  cat openapi.yaml | oasnullable convert -q - > openapi-3.1.yaml\n")
		cliutil.Writef(fs.Output(), "\nNotes:\n")
		cliutil.Writef(fs.Output(), "  - The input is read from stdin when no file is given or the file is '-'\n")
		cliutil.Writef(fs.Output(), "  - Diagnostics go to stderr; the converted document goes to stdout or --output\n")
		cliutil.Writef(fs.Output(), "  - A nullable flag more than 4 lines below its type line is not converted\n")
		cliutil.Writef(fs.Output(), "\nExit Codes:\n")
		cliutil.Writef(fs.Output(), "  0    Conversion successful\n")
		cliutil.Writef(fs.Output(), "  1    I/O failure, failed --check, or warnings in --strict mode\n")
	}

	return fs, flags
}

// HandleConvert executes the convert command
func HandleConvert(args []string) error {
	return RunConvert(args, StdStreams())
}

// RunConvert executes the convert command against the given streams.
func RunConvert(args []string, s Streams) error {
	fs, flags := SetupConvertFlags()
	fs.SetOutput(s.Err)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() > 1 {
		fs.Usage()
		return fmt.Errorf("convert command accepts at most one file path or '-' for stdin")
	}

	specPath := StdinFilePath
	if fs.NArg() == 1 {
		specPath = fs.Arg(0)
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}
	if flags.Output != "" && specPath != StdinFilePath {
		if err := cliutil.ValidateOutputPath(flags.Output, specPath); err != nil {
			return err
		}
	}

	opts := []nullable.Option{
		nullable.WithIncludeInfo(!flags.NoInfo),
		nullable.WithCheckYAML(flags.Check),
	}
	if specPath == StdinFilePath {
		opts = append(opts, nullable.WithReader(s.In))
	} else {
		opts = append(opts, nullable.WithFilePath(specPath))
	}
	if flags.Verbose {
		handler := slog.NewTextHandler(s.Err, &slog.HandlerOptions{Level: slog.LevelDebug})
		opts = append(opts, nullable.WithLogger(nullable.NewSlogAdapter(slog.New(handler))))
	}

	startTime := time.Now()
	result, err := nullable.ConvertWithOptions(opts...)
	if err != nil {
		return fmt.Errorf("converting %s: %w", FormatSpecPath(specPath), err)
	}
	totalTime := time.Since(startTime)

	if !flags.Quiet {
		if err := writeConvertReport(s.Err, flags.Format, specPath, result, totalTime); err != nil {
			return err
		}
	}

	if flags.Output != "" {
		if err := cliutil.WriteFile(flags.Output, []byte(result.Output)); err != nil {
			return fmt.Errorf("writing output file: %w", err)
		}
		if !flags.Quiet && flags.Format == FormatText {
			cliutil.Writef(s.Err, "\nOutput written to: %s\n", flags.Output)
		}
	} else if _, err := io.WriteString(s.Out, result.Output); err != nil {
		return fmt.Errorf("writing converted document: %w",
			&oaserrors.IOError{Op: "write", Path: oaserrors.StdoutPath, Cause: err})
	}

	if result.Checked && !result.ValidYAML {
		return fmt.Errorf("converted output of %s is not well-formed YAML", FormatSpecPath(specPath))
	}
	if flags.Strict && result.HasWarnings() {
		return fmt.Errorf("conversion of %s produced %d warning(s) in strict mode",
			FormatSpecPath(specPath), result.WarningCount)
	}

	return nil
}

// convertReport is the structured form of the diagnostics report.
type convertReport struct {
	Version         string           `json:"version" yaml:"version"`
	Specification   string           `json:"specification" yaml:"specification"`
	Lines           int              `json:"lines" yaml:"lines"`
	Conversions     int              `json:"conversions" yaml:"conversions"`
	FormatsRetained int              `json:"formats_retained" yaml:"formats_retained"`
	DroppedLines    int              `json:"dropped_lines" yaml:"dropped_lines"`
	Checked         bool             `json:"checked" yaml:"checked"`
	ValidYAML       bool             `json:"valid_yaml" yaml:"valid_yaml"`
	InfoCount       int              `json:"info_count" yaml:"info_count"`
	WarningCount    int              `json:"warning_count" yaml:"warning_count"`
	ErrorCount      int              `json:"error_count" yaml:"error_count"`
	Issues          []nullable.Issue `json:"issues,omitempty" yaml:"issues,omitempty"`
}

func writeConvertReport(w io.Writer, format, specPath string, result *nullable.Result, totalTime time.Duration) error {
	if format != FormatText {
		return OutputStructured(w, convertReport{
			Version:         oasnullable.Version(),
			Specification:   FormatSpecPath(specPath),
			Lines:           result.Lines,
			Conversions:     result.Conversions,
			FormatsRetained: result.FormatsRetained,
			DroppedLines:    result.DroppedLines,
			Checked:         result.Checked,
			ValidYAML:       result.ValidYAML,
			InfoCount:       result.InfoCount,
			WarningCount:    result.WarningCount,
			ErrorCount:      result.ErrorCount,
			Issues:          result.Issues,
		}, format)
	}

	cliutil.Writef(w, "OpenAPI Nullable Converter\n")
	cliutil.Writef(w, "==========================\n\n")
	cliutil.Writef(w, "oasnullable version: %s\n", oasnullable.Version())
	cliutil.Writef(w, "Specification: %s\n", FormatSpecPath(specPath))
	cliutil.Writef(w, "Lines: %d\n", result.Lines)
	cliutil.Writef(w, "Conversions: %d (%d with format)\n", result.Conversions, result.FormatsRetained)
	if result.DroppedLines > 0 {
		cliutil.Writef(w, "Dropped Lines: %d\n", result.DroppedLines)
	}
	cliutil.Writef(w, "Total Time: %v\n\n", totalTime)

	if len(result.Issues) > 0 {
		cliutil.Writef(w, "Conversion Issues (%d):\n", len(result.Issues))
		for _, issue := range result.Issues {
			cliutil.Writef(w, "  %s\n", issue.String())
		}
		cliutil.Writef(w, "\n")
	}

	switch {
	case result.HasErrors():
		cliutil.Writef(w, "✗ Conversion produced %d error(s)\n", result.ErrorCount)
	case result.HasWarnings():
		cliutil.Writef(w, "⚠ Conversion completed with %d warning(s)\n", result.WarningCount)
	default:
		cliutil.Writef(w, "✓ Conversion successful")
		if result.InfoCount > 0 {
			cliutil.Writef(w, " (%d info)", result.InfoCount)
		}
		cliutil.Writef(w, "\n")
	}
	return nil
}
