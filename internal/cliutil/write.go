// Package cliutil provides utilities for CLI operations.
package cliutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/erraggy/oasnullable/oaserrors"
)

// OwnerReadWrite is the file permission mode for converted documents
// containing potentially sensitive API data (owner read/write only).
const OwnerReadWrite os.FileMode = 0o600

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr (useful for debugging).
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// ValidateOutputPath checks that writing to outputPath would not overwrite
// any of the input files.
func ValidateOutputPath(outputPath string, inputPaths ...string) error {
	absOutputPath, err := filepath.Abs(outputPath)
	if err != nil {
		return &oaserrors.ConfigError{Option: "output", Value: outputPath, Message: "invalid output path", Cause: err}
	}

	for _, inputPath := range inputPaths {
		absInputPath, err := filepath.Abs(inputPath)
		if err != nil {
			return &oaserrors.ConfigError{Option: "input", Value: inputPath, Message: "invalid input path", Cause: err}
		}
		if absOutputPath == absInputPath {
			return &oaserrors.ConfigError{
				Option:  "output",
				Value:   outputPath,
				Message: fmt.Sprintf("would overwrite input file %s", inputPath),
			}
		}
	}

	return nil
}

// RejectSymlinkOutput checks if the output path is a symlink and returns an error if so.
// This prevents symlink attacks where a symlink could redirect output to an unintended location.
func RejectSymlinkOutput(path string) error {
	info, err := os.Lstat(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return &oaserrors.IOError{Op: "stat", Path: path, Cause: err}
	}
	if info.Mode()&os.ModeSymlink != 0 {
		return &oaserrors.ConfigError{Option: "output", Value: path, Message: "refusing to write to symlink"}
	}
	return nil
}

// WriteFile writes data to path with OwnerReadWrite permissions after
// rejecting symlinked destinations.
func WriteFile(path string, data []byte) error {
	cleaned := filepath.Clean(path)
	if err := RejectSymlinkOutput(cleaned); err != nil {
		return err
	}
	if err := os.WriteFile(cleaned, data, OwnerReadWrite); err != nil {
		return &oaserrors.IOError{Op: "write", Path: path, Cause: err}
	}
	return nil
}
