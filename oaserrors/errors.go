package oaserrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrIO indicates reading input or writing output failed.
	ErrIO = errors.New("i/o error")

	// ErrCheck indicates the converted output failed a well-formedness check.
	ErrCheck = errors.New("check failed")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// Display names for the standard streams.
const (
	StdinPath  = "<stdin>"
	StdoutPath = "<stdout>"
)

// IOError represents a failure to read a document or write a converted one.
type IOError struct {
	// Op is the failed operation: "read" or "write"
	Op string
	// Path is the file path, or StdinPath/StdoutPath for the standard streams
	Path string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *IOError) Error() string {
	op := e.Op
	if op == "" {
		op = "i/o"
	}
	msg := op + " error"
	if e.Path != "" {
		msg += " on " + e.Path
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *IOError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *IOError) Is(target error) bool {
	return target == ErrIO
}

// CheckError reports that converted output could not be decoded as YAML.
type CheckError struct {
	// Line is the 1-based line number reported by the decoder (0 if unknown)
	Line int
	// Column is the 1-based column number reported by the decoder (0 if unknown)
	Column int
	// Message describes the failure
	Message string
	// Cause is the underlying decoder error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *CheckError) Error() string {
	msg := "yaml check failed"
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
		if e.Column > 0 {
			msg += fmt.Sprintf(", column %d", e.Column)
		}
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *CheckError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *CheckError) Is(target error) bool {
	return target == ErrCheck
}

// ConfigError represents an invalid configuration or input.
// This includes invalid options, missing required inputs, and conflicting settings.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
