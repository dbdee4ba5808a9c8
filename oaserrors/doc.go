// Package oaserrors provides structured error types for the oasnullable library.
//
// Import path: github.com/erraggy/oasnullable/oaserrors
//
// The nullable conversion itself never fails: text that does not match the
// expected patterns passes through unchanged. The errors in this package come
// from the layers around it: reading and writing documents, checking the
// converted output, and validating options.
//
// # Error Types
//
//   - [IOError]: reading input or writing output failed
//   - [CheckError]: the converted output is not well-formed YAML
//   - [ConfigError]: invalid configuration or input options
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrIO]: Matches any [IOError]
//   - [ErrCheck]: Matches any [CheckError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Usage Examples
//
//	result, err := nullable.ConvertWithOptions(nullable.WithFilePath("api.yaml"))
//	if errors.Is(err, oaserrors.ErrIO) {
//	    // Handle a missing or unreadable file
//	}
//
//	var checkErr *oaserrors.CheckError
//	if errors.As(err, &checkErr) {
//	    fmt.Printf("invalid YAML at line %d\n", checkErr.Line)
//	}
package oaserrors
