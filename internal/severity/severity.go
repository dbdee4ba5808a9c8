// Package severity provides severity level constants for diagnostics reported
// while converting nullable schemas.
//
// The severity levels are ordered from least to most severe:
// Info < Warning < Error
package severity

// Severity indicates the severity level of a conversion diagnostic.
type Severity int

const (
	// SeverityInfo indicates informational messages about conversions that were made.
	SeverityInfo Severity = iota

	// SeverityWarning indicates text that looks like a nullable declaration but was
	// left unconverted, or lines that a conversion discarded.
	SeverityWarning

	// SeverityError indicates the converted output failed a requested check,
	// such as being well-formed YAML.
	SeverityError
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// MarshalText renders the severity by name in JSON and YAML reports.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
