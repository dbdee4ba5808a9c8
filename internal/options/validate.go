// Package options provides shared utilities for option validation across packages.
package options

import "github.com/erraggy/oasnullable/oaserrors"

// ValidateSingleInputSource ensures exactly one input source is specified.
// option names the setting in the returned error (e.g. "input").
// sources is a variadic list of booleans indicating whether each source is set.
// noSourceMsg is the error message when no source is specified.
// multiSourceMsg is the error message when multiple sources are specified.
func ValidateSingleInputSource(option, noSourceMsg, multiSourceMsg string, sources ...bool) error {
	sourceCount := 0
	for _, hasSource := range sources {
		if hasSource {
			sourceCount++
		}
	}

	if sourceCount == 0 {
		return &oaserrors.ConfigError{Option: option, Message: noSourceMsg}
	}
	if sourceCount > 1 {
		return &oaserrors.ConfigError{Option: option, Message: multiSourceMsg}
	}

	return nil
}
