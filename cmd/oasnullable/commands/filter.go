package commands

import (
	"io"

	"github.com/erraggy/oasnullable/nullable"
	"github.com/erraggy/oasnullable/oaserrors"
)

// HandleFilter reads all of standard input, converts it, and writes the
// result to standard output. It takes no flags.
func HandleFilter() error {
	return Filter(StdStreams())
}

// Filter converts everything read from s.In and writes it to s.Out.
func Filter(s Streams) error {
	data, err := io.ReadAll(s.In)
	if err != nil {
		return &oaserrors.IOError{Op: "read", Path: oaserrors.StdinPath, Cause: err}
	}
	if _, err := io.WriteString(s.Out, nullable.Convert(string(data))); err != nil {
		return &oaserrors.IOError{Op: "write", Path: oaserrors.StdoutPath, Cause: err}
	}
	return nil
}
