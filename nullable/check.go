package nullable

import (
	"errors"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/erraggy/oasnullable/oaserrors"
	"go.yaml.in/yaml/v4"
)

// yamlLocationRegex extracts the position from a decoder error message.
var yamlLocationRegex = regexp.MustCompile(`line (\d+)(?:, column (\d+))?`)

// CheckYAML reports whether text decodes as a stream of YAML documents.
// It returns nil for empty text and an *oaserrors.CheckError otherwise.
//
// The converter never parses the document, so malformed input or an unusual
// type value copied into a type array can yield output that no longer decodes.
func CheckYAML(text string) error {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	dec := yaml.NewDecoder(strings.NewReader(text))
	for {
		var node yaml.Node
		err := dec.Decode(&node)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return newCheckError(err)
		}
	}
}

func newCheckError(err error) *oaserrors.CheckError {
	checkErr := &oaserrors.CheckError{Cause: err}
	if m := yamlLocationRegex.FindStringSubmatch(err.Error()); m != nil {
		checkErr.Line, _ = strconv.Atoi(m[1])
		if m[2] != "" {
			checkErr.Column, _ = strconv.Atoi(m[2])
		}
	}
	return checkErr
}
