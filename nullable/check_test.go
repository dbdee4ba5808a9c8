package nullable

import (
	"errors"
	"testing"

	"github.com/erraggy/oasnullable/internal/testutil"
	"github.com/erraggy/oasnullable/oaserrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckYAML(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr bool
	}{
		{"empty", "", false},
		{"whitespace only", "\n  \n", false},
		{"converted petstore", testutil.PetstoreOAS31, false},
		{"source petstore", testutil.PetstoreOAS30, false},
		{"multiple documents", "a: 1\n---\nb: [string, \"null\"]\n", false},
		{"unterminated flow sequence", "foo: [bar\n", true},
		{"bad indentation", "a:\n  b: 1\n c: 2\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckYAML(tt.text)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, oaserrors.ErrCheck)

			var checkErr *oaserrors.CheckError
			require.ErrorAs(t, err, &checkErr)
			assert.NotNil(t, checkErr.Cause)
		})
	}
}

func TestNewCheckError(t *testing.T) {
	tests := []struct {
		message string
		line    int
		column  int
	}{
		{"yaml: line 3: mapping values are not allowed in this context", 3, 0},
		{"yaml: line 12, column 4: did not find expected key", 12, 4},
		{"yaml: unexpected end of stream", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			checkErr := newCheckError(errors.New(tt.message))
			assert.Equal(t, tt.line, checkErr.Line)
			assert.Equal(t, tt.column, checkErr.Column)
			assert.Contains(t, checkErr.Error(), tt.message)
		})
	}
}
