package mcpserver

import (
	"strings"
	"testing"

	"github.com/erraggy/oasnullable/internal/testutil"
	"github.com/erraggy/oasnullable/nullable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpecInputOption_ExactlyOne(t *testing.T) {
	_, err := specInput{}.option()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "got 0")

	_, err = specInput{File: "a.yaml", Content: "a: 1"}.option()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "got 2")
}

func TestSpecInputOption_Content(t *testing.T) {
	withConfig(t, &serverConfig{IncludeInfo: true, MaxInputSize: 1024})

	opt, err := specInput{Content: "  type: string\n  nullable: true"}.option()
	require.NoError(t, err)

	result, err := nullable.ConvertWithOptions(opt)
	require.NoError(t, err)
	assert.Equal(t, "  type: [string, \"null\"]", result.Output)
}

func TestSpecInputOption_File(t *testing.T) {
	withConfig(t, &serverConfig{IncludeInfo: true, MaxInputSize: 1024 * 1024})
	path := testutil.WriteTempFile(t, "petstore.yaml", testutil.PetstoreOAS30)

	opt, err := specInput{File: path}.option()
	require.NoError(t, err)

	result, err := nullable.ConvertWithOptions(opt)
	require.NoError(t, err)
	assert.Equal(t, testutil.PetstoreOAS31, result.Output)
	assert.Equal(t, path, result.SourcePath)
}

func TestSpecInputOption_SizeLimit(t *testing.T) {
	withConfig(t, &serverConfig{MaxInputSize: 16})
	big := strings.Repeat("x", 17)

	_, err := specInput{Content: big}.option()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OASNULLABLE_MAX_INPUT_SIZE")

	path := testutil.WriteTempFile(t, "big.yaml", big)
	_, err = specInput{File: path}.option()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds maximum 16 bytes")
}

func TestSpecInputOption_MissingFile(t *testing.T) {
	withConfig(t, &serverConfig{MaxInputSize: 1024})

	_, err := specInput{File: "does-not-exist.yaml"}.option()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does-not-exist.yaml")
}

func TestSpecInputOption_Directory(t *testing.T) {
	withConfig(t, &serverConfig{MaxInputSize: 1024})

	_, err := specInput{File: t.TempDir()}.option()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is a directory")
}
