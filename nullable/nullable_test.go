package nullable

import (
	"strings"
	"sync"
	"testing"

	"github.com/erraggy/oasnullable/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "simple nullable type",
			input:    "  type: string\n  nullable: true",
			expected: "  type: [string, \"null\"]",
		},
		{
			name:     "format is retained",
			input:    "  type: string\n  format: date\n  nullable: true",
			expected: "  type: [string, \"null\"]\n  format: date",
		},
		{
			name:     "no nullable leaves type unchanged",
			input:    "  type: integer",
			expected: "  type: integer",
		},
		{
			name:     "sibling at lower indent breaks the group",
			input:    "  type: string\ndescription: foo\n  nullable: true",
			expected: "  type: string\ndescription: foo\n  nullable: true",
		},
		{
			name:     "sibling at same indent breaks the group",
			input:    "  type: string\n  description: foo\n  nullable: true",
			expected: "  type: string\n  description: foo\n  nullable: true",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "nullable at the last window line",
			input:    "  type: string\n    a\n    b\n    c\n  nullable: true",
			expected: "  type: [string, \"null\"]",
		},
		{
			name:     "nullable beyond the window",
			input:    "  type: string\n    a\n    b\n    c\n    d\n  nullable: true",
			expected: "  type: string\n    a\n    b\n    c\n    d\n  nullable: true",
		},
		{
			name:     "deeper nullable is not consumed",
			input:    "  type: string\n    nullable: true",
			expected: "  type: string\n    nullable: true",
		},
		{
			name:     "shallower nullable is a sibling",
			input:    "  type: string\n nullable: true",
			expected: "  type: string\n nullable: true",
		},
		{
			name:     "format after nullable is not part of the group",
			input:    "  type: string\n  nullable: true\n  format: date",
			expected: "  type: [string, \"null\"]\n  format: date",
		},
		{
			name:     "only the first format is kept",
			input:    "  type: string\n  format: date\n  format: date-time\n  nullable: true",
			expected: "  type: [string, \"null\"]\n  format: date",
		},
		{
			name:     "deeper format is dropped with the group",
			input:    "  type: string\n    format: date\n  nullable: true",
			expected: "  type: [string, \"null\"]",
		},
		{
			name:     "blank line inside the group",
			input:    "  type: string\n\n  nullable: true\nnext: 1",
			expected: "  type: [string, \"null\"]\nnext: 1",
		},
		{
			name:     "tab indentation",
			input:    "\ttype: string\n\tnullable: true",
			expected: "\ttype: [string, \"null\"]",
		},
		{
			name:     "type value is trimmed",
			input:    "    type:   string  \n    nullable: true",
			expected: "    type: [string, \"null\"]",
		},
		{
			name:     "type value is copied verbatim",
			input:    "  type: 'string'\n  nullable: true",
			expected: "  type: ['string', \"null\"]",
		},
		{
			name:     "top-level type is never converted",
			input:    "type: string\nnullable: true",
			expected: "type: string\nnullable: true",
		},
		{
			name:     "capitalized true is not converted",
			input:    "  type: string\n  nullable: True",
			expected: "  type: string\n  nullable: True",
		},
		{
			name:     "missing space after colon is not converted",
			input:    "  type: string\n  nullable:true",
			expected: "  type: string\n  nullable:true",
		},
		{
			name:     "trailing comment is not converted",
			input:    "  type: string\n  nullable: true # legacy",
			expected: "  type: string\n  nullable: true # legacy",
		},
		{
			name:     "nullable false is left alone",
			input:    "  type: string\n  nullable: false",
			expected: "  type: string\n  nullable: false",
		},
		{
			name:     "consecutive groups",
			input:    "  type: string\n  nullable: true\n  type: integer\n  nullable: true",
			expected: "  type: [string, \"null\"]\n  type: [integer, \"null\"]",
		},
		{
			name:     "trailing newline is preserved",
			input:    "a:\n  type: string\n  nullable: true\n",
			expected: "a:\n  type: [string, \"null\"]\n",
		},
		{
			name:     "crlf line endings round trip",
			input:    "a:\r\n  type: string\r\n  format: uuid\r\n  nullable: true\r\n  description: x\r\n",
			expected: "a:\r\n  type: [string, \"null\"]\r\n  format: uuid\r\n  description: x\r\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Convert(tt.input))
		})
	}
}

func TestConvert_Petstore(t *testing.T) {
	assert.Equal(t, testutil.PetstoreOAS31, Convert(testutil.PetstoreOAS30))
}

func TestConvert_Idempotent(t *testing.T) {
	once := Convert(testutil.PetstoreOAS30)
	assert.Equal(t, once, Convert(once))

	converted := "  type: [string, \"null\"]\n  format: date\n"
	assert.Equal(t, converted, Convert(converted))
}

func TestConvert_PreservesUnrelatedLines(t *testing.T) {
	input := testutil.PetstoreOAS30
	output := Convert(input)

	// Every output line that is not a rewritten type line must appear in the
	// input, in the same relative order.
	inLines := strings.Split(input, "\n")
	pos := 0
	for _, outLine := range strings.Split(output, "\n") {
		if strings.Contains(outLine, `, "null"]`) {
			continue
		}
		for pos < len(inLines) && inLines[pos] != outLine {
			pos++
		}
		require.Less(t, pos, len(inLines), "output line %q not found in order", outLine)
		pos++
	}
}

func TestConvert_OutputDecodesAsTypeArray(t *testing.T) {
	doc := testutil.DecodeYAML(t, Convert(testutil.PetstoreOAS30))

	birthday := testutil.Lookup(t, doc, "components", "schemas", "Pet", "properties", "birthday")
	assert.Equal(t, map[string]any{
		"type":   []any{"string", "null"},
		"format": "date",
	}, birthday)

	id := testutil.Lookup(t, doc, "components", "schemas", "Pet", "properties", "id", "type")
	assert.Equal(t, "integer", id)
}

func TestConverterConvert_Statistics(t *testing.T) {
	result := New().Convert(testutil.PetstoreOAS30)

	assert.Equal(t, 3, result.Conversions)
	assert.Equal(t, 1, result.FormatsRetained)
	assert.Equal(t, 0, result.DroppedLines)
	assert.Equal(t, strings.Count(testutil.PetstoreOAS30, "\n"), result.Lines)
	assert.True(t, result.Changed())
	assert.Equal(t, 3, result.InfoCount)
	assert.Equal(t, 1, result.WarningCount, "weight keeps its nullable line")
	assert.False(t, result.HasErrors())
	assert.False(t, result.Checked)
}

func TestConverterConvert_DroppedLines(t *testing.T) {
	input := "  type: string\n    a\n\n  format: date\n  nullable: true"
	result := New().Convert(input)

	assert.Equal(t, "  type: [string, \"null\"]\n  format: date", result.Output)
	assert.Equal(t, 1, result.Conversions)
	assert.Equal(t, 2, result.DroppedLines)

	var dropped []Issue
	for _, issue := range result.Issues {
		if issue.Severity == SeverityWarning {
			dropped = append(dropped, issue)
		}
	}
	require.Len(t, dropped, 1, "blank lines are counted but not reported")
	assert.Equal(t, 2, dropped[0].Line)
	assert.Equal(t, "line", dropped[0].Field)
	assert.Equal(t, "    a", dropped[0].Text)
}

func TestConverterConvert_DuplicateFormat(t *testing.T) {
	result := New().Convert("  type: string\n  format: date\n  format: date-time\n  nullable: true")

	require.Equal(t, 1, result.WarningCount)
	for _, issue := range result.Issues {
		if issue.Severity == SeverityWarning {
			assert.Equal(t, "format", issue.Field)
			assert.Equal(t, 3, issue.Line)
		}
	}
}

func TestConverterConvert_LineCounts(t *testing.T) {
	tests := []struct {
		input string
		lines int
	}{
		{"", 0},
		{"a", 1},
		{"a\n", 1},
		{"a\nb", 2},
		{"a\nb\n", 2},
		{"\n", 1},
	}

	for _, tt := range tests {
		t.Run(strings.ReplaceAll(tt.input, "\n", `\n`), func(t *testing.T) {
			assert.Equal(t, tt.lines, New().Convert(tt.input).Lines)
		})
	}
}

func TestConverterConvert_NilLogger(t *testing.T) {
	c := &Converter{IncludeInfo: true}
	result := c.Convert("  type: string\n  nullable: true")
	assert.Equal(t, 1, result.Conversions)
}

func TestConvert_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, testutil.PetstoreOAS31, Convert(testutil.PetstoreOAS30))
		}()
	}
	wg.Wait()
}

func TestIsSibling(t *testing.T) {
	tests := []struct {
		text   string
		indent int
		want   bool
	}{
		{"  description: x", 2, true},
		{"description: x", 2, true},
		{"    child: x", 2, false},
		{"", 2, false},
		{"     ", 2, false},
		{"\tkey: x", 1, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, isSibling(tt.text, tt.indent), "isSibling(%q, %d)", tt.text, tt.indent)
	}
}
