package nullable

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/erraggy/oasnullable/internal/issues"
	"github.com/erraggy/oasnullable/internal/severity"
	"golang.org/x/text/cases"
)

// Severity indicates the severity level of a conversion diagnostic
type Severity = severity.Severity

const (
	// SeverityInfo indicates informational messages about conversions that were made
	SeverityInfo = severity.SeverityInfo
	// SeverityWarning indicates nullable-looking text that was left unconverted
	SeverityWarning = severity.SeverityWarning
	// SeverityError indicates the converted output failed a requested check
	SeverityError = severity.SeverityError
)

// Issue represents a single conversion diagnostic
type Issue = issues.Issue

// Lookahead is the number of lines after a type declaration that are searched
// for its nullable flag.
const Lookahead = 4

// NullMarker is the type name appended to a converted type array.
const NullMarker = `"null"`

var (
	typeLineRegex     = regexp.MustCompile(`^(\s+)type:\s+(.+)$`)
	formatKeyRegex    = regexp.MustCompile(`^format:\s+`)
	nullableTrueRegex = regexp.MustCompile(`^nullable:\s+true$`)
)

// regexpSpace matches the characters \s accepts, minus the newline that never
// occurs inside a split line.
const regexpSpace = " \t\f\r"

// Result contains the outcome of converting a document
type Result struct {
	// Output is the converted document text
	Output string
	// SourcePath is the file the document was read from (empty for text and readers)
	SourcePath string
	// Lines is the number of lines in the input document
	Lines int
	// Conversions is the number of type/nullable groups rewritten as type arrays
	Conversions int
	// FormatsRetained is the number of conversions that kept a format line
	FormatsRetained int
	// DroppedLines counts lines inside converted groups that were discarded,
	// other than the nullable line itself
	DroppedLines int
	// Issues contains all diagnostics in input order
	Issues []Issue
	// InfoCount is the total number of info messages
	InfoCount int
	// WarningCount is the total number of warnings
	WarningCount int
	// ErrorCount is the total number of errors
	ErrorCount int
	// Checked is true if the output was checked for well-formed YAML
	Checked bool
	// ValidYAML reports the check outcome; meaningful only when Checked is true
	ValidYAML bool
}

// Changed returns true if at least one conversion was made
func (r *Result) Changed() bool {
	return r.Conversions > 0
}

// HasWarnings returns true if there are any warnings
func (r *Result) HasWarnings() bool {
	return r.WarningCount > 0
}

// HasErrors returns true if there are any errors
func (r *Result) HasErrors() bool {
	return r.ErrorCount > 0
}

// Converter rewrites OpenAPI 3.0 nullable declarations as OpenAPI 3.1 type arrays
type Converter struct {
	// IncludeInfo determines whether to include informational messages
	IncludeInfo bool
	// Logger receives debug logs for every conversion. Nil disables logging.
	Logger Logger
}

// New creates a new Converter instance with default settings
func New() *Converter {
	return &Converter{
		IncludeInfo: true,
		Logger:      NopLogger{},
	}
}

// Convert rewrites every eligible type/nullable group in text and returns the
// converted text. Lines that do not form such a group are copied unchanged.
//
// A group is a type line followed, within the next 4 lines and at exactly the
// same indentation, by "nullable: true" and optionally a "format:" line:
//
//	  type: string
//	  format: date
//	  nullable: true
//
// becomes
//
//	  type: [string, "null"]
//	  format: date
//
// Convert never fails and is safe for concurrent use. Use [Converter.Convert]
// or [ConvertWithOptions] for statistics and diagnostics.
func Convert(text string) string {
	c := &Converter{}
	return c.Convert(text).Output
}

// Convert rewrites text and reports statistics and diagnostics about the pass.
func (c *Converter) Convert(text string) *Result {
	logger := c.Logger
	if logger == nil {
		logger = NopLogger{}
	}
	p := &pass{
		lines:       splitLines(text),
		includeInfo: c.IncludeInfo,
		logger:      logger,
		fold:        cases.Fold(),
		result:      &Result{},
	}
	p.result.Lines = countLines(text, len(p.lines))
	p.run()
	updateCounts(p.result)
	return p.result
}

// line is one input line with any trailing carriage return split off.
type line struct {
	text string
	cr   bool
}

func (l line) raw() string {
	if l.cr {
		return l.text + "\r"
	}
	return l.text
}

func splitLines(text string) []line {
	parts := strings.Split(text, "\n")
	lines := make([]line, len(parts))
	for i, part := range parts {
		if trimmed, ok := strings.CutSuffix(part, "\r"); ok {
			lines[i] = line{text: trimmed, cr: true}
		} else {
			lines[i] = line{text: part}
		}
	}
	return lines
}

// countLines does not count the empty remainder after a final newline.
func countLines(text string, parts int) int {
	if text == "" {
		return 0
	}
	if strings.HasSuffix(text, "\n") {
		return parts - 1
	}
	return parts
}

// group describes a type declaration whose nullable flag was found.
type group struct {
	start     int
	indent    string
	typeValue string
	format    int
	nullable  int
}

// typeArray renders the replacement for the group's type line.
func (g group) typeArray() string {
	return fmt.Sprintf("%stype: [%s, %s]", g.indent, g.typeValue, NullMarker)
}

// findGroup reports the nullable group starting at index i, if any.
func findGroup(lines []line, i int) (group, bool) {
	m := typeLineRegex.FindStringSubmatch(lines[i].text)
	if m == nil {
		return group{}, false
	}
	g := group{
		start:     i,
		indent:    m[1],
		typeValue: strings.TrimSpace(m[2]),
		format:    -1,
		nullable:  -1,
	}

	for j := i + 1; j < len(lines) && j <= i+Lookahead; j++ {
		text := lines[j].text
		if rest, ok := strings.CutPrefix(text, g.indent); ok {
			if nullableTrueRegex.MatchString(rest) {
				g.nullable = j
				return g, true
			}
			if formatKeyRegex.MatchString(rest) {
				if g.format < 0 {
					g.format = j
				}
				continue
			}
		}
		if isSibling(text, len(g.indent)) {
			break
		}
	}
	return group{}, false
}

// isSibling reports whether text holds a key at the given indentation or
// shallower, which ends the current property's block.
func isSibling(text string, indent int) bool {
	content := strings.TrimLeft(text, regexpSpace)
	if content == "" {
		return false
	}
	return len(text)-len(content) <= indent
}

// pass holds the state of a single conversion.
type pass struct {
	lines       []line
	includeInfo bool
	logger      Logger
	fold        cases.Caser
	result      *Result
}

func (p *pass) run() {
	out := make([]string, 0, len(p.lines))
	for i := 0; i < len(p.lines); {
		g, ok := findGroup(p.lines, i)
		if !ok {
			out = append(out, p.lines[i].raw())
			p.inspect(i)
			i++
			continue
		}

		rewritten := g.typeArray()
		if p.lines[i].cr {
			rewritten += "\r"
		}
		out = append(out, rewritten)
		if g.format >= 0 {
			out = append(out, p.lines[g.format].raw())
		}
		p.record(g)
		i = g.nullable + 1
	}
	p.result.Output = strings.Join(out, "\n")
}

// record updates statistics and diagnostics for a converted group.
func (p *pass) record(g group) {
	p.result.Conversions++
	if g.format >= 0 {
		p.result.FormatsRetained++
	}

	p.logger.Debug("converted nullable type",
		"line", g.start+1,
		"type", g.typeValue,
		"format", g.format >= 0,
		"span", g.nullable-g.start+1,
	)

	if p.includeInfo {
		p.result.Issues = append(p.result.Issues, Issue{
			Line:     g.start + 1,
			Field:    "type",
			Message:  "converted nullable type to type array",
			Severity: SeverityInfo,
			Text:     p.lines[g.start].text,
			Context:  fmt.Sprintf("lines %d-%d replaced by: %s", g.start+1, g.nullable+1, strings.TrimSpace(g.typeArray())),
		})
	}

	for j := g.start + 1; j < g.nullable; j++ {
		if j == g.format {
			continue
		}
		p.result.DroppedLines++
		text := p.lines[j].text
		if strings.TrimLeft(text, regexpSpace) == "" {
			continue
		}
		message := "line inside a converted nullable group was dropped"
		field := "line"
		if rest, ok := strings.CutPrefix(text, g.indent); ok && formatKeyRegex.MatchString(rest) {
			message = "duplicate format line was dropped; only the first is kept"
			field = "format"
		}
		p.logger.Debug("dropped line", "line", j+1, "group", g.start+1)
		p.result.Issues = append(p.result.Issues, Issue{
			Line:     j + 1,
			Field:    field,
			Message:  message,
			Severity: SeverityWarning,
			Text:     text,
		})
	}
}

// updateCounts updates the issue counts in the result
func updateCounts(result *Result) {
	result.InfoCount = 0
	result.WarningCount = 0
	result.ErrorCount = 0

	for _, issue := range result.Issues {
		switch issue.Severity {
		case SeverityInfo:
			result.InfoCount++
		case SeverityWarning:
			result.WarningCount++
		case SeverityError:
			result.ErrorCount++
		}
	}
}
