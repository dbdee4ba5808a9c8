package nullable

import (
	"fmt"
	"regexp"
	"strings"
)

// nullableKeyRegex matches any nullable key, whatever its indentation or value.
var nullableKeyRegex = regexp.MustCompile(`^(\s*)nullable:(.*)$`)

// inspect reports lines that were copied unchanged but look like nullable
// declarations. It never alters the output.
func (p *pass) inspect(i int) {
	text := p.lines[i].text
	m := nullableKeyRegex.FindStringSubmatch(text)
	if m == nil {
		return
	}
	indent, raw := m[1], m[2]
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return
	}

	switch p.fold.String(fields[0]) {
	case "true":
		p.warnUnconverted(i, indent, raw, fields)
	case "false":
		if p.includeInfo {
			p.add(Issue{
				Line:     i + 1,
				Field:    "nullable",
				Message:  "nullable: false left in place",
				Severity: SeverityInfo,
				Text:     text,
				Context:  "OpenAPI 3.1 has no nullable keyword; the line can be removed",
			})
		}
	}
}

func (p *pass) warnUnconverted(i int, indent, raw string, fields []string) {
	var reason string
	switch {
	case !strings.HasPrefix(raw, " ") && !strings.HasPrefix(raw, "\t"):
		reason = "a space must follow \"nullable:\""
	case fields[0] != "true":
		reason = fmt.Sprintf("only the literal lowercase true is recognized, found %q", fields[0])
	case len(fields) > 1 || strings.TrimRight(raw, regexpSpace) != raw:
		reason = "nothing may follow \"true\" on the line, including comments"
	case indent == "":
		reason = "top-level declarations are not converted"
	default:
		reason = p.groupReason(i, indent)
	}

	p.logger.Debug("nullable declaration left unconverted", "line", i+1, "reason", reason)
	p.add(Issue{
		Line:     i + 1,
		Field:    "nullable",
		Message:  "nullable declaration was not converted",
		Severity: SeverityWarning,
		Text:     p.lines[i].text,
		Context:  reason,
	})
}

// groupReason explains why a well-formed nullable: true line at index i did
// not join a type declaration.
func (p *pass) groupReason(i int, indent string) string {
	for k := i - 1; k >= 0; k-- {
		text := p.lines[k].text
		if rest, ok := strings.CutPrefix(text, indent); ok && strings.HasPrefix(rest, "type:") {
			if !typeLineRegex.MatchString(text) {
				return fmt.Sprintf("the type declaration on line %d has no value", k+1)
			}
			if i-k > Lookahead {
				return fmt.Sprintf("it is %d lines after the type declaration on line %d; at most %d are searched", i-k, k+1, Lookahead)
			}
			return fmt.Sprintf("a sibling key separates it from the type declaration on line %d", k+1)
		}
		if isSibling(text, len(indent)-1) {
			break
		}
	}
	return "no type declaration at the same indentation precedes it"
}

func (p *pass) add(issue Issue) {
	p.result.Issues = append(p.result.Issues, issue)
}
