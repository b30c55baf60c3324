package compiler

import (
	"regexp"
	"strings"

	"qa_automation/domain/entities"
)

// providedFields holds credential values the operator spelled out inside
// the instruction text.
type providedFields map[entities.FieldKind]string

// fieldPattern pairs a field kind with the ordered regexes that can
// capture its value from an instruction. The first matching pattern wins.
type fieldPattern struct {
	kind     entities.FieldKind
	patterns []*regexp.Regexp
}

var fieldPatterns = []fieldPattern{
	{
		kind: entities.FieldEmail,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)email\s+([^\s,]+@[^\s,]+)`),
			regexp.MustCompile(`(?i)with\s+([^\s,]+@[^\s,]+)`),
			regexp.MustCompile(`([A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,})`),
		},
	},
	{
		kind: entities.FieldPassword,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)password\s+([^\s,]+)`),
			regexp.MustCompile(`(?i)pass\s+([^\s,]+)`),
			regexp.MustCompile(`(?i)pwd\s+([^\s,]+)`),
		},
	},
	{
		kind: entities.FieldUsername,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)username\s+([^\s,]+)`),
			regexp.MustCompile(`(?i)user\s+([^\s,]+)`),
			regexp.MustCompile(`(?i)login\s+([^\s,]+@[^\s,]+)`),
		},
	},
	{
		kind: entities.FieldFirstName,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)first\s*name\s+([^\s,]+)`),
		},
	},
	{
		kind: entities.FieldLastName,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)last\s*name\s+([^\s,]+)`),
		},
	},
	{
		kind: entities.FieldName,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(?:full\s+)?name\s+"([^"]+)"`),
			regexp.MustCompile(`(?i)named\s+([^\s,]+(?:\s+[^\s,]+)?)`),
		},
	},
}

// extractFields pulls every credential the instruction spells out.
// Trailing punctuation is stripped so "password abc123." captures abc123.
func extractFields(instruction string) providedFields {
	out := providedFields{}
	for _, fp := range fieldPatterns {
		for _, re := range fp.patterns {
			m := re.FindStringSubmatch(instruction)
			if m == nil {
				continue
			}
			value := strings.TrimRight(m[1], ".,;:!?")
			if value == "" {
				continue
			}
			// The username pattern "user X" also matches "username X";
			// never overwrite an earlier, more specific capture.
			if _, seen := out[fp.kind]; !seen {
				out[fp.kind] = value
			}
			break
		}
	}
	// A captured username that is really an email address belongs to the
	// email slot on sites that log in by email.
	if u, ok := out[entities.FieldUsername]; ok && strings.Contains(u, "@") {
		if _, hasEmail := out[entities.FieldEmail]; !hasEmail {
			out[entities.FieldEmail] = u
		}
	}
	return out
}
