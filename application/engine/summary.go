package engine

import "strings"

const (
	summaryMaxChars     = 300
	summaryMaxSentences = 3
)

// basicSummary trims page content down to its first few sentences. Used
// when no external summarizer is configured or it fails.
func basicSummary(content string) string {
	content = strings.Join(strings.Fields(content), " ")
	if content == "" {
		return ""
	}

	var out strings.Builder
	sentences := 0
	for _, s := range strings.SplitAfter(content, ". ") {
		if out.Len()+len(s) > summaryMaxChars || sentences >= summaryMaxSentences {
			break
		}
		out.WriteString(s)
		sentences++
	}
	if out.Len() == 0 {
		if len(content) > summaryMaxChars {
			return content[:summaryMaxChars] + "..."
		}
		return content
	}
	return strings.TrimSpace(out.String())
}
