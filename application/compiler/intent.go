package compiler

import (
	"regexp"
	"sort"
	"strings"

	"qa_automation/domain/catalog"
)

type intent string

const (
	intentSearch   intent = "search"
	intentLogin    intent = "login"
	intentSignup   intent = "signup"
	intentNavigate intent = "navigate"
	intentUnknown  intent = "unknown"
)

var (
	searchKeywords   = []string{"search", "find", "look for"}
	loginKeywords    = []string{"login", "signin", "sign in", "log in"}
	signupKeywords   = []string{"signup", "register", "sign up", "join", "create account", "create"}
	navigateKeywords = []string{"go to", "open", "visit", "navigate", "launch", "move to"}
)

// detectIntent classifies the instruction. Search wins over login, login
// over signup, so "search for login pages" stays a search.
func detectIntent(lower string) intent {
	if containsAny(lower, searchKeywords) {
		return intentSearch
	}
	if containsAny(lower, loginKeywords) {
		return intentLogin
	}
	if containsAny(lower, signupKeywords) {
		return intentSignup
	}
	if containsAny(lower, navigateKeywords) {
		return intentNavigate
	}
	return intentUnknown
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

// detectSite finds which known site the instruction mentions, scanning
// every registry id and alias, longest name first. Short aliases like
// "x" or "fb" must appear as a whole word; longer names match as
// substrings so "github.com" still hits "github". Anything unmatched
// falls back to a bare domain token like "example.com".
func detectSite(lower string) string {
	names := catalog.KnownNames()
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) > len(names[j])
		}
		return names[i] < names[j]
	})

	tokens := map[string]bool{}
	for _, w := range strings.Fields(lower) {
		tokens[strings.Trim(w, ".,;:!?\"'")] = true
	}

	for _, name := range names {
		var matched bool
		switch {
		case strings.ContainsAny(name, " ."):
			matched = strings.Contains(lower, name)
		case len(name) < 4:
			matched = tokens[name]
		default:
			matched = strings.Contains(lower, name)
		}
		if matched {
			p, _ := catalog.Lookup(name)
			return p.ID
		}
	}

	if m := domainTokenRe.FindString(lower); m != "" {
		return strings.TrimSuffix(strings.TrimPrefix(m, "www."), ".com")
	}
	return ""
}

var domainTokenRe = regexp.MustCompile(`\b[a-z0-9\-]+\.(?:com|org|net|in|io)\b`)

// urlRe matches an explicit navigation target inside the instruction.
var urlRe = regexp.MustCompile(`(?i)(https?://\S+|www\.\S+|\b\S+\.(?:com|org|net|in)\S*)`)

// searchQueryRe captures everything after the search verb; the site name
// and cart phrasing are cut out of the capture afterwards so interior
// articles and prepositions survive.
var searchQueryRe = regexp.MustCompile(`(?:search|look for|find)\s+(?:for\s+)?(.+)$`)

var cartPhrases = []string{
	"and add it to cart",
	"and add to cart",
	"add to cart",
	"and buy it",
	"and buy",
	"then buy",
}

// extractSearchQuery pulls the query text out of the instruction: the
// substring after the search verb, minus the target-site mention and any
// cart follow-up phrasing.
func extractSearchQuery(lower, site string) string {
	lower = strings.ReplaceAll(lower, "linked in", "linkedin")

	q := lower
	if m := searchQueryRe.FindStringSubmatch(lower); m != nil {
		q = m[1]
	}
	for _, phrase := range cartPhrases {
		q = strings.ReplaceAll(q, phrase, " ")
	}
	if site != "" {
		for _, name := range siteNames(site) {
			re := regexp.MustCompile(`(?:\b(?:on|in|at|using|via|from)\s+)?\b` + regexp.QuoteMeta(name) + `\b`)
			q = re.ReplaceAllString(q, " ")
		}
	}

	q = strings.Join(strings.Fields(q), " ")
	return strings.Trim(q, " .,;:!?\"'")
}

// siteNames lists every registry name resolving to a site id, longest
// first, so "x.com" is stripped from a query before "x".
func siteNames(site string) []string {
	names := []string{site}
	for _, n := range catalog.KnownNames() {
		if n == site {
			continue
		}
		if p, ok := catalog.Lookup(n); ok && p.ID == site {
			names = append(names, n)
		}
	}
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) > len(names[j])
		}
		return names[i] < names[j]
	})
	return names
}
