// Package compiler turns a natural-language instruction into an ordered
// action plan. Compilation is pure: no browser is touched, and every
// failure is reported before a run starts.
package compiler

import (
	"strings"

	"qa_automation/domain/catalog"
	"qa_automation/domain/entities"
)

// Compiler parses instructions against the site registry. The zero value
// is not usable; construct with New.
type Compiler struct {
	gen *generator
}

func New() *Compiler {
	return &Compiler{gen: newGenerator()}
}

// Compile builds the action plan for one instruction. allowRandomData
// permits generating throwaway values for signup fields the instruction
// does not provide; login credentials are never generated. On failure the
// returned error is a *entities.CompileError.
func (c *Compiler) Compile(instruction string, allowRandomData bool) ([]entities.Action, error) {
	instruction = strings.TrimSpace(instruction)
	if instruction == "" {
		return nil, &entities.CompileError{
			Reason:     "empty instruction",
			Suggestion: "describe what to do, e.g. \"search apples on google\"",
		}
	}
	lower := strings.ToLower(instruction)

	provided := extractFields(instruction)
	site := detectSite(lower)
	profile, known := catalog.Lookup(site)
	if !known {
		profile = catalog.Generic(site)
	}

	b := &flowBuilder{
		profile:  profile,
		site:     site,
		provided: provided,
		gen:      c.gen,
		random:   allowRandomData,
	}

	switch detectIntent(lower) {
	case intentSearch:
		return c.compileSearch(b, lower, site)
	case intentLogin:
		return c.compileLogin(b)
	case intentSignup:
		return c.compileSignup(b, allowRandomData)
	case intentNavigate:
		return c.compileNavigate(b, lower, site, known)
	}

	if known {
		return b.navigateFlow(profile.BaseURL, b.siteName()), nil
	}
	return nil, &entities.CompileError{
		Reason:     "could not understand the instruction",
		Suggestion: "start with search, login, signup or go to, and name the site",
	}
}

func (c *Compiler) compileSearch(b *flowBuilder, lower, site string) ([]entities.Action, error) {
	query := extractSearchQuery(lower, site)
	if query == "" {
		return nil, &entities.CompileError{
			Reason:     "search instruction has no query",
			Suggestion: "say what to search for, e.g. \"search wireless mouse on amazon\"",
		}
	}
	if site == "" {
		// No site mentioned; default to the general-purpose engine.
		b.profile, _ = catalog.Lookup("google")
		b.site = "google"
	}
	addToCart := strings.Contains(lower, "add to cart") ||
		strings.Contains(lower, "add it to") ||
		strings.Contains(lower, "buy")
	return b.searchFlow(query, addToCart), nil
}

func (c *Compiler) compileLogin(b *flowBuilder) ([]entities.Action, error) {
	var missing []entities.FieldKind
	for _, f := range b.loginFields() {
		if _, ok := b.provided[f]; !ok {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		return nil, &entities.CompileError{
			Reason:        "login needs real credentials",
			MissingFields: missing,
			Suggestion:    "include them in the instruction, e.g. \"login to github with user alice password s3cret\"",
		}
	}
	return b.loginFlow(), nil
}

func (c *Compiler) compileSignup(b *flowBuilder, allowRandomData bool) ([]entities.Action, error) {
	if !allowRandomData {
		var missing []entities.FieldKind
		for _, f := range b.signupFields() {
			if _, ok := b.provided[f]; !ok {
				missing = append(missing, f)
			}
		}
		if len(missing) > 0 {
			return nil, &entities.CompileError{
				Reason:        "signup needs values for every field",
				MissingFields: missing,
				Suggestion:    "provide the missing values or enable random data generation",
			}
		}
	}
	return b.signupFlow(), nil
}

func (c *Compiler) compileNavigate(b *flowBuilder, lower, site string, known bool) ([]entities.Action, error) {
	if known {
		return b.navigateFlow(b.profile.BaseURL, b.siteName()), nil
	}
	if m := urlRe.FindString(lower); m != "" {
		url := strings.TrimRight(m, ".,;:!?")
		if !strings.HasPrefix(url, "http") {
			url = "https://" + url
		}
		return b.navigateFlow(url, url), nil
	}
	if site != "" {
		return b.navigateFlow(b.profile.BaseURL, b.siteName()), nil
	}
	return nil, &entities.CompileError{
		Reason:     "navigation target not recognized",
		Suggestion: "name a known site or give a full URL",
	}
}
