package engine

import (
	"context"
	"fmt"
	"strings"

	"qa_automation/domain/catalog"
	"qa_automation/domain/entities"
	"qa_automation/domain/interfaces"
)

// handleValidate checks the current page against the phrase sets for the
// action's validation kind. Failure phrases win over success phrases; a
// validation failure never halts the run.
func (e *Engine) handleValidate(ctx context.Context, browser interfaces.Browser, action entities.Action, state *entities.ExecutionState) outcome {
	body, err := browser.PageText(ctx)
	if err != nil {
		return failed(fmt.Sprintf("could not read the page: %v", err))
	}
	html, _ := browser.Content(ctx)
	page := strings.ToLower(body + " " + html)
	url := strings.ToLower(browser.URL())

	// Site shortcuts first. Some confirmation pages never contain the
	// generic phrases. A LinkedIn signup is recognized by the URL or by
	// the run state, since the verification screen can land on a
	// checkpoint URL that no longer names the site.
	onLinkedInSignup := strings.Contains(url, "linkedin") ||
		(state.IsSignupFlow && state.CurrentSite == "linkedin")
	if action.Validation == entities.ValidateSignup && onLinkedInSignup {
		if found := matchPhrases(page, catalog.LinkedInSignupSuccess); len(found) > 0 {
			return outcome{
				status:     entities.StatusPassed,
				details:    "signup reached the verification step",
				indicators: found,
			}
		}
	}
	if action.Validation == entities.ValidateSearch && strings.Contains(url, "wikipedia") {
		if found := matchPhrases(page, catalog.WikipediaIndicators); len(found) > 0 {
			e.extractInto(ctx, browser, state)
			return outcome{
				status:        entities.StatusPassed,
				details:       "landed on an article page",
				indicators:    found,
				resultContent: state.ResultPageContent,
			}
		}
	}

	if hits := matchPhrases(page, catalog.FailurePhrases(action.Validation)); len(hits) > 0 {
		return outcome{
			status:     entities.StatusFailed,
			details:    fmt.Sprintf("page shows a failure indicator: %q", hits[0]),
			indicators: hits,
		}
	}

	phrases := append([]string{}, catalog.SuccessPhrases(action.Validation)...)
	for _, t := range strings.Split(action.ExpectedText, ",") {
		if t = strings.TrimSpace(strings.ToLower(t)); t != "" {
			phrases = append(phrases, t)
		}
	}
	found := matchPhrases(page, phrases)

	min := action.MinIndicators
	if min <= 0 {
		min = 1
	}

	var content string
	if action.Validation == entities.ValidateSearch || state.IsSearchOperation {
		e.extractInto(ctx, browser, state)
		content = state.ResultPageContent
	}

	if len(found) >= min {
		return outcome{
			status:        entities.StatusPassed,
			details:       fmt.Sprintf("found %d success indicator(s)", len(found)),
			indicators:    found,
			resultContent: content,
		}
	}
	return outcome{
		status:        entities.StatusFailed,
		details:       fmt.Sprintf("expected %d success indicator(s), found %d", min, len(found)),
		indicators:    found,
		resultContent: content,
	}
}

func (e *Engine) extractInto(ctx context.Context, browser interfaces.Browser, state *entities.ExecutionState) {
	if state.ResultPageContent != "" {
		return
	}
	if content, err := browser.ExtractContent(ctx); err == nil && content != "" {
		state.ResultPageContent = content
	}
}

// matchPhrases returns the distinct phrases present in the page text,
// preserving phrase-set order.
func matchPhrases(page string, phrases []string) []string {
	var found []string
	seen := map[string]bool{}
	for _, p := range phrases {
		if p == "" || seen[p] {
			continue
		}
		if strings.Contains(page, p) {
			found = append(found, p)
			seen[p] = true
		}
	}
	return found
}
