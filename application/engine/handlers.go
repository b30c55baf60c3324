package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"qa_automation/domain/catalog"
	"qa_automation/domain/entities"
	"qa_automation/domain/interfaces"
	"qa_automation/infrastructure/security"
)

// outcome is what one handler reports back to the step loop.
type outcome struct {
	status        entities.StepStatus
	details       string
	indicators    []string
	resultContent string
}

func passed(details string) outcome {
	return outcome{status: entities.StatusPassed, details: details}
}

func failed(details string) outcome {
	return outcome{status: entities.StatusFailed, details: details}
}

// execute dispatches one action. A panic in a handler (driver faults
// surface that way) becomes a Failed outcome so the run still reaches
// final capture.
func (e *Engine) execute(ctx context.Context, browser interfaces.Browser, action entities.Action, state *entities.ExecutionState) (out outcome) {
	defer func() {
		if r := recover(); r != nil {
			out = failed(fmt.Sprintf("unexpected fault in %s handler: %v", action.Kind, r))
		}
	}()
	switch action.Kind {
	case entities.ActionNavigate:
		return e.handleNavigate(ctx, browser, action)
	case entities.ActionSearch:
		return e.handleSearch(ctx, browser, action, state)
	case entities.ActionType:
		return e.handleType(ctx, browser, action)
	case entities.ActionSelect:
		return e.handleSelect(ctx, browser, action)
	case entities.ActionClick:
		return e.handleClick(ctx, browser, action)
	case entities.ActionWait:
		e.sleep(ctx, time.Duration(action.Seconds*float64(time.Second)))
		return passed(fmt.Sprintf("waited %.1fs", action.Seconds))
	case entities.ActionValidate:
		return e.handleValidate(ctx, browser, action, state)
	case entities.ActionInfo, entities.ActionDataNote:
		return outcome{status: entities.StatusInfo, details: action.Message}
	}
	return failed(fmt.Sprintf("unsupported action %q", action.Kind))
}

func (e *Engine) handleNavigate(ctx context.Context, browser interfaces.Browser, action entities.Action) outcome {
	if err := browser.Navigate(ctx, action.URL); err != nil {
		return failed(fmt.Sprintf("could not open %s: %v", action.URL, err))
	}
	return passed(fmt.Sprintf("opened %s", action.URL))
}

// resolve tries selector candidates in order and performs act on the first
// one that becomes visible. The first candidate that accepts the action
// wins; later candidates are never touched.
func (e *Engine) resolve(ctx context.Context, browser interfaces.Browser, candidates []string, act func(selector string) error) (string, error) {
	var lastErr error
	for _, sel := range candidates {
		sel = strings.TrimSpace(sel)
		if sel == "" {
			continue
		}
		if err := browser.WaitVisible(ctx, sel, e.candidateWait); err != nil {
			lastErr = err
			continue
		}
		if err := act(sel); err != nil {
			lastErr = err
			continue
		}
		return sel, nil
	}
	if lastErr == nil {
		lastErr = errors.New("no selector candidates given")
	}
	return "", fmt.Errorf("no element matched: %w", lastErr)
}

// candidatesFor merges the action's selector hint with the catalog list
// for its field, hint first.
func candidatesFor(action entities.Action) []string {
	var out []string
	if action.Selector != "" {
		out = append(out, strings.Split(action.Selector, ",")...)
	}
	out = append(out, catalog.FieldCandidates(action.Field)...)
	return out
}

func (e *Engine) handleType(ctx context.Context, browser interfaces.Browser, action entities.Action) outcome {
	sel, err := e.resolve(ctx, browser, candidatesFor(action), func(sel string) error {
		return browser.Fill(ctx, sel, action.Value)
	})
	if err != nil {
		return failed(fmt.Sprintf("could not fill %s field: %v", action.Field, err))
	}
	e.sleep(ctx, e.interactWait)
	shown := security.MaskValue(action.Field, action.Value)
	return passed(fmt.Sprintf("typed %s into %s", shown, sel))
}

func (e *Engine) handleSelect(ctx context.Context, browser interfaces.Browser, action entities.Action) outcome {
	_, err := e.resolve(ctx, browser, candidatesFor(action), func(sel string) error {
		return browser.SelectOption(ctx, sel, action.Value)
	})
	if err != nil {
		return failed(fmt.Sprintf("could not select %s: %v", action.Field, err))
	}
	return passed(fmt.Sprintf("selected %s for %s", action.Value, action.Field))
}

func (e *Engine) handleClick(ctx context.Context, browser interfaces.Browser, action entities.Action) outcome {
	candidates := clickCandidates(action)
	sel, err := e.resolve(ctx, browser, candidates, func(sel string) error {
		return browser.Click(ctx, sel)
	})
	if err == nil {
		e.sleep(ctx, e.interactWait)
		return passed(fmt.Sprintf("clicked %s", sel))
	}
	if action.MatchText != "" {
		if terr := browser.ClickText(ctx, action.MatchText); terr == nil {
			e.sleep(ctx, e.interactWait)
			return passed(fmt.Sprintf("clicked element with text %q", action.MatchText))
		}
	}
	return failed(fmt.Sprintf("could not click %q: %v", action.MatchText, err))
}

// clickCandidates builds the ordered selector list for a click: the hint,
// text-derived selectors, then the catalog list the match text implies.
func clickCandidates(action entities.Action) []string {
	var out []string
	if action.Selector != "" {
		out = append(out, strings.Split(action.Selector, ",")...)
	}
	if action.MatchText != "" {
		out = append(out,
			fmt.Sprintf("button:has-text('%s')", action.MatchText),
			fmt.Sprintf("div[role='button']:has-text('%s')", action.MatchText),
			fmt.Sprintf("a:has-text('%s')", action.MatchText),
			fmt.Sprintf("input[type='submit'][value='%s']", action.MatchText),
		)
	}
	if target, ok := targetForText(action.MatchText); ok {
		out = append(out, catalog.ActionCandidates(target)...)
	}
	return out
}

func targetForText(text string) (catalog.ActionTarget, bool) {
	t := strings.ToLower(text)
	switch {
	case strings.Contains(t, "log in") || strings.Contains(t, "login") || strings.Contains(t, "sign in"):
		return catalog.TargetLoginButton, true
	case strings.Contains(t, "sign up") || strings.Contains(t, "join") || strings.Contains(t, "agree") || strings.Contains(t, "create"):
		return catalog.TargetSignupButton, true
	case strings.Contains(t, "next"):
		return catalog.TargetNextButton, true
	case strings.Contains(t, "cart"):
		return catalog.TargetAddToCart, true
	case strings.Contains(t, "search"):
		return catalog.TargetSearchButton, true
	case strings.Contains(t, "submit") || strings.Contains(t, "continue"):
		return catalog.TargetSubmitButton, true
	}
	return "", false
}

// handleSearch fills the search box, submits with Enter and captures the
// result content for the final report.
func (e *Engine) handleSearch(ctx context.Context, browser interfaces.Browser, action entities.Action, state *entities.ExecutionState) outcome {
	box := entities.Action{Selector: action.Selector, Field: entities.FieldSearch}
	sel, err := e.resolve(ctx, browser, candidatesFor(box), func(sel string) error {
		return browser.Fill(ctx, sel, action.Query)
	})
	if err != nil {
		return failed(fmt.Sprintf("could not find a search box: %v", err))
	}
	if err := browser.Press(ctx, sel, "Enter"); err != nil {
		// Some search boxes ignore Enter; fall back to the button.
		if _, berr := e.resolve(ctx, browser, catalog.ActionCandidates(catalog.TargetSearchButton), func(s string) error {
			return browser.Click(ctx, s)
		}); berr != nil {
			return failed(fmt.Sprintf("could not submit the search: %v", berr))
		}
	}
	browser.WaitStable(ctx, 2*time.Second)
	if content, cerr := browser.ExtractContent(ctx); cerr == nil && content != "" {
		state.ResultPageContent = content
	}
	return passed(fmt.Sprintf("searched for %q", action.Query))
}
