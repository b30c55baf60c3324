// Package engine executes a compiled action plan against a live browser
// session and records the step trail, screenshots and final-page summary.
package engine

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"qa_automation/domain/entities"
	"qa_automation/domain/interfaces"
	"qa_automation/infrastructure/security"
)

// LaunchFunc opens a fresh browser session for one run.
type LaunchFunc func(ctx context.Context, headless bool) (interfaces.Browser, error)

// Options configures a single run.
type Options struct {
	Headless    bool
	ReportID    string
	Instruction string
}

// Engine drives one action plan at a time. Construct with New; the
// summarizer may be nil, in which case final summaries fall back to
// sentence truncation.
type Engine struct {
	launch     LaunchFunc
	store      interfaces.ScreenshotStore
	summarizer interfaces.Summarizer
	log        *logrus.Logger

	// candidateWait bounds how long one selector candidate may take to
	// appear before the next is tried.
	candidateWait time.Duration
	// interactWait is the settle delay after fills and clicks.
	interactWait time.Duration
	// sleep is swapped out in tests.
	sleep func(ctx context.Context, d time.Duration)
}

func New(launch LaunchFunc, store interfaces.ScreenshotStore, summarizer interfaces.Summarizer, log *logrus.Logger) *Engine {
	if log == nil {
		log = logrus.New()
	}
	return &Engine{
		launch:        launch,
		store:         store,
		summarizer:    summarizer,
		log:           log,
		candidateWait: 3 * time.Second,
		interactWait:  500 * time.Millisecond,
		sleep:         sleepCtx,
	}
}

func sleepCtx(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

// Run executes the plan. The returned result always contains exactly one
// result_page_capture step, even when execution stopped early.
func (e *Engine) Run(ctx context.Context, actions []entities.Action, opts Options) (*entities.ExecutionResult, error) {
	reportID := opts.ReportID
	if reportID == "" {
		reportID = uuid.NewString()
	}

	browser, err := e.launch(ctx, opts.Headless)
	if err != nil {
		return nil, fmt.Errorf("launch browser: %w", err)
	}
	defer browser.Close()

	state := &entities.ExecutionState{}
	tracker := security.NewDataTracker()
	result := &entities.ExecutionResult{ReportID: reportID}

	e.log.WithFields(logrus.Fields{
		"report_id":   reportID,
		"instruction": opts.Instruction,
		"actions":     len(actions),
	}).Info("starting execution")

	for _, action := range actions {
		if ctx.Err() != nil {
			result.Steps = append(result.Steps, e.stoppedStep(len(result.Steps)+1, "run cancelled"))
			break
		}

		e.noteState(action, state, tracker)

		start := time.Now()
		outcome := e.execute(ctx, browser, action, state)
		duration := time.Since(start).Seconds()

		step := entities.ExecutionStep{
			Step:            len(result.Steps) + 1,
			Action:          action.Kind,
			Status:          outcome.status,
			Details:         outcome.details,
			Description:     action.Description,
			Field:           action.Field,
			DurationSeconds: duration,
			Indicators:      outcome.indicators,
			ResultContent:   outcome.resultContent,
		}
		step.Screenshot = e.capture(ctx, browser, reportID, stepLabel(action), false, outcome.status == entities.StatusFailed)
		result.Steps = append(result.Steps, step)

		e.log.WithFields(logrus.Fields{
			"step":   step.Step,
			"action": action.Kind,
			"status": step.Status,
		}).Debug(step.Details)

		if outcome.status == entities.StatusFailed && !action.Soft() {
			result.Steps = append(result.Steps,
				e.stoppedStep(len(result.Steps)+1,
					fmt.Sprintf("stopped after step %d: %s", step.Step, outcome.details)))
			break
		}
	}

	e.finalCapture(ctx, browser, state, result)
	e.appendDataSummary(result, tracker)
	result.DataUsage = tracker.Usage(state.HasProvidedCredentials, state.HasGeneratedData)
	result.Summary = summarize(result.Steps)

	e.log.WithFields(logrus.Fields{
		"report_id":    reportID,
		"total_steps":  result.Summary.TotalSteps,
		"passed_steps": result.Summary.PassedSteps,
		"failed_steps": result.Summary.FailedSteps,
	}).Info("execution finished")
	return result, nil
}

// noteState updates the per-run state a handler or the final capture will
// read later.
func (e *Engine) noteState(action entities.Action, state *entities.ExecutionState, tracker *security.DataTracker) {
	switch action.Kind {
	case entities.ActionNavigate:
		if site := classifySite(action.URL); site != "" {
			state.CurrentSite = site
		}
		d := strings.ToLower(action.Description + " " + action.URL)
		if strings.Contains(d, "signup") || strings.Contains(d, "registration") || strings.Contains(d, "/reg") {
			state.IsSignupFlow = true
		}
	case entities.ActionSearch:
		state.IsSearchOperation = true
		state.SearchQuery = action.Query
	case entities.ActionType, entities.ActionSelect:
		if action.Generated {
			state.HasGeneratedData = true
			tracker.RecordGenerated(action.Field)
		} else {
			state.HasProvidedCredentials = true
			tracker.RecordProvided(action.Field)
		}
	}
}

func (e *Engine) stoppedStep(n int, details string) entities.ExecutionStep {
	return entities.ExecutionStep{
		Step:    n,
		Action:  entities.ActionStopped,
		Status:  entities.StatusFailed,
		Details: details,
	}
}

// finalCapture appends the single result_page_capture step every run ends
// with: a screenshot of wherever the browser landed plus a summary of the
// page content.
func (e *Engine) finalCapture(ctx context.Context, browser interfaces.Browser, state *entities.ExecutionState, result *entities.ExecutionResult) {
	content := state.ResultPageContent
	if content == "" {
		if extracted, err := browser.ExtractContent(ctx); err == nil {
			content = extracted
		}
	}

	title, _ := browser.Title()
	url := browser.URL()
	summary := e.pageSummary(ctx, content, title, url)
	state.ResultSummary = summary

	record := e.capture(ctx, browser, result.ReportID, "result page", true, false)
	if record != nil {
		record.Analysis.Summary = summary
		result.FinalScreenshot = record
	}

	status := entities.StatusPassed
	details := "captured the final page"
	if record == nil {
		status = entities.StatusWarning
		details = "final page screenshot could not be saved"
	}
	result.Steps = append(result.Steps, entities.ExecutionStep{
		Step:          len(result.Steps) + 1,
		Action:        entities.ActionResultCapture,
		Status:        status,
		Details:       details,
		Screenshot:    record,
		ResultContent: content,
	})
	result.ResultSummary = summary
}

// pageSummary asks the configured summarizer for a synopsis and falls back
// to local sentence truncation when it is absent or fails.
func (e *Engine) pageSummary(ctx context.Context, content, title, url string) string {
	if content == "" {
		return ""
	}
	if e.summarizer != nil {
		if s, err := e.summarizer.Summarize(ctx, content, title, url); err == nil && s != "" {
			return s
		} else if err != nil {
			e.log.WithError(err).Warn("summarizer failed, using local summary")
		}
	}
	return basicSummary(content)
}

// capture takes and stores a screenshot, best effort. A nil return means
// the capture failed; the run continues regardless.
func (e *Engine) capture(ctx context.Context, browser interfaces.Browser, reportID, description string, isResult, isFailure bool) *entities.ScreenshotRecord {
	if e.store == nil {
		return nil
	}
	png, err := browser.Screenshot(ctx)
	if err != nil {
		e.log.WithError(err).Debug("screenshot failed")
		return nil
	}
	title, _ := browser.Title()
	url := browser.URL()
	preview, _ := browser.PageText(ctx)
	if len(preview) > 200 {
		preview = preview[:200]
	}
	record, err := e.store.Save(reportID, description, png, entities.PageAnalysis{
		Site:        classifySite(url),
		URL:         url,
		Title:       title,
		TextPreview: preview,
	}, isResult, isFailure)
	if err != nil {
		e.log.WithError(err).Warn("could not store screenshot")
		return nil
	}
	return record
}

func (e *Engine) appendDataSummary(result *entities.ExecutionResult, tracker *security.DataTracker) {
	line := tracker.SummaryLine()
	if line == "" {
		return
	}
	result.Steps = append(result.Steps, entities.ExecutionStep{
		Step:    len(result.Steps) + 1,
		Action:  entities.ActionDataSummary,
		Status:  entities.StatusInfo,
		Details: line,
	})
}

func summarize(steps []entities.ExecutionStep) entities.ExecutionSummary {
	s := entities.ExecutionSummary{TotalSteps: len(steps)}
	for _, st := range steps {
		switch st.Status {
		case entities.StatusPassed:
			s.PassedSteps++
		case entities.StatusFailed:
			s.FailedSteps++
		}
	}
	if s.TotalSteps > 0 {
		s.SuccessRate = float64(s.PassedSteps) / float64(s.TotalSteps) * 100
	}
	return s
}

func stepLabel(action entities.Action) string {
	if action.Description != "" {
		return action.Description
	}
	return string(action.Kind)
}

// classifySite maps a URL onto the site id used by screenshots and state.
func classifySite(url string) string {
	u := strings.ToLower(url)
	switch {
	case strings.Contains(u, "linkedin"):
		return "linkedin"
	case strings.Contains(u, "twitter") || strings.Contains(u, "x.com"):
		return "twitter"
	case strings.Contains(u, "facebook"):
		return "facebook"
	case strings.Contains(u, "instagram"):
		return "instagram"
	case strings.Contains(u, "google"):
		return "google"
	case strings.Contains(u, "wikipedia"):
		return "wikipedia"
	case strings.Contains(u, "amazon"):
		return "amazon"
	case strings.Contains(u, "flipkart"):
		return "flipkart"
	case strings.Contains(u, "youtube"):
		return "youtube"
	case strings.Contains(u, "reddit"):
		return "reddit"
	case strings.Contains(u, "github"):
		return "github"
	}
	return ""
}
