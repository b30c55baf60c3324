package engine

import (
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qa_automation/domain/entities"
	"qa_automation/domain/interfaces"
)

// fakeBrowser is a scriptable Browser: selectors listed in visible resolve,
// everything else times out.
type fakeBrowser struct {
	visible map[string]bool

	pageText string
	html     string
	url      string
	title    string
	content  string

	fills   map[string]string
	clicks  []string
	pressed []string
	waited  []string
	closed  bool
}

func newFakeBrowser() *fakeBrowser {
	return &fakeBrowser{
		visible: map[string]bool{},
		fills:   map[string]string{},
		url:     "https://www.example.com",
		title:   "Example",
	}
}

func (f *fakeBrowser) Navigate(ctx context.Context, url string) error {
	f.url = url
	return nil
}

func (f *fakeBrowser) WaitVisible(ctx context.Context, selector string, timeout time.Duration) error {
	f.waited = append(f.waited, selector)
	if f.visible[selector] {
		return nil
	}
	return assert.AnError
}

func (f *fakeBrowser) Fill(ctx context.Context, selector, value string) error {
	f.fills[selector] = value
	return nil
}

func (f *fakeBrowser) Click(ctx context.Context, selector string) error {
	f.clicks = append(f.clicks, selector)
	return nil
}

func (f *fakeBrowser) ClickText(ctx context.Context, text string) error {
	f.clicks = append(f.clicks, "text:"+text)
	return nil
}

func (f *fakeBrowser) SelectOption(ctx context.Context, selector, value string) error {
	f.fills[selector] = value
	return nil
}

func (f *fakeBrowser) Press(ctx context.Context, selector, key string) error {
	f.pressed = append(f.pressed, selector+":"+key)
	return nil
}

func (f *fakeBrowser) PageText(ctx context.Context) (string, error) { return f.pageText, nil }
func (f *fakeBrowser) Content(ctx context.Context) (string, error)  { return f.html, nil }
func (f *fakeBrowser) ExtractContent(ctx context.Context) (string, error) {
	return f.content, nil
}
func (f *fakeBrowser) URL() string                                  { return f.url }
func (f *fakeBrowser) Title() (string, error)                       { return f.title, nil }
func (f *fakeBrowser) Screenshot(ctx context.Context) ([]byte, error) {
	return []byte("png"), nil
}
func (f *fakeBrowser) WaitStable(ctx context.Context, extra time.Duration) {}
func (f *fakeBrowser) DismissCookieBanner(ctx context.Context)             {}
func (f *fakeBrowser) Close() error {
	f.closed = true
	return nil
}

// fakeStore records saves in memory.
type fakeStore struct {
	saved []entities.ScreenshotRecord
}

func (s *fakeStore) Save(reportID, description string, png []byte, analysis entities.PageAnalysis, isResult, isFailure bool) (*entities.ScreenshotRecord, error) {
	rec := entities.ScreenshotRecord{
		Filename:         description,
		Path:             "/fake/" + description,
		Timestamp:        time.Now(),
		IsResultPage:     isResult,
		IsFailureCapture: isFailure,
		Analysis:         analysis,
	}
	s.saved = append(s.saved, rec)
	return &rec, nil
}

func (s *fakeStore) List(reportID string) ([]entities.ScreenshotRecord, error) {
	return s.saved, nil
}

func newTestEngine(browser *fakeBrowser, store interfaces.ScreenshotStore) *Engine {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	e := New(func(ctx context.Context, headless bool) (interfaces.Browser, error) {
		return browser, nil
	}, store, nil, log)
	e.candidateWait = time.Millisecond
	e.sleep = func(ctx context.Context, d time.Duration) {}
	return e
}

func countKind(steps []entities.ExecutionStep, kind entities.ActionKind) int {
	n := 0
	for _, s := range steps {
		if s.Action == kind {
			n++
		}
	}
	return n
}

func TestRunSelectorFallbackFirstSuccessWins(t *testing.T) {
	browser := newFakeBrowser()
	browser.visible["#c2"] = true
	browser.visible["#c3"] = true
	e := newTestEngine(browser, &fakeStore{})

	actions := []entities.Action{
		{Kind: entities.ActionType, Selector: "#c1,#c2,#c3",
			Field: entities.FieldSearch, Value: "apples"},
	}
	result, err := e.Run(context.Background(), actions, Options{ReportID: "r1"})
	require.NoError(t, err)

	assert.Equal(t, "apples", browser.fills["#c2"])
	assert.NotContains(t, browser.waited, "#c3")
	assert.Equal(t, entities.StatusPassed, result.Steps[0].Status)
}

func TestRunHardFailureStopsExecution(t *testing.T) {
	browser := newFakeBrowser()
	e := newTestEngine(browser, &fakeStore{})

	actions := []entities.Action{
		{Kind: entities.ActionType, Selector: "#missing",
			Field: entities.FieldEmail, Value: "bob@test.com"},
		{Kind: entities.ActionNavigate, URL: "https://never.example.com"},
	}
	result, err := e.Run(context.Background(), actions, Options{ReportID: "r2"})
	require.NoError(t, err)

	assert.Equal(t, entities.StatusFailed, result.Steps[0].Status)
	assert.Equal(t, 1, countKind(result.Steps, entities.ActionStopped))
	// The navigate after the failure must never run.
	assert.NotEqual(t, "https://never.example.com", browser.url)
}

func TestRunSoftFailureContinues(t *testing.T) {
	browser := newFakeBrowser()
	browser.pageText = "nothing relevant here"
	e := newTestEngine(browser, &fakeStore{})

	actions := []entities.Action{
		{Kind: entities.ActionValidate, Validation: entities.ValidateLogin, MinIndicators: 1},
		{Kind: entities.ActionNavigate, URL: "https://after.example.com"},
	}
	result, err := e.Run(context.Background(), actions, Options{ReportID: "r3"})
	require.NoError(t, err)

	assert.Equal(t, entities.StatusFailed, result.Steps[0].Status)
	assert.Zero(t, countKind(result.Steps, entities.ActionStopped))
	assert.Equal(t, "https://after.example.com", browser.url)
}

func TestRunAlwaysCapturesResultPage(t *testing.T) {
	for name, actions := range map[string][]entities.Action{
		"success": {{Kind: entities.ActionNavigate, URL: "https://www.example.com"}},
		"failure": {{Kind: entities.ActionClick, Selector: "#gone", MatchText: ""}},
		"empty":   {},
	} {
		t.Run(name, func(t *testing.T) {
			browser := newFakeBrowser()
			e := newTestEngine(browser, &fakeStore{})

			result, err := e.Run(context.Background(), actions, Options{ReportID: "r4"})
			require.NoError(t, err)
			assert.Equal(t, 1, countKind(result.Steps, entities.ActionResultCapture))
		})
	}
}

func TestRunMasksPasswords(t *testing.T) {
	browser := newFakeBrowser()
	browser.visible["#pw"] = true
	e := newTestEngine(browser, &fakeStore{})

	actions := []entities.Action{
		{Kind: entities.ActionType, Selector: "#pw",
			Field: entities.FieldPassword, Value: "hunter2"},
	}
	result, err := e.Run(context.Background(), actions, Options{ReportID: "r5"})
	require.NoError(t, err)

	assert.Contains(t, result.Steps[0].Details, "********")
	assert.NotContains(t, result.Steps[0].Details, "hunter2")
}

func TestRunRecordsDataProvenance(t *testing.T) {
	browser := newFakeBrowser()
	browser.visible["#email"] = true
	browser.visible["#pw"] = true
	e := newTestEngine(browser, &fakeStore{})

	actions := []entities.Action{
		{Kind: entities.ActionType, Selector: "#email",
			Field: entities.FieldEmail, Value: "a@b.com", Generated: true},
		{Kind: entities.ActionType, Selector: "#pw",
			Field: entities.FieldPassword, Value: "pw", Generated: false},
	}
	result, err := e.Run(context.Background(), actions, Options{ReportID: "r6"})
	require.NoError(t, err)

	assert.Equal(t, []entities.FieldKind{entities.FieldPassword}, result.DataUsage.Provided)
	assert.Equal(t, []entities.FieldKind{entities.FieldEmail}, result.DataUsage.Generated)
	assert.Equal(t, "mixed", result.DataUsage.Mode)
	assert.Equal(t, 1, countKind(result.Steps, entities.ActionDataSummary))
}

func TestRunSummaryCounters(t *testing.T) {
	browser := newFakeBrowser()
	browser.visible["#ok"] = true
	e := newTestEngine(browser, &fakeStore{})

	actions := []entities.Action{
		{Kind: entities.ActionNavigate, URL: "https://www.example.com"},
		{Kind: entities.ActionValidate, Validation: entities.ValidateLogin, MinIndicators: 1},
	}
	result, err := e.Run(context.Background(), actions, Options{ReportID: "r7"})
	require.NoError(t, err)

	s := result.Summary
	assert.Equal(t, len(result.Steps), s.TotalSteps)
	assert.Equal(t, s.TotalSteps, s.PassedSteps+s.FailedSteps+countInfoOrWarn(result.Steps))
	assert.InDelta(t, float64(s.PassedSteps)/float64(s.TotalSteps)*100, s.SuccessRate, 0.01)
}

func countInfoOrWarn(steps []entities.ExecutionStep) int {
	n := 0
	for _, s := range steps {
		if s.Status == entities.StatusInfo || s.Status == entities.StatusWarning {
			n++
		}
	}
	return n
}

func TestRunCancelledContext(t *testing.T) {
	browser := newFakeBrowser()
	e := newTestEngine(browser, &fakeStore{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	actions := []entities.Action{
		{Kind: entities.ActionNavigate, URL: "https://never.example.com"},
	}
	result, err := e.Run(ctx, actions, Options{ReportID: "r8"})
	require.NoError(t, err)

	assert.Equal(t, 1, countKind(result.Steps, entities.ActionStopped))
	assert.NotEqual(t, "https://never.example.com", browser.url)
	assert.Equal(t, 1, countKind(result.Steps, entities.ActionResultCapture))
}

func TestRunClosesBrowser(t *testing.T) {
	browser := newFakeBrowser()
	e := newTestEngine(browser, &fakeStore{})

	_, err := e.Run(context.Background(), nil, Options{ReportID: "r9"})
	require.NoError(t, err)
	assert.True(t, browser.closed)
}

func TestRunGeneratesReportID(t *testing.T) {
	browser := newFakeBrowser()
	e := newTestEngine(browser, &fakeStore{})

	result, err := e.Run(context.Background(), nil, Options{})
	require.NoError(t, err)
	assert.NotEmpty(t, result.ReportID)
}
