package browser

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/playwright-community/playwright-go"

	"qa_automation/domain/catalog"
	"qa_automation/domain/interfaces"
)

type browserController struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	context playwright.BrowserContext
	page    playwright.Page
}

const defaultTimeoutMs = 40000

// NewBrowserController - launches a Chromium session configured for form
// automation and returns it behind the Browser port.
func NewBrowserController(ctx context.Context, headless bool) (interfaces.Browser, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to start playwright: %w", err)
	}

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(headless),
		Args: []string{
			"--disable-blink-features=AutomationControlled",
			"--start-maximized",
			"--no-sandbox",
			"--disable-dev-shm-usage",
			"--disable-infobars",
			"--disable-notifications",
		},
	})
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	browserContext, err := browser.NewContext(playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{
			Width:  1920,
			Height: 1080,
		},
		Locale:    playwright.String("en-US"),
		UserAgent: playwright.String("Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"),
	})
	if err != nil {
		browser.Close()
		pw.Stop()
		return nil, fmt.Errorf("failed to create context: %w", err)
	}

	page, err := browserContext.NewPage()
	if err != nil {
		browserContext.Close()
		browser.Close()
		pw.Stop()
		return nil, fmt.Errorf("failed to create page: %w", err)
	}
	page.SetDefaultTimeout(defaultTimeoutMs)

	page.OnDialog(func(dialog playwright.Dialog) {
		dialog.Accept()
	})

	return &browserController{
		pw:      pw,
		browser: browser,
		context: browserContext,
		page:    page,
	}, nil
}

// Navigate - opens a URL, lets the page settle and clears any consent
// banner sitting over it.
func (b *browserController) Navigate(ctx context.Context, url string) error {
	_, err := b.page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(30000),
	})
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", url, err)
	}
	b.WaitStable(ctx, time.Second)
	b.DismissCookieBanner(ctx)
	return nil
}

// WaitVisible - waits for the selector to resolve to a visible element.
func (b *browserController) WaitVisible(ctx context.Context, selector string, timeout time.Duration) error {
	return b.page.Locator(selector).First().WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(float64(timeout.Milliseconds())),
	})
}

// Fill - scrolls the field into view, clears it and writes the value.
func (b *browserController) Fill(ctx context.Context, selector, value string) error {
	locator := b.page.Locator(selector).First()

	if err := locator.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(5000),
	}); err != nil {
		return fmt.Errorf("input field not found: %w", err)
	}

	locator.ScrollIntoViewIfNeeded()
	locator.Click()

	if err := locator.Clear(); err != nil {
		// Some custom inputs reject Clear; select-all and delete instead.
		locator.Press("Control+a")
		locator.Press("Backspace")
	}
	if err := locator.Fill(value); err != nil {
		return err
	}

	time.Sleep(200 * time.Millisecond)
	return nil
}

// Click - clicks the first visible element matching the selector.
func (b *browserController) Click(ctx context.Context, selector string) error {
	locator := b.page.Locator(selector).First()

	if err := locator.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(5000),
	}); err != nil {
		return fmt.Errorf("element not found or not visible: %w", err)
	}

	if err := locator.Click(); err != nil {
		return err
	}

	b.page.WaitForLoadState(playwright.PageWaitForLoadStateOptions{
		State:   playwright.LoadStateNetworkidle,
		Timeout: playwright.Float(5000),
	})
	time.Sleep(300 * time.Millisecond)
	return nil
}

// ClickText - clicks the first element whose visible text matches.
func (b *browserController) ClickText(ctx context.Context, text string) error {
	locator := b.page.GetByText(text, playwright.PageGetByTextOptions{
		Exact: playwright.Bool(false),
	}).First()
	if err := locator.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(5000),
	}); err != nil {
		return fmt.Errorf("no element with text %q: %w", text, err)
	}
	return locator.Click()
}

// SelectOption - selects a dropdown entry, trying label then value.
func (b *browserController) SelectOption(ctx context.Context, selector, value string) error {
	locator := b.page.Locator(selector).First()
	if _, err := locator.SelectOption(playwright.SelectOptionValues{
		Labels: &[]string{value},
	}); err == nil {
		return nil
	}
	_, err := locator.SelectOption(playwright.SelectOptionValues{
		Values: &[]string{value},
	})
	return err
}

// Press - sends a key to the matching element.
func (b *browserController) Press(ctx context.Context, selector, key string) error {
	return b.page.Locator(selector).First().Press(key)
}

// PageText - returns the rendered text of the document body.
func (b *browserController) PageText(ctx context.Context) (string, error) {
	text, err := b.page.Locator("body").InnerText()
	if err != nil {
		return "", fmt.Errorf("failed to read page text: %w", err)
	}
	return text, nil
}

// Content - returns the full page HTML.
func (b *browserController) Content(ctx context.Context) (string, error) {
	return b.page.Content()
}

// URL - returns the current page URL.
func (b *browserController) URL() string {
	return b.page.URL()
}

// Title - returns the current page title.
func (b *browserController) Title() (string, error) {
	return b.page.Title()
}

// Screenshot - captures the viewport as PNG bytes.
func (b *browserController) Screenshot(ctx context.Context) ([]byte, error) {
	return b.page.Screenshot(playwright.PageScreenshotOptions{
		Type: playwright.ScreenshotTypePng,
	})
}

// WaitStable - waits for network idle plus a settle delay, best effort.
func (b *browserController) WaitStable(ctx context.Context, extra time.Duration) {
	b.page.WaitForLoadState(playwright.PageWaitForLoadStateOptions{
		State:   playwright.LoadStateNetworkidle,
		Timeout: playwright.Float(5000),
	})
	if extra > 0 {
		time.Sleep(extra)
	}
}

// DismissCookieBanner - clicks through a consent banner if one is
// present. Absence is the normal case and not an error.
func (b *browserController) DismissCookieBanner(ctx context.Context) {
	for _, selector := range catalog.CookieBannerSelectors {
		locator := b.page.Locator(selector).First()
		visible, err := locator.IsVisible()
		if err != nil || !visible {
			continue
		}
		if err := locator.Click(); err == nil {
			time.Sleep(500 * time.Millisecond)
			return
		}
	}
}

// Close - tears the session down. Already-closed errors are swallowed so
// a double close during shutdown stays quiet.
func (b *browserController) Close() error {
	var closeErr error

	if b.context != nil {
		if err := b.context.Close(); err != nil && !alreadyClosed(err) {
			closeErr = fmt.Errorf("failed to close context: %w", err)
		}
		b.context = nil
	}

	if b.browser != nil {
		if err := b.browser.Close(); err != nil && !alreadyClosed(err) {
			if closeErr != nil {
				closeErr = fmt.Errorf("%v; failed to close browser: %w", closeErr, err)
			} else {
				closeErr = fmt.Errorf("failed to close browser: %w", err)
			}
		}
		b.browser = nil
	}

	if b.pw != nil {
		b.pw.Stop()
		b.pw = nil
	}

	return closeErr
}

// alreadyClosed - reports whether an error just says the target is gone.
func alreadyClosed(err error) bool {
	s := err.Error()
	return strings.Contains(s, "closed") || strings.Contains(s, "target closed")
}
