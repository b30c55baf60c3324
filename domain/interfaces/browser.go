package interfaces

import (
	"context"
	"time"
)

// Browser is one live, automatable browser session. A session belongs to
// exactly one run; implementations are not safe for concurrent runs.
type Browser interface {
	// Navigate opens a URL and waits for the document to load.
	Navigate(ctx context.Context, url string) error

	// WaitVisible waits until the selector resolves to a visible element,
	// up to the given timeout.
	WaitVisible(ctx context.Context, selector string, timeout time.Duration) error

	// Fill clears the target field and writes value into it.
	Fill(ctx context.Context, selector, value string) error

	// Click clicks the first element matching the selector.
	Click(ctx context.Context, selector string) error

	// ClickText clicks the first element whose visible text matches.
	ClickText(ctx context.Context, text string) error

	// SelectOption selects a dropdown entry by value, label or index.
	SelectOption(ctx context.Context, selector, value string) error

	// Press sends a key to the element matching the selector.
	Press(ctx context.Context, selector, key string) error

	// PageText returns the rendered text of the document body.
	PageText(ctx context.Context) (string, error)

	// Content returns the full page HTML.
	Content(ctx context.Context) (string, error)

	// ExtractContent returns the meaningful visible content of the current
	// page using site-aware extraction rules.
	ExtractContent(ctx context.Context) (string, error)

	// URL returns the current page URL.
	URL() string

	// Title returns the current page title.
	Title() (string, error)

	// Screenshot captures the current page as PNG bytes.
	Screenshot(ctx context.Context) ([]byte, error)

	// WaitStable waits for network idle plus a settle delay, best effort.
	WaitStable(ctx context.Context, extra time.Duration)

	// DismissCookieBanner clicks through a cookie-consent banner if one is
	// present; absence is not an error.
	DismissCookieBanner(ctx context.Context)

	// Close tears the session down. Safe to call on an already-closed
	// session.
	Close() error
}
