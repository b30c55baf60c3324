package interfaces

import "context"

// Summarizer produces a short human-readable synopsis of a page. It models
// an external service: callers must tolerate errors and fall back to a
// local summary.
type Summarizer interface {
	Summarize(ctx context.Context, pageText, title, url string) (string, error)
}
