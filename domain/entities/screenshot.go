package entities

import "time"

// PageAnalysis is the lightweight page description attached to a
// screenshot: which site it looks like, its title and a short text preview.
type PageAnalysis struct {
	Site        string `json:"site"`
	URL         string `json:"url"`
	Title       string `json:"title"`
	TextPreview string `json:"text_preview,omitempty"`
	Summary     string `json:"summary,omitempty"`
}

// ScreenshotRecord describes one stored screenshot. Created by the capture
// subsystem and never mutated; retention is an external concern.
type ScreenshotRecord struct {
	Filename         string       `json:"filename"`
	Path             string       `json:"path"`
	ThumbnailPath    string       `json:"thumbnail_path,omitempty"`
	Timestamp        time.Time    `json:"timestamp"`
	IsResultPage     bool         `json:"is_result_page,omitempty"`
	IsFailureCapture bool         `json:"is_failure_capture,omitempty"`
	Analysis         PageAnalysis `json:"analysis"`
}
