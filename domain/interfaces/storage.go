package interfaces

import "qa_automation/domain/entities"

// ScreenshotStore persists raw screenshot bytes under a
// content-addressed-by-filename location. Retention and HTTP exposure are
// external concerns.
type ScreenshotStore interface {
	// Save writes the PNG (and a thumbnail) and returns the stored record.
	Save(reportID, description string, png []byte, analysis entities.PageAnalysis, isResult, isFailure bool) (*entities.ScreenshotRecord, error)

	// List returns the records stored for one report, thumbnails excluded.
	List(reportID string) ([]entities.ScreenshotRecord, error)
}
