// Package storage persists run artifacts on the local filesystem.
package storage

import (
	"bytes"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/nfnt/resize"
	"github.com/sirupsen/logrus"

	"qa_automation/domain/entities"
)

const (
	screenshotsSubdir = "screenshots"
	thumbPrefix       = "thumb_"
	thumbWidth        = 320
	thumbHeight       = 240
	descriptionLimit  = 30
)

// FileScreenshotStore writes screenshots and their thumbnails under a
// reports directory, one flat screenshots folder keyed by filename.
type FileScreenshotStore struct {
	dir    string
	logger *logrus.Logger
}

// NewFileScreenshotStore creates the screenshots directory under dir.
func NewFileScreenshotStore(dir string, logger *logrus.Logger) (*FileScreenshotStore, error) {
	full := filepath.Join(dir, screenshotsSubdir)
	if err := os.MkdirAll(full, 0755); err != nil {
		return nil, fmt.Errorf("failed to create screenshots directory: %w", err)
	}
	return &FileScreenshotStore{dir: full, logger: logger}, nil
}

// Save writes the PNG and a thumbnail and returns the stored record.
// A thumbnail failure is logged and leaves ThumbnailPath empty; the
// full-size capture is what matters.
func (s *FileScreenshotStore) Save(reportID, description string, data []byte, analysis entities.PageAnalysis, isResult, isFailure bool) (*entities.ScreenshotRecord, error) {
	now := time.Now()
	filename := s.filename(reportID, description, now, isResult)
	path := filepath.Join(s.dir, filename)

	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, fmt.Errorf("failed to write screenshot: %w", err)
	}

	thumbPath := ""
	if tp, err := s.writeThumbnail(filename, data); err != nil {
		s.logger.WithError(err).Debug("thumbnail generation failed")
	} else {
		thumbPath = tp
	}

	return &entities.ScreenshotRecord{
		Filename:         filename,
		Path:             path,
		ThumbnailPath:    thumbPath,
		Timestamp:        now,
		IsResultPage:     isResult,
		IsFailureCapture: isFailure,
		Analysis:         analysis,
	}, nil
}

func (s *FileScreenshotStore) filename(reportID, description string, ts time.Time, isResult bool) string {
	prefix := "screenshot_"
	if isResult {
		prefix = "result_page_"
	}
	return fmt.Sprintf("%s%s_%s_%s.png",
		prefix, reportID, cleanDescription(description), ts.Format("20060102_150405"))
}

func (s *FileScreenshotStore) writeThumbnail(filename string, data []byte) (string, error) {
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to decode screenshot: %w", err)
	}
	thumb := resize.Thumbnail(thumbWidth, thumbHeight, img, resize.Lanczos3)

	path := filepath.Join(s.dir, thumbPrefix+filename)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create thumbnail file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, thumb); err != nil {
		return "", fmt.Errorf("failed to encode thumbnail: %w", err)
	}
	return path, nil
}

// List returns the records stored for one report, oldest first.
// Thumbnails are excluded; analysis metadata is not persisted and comes
// back empty.
func (s *FileScreenshotStore) List(reportID string) ([]entities.ScreenshotRecord, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read screenshots directory: %w", err)
	}

	var records []entities.ScreenshotRecord
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, thumbPrefix) {
			continue
		}
		if !strings.Contains(name, reportID) || !strings.HasSuffix(name, ".png") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		records = append(records, entities.ScreenshotRecord{
			Filename:     name,
			Path:         filepath.Join(s.dir, name),
			Timestamp:    info.ModTime(),
			IsResultPage: strings.HasPrefix(name, "result_page_"),
		})
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Timestamp.Before(records[j].Timestamp)
	})
	return records, nil
}

// cleanDescription makes a description safe for a filename.
func cleanDescription(description string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(description) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '-', r == '_':
			b.WriteRune('_')
		}
		if b.Len() >= descriptionLimit {
			break
		}
	}
	if b.Len() == 0 {
		return "page"
	}
	return strings.Trim(b.String(), "_")
}
