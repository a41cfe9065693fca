package results

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"singsync/internal/logging"
	"singsync/internal/lyrics"
	"singsync/internal/media"
)

// FileStore keeps each result as lyrics.json inside the media's working
// directory. Writes are atomic (temp file plus rename) so a crashed writer
// never leaves a truncated result behind.
type FileStore struct {
	layout media.Layout
	logger *slog.Logger
}

// NewFileStore builds a file-backed result store.
func NewFileStore(layout media.Layout, logger *slog.Logger) *FileStore {
	return &FileStore{
		layout: layout,
		logger: logging.NewComponentLogger(logger, "results"),
	}
}

// Get loads the persisted result for a media id. Missing or malformed files
// simply report a miss.
func (s *FileStore) Get(_ context.Context, mediaID string) (lyrics.Result, bool) {
	data, err := os.ReadFile(s.layout.LyricsPath(mediaID))
	if err != nil {
		return lyrics.Result{}, false
	}
	var result lyrics.Result
	if err := json.Unmarshal(data, &result); err != nil {
		s.logger.Warn("discarding malformed result file",
			logging.String("media_id", mediaID),
			logging.Error(err))
		return lyrics.Result{}, false
	}
	if result.MediaID == "" {
		result.MediaID = mediaID
	}
	return result, true
}

// Put writes the result for a media id, creating the directory as needed.
func (s *FileStore) Put(_ context.Context, result lyrics.Result) error {
	if result.MediaID == "" {
		return fmt.Errorf("store result: empty media id")
	}
	if _, err := s.layout.EnsureMediaDir(result.MediaID); err != nil {
		return fmt.Errorf("store result: %w", err)
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("store result: %w", err)
	}

	path := s.layout.LyricsPath(result.MediaID)
	tmp, err := os.CreateTemp(filepath.Dir(path), ".lyrics-*.json")
	if err != nil {
		return fmt.Errorf("store result: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("store result: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("store result: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("store result: %w", err)
	}
	return nil
}
