package captions

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"singsync/internal/logging"
	"singsync/internal/media"
	"singsync/internal/script"
	"singsync/internal/timedtext"
)

// Fetcher downloads caption tracks for a media id into its working
// directory and returns their file paths.
type Fetcher interface {
	FetchCaptions(ctx context.Context, mediaID string, layout media.Layout) ([]string, error)
}

// Source turns the downloader's caption tracks into timed lyric lines.
type Source struct {
	layout  media.Layout
	fetcher Fetcher
	logger  *slog.Logger
}

// NewSource builds a caption source around a downloader.
func NewSource(layout media.Layout, fetcher Fetcher, logger *slog.Logger) *Source {
	return &Source{
		layout:  layout,
		fetcher: fetcher,
		logger:  logging.NewComponentLogger(logger, "captions"),
	}
}

// Fetch downloads all caption tracks, selects the best one for the expected
// script and parses it. Returns false for any failure, including a winner
// whose content fails the script check.
func (s *Source) Fetch(ctx context.Context, mediaID string, expected script.Type) ([]timedtext.Line, bool) {
	if s.fetcher == nil {
		return nil, false
	}
	log := s.logger.With(logging.String("media_id", mediaID))

	paths, err := s.fetcher.FetchCaptions(ctx, mediaID, s.layout)
	if err != nil {
		log.Warn("caption download failed", logging.Error(err))
		return nil, false
	}
	winner, ok := selectTrack(paths, expected)
	if !ok {
		log.Debug("no caption tracks available")
		return nil, false
	}

	data, err := os.ReadFile(winner)
	if err != nil {
		log.Warn("caption track unreadable",
			logging.String("path", filepath.Base(winner)),
			logging.Error(err))
		return nil, false
	}
	lines := timedtext.ParseVTT(string(data))
	if len(lines) == 0 {
		log.Debug("caption track parsed to nothing",
			logging.String("path", filepath.Base(winner)))
		return nil, false
	}
	if !script.Compatible(timedtext.JoinText(lines), expected) {
		log.Info("caption track rejected by script check",
			logging.String("path", filepath.Base(winner)),
			logging.String("expected_script", string(expected)))
		return nil, false
	}
	log.Info("caption track selected",
		logging.String("path", filepath.Base(winner)),
		logging.Int("line_count", len(lines)))
	return lines, true
}
