package transcribe

import (
	"context"
	"log/slog"

	"singsync/internal/logging"
	"singsync/internal/media"
	"singsync/internal/timedtext"
)

// AudioFetcher downloads the media's audio track, reusing a cached copy.
type AudioFetcher interface {
	FetchAudio(ctx context.Context, mediaID string, layout media.Layout) (string, error)
}

// Transcriber runs the external transcription tool against local audio.
type Transcriber interface {
	Transcribe(ctx context.Context, mediaID string, layout media.Layout) []timedtext.Line
}

// Source chains audio download and transcription into one best-effort
// segment timeline. Every failure degrades to an empty timeline.
type Source struct {
	layout      media.Layout
	audio       AudioFetcher
	transcriber Transcriber
	logger      *slog.Logger
}

// NewSource builds a transcription source. A nil fetcher skips the download
// step and transcribes whatever audio is already on disk.
func NewSource(layout media.Layout, audio AudioFetcher, transcriber Transcriber, logger *slog.Logger) *Source {
	return &Source{
		layout:      layout,
		audio:       audio,
		transcriber: transcriber,
		logger:      logging.NewComponentLogger(logger, "transcribe"),
	}
}

// Segments returns the transcription segment timeline for a media id, or nil
// when audio cannot be obtained or the tool fails.
func (s *Source) Segments(ctx context.Context, mediaID string) []timedtext.Line {
	if s.transcriber == nil {
		return nil
	}
	if s.audio != nil {
		if _, err := s.audio.FetchAudio(ctx, mediaID, s.layout); err != nil {
			s.logger.Warn("audio download failed",
				logging.String("media_id", mediaID),
				logging.Error(err))
			return nil
		}
	}
	segments := s.transcriber.Transcribe(ctx, mediaID, s.layout)
	s.logger.Debug("transcription finished",
		logging.String("media_id", mediaID),
		logging.Int("segment_count", len(segments)))
	return segments
}
