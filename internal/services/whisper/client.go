package whisper

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"time"

	"singsync/internal/logging"
	"singsync/internal/media"
	"singsync/internal/services"
	"singsync/internal/timedtext"
)

// DefaultBinary is the transcription command resolved from PATH.
const DefaultBinary = "whisper"

// DefaultModel balances accuracy against CPU cost for song-length audio.
const DefaultModel = "small"

// DefaultTimeout bounds one transcription run. CPU inference on a full song
// is slow, so this is generous.
const DefaultTimeout = 600 * time.Second

// Client invokes the transcription CLI.
type Client struct {
	binary  string
	model   string
	timeout time.Duration
	runner  services.CommandRunner
	logger  *slog.Logger
}

// Option configures the client.
type Option func(*Client)

// WithRunner injects a custom command runner (primarily for tests).
func WithRunner(runner services.CommandRunner) Option {
	return func(c *Client) {
		if runner != nil {
			c.runner = runner
		}
	}
}

// WithTimeout overrides the transcription timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// New constructs a transcription client.
func New(binary, model string, logger *slog.Logger, opts ...Option) *Client {
	if strings.TrimSpace(binary) == "" {
		binary = DefaultBinary
	}
	if strings.TrimSpace(model) == "" {
		model = DefaultModel
	}
	c := &Client{
		binary:  binary,
		model:   model,
		timeout: DefaultTimeout,
		runner:  services.NewCommandRunner(),
		logger:  logging.NewComponentLogger(logger, "whisper"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Model returns the configured model selector for logging.
func (c *Client) Model() string { return c.model }

// Transcribe runs the tool against the media's audio file and parses its
// segment-list JSON. Any failure mode degrades to an empty segment list.
func (c *Client) Transcribe(ctx context.Context, mediaID string, layout media.Layout) []timedtext.Line {
	audioPath := layout.AudioPath(mediaID)
	if info, err := os.Stat(audioPath); err != nil || info.Size() == 0 {
		c.logger.Debug("no audio to transcribe", logging.String("media_id", mediaID))
		return nil
	}

	outPath := layout.TranscriptPath(mediaID)
	// Stale-data guard: a previous run's transcript must not be mistaken
	// for this run's output.
	_ = os.Remove(outPath)

	args := []string{
		audioPath,
		"--model", c.model,
		"--output_format", "json",
		"--output_dir", layout.MediaDir(mediaID),
	}
	result, err := c.runner.Run(ctx, services.CommandRequest{
		Binary:  c.binary,
		Args:    args,
		Dir:     layout.MediaDir(mediaID),
		Timeout: c.timeout,
	})
	if err != nil {
		c.logger.Warn("transcription failed",
			logging.String(logging.FieldEventType, "transcription_failed"),
			logging.String("media_id", mediaID),
			logging.Int("exit_code", result.ExitCode),
			logging.Error(err))
		return nil
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		c.logger.Warn("transcription produced no output",
			logging.String(logging.FieldEventType, "transcription_no_output"),
			logging.String("media_id", mediaID))
		return nil
	}

	segments := timedtext.ParseSegments(data)
	c.logger.Debug("transcription complete",
		logging.String("media_id", mediaID),
		logging.Int("segment_count", len(segments)))
	return segments
}
