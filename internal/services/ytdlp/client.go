package ytdlp

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strings"
	"time"

	"singsync/internal/logging"
	"singsync/internal/media"
	"singsync/internal/services"
)

// DefaultBinary is the downloader command resolved from PATH.
const DefaultBinary = "yt-dlp"

// Default per-invocation timeouts. Audio fetches pull full streams and get
// more headroom than subtitle-only fetches.
const (
	DefaultCaptionTimeout = 180 * time.Second
	DefaultAudioTimeout   = 240 * time.Second
)

// Client invokes the downloader CLI.
type Client struct {
	binary         string
	captionTimeout time.Duration
	audioTimeout   time.Duration
	runner         services.CommandRunner
	logger         *slog.Logger
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

// WithTimeouts overrides the caption and audio fetch timeouts.
func WithTimeouts(caption, audio time.Duration) Option {
	return func(c *Client) {
		if caption > 0 {
			c.captionTimeout = caption
		}
		if audio > 0 {
			c.audioTimeout = audio
		}
	}
}

// New constructs a downloader client.
func New(binary string, logger *slog.Logger, opts ...Option) *Client {
	if strings.TrimSpace(binary) == "" {
		binary = DefaultBinary
	}
	c := &Client{
		binary:         binary,
		captionTimeout: DefaultCaptionTimeout,
		audioTimeout:   DefaultAudioTimeout,
		runner:         services.NewCommandRunner(),
		logger:         logging.NewComponentLogger(logger, "ytdlp"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchCaptions requests every subtitle track, manual and auto-generated, in
// VTT form. Stale caption files are deleted first so a failed fetch cannot
// surface a previous run's tracks. Returns the caption files present
// afterward; an empty list with a nil error means the media simply has none.
func (c *Client) FetchCaptions(ctx context.Context, mediaID string, layout media.Layout) ([]string, error) {
	dir, err := layout.EnsureMediaDir(mediaID)
	if err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "ytdlp", "captions", "ensure workdir", err)
	}
	layout.RemoveCaptionFiles(mediaID)

	passes := []struct {
		flag     string
		template string
	}{
		{"--write-subs", "captions.%(lang)s.%(ext)s"},
		{"--write-auto-subs", "captions.%(lang)s.asr.%(ext)s"},
	}
	var lastErr error
	for _, pass := range passes {
		args := []string{
			"--skip-download",
			pass.flag,
			"--sub-langs", "all",
			"--convert-subs", "vtt",
			"--output", pass.template,
			"--no-playlist",
			"--",
			mediaID,
		}
		result, err := c.runner.Run(ctx, services.CommandRequest{
			Binary:  c.binary,
			Args:    args,
			Dir:     dir,
			Timeout: c.captionTimeout,
		})
		if err != nil {
			lastErr = err
			c.logger.Warn("caption fetch pass failed",
				logging.String(logging.FieldEventType, "caption_fetch_failed"),
				logging.String("media_id", mediaID),
				logging.Int("exit_code", result.ExitCode),
				logging.Error(err))
		}
	}

	files := layout.CaptionFiles(mediaID)
	if len(files) == 0 && lastErr != nil {
		return nil, lastErr
	}
	c.logger.Debug("caption fetch complete",
		logging.String("media_id", mediaID),
		logging.Int("track_count", len(files)))
	return files, nil
}

// FetchAudio ensures the media's audio file exists locally, reusing a cached
// copy when present. Returns the audio path.
func (c *Client) FetchAudio(ctx context.Context, mediaID string, layout media.Layout) (string, error) {
	dir, err := layout.EnsureMediaDir(mediaID)
	if err != nil {
		return "", services.Wrap(services.ErrConfiguration, "ytdlp", "audio", "ensure workdir", err)
	}
	audioPath := layout.AudioPath(mediaID)
	if info, statErr := os.Stat(audioPath); statErr == nil && info.Size() > 0 {
		c.logger.Debug("reusing cached audio", logging.String("media_id", mediaID))
		return audioPath, nil
	}

	args := []string{
		"--format", "bestaudio[ext=m4a]/bestaudio",
		"--extract-audio",
		"--audio-format", "m4a",
		"--output", "audio.%(ext)s",
		"--no-playlist",
		"--",
		mediaID,
	}
	result, err := c.runner.Run(ctx, services.CommandRequest{
		Binary:  c.binary,
		Args:    args,
		Dir:     dir,
		Timeout: c.audioTimeout,
	})
	if err != nil {
		c.logger.Warn("audio fetch failed",
			logging.String(logging.FieldEventType, "audio_fetch_failed"),
			logging.String("media_id", mediaID),
			logging.Int("exit_code", result.ExitCode),
			logging.Error(err))
	}

	// The file existing is the success signal regardless of exit code.
	if info, statErr := os.Stat(audioPath); statErr == nil && info.Size() > 0 {
		return audioPath, nil
	}
	if err == nil {
		err = services.Wrap(services.ErrExternalTool, "ytdlp", "audio", "no output file produced", nil)
	}
	return "", err
}

// Available reports whether the downloader binary can run at all, used by
// preflight checks.
func (c *Client) Available(ctx context.Context) bool {
	result, err := c.runner.Run(ctx, services.CommandRequest{
		Binary:  c.binary,
		Args:    []string{"--version"},
		Timeout: 10 * time.Second,
	})
	return err == nil && result.ExitCode == 0
}

// IsToolMissing reports whether an error looks like the binary being absent
// rather than a failed invocation.
func IsToolMissing(err error) bool {
	return errors.Is(err, services.ErrExternalTool) && strings.Contains(err.Error(), "lookup")
}
