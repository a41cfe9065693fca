package daemon

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/gofrs/flock"

	"singsync/internal/captions"
	"singsync/internal/catalog"
	"singsync/internal/config"
	"singsync/internal/logging"
	"singsync/internal/lyrics"
	"singsync/internal/media"
	"singsync/internal/results"
	"singsync/internal/services/lrclib"
	"singsync/internal/services/whisper"
	"singsync/internal/services/ytdlp"
	"singsync/internal/transcribe"
)

// Daemon owns the resolver, its persistent store, and the HTTP API.
type Daemon struct {
	cfg      *config.Config
	logger   *slog.Logger
	resolver *lyrics.Resolver
	locker   *results.Locker
	store    interface{ Close() error }
	lock     *flock.Flock
	api      *apiServer
	running  atomic.Bool
}

// New builds a daemon from configuration. Sources the config disables are
// left nil; the resolver degrades gracefully around them.
func New(cfg *config.Config, logger *slog.Logger) (*Daemon, error) {
	if cfg == nil {
		return nil, errors.New("daemon requires configuration")
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, err
	}

	layout := media.NewLayout(cfg.Paths.WorkDir)
	d := &Daemon{
		cfg:    cfg,
		logger: logger,
		lock:   flock.New(filepath.Join(cfg.Paths.WorkDir, "singsync.lock")),
	}

	repo, closer, err := openStore(cfg, layout, logger)
	if err != nil {
		return nil, err
	}
	d.store = closer

	downloader := ytdlp.New(cfg.Downloader.Binary, logger, ytdlp.WithTimeouts(
		time.Duration(cfg.Downloader.CaptionTimeoutSeconds)*time.Second,
		time.Duration(cfg.Downloader.AudioTimeoutSeconds)*time.Second,
	))
	captionSource := captions.NewSource(layout, downloader, logger)

	var catalogSource lyrics.CatalogSource
	if cfg.Catalog.Enabled {
		client, err := lrclib.New(lrclib.Config{
			BaseURL:   cfg.Catalog.BaseURL,
			UserAgent: cfg.Catalog.UserAgent,
			HTTPClient: &http.Client{
				Timeout: time.Duration(cfg.Catalog.TimeoutSeconds) * time.Second,
			},
		})
		if err != nil {
			return nil, err
		}
		catalogSource = catalog.NewSource(client, logger)
	}

	var transcriptSource lyrics.TranscriptSource
	if cfg.Transcription.Enabled {
		transcriber := whisper.New(cfg.Transcription.Binary, cfg.Transcription.Model, logger,
			whisper.WithTimeout(time.Duration(cfg.Transcription.TimeoutSeconds)*time.Second))
		transcriptSource = transcribe.NewSource(layout, downloader, transcriber, logger)
	}

	if cfg.Resolver.LockMedia {
		d.locker = results.NewLocker(layout)
	}
	d.resolver = lyrics.NewResolver(layout, repo, captionSource, catalogSource, transcriptSource,
		transcribe.AlignPlain, logger,
		lyrics.WithCandidateLimit(cfg.Resolver.CandidateLimit))

	d.api = newAPIServer(cfg.Paths.APIBind, d, logger)
	return d, nil
}

func openStore(cfg *config.Config, layout media.Layout, logger *slog.Logger) (lyrics.Repository, interface{ Close() error }, error) {
	switch cfg.Storage.Backend {
	case "sqlite":
		store, err := results.OpenSQLite(cfg.Storage.SQLitePath, logger)
		if err != nil {
			return nil, nil, err
		}
		return store, store, nil
	default:
		return results.NewFileStore(layout, logger), nil, nil
	}
}

// Start acquires the daemon lock and begins serving the API.
func (d *Daemon) Start(ctx context.Context) error {
	if d.running.Load() {
		return errors.New("daemon already running")
	}
	ok, err := d.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return errors.New("another singsync instance is already running")
	}
	if err := d.api.start(ctx); err != nil {
		_ = d.lock.Unlock()
		return err
	}
	d.running.Store(true)
	d.logger.Info("daemon started",
		logging.String("work_dir", d.cfg.Paths.WorkDir),
		logging.String("storage", d.cfg.Storage.Backend))
	return nil
}

// Stop shuts down the API and releases the daemon lock.
func (d *Daemon) Stop() {
	if !d.running.Swap(false) {
		return
	}
	d.api.stop()
	if d.store != nil {
		_ = d.store.Close()
	}
	_ = d.lock.Unlock()
	d.logger.Info("daemon stopped")
}

// Close releases resources for a daemon that was never started, or stops a
// running one.
func (d *Daemon) Close() {
	if d.running.Load() {
		d.Stop()
		return
	}
	if d.store != nil {
		_ = d.store.Close()
	}
}

// Resolve runs the pipeline for one media id with the per-media lock held.
// It never returns an error; any panic below degrades to the "none" result.
func (d *Daemon) Resolve(ctx context.Context, mediaID string) (result lyrics.Result) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("resolution panicked",
				logging.String("media_id", mediaID),
				logging.Any("panic", r))
			result = lyrics.NoneResult(mediaID)
		}
	}()

	if d.locker != nil {
		release, err := d.locker.Acquire(ctx, mediaID)
		if err != nil {
			d.logger.Warn("media lock unavailable",
				logging.String("media_id", mediaID),
				logging.Error(err))
			return lyrics.NoneResult(mediaID)
		}
		defer release()
	}
	return d.resolver.Resolve(ctx, mediaID)
}
