package lyrics

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"singsync/internal/logging"
	"singsync/internal/media"
	"singsync/internal/script"
	"singsync/internal/timedtext"
)

// CaptionSource fetches and selects the media's native caption track.
type CaptionSource interface {
	Fetch(ctx context.Context, mediaID string, expected script.Type) ([]timedtext.Line, bool)
}

// CatalogSource queries the external lyrics catalog and returns zero or more
// already script-filtered candidates.
type CatalogSource interface {
	Lookup(ctx context.Context, meta media.Metadata, expected script.Type) []Candidate
}

// TranscriptSource produces a transcription segment timeline, used both as a
// timing oracle and as the last-resort lyric source.
type TranscriptSource interface {
	Segments(ctx context.Context, mediaID string) []timedtext.Line
}

// AlignFunc maps plain lyric lines onto a segment timeline. The boolean is
// false when either side has too little material to align.
type AlignFunc func(lines []string, segments []timedtext.Line) ([]timedtext.Line, bool)

// Repository persists one Result per media id.
type Repository interface {
	Get(ctx context.Context, mediaID string) (Result, bool)
	Put(ctx context.Context, result Result) error
}

// maxPlainAlignments bounds how many plain catalog candidates get the
// transcription-timing treatment per run.
const maxPlainAlignments = 2

// Resolver sequences the lyric sources in priority order. Resolve never
// returns an error: every failure mode degrades to the "none" result.
type Resolver struct {
	layout      media.Layout
	repo        Repository
	captions    CaptionSource
	catalog     CatalogSource
	transcripts TranscriptSource
	align       AlignFunc
	limit       int
	logger      *slog.Logger
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithCandidateLimit overrides how many alternatives a result surfaces.
func WithCandidateLimit(limit int) ResolverOption {
	return func(r *Resolver) {
		if limit > 0 {
			r.limit = limit
		}
	}
}

// WithAlignFunc overrides the plain-text alignment heuristic (for tests).
func WithAlignFunc(align AlignFunc) ResolverOption {
	return func(r *Resolver) {
		if align != nil {
			r.align = align
		}
	}
}

// NewResolver wires the pipeline. Nil sources are allowed and simply
// contribute nothing, which keeps partial deployments (no transcriber
// installed, catalog disabled) working.
func NewResolver(layout media.Layout, repo Repository, captions CaptionSource, catalog CatalogSource, transcripts TranscriptSource, align AlignFunc, logger *slog.Logger, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		layout:      layout,
		repo:        repo,
		captions:    captions,
		catalog:     catalog,
		transcripts: transcripts,
		align:       align,
		limit:       DefaultCandidateLimit,
		logger:      logging.NewComponentLogger(logger, "resolver"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve runs the full pipeline for one media id. It always returns a
// structurally valid Result.
func (r *Resolver) Resolve(ctx context.Context, mediaID string) Result {
	meta := media.LoadMetadata(r.layout, mediaID)
	expected := script.DetectExpected(meta.Title, meta.ChannelTitle)
	log := r.logger.With(logging.String("media_id", mediaID))
	log.Info("resolving lyrics",
		logging.String("expected_script", string(expected)),
		logging.String("title", meta.Title))

	if cached, ok := r.cachedResult(ctx, mediaID, expected); ok {
		log.Info("reusing cached result", logging.String("provenance", string(cached.Provenance)))
		return cached
	}

	var raw []Candidate

	if r.captions != nil {
		if lines, ok := r.captions.Fetch(ctx, mediaID, expected); ok && len(lines) > 0 {
			raw = append(raw, Candidate{
				ID:         uuid.NewString(),
				Label:      "Native captions",
				Provenance: ProvenanceCaptions,
				Mode:       ModeTimed,
				Lines:      lines,
				SyncMethod: SyncNative,
			})
			log.Debug("captions candidate added", logging.Int("line_count", len(lines)))
		}
	}

	if r.catalog != nil {
		hits := r.catalog.Lookup(ctx, meta, expected)
		raw = append(raw, hits...)
		log.Debug("catalog candidates added", logging.Int("count", len(hits)))
	}

	var (
		segments        []timedtext.Line
		segmentsFetched bool
	)
	fetchSegments := func() []timedtext.Line {
		if !segmentsFetched {
			segmentsFetched = true
			if r.transcripts != nil {
				segments = r.transcripts.Segments(ctx, mediaID)
			}
		}
		return segments
	}

	raw = append(raw, r.alignPlainCandidates(raw, fetchSegments, log)...)

	if len(raw) == 0 {
		if timeline := fetchSegments(); len(timeline) > 0 {
			raw = append(raw, Candidate{
				ID:         uuid.NewString(),
				Label:      "Speech transcription",
				Provenance: ProvenanceTranscription,
				Mode:       ModeTimed,
				Lines:      timeline,
				SyncMethod: SyncAI,
			})
			log.Debug("transcription fallback candidate added", logging.Int("line_count", len(timeline)))
		}
	}

	result := r.finalize(mediaID, raw, expected)
	if r.repo != nil {
		if err := r.repo.Put(ctx, result); err != nil {
			log.Warn("persisting result failed",
				logging.String(logging.FieldEventType, "result_persist_failed"),
				logging.Error(err))
		}
	}
	log.Info("resolution complete",
		logging.String("provenance", string(result.Provenance)),
		logging.Int("candidate_count", len(result.Candidates)))
	return result
}

// cachedResult reuses a persisted result only when it still matches the
// re-derived expected script and actually carries candidates.
func (r *Resolver) cachedResult(ctx context.Context, mediaID string, expected script.Type) (Result, bool) {
	if r.repo == nil {
		return Result{}, false
	}
	cached, ok := r.repo.Get(ctx, mediaID)
	if !ok || cached.IsNone() || len(cached.Candidates) == 0 {
		return Result{}, false
	}
	if !script.Compatible(cached.Text(), expected) {
		return Result{}, false
	}
	return cached, true
}

// alignPlainCandidates adds AI-timed variants of up to two plain catalog
// candidates, sharing one transcription timeline across them. The plain
// originals stay in the pool; only timing is added.
func (r *Resolver) alignPlainCandidates(raw []Candidate, fetchSegments func() []timedtext.Line, log *slog.Logger) []Candidate {
	if r.align == nil {
		return nil
	}
	var aligned []Candidate
	taken := 0
	for _, c := range raw {
		if c.Provenance != ProvenanceCatalog || c.Mode != ModePlain {
			continue
		}
		if taken >= maxPlainAlignments {
			break
		}
		taken++

		timeline := fetchSegments()
		if len(timeline) == 0 {
			break
		}
		lines := timedtext.SplitPlain(c.PlainText)
		timed, ok := r.align(lines, timeline)
		if !ok {
			continue
		}
		aligned = append(aligned, Candidate{
			ID:         uuid.NewString(),
			Label:      c.Label + " (aligned)",
			Provenance: ProvenanceCatalogAligned,
			Mode:       ModeTimed,
			Lines:      timed,
			PlainText:  c.PlainText,
			SyncMethod: SyncAI,
		})
		log.Debug("aligned plain candidate", logging.Int("line_count", len(timed)))
	}
	return aligned
}

func (r *Resolver) finalize(mediaID string, raw []Candidate, expected script.Type) Result {
	if len(raw) == 0 {
		return NoneResult(mediaID)
	}
	for i := range raw {
		raw[i].Score = ScoreCandidate(raw[i], expected)
	}
	picked := PickTopCandidates(raw, r.limit)
	return ResultFromCandidates(mediaID, picked)
}
