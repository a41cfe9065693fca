package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/google/uuid"

	"singsync/internal/logging"
	"singsync/internal/lyrics"
	"singsync/internal/media"
	"singsync/internal/script"
	"singsync/internal/services/lrclib"
	"singsync/internal/textutil"
	"singsync/internal/timedtext"
)

// Client is the external lyrics catalog surface the source depends on.
type Client interface {
	Get(ctx context.Context, artist, track string) (lrclib.Track, bool)
	Search(ctx context.Context, query string) []lrclib.Track
}

// Limits on the hit pool: per-query search results and the final surviving
// set are both capped at six.
const (
	maxSearchHits = 6
	maxSurvivors  = 6
)

// Hit ranking weights. Direct lookups and exact track-name matches dominate;
// synced lyric text is worth much more than plain.
const (
	scoreDirectHit      = 40
	scoreTrackExact     = 50
	scoreTrackSubstring = 25
	scoreArtistExact    = 30
	scoreArtistSub      = 15
	scoreSyncedText     = 20
	scorePlainText      = 5
)

// match is a transient scored catalog hit, consumed within one lookup.
type match struct {
	track lrclib.Track
	score int
}

// Source queries the catalog with derived artist/track pairs and converts
// the surviving hits into lyric candidates.
type Source struct {
	client Client
	logger *slog.Logger
}

// NewSource builds a catalog source around a client.
func NewSource(client Client, logger *slog.Logger) *Source {
	return &Source{
		client: client,
		logger: logging.NewComponentLogger(logger, "catalog"),
	}
}

// Lookup runs the full derivation, query, rank and filter sequence. Returns
// zero candidates on any failure.
func (s *Source) Lookup(ctx context.Context, meta media.Metadata, expected script.Type) []lyrics.Candidate {
	if s.client == nil {
		return nil
	}
	queries := DeriveQueries(meta)
	if len(queries) == 0 {
		return nil
	}
	log := s.logger.With(logging.String("title", meta.Title))
	log.Debug("querying catalog", logging.Int("query_count", len(queries)))

	var matches []match
	for _, q := range queries {
		if hit, ok := s.client.Get(ctx, q.Artist, q.Track); ok {
			matches = append(matches, match{track: hit, score: scoreHit(hit, q) + scoreDirectHit})
		}
		found := s.client.Search(ctx, strings.TrimSpace(q.Artist+" "+q.Track))
		if len(found) > maxSearchHits {
			found = found[:maxSearchHits]
		}
		for _, hit := range found {
			matches = append(matches, match{track: hit, score: scoreHit(hit, q)})
		}
	}

	survivors := rankAndFilter(matches, expected)
	candidates := make([]lyrics.Candidate, 0, len(survivors))
	for _, m := range survivors {
		if c, ok := toCandidate(m.track); ok {
			candidates = append(candidates, c)
		}
	}
	log.Debug("catalog lookup finished",
		logging.Int("hit_count", len(matches)),
		logging.Int("candidate_count", len(candidates)))
	return candidates
}

// scoreHit ranks one catalog hit against the query that produced it.
func scoreHit(hit lrclib.Track, q Query) int {
	score := 0
	track := strings.ToLower(strings.TrimSpace(hit.TrackName))
	artist := strings.ToLower(strings.TrimSpace(hit.ArtistName))
	wantTrack := strings.ToLower(strings.TrimSpace(q.Track))
	wantArtist := strings.ToLower(strings.TrimSpace(q.Artist))

	switch {
	case track != "" && track == wantTrack:
		score += scoreTrackExact
	case track != "" && wantTrack != "" && (strings.Contains(track, wantTrack) || strings.Contains(wantTrack, track)):
		score += scoreTrackSubstring
	}
	switch {
	case artist != "" && artist == wantArtist:
		score += scoreArtistExact
	case artist != "" && wantArtist != "" && (strings.Contains(artist, wantArtist) || strings.Contains(wantArtist, artist)):
		score += scoreArtistSub
	}
	if strings.TrimSpace(hit.SyncedLyrics) != "" {
		score += scoreSyncedText
	}
	if strings.TrimSpace(hit.PlainLyrics) != "" {
		score += scorePlainText
	}
	return score
}

// rankAndFilter sorts matches by score, removes duplicates by composite key
// and drops hits whose lyric text fails the script check.
func rankAndFilter(matches []match, expected script.Type) []match {
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	seen := make(map[string]struct{}, len(matches))
	survivors := make([]match, 0, maxSurvivors)
	for _, m := range matches {
		text := lyricText(m.track)
		if text == "" {
			continue
		}
		key := strings.ToLower(m.track.TrackName) + "\x00" +
			strings.ToLower(m.track.ArtistName) + "\x00" +
			textutil.Fingerprint(text)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		if !script.Compatible(text, expected) {
			continue
		}
		survivors = append(survivors, m)
		if len(survivors) >= maxSurvivors {
			break
		}
	}
	return survivors
}

// lyricText returns the hit's lyric content, preferring the synced form.
func lyricText(hit lrclib.Track) string {
	if text := strings.TrimSpace(hit.SyncedLyrics); text != "" {
		return text
	}
	return strings.TrimSpace(hit.PlainLyrics)
}

// toCandidate converts a surviving hit into a lyric candidate: synced text
// parses to a timed candidate, plain text stays plain.
func toCandidate(hit lrclib.Track) (lyrics.Candidate, bool) {
	label := hit.TrackName
	if hit.ArtistName != "" {
		label = fmt.Sprintf("%s - %s", hit.ArtistName, hit.TrackName)
	}
	if synced := strings.TrimSpace(hit.SyncedLyrics); synced != "" {
		lines := timedtext.ParseLRC(synced)
		if len(lines) > 0 {
			return lyrics.Candidate{
				ID:         uuid.NewString(),
				Label:      label,
				Provenance: lyrics.ProvenanceCatalog,
				Mode:       lyrics.ModeTimed,
				Lines:      lines,
				SyncMethod: lyrics.SyncNative,
			}, true
		}
	}
	if plain := strings.TrimSpace(hit.PlainLyrics); plain != "" {
		return lyrics.Candidate{
			ID:         uuid.NewString(),
			Label:      label,
			Provenance: lyrics.ProvenanceCatalog,
			Mode:       lyrics.ModePlain,
			PlainText:  plain,
			SyncMethod: lyrics.SyncNone,
		}, true
	}
	return lyrics.Candidate{}, false
}
