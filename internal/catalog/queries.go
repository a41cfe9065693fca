package catalog

import (
	"regexp"
	"strings"

	"singsync/internal/media"
	"singsync/internal/textutil"
)

// Query is one ordered artist/track candidate pair derived from metadata.
type Query struct {
	Artist string
	Track  string
}

var (
	bracketPattern = regexp.MustCompile(`[\(\[（【][^\)\]）】]*[\)\]）】]`)
	dashSeparators = []string{" - ", " – ", " — "}
)

// marketingKeywords are title noise words stripped during query derivation.
// Matched as whole words, case-insensitively.
var marketingKeywords = map[string]struct{}{
	"official":    {},
	"mv":          {},
	"m/v":         {},
	"video":       {},
	"audio":       {},
	"lyrics":      {},
	"lyric":       {},
	"karaoke":     {},
	"hd":          {},
	"4k":          {},
	"visualizer":  {},
	"teaser":      {},
	"live":        {},
	"performance": {},
}

// CleanTitle strips bracketed annotations and marketing keywords from a
// video title, leaving the part most likely to be the song name.
func CleanTitle(title string) string {
	cleaned := bracketPattern.ReplaceAllString(title, " ")
	fields := strings.Fields(cleaned)
	kept := fields[:0]
	for _, field := range fields {
		key := strings.ToLower(strings.Trim(field, `"'“”‘’|`))
		if _, noise := marketingKeywords[key]; noise {
			continue
		}
		kept = append(kept, field)
	}
	return textutil.CollapseWhitespace(strings.Join(kept, " "))
}

// CleanChannel approximates an artist name from a channel title by dropping
// the auto-generated "Topic" suffix and similar decorations.
func CleanChannel(channel string) string {
	cleaned := strings.TrimSpace(channel)
	for _, suffix := range []string{" - topic", " – topic", " topic", " channel", " official"} {
		if strings.HasSuffix(strings.ToLower(cleaned), suffix) {
			cleaned = strings.TrimSpace(cleaned[:len(cleaned)-len(suffix)])
		}
	}
	return textutil.CollapseWhitespace(cleaned)
}

// DeriveQueries produces ordered artist/track pairs from metadata: explicit
// pairs from dash-split titles first, then the channel/title fallback.
// Pairs are de-duplicated case-insensitively.
func DeriveQueries(meta media.Metadata) []Query {
	title := CleanTitle(meta.Title)
	channel := CleanChannel(meta.ChannelTitle)

	var queries []Query
	for _, sep := range dashSeparators {
		before, after, found := strings.Cut(title, sep)
		if !found {
			continue
		}
		artist := strings.TrimSpace(before)
		track := strings.TrimSpace(after)
		if artist != "" && track != "" {
			queries = append(queries, Query{Artist: artist, Track: track})
			// Channels sometimes put the track first.
			queries = append(queries, Query{Artist: track, Track: artist})
		}
	}
	if title != "" {
		queries = append(queries, Query{Artist: channel, Track: title})
	}

	seen := make(map[string]struct{}, len(queries))
	deduped := queries[:0]
	for _, q := range queries {
		key := strings.ToLower(q.Artist) + "\x00" + strings.ToLower(q.Track)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		deduped = append(deduped, q)
	}
	return deduped
}
