package lyrics

import (
	"sort"
	"unicode/utf8"

	"singsync/internal/script"
)

// Reliability base scores by provenance. Native captions beat the catalog,
// timed catalog text beats plain, AI-aligned plain text ranks just under
// catalog plain, and speech transcription is a distant last resort.
const (
	baseCaptions       = 96
	baseCatalogTimed   = 90
	baseCatalogPlain   = 84
	baseCatalogAligned = 82
	baseTranscription  = 48
)

const (
	bonusSyncNative      = 7
	bonusSyncAI          = 2
	bonusScriptMatch     = 8
	densityCapTimed      = 16
	densityCapPlain      = 10
	densityLinesPerPoint = 6
	densityCharsPerPoint = 120
)

// ScoreCandidate assigns a reliability score from provenance, sync method,
// content density and script compatibility. The script check runs again here
// regardless of upstream filtering so a mislabeled candidate cannot ride a
// source's reputation.
func ScoreCandidate(c Candidate, expected script.Type) float64 {
	var base float64
	switch c.Provenance {
	case ProvenanceCaptions:
		base = baseCaptions
	case ProvenanceCatalog:
		if c.Mode == ModeTimed {
			base = baseCatalogTimed
		} else {
			base = baseCatalogPlain
		}
	case ProvenanceCatalogAligned:
		base = baseCatalogAligned
	case ProvenanceTranscription:
		base = baseTranscription
	case ProvenanceNone:
		return 0
	}

	switch c.SyncMethod {
	case SyncNative:
		base += bonusSyncNative
	case SyncAI:
		base += bonusSyncAI
	case SyncNone:
	}

	switch c.Mode {
	case ModeTimed:
		density := len(c.Lines) / densityLinesPerPoint
		if density > densityCapTimed {
			density = densityCapTimed
		}
		base += float64(density)
	case ModePlain:
		density := utf8.RuneCountInString(c.PlainText) / densityCharsPerPoint
		if density > densityCapPlain {
			density = densityCapPlain
		}
		base += float64(density)
	}

	if script.Compatible(c.Text(), expected) {
		base += bonusScriptMatch
	}
	return base
}

// DefaultCandidateLimit is how many distinct alternatives a result surfaces.
const DefaultCandidateLimit = 3

// PickTopCandidates orders candidates by score descending and keeps the
// first distinct few: candidates whose fingerprint is empty or already seen
// are skipped.
func PickTopCandidates(candidates []Candidate, limit int) []Candidate {
	if limit <= 0 {
		limit = DefaultCandidateLimit
	}
	sorted := make([]Candidate, len(candidates))
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})

	seen := make(map[string]struct{}, limit)
	picked := make([]Candidate, 0, limit)
	for _, c := range sorted {
		fp := c.Fingerprint()
		if fp == "" {
			continue
		}
		if _, dup := seen[fp]; dup {
			continue
		}
		seen[fp] = struct{}{}
		picked = append(picked, c)
		if len(picked) >= limit {
			break
		}
	}
	return picked
}
