package lyrics

import (
	"singsync/internal/textutil"
	"singsync/internal/timedtext"
)

// Provenance identifies which source produced a lyric candidate.
type Provenance string

const (
	ProvenanceCaptions       Provenance = "captions"
	ProvenanceCatalog        Provenance = "catalog"
	ProvenanceCatalogAligned Provenance = "catalog_aligned"
	ProvenanceTranscription  Provenance = "transcription"
	ProvenanceNone           Provenance = "none"
)

// Mode distinguishes per-line timed lyrics from plain sheets.
type Mode string

const (
	ModeTimed Mode = "timed"
	ModePlain Mode = "plain"
)

// SyncMethod records how a candidate's timing was obtained.
type SyncMethod string

const (
	SyncNative SyncMethod = "native"
	SyncAI     SyncMethod = "ai"
	SyncNone   SyncMethod = "none"
)

// Candidate is one scored lyric alternative. Timed candidates carry Lines;
// plain candidates carry PlainText and no lines.
type Candidate struct {
	ID         string           `json:"id"`
	Label      string           `json:"label"`
	Provenance Provenance       `json:"provenance"`
	Mode       Mode             `json:"mode"`
	Lines      []timedtext.Line `json:"lines"`
	PlainText  string           `json:"plainText,omitempty"`
	SyncMethod SyncMethod       `json:"syncMethod"`
	Score      float64          `json:"score"`
}

// Text returns the candidate's full lyric text for script checks and
// fingerprinting.
func (c Candidate) Text() string {
	switch c.Mode {
	case ModeTimed:
		return timedtext.JoinText(c.Lines)
	case ModePlain:
		return c.PlainText
	default:
		return ""
	}
}

// Fingerprint returns the candidate's dedupe digest; empty for candidates
// with no usable text.
func (c Candidate) Fingerprint() string {
	return textutil.Fingerprint(c.Text())
}

// NoneCandidateID is the sentinel selected-candidate id when nothing survives.
const NoneCandidateID = "none"

// Result is the resolved outcome for one media id: the selected candidate's
// fields flattened to the top level plus the surfaced alternatives.
type Result struct {
	MediaID             string           `json:"mediaId"`
	Provenance          Provenance       `json:"provenance"`
	Mode                Mode             `json:"mode"`
	Lines               []timedtext.Line `json:"lines"`
	PlainText           string           `json:"plainText,omitempty"`
	SyncMethod          SyncMethod       `json:"syncMethod"`
	SelectedCandidateID string           `json:"selectedCandidateId"`
	Candidates          []Candidate      `json:"candidates"`
}

// Text returns the selected lyric text.
func (r Result) Text() string {
	switch r.Mode {
	case ModeTimed:
		return timedtext.JoinText(r.Lines)
	case ModePlain:
		return r.PlainText
	default:
		return ""
	}
}

// IsNone reports whether the result is the "no lyrics" terminal state.
func (r Result) IsNone() bool {
	return r.Provenance == ProvenanceNone
}

// NoneResult builds the well-formed "no lyrics" result: never an error, just
// an explicitly labeled absence with a single zero-scored placeholder.
func NoneResult(mediaID string) Result {
	placeholder := Candidate{
		ID:         NoneCandidateID,
		Label:      "No lyrics found",
		Provenance: ProvenanceNone,
		Mode:       ModePlain,
		SyncMethod: SyncNone,
	}
	return Result{
		MediaID:             mediaID,
		Provenance:          ProvenanceNone,
		Mode:                ModePlain,
		Lines:               []timedtext.Line{},
		SyncMethod:          SyncNone,
		SelectedCandidateID: NoneCandidateID,
		Candidates:          []Candidate{placeholder},
	}
}

// ResultFromCandidates flattens the winning candidate into a Result carrying
// all surfaced alternatives.
func ResultFromCandidates(mediaID string, picked []Candidate) Result {
	if len(picked) == 0 {
		return NoneResult(mediaID)
	}
	top := picked[0]
	return Result{
		MediaID:             mediaID,
		Provenance:          top.Provenance,
		Mode:                top.Mode,
		Lines:               top.Lines,
		PlainText:           top.PlainText,
		SyncMethod:          top.SyncMethod,
		SelectedCandidateID: top.ID,
		Candidates:          picked,
	}
}
