package main

import (
	"strings"
	"testing"

	"singsync/internal/lyrics"
	"singsync/internal/timedtext"
)

func TestRenderCandidateTableMarksSelection(t *testing.T) {
	result := lyrics.Result{
		MediaID:             "vid1",
		SelectedCandidateID: "cand-b",
		Candidates: []lyrics.Candidate{
			{
				ID:         "cand-a",
				Label:      "Plain sheet",
				Provenance: lyrics.ProvenanceCatalog,
				Mode:       lyrics.ModePlain,
				SyncMethod: lyrics.SyncNone,
				PlainText:  "la la la",
				Score:      92,
			},
			{
				ID:         "cand-b",
				Label:      "Native captions",
				Provenance: lyrics.ProvenanceCaptions,
				Mode:       lyrics.ModeTimed,
				SyncMethod: lyrics.SyncNative,
				Lines: []timedtext.Line{
					{Seconds: 1, Text: "la"},
					{Seconds: 2, Text: "la la"},
				},
				Score: 104,
			},
		},
	}

	rendered := renderCandidateTable(result)

	for _, want := range []string{"Label", "Provenance", "Native captions", "captions", "timed", "native", "104"} {
		if !strings.Contains(rendered, want) {
			t.Errorf("table missing %q:\n%s", want, rendered)
		}
	}

	var marked string
	for _, line := range strings.Split(rendered, "\n") {
		if strings.Contains(line, "*") {
			marked = line
		}
	}
	if marked == "" {
		t.Fatalf("no row carries the selection marker:\n%s", rendered)
	}
	if !strings.Contains(marked, "Native captions") {
		t.Errorf("marker on wrong row: %q", marked)
	}
	if strings.Count(rendered, "*") != 1 {
		t.Errorf("expected exactly one marked row:\n%s", rendered)
	}
}

func TestRenderCandidateTableEmptyResult(t *testing.T) {
	rendered := renderCandidateTable(lyrics.Result{MediaID: "vid1"})
	if !strings.Contains(rendered, "Score") {
		t.Errorf("header row missing:\n%s", rendered)
	}
}
