package catalog

import (
	"strings"
	"testing"

	"singsync/internal/media"
)

func TestCleanTitle(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Artist - Song (Official Video)", "Artist - Song"},
		{"Song [MV] [4K]", "Song"},
		{"노래 【Official MV】", "노래"},
		{"Song lyrics video", "Song"},
		{"Plain Title", "Plain Title"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := CleanTitle(tt.in); got != tt.want {
			t.Errorf("CleanTitle(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCleanChannel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Some Artist - Topic", "Some Artist"},
		{"Some Artist Official", "Some Artist"},
		{"Some Artist", "Some Artist"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := CleanChannel(tt.in); got != tt.want {
			t.Errorf("CleanChannel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDeriveQueries(t *testing.T) {
	meta := media.Metadata{
		Title:        "IU - Blueming (Official MV)",
		ChannelTitle: "1theK",
	}
	queries := DeriveQueries(meta)
	if len(queries) < 3 {
		t.Fatalf("queries = %+v", queries)
	}
	if queries[0] != (Query{Artist: "IU", Track: "Blueming"}) {
		t.Errorf("first query = %+v", queries[0])
	}
	last := queries[len(queries)-1]
	if last != (Query{Artist: "1theK", Track: "IU - Blueming"}) {
		t.Errorf("fallback query = %+v", last)
	}
}

func TestDeriveQueriesDedupes(t *testing.T) {
	// A symmetric dash split yields the same pair twice modulo case.
	meta := media.Metadata{Title: "Echo - echo", ChannelTitle: "Echo"}
	queries := DeriveQueries(meta)
	seen := make(map[Query]struct{})
	for _, q := range queries {
		lowered := Query{Artist: strings.ToLower(q.Artist), Track: strings.ToLower(q.Track)}
		if _, dup := seen[lowered]; dup {
			t.Fatalf("duplicate query %+v in %+v", q, queries)
		}
		seen[lowered] = struct{}{}
	}
}

func TestDeriveQueriesEmptyTitle(t *testing.T) {
	if queries := DeriveQueries(media.Metadata{ChannelTitle: "Someone"}); len(queries) != 0 {
		t.Errorf("queries = %+v, want none", queries)
	}
}
