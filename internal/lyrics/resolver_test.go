package lyrics

import (
	"context"
	"testing"

	"singsync/internal/media"
	"singsync/internal/script"
	"singsync/internal/timedtext"
	"singsync/internal/transcribe"
)

type fakeCaptions struct {
	calls int
	lines []timedtext.Line
}

func (f *fakeCaptions) Fetch(_ context.Context, _ string, _ script.Type) ([]timedtext.Line, bool) {
	f.calls++
	return f.lines, len(f.lines) > 0
}

type fakeCatalog struct {
	calls      int
	candidates []Candidate
}

func (f *fakeCatalog) Lookup(_ context.Context, _ media.Metadata, _ script.Type) []Candidate {
	f.calls++
	return f.candidates
}

type fakeTranscripts struct {
	calls    int
	segments []timedtext.Line
}

func (f *fakeTranscripts) Segments(_ context.Context, _ string) []timedtext.Line {
	f.calls++
	return f.segments
}

type memoryRepo struct {
	gets, puts int
	stored     map[string]Result
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{stored: make(map[string]Result)}
}

func (m *memoryRepo) Get(_ context.Context, mediaID string) (Result, bool) {
	m.gets++
	result, ok := m.stored[mediaID]
	return result, ok
}

func (m *memoryRepo) Put(_ context.Context, result Result) error {
	m.puts++
	m.stored[result.MediaID] = result
	return nil
}

func captionLines() []timedtext.Line {
	return []timedtext.Line{
		{Seconds: 1, Text: "first caption line"},
		{Seconds: 3, Text: "second caption line"},
	}
}

func newTestResolver(t *testing.T, repo Repository, captions CaptionSource, catalog CatalogSource, transcripts TranscriptSource) *Resolver {
	t.Helper()
	layout := media.NewLayout(t.TempDir())
	if err := media.SaveMetadata(layout, "vid1", media.Metadata{Title: "Test Song", ChannelTitle: "Test Artist"}); err != nil {
		t.Fatal(err)
	}
	return NewResolver(layout, repo, captions, catalog, transcripts, transcribe.AlignPlain, nil)
}

func TestResolveCaptionsWin(t *testing.T) {
	repo := newMemoryRepo()
	captions := &fakeCaptions{lines: captionLines()}
	resolver := newTestResolver(t, repo, captions, &fakeCatalog{}, &fakeTranscripts{})

	result := resolver.Resolve(context.Background(), "vid1")
	if result.Provenance != ProvenanceCaptions {
		t.Errorf("provenance = %v", result.Provenance)
	}
	if len(result.Candidates) < 1 {
		t.Error("expected at least one candidate")
	}
	if result.SelectedCandidateID != result.Candidates[0].ID {
		t.Error("selected id should point at the top candidate")
	}
	if repo.puts != 1 {
		t.Errorf("result should be persisted once, got %d", repo.puts)
	}
}

func TestResolveCatalogSynced(t *testing.T) {
	catalog := &fakeCatalog{candidates: []Candidate{{
		ID:         "cat1",
		Label:      "Test Artist - Test Song",
		Provenance: ProvenanceCatalog,
		Mode:       ModeTimed,
		Lines:      []timedtext.Line{{Seconds: 1, Text: "synced lyric line"}, {Seconds: 2, Text: "another lyric line"}},
		SyncMethod: SyncNative,
	}}}
	resolver := newTestResolver(t, newMemoryRepo(), &fakeCaptions{}, catalog, &fakeTranscripts{})

	result := resolver.Resolve(context.Background(), "vid1")
	if result.Provenance != ProvenanceCatalog {
		t.Errorf("provenance = %v", result.Provenance)
	}
	if result.Mode != ModeTimed || result.SyncMethod != SyncNative {
		t.Errorf("mode/sync = %v/%v", result.Mode, result.SyncMethod)
	}
}

func TestResolveAlignsPlainCatalog(t *testing.T) {
	plain := "line one here\nline two here\nline three here\nline four here\nline five here\nline six here"
	catalog := &fakeCatalog{candidates: []Candidate{{
		ID:         "cat1",
		Label:      "Test Artist - Test Song",
		Provenance: ProvenanceCatalog,
		Mode:       ModePlain,
		PlainText:  plain,
		SyncMethod: SyncNone,
	}}}
	transcripts := &fakeTranscripts{segments: []timedtext.Line{
		{Seconds: 0, Text: "seg a"}, {Seconds: 10, Text: "seg b"},
		{Seconds: 20, Text: "seg c"}, {Seconds: 30, Text: "seg d"},
	}}
	resolver := newTestResolver(t, newMemoryRepo(), &fakeCaptions{}, catalog, transcripts)

	result := resolver.Resolve(context.Background(), "vid1")
	var aligned *Candidate
	for i := range result.Candidates {
		if result.Candidates[i].Provenance == ProvenanceCatalogAligned {
			aligned = &result.Candidates[i]
			break
		}
	}
	if aligned == nil {
		t.Fatalf("no aligned candidate in %+v", result.Candidates)
	}
	if len(aligned.Lines) != 6 {
		t.Errorf("aligned line count = %d, want 6", len(aligned.Lines))
	}
	for i := 1; i < len(aligned.Lines); i++ {
		if aligned.Lines[i].Seconds < aligned.Lines[i-1].Seconds {
			t.Errorf("timestamps decreased at %d: %+v", i, aligned.Lines)
		}
	}
	if aligned.PlainText != plain {
		t.Error("aligned candidate should retain the original plain text")
	}
	if transcripts.calls != 1 {
		t.Errorf("segment timeline fetched %d times, want 1", transcripts.calls)
	}
	// Plain original and aligned variant share a fingerprint, so only the
	// higher-scored aligned one survives dedupe.
	count := 0
	for _, c := range result.Candidates {
		if c.Provenance == ProvenanceCatalog || c.Provenance == ProvenanceCatalogAligned {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected fingerprint dedupe to keep one of plain/aligned, got %d", count)
	}
}

func TestResolveTranscriptionFallback(t *testing.T) {
	transcripts := &fakeTranscripts{segments: []timedtext.Line{
		{Seconds: 0, Text: "transcribed line one"},
		{Seconds: 5, Text: "transcribed line two"},
	}}
	resolver := newTestResolver(t, newMemoryRepo(), &fakeCaptions{}, &fakeCatalog{}, transcripts)

	result := resolver.Resolve(context.Background(), "vid1")
	if result.Provenance != ProvenanceTranscription {
		t.Errorf("provenance = %v", result.Provenance)
	}
	if transcripts.calls != 1 {
		t.Errorf("segments fetched %d times, want 1", transcripts.calls)
	}
}

func TestResolveNoneSentinel(t *testing.T) {
	repo := newMemoryRepo()
	resolver := newTestResolver(t, repo, &fakeCaptions{}, &fakeCatalog{}, &fakeTranscripts{})

	result := resolver.Resolve(context.Background(), "vid1")
	if result.Provenance != ProvenanceNone {
		t.Errorf("provenance = %v", result.Provenance)
	}
	if len(result.Lines) != 0 {
		t.Errorf("lines = %v", result.Lines)
	}
	if result.SelectedCandidateID != NoneCandidateID {
		t.Errorf("selected id = %q", result.SelectedCandidateID)
	}
	if len(result.Candidates) != 1 || result.Candidates[0].Score != 0 {
		t.Errorf("placeholder candidate = %+v", result.Candidates)
	}
	if repo.puts != 1 {
		t.Error("none result should still be persisted")
	}
}

func TestResolveReusesCachedResult(t *testing.T) {
	repo := newMemoryRepo()
	captions := &fakeCaptions{lines: captionLines()}
	catalog := &fakeCatalog{}
	transcripts := &fakeTranscripts{}
	resolver := newTestResolver(t, repo, captions, catalog, transcripts)

	first := resolver.Resolve(context.Background(), "vid1")
	second := resolver.Resolve(context.Background(), "vid1")

	if captions.calls != 1 || catalog.calls != 1 || transcripts.calls != 0 {
		t.Errorf("sources re-invoked on cached resolve: captions=%d catalog=%d transcripts=%d",
			captions.calls, catalog.calls, transcripts.calls)
	}
	if second.SelectedCandidateID != first.SelectedCandidateID {
		t.Error("cached result should be returned as-is")
	}
}

func TestResolveIgnoresCachedNoneResult(t *testing.T) {
	repo := newMemoryRepo()
	layout := media.NewLayout(t.TempDir())
	if err := media.SaveMetadata(layout, "vid1", media.Metadata{Title: "Тестовая песня"}); err != nil {
		t.Fatal(err)
	}
	// Cached result whose text is incompatible with the expected script
	// must not be reused.
	repo.stored["vid1"] = Result{
		MediaID:             "vid1",
		Provenance:          ProvenanceCaptions,
		Mode:                ModeTimed,
		Lines:               []timedtext.Line{{Seconds: 1, Text: "english only caption"}},
		SyncMethod:          SyncNative,
		SelectedCandidateID: "old",
		Candidates:          []Candidate{{ID: "old"}},
	}
	captions := &fakeCaptions{lines: []timedtext.Line{{Seconds: 1, Text: "свежие строки песни"}, {Seconds: 2, Text: "вторая строка"}}}
	resolver := NewResolver(layout, repo, captions, &fakeCatalog{}, &fakeTranscripts{}, transcribe.AlignPlain, nil)

	result := resolver.Resolve(context.Background(), "vid1")
	if captions.calls != 1 {
		t.Error("pipeline should re-run when the cached result is script-incompatible")
	}
	if result.SelectedCandidateID == "old" {
		t.Error("stale cached result leaked through")
	}
}
