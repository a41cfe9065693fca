package transcribe

import (
	"context"
	"errors"
	"testing"

	"singsync/internal/media"
	"singsync/internal/timedtext"
)

func segmentTimeline(times ...float64) []timedtext.Line {
	lines := make([]timedtext.Line, len(times))
	for i, t := range times {
		lines[i] = timedtext.Line{Seconds: t, Text: "segment"}
	}
	return lines
}

func TestAlignPlainRequiresMinimumMaterial(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		segments []timedtext.Line
	}{
		{"too few lines", []string{"a", "b", "c"}, segmentTimeline(0, 1, 2, 3)},
		{"too few segments", []string{"a", "b", "c", "d"}, segmentTimeline(0, 1, 2)},
		{"empty", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := AlignPlain(tt.lines, tt.segments); ok {
				t.Error("expected no alignment")
			}
		})
	}
}

func TestAlignPlainEndpoints(t *testing.T) {
	lines := []string{"first", "second", "third", "fourth"}
	segments := segmentTimeline(2, 8, 14, 20)

	aligned, ok := AlignPlain(lines, segments)
	if !ok {
		t.Fatal("expected alignment")
	}
	if len(aligned) != len(lines) {
		t.Fatalf("line count = %d, want %d", len(aligned), len(lines))
	}
	if aligned[0].Seconds != 2 || aligned[0].Text != "first" {
		t.Errorf("first line = %+v", aligned[0])
	}
	if last := aligned[len(aligned)-1]; last.Seconds != 20 || last.Text != "fourth" {
		t.Errorf("last line = %+v", last)
	}
}

func TestAlignPlainMonotonic(t *testing.T) {
	lines := []string{"l1", "l2", "l3", "l4", "l5", "l6", "l7", "l8", "l9"}
	segments := segmentTimeline(0, 3, 7, 11, 16)

	aligned, ok := AlignPlain(lines, segments)
	if !ok {
		t.Fatal("expected alignment")
	}
	for i := 1; i < len(aligned); i++ {
		if aligned[i].Seconds < aligned[i-1].Seconds {
			t.Fatalf("timestamps decreased at %d: %+v", i, aligned)
		}
	}
}

func TestAlignPlainDropsAdjacentDuplicates(t *testing.T) {
	// Repeated chorus lines landing on the same segment collapse to one.
	lines := []string{"verse", "chorus", "chorus", "bridge"}
	segments := segmentTimeline(0, 0.2, 0.3, 30)

	aligned, ok := AlignPlain(lines, segments)
	if !ok {
		t.Fatal("expected alignment")
	}
	count := 0
	for _, l := range aligned {
		if l.Text == "chorus" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("chorus kept %d times, want 1: %+v", count, aligned)
	}
}

type stubFetcher struct {
	calls int
	err   error
}

func (s *stubFetcher) FetchAudio(_ context.Context, _ string, _ media.Layout) (string, error) {
	s.calls++
	return "audio.m4a", s.err
}

type stubTranscriber struct {
	calls    int
	segments []timedtext.Line
}

func (s *stubTranscriber) Transcribe(_ context.Context, _ string, _ media.Layout) []timedtext.Line {
	s.calls++
	return s.segments
}

func TestSourceSegments(t *testing.T) {
	layout := media.NewLayout(t.TempDir())

	t.Run("download failure yields nil", func(t *testing.T) {
		fetcher := &stubFetcher{err: errors.New("network down")}
		transcriber := &stubTranscriber{segments: segmentTimeline(0, 1)}
		source := NewSource(layout, fetcher, transcriber, nil)
		if got := source.Segments(context.Background(), "vid1"); got != nil {
			t.Errorf("segments = %v, want nil", got)
		}
		if transcriber.calls != 0 {
			t.Error("transcriber should not run without audio")
		}
	})

	t.Run("happy path", func(t *testing.T) {
		fetcher := &stubFetcher{}
		transcriber := &stubTranscriber{segments: segmentTimeline(0, 1, 2)}
		source := NewSource(layout, fetcher, transcriber, nil)
		got := source.Segments(context.Background(), "vid1")
		if len(got) != 3 {
			t.Errorf("segment count = %d, want 3", len(got))
		}
		if fetcher.calls != 1 || transcriber.calls != 1 {
			t.Errorf("calls: fetch=%d transcribe=%d", fetcher.calls, transcriber.calls)
		}
	})

	t.Run("nil transcriber", func(t *testing.T) {
		source := NewSource(layout, &stubFetcher{}, nil, nil)
		if got := source.Segments(context.Background(), "vid1"); got != nil {
			t.Errorf("segments = %v, want nil", got)
		}
	})
}
