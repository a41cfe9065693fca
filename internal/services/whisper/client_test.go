package whisper

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"singsync/internal/media"
	"singsync/internal/services"
)

type fakeRunner struct {
	calls  []services.CommandRequest
	output string // transcript JSON written on Run, empty to write nothing
	err    error
}

func (f *fakeRunner) Run(_ context.Context, req services.CommandRequest) (services.CommandResult, error) {
	f.calls = append(f.calls, req)
	if f.err != nil {
		return services.CommandResult{ExitCode: 1}, f.err
	}
	if f.output != "" {
		_ = os.WriteFile(filepath.Join(req.Dir, "audio.json"), []byte(f.output), 0o644)
	}
	return services.CommandResult{}, nil
}

func writeAudio(t *testing.T, layout media.Layout, mediaID string) {
	t.Helper()
	if _, err := layout.EnsureMediaDir(mediaID); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(layout.AudioPath(mediaID), []byte("audio"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestTranscribeParsesSegments(t *testing.T) {
	layout := media.NewLayout(t.TempDir())
	writeAudio(t, layout, "vid1")

	runner := &fakeRunner{output: `{"segments": [{"start": 0.0, "text": "la la"}, {"start": 5.0, "text": "more"}]}`}
	client := New("whisper", "small", nil, WithRunner(runner))

	segments := client.Transcribe(context.Background(), "vid1", layout)
	if len(segments) != 2 {
		t.Fatalf("got %d segments, want 2", len(segments))
	}
	if segments[0].Text != "la la" {
		t.Errorf("first segment = %+v", segments[0])
	}
	if len(runner.calls) != 1 {
		t.Fatalf("tool invoked %d times", len(runner.calls))
	}
}

func TestTranscribeMissingAudioSkipsTool(t *testing.T) {
	layout := media.NewLayout(t.TempDir())
	runner := &fakeRunner{}
	client := New("whisper", "small", nil, WithRunner(runner))

	if segments := client.Transcribe(context.Background(), "vid1", layout); segments != nil {
		t.Errorf("expected nil segments, got %v", segments)
	}
	if len(runner.calls) != 0 {
		t.Error("tool should not run without audio")
	}
}

func TestTranscribeToolFailureDegradesToEmpty(t *testing.T) {
	layout := media.NewLayout(t.TempDir())
	writeAudio(t, layout, "vid1")

	runner := &fakeRunner{err: services.Wrap(services.ErrExternalTool, "execx", "run", "boom", nil)}
	client := New("whisper", "small", nil, WithRunner(runner))

	if segments := client.Transcribe(context.Background(), "vid1", layout); segments != nil {
		t.Errorf("expected nil segments on failure, got %v", segments)
	}
}

func TestTranscribeRemovesStaleOutput(t *testing.T) {
	layout := media.NewLayout(t.TempDir())
	writeAudio(t, layout, "vid1")
	// A stale transcript must not be read when the new run writes nothing.
	if err := os.WriteFile(layout.TranscriptPath("vid1"), []byte(`{"segments": [{"start": 1, "text": "stale"}]}`), 0o644); err != nil {
		t.Fatal(err)
	}

	client := New("whisper", "small", nil, WithRunner(&fakeRunner{}))
	if segments := client.Transcribe(context.Background(), "vid1", layout); segments != nil {
		t.Errorf("stale transcript leaked through: %v", segments)
	}
}
