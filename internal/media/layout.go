package media

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"singsync/internal/textutil"
)

// Layout maps media ids to their on-disk working directories. Every artifact
// of one resolution run (metadata, audio, caption tracks, transcript, cached
// result) lives under one directory per media id.
type Layout struct {
	root string
}

// NewLayout creates a layout rooted at the given work directory.
func NewLayout(root string) Layout {
	return Layout{root: root}
}

// Root returns the work directory the layout is rooted at.
func (l Layout) Root() string { return l.root }

// MediaDir returns the working directory for a media id, creating nothing.
func (l Layout) MediaDir(mediaID string) string {
	return filepath.Join(l.root, textutil.SanitizeToken(mediaID))
}

// EnsureMediaDir creates the working directory for a media id.
func (l Layout) EnsureMediaDir(mediaID string) (string, error) {
	dir := l.MediaDir(mediaID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

// MetaPath is the metadata document written by the ingest collaborator.
func (l Layout) MetaPath(mediaID string) string {
	return filepath.Join(l.MediaDir(mediaID), "meta.json")
}

// AudioPath is the fixed destination for the downloader's best-audio output.
func (l Layout) AudioPath(mediaID string) string {
	return filepath.Join(l.MediaDir(mediaID), "audio.m4a")
}

// LyricsPath is the persisted resolution result.
func (l Layout) LyricsPath(mediaID string) string {
	return filepath.Join(l.MediaDir(mediaID), "lyrics.json")
}

// TranscriptPath is the transcription tool's segment-list output. The tool
// names its output after the input audio file.
func (l Layout) TranscriptPath(mediaID string) string {
	return filepath.Join(l.MediaDir(mediaID), "audio.json")
}

// CaptionTemplate is the downloader output template encoding the language
// tag into each caption track's filename.
func (l Layout) CaptionTemplate(mediaID string) string {
	return filepath.Join(l.MediaDir(mediaID), "captions.%(lang)s.%(ext)s")
}

// CaptionFiles lists the caption track files currently on disk for a media
// id, sorted lexically for deterministic selection.
func (l Layout) CaptionFiles(mediaID string) []string {
	matches, err := filepath.Glob(filepath.Join(l.MediaDir(mediaID), "captions.*.vtt"))
	if err != nil {
		return nil
	}
	sort.Strings(matches)
	return matches
}

// RemoveCaptionFiles deletes any caption tracks left behind by a previous
// run so a fresh fetch cannot pick up stale data.
func (l Layout) RemoveCaptionFiles(mediaID string) {
	for _, path := range l.CaptionFiles(mediaID) {
		_ = os.Remove(path)
	}
}

// CaptionLanguageTag extracts the language tag a caption filename encodes
// ("captions.en-US.vtt" yields "en-US"). Returns "" when the name does not
// follow the convention.
func CaptionLanguageTag(path string) string {
	name := filepath.Base(path)
	if !strings.HasPrefix(name, "captions.") || !strings.HasSuffix(name, ".vtt") {
		return ""
	}
	return strings.TrimSuffix(strings.TrimPrefix(name, "captions."), ".vtt")
}
