package captions

import (
	"testing"

	"singsync/internal/script"
)

func TestParseTrack(t *testing.T) {
	tests := []struct {
		path string
		lang string
		auto bool
	}{
		{"/w/vid/captions.en.vtt", "en", false},
		{"/w/vid/captions.en-US.vtt", "en", false},
		{"/w/vid/captions.ko.asr.vtt", "ko", true},
		{"/w/vid/captions.ja.auto.vtt", "ja", true},
		{"/w/vid/captions.pt-BR.vtt", "pt", false},
		{"/w/vid/notacaption.txt", "", false},
	}
	for _, tt := range tests {
		got := parseTrack(tt.path)
		if got.lang != tt.lang || got.auto != tt.auto {
			t.Errorf("parseTrack(%q) = {lang:%q auto:%v}, want {lang:%q auto:%v}",
				tt.path, got.lang, got.auto, tt.lang, tt.auto)
		}
	}
}

func TestSelectTrack(t *testing.T) {
	tests := []struct {
		name     string
		paths    []string
		expected script.Type
		want     string
	}{
		{
			name:     "manual beats auto",
			paths:    []string{"/w/captions.en.asr.vtt", "/w/captions.ko.vtt"},
			expected: script.Korean,
			want:     "/w/captions.ko.vtt",
		},
		{
			name:     "english outranks korean at same generation",
			paths:    []string{"/w/captions.ko.vtt", "/w/captions.en.vtt"},
			expected: script.Korean,
			want:     "/w/captions.en.vtt",
		},
		{
			name:     "latin whitelist drops korean track",
			paths:    []string{"/w/captions.ko.vtt", "/w/captions.fr.vtt"},
			expected: script.Latin,
			want:     "/w/captions.fr.vtt",
		},
		{
			name:     "unfiltered fallback when nothing matches",
			paths:    []string{"/w/captions.th.vtt"},
			expected: script.Latin,
			want:     "/w/captions.th.vtt",
		},
		{
			name:     "lexical tie-break among unlisted languages",
			paths:    []string{"/w/captions.sv.vtt", "/w/captions.nl.vtt"},
			expected: script.Latin,
			want:     "/w/captions.nl.vtt",
		},
		{
			name:     "unknown script passes everything through",
			paths:    []string{"/w/captions.ja.vtt", "/w/captions.en.vtt"},
			expected: script.Unknown,
			want:     "/w/captions.en.vtt",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := selectTrack(tt.paths, tt.expected)
			if !ok {
				t.Fatal("expected a selection")
			}
			if got != tt.want {
				t.Errorf("selectTrack = %q, want %q", got, tt.want)
			}
		})
	}

	if _, ok := selectTrack(nil, script.Latin); ok {
		t.Error("empty input should select nothing")
	}
}
