package script

import "testing"

func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Type
	}{
		{"korean dominant over latin", "안녕하세요 hello", Korean},
		{"pure latin", "never gonna give you up", Latin},
		{"pure hangul", "소리쳐 봐", Korean},
		{"kana", "ありがとう", Japanese},
		{"han counts as japanese", "夜に駆ける", Japanese},
		{"cyrillic", "группа крови", Cyrillic},
		{"empty", "", Unknown},
		{"single char", "a", Unknown},
		{"emoji only", "🎵", Unknown},
		{"three families is mixed", "한국 中文 группа", Mixed},
		{"two families is not mixed", "사랑 love love", Latin},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Detect(tt.input); got != tt.expected {
				t.Errorf("Detect(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDetectExpected(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		channel  string
		expected Type
	}{
		{"clean title wins", "사건의 지평선", "YOUNHA Official", Korean},
		{"unknown title falls back to channel", "???", "смысловые галлюцинации", Cyrillic},
		{"mixed title falls back to combined", "한국 中文 группа x", "channel name here", Mixed},
		{"both empty", "", "", Unknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectExpected(tt.title, tt.channel); got != tt.expected {
				t.Errorf("DetectExpected(%q, %q) = %v, want %v", tt.title, tt.channel, got, tt.expected)
			}
		})
	}
}

func TestCompatible(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected Type
		want     bool
	}{
		{"unknown accepts anything", "whatever", Unknown, true},
		{"mixed accepts anything", "группа", Mixed, true},
		{"korean lyrics for korean song", "사랑해요 너를", Korean, true},
		{"bilingual latin line for korean song", "love yourself", Korean, true},
		{"cyrillic contaminates korean", "사랑해요 группа", Korean, false},
		{"japanese lyrics for japanese song", "ありがとう", Japanese, true},
		{"cyrillic contaminates japanese", "ありがとう да", Japanese, false},
		{"cyrillic needs two chars", "д", Cyrillic, false},
		{"cyrillic passes", "группа крови", Cyrillic, true},
		// 5 latin + 3 hangul: 3 <= max(2, 3) so still compatible.
		{"latin tolerates light contamination", "abcde 사랑해", Latin, true},
		// 5 latin + 4 hangul: 4 > max(2, 3) so incompatible.
		{"latin rejects heavy contamination", "abcde 사랑해요", Latin, false},
		{"latin needs two latin chars", "a 안녕", Latin, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compatible(tt.text, tt.expected); got != tt.want {
				t.Errorf("Compatible(%q, %v) = %v, want %v", tt.text, tt.expected, got, tt.want)
			}
		})
	}
}
